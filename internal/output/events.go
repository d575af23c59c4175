package output

import (
	"encoding/json"
	"fmt"

	"github.com/chrisdamba/nutriplan/internal/catalog"
	"github.com/chrisdamba/nutriplan/internal/models"
)

const (
	TopicWeeklyPlans = "weekly_plans"
	TopicPlanEntries = "plan_entries"

	EventPlanGenerated = "plan_generated"
	EventEntryPlaced   = "entry_placed"
)

type Message struct {
	Topic   string
	Message []byte
}

// WeeklyPlanEvent carries a whole generated week.
type WeeklyPlanEvent struct {
	Timestamp   int64             `json:"timestamp"`
	EventType   string            `json:"eventType"`
	WeekID      string            `json:"weekId"`
	Seed        int64             `json:"seed"`
	DailyTarget int               `json:"dailyTarget"`
	Plan        models.WeeklyPlan `json:"plan"`
}

// WeeklyPlanRow is the columnar form of WeeklyPlanEvent.
type WeeklyPlanRow struct {
	Timestamp   int64  `json:"timestamp" parquet:"name=timestamp,type=INT64"`
	EventType   string `json:"eventType" parquet:"name=eventType,type=BYTE_ARRAY,convertedtype=UTF8"`
	WeekID      string `json:"weekId" parquet:"name=weekId,type=BYTE_ARRAY,convertedtype=UTF8"`
	Seed        int64  `json:"seed" parquet:"name=seed,type=INT64"`
	DailyTarget int32  `json:"dailyTarget" parquet:"name=dailyTarget,type=INT32"`
	PlanJSON    string `json:"plan" parquet:"name=plan,type=BYTE_ARRAY,convertedtype=UTF8"`
}

// PlanEntryEvent is one placed entry resolved against the catalog.
type PlanEntryEvent struct {
	Timestamp int64   `json:"timestamp" parquet:"name=timestamp,type=INT64"`
	EventType string  `json:"eventType" parquet:"name=eventType,type=BYTE_ARRAY,convertedtype=UTF8"`
	WeekID    string  `json:"weekId" parquet:"name=weekId,type=BYTE_ARRAY,convertedtype=UTF8"`
	Day       string  `json:"day" parquet:"name=day,type=BYTE_ARRAY,convertedtype=UTF8"`
	Meal      string  `json:"meal" parquet:"name=meal,type=BYTE_ARRAY,convertedtype=UTF8"`
	Position  int32   `json:"position" parquet:"name=position,type=INT32"`
	EntryID   string  `json:"entryId" parquet:"name=entryId,type=BYTE_ARRAY,convertedtype=UTF8"`
	FoodID    string  `json:"foodId" parquet:"name=foodId,type=BYTE_ARRAY,convertedtype=UTF8"`
	FoodName  string  `json:"foodName" parquet:"name=foodName,type=BYTE_ARRAY,convertedtype=UTF8"`
	FoodGroup string  `json:"foodGroup" parquet:"name=foodGroup,type=BYTE_ARRAY,convertedtype=UTF8"`
	Calories  int32   `json:"calories" parquet:"name=calories,type=INT32"`
	Protein   float64 `json:"protein" parquet:"name=protein,type=DOUBLE"`
	Carbs     float64 `json:"carbs" parquet:"name=carbs,type=DOUBLE"`
	Fat       float64 `json:"fat" parquet:"name=fat,type=DOUBLE"`
}

// Messages serializes a generated week into one weekly_plans message and
// one plan_entries message per entry, in day and meal order.
func Messages(week models.GeneratedWeek, cat *catalog.Catalog) ([]Message, error) {
	ts := week.GeneratedAt.Unix()

	planMsg, err := json.Marshal(WeeklyPlanEvent{
		Timestamp:   ts,
		EventType:   EventPlanGenerated,
		WeekID:      week.ID,
		Seed:        week.Seed,
		DailyTarget: week.DailyTarget,
		Plan:        week.Plan,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize week %s: %w", week.ID, err)
	}
	messages := []Message{{Topic: TopicWeeklyPlans, Message: planMsg}}

	for _, day := range models.DaysOfWeek {
		for _, meal := range models.MealTimes {
			for i, entry := range week.Plan[day][meal] {
				event := PlanEntryEvent{
					Timestamp: ts,
					EventType: EventEntryPlaced,
					WeekID:    week.ID,
					Day:       string(day),
					Meal:      string(meal),
					Position:  int32(i),
					EntryID:   entry.ID,
					FoodID:    entry.FoodID,
				}
				if food, ok := cat.Food(entry.FoodID); ok {
					event.FoodName = food.Name
					event.FoodGroup = food.Group
					event.Calories = int32(food.Calories)
					event.Protein = food.Protein
					event.Carbs = food.Carbs
					event.Fat = food.Fat
				}
				msg, err := json.Marshal(event)
				if err != nil {
					return nil, fmt.Errorf("failed to serialize entry %s: %w", entry.ID, err)
				}
				messages = append(messages, Message{Topic: TopicPlanEntries, Message: msg})
			}
		}
	}

	return messages, nil
}

// rowFor decodes a message into the columnar row type of its topic.
func rowFor(topic string, msg []byte) (interface{}, error) {
	switch topic {
	case TopicPlanEntries:
		var row PlanEntryEvent
		if err := json.Unmarshal(msg, &row); err != nil {
			return nil, err
		}
		return row, nil
	case TopicWeeklyPlans:
		var event WeeklyPlanEvent
		if err := json.Unmarshal(msg, &event); err != nil {
			return nil, err
		}
		planJSON, err := json.Marshal(event.Plan)
		if err != nil {
			return nil, err
		}
		return WeeklyPlanRow{
			Timestamp:   event.Timestamp,
			EventType:   event.EventType,
			WeekID:      event.WeekID,
			Seed:        event.Seed,
			DailyTarget: int32(event.DailyTarget),
			PlanJSON:    string(planJSON),
		}, nil
	default:
		return nil, fmt.Errorf("unknown topic: %s", topic)
	}
}

// schemaFor returns the struct whose parquet tags define a topic's schema.
func schemaFor(topic string) (interface{}, error) {
	switch topic {
	case TopicPlanEntries:
		return new(PlanEntryEvent), nil
	case TopicWeeklyPlans:
		return new(WeeklyPlanRow), nil
	default:
		return nil, fmt.Errorf("unknown topic: %s", topic)
	}
}

// weekKey extracts the week id used as the message key.
func weekKey(msg []byte) string {
	var keyed struct {
		WeekID string `json:"weekId"`
	}
	if err := json.Unmarshal(msg, &keyed); err != nil {
		return ""
	}
	return keyed.WeekID
}
