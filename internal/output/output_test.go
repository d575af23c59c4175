package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/chrisdamba/nutriplan/internal/catalog"
	"github.com/chrisdamba/nutriplan/internal/cloudwriter"
	"github.com/chrisdamba/nutriplan/internal/models"
	"github.com/chrisdamba/nutriplan/internal/plan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWeek(t *testing.T) models.GeneratedWeek {
	t.Helper()
	w := plan.EmptyWeek()
	w[models.Monday][models.Breakfast] = []models.PlanEntry{
		{ID: "e1", FoodID: "1-1"},
		{ID: "e2", FoodID: "7-1"},
	}
	w[models.Friday][models.Dinner] = []models.PlanEntry{{ID: "e3", FoodID: "2-3"}}
	return models.GeneratedWeek{
		ID:          "week-1",
		GeneratedAt: time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC),
		Seed:        42,
		DailyTarget: 1500,
		Plan:        w,
	}
}

func TestMessages(t *testing.T) {
	week := testWeek(t)
	msgs, err := Messages(week, catalog.Default())
	require.NoError(t, err)
	require.Len(t, msgs, 4)

	assert.Equal(t, TopicWeeklyPlans, msgs[0].Topic)
	var planEvent WeeklyPlanEvent
	require.NoError(t, json.Unmarshal(msgs[0].Message, &planEvent))
	assert.Equal(t, "week-1", planEvent.WeekID)
	assert.Equal(t, EventPlanGenerated, planEvent.EventType)
	assert.Equal(t, int64(42), planEvent.Seed)
	assert.Equal(t, week.GeneratedAt.Unix(), planEvent.Timestamp)
	assert.Len(t, planEvent.Plan[models.Monday][models.Breakfast], 2)

	var entries []PlanEntryEvent
	for _, m := range msgs[1:] {
		assert.Equal(t, TopicPlanEntries, m.Topic)
		var e PlanEntryEvent
		require.NoError(t, json.Unmarshal(m.Message, &e))
		entries = append(entries, e)
	}
	assert.Equal(t, "e1", entries[0].EntryID)
	assert.Equal(t, "Skim milk", entries[0].FoodName)
	assert.Equal(t, catalog.GroupDairy, entries[0].FoodGroup)
	assert.Equal(t, int32(70), entries[0].Calories)
	assert.Equal(t, int32(1), entries[1].Position)
	assert.Equal(t, "friday", entries[2].Day)
	assert.Equal(t, "dinner", entries[2].Meal)
}

func TestMessagesDanglingFood(t *testing.T) {
	week := testWeek(t)
	week.Plan[models.Sunday][models.Lunch] = []models.PlanEntry{{ID: "x", FoodID: "missing"}}

	msgs, err := Messages(week, catalog.Default())
	require.NoError(t, err)
	var last PlanEntryEvent
	require.NoError(t, json.Unmarshal(msgs[len(msgs)-1].Message, &last))
	assert.Equal(t, "missing", last.FoodID)
	assert.Empty(t, last.FoodName)
	assert.Zero(t, last.Calories)
}

func TestConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	out := NewConsoleOutput(&buf)
	require.NoError(t, out.WriteMessage(TopicWeeklyPlans, []byte(`{"a":1}`)))
	require.NoError(t, out.Close())
	assert.Equal(t, "[weekly_plans] {\"a\":1}\n", buf.String())
}

func writeAll(t *testing.T, dest Destination) {
	t.Helper()
	msgs, err := Messages(testWeek(t), catalog.Default())
	require.NoError(t, err)
	for _, m := range msgs {
		require.NoError(t, dest.WriteMessage(m.Topic, m.Message))
	}
	require.NoError(t, dest.Close())
}

func TestJSONOutput(t *testing.T) {
	dir := t.TempDir()
	writeAll(t, NewJSONOutput(dir, "nutriplan"))

	path := filepath.Join(dir, "nutriplan", TopicPlanEntries, "year=2024", "month=03", "day=04", "data.json")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 3)

	_, err = os.Stat(filepath.Join(dir, "nutriplan", TopicWeeklyPlans, "year=2024", "month=03", "day=04", "data.json"))
	assert.NoError(t, err)
}

func TestCSVOutput(t *testing.T) {
	dir := t.TempDir()
	writeAll(t, NewCSVOutput(dir, "nutriplan"))

	f, err := os.Open(filepath.Join(dir, "nutriplan", TopicPlanEntries, "year=2024", "month=03", "day=04", "data.csv"))
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	header := records[0]
	col := func(name string) int {
		for i, h := range header {
			if h == name {
				return i
			}
		}
		t.Fatalf("missing column %s", name)
		return -1
	}
	assert.Equal(t, "Skim milk", records[1][col("foodName")])
	assert.Equal(t, "0.2", records[1][col("fat")])
	assert.Equal(t, "70", records[1][col("calories")])
}

func TestPartitionDirInvalid(t *testing.T) {
	_, _, err := partitionDir("", "f", "t", []byte(`{"timestamp":"soon"}`))
	assert.Error(t, err)
	_, _, err = partitionDir("", "f", "t", []byte(`not json`))
	assert.Error(t, err)
}

func TestParquetOutputLocal(t *testing.T) {
	dir := t.TempDir()
	cfg := &models.Config{OutputPath: dir, OutputFolder: "nutriplan", OutputDestination: "local", OutputFormat: "parquet"}
	out, err := NewParquetOutput(cfg)
	require.NoError(t, err)
	writeAll(t, out)

	for _, topic := range []string{TopicWeeklyPlans, TopicPlanEntries} {
		path := filepath.Join(dir, "nutriplan", topic, "year=2024", "month=03", "day=04", "data.parquet")
		data, err := os.ReadFile(path)
		require.NoError(t, err, topic)
		assert.True(t, bytes.HasPrefix(data, []byte("PAR1")), topic)
	}
}

type memoryCloud struct {
	objects map[string]*bytes.Buffer
}

type memoryObject struct {
	*bytes.Buffer
}

func (memoryObject) Close() error { return nil }

func (m *memoryCloud) NewWriter(bucket, objectPath string) (cloudwriter.CloudWriter, error) {
	buf := &bytes.Buffer{}
	m.objects[bucket+"/"+objectPath] = buf
	return memoryObject{buf}, nil
}

func TestParquetOutputCloud(t *testing.T) {
	cloud := &memoryCloud{objects: map[string]*bytes.Buffer{}}
	writeAll(t, NewCloudParquetOutput(cloud, "plans", "nutriplan"))

	obj, ok := cloud.objects["plans/nutriplan/plan_entries/year=2024/month=03/day=04/data.parquet"]
	require.True(t, ok)
	assert.True(t, bytes.HasPrefix(obj.Bytes(), []byte("PAR1")))
}

func TestCloudParquetFileSeek(t *testing.T) {
	f := NewCloudParquetFile(memoryObject{&bytes.Buffer{}})
	n, err := f.Write([]byte("abcd"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	pos, err := f.Seek(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), pos)

	_, err = f.Seek(0, 2)
	assert.Error(t, err)
	_, err = f.Read(make([]byte, 1))
	assert.Error(t, err)
}

func TestKafkaOutput(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		assert.Equal(t, TopicWeeklyPlans, msg.Topic)
		key, err := msg.Key.Encode()
		require.NoError(t, err)
		assert.Equal(t, "week-1", string(key))
		return nil
	})

	out := NewKafkaOutputFromProducer(producer)
	msgs, err := Messages(testWeek(t), catalog.Default())
	require.NoError(t, err)
	require.NoError(t, out.WriteMessage(msgs[0].Topic, msgs[0].Message))
	require.NoError(t, out.Close())

	assert.Error(t, out.WriteMessage(TopicWeeklyPlans, msgs[0].Message))
	assert.NoError(t, out.Close())
}

func TestNewPicksConsole(t *testing.T) {
	dest, err := New(&models.Config{OutputFormat: "json", OutputDestination: "local"})
	require.NoError(t, err)
	assert.IsType(t, &ConsoleOutput{}, dest)

	dest, err = New(&models.Config{OutputFormat: "csv", OutputPath: t.TempDir(), OutputDestination: "local"})
	require.NoError(t, err)
	assert.IsType(t, &CSVOutput{}, dest)

	_, err = New(&models.Config{OutputFormat: "xml", OutputPath: "x", OutputDestination: "local"})
	assert.Error(t, err)
}
