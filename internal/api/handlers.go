package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/chrisdamba/nutriplan/internal/catalog"
	"github.com/chrisdamba/nutriplan/internal/generator"
	"github.com/chrisdamba/nutriplan/internal/models"
	"github.com/chrisdamba/nutriplan/internal/plan"
	"github.com/chrisdamba/nutriplan/internal/shopping"
	"github.com/gin-gonic/gin"
)

var errEntryNotFound = errors.New("entry not found")

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) GetCatalog(c *gin.Context) {
	cat := h.session.Catalog()
	c.JSON(http.StatusOK, gin.H{"groups": cat.Groups()})
}

func (h *Handler) ReplaceCatalog(c *gin.Context) {
	var groups []models.FoodGroup
	if err := c.ShouldBindJSON(&groups); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	cat, err := catalog.New(groups)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	h.session.ReplaceCatalog(cat)
	c.JSON(http.StatusOK, gin.H{"groups": cat.Groups()})
}

func (h *Handler) GetPlan(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plan": h.session.Plan()})
}

func (h *Handler) ClearPlan(c *gin.Context) {
	week, _ := h.session.Update(func(_ *catalog.Catalog, _ *generator.Generator, _ models.WeeklyPlan) (models.WeeklyPlan, error) {
		return plan.EmptyWeek(), nil
	})
	c.JSON(http.StatusOK, gin.H{"plan": week})
}

func (h *Handler) GeneratePlan(c *gin.Context) {
	week, _ := h.session.Update(func(_ *catalog.Catalog, gen *generator.Generator, _ models.WeeklyPlan) (models.WeeklyPlan, error) {
		return gen.GenerateWeek(), nil
	})
	c.JSON(http.StatusOK, gin.H{"plan": week})
}

func (h *Handler) AddEntry(c *gin.Context) {
	day, meal, ok := slotParams(c)
	if !ok {
		return
	}
	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	var entry models.PlanEntry
	week, err := h.session.Update(func(cat *catalog.Catalog, _ *generator.Generator, w models.WeeklyPlan) (models.WeeklyPlan, error) {
		if _, ok := cat.Food(req.FoodID); !ok {
			return nil, fmt.Errorf("unknown food %q", req.FoodID)
		}
		var err error
		entry, err = plan.AddEntry(w, day, meal, req.FoodID)
		return w, err
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"entry": entry, "plan": week})
}

func (h *Handler) ReplaceEntry(c *gin.Context) {
	day, meal, ok := slotParams(c)
	if !ok {
		return
	}
	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	entryID := c.Param("id")

	var unknownFood bool
	week, err := h.session.Update(func(cat *catalog.Catalog, _ *generator.Generator, w models.WeeklyPlan) (models.WeeklyPlan, error) {
		if _, ok := cat.Food(req.FoodID); !ok {
			unknownFood = true
			return nil, fmt.Errorf("unknown food %q", req.FoodID)
		}
		found, err := plan.ReplaceEntry(w, day, meal, entryID, req.FoodID)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, errEntryNotFound
		}
		return w, nil
	})
	if err != nil {
		status := http.StatusNotFound
		if unknownFood {
			status = http.StatusBadRequest
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	entry, _ := plan.FindEntry(week, day, meal, entryID)
	c.JSON(http.StatusOK, gin.H{"entry": entry, "plan": week})
}

func (h *Handler) RemoveEntry(c *gin.Context) {
	day, meal, ok := slotParams(c)
	if !ok {
		return
	}
	entryID := c.Param("id")

	week, err := h.session.Update(func(_ *catalog.Catalog, _ *generator.Generator, w models.WeeklyPlan) (models.WeeklyPlan, error) {
		found, err := plan.RemoveEntry(w, day, meal, entryID)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, errEntryNotFound
		}
		return w, nil
	})
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": week})
}

func (h *Handler) GetUsage(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	week := h.session.Plan()
	usage := plan.ComputeDailyUsage(h.session.Catalog(), week[day])
	c.JSON(http.StatusOK, gin.H{"day": day, "usage": usage})
}

func (h *Handler) GetSummary(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	week := h.session.Plan()
	summary := plan.Summarize(h.session.Catalog(), week[day], h.session.DailyTarget())
	c.JSON(http.StatusOK, gin.H{"day": day, "summary": summary})
}

func (h *Handler) GetShoppingList(c *gin.Context) {
	list := shopping.Build(h.session.Catalog(), h.session.Plan())
	if c.Query("format") == "text" {
		c.String(http.StatusOK, list.Text())
		return
	}
	c.JSON(http.StatusOK, list)
}

func dayParam(c *gin.Context) (models.Day, bool) {
	day := models.Day(c.Param("day"))
	if !day.Valid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("unknown day %q", day)})
		return "", false
	}
	return day, true
}

func slotParams(c *gin.Context) (models.Day, models.MealTime, bool) {
	day, ok := dayParam(c)
	if !ok {
		return "", "", false
	}
	meal := models.MealTime(c.Param("meal"))
	if !meal.Valid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("unknown meal %q", meal)})
		return "", "", false
	}
	return day, meal, true
}
