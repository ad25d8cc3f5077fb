package handler

import (
	"errors"
	"log"
	"time"

	"main/dto"
	"main/middleware"
	"main/model"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type HabitsHandler struct {
	service *usecase.HabitsService
}

func NewHabitsHandler(service *usecase.HabitsService) *HabitsHandler {
	return &HabitsHandler{service: service}
}

func (h *HabitsHandler) CreateHabit(c *gin.Context) {
	var req dto.CreateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Surface the allowed enum values when the periodicity is what failed.
		if req.Periodicity != "" && !model.Periodicity(req.Periodicity).IsValid() {
			utils.BadRequest(c, model.Periodicity(req.Periodicity).Validate().Error())
			return
		}
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	habit := &model.Habit{
		Name:        req.Name,
		Periodicity: model.Periodicity(req.Periodicity),
		Description: req.Description,
	}

	if err := h.service.CreateHabit(c.Request.Context(), habit); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateName):
			utils.Conflict(c, err.Error())
		case errors.Is(err, usecase.ErrEmptyName):
			utils.BadRequest(c, err.Error())
		default:
			log.Printf("Error creating habit: %v", err)
			middleware.TrackError("db")
			utils.InternalError(c, "Failed to create habit")
		}
		return
	}

	middleware.TrackHabitOperation("create")
	utils.Created(c, dto.ToHabitResponse(habit))
}

func (h *HabitsHandler) ListHabits(c *gin.Context) {
	periodicity := model.Periodicity(c.Query("periodicity"))
	if periodicity != "" {
		if err := periodicity.Validate(); err != nil {
			utils.BadRequest(c, err.Error())
			return
		}
	}

	habits, err := h.service.ListHabits(c.Request.Context(), periodicity)
	if err != nil {
		log.Printf("Error listing habits: %v", err)
		middleware.TrackError("db")
		utils.InternalError(c, "Failed to list habits")
		return
	}

	utils.Success(c, gin.H{
		"habits": dto.ToHabitResponses(habits),
		"count":  len(habits),
	})
}

func (h *HabitsHandler) GetHabit(c *gin.Context) {
	habit, err := h.service.GetHabit(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrHabitNotFound) {
			utils.NotFound(c, "Habit not found")
			return
		}
		log.Printf("Error fetching habit %s: %v", c.Param("id"), err)
		middleware.TrackError("db")
		utils.InternalError(c, "Failed to fetch habit")
		return
	}

	utils.Success(c, dto.ToHabitResponse(habit))
}

func (h *HabitsHandler) CompleteHabit(c *gin.Context) {
	var req dto.CompleteHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	var at time.Time
	if req.CompletedAt != nil {
		at = *req.CompletedAt
	}

	completion, err := h.service.CompleteHabit(c.Request.Context(), c.Param("id"), at)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrHabitNotFound):
			utils.NotFound(c, "Habit not found")
		case errors.Is(err, usecase.ErrFutureCompletion):
			utils.BadRequest(c, err.Error())
		default:
			log.Printf("Error completing habit %s: %v", c.Param("id"), err)
			middleware.TrackError("db")
			utils.InternalError(c, "Failed to record completion")
		}
		return
	}

	middleware.TrackHabitOperation("complete")
	utils.Created(c, dto.ToCompletionResponse(completion))
}

func (h *HabitsHandler) GetCompletions(c *gin.Context) {
	completions, err := h.service.GetCompletions(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrHabitNotFound) {
			utils.NotFound(c, "Habit not found")
			return
		}
		log.Printf("Error fetching completions for habit %s: %v", c.Param("id"), err)
		middleware.TrackError("db")
		utils.InternalError(c, "Failed to fetch completions")
		return
	}

	utils.Success(c, gin.H{
		"completions": completions,
		"count":       len(completions),
	})
}
