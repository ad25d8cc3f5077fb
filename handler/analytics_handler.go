package handler

import (
	"errors"
	"log"

	"main/middleware"
	"main/model"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	service *usecase.HabitsService
}

func NewAnalyticsHandler(service *usecase.HabitsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

func (h *AnalyticsHandler) GetHabitStats(c *gin.Context) {
	stats, err := h.service.AnalyzeHabit(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrHabitNotFound) {
			utils.NotFound(c, "Habit not found")
			return
		}
		log.Printf("Error analyzing habit %s: %v", c.Param("id"), err)
		middleware.TrackError("analytics")
		utils.InternalError(c, "Failed to analyze habit")
		return
	}

	middleware.TrackHabitOperation("analyze")
	utils.Success(c, gin.H{"stats": stats})
}

func (h *AnalyticsHandler) GetHabitSuggestions(c *gin.Context) {
	suggestions, err := h.service.SuggestionsForHabit(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrHabitNotFound) {
			utils.NotFound(c, "Habit not found")
			return
		}
		log.Printf("Error generating suggestions for habit %s: %v", c.Param("id"), err)
		middleware.TrackError("analytics")
		utils.InternalError(c, "Failed to generate suggestions")
		return
	}

	utils.Success(c, gin.H{
		"suggestions": suggestions,
		"count":       len(suggestions),
	})
}

func (h *AnalyticsHandler) GetAllStats(c *gin.Context) {
	if periodicity := model.Periodicity(c.Query("periodicity")); periodicity != "" {
		if err := periodicity.Validate(); err != nil {
			utils.BadRequest(c, err.Error())
			return
		}
		filtered, err := h.service.AnalyzeByPeriodicity(c.Request.Context(), periodicity)
		if err != nil {
			log.Printf("Error analyzing %s habits: %v", periodicity, err)
			middleware.TrackError("analytics")
			utils.InternalError(c, "Failed to analyze habits")
			return
		}
		middleware.TrackHabitOperation("analyze")
		utils.Success(c, gin.H{"habits": filtered})
		return
	}

	all, err := h.service.AnalyzeAllHabits(c.Request.Context())
	if err != nil {
		log.Printf("Error analyzing habits: %v", err)
		middleware.TrackError("analytics")
		utils.InternalError(c, "Failed to analyze habits")
		return
	}

	middleware.TrackHabitOperation("analyze")
	utils.Success(c, gin.H{"habits": all})
}

func (h *AnalyticsHandler) GetLongestStreaks(c *gin.Context) {
	streaks, err := h.service.LongestStreaks(c.Request.Context())
	if err != nil {
		log.Printf("Error computing longest streaks: %v", err)
		middleware.TrackError("analytics")
		utils.InternalError(c, "Failed to compute longest streaks")
		return
	}

	utils.Success(c, gin.H{"longest_streaks": streaks})
}
