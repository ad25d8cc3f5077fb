package handler

import (
	"errors"
	"log"
	"math/rand"
	"time"

	"main/middleware"
	"main/repository"
	"main/seed"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type SeedHandler struct {
	service    *usecase.HabitsService
	configPath string
}

func NewSeedHandler(service *usecase.HabitsService, configPath string) *SeedHandler {
	return &SeedHandler{service: service, configPath: configPath}
}

// SeedHabits loads the default habit set and generates sample completion
// history. Refused when habits already exist so repeated calls can't pile up
// duplicate sample data.
func (h *SeedHandler) SeedHabits(c *gin.Context) {
	ctx := c.Request.Context()

	count, err := h.service.CountHabits(ctx)
	if err != nil {
		log.Printf("Error counting habits before seed: %v", err)
		middleware.TrackError("db")
		utils.InternalError(c, "Failed to check existing habits")
		return
	}
	if count > 0 {
		utils.Conflict(c, "Habits already exist; seeding is only allowed on an empty store")
		return
	}

	cfg, err := seed.LoadConfig(h.configPath)
	if err != nil {
		log.Printf("Error loading seed config: %v", err)
		utils.InternalError(c, "Failed to load seed configuration")
		return
	}

	seeder := &seed.Seeder{
		Store: h.service,
		Rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	report, err := seeder.Run(ctx, cfg)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			utils.Conflict(c, err.Error())
			return
		}
		log.Printf("Error seeding habits: %v", err)
		middleware.TrackError("db")
		utils.InternalError(c, "Failed to seed habits")
		return
	}

	middleware.TrackHabitOperation("seed")
	utils.Created(c, report)
}
