package utils

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"main/model"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
	Validate.RegisterValidation("periodicity", ValidatePeriodicityRule)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("periodicity", ValidatePeriodicityRule)
	}
}

// ValidatePeriodicityRule backs the `periodicity` binding tag on request DTOs.
func ValidatePeriodicityRule(fl validator.FieldLevel) bool {
	return model.Periodicity(fl.Field().String()).IsValid()
}
