package validator

import (
	"log"

	"linkup_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Правила регистрируются на старте приложения,
			// ошибка здесь - ошибка конфигурации.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-experience': уровень опыта из профиля
	mustRegister("is-experience", validateExperience)

	// 'is-availability': доступность из профиля
	mustRegister("is-availability", validateAvailability)
}

func validateExperience(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые обрабатывает 'required'
	}
	switch models.ExperienceLevel(value) {
	case models.ExperienceJunior, models.ExperienceMid, models.ExperienceSenior, models.ExperienceLead:
		return true
	default:
		return false
	}
}

func validateAvailability(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.Availability(value) {
	case models.AvailabilityFullTime, models.AvailabilityPartTime, models.AvailabilityContract, models.AvailabilityOpen:
		return true
	default:
		return false
	}
}
