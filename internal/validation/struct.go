package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/hadeelmohammed/portfolio-backend/internal/models"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator возвращает общий экземпляр validator с правилами проекта.
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// В ошибках используем имена из json-тегов.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			_, ok := models.ValidCategories[fl.Field().String()]
			return ok
		})
		_ = v.RegisterValidation("logosize", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if value == "" {
				return true
			}
			_, ok := models.ValidLogoSizes[value]
			return ok
		})

		instance = v
	})
	return instance
}

// Struct проверяет структуру и возвращает ошибки по полям или nil.
func Struct(s any) map[string]string {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"body": err.Error()}
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		name := fe.Field()
		if _, exists := fields[name]; exists {
			continue
		}
		fields[name] = fieldMessage(fe)
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	label := humanize(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be less than %s characters", label, fe.Param())
	case "email":
		return "Invalid email address"
	case "category":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(models.Categories, ", "))
	case "logosize":
		return fmt.Sprintf("%s must be small, medium or large", label)
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

// humanize превращает project_type в "Project type".
func humanize(field string) string {
	if field == "" {
		return "Value"
	}
	words := strings.ReplaceAll(field, "_", " ")
	return strings.ToUpper(words[:1]) + words[1:]
}
