package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/DhavalSuthar-24/hooptrack/internal/models"
)

// Register adds the domain tags to gin's validator and reports fields by
// their json names.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return configure(v)
}

func configure(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		_, err := models.ParseRole(fl.Field().String())
		return err == nil
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("position", func(fl validator.FieldLevel) bool {
		return models.Position(strings.ToUpper(fl.Field().String())).Valid()
	}); err != nil {
		return err
	}
	return v.RegisterValidation("game_status", func(fl validator.FieldLevel) bool {
		return models.GameStatus(fl.Field().String()).Valid()
	})
}

// ParseError turns binding errors into field -> message pairs.
func ParseError(err error) map[string]string {
	errs := make(map[string]string)
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			errs[fe.Field()] = message(fe)
		}
	} else if err != nil {
		errs["error"] = err.Error()
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", fe.Field())
	case "min", "gte":
		return fmt.Sprintf("The %s field must be at least %s.", fe.Field(), fe.Param())
	case "max", "lte":
		return fmt.Sprintf("The %s field must not exceed %s.", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("The %s field must be one of: %s.", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", fe.Field())
	case "role":
		return fmt.Sprintf("The %s field must be player, coach, statistician or admin.", fe.Field())
	case "position":
		return fmt.Sprintf("The %s field must be PG, SG, SF, PF or C.", fe.Field())
	case "game_status":
		return fmt.Sprintf("The %s field must be scheduled, live, completed or cancelled.", fe.Field())
	}
	return fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
}
