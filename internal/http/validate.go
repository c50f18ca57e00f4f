package http

import (
	"github.com/go-playground/validator/v10"

	"billsplit/internal/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// splittype: one of equal, percentage, ratio, itemized.
	_ = validate.RegisterValidation("splittype", func(fl validator.FieldLevel) bool {
		return models.SplitType(fl.Field().String()).Valid()
	})
}
