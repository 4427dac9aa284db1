package validation

import (
	"reflect"
	"strings"

	"arthub_checkout/internal/domain/entities"

	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns a validator that reports json field names and knows the log taxonomy tags.
func New() *validatorv10.Validate {
	v := validatorv10.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("logstatus", func(fl validatorv10.FieldLevel) bool {
		return entities.LogStatus(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("errorclass", func(fl validatorv10.FieldLevel) bool {
		switch entities.ErrorClass(fl.Field().String()) {
		case entities.ErrorClassClient, entities.ErrorClassNetwork, entities.ErrorClassGateway:
			return true
		}
		return false
	})
	return v
}
