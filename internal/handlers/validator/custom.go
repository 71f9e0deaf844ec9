package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/params"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/service/report/types"
)

func heightModelValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	if val == "" {
		return true
	}
	_, err := params.ParseHeightModel(val)
	return err == nil
}

func reportFormatValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	for _, f := range types.Formats() {
		if string(f) == val {
			return true
		}
	}
	return false
}

func parameterFieldValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return params.IsField(val)
}
