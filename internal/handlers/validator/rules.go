package validator

import "github.com/go-playground/validator/v10"

func registerFn(tag string, fn func(fl validator.FieldLevel) bool) func(v *validator.Validate) {
	return func(v *validator.Validate) {
		_ = v.RegisterValidation(tag, fn)
	}
}

// NewRetrievalValidationRules registers the tags used by the retrieval
// estimation endpoints: height_model, report_format and parameter_field.
func NewRetrievalValidationRules() []ValidationRule {
	return []ValidationRule{
		{
			Rule: registerFn("height_model", heightModelValidator),
		},
		{
			Rule: registerFn("report_format", reportFormatValidator),
		},
		{
			Rule: registerFn("parameter_field", parameterFieldValidator),
		},
	}
}
