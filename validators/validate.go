package validators

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CheckStruct runs struct-tag validation on a payload and returns a
// field → message map, nil when the payload is valid.
func CheckStruct(payload interface{}) map[string]string {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			errors[fe.Field()] = "Failed on '" + fe.Tag() + "' validation!"
		}
	} else {
		errors["payload"] = err.Error()
	}
	return errors
}
