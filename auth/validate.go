package auth

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/user/growtwitter-go/apperror"
)

var validate = validator.New()

// ValidateStruct runs struct-tag validation and converts failures into a
// single ValidationError listing every offending field.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	ok := false
	if v, isVErrs := err.(validator.ValidationErrors); isVErrs {
		verrs, ok = v, true
	}
	if !ok {
		return apperror.NewValidationError("invalid request payload", err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
	}
	return apperror.NewValidationError("validation failed: "+strings.Join(fields, "; "), nil)
}
