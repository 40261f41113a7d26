package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"ratesignal-be/internal/apperrors"
)

var validate = validator.New()

// ValidateRequest checks a request DTO against its validate tags and maps
// the first failure into the app's ValidationError taxonomy.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		field := strings.ToLower(first.Field())
		return apperrors.NewValidationError(field, fmt.Sprintf("failed on rule '%s'", first.Tag()))
	}
	return apperrors.NewValidationError("", err.Error())
}
