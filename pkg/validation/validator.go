package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// userIDPattern is the member login-name rule: a letter followed by letters
// or digits, 4-20 characters total.
var userIDPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]{3,19}$`)

// Init configures the global validator used by Gin's binding.
// - Uses JSON tag names in errors.
// - Registers the member-specific rules.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("userid", func(fl validator.FieldLevel) bool {
			return userIDPattern.MatchString(fl.Field().String())
		})
		v.RegisterAlias("pwd", "min=8") // password minimum length
		v.RegisterAlias("nickname", "min=2,max=20")
	}
}

// ValidUserID reports whether s satisfies the login-name rule. Exposed for
// callers outside Gin binding (e.g. the seeder).
func ValidUserID(s string) bool {
	return userIDPattern.MatchString(s)
}

// ToDetails converts validation/binding errors into a map[field]message
// suitable for API error details.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	// Invalid JSON payloads
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return map[string]string{"payload": "invalid json"}
	}

	// Validation errors from validator.v10
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = formatFieldError(fe)
		}
		return out
	}

	// Fallback
	return map[string]string{"payload": "invalid payload"}
}

func formatFieldError(fe validator.FieldError) string {
	param := fe.Param()
	switch fe.Tag() {
	case "required":
		return "is required"
	case "userid":
		return "must start with a letter and contain 4-20 letters or digits"
	case "pwd":
		return "must be at least 8 characters"
	case "nickname":
		return "must be 2-20 characters"
	case "min":
		return "must be at least " + param + " characters"
	case "max":
		return "must be at most " + param + " characters"
	case "email":
		return "must be a valid email"
	case "url":
		return "must be a valid URL"
	case "gt":
		return "must be greater than " + param
	case "dive":
		return "contains invalid elements"
	default:
		return "is invalid"
	}
}
