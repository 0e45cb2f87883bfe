package validator

import (
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var hhmmPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields by their label tag so messages read naturally in forms
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		return f.Name
	})

	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return hhmmPattern.MatchString(fl.Field().String())
	})

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " je obavezno polje"
			case "email":
				errors[field] = field + " mora biti ispravna email adresa"
			case "min":
				if e.Kind() == reflect.String {
					errors[field] = field + " mora imati barem " + e.Param() + " znakova"
				} else {
					errors[field] = field + " mora biti barem " + e.Param()
				}
			case "max":
				if e.Kind() == reflect.String {
					errors[field] = field + " smije imati najviše " + e.Param() + " znakova"
				} else {
					errors[field] = field + " smije biti najviše " + e.Param()
				}
			case "gte":
				errors[field] = field + " mora biti veće ili jednako " + e.Param()
			case "lte":
				errors[field] = field + " mora biti manje ili jednako " + e.Param()
			case "hhmm":
				errors[field] = field + " mora biti u obliku HH:MM"
			case "datetime":
				errors[field] = field + " nije ispravan datum"
			default:
				errors[field] = field + " nije ispravno"
			}
		}
	}

	return errors
}

// Summary joins the formatted errors into one sentence in a stable order
func (cv *CustomValidator) Summary(err error) string {
	formatted := cv.FormatValidationErrors(err)
	if len(formatted) == 0 {
		return "Podaci nisu ispravni."
	}

	fields := make([]string, 0, len(formatted))
	for f := range formatted {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, formatted[f])
	}
	return strings.Join(msgs, "; ") + "."
}
