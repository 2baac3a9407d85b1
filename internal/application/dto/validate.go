package dto

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/jhoicas/asoadmin-api/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	dniPattern      = regexp.MustCompile(`^[0-9]{8}[A-Z]$`)
	passportPattern = regexp.MustCompile(`^[A-Z0-9]{5,20}$`)
	usernamePattern = regexp.MustCompile(`^[a-z0-9._-]{3,50}$`)

	validateOnce sync.Once
	validate     *validator.Validate

	lowerCaser = cases.Lower(language.Und)
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				f, _ := d.Float64()
				return f
			}
			return nil
		}, decimal.Decimal{})

		// Los opcionales aceptan "" (borra el campo en actualizaciones).
		mustRegister(v, "dni", optionalPattern(dniPattern))
		mustRegister(v, "passport", optionalPattern(passportPattern))
		mustRegister(v, "username", func(fl validator.FieldLevel) bool {
			return usernamePattern.MatchString(fl.Field().String())
		})
		mustRegister(v, "optemail", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == "" || v.Var(s, "email") == nil
		})
		validate = v
	})
	return validate
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("registrar validación %s: %v", tag, err))
	}
}

func optionalPattern(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || re.MatchString(s)
	}
}

// Validate valida s según sus tags y traduce las violaciones a *domain.ValidationError.
func Validate(s interface{}) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}
	out := &domain.ValidationError{Fields: make([]domain.FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, domain.FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

// ValidateID valida un identificador de ruta.
func ValidateID(field, id string) error {
	if instance().Var(id, "required,uuid") != nil {
		return domain.NewValidationError(field, fmt.Sprintf("%s no es un identificador válido", field))
	}
	return nil
}

// NormalizeUsername recorta y pasa a minúsculas (Unicode) un nombre de usuario.
func NormalizeUsername(s string) string {
	return lowerCaser.String(strings.TrimSpace(s))
}

func message(fe validator.FieldError) string {
	f := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es obligatorio", f)
	case "min", "gte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s debe tener al menos %s caracteres", f, fe.Param())
		}
		return fmt.Sprintf("%s debe ser mayor o igual a %s", f, fe.Param())
	case "max", "lte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s no puede exceder %s caracteres", f, fe.Param())
		}
		return fmt.Sprintf("%s debe ser menor o igual a %s", f, fe.Param())
	case "uuid":
		return fmt.Sprintf("%s no es un identificador válido", f)
	case "email", "optemail":
		return fmt.Sprintf("%s debe ser un email válido", f)
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de: %s", f, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "dni":
		return fmt.Sprintf("%s debe tener 8 dígitos seguidos de una letra mayúscula", f)
	case "passport":
		return fmt.Sprintf("%s debe tener entre 5 y 20 letras mayúsculas o dígitos", f)
	case "username":
		return fmt.Sprintf("%s debe tener entre 3 y 50 caracteres: minúsculas, dígitos, '.', '_' o '-'", f)
	default:
		return fmt.Sprintf("%s no es válido", f)
	}
}
