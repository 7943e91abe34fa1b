package models

import (
	"errors"
	"math"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"grocery/internal/errs"

	"github.com/go-playground/validator/v10"
)

// specialChars are the characters accepted as a password's special character.
const specialChars = `!@#$%^&*(),.?":{}|<>`

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	custom := map[string]validator.Func{
		"notblank": func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		},
		"finite": func(fl validator.FieldLevel) bool {
			f := fl.Field().Float()
			return !math.IsNaN(f) && !math.IsInf(f, 0)
		},
		"email_simple": func(fl validator.FieldLevel) bool {
			return emailPattern.MatchString(fl.Field().String())
		},
		"has_upper": func(fl validator.FieldLevel) bool {
			return strings.IndexFunc(fl.Field().String(), unicode.IsUpper) >= 0
		},
		"has_special": func(fl validator.FieldLevel) bool {
			return strings.ContainsAny(fl.Field().String(), specialChars)
		},
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	return v
}

// fieldRule maps a struct field to the validation code and message it
// reports. Tags listed in weak report the alternate code.
type fieldRule struct {
	code    string
	message string
	weak    map[string]string
}

// check validates s and converts the first failing field into a
// *errs.ValidationError using rules.
func check(s interface{}, rules map[string]fieldRule) error {
	err := validate.Struct(s)
	return translate(err, rules)
}

// checkField validates a single value against tag as if it were field.
func checkField(value interface{}, tag, field string, rules map[string]fieldRule) error {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return ruleError(rules, field, fieldErrs[0].Tag())
	}
	return err
}

func translate(err error, rules map[string]fieldRule) error {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fe := fieldErrs[0]
	return ruleError(rules, fe.Field(), fe.Tag())
}

func ruleError(rules map[string]fieldRule, field, tag string) error {
	rule, ok := rules[field]
	if !ok {
		return errs.Invalid("Invalid"+strings.ToUpper(field[:1])+field[1:], field, "Invalid "+field+" value")
	}
	if msg, weak := rule.weak[tag]; weak {
		return errs.Invalid(errs.WeakPassword, field, msg)
	}
	return errs.Invalid(rule.code, field, rule.message)
}
