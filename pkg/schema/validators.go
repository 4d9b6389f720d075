package schema

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	phonePattern    = regexp.MustCompile(`^\+?[\d\s\-\(\)]+$`)
	imageURLPattern = regexp.MustCompile(`(?i)^https?://.+\.(jpg|jpeg|png|gif|webp)$`)
	docURLPattern   = regexp.MustCompile(`(?i)^https?://.+\.(jpg|jpeg|png|pdf)$`)
	webURLPattern   = regexp.MustCompile(`^https?://.+`)
	mailPattern     = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
)

var validate = newValidator()

// Validator exposes the shared instance so request DTOs see the same custom tags.
func Validator() *validator.Validate {
	return validate
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	register(v, "phone", phonePattern)
	register(v, "imageurl", imageURLPattern)
	register(v, "docurl", docURLPattern)
	register(v, "weburl", webURLPattern)
	register(v, "mailaddr", mailPattern)
	return v
}

func register(v *validator.Validate, tag string, pattern *regexp.Regexp) {
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			return false
		}
		return pattern.MatchString(field.String())
	})
}
