package service

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// 僅限 ASCII；(?i) 會讓 [a-z] 比對到 ſ (U+017F) 與 K (U+212A)
var emailPattern = regexp.MustCompile(`^[\w+\-.]+@[A-Za-z\d\-.]+\.[A-Za-z]+$`)

var validate = NewValidator()

// NewValidator 建立共用的 validator，欄位名稱取 json tag。
// echo 的 CustomValidator 也使用同一組規則。
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("user_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	return v
}

// ValidEmail reports whether addr matches the accepted address grammar.
func ValidEmail(addr string) bool {
	return emailPattern.MatchString(addr)
}

func checkStruct(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	ve := &ValidationError{}
	for _, fe := range fieldErrs {
		ve.Fields = append(ve.Fields, FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return ve
}
