package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/denmor86/landed-cost/internal/models"
	"github.com/go-playground/validator/v10"
)

// MaxArticleLength - максимальная длина артикула маркетплейса
const MaxArticleLength = 20

var Validate *validator.Validate

func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())
	// в ошибках поля называются так же, как в JSON
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = Validate.RegisterValidation("article", func(fl validator.FieldLevel) bool {
		return CheckArticle(fl.Field().String())
	})
}

// CheckArticle проверяет артикул товара: только цифры, без пробелов по краям
func CheckArticle(article string) bool {
	article = strings.TrimSpace(article)
	if article == "" || len(article) > MaxArticleLength {
		return false
	}
	for _, r := range article {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidateStruct - проверка тегов validate, ошибки собираются в ValidationError по полям
func ValidateStruct(v interface{}) error {
	err := Validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return models.NewCalcError(models.KindValidation, "", "%s", err.Error())
	}
	result := &models.CalcError{}
	for _, fe := range verrs {
		result.Add(models.KindValidation, fe.Field(), message(fe))
	}
	return result
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without":
		return "field is required"
	case "article":
		return fmt.Sprintf("article must contain up to %d digits", MaxArticleLength)
	case "uuid":
		return "must be a UUID"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "gt":
		return "must be > " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	}
	return fmt.Sprintf("failed on '%s' rule", fe.Tag())
}
