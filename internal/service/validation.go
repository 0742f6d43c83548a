package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"quiz_progress_backend/internal/util"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validateStruct 将校验失败转换为 util.ErrValidation
func validateStruct(in interface{}) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return util.ValidationError("%v", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return util.ValidationError("%s", strings.Join(msgs, ", "))
}

// storageOrSelf 已分类的错误原样返回，其余视为存储错误
func storageOrSelf(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, util.ErrValidation) || errors.Is(err, util.ErrNotFound) || errors.Is(err, util.ErrStorage) {
		return err
	}
	return util.StorageError(op, err)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, util.ErrValidation):
		return "invalid"
	case errors.Is(err, util.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
