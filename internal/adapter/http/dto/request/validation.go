package request

import (
	"errors"

	"salon_api/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// TagServiceDetailStatus is the binding tag accepting only known statuses.
const TagServiceDetailStatus = "servicedetailstatus"

// RegisterValidators adds the custom tags to gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	return v.RegisterValidation(TagServiceDetailStatus, func(fl validator.FieldLevel) bool {
		_, ok := entities.ParseServiceDetailStatus(fl.Field().String())
		return ok
	})
}

// HasTagFailure reports whether err is a validation error raised by tag.
func HasTagFailure(err error, tag string) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Tag() == tag {
			return true
		}
	}
	return false
}
