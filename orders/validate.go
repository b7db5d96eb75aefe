package orders

import (
	"github.com/go-playground/validator/v10"

	"encore.dev/beta/errs"
)

var validate = validator.New()

func validationError(err error) error {
	return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
}
