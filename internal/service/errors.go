package service

import (
	"errors"

	appErrors "github.com/noah-isme/simak-api/pkg/errors"
)

// somethingWentWrong is the 500 message of the offered-course and AKM endpoints.
const somethingWentWrong = "Something went wrong"

// internalError keeps typed errors as they are and wraps anything else as a 500.
func internalError(err error) error {
	return internalErrorWithMessage(err, appErrors.ErrInternal.Message)
}

func internalErrorWithMessage(err error, message string) error {
	var appErr *appErrors.Error
	if errors.As(err, &appErr) {
		return err
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}
