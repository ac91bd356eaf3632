package errors

import (
	"net/http"

	"github.com/pixfil/onm-formation/pkg/status"
)

type ApplicationError struct {
	HTTPStatusCode int
	Status         string
	Message        string
}

func (e *ApplicationError) Error() string {
	return e.Message
}

func New(httpStatusCode int, status string, message string) error {
	return &ApplicationError{
		HTTPStatusCode: httpStatusCode,
		Status:         status,
		Message:        message,
	}
}

// Destruct unwraps err into its application error form. Errors that did not
// originate from this package are mapped to an internal server error.
func Destruct(err error) *ApplicationError {
	ae, ok := err.(*ApplicationError)
	if !ok {
		return &ApplicationError{
			HTTPStatusCode: http.StatusInternalServerError,
			Status:         status.INTERNAL_SERVER_ERROR,
			Message:        err.Error(),
		}
	}

	return ae
}
