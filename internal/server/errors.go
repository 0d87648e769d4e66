package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/rfp-manager/internal/db"
	"github.com/jonathan/rfp-manager/internal/dispatch"
	"github.com/jonathan/rfp-manager/internal/extraction"
)

// HTTPStatus returns the appropriate HTTP status code for an error surfaced
// by the extraction or dispatch layers.
func HTTPStatus(err error) int {
	var (
		dispatchValidation *dispatch.ValidationError
		dispatchNotFound   *dispatch.NotFoundError
		dispatchFailed     *dispatch.DispatchError
		extractValidation  *extraction.ValidationError
		extractConfig      *extraction.ConfigurationError
		extractSchema      *extraction.ExtractionError
		extractTransport   *extraction.TransportError
	)

	switch {
	case errors.As(err, &dispatchValidation), errors.As(err, &extractValidation):
		return http.StatusBadRequest
	case errors.As(err, &dispatchNotFound), errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &dispatchFailed),
		errors.As(err, &extractConfig),
		errors.As(err, &extractSchema),
		errors.As(err, &extractTransport):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
