package errors

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"lottoscope/internal/dataprocessing"
	"lottoscope/internal/infrastructure"
	"lottoscope/internal/services"
)

// ErrorHandler provides centralized error handling for the HTTP layer. It
// maps engine errors to API error envelopes and logs server-side failures.
type ErrorHandler struct {
	logger *slog.Logger
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *slog.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger.With(slog.String("component", "error_handler")),
	}
}

// HandleError converts any error to an API error response and writes it.
func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	// Copy before stamping the trace ID: mapError may return one of the
	// shared predefined errors.
	apiErr := *h.mapError(err)
	apiErr.TraceID = infrastructure.GetTraceID(r.Context())

	if apiErr.StatusCode >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
	}

	render.Status(r, apiErr.StatusCode)
	render.JSON(w, r, &apiErr)
}

// mapError translates engine error types onto the API taxonomy. Per-file
// errors never reach this path - they travel inside the result payload - so
// everything here is batch- or request-level.
func (h *ErrorHandler) mapError(err error) *APIError {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr
	}

	var noDraws *dataprocessing.NoValidDrawsError
	if stderrors.As(err, &noDraws) {
		return NewWithDetails(http.StatusUnprocessableEntity, "NO_VALID_DRAWS", noDraws.Error(), map[string]int{
			"draw_size":     noDraws.DrawSize,
			"total_numbers": noDraws.TotalNumbers,
		})
	}

	switch {
	case stderrors.Is(err, services.ErrNoFiles):
		return ErrMissingFiles
	case stderrors.Is(err, services.ErrInvalidProfile):
		return NewWithDetails(http.StatusBadRequest, "VALIDATION_FAILED", "Invalid lottery profile", err.Error())
	case stderrors.Is(err, services.ErrNoStatistics):
		return NewWithDetails(http.StatusBadRequest, "VALIDATION_FAILED", err.Error(), nil)
	case stderrors.Is(err, services.ErrEmptyRange):
		return NewWithDetails(http.StatusUnprocessableEntity, "EMPTY_RANGE", err.Error(), nil)
	}

	return ErrInternalServer
}
