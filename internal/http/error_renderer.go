package httpx

import (
	"context"
	"errors"
	"net/http"

	apperrors "github.com/jersab/Poject-BizCardHub/internal/errors"
)

const errMsgFixBelow = "Please fix the errors below."

// ErrorRenderer is a function that renders an error template with the given data.
// This allows the error renderer to work with different rendering strategies.
type ErrorRenderer func(w http.ResponseWriter, r *http.Request, data any)

// ErrorOpts contains all options needed to render an error response.
// This struct is used to maintain the ≤3 parameters constraint while providing
// flexibility for different error scenarios.
type ErrorOpts struct {
	// W is the HTTP response writer
	W http.ResponseWriter
	// R is the HTTP request
	R *http.Request
	// Err is the error that occurred (optional, can be nil if only field errors)
	Err error
	// FieldErrors contains field-level validation errors (field name → error message)
	FieldErrors map[string]string
	// Renderer is the function to render the error template
	Renderer ErrorRenderer
	// PageMeta contains page metadata (title, current page, etc.)
	PageMeta PageMeta
	// Data contains additional template data to pass to the renderer
	// This is useful for preserving form data across a failed submission.
	Data map[string]any
	// StatusCode is the HTTP status code to set (optional, defaults to 200 for HTMX compatibility)
	StatusCode int
	// ShowToast triggers a toast notification with the error message (optional)
	// When true, sends an HX-Trigger header with showToast event
	ShowToast bool
}

// RenderError renders an error response using consistent error handling patterns.
// It maps application error categories to user-facing messages: validation
// failures keep the server's wording verbatim, transport failures get a
// generic retry message, and authorization failures never leak detail.
func RenderError(opts ErrorOpts) {
	// Guard: ensure renderer is provided
	if opts.Renderer == nil {
		http.Error(opts.W, "misconfigured error renderer", http.StatusInternalServerError)
		return
	}

	builder := NewTemplateData(opts.R, opts.PageMeta)

	// Process the error if present (this may add field errors)
	generalError := processError(opts.Err, &opts.FieldErrors)

	// Add field errors (including any added by processError). Errors is always
	// present so templates can index it unconditionally.
	if len(opts.FieldErrors) > 0 {
		builder.WithFieldErrors(opts.FieldErrors)
	} else {
		builder.With("Errors", map[string]string{})
	}

	// Add general error message
	if generalError != "" {
		builder.WithError(generalError)
	} else if len(opts.FieldErrors) > 0 {
		// If we have field errors but no general error, use default message
		builder.WithError(errMsgFixBelow)
	}

	// Add any additional data
	if opts.Data != nil {
		for k, v := range opts.Data {
			builder.With(k, v)
		}
	}

	// Trigger toast notification if requested
	if opts.ShowToast && generalError != "" {
		triggerToast(opts.W, generalError, "error")
	}

	// Set HTTP status code if specified
	if opts.StatusCode != 0 {
		opts.W.WriteHeader(opts.StatusCode)
	}

	opts.Renderer(opts.W, opts.R, builder.Build())
}

// processError maps an error to a user-facing message and returns it.
// Server-reported validation errors are shown verbatim; when the error names
// a field, it is attached to fieldErrors instead of the general message.
// Returns empty string if err is nil.
func processError(err error, fieldErrors *map[string]string) string {
	if err == nil {
		return ""
	}

	// Distinguish between timeout and cancellation for better UX
	if errors.Is(err, context.DeadlineExceeded) {
		return "Request timed out. Please try again."
	}
	if errors.Is(err, context.Canceled) {
		return "Request was canceled."
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return processAppError(appErr, fieldErrors)
	}

	// Generic error
	return "An error occurred. Please try again."
}

// processAppError maps AppError categories to user-facing messages.
func processAppError(appErr *apperrors.AppError, fieldErrors *map[string]string) string {
	switch appErr.Code {
	case apperrors.ErrCodeValidation:
		// The server's wording is the source of truth for what was wrong
		// with the submission; repeat it verbatim.
		if appErr.Field != "" && fieldErrors != nil {
			if *fieldErrors == nil {
				*fieldErrors = make(map[string]string)
			}
			(*fieldErrors)[appErr.Field] = appErr.Message
			return errMsgFixBelow
		}
		return appErr.Message
	case apperrors.ErrCodeAuthentication:
		return appErr.Message
	case apperrors.ErrCodeAuthorization:
		return "You don't have permission to do that."
	case apperrors.ErrCodeNotFound:
		return "That item could not be found."
	case apperrors.ErrCodeNetwork:
		return "Could not reach the server. Please check your connection and try again."
	case apperrors.ErrCodeDecode, apperrors.ErrCodeInternal:
		return "An unexpected error occurred. Please try again."
	default:
		return "An error occurred. Please try again."
	}
}
