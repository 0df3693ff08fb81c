package handler

import (
	"errors"

	"recipehub-admin-api/internal/service"
	"recipehub-admin-api/internal/workflow"
	"recipehub-admin-api/pkg/apierror"
)

// toAPIError translates domain errors into structured API errors. Anything
// unrecognized becomes a 500.
func toAPIError(err error) *apierror.Error {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		details := make([]apierror.FieldError, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			details = append(details, apierror.FieldError{Field: f.Field, Message: f.Message})
		}
		return apierror.ValidationError("request validation failed", details...)
	}

	switch {
	case errors.Is(err, workflow.ErrInvalidTransition), errors.Is(err, workflow.ErrTerminalState):
		return apierror.InvalidTransition(err.Error())
	case errors.Is(err, service.ErrUnknownVersion):
		return apierror.UnknownVersion(err.Error())
	case service.IsNotFound(err):
		return apierror.NotFound(err.Error())
	default:
		return apierror.InternalError("")
	}
}
