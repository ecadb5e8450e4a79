package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"dealflow/internal/adapter/http/middleware"
	"dealflow/internal/domain/domainerr"
	"dealflow/internal/domain/entities"
	"dealflow/internal/usecase"
	"dealflow/pkg"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("BAD_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errMissingActor   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authorization is required", http.StatusUnauthorized)
)

// mapError converts a use case error into the HTTP error envelope. Messages
// of domain errors are safe to expose; anything else becomes INTERNAL_ERROR.
func mapError(err error) *pkg.AppError {
	var verr *domainerr.ValidationError
	if errors.As(err, &verr) {
		return pkg.NewValidationError("Validation failed", verr.Fields, http.StatusBadRequest)
	}

	switch {
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider rejected the credentials", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider is not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrObjectStorageNotConfigured):
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", "File uploads are not configured", err, http.StatusServiceUnavailable)
	}

	var derr *domainerr.Error
	if !errors.As(err, &derr) {
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
	switch derr.Kind() {
	case domainerr.ErrNotFound:
		return pkg.NewDomainErrorSimple("NOT_FOUND", derr.Error(), http.StatusNotFound)
	case domainerr.ErrBadRequest:
		return pkg.NewDomainErrorSimple("BAD_REQUEST", derr.Error(), http.StatusBadRequest)
	case domainerr.ErrForbidden:
		return pkg.NewDomainErrorSimple("FORBIDDEN", derr.Error(), http.StatusForbidden)
	case domainerr.ErrConflict:
		return pkg.NewDomainErrorSimple("CONFLICT", derr.Error(), http.StatusConflict)
	case domainerr.ErrUnauthorized:
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", derr.Error(), http.StatusUnauthorized)
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

// bindingError reports every field rejected by the validator, or a generic
// bad request for malformed JSON.
func bindingError(err error) *pkg.AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errInvalidPayload
	}
	fields := make([]domainerr.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domainerr.FieldError{
			Field:   jsonFieldPath(fe.Namespace()),
			Message: validationMessage(fe),
		})
	}
	return pkg.NewValidationError("Validation failed", fields, http.StatusBadRequest)
}

// jsonFieldPath turns "SubmitEstimateRequest.Customer.Email" into
// "customer.email".
func jsonFieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = toSnake(p)
	}
	return strings.Join(parts, ".")
}

func toSnake(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		upper := r >= 'A' && r <= 'Z'
		if upper && i > 0 && runes[i-1] != '[' {
			prevLower := runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if prevLower || (nextLower && runes[i-1] >= 'A' && runes[i-1] <= 'Z') {
				b.WriteByte('_')
			}
		}
		if upper {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "is not a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	}
	return fmt.Sprintf("failed on %q", fe.Tag())
}

// respond writes the error envelope. Internal causes are attached to the gin
// context so the request logger records them.
func respond(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondError(c *gin.Context, err error) {
	respond(c, mapError(err))
}

func currentActor(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok || actor.IsZero() {
		respond(c, errMissingActor)
		return entities.Actor{}, false
	}
	return actor, true
}
