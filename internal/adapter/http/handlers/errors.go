package handlers

import (
	"errors"
	"net/http"

	request "autocare_api/internal/adapter/http/dto/request"
	"autocare_api/internal/adapter/http/middleware"
	"autocare_api/internal/domain/entities"
	"autocare_api/internal/domain/lifecycle"
	"autocare_api/internal/usecase"
	"autocare_api/internal/usecase/interfaces"
	"autocare_api/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
)

// mapError translates use case and domain errors into the HTTP error envelope.
// Validation and transition errors carry their own message so clients can tell
// which rule refused the command.
func mapError(err error) *pkg.AppError {
	var validationErr *lifecycle.ValidationError
	var transitionErr *lifecycle.TransitionError

	switch {
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_ID", "Invalid id", http.StatusBadRequest)
	case errors.Is(err, request.ErrInvalidDecision):
		return errInvalidRequest.WithMessage(err.Error())
	case errors.As(err, &validationErr):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", validationErr.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, lifecycle.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Resource not found", http.StatusNotFound)
	case errors.As(err, &transitionErr):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", transitionErr.Error(), http.StatusConflict)
	case errors.Is(err, interfaces.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Resource was modified concurrently, retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotVisible):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Resource not visible", http.StatusForbidden)
	case errors.Is(err, lifecycle.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Actor not allowed", http.StatusForbidden)
	case errors.Is(err, usecase.ErrHistoryTampered):
		return pkg.NewDomainError("HISTORY_TAMPERED", "Job history failed verification", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrAttachmentTooLarge):
		return pkg.NewDomainErrorSimple("ATTACHMENT_TOO_LARGE", "Attachment too large", http.StatusRequestEntityTooLarge)
	case errors.Is(err, usecase.ErrMediaStorageNotConfigured):
		return pkg.NewDomainErrorSimple("MEDIA_STORAGE_UNAVAILABLE", "Media storage not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", "Payment not approved", http.StatusPaymentRequired)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, err error) {
	appErr := mapError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// actorOrAbort returns the authenticated caller, answering 401 when there is none.
func actorOrAbort(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
		return entities.Actor{}, false
	}
	return actor, true
}
