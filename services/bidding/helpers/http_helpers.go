package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"cardamom-auction/internal/biddingerrors"
	model "cardamom-auction/internal/models"
	"cardamom-auction/utils"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// SetIdentity stores the caller identity on the request context
func SetIdentity(c *gin.Context, id model.Identity) {
	c.Set(identityKey, id)
}

// CurrentIdentity returns the caller identity, or the zero Identity for anonymous requests
func CurrentIdentity(c *gin.Context) model.Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(model.Identity); ok {
			return id
		}
	}
	return model.Identity{}
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// HandleServiceError maps err to a response and logs it; server faults log at error level
func HandleServiceError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	if rejection, ok := biddingerrors.RejectionFor(err); ok {
		return rejectionStatus(err), rejection.Message
	}

	switch {
	case errors.Is(err, biddingerrors.ErrLotNotFound):
		return http.StatusNotFound, "lot not found"
	case errors.Is(err, biddingerrors.ErrSubmissionNotFound):
		return http.StatusNotFound, "submission not found"
	case errors.Is(err, biddingerrors.ErrPaymentNotFound):
		return http.StatusNotFound, "no payment recorded for lot"
	case errors.Is(err, biddingerrors.ErrNoBids):
		return http.StatusNotFound, "no bids found for lot"
	case errors.Is(err, biddingerrors.ErrUserNoBids):
		return http.StatusOK, "no lots found for user"
	case errors.Is(err, biddingerrors.ErrLotExists), errors.Is(err, biddingerrors.ErrPaymentExists):
		return http.StatusConflict, "resource already exists"
	case errors.Is(err, biddingerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, biddingerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, biddingerrors.ErrUnauthenticated):
		return http.StatusUnauthorized, "authenticated user required"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func rejectionStatus(err error) int {
	switch {
	case errors.Is(err, biddingerrors.ErrInvalidAmount):
		return http.StatusUnprocessableEntity
	case errors.Is(err, biddingerrors.ErrNotEligible), errors.Is(err, biddingerrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, biddingerrors.ErrPaymentFlagPending):
		return http.StatusAccepted
	case errors.Is(err, biddingerrors.ErrPaymentUnverified):
		return http.StatusPaymentRequired
	default:
		return http.StatusConflict
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
