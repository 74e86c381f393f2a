package utils

import (
	"cardamom-auction/internal/biddingerrors"

	"github.com/gin-gonic/gin"
)

// JSONResponse sends a structured JSON response
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError sends a structured error response. Rejections carry a stable reason code
// so clients can tell an outbid bidder from a closed auction.
func JSONError(c *gin.Context, status int, err error, message string) {
	body := gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	}
	if rejection, ok := biddingerrors.RejectionFor(err); ok {
		body["reason"] = rejection.Code
	}
	c.JSON(status, body)
}

// JSONPartial sends data that was committed together with the error describing
// the part of the operation that was not
func JSONPartial(c *gin.Context, status int, data any, err error, message string) {
	body := gin.H{
		"status":  status,
		"message": message,
		"data":    data,
		"error":   err.Error(),
	}
	if rejection, ok := biddingerrors.RejectionFor(err); ok {
		body["reason"] = rejection.Code
	}
	c.JSON(status, body)
}
