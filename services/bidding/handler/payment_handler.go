package handler

import (
	"context"
	"errors"
	"net/http"

	"cardamom-auction/internal/biddingerrors"
	model "cardamom-auction/internal/models"
	"cardamom-auction/services/bidding/helpers"
	"cardamom-auction/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=payment_handler.go -destination=mock_settlement_service_test.go -package=handler

type SettlementServiceInterface interface {
	InitiatePayment(ctx context.Context, lotID string, payer model.Identity) (model.PaymentIntent, error)
	FinalizePayment(ctx context.Context, lotID string, payer model.Identity, externalRef string) (model.PaymentRecord, error)
	GetPayment(ctx context.Context, lotID string) (model.PaymentRecord, error)
	Reconcile(ctx context.Context, lotID string) (model.Lot, bool, error)
}

type PaymentHandler struct {
	service SettlementServiceInterface
}

func NewPaymentHandler(service SettlementServiceInterface) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// InitiatePaymentHandler handles POST /lots/:lot_id/payment/intent
func (h *PaymentHandler) InitiatePaymentHandler(c *gin.Context) {
	lotID := c.Param("lot_id")
	payer := helpers.CurrentIdentity(c)

	intent, err := h.service.InitiatePayment(c.Request.Context(), lotID, payer)
	if err != nil {
		helpers.HandleServiceError(c, "InitiatePaymentHandler", err, map[string]any{"lot_id": lotID, "user_id": payer.UserID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, intent, "payment intent created")
}

// FinalizePaymentHandler handles POST /lots/:lot_id/payment, called with the gateway's payment reference
func (h *PaymentHandler) FinalizePaymentHandler(c *gin.Context) {
	lotID := c.Param("lot_id")
	payer := helpers.CurrentIdentity(c)

	var req helpers.FinalizePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "FinalizePaymentHandler", err)
		return
	}

	rec, err := h.service.FinalizePayment(c.Request.Context(), lotID, payer, req.PaymentRef)
	if errors.Is(err, biddingerrors.ErrPaymentFlagPending) {
		_, message := helpers.MapErrorToHTTP(err)
		utils.JSONPartial(c, http.StatusAccepted, rec, err, message)
		utils.Error("FinalizePaymentHandler: payment recorded, lot flag pending", map[string]any{
			"lot_id":     lotID,
			"payment_id": rec.PaymentID,
			"error":      err.Error(),
		})
		return
	}
	if err != nil {
		helpers.HandleServiceError(c, "FinalizePaymentHandler", err, map[string]any{"lot_id": lotID, "user_id": payer.UserID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, rec, "payment recorded successfully")
	helpers.LogSuccess("FinalizePaymentHandler", "payment recorded successfully", map[string]any{
		"lot_id":       lotID,
		"user_id":      rec.UserID,
		"token_number": rec.TokenNumber,
	})
}

// GetPaymentHandler handles GET /lots/:lot_id/payment
func (h *PaymentHandler) GetPaymentHandler(c *gin.Context) {
	lotID := c.Param("lot_id")
	rec, err := h.service.GetPayment(c.Request.Context(), lotID)
	if err != nil {
		helpers.HandleServiceError(c, "GetPaymentHandler", err, map[string]any{"lot_id": lotID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, rec, "payment retrieved successfully")
}

// ReconcileHandler handles POST /admin/lots/:lot_id/reconcile
func (h *PaymentHandler) ReconcileHandler(c *gin.Context) {
	lotID := c.Param("lot_id")
	lot, repaired, err := h.service.Reconcile(c.Request.Context(), lotID)
	if err != nil {
		helpers.HandleServiceError(c, "ReconcileHandler", err, map[string]any{"lot_id": lotID})
		return
	}

	message := "lot already consistent"
	if repaired {
		message = "lot payment state repaired"
	}
	utils.JSONResponse(c, http.StatusOK, helpers.ReconcileResponse{Lot: lot, Repaired: repaired}, message)
}
