package handler

import (
	"context"
	"net/http"
	"time"

	model "cardamom-auction/internal/models"
	"cardamom-auction/services/bidding/helpers"
	"cardamom-auction/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=lot_handler.go -destination=mock_auction_service_test.go -package=handler

type AuctionServiceInterface interface {
	GetLot(ctx context.Context, lotID string) (model.Lot, error)
	ListLots(ctx context.Context) ([]model.Lot, error)
	OpenBidding(ctx context.Context, lotID, bidValue1, bidValue2 string) (model.Lot, error)
	CloseAuction(ctx context.Context, lotID string) (model.Lot, *model.Bid, error)
	Winner(ctx context.Context, lotID string) (model.Bid, error)
	StartCountdown(ctx context.Context, lotID string, d time.Duration) (time.Time, error)
	CancelCountdown(lotID string) bool
}

type LotHandler struct {
	service AuctionServiceInterface
}

func NewLotHandler(service AuctionServiceInterface) *LotHandler {
	return &LotHandler{service: service}
}

// ListLotsHandler handles GET /lots
func (h *LotHandler) ListLotsHandler(c *gin.Context) {
	lots, err := h.service.ListLots(c.Request.Context())
	if err != nil {
		helpers.HandleServiceError(c, "ListLotsHandler", err, nil)
		return
	}
	if lots == nil {
		lots = []model.Lot{}
	}
	utils.JSONResponse(c, http.StatusOK, lots, "lots retrieved successfully")
}

// GetLotHandler handles GET /lots/:lot_id
func (h *LotHandler) GetLotHandler(c *gin.Context) {
	lotID := c.Param("lot_id")
	lot, err := h.service.GetLot(c.Request.Context(), lotID)
	if err != nil {
		helpers.HandleServiceError(c, "GetLotHandler", err, map[string]any{"lot_id": lotID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, lot, "lot retrieved successfully")
}

// WinnerHandler handles GET /lots/:lot_id/winner
func (h *LotHandler) WinnerHandler(c *gin.Context) {
	lotID := c.Param("lot_id")
	bid, err := h.service.Winner(c.Request.Context(), lotID)
	if err != nil {
		helpers.HandleServiceError(c, "WinnerHandler", err, map[string]any{"lot_id": lotID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponse(bid), "winner retrieved successfully")
}

// OpenBiddingHandler handles POST /admin/lots/:lot_id/open
func (h *LotHandler) OpenBiddingHandler(c *gin.Context) {
	lotID := c.Param("lot_id")

	var req helpers.OpenBiddingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "OpenBiddingHandler", err)
		return
	}

	lot, err := h.service.OpenBidding(c.Request.Context(), lotID, req.BidValue1, req.BidValue2)
	if err != nil {
		helpers.HandleServiceError(c, "OpenBiddingHandler", err, map[string]any{"lot_id": lotID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, lot, "bidding opened")
	helpers.LogSuccess("OpenBiddingHandler", "bidding opened", map[string]any{
		"lot_id": lotID,
		"admin":  helpers.CurrentIdentity(c).UserID,
	})
}

// CloseAuctionHandler handles POST /admin/lots/:lot_id/close
func (h *LotHandler) CloseAuctionHandler(c *gin.Context) {
	lotID := c.Param("lot_id")

	lot, winner, err := h.service.CloseAuction(c.Request.Context(), lotID)
	if err != nil {
		helpers.HandleServiceError(c, "CloseAuctionHandler", err, map[string]any{"lot_id": lotID})
		return
	}

	resp := helpers.CloseAuctionResponse{Lot: lot}
	if winner != nil {
		w := helpers.ToBidResponse(*winner)
		resp.Winner = &w
	}

	utils.JSONResponse(c, http.StatusOK, resp, "auction closed")
	helpers.LogSuccess("CloseAuctionHandler", "auction closed", map[string]any{
		"lot_id": lotID,
		"admin":  helpers.CurrentIdentity(c).UserID,
	})
}

// StartCountdownHandler handles POST /admin/lots/:lot_id/countdown
func (h *LotHandler) StartCountdownHandler(c *gin.Context) {
	lotID := c.Param("lot_id")

	var req helpers.CountdownRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			helpers.HandleBindError(c, "StartCountdownHandler", err)
			return
		}
	}

	deadline, err := h.service.StartCountdown(c.Request.Context(), lotID, time.Duration(req.Seconds)*time.Second)
	if err != nil {
		helpers.HandleServiceError(c, "StartCountdownHandler", err, map[string]any{"lot_id": lotID})
		return
	}

	resp := helpers.CountdownResponse{LotID: lotID, Deadline: deadline.UTC().Format(time.RFC3339Nano)}
	utils.JSONResponse(c, http.StatusAccepted, resp, "countdown started")
}

// CancelCountdownHandler handles DELETE /admin/lots/:lot_id/countdown
func (h *LotHandler) CancelCountdownHandler(c *gin.Context) {
	lotID := c.Param("lot_id")

	if !h.service.CancelCountdown(lotID) {
		utils.JSONResponse(c, http.StatusOK, gin.H{"lot_id": lotID, "cancelled": false}, "no countdown running")
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"lot_id": lotID, "cancelled": true}, "countdown cancelled")
}
