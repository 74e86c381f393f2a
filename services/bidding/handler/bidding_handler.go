package handler

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"cardamom-auction/internal/biddingerrors"
	model "cardamom-auction/internal/models"
	"cardamom-auction/services/bidding/helpers"
	"cardamom-auction/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=bidding_handler.go -destination=mock_bidding_service_test.go -package=handler

type BiddingServiceInterface interface {
	SubmitBid(ctx context.Context, lotID string, bidder model.Identity, amount float64) (model.Bid, error)
	GetBidsForLot(ctx context.Context, lotID string) ([]model.Bid, error)
	GetHighestBid(ctx context.Context, lotID string) (model.Bid, error)
	GetLotsByUser(ctx context.Context, userID string) ([]model.Lot, error)
	ProposeQuickBid(ctx context.Context, lotID string, slot int, running float64) (float64, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// SubmitBidHandler handles POST /lots/:lot_id/bids
func (h *BiddingHandler) SubmitBidHandler(c *gin.Context) {
	lotID := c.Param("lot_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitBidHandler", err)
		return
	}

	bidder := helpers.CurrentIdentity(c)
	bid, err := h.service.SubmitBid(c.Request.Context(), lotID, bidder, *req.Amount)
	if err != nil {
		helpers.HandleServiceError(c, "SubmitBidHandler", err, map[string]any{
			"lot_id":  lotID,
			"user_id": bidder.UserID,
			"amount":  *req.Amount,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("SubmitBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":  bid.BidID,
		"lot_id":  bid.LotID,
		"user_id": bid.UserID,
		"amount":  bid.Amount,
	})
}

// GetBidsByLotHandler handles GET /lots/:lot_id/bids
func (h *BiddingHandler) GetBidsByLotHandler(c *gin.Context) {
	lotID := c.Param("lot_id")
	bids, err := h.service.GetBidsForLot(c.Request.Context(), lotID)
	if err != nil && !errors.Is(err, biddingerrors.ErrNoBids) {
		helpers.HandleServiceError(c, "GetBidsByLotHandler", err, map[string]any{"lot_id": lotID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponses(bids), "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByLotHandler", "bids retrieved successfully", map[string]any{
		"lot_id": lotID,
		"count":  len(bids),
	})
}

// GetHighestBidHandler handles GET /lots/:lot_id/highest
func (h *BiddingHandler) GetHighestBidHandler(c *gin.Context) {
	lotID := c.Param("lot_id")
	bid, err := h.service.GetHighestBid(c.Request.Context(), lotID)
	if err != nil {
		if errors.Is(err, biddingerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no bids yet")
			utils.Info("GetHighestBidHandler: no bids yet", map[string]any{"lot_id": lotID})
			return
		}
		helpers.HandleServiceError(c, "GetHighestBidHandler", err, map[string]any{"lot_id": lotID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponse(bid), "highest bid retrieved successfully")
}

// GetLotsByUserHandler handles GET /users/:user_id/lots
func (h *BiddingHandler) GetLotsByUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	lots, err := h.service.GetLotsByUser(c.Request.Context(), userID)
	if err != nil && !errors.Is(err, biddingerrors.ErrUserNoBids) {
		helpers.HandleServiceError(c, "GetLotsByUserHandler", err, map[string]any{"user_id": userID})
		return
	}

	if lots == nil {
		lots = []model.Lot{}
	}

	utils.JSONResponse(c, http.StatusOK, lots, "lots retrieved successfully")
	helpers.LogSuccess("GetLotsByUserHandler", "lots retrieved successfully", map[string]any{
		"user_id":    userID,
		"lots_count": len(lots),
	})
}

// QuickBidHandler handles GET /lots/:lot_id/quick-bid?slot=1&running=0
func (h *BiddingHandler) QuickBidHandler(c *gin.Context) {
	lotID := c.Param("lot_id")

	slot, err := strconv.Atoi(c.DefaultQuery("slot", "1"))
	if err != nil {
		helpers.HandleBindError(c, "QuickBidHandler", err)
		return
	}
	running, err := strconv.ParseFloat(c.DefaultQuery("running", "0"), 64)
	if err == nil && (math.IsNaN(running) || math.IsInf(running, 0)) {
		err = fmt.Errorf("running total %v is not a finite number", running)
	}
	if err != nil {
		helpers.HandleBindError(c, "QuickBidHandler", err)
		return
	}

	proposal, err := h.service.ProposeQuickBid(c.Request.Context(), lotID, slot, running)
	if err != nil {
		helpers.HandleServiceError(c, "QuickBidHandler", err, map[string]any{"lot_id": lotID, "slot": slot})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.QuickBidResponse{LotID: lotID, Slot: slot, Proposal: proposal}, "quick bid proposed")
}
