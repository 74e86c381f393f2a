package helpers

import (
	"time"

	model "cardamom-auction/internal/models"
)

// Request/Response DTOs

// PlaceBidRequest.Amount is nil only when absent; zero and negative values reach the admission policy.
type PlaceBidRequest struct {
	Amount *float64 `json:"amount" binding:"required"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	LotID     string  `json:"lot_id"`
	UserID    string  `json:"user_id"`
	UserEmail string  `json:"user_email"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

func ToBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:     bid.BidID,
		LotID:     bid.LotID,
		UserID:    bid.UserID,
		UserEmail: bid.UserEmail,
		Amount:    bid.Amount,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func ToBidResponses(bids []model.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, ToBidResponse(b))
	}
	return out
}

type QuickBidResponse struct {
	LotID    string  `json:"lot_id"`
	Slot     int     `json:"slot"`
	Proposal float64 `json:"proposal"`
}

// LotSnapshot is one frame of the live lot stream
type LotSnapshot struct {
	Lot     model.Lot     `json:"lot"`
	Bids    []BidResponse `json:"bids"`
	Highest *BidResponse  `json:"highest,omitempty"`
}

// OpenBiddingRequest carries the quick-bid increments as entered by the admin
type OpenBiddingRequest struct {
	BidValue1 string `json:"bid_value_1" binding:"required"`
	BidValue2 string `json:"bid_value_2" binding:"required"`
}

type CloseAuctionResponse struct {
	Lot    model.Lot    `json:"lot"`
	Winner *BidResponse `json:"winner,omitempty"`
}

type CountdownRequest struct {
	Seconds int `json:"seconds" binding:"gte=0"`
}

type CountdownResponse struct {
	LotID    string `json:"lot_id"`
	Deadline string `json:"deadline"`
}

type FinalizePaymentRequest struct {
	PaymentRef string `json:"payment_ref" binding:"required"`
}

type ReconcileResponse struct {
	Lot      model.Lot `json:"lot"`
	Repaired bool      `json:"repaired"`
}

type SubmissionRequest struct {
	AuctionCenter string  `json:"auction_center" binding:"required"`
	TotalQuantity float64 `json:"total_quantity" binding:"required,gt=0"`
	GradeCode     string  `json:"grade_code" binding:"required"`
	SellerName    string  `json:"seller_name" binding:"required"`
	NumberOfBags  int     `json:"number_of_bags" binding:"gte=0"`
	BagSize       float64 `json:"bag_size" binding:"gte=0"`
}

type AddToAuctionRequest struct {
	Minimum float64 `json:"minimum" binding:"required,gt=0"`
	Maximum float64 `json:"maximum" binding:"required,gtefield=Minimum"`
}
