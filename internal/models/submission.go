package models

import "time"

// ApprovalStatus is the review outcome of a seller submission
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Submission is a seller's pre-auction lot proposal
type Submission struct {
	SubmissionID   string         `json:"submission_id"`
	SellerID       string         `json:"seller_id"`
	SellerEmail    string         `json:"seller_email"`
	AuctionCenter  AuctionCenter  `json:"auction_center"`
	TotalQuantity  float64        `json:"total_quantity"`
	Seller         SellerDetails  `json:"seller"`
	ApprovalStatus ApprovalStatus `json:"approval_status"`
	FirstApproval  bool           `json:"first_approval"`
	SecondApproval bool           `json:"second_approval"`
	LotNumber      *int           `json:"lot_number,omitempty"`
	AddedToAuction bool           `json:"added_to_auction"`
	AuctionNumber  string         `json:"auction_number,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
