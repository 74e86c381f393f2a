package models

import "time"

// Identity is the authenticated caller as supplied by the identity provider
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

const RoleAdmin = "admin"

// IsAdmin reports whether the caller may run admin-only transitions
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// AuctionCenter is one of the fixed physical auction centers
type AuctionCenter string

const (
	CenterBodinayakanur AuctionCenter = "bodinayakanur"
	CenterPuttady       AuctionCenter = "puttady"
)

// Valid reports whether c names a known auction center
func (c AuctionCenter) Valid() bool {
	switch c {
	case CenterBodinayakanur, CenterPuttady:
		return true
	}
	return false
}

// SellerDetails is the grade/seller sub-record shared by submissions and lots
type SellerDetails struct {
	GradeCode    string  `json:"grade_code"`
	SellerName   string  `json:"seller_name"`
	NumberOfBags int     `json:"number_of_bags"`
	BagSize      float64 `json:"bag_size"`
}

// Lot represents one sellable unit of cardamom offered at auction
type Lot struct {
	LotID         string        `json:"lot_id"`
	AuctionNumber string        `json:"auction_number"`
	SubmissionID  string        `json:"submission_id,omitempty"`
	Minimum       float64       `json:"minimum"`
	Maximum       float64       `json:"maximum"`
	AuctionCenter AuctionCenter `json:"auction_center"`
	TotalQuantity float64       `json:"total_quantity"`
	Seller        SellerDetails `json:"seller"`

	// State is written only by the transitions in the auction package.
	State     LotState `json:"state"`
	BidValue1 string   `json:"bid_value_1,omitempty"`
	BidValue2 string   `json:"bid_value_2,omitempty"`

	PaymentRef  string     `json:"payment_ref,omitempty"`
	TokenNumber int        `json:"token_number,omitempty"`
	PublishedAt time.Time  `json:"published_at"`
	LastUpdated time.Time  `json:"last_updated"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
}

// BiddingStarted reports whether the lot accepts bids
func (l Lot) BiddingStarted() bool { return l.State == StateBiddingOpen }

// Sold reports whether the auction for the lot has closed
func (l Lot) Sold() bool { return l.State == StateClosed || l.State == StatePaid }

// PaymentCompleted reports whether the winner's payment is recorded on the lot
func (l Lot) PaymentCompleted() bool { return l.State == StatePaid }

// Average is the displayed midpoint of the price bounds; it is not authoritative.
func (l Lot) Average() float64 {
	return (l.Minimum + l.Maximum) / 2
}

// QuantityConsistent reports whether bags * bag size matches the declared quantity.
// It is advisory only and never enforced at write time.
func (l Lot) QuantityConsistent() bool {
	return float64(l.Seller.NumberOfBags)*l.Seller.BagSize == l.TotalQuantity
}

// Bid represents a bidder's price offer for a lot. Bids are immutable once recorded.
type Bid struct {
	BidID     string    `json:"bid_id"`
	LotID     string    `json:"lot_id"`
	UserID    string    `json:"user_id"`
	UserEmail string    `json:"user_email"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// Outranks reports whether b sorts before other in ledger order:
// amount descending, then earliest timestamp first.
func (b Bid) Outranks(other Bid) bool {
	if b.Amount != other.Amount {
		return b.Amount > other.Amount
	}
	return b.CreatedAt.Before(other.CreatedAt)
}

// PaymentRecord is the evidence that the winning bidder paid. At most one exists per lot.
type PaymentRecord struct {
	PaymentID   string    `json:"payment_id"`
	LotID       string    `json:"lot_id"`
	UserID      string    `json:"user_id"`
	Amount      float64   `json:"amount"`
	ExternalRef string    `json:"external_ref"`
	TokenNumber int       `json:"token_number"`
	CreatedAt   time.Time `json:"created_at"`
}

// PaymentIntent is what the checkout widget needs to collect a payment
type PaymentIntent struct {
	LotID         string  `json:"lot_id"`
	AuctionNumber string  `json:"auction_number"`
	UserID        string  `json:"user_id"`
	Amount        float64 `json:"amount"`
	AmountMinor   int64   `json:"amount_minor"`
	Currency      string  `json:"currency"`
	LotSummary    string  `json:"lot_summary"`
}
