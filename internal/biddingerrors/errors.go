package biddingerrors

import (
	"errors"
	"fmt"
)

// Repository-level errors
var (
	ErrLotNotFound        = errors.New("lot not found")
	ErrLotExists          = errors.New("lot already exists")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrPaymentNotFound    = errors.New("payment record not found")
	ErrPaymentExists      = errors.New("payment record already exists for lot")
	ErrNoBids             = errors.New("no bids found for lot")
	ErrUserNoBids         = errors.New("user has not placed any bids")
)

// Validation errors, raised before any write
var (
	ErrInvalidBid     = errors.New("invalid bid")
	ErrInvalidAmount  = errors.New("invalid bid amount")
	ErrBidTooLow      = errors.New("bid amount too low")
	ErrBelowMinimum   = fmt.Errorf("%w: not above the lot minimum", ErrBidTooLow)
	ErrAuctionNotOpen = errors.New("auction is not open")
	ErrInvalidInput   = errors.New("invalid input")
)

// State errors: the caller's view of the lot is stale
var (
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrAlreadyPaid       = errors.New("lot already paid")
	ErrNotEligible       = errors.New("not eligible to pay for lot")
	ErrForbidden         = errors.New("admin role required")
	ErrUnauthenticated   = errors.New("authenticated user required")
)

// Partial-failure and collaborator errors
var (
	ErrPaymentFlagPending = errors.New("payment recorded but lot not yet marked paid")
	ErrPaymentUnverified  = errors.New("payment reference could not be verified")
)

// Rejection pairs a stable machine-readable code with the message shown to a bidder
type Rejection struct {
	Code    string
	Message string
}

var rejections = []struct {
	err error
	Rejection
}{
	{ErrAuctionNotOpen, Rejection{"AUCTION_NOT_OPEN", "auction is not open for bidding"}},
	{ErrBelowMinimum, Rejection{"BID_TOO_LOW", "bid must exceed the lot minimum price"}},
	{ErrBidTooLow, Rejection{"BID_TOO_LOW", "you were outbid: bid must exceed the current highest bid"}},
	{ErrInvalidAmount, Rejection{"INVALID_AMOUNT", "bid amount must be a positive number"}},
	{ErrAlreadyPaid, Rejection{"ALREADY_PAID", "you already paid for this lot"}},
	{ErrNotEligible, Rejection{"NOT_ELIGIBLE", "only the winning bidder of a sold, unpaid lot can pay"}},
	{ErrInvalidTransition, Rejection{"INVALID_TRANSITION", "the lot is not in a state that allows this action; refresh and retry"}},
	{ErrPaymentFlagPending, Rejection{"PAYMENT_FLAG_PENDING", "payment recorded; lot status will be updated on reconciliation"}},
	{ErrPaymentUnverified, Rejection{"PAYMENT_UNVERIFIED", "payment could not be confirmed with the gateway"}},
	{ErrForbidden, Rejection{"FORBIDDEN", "admin role required"}},
}

// RejectionFor returns the rejection describing err, if err is one of the
// validation, state or partial-failure errors.
func RejectionFor(err error) (Rejection, bool) {
	for _, r := range rejections {
		if errors.Is(err, r.err) {
			return r.Rejection, true
		}
	}
	return Rejection{}, false
}
