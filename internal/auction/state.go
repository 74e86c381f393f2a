package auction

import (
	"cardamom-auction/internal/biddingerrors"
	model "cardamom-auction/internal/models"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ParseIncrement parses an admin-set quick-bid increment, which must be a positive number
func ParseIncrement(value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("auction: %w - increment %q is not a number", biddingerrors.ErrInvalidInput, value)
	}
	if d.Sign() <= 0 {
		return decimal.Zero, fmt.Errorf("auction: %w - increment %q must be positive", biddingerrors.ErrInvalidInput, value)
	}
	return d, nil
}

// OpenBidding moves a lot from NotStarted to BiddingOpen with both quick-bid increments set
func OpenBidding(lot model.Lot, bidValue1, bidValue2 string, now time.Time) (model.Lot, error) {
	if lot.State != model.StateNotStarted {
		return lot, fmt.Errorf("auction: %w - cannot open bidding on lot %s in state %s", biddingerrors.ErrInvalidTransition, lot.LotID, lot.State)
	}
	if _, err := ParseIncrement(bidValue1); err != nil {
		return lot, err
	}
	if _, err := ParseIncrement(bidValue2); err != nil {
		return lot, err
	}

	lot.State = model.StateBiddingOpen
	lot.BidValue1 = bidValue1
	lot.BidValue2 = bidValue2
	lot.LastUpdated = now
	return lot, nil
}

// CloseAuction moves a lot from BiddingOpen to Closed
func CloseAuction(lot model.Lot, now time.Time) (model.Lot, error) {
	if lot.State != model.StateBiddingOpen {
		return lot, fmt.Errorf("auction: %w - cannot close lot %s in state %s", biddingerrors.ErrInvalidTransition, lot.LotID, lot.State)
	}

	lot.State = model.StateClosed
	lot.ClosedAt = &now
	lot.LastUpdated = now
	return lot, nil
}

// MarkPaid moves a lot from Closed to Paid and attaches the payment reference and token
func MarkPaid(lot model.Lot, paymentRef string, tokenNumber int, now time.Time) (model.Lot, error) {
	switch lot.State {
	case model.StateClosed:
	case model.StatePaid:
		return lot, fmt.Errorf("auction: %w - lot %s", biddingerrors.ErrAlreadyPaid, lot.LotID)
	default:
		return lot, fmt.Errorf("auction: %w - cannot mark lot %s paid in state %s", biddingerrors.ErrInvalidTransition, lot.LotID, lot.State)
	}

	lot.State = model.StatePaid
	lot.PaymentRef = paymentRef
	lot.TokenNumber = tokenNumber
	lot.LastUpdated = now
	return lot, nil
}

// ReconcilePayment re-derives the paid state of a sold lot from its payment record,
// which is authoritative over the lot's own state. It reports whether the lot changed.
func ReconcilePayment(lot model.Lot, rec *model.PaymentRecord, now time.Time) (model.Lot, bool) {
	switch {
	case rec != nil && lot.State == model.StateClosed:
		lot.State = model.StatePaid
		lot.PaymentRef = rec.ExternalRef
		lot.TokenNumber = rec.TokenNumber
	case rec == nil && lot.State == model.StatePaid:
		lot.State = model.StateClosed
		lot.PaymentRef = ""
		lot.TokenNumber = 0
	default:
		return lot, false
	}
	lot.LastUpdated = now
	return lot, true
}
