package settlement

import (
	"cardamom-auction/internal/auction"
	"cardamom-auction/internal/biddingerrors"
	"cardamom-auction/internal/feed"
	model "cardamom-auction/internal/models"
	"cardamom-auction/internal/repository"
	"cardamom-auction/utils"
	"context"
	"errors"
	"fmt"
	"time"
)

// Service records payment of sold lots by their winning bidders.
//
// Finalizing a payment writes two documents: the payment record, then the lot's
// paid state. The record is the source of truth. When the second write fails the
// caller gets the record together with ErrPaymentFlagPending, and Reconcile
// repairs the lot later.
type Service struct {
	repo     repository.AuctionDB
	verifier Verifier
	notifier feed.Notifier
	currency string

	now      func() time.Time
	newToken func() (int, error)
}

func NewService(repo repository.AuctionDB, verifier Verifier, notifier feed.Notifier, currency string) *Service {
	return &Service{
		repo:     repo,
		verifier: verifier,
		notifier: notifier,
		currency: currency,
		now:      func() time.Time { return time.Now().UTC() },
		newToken: utils.GenerateToken,
	}
}

// InitiatePayment returns what the checkout widget needs for the winner of a sold, unpaid lot
func (s *Service) InitiatePayment(ctx context.Context, lotID string, payer model.Identity) (model.PaymentIntent, error) {
	lot, err := s.repo.GetLot(ctx, lotID)
	if err != nil {
		return model.PaymentIntent{}, fmt.Errorf("settlement: failed to get lot %s: %w", lotID, err)
	}
	if !lot.Sold() || lot.PaymentCompleted() {
		return model.PaymentIntent{}, fmt.Errorf("settlement: %w - lot %s is %s", biddingerrors.ErrNotEligible, lotID, lot.State)
	}
	if _, err := s.repo.GetPaymentRecord(ctx, lotID); err == nil {
		return model.PaymentIntent{}, fmt.Errorf("settlement: %w - lot %s already has a payment record", biddingerrors.ErrNotEligible, lotID)
	} else if !errors.Is(err, biddingerrors.ErrPaymentNotFound) {
		return model.PaymentIntent{}, fmt.Errorf("settlement: failed to check payment for lot %s: %w", lotID, err)
	}

	winner, err := s.winner(ctx, lot, payer)
	if err != nil {
		return model.PaymentIntent{}, err
	}

	return model.PaymentIntent{
		LotID:         lot.LotID,
		AuctionNumber: lot.AuctionNumber,
		UserID:        winner.UserID,
		Amount:        winner.Amount,
		AmountMinor:   ToMinorUnits(winner.Amount),
		Currency:      s.currency,
		LotSummary:    lotSummary(lot),
	}, nil
}

// FinalizePayment records the winner's payment once the gateway has called back with externalRef
func (s *Service) FinalizePayment(ctx context.Context, lotID string, payer model.Identity, externalRef string) (model.PaymentRecord, error) {
	if lotID == "" || externalRef == "" {
		return model.PaymentRecord{}, fmt.Errorf("settlement: %w - missing lotID or payment reference", biddingerrors.ErrInvalidInput)
	}

	unlock, err := s.repo.LockLot(ctx, lotID)
	if err != nil {
		return model.PaymentRecord{}, fmt.Errorf("settlement: failed to lock lot %s: %w", lotID, err)
	}
	defer unlock()

	lot, err := s.repo.GetLot(ctx, lotID)
	if err != nil {
		return model.PaymentRecord{}, fmt.Errorf("settlement: failed to get lot %s: %w", lotID, err)
	}
	if !lot.Sold() {
		return model.PaymentRecord{}, fmt.Errorf("settlement: %w - lot %s is %s", biddingerrors.ErrNotEligible, lotID, lot.State)
	}

	existing, err := s.repo.GetPaymentRecord(ctx, lotID)
	switch {
	case err == nil:
		if !lot.PaymentCompleted() {
			s.repair(ctx, lot, &existing)
		}
		return model.PaymentRecord{}, fmt.Errorf("settlement: %w - lot %s", biddingerrors.ErrAlreadyPaid, lotID)
	case !errors.Is(err, biddingerrors.ErrPaymentNotFound):
		return model.PaymentRecord{}, fmt.Errorf("settlement: failed to check payment for lot %s: %w", lotID, err)
	}
	if lot.PaymentCompleted() {
		return model.PaymentRecord{}, fmt.Errorf("settlement: %w - lot %s", biddingerrors.ErrAlreadyPaid, lotID)
	}

	winner, err := s.winner(ctx, lot, payer)
	if err != nil {
		return model.PaymentRecord{}, err
	}

	if err := s.verifier.Verify(ctx, externalRef, winner.Amount); err != nil {
		utils.Warn("settlement: payment reference rejected", map[string]any{"lot_id": lotID, "payment_ref": externalRef, "error": err.Error()})
		return model.PaymentRecord{}, err
	}

	token, err := s.newToken()
	if err != nil {
		return model.PaymentRecord{}, fmt.Errorf("settlement: failed to generate token: %w", err)
	}

	rec := model.PaymentRecord{
		PaymentID:   utils.GenerateID(),
		LotID:       lotID,
		UserID:      winner.UserID,
		Amount:      winner.Amount,
		ExternalRef: externalRef,
		TokenNumber: token,
		CreatedAt:   s.now(),
	}
	if err := s.repo.CreatePaymentRecord(ctx, rec); err != nil {
		if errors.Is(err, biddingerrors.ErrPaymentExists) {
			return model.PaymentRecord{}, fmt.Errorf("settlement: %w - lot %s", biddingerrors.ErrAlreadyPaid, lotID)
		}
		return model.PaymentRecord{}, fmt.Errorf("settlement: failed to record payment for lot %s: %w", lotID, err)
	}

	paid, err := auction.MarkPaid(lot, rec.ExternalRef, rec.TokenNumber, s.now())
	if err == nil {
		err = s.repo.UpdateLot(ctx, paid)
	}
	if err != nil {
		utils.Error("settlement: payment recorded but lot not marked paid", map[string]any{
			"lot_id":     lotID,
			"payment_id": rec.PaymentID,
			"error":      err.Error(),
		})
		return rec, fmt.Errorf("settlement: %w - lot %s: %v", biddingerrors.ErrPaymentFlagPending, lotID, err)
	}

	utils.Info("settlement: lot paid", map[string]any{
		"lot_id":       lotID,
		"user_id":      rec.UserID,
		"amount":       rec.Amount,
		"payment_id":   rec.PaymentID,
		"token_number": rec.TokenNumber,
	})
	s.notifier.Notify(ctx, feed.Event{LotID: lotID, Kind: feed.KindPayment})
	return rec, nil
}

// GetPayment returns the payment record of a lot
func (s *Service) GetPayment(ctx context.Context, lotID string) (model.PaymentRecord, error) {
	rec, err := s.repo.GetPaymentRecord(ctx, lotID)
	if err != nil {
		return model.PaymentRecord{}, fmt.Errorf("settlement: failed to get payment for lot %s: %w", lotID, err)
	}
	return rec, nil
}

// Reconcile re-derives the paid state of a lot from the existence of its payment record.
// It reports whether the lot had to be changed.
func (s *Service) Reconcile(ctx context.Context, lotID string) (model.Lot, bool, error) {
	unlock, err := s.repo.LockLot(ctx, lotID)
	if err != nil {
		return model.Lot{}, false, fmt.Errorf("settlement: failed to lock lot %s: %w", lotID, err)
	}
	defer unlock()

	lot, err := s.repo.GetLot(ctx, lotID)
	if err != nil {
		return model.Lot{}, false, fmt.Errorf("settlement: failed to get lot %s: %w", lotID, err)
	}

	var rec *model.PaymentRecord
	found, err := s.repo.GetPaymentRecord(ctx, lotID)
	switch {
	case err == nil:
		rec = &found
	case !errors.Is(err, biddingerrors.ErrPaymentNotFound):
		return model.Lot{}, false, fmt.Errorf("settlement: failed to check payment for lot %s: %w", lotID, err)
	}

	next, changed := auction.ReconcilePayment(lot, rec, s.now())
	if !changed {
		return lot, false, nil
	}
	if err := s.repo.UpdateLot(ctx, next); err != nil {
		return model.Lot{}, false, fmt.Errorf("settlement: failed to update lot %s: %w", lotID, err)
	}

	utils.Warn("settlement: lot payment state reconciled", map[string]any{
		"lot_id":      lotID,
		"from":        lot.State.String(),
		"to":          next.State.String(),
		"has_payment": rec != nil,
	})
	s.notifier.Notify(ctx, feed.Event{LotID: lotID, Kind: feed.KindPayment})
	return next, true, nil
}

// ReconcileAll runs Reconcile over every sold lot and returns the ids of the lots it changed
func (s *Service) ReconcileAll(ctx context.Context) ([]string, error) {
	lots, err := s.repo.ListLots(ctx)
	if err != nil {
		return nil, fmt.Errorf("settlement: failed to list lots: %w", err)
	}

	var (
		repaired []string
		errs     []error
	)
	for _, lot := range lots {
		if !lot.Sold() {
			continue
		}
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		_, changed, err := s.Reconcile(ctx, lot.LotID)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if changed {
			repaired = append(repaired, lot.LotID)
		}
	}

	utils.Info("settlement: reconciliation finished", map[string]any{"repaired": len(repaired), "failed": len(errs)})
	return repaired, errors.Join(errs...)
}

// repair marks a lot paid from an existing record while the lot lock is held
func (s *Service) repair(ctx context.Context, lot model.Lot, rec *model.PaymentRecord) {
	next, changed := auction.ReconcilePayment(lot, rec, s.now())
	if !changed {
		return
	}
	if err := s.repo.UpdateLot(ctx, next); err != nil {
		utils.Error("settlement: failed to repair paid state", map[string]any{"lot_id": lot.LotID, "error": err.Error()})
		return
	}
	utils.Warn("settlement: repaired paid state from existing payment", map[string]any{"lot_id": lot.LotID})
}

// winner returns the highest bid of lot, which must belong to payer
func (s *Service) winner(ctx context.Context, lot model.Lot, payer model.Identity) (model.Bid, error) {
	highest, err := s.repo.GetHighestBid(ctx, lot.LotID)
	if errors.Is(err, biddingerrors.ErrNoBids) {
		return model.Bid{}, fmt.Errorf("settlement: %w - lot %s closed without bids", biddingerrors.ErrNotEligible, lot.LotID)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("settlement: failed to get winner for lot %s: %w", lot.LotID, err)
	}
	if payer.UserID == "" || highest.UserID != payer.UserID {
		return model.Bid{}, fmt.Errorf("settlement: %w - user %q is not the winner of lot %s", biddingerrors.ErrNotEligible, payer.UserID, lot.LotID)
	}
	return highest, nil
}

func lotSummary(lot model.Lot) string {
	return fmt.Sprintf("Auction %s: %s grade %s, %.2f kg from %s",
		lot.AuctionNumber, lot.AuctionCenter, lot.Seller.GradeCode, lot.TotalQuantity, lot.Seller.SellerName)
}
