package auction

import (
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

// Service owns the lot registry reads and every lifecycle transition of a lot
type Service struct {
	repo      repository.AuctionDB
	notifier  feed.Notifier
	scheduler *Scheduler
	now       func() time.Time
}

// NewService creates a Service. countdown is the default auto-close delay.
func NewService(repo repository.AuctionDB, notifier feed.Notifier, countdown time.Duration) *Service {
	s := &Service{
		repo:     repo,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
	}
	s.scheduler = NewScheduler(s, countdown)
	return s
}

// GetLot returns a single lot
func (s *Service) GetLot(ctx context.Context, lotID string) (model.Lot, error) {
	if lotID == "" {
		return model.Lot{}, fmt.Errorf("auction: %w - empty lot ID", biddingerrors.ErrInvalidInput)
	}
	lot, err := s.repo.GetLot(ctx, lotID)
	if err != nil {
		return model.Lot{}, fmt.Errorf("auction: failed to get lot %s: %w", lotID, err)
	}
	return lot, nil
}

// ListLots returns every lot, most recently published first
func (s *Service) ListLots(ctx context.Context) ([]model.Lot, error) {
	lots, err := s.repo.ListLots(ctx)
	if err != nil {
		return nil, fmt.Errorf("auction: failed to list lots: %w", err)
	}
	return lots, nil
}

// OpenBidding starts bidding on a lot with the two quick-bid increments
func (s *Service) OpenBidding(ctx context.Context, lotID, bidValue1, bidValue2 string) (model.Lot, error) {
	var opened model.Lot
	err := s.withLot(ctx, lotID, func(lot model.Lot) (model.Lot, error) {
		next, err := OpenBidding(lot, bidValue1, bidValue2, s.now())
		opened = next
		return next, err
	})
	if err != nil {
		return model.Lot{}, err
	}

	utils.Info("auction: bidding opened", map[string]any{
		"lot_id":      lotID,
		"bid_value_1": bidValue1,
		"bid_value_2": bidValue2,
	})
	s.notifier.Notify(ctx, feed.Event{LotID: lotID, Kind: feed.KindState})
	return opened, nil
}

// CloseAuction closes bidding on a lot and returns it together with the winning bid,
// which is nil when nobody bid.
func (s *Service) CloseAuction(ctx context.Context, lotID string) (model.Lot, *model.Bid, error) {
	var (
		closed model.Lot
		winner *model.Bid
	)
	err := s.withLot(ctx, lotID, func(lot model.Lot) (model.Lot, error) {
		next, err := CloseAuction(lot, s.now())
		if err != nil {
			return lot, err
		}
		// read under the lot lock so no bid can slip in between
		highest, err := s.repo.GetHighestBid(ctx, lotID)
		switch {
		case err == nil:
			winner = &highest
		case !errors.Is(err, biddingerrors.ErrNoBids):
			return lot, fmt.Errorf("auction: failed to read highest bid for lot %s: %w", lotID, err)
		}
		closed = next
		return next, nil
	})
	if err != nil {
		return model.Lot{}, nil, err
	}

	s.scheduler.Cancel(lotID)

	fields := map[string]any{"lot_id": lotID}
	if winner != nil {
		fields["winner"] = winner.UserID
		fields["amount"] = winner.Amount
	}
	utils.Info("auction: auction closed", fields)
	s.notifier.Notify(ctx, feed.Event{LotID: lotID, Kind: feed.KindState})
	return closed, winner, nil
}

// Winner returns the winning bid of a closed or paid lot
func (s *Service) Winner(ctx context.Context, lotID string) (model.Bid, error) {
	lot, err := s.GetLot(ctx, lotID)
	if err != nil {
		return model.Bid{}, err
	}
	if !lot.Sold() {
		return model.Bid{}, fmt.Errorf("auction: %w - lot %s has not been closed", biddingerrors.ErrInvalidTransition, lotID)
	}
	winner, err := s.repo.GetHighestBid(ctx, lotID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("auction: failed to get winner for lot %s: %w", lotID, err)
	}
	return winner, nil
}

// StartCountdown schedules an automatic close of an open lot. A non-positive
// duration uses the default countdown. It replaces any countdown already running.
func (s *Service) StartCountdown(ctx context.Context, lotID string, d time.Duration) (time.Time, error) {
	lot, err := s.GetLot(ctx, lotID)
	if err != nil {
		return time.Time{}, err
	}
	if lot.State != model.StateBiddingOpen {
		return time.Time{}, fmt.Errorf("auction: %w - lot %s is not open for bidding", biddingerrors.ErrInvalidTransition, lotID)
	}
	return s.scheduler.Schedule(lotID, d)
}

// CancelCountdown stops a running countdown and reports whether one was running
func (s *Service) CancelCountdown(lotID string) bool {
	return s.scheduler.Cancel(lotID)
}

// Shutdown stops every pending countdown. Lots they would have closed stay open.
func (s *Service) Shutdown() {
	s.scheduler.Shutdown()
}

// withLot loads a lot under its writer lock, applies fn and stores the result
func (s *Service) withLot(ctx context.Context, lotID string, fn func(model.Lot) (model.Lot, error)) error {
	if lotID == "" {
		return fmt.Errorf("auction: %w - empty lot ID", biddingerrors.ErrInvalidInput)
	}

	unlock, err := s.repo.LockLot(ctx, lotID)
	if err != nil {
		return fmt.Errorf("auction: failed to lock lot %s: %w", lotID, err)
	}
	defer unlock()

	lot, err := s.repo.GetLot(ctx, lotID)
	if err != nil {
		return fmt.Errorf("auction: failed to get lot %s: %w", lotID, err)
	}

	next, err := fn(lot)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateLot(ctx, next); err != nil {
		return fmt.Errorf("auction: failed to update lot %s: %w", lotID, err)
	}
	return nil
}
