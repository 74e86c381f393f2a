package bidding

import (
	"cardamom-auction/internal/auction"
	"cardamom-auction/internal/biddingerrors"
	"cardamom-auction/internal/feed"
	"cardamom-auction/internal/models"
	"cardamom-auction/internal/repository"
	"cardamom-auction/utils"
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/shopspring/decimal"
)

const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 2 * time.Second
)

// BiddingService admits bids into the ledger and answers ledger queries
type BiddingService struct {
	repo     repository.AuctionDB
	notifier feed.Notifier
	now      func() time.Time

	// highest caches the highest bid per lot for the read path only.
	// Admission always reads the ledger. Nil when caching is off.
	highest  *lru.Cache
	cacheTTL time.Duration
	cacheMu  sync.Mutex
	versions map[string]uint64
}

type cachedBid struct {
	bid     models.Bid
	expires time.Time
}

// Option configures a BiddingService
type Option func(*BiddingService)

// WithCacheTTL bounds how long a cached highest bid is served without
// reading the ledger. Invalidations from a relay can be lost.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *BiddingService) {
		if ttl > 0 {
			s.cacheTTL = ttl
		}
	}
}

// WithoutCache sends every highest-bid read to the ledger. Use it when other
// instances write the same ledger and their bids cannot invalidate this cache.
func WithoutCache() Option {
	return func(s *BiddingService) {
		s.highest = nil
	}
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.AuctionDB, notifier feed.Notifier, cacheSize int, opts ...Option) *BiddingService {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, _ := lru.New(cacheSize)

	s := &BiddingService{
		repo:     repo,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
		highest:  cache,
		cacheTTL: DefaultCacheTTL,
		versions: make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CacheEnabled reports whether highest-bid reads may be served from the cache
func (s *BiddingService) CacheEnabled() bool {
	return s.highest != nil
}

// SubmitBid validates a bid against the lot and the current highest bid and records it.
// Checks run in order: the lot is open, the amount is valid, the amount beats the floor.
func (s *BiddingService) SubmitBid(ctx context.Context, lotID string, bidder models.Identity, amount float64) (models.Bid, error) {
	if lotID == "" || bidder.UserID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing lotID or userID", biddingerrors.ErrInvalidBid)
	}

	unlock, err := s.repo.LockLot(ctx, lotID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to lock lot %s: %w", lotID, err)
	}
	defer unlock()

	lot, err := s.repo.GetLot(ctx, lotID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get lot %s: %w", lotID, err)
	}

	highest, hasHighest, err := s.validateBid(ctx, lot, amount)
	if err != nil {
		utils.Debug("service: bid rejected", map[string]any{
			"lot_id":  lotID,
			"user_id": bidder.UserID,
			"amount":  amount,
			"error":   err.Error(),
		})
		return models.Bid{}, err
	}

	createdAt := s.now()
	if hasHighest && !createdAt.After(highest.CreatedAt) {
		createdAt = highest.CreatedAt.Add(time.Microsecond)
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		LotID:     lotID,
		UserID:    bidder.UserID,
		UserEmail: bidder.Email,
		Amount:    amount,
		CreatedAt: createdAt,
	}

	if err := s.repo.RecordBid(ctx, bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid for lot %s by user %s: %w", lotID, bidder.UserID, err)
	}
	s.InvalidateLot(lotID)

	utils.Info("service: bid accepted", map[string]any{
		"lot_id":  lotID,
		"bid_id":  bid.BidID,
		"user_id": bid.UserID,
		"amount":  bid.Amount,
	})
	s.notifier.Notify(ctx, feed.Event{LotID: lotID, Kind: feed.KindBid})

	return bid, nil
}

// validateBid applies the admission rules and returns the current highest bid, if any
func (s *BiddingService) validateBid(ctx context.Context, lot models.Lot, amount float64) (models.Bid, bool, error) {
	if !lot.BiddingStarted() {
		return models.Bid{}, false, fmt.Errorf("service: %w - lot %s is %s", biddingerrors.ErrAuctionNotOpen, lot.LotID, lot.State)
	}
	if !repository.ValidAmount(amount) {
		return models.Bid{}, false, fmt.Errorf("service: %w - %v", biddingerrors.ErrInvalidAmount, amount)
	}

	highest, err := s.repo.GetHighestBid(ctx, lot.LotID)
	switch {
	case err == nil:
		if amount <= highest.Amount {
			return highest, true, fmt.Errorf("service: %w - current highest bid is %.2f", biddingerrors.ErrBidTooLow, highest.Amount)
		}
		return highest, true, nil
	case errors.Is(err, biddingerrors.ErrNoBids):
		if amount <= lot.Minimum {
			return models.Bid{}, false, fmt.Errorf("service: %w - minimum price is %.2f", biddingerrors.ErrBelowMinimum, lot.Minimum)
		}
		return models.Bid{}, false, nil
	default:
		return models.Bid{}, false, fmt.Errorf("service: failed to check highest bid: %w", err)
	}
}

// GetBidsForLot returns all bids for a lot, highest first
func (s *BiddingService) GetBidsForLot(ctx context.Context, lotID string) ([]models.Bid, error) {
	if lotID == "" {
		return nil, fmt.Errorf("service: %w - empty lot ID", biddingerrors.ErrInvalidBid)
	}

	bids, err := s.repo.GetBidsByLot(ctx, lotID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for lot %s: %w", lotID, err)
	}

	return bids, nil
}

// GetHighestBid returns the highest bid for a lot, served from the cache when possible
func (s *BiddingService) GetHighestBid(ctx context.Context, lotID string) (models.Bid, error) {
	if lotID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty lot ID", biddingerrors.ErrInvalidBid)
	}

	if s.highest == nil {
		highest, err := s.repo.GetHighestBid(ctx, lotID)
		if err != nil {
			return models.Bid{}, fmt.Errorf("service: failed to get highest bid for lot %s: %w", lotID, err)
		}
		return highest, nil
	}

	if cached, ok := s.highest.Get(lotID); ok {
		entry := cached.(cachedBid)
		if s.now().Before(entry.expires) {
			return entry.bid, nil
		}
	}

	s.cacheMu.Lock()
	version := s.versions[lotID]
	s.cacheMu.Unlock()

	highest, err := s.repo.GetHighestBid(ctx, lotID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get highest bid for lot %s: %w", lotID, err)
	}

	s.cacheMu.Lock()
	if s.versions[lotID] == version {
		s.highest.Add(lotID, cachedBid{bid: highest, expires: s.now().Add(s.cacheTTL)})
	}
	s.cacheMu.Unlock()

	return highest, nil
}

// InvalidateLot drops the cached highest bid of a lot
func (s *BiddingService) InvalidateLot(lotID string) {
	if s.highest == nil {
		return
	}
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	s.versions[lotID]++
	s.highest.Remove(lotID)
}

// GetLotsByUser returns all lots a user has placed bids on
func (s *BiddingService) GetLotsByUser(ctx context.Context, userID string) ([]models.Lot, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", biddingerrors.ErrInvalidBid)
	}

	lots, err := s.repo.GetLotsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get lots for user %s: %w", userID, err)
	}

	return lots, nil
}

// ProposeQuickBid computes the total a quick-bid button offers: the larger of the
// current highest bid (or the minimum when nobody bid) and the bidder's running
// total, plus the chosen increment, capped at the lot maximum. The cap applies to
// the proposal only; SubmitBid does not enforce it.
func (s *BiddingService) ProposeQuickBid(ctx context.Context, lotID string, slot int, running float64) (float64, error) {
	lot, err := s.repo.GetLot(ctx, lotID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to get lot %s: %w", lotID, err)
	}
	if !lot.BiddingStarted() {
		return 0, fmt.Errorf("service: %w - lot %s is %s", biddingerrors.ErrAuctionNotOpen, lotID, lot.State)
	}

	var raw string
	switch slot {
	case 1:
		raw = lot.BidValue1
	case 2:
		raw = lot.BidValue2
	default:
		return 0, fmt.Errorf("service: %w - quick bid slot must be 1 or 2", biddingerrors.ErrInvalidInput)
	}
	increment, err := auction.ParseIncrement(raw)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(running) || math.IsInf(running, 0) || running < 0 {
		return 0, fmt.Errorf("service: %w - running total must be a non-negative number", biddingerrors.ErrInvalidInput)
	}

	base := decimal.NewFromFloat(lot.Minimum)
	highest, err := s.GetHighestBid(ctx, lotID)
	switch {
	case err == nil:
		base = decimal.NewFromFloat(highest.Amount)
	case !errors.Is(err, biddingerrors.ErrNoBids):
		return 0, err
	}
	base = decimal.Max(base, decimal.NewFromFloat(running))

	proposal := decimal.Min(base.Add(increment), decimal.NewFromFloat(lot.Maximum))
	total, _ := proposal.Float64()
	return total, nil
}
