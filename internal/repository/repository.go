package repository

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

import (
	"cardamom-auction/internal/biddingerrors"
	model "cardamom-auction/internal/models"
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
)

// BidLedger is the append-only record of bids per lot
type BidLedger interface {
	RecordBid(ctx context.Context, bid model.Bid) error
	GetBidsByLot(ctx context.Context, lotID string) ([]model.Bid, error)
	GetHighestBid(ctx context.Context, lotID string) (model.Bid, error)
	GetLotsByUser(ctx context.Context, userID string) ([]model.Lot, error)
}

// LotRegistry holds the canonical lot documents
type LotRegistry interface {
	CreateLot(ctx context.Context, lot model.Lot) error
	GetLot(ctx context.Context, lotID string) (model.Lot, error)
	UpdateLot(ctx context.Context, lot model.Lot) error
	ListLots(ctx context.Context) ([]model.Lot, error)
}

// PaymentLedger stores at most one payment record per lot
type PaymentLedger interface {
	CreatePaymentRecord(ctx context.Context, rec model.PaymentRecord) error
	GetPaymentRecord(ctx context.Context, lotID string) (model.PaymentRecord, error)
}

// SubmissionStore holds seller submissions and the lot-number counter
type SubmissionStore interface {
	CreateSubmission(ctx context.Context, sub model.Submission) error
	GetSubmission(ctx context.Context, submissionID string) (model.Submission, error)
	UpdateSubmission(ctx context.Context, sub model.Submission) error
	ListSubmissions(ctx context.Context, status model.ApprovalStatus) ([]model.Submission, error)
	NextLotNumber(ctx context.Context) (int, error)
}

// LotLocker serialises writers of a single lot. The returned func releases the lock.
type LotLocker interface {
	LockLot(ctx context.Context, lotID string) (func(), error)
}

// AuctionDB is the full store contract used by the services
type AuctionDB interface {
	BidLedger
	LotRegistry
	PaymentLedger
	SubmissionStore
	LotLocker
}

// ValidAmount reports whether amount is a positive finite number
func ValidAmount(amount float64) bool {
	return amount > 0 && !math.IsInf(amount, 0)
}

// SortBids orders bids in ledger order: amount descending, earliest first on ties
func SortBids(bids []model.Bid) {
	sort.SliceStable(bids, func(i, j int) bool { return bids[i].Outranks(bids[j]) })
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB
type MemoryRepo struct {
	mu          sync.RWMutex
	bids        map[string][]model.Bid // key: lotID -> value: bids in arrival order
	lots        map[string]model.Lot
	userLots    map[string][]string // key: userID -> value: lotIDs the user has bid on
	payments    map[string]model.PaymentRecord
	submissions map[string]model.Submission
	lotCounter  int

	lockMu   sync.Mutex
	lotLocks map[string]*sync.Mutex
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		bids:        make(map[string][]model.Bid),
		lots:        make(map[string]model.Lot),
		userLots:    make(map[string][]string),
		payments:    make(map[string]model.PaymentRecord),
		submissions: make(map[string]model.Submission),
		lotLocks:    make(map[string]*sync.Mutex),
	}
}

var _ AuctionDB = (*MemoryRepo)(nil)

// RecordBid appends a bid to the lot's ledger
func (r *MemoryRepo) RecordBid(_ context.Context, bid model.Bid) error {
	if !ValidAmount(bid.Amount) {
		return fmt.Errorf("record bid for lot %s: %w", bid.LotID, biddingerrors.ErrInvalidAmount)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lots[bid.LotID]; !ok {
		return fmt.Errorf("record bid for lot %s: %w", bid.LotID, biddingerrors.ErrLotNotFound)
	}

	r.bids[bid.LotID] = append(r.bids[bid.LotID], bid)

	for _, id := range r.userLots[bid.UserID] {
		if id == bid.LotID {
			return nil
		}
	}
	r.userLots[bid.UserID] = append(r.userLots[bid.UserID], bid.LotID)

	return nil
}

// GetBidsByLot returns all bids for a lot in ledger order
func (r *MemoryRepo) GetBidsByLot(_ context.Context, lotID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[lotID]
	if !ok || len(bids) == 0 {
		return nil, fmt.Errorf("get bids for lot %s: %w", lotID, biddingerrors.ErrNoBids)
	}
	out := append([]model.Bid(nil), bids...)
	SortBids(out)
	return out, nil
}

// GetHighestBid folds the full ledger for the lot into its highest bid
func (r *MemoryRepo) GetHighestBid(_ context.Context, lotID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[lotID]
	if !ok || len(bids) == 0 {
		return model.Bid{}, fmt.Errorf("get highest bid for lot %s: %w", lotID, biddingerrors.ErrNoBids)
	}

	highest := bids[0]
	for _, b := range bids[1:] {
		if b.Outranks(highest) {
			highest = b
		}
	}
	return highest, nil
}

// GetLotsByUser returns all lots a user has bid on
func (r *MemoryRepo) GetLotsByUser(_ context.Context, userID string) ([]model.Lot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lotIDs, ok := r.userLots[userID]
	if !ok || len(lotIDs) == 0 {
		return nil, fmt.Errorf("get lots for user %s: %w", userID, biddingerrors.ErrUserNoBids)
	}

	lots := make([]model.Lot, 0, len(lotIDs))
	for _, id := range lotIDs {
		if lot, exists := r.lots[id]; exists {
			lots = append(lots, lot)
		}
	}
	return lots, nil
}

// CreateLot stores a new lot; an existing id is rejected
func (r *MemoryRepo) CreateLot(_ context.Context, lot model.Lot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lots[lot.LotID]; ok {
		return fmt.Errorf("create lot %s: %w", lot.LotID, biddingerrors.ErrLotExists)
	}
	r.lots[lot.LotID] = lot
	return nil
}

func (r *MemoryRepo) GetLot(_ context.Context, lotID string) (model.Lot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lot, ok := r.lots[lotID]
	if !ok {
		return model.Lot{}, fmt.Errorf("get lot %s: %w", lotID, biddingerrors.ErrLotNotFound)
	}
	return lot, nil
}

func (r *MemoryRepo) UpdateLot(_ context.Context, lot model.Lot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lots[lot.LotID]; !ok {
		return fmt.Errorf("update lot %s: %w", lot.LotID, biddingerrors.ErrLotNotFound)
	}
	r.lots[lot.LotID] = lot
	return nil
}

// ListLots returns every lot, most recently published first
func (r *MemoryRepo) ListLots(_ context.Context) ([]model.Lot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lots := make([]model.Lot, 0, len(r.lots))
	for _, lot := range r.lots {
		lots = append(lots, lot)
	}
	sort.SliceStable(lots, func(i, j int) bool {
		if lots[i].PublishedAt.Equal(lots[j].PublishedAt) {
			return lots[i].LotID < lots[j].LotID
		}
		return lots[i].PublishedAt.After(lots[j].PublishedAt)
	})
	return lots, nil
}

// CreatePaymentRecord stores the payment record for a lot, at most once
func (r *MemoryRepo) CreatePaymentRecord(_ context.Context, rec model.PaymentRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.payments[rec.LotID]; ok {
		return fmt.Errorf("create payment for lot %s: %w", rec.LotID, biddingerrors.ErrPaymentExists)
	}
	r.payments[rec.LotID] = rec
	return nil
}

func (r *MemoryRepo) GetPaymentRecord(_ context.Context, lotID string) (model.PaymentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.payments[lotID]
	if !ok {
		return model.PaymentRecord{}, fmt.Errorf("get payment for lot %s: %w", lotID, biddingerrors.ErrPaymentNotFound)
	}
	return rec, nil
}

func (r *MemoryRepo) CreateSubmission(_ context.Context, sub model.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.submissions[sub.SubmissionID] = sub
	return nil
}

func (r *MemoryRepo) GetSubmission(_ context.Context, submissionID string) (model.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sub, ok := r.submissions[submissionID]
	if !ok {
		return model.Submission{}, fmt.Errorf("get submission %s: %w", submissionID, biddingerrors.ErrSubmissionNotFound)
	}
	return sub, nil
}

func (r *MemoryRepo) UpdateSubmission(_ context.Context, sub model.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.submissions[sub.SubmissionID]; !ok {
		return fmt.Errorf("update submission %s: %w", sub.SubmissionID, biddingerrors.ErrSubmissionNotFound)
	}
	r.submissions[sub.SubmissionID] = sub
	return nil
}

// ListSubmissions returns submissions with the given status, oldest first. An empty status returns all.
func (r *MemoryRepo) ListSubmissions(_ context.Context, status model.ApprovalStatus) ([]model.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	subs := make([]model.Submission, 0, len(r.submissions))
	for _, sub := range r.submissions {
		if status == "" || sub.ApprovalStatus == status {
			subs = append(subs, sub)
		}
	}
	sort.SliceStable(subs, func(i, j int) bool {
		if subs[i].CreatedAt.Equal(subs[j].CreatedAt) {
			return subs[i].SubmissionID < subs[j].SubmissionID
		}
		return subs[i].CreatedAt.Before(subs[j].CreatedAt)
	})
	return subs, nil
}

// NextLotNumber hands out the next lot number. Numbers are never reused,
// including numbers cleared from rejected submissions.
func (r *MemoryRepo) NextLotNumber(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, sub := range r.submissions {
		if sub.LotNumber != nil && *sub.LotNumber > r.lotCounter {
			r.lotCounter = *sub.LotNumber
		}
	}
	r.lotCounter++
	return r.lotCounter, nil
}

// LockLot takes the per-lot writer lock
func (r *MemoryRepo) LockLot(ctx context.Context, lotID string) (func(), error) {
	r.lockMu.Lock()
	l, ok := r.lotLocks[lotID]
	if !ok {
		l = &sync.Mutex{}
		r.lotLocks[lotID] = l
	}
	r.lockMu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.Lock()
	return l.Unlock, nil
}

// AddLot adds a lot to the repository without validation. Intended for seeding and tests.
func (r *MemoryRepo) AddLot(lot model.Lot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lots[lot.LotID] = lot
}
