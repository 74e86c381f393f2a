package repository

import (
	"cardamom-auction/internal/biddingerrors"
	model "cardamom-auction/internal/models"
	"context"
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 1, 16, 10, 0, 0, 0, time.UTC)

// Helper to create a new Lot
func newLot(lotID string, minimum, maximum float64, publishedAt time.Time) model.Lot {
	return model.Lot{
		LotID:         lotID,
		AuctionNumber: fmt.Sprintf("%s/16-01-2025", lotID),
		Minimum:       minimum,
		Maximum:       maximum,
		AuctionCenter: model.CenterPuttady,
		TotalQuantity: 500,
		State:         model.StateBiddingOpen,
		PublishedAt:   publishedAt,
	}
}

// Helper to create a new Bid
func newBid(bidID, lotID, userID string, amount float64, createdAt time.Time) model.Bid {
	return model.Bid{
		BidID:     bidID,
		LotID:     lotID,
		UserID:    userID,
		UserEmail: userID + "@example.com",
		Amount:    amount,
		CreatedAt: createdAt,
	}
}

func intPtr(v int) *int { return &v }

// Test RecordBid
func TestMemoryRepo_RecordBid(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	repo.AddLot(newLot("lot1", 50, 500, baseTime))

	tests := []struct {
		name    string
		bid     model.Bid
		wantErr error
	}{
		{name: "valid_bid", bid: newBid("bid1", "lot1", "user1", 100, baseTime)},
		{name: "lot_not_found", bid: newBid("bid2", "lotX", "user1", 50, baseTime), wantErr: biddingerrors.ErrLotNotFound},
		{name: "bid_with_max_float", bid: newBid("bid3", "lot1", "user3", math.MaxFloat64, baseTime)},
		{name: "bid_with_past_timestamp", bid: newBid("bid4", "lot1", "user4", 120, baseTime.Add(-24*time.Hour))},
		{name: "empty_lotID", bid: newBid("bid-empty", "", "userY", 100, baseTime), wantErr: biddingerrors.ErrLotNotFound},
		{name: "zero_amount", bid: newBid("bid5", "lot1", "user5", 0, baseTime), wantErr: biddingerrors.ErrInvalidAmount},
		{name: "negative_amount", bid: newBid("bid6", "lot1", "user5", -10, baseTime), wantErr: biddingerrors.ErrInvalidAmount},
		{name: "nan_amount", bid: newBid("bid7", "lot1", "user5", math.NaN(), baseTime), wantErr: biddingerrors.ErrInvalidAmount},
		{name: "infinite_amount", bid: newBid("bid8", "lot1", "user5", math.Inf(1), baseTime), wantErr: biddingerrors.ErrInvalidAmount},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := repo.RecordBid(ctx, tc.bid)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			bids, err := repo.GetBidsByLot(ctx, tc.bid.LotID)
			require.NoError(t, err)
			require.Contains(t, bids, tc.bid)
		})
	}

	t.Run("concurrent_bids", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepo()
		repo.AddLot(newLot("lot1", 50, 500, baseTime))

		var wg sync.WaitGroup
		concurrentCount := 50

		for i := 0; i < concurrentCount; i++ {
			wg.Add(1)
			i := i
			go func() {
				defer wg.Done()
				b := newBid(fmt.Sprintf("bid-%d", i), "lot1", fmt.Sprintf("user-%d", i), float64(100+i), baseTime)
				require.NoError(t, repo.RecordBid(ctx, b))
			}()
		}

		wg.Wait()

		bids, err := repo.GetBidsByLot(ctx, "lot1")
		require.NoError(t, err)
		require.Len(t, bids, concurrentCount)
	})
}

// Test GetBidsByLot
func TestMemoryRepo_GetBidsByLot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	repo.AddLot(newLot("lot1", 50, 500, baseTime))
	repo.AddLot(newLot("lot2", 50, 500, baseTime))

	early := newBid("bid-early", "lot1", "user1", 150, baseTime)
	low := newBid("bid-low", "lot1", "user2", 100, baseTime.Add(time.Second))
	late := newBid("bid-late", "lot1", "user3", 150, baseTime.Add(2*time.Second))
	top := newBid("bid-top", "lot1", "user4", 200, baseTime.Add(3*time.Second))
	for _, b := range []model.Bid{early, low, late, top} {
		require.NoError(t, repo.RecordBid(ctx, b))
	}

	tests := []struct {
		name      string
		lotID     string
		wantBids  []model.Bid
		wantError error
	}{
		{name: "ordered_by_amount_then_time", lotID: "lot1", wantBids: []model.Bid{top, early, late, low}},
		{name: "lot_without_bids", lotID: "lot2", wantError: biddingerrors.ErrNoBids},
		{name: "unknown_lot", lotID: "lotX", wantError: biddingerrors.ErrNoBids},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			bids, err := repo.GetBidsByLot(ctx, tc.lotID)
			if tc.wantError != nil {
				require.ErrorIs(t, err, tc.wantError)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantBids, bids)
		})
	}
}

// Test GetHighestBid
func TestMemoryRepo_GetHighestBid(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	repo.AddLot(newLot("lot1", 50, 500, baseTime))
	repo.AddLot(newLot("lot2", 50, 500, baseTime))
	repo.AddLot(newLot("lot3", 50, 500, baseTime))

	require.NoError(t, repo.RecordBid(ctx, newBid("bid1", "lot1", "user1", 100, baseTime)))
	bid2 := newBid("bid2", "lot1", "user2", 150, baseTime.Add(time.Second))
	require.NoError(t, repo.RecordBid(ctx, bid2))

	// later-arriving bid carrying an earlier timestamp must still win the tie
	tieLate := newBid("bid-tie-late", "lot3", "userB", 200, baseTime.Add(5*time.Second))
	tieEarly := newBid("bid-tie-early", "lot3", "userA", 200, baseTime.Add(time.Second))
	require.NoError(t, repo.RecordBid(ctx, tieLate))
	require.NoError(t, repo.RecordBid(ctx, tieEarly))

	tests := []struct {
		name      string
		lotID     string
		wantBid   model.Bid
		wantError bool
	}{
		{name: "lot_with_bids", lotID: "lot1", wantBid: bid2},
		{name: "lot_without_bids", lotID: "lot2", wantError: true},
		{name: "tie_bids_earliest_wins", lotID: "lot3", wantBid: tieEarly},
		{name: "empty_lotID", lotID: "", wantError: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			bid, err := repo.GetHighestBid(ctx, tc.lotID)
			if tc.wantError {
				require.ErrorIs(t, err, biddingerrors.ErrNoBids)
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.wantBid, bid)
			}
		})
	}
}

// Test GetLotsByUser
func TestMemoryRepo_GetLotsByUser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	lot1 := newLot("lot1", 50, 500, baseTime)
	lot2 := newLot("lot2", 50, 500, baseTime)
	repo.AddLot(lot1)
	repo.AddLot(lot2)

	require.NoError(t, repo.RecordBid(ctx, newBid("bid1", "lot1", "user1", 100, baseTime)))
	require.NoError(t, repo.RecordBid(ctx, newBid("bid2", "lot2", "user1", 100, baseTime)))
	require.NoError(t, repo.RecordBid(ctx, newBid("bid3", "lot1", "user1", 120, baseTime)))

	lots, err := repo.GetLotsByUser(ctx, "user1")
	require.NoError(t, err)
	require.ElementsMatch(t, []model.Lot{lot1, lot2}, lots)

	_, err = repo.GetLotsByUser(ctx, "userX")
	require.ErrorIs(t, err, biddingerrors.ErrUserNoBids)
}

// Test lot registry documents
func TestMemoryRepo_Lots(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()

	older := newLot("lot-old", 50, 500, baseTime)
	newer := newLot("lot-new", 50, 500, baseTime.Add(time.Hour))
	require.NoError(t, repo.CreateLot(ctx, older))
	require.NoError(t, repo.CreateLot(ctx, newer))
	require.ErrorIs(t, repo.CreateLot(ctx, older), biddingerrors.ErrLotExists)

	lots, err := repo.ListLots(ctx)
	require.NoError(t, err)
	require.Equal(t, []model.Lot{newer, older}, lots)

	older.State = model.StateClosed
	require.NoError(t, repo.UpdateLot(ctx, older))
	got, err := repo.GetLot(ctx, "lot-old")
	require.NoError(t, err)
	require.Equal(t, model.StateClosed, got.State)

	require.ErrorIs(t, repo.UpdateLot(ctx, newLot("lotX", 1, 2, baseTime)), biddingerrors.ErrLotNotFound)
	_, err = repo.GetLot(ctx, "lotX")
	require.ErrorIs(t, err, biddingerrors.ErrLotNotFound)
}

// Test payment records are written at most once per lot
func TestMemoryRepo_PaymentRecord(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()

	_, err := repo.GetPaymentRecord(ctx, "lot1")
	require.ErrorIs(t, err, biddingerrors.ErrPaymentNotFound)

	rec := model.PaymentRecord{PaymentID: "p1", LotID: "lot1", UserID: "user1", Amount: 2750, ExternalRef: "pay_123", TokenNumber: 123456, CreatedAt: baseTime}
	require.NoError(t, repo.CreatePaymentRecord(ctx, rec))

	dup := rec
	dup.PaymentID = "p2"
	dup.ExternalRef = "pay_456"
	require.ErrorIs(t, repo.CreatePaymentRecord(ctx, dup), biddingerrors.ErrPaymentExists)

	got, err := repo.GetPaymentRecord(ctx, "lot1")
	require.NoError(t, err)
	require.Equal(t, rec, got)
}

// Test lot numbers are never reused
func TestMemoryRepo_NextLotNumber(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()

	first, err := repo.NextLotNumber(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, first)

	// a submission imported with a higher number moves the counter forward
	require.NoError(t, repo.CreateSubmission(ctx, model.Submission{SubmissionID: "s-import", LotNumber: intPtr(7)}))
	next, err := repo.NextLotNumber(ctx)
	require.NoError(t, err)
	require.Equal(t, 8, next)

	t.Run("concurrent_numbers_unique", func(t *testing.T) {
		var (
			wg   sync.WaitGroup
			mu   sync.Mutex
			seen = make(map[int]bool)
		)
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				n, err := repo.NextLotNumber(ctx)
				require.NoError(t, err)
				mu.Lock()
				defer mu.Unlock()
				require.False(t, seen[n], "lot number %d assigned twice", n)
				seen[n] = true
			}()
		}
		wg.Wait()
		require.Len(t, seen, 100)
	})
}

// Test submissions storage and filtering
func TestMemoryRepo_Submissions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()

	pending := model.Submission{SubmissionID: "s1", ApprovalStatus: model.ApprovalPending, CreatedAt: baseTime}
	approved := model.Submission{SubmissionID: "s2", ApprovalStatus: model.ApprovalApproved, CreatedAt: baseTime.Add(time.Minute)}
	require.NoError(t, repo.CreateSubmission(ctx, pending))
	require.NoError(t, repo.CreateSubmission(ctx, approved))

	subs, err := repo.ListSubmissions(ctx, model.ApprovalPending)
	require.NoError(t, err)
	require.Equal(t, []model.Submission{pending}, subs)

	all, err := repo.ListSubmissions(ctx, "")
	require.NoError(t, err)
	require.Equal(t, []model.Submission{pending, approved}, all)

	_, err = repo.GetSubmission(ctx, "missing")
	require.ErrorIs(t, err, biddingerrors.ErrSubmissionNotFound)
	require.ErrorIs(t, repo.UpdateSubmission(ctx, model.Submission{SubmissionID: "missing"}), biddingerrors.ErrSubmissionNotFound)
}

// Test LockLot serialises writers of one lot
func TestMemoryRepo_LockLot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()

	var (
		wg      sync.WaitGroup
		counter int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := repo.LockLot(ctx, "lot1")
			require.NoError(t, err)
			defer unlock()
			counter++
		}()
	}
	wg.Wait()
	require.Equal(t, 50, counter)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err := repo.LockLot(cancelled, "lot1")
	require.ErrorIs(t, err, context.Canceled)
}
