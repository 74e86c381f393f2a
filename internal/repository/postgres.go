package repository

import (
	"cardamom-auction/internal/biddingerrors"
	model "cardamom-auction/internal/models"
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

const lotColumns = `lot_id, auction_number, submission_id, minimum, maximum, auction_center, total_quantity,
	grade_code, seller_name, number_of_bags, bag_size, state, bid_value_1, bid_value_2,
	payment_ref, token_number, published_at, last_updated, closed_at`

const submissionColumns = `submission_id, seller_id, seller_email, auction_center, total_quantity,
	grade_code, seller_name, number_of_bags, bag_size, approval_status, first_approval, second_approval,
	lot_number, added_to_auction, auction_number, created_at, updated_at`

// PostgresRepo is the AuctionDB implementation backed by PostgreSQL
type PostgresRepo struct {
	DB *pgxpool.Pool
}

var _ AuctionDB = (*PostgresRepo)(nil)

// NewPostgresRepo creates a new PostgresRepo instance
func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{DB: db}
}

// ConnectPostgres opens a connection pool and verifies it with a ping
func ConnectPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres connection string is empty")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}
	return pool, nil
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func (r *PostgresRepo) RecordBid(ctx context.Context, bid model.Bid) error {
	if !ValidAmount(bid.Amount) {
		return fmt.Errorf("record bid for lot %s: %w", bid.LotID, biddingerrors.ErrInvalidAmount)
	}
	_, err := r.DB.Exec(ctx,
		`INSERT INTO bids (bid_id, lot_id, user_id, user_email, amount, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		bid.BidID, bid.LotID, bid.UserID, bid.UserEmail, bid.Amount, bid.CreatedAt)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return fmt.Errorf("record bid for lot %s: %w", bid.LotID, biddingerrors.ErrLotNotFound)
		}
		return fmt.Errorf("record bid for lot %s: %w", bid.LotID, err)
	}
	return nil
}

func (r *PostgresRepo) GetBidsByLot(ctx context.Context, lotID string) ([]model.Bid, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT bid_id, lot_id, user_id, user_email, amount, created_at
		FROM bids WHERE lot_id = $1
		ORDER BY amount DESC, created_at ASC`, lotID)
	if err != nil {
		return nil, fmt.Errorf("get bids for lot %s: %w", lotID, err)
	}
	defer rows.Close()

	var bids []model.Bid
	for rows.Next() {
		var b model.Bid
		if err := rows.Scan(&b.BidID, &b.LotID, &b.UserID, &b.UserEmail, &b.Amount, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bid for lot %s: %w", lotID, err)
		}
		bids = append(bids, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get bids for lot %s: %w", lotID, err)
	}
	if len(bids) == 0 {
		return nil, fmt.Errorf("get bids for lot %s: %w", lotID, biddingerrors.ErrNoBids)
	}
	return bids, nil
}

func (r *PostgresRepo) GetHighestBid(ctx context.Context, lotID string) (model.Bid, error) {
	var b model.Bid
	err := r.DB.QueryRow(ctx,
		`SELECT bid_id, lot_id, user_id, user_email, amount, created_at
		FROM bids WHERE lot_id = $1
		ORDER BY amount DESC, created_at ASC
		LIMIT 1`, lotID).Scan(&b.BidID, &b.LotID, &b.UserID, &b.UserEmail, &b.Amount, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("get highest bid for lot %s: %w", lotID, biddingerrors.ErrNoBids)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("get highest bid for lot %s: %w", lotID, err)
	}
	return b, nil
}

func (r *PostgresRepo) GetLotsByUser(ctx context.Context, userID string) ([]model.Lot, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+lotColumns+` FROM lots
		WHERE lot_id IN (SELECT DISTINCT lot_id FROM bids WHERE user_id = $1)
		ORDER BY published_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("get lots for user %s: %w", userID, err)
	}
	lots, err := collectLots(rows)
	if err != nil {
		return nil, fmt.Errorf("get lots for user %s: %w", userID, err)
	}
	if len(lots) == 0 {
		return nil, fmt.Errorf("get lots for user %s: %w", userID, biddingerrors.ErrUserNoBids)
	}
	return lots, nil
}

func (r *PostgresRepo) CreateLot(ctx context.Context, lot model.Lot) error {
	_, err := r.DB.Exec(ctx,
		`INSERT INTO lots (`+lotColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		lotArgs(lot)...)
	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return fmt.Errorf("create lot %s: %w", lot.LotID, biddingerrors.ErrLotExists)
		}
		return fmt.Errorf("create lot %s: %w", lot.LotID, err)
	}
	return nil
}

func (r *PostgresRepo) GetLot(ctx context.Context, lotID string) (model.Lot, error) {
	row := r.DB.QueryRow(ctx, `SELECT `+lotColumns+` FROM lots WHERE lot_id = $1`, lotID)
	lot, err := scanLot(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Lot{}, fmt.Errorf("get lot %s: %w", lotID, biddingerrors.ErrLotNotFound)
	}
	if err != nil {
		return model.Lot{}, fmt.Errorf("get lot %s: %w", lotID, err)
	}
	return lot, nil
}

func (r *PostgresRepo) UpdateLot(ctx context.Context, lot model.Lot) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE lots SET auction_number = $2, submission_id = $3, minimum = $4, maximum = $5,
			auction_center = $6, total_quantity = $7, grade_code = $8, seller_name = $9,
			number_of_bags = $10, bag_size = $11, state = $12, bid_value_1 = $13, bid_value_2 = $14,
			payment_ref = $15, token_number = $16, published_at = $17, last_updated = $18, closed_at = $19
		WHERE lot_id = $1`, lotArgs(lot)...)
	if err != nil {
		return fmt.Errorf("update lot %s: %w", lot.LotID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update lot %s: %w", lot.LotID, biddingerrors.ErrLotNotFound)
	}
	return nil
}

func (r *PostgresRepo) ListLots(ctx context.Context) ([]model.Lot, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+lotColumns+` FROM lots ORDER BY published_at DESC, lot_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	lots, err := collectLots(rows)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	return lots, nil
}

func (r *PostgresRepo) CreatePaymentRecord(ctx context.Context, rec model.PaymentRecord) error {
	_, err := r.DB.Exec(ctx,
		`INSERT INTO payment_records (payment_id, lot_id, user_id, amount, external_ref, token_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.PaymentID, rec.LotID, rec.UserID, rec.Amount, rec.ExternalRef, rec.TokenNumber, rec.CreatedAt)
	if err != nil {
		switch pgCode(err) {
		case pgUniqueViolation:
			return fmt.Errorf("create payment for lot %s: %w", rec.LotID, biddingerrors.ErrPaymentExists)
		case pgForeignKeyViolation:
			return fmt.Errorf("create payment for lot %s: %w", rec.LotID, biddingerrors.ErrLotNotFound)
		}
		return fmt.Errorf("create payment for lot %s: %w", rec.LotID, err)
	}
	return nil
}

func (r *PostgresRepo) GetPaymentRecord(ctx context.Context, lotID string) (model.PaymentRecord, error) {
	var rec model.PaymentRecord
	err := r.DB.QueryRow(ctx,
		`SELECT payment_id, lot_id, user_id, amount, external_ref, token_number, created_at
		FROM payment_records WHERE lot_id = $1`, lotID).
		Scan(&rec.PaymentID, &rec.LotID, &rec.UserID, &rec.Amount, &rec.ExternalRef, &rec.TokenNumber, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.PaymentRecord{}, fmt.Errorf("get payment for lot %s: %w", lotID, biddingerrors.ErrPaymentNotFound)
	}
	if err != nil {
		return model.PaymentRecord{}, fmt.Errorf("get payment for lot %s: %w", lotID, err)
	}
	return rec, nil
}

func (r *PostgresRepo) CreateSubmission(ctx context.Context, sub model.Submission) error {
	_, err := r.DB.Exec(ctx,
		`INSERT INTO submissions (`+submissionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		submissionArgs(sub)...)
	if err != nil {
		return fmt.Errorf("create submission %s: %w", sub.SubmissionID, err)
	}
	return nil
}

func (r *PostgresRepo) GetSubmission(ctx context.Context, submissionID string) (model.Submission, error) {
	row := r.DB.QueryRow(ctx, `SELECT `+submissionColumns+` FROM submissions WHERE submission_id = $1`, submissionID)
	sub, err := scanSubmission(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Submission{}, fmt.Errorf("get submission %s: %w", submissionID, biddingerrors.ErrSubmissionNotFound)
	}
	if err != nil {
		return model.Submission{}, fmt.Errorf("get submission %s: %w", submissionID, err)
	}
	return sub, nil
}

func (r *PostgresRepo) UpdateSubmission(ctx context.Context, sub model.Submission) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE submissions SET seller_id = $2, seller_email = $3, auction_center = $4, total_quantity = $5,
			grade_code = $6, seller_name = $7, number_of_bags = $8, bag_size = $9, approval_status = $10,
			first_approval = $11, second_approval = $12, lot_number = $13, added_to_auction = $14,
			auction_number = $15, created_at = $16, updated_at = $17
		WHERE submission_id = $1`, submissionArgs(sub)...)
	if err != nil {
		return fmt.Errorf("update submission %s: %w", sub.SubmissionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update submission %s: %w", sub.SubmissionID, biddingerrors.ErrSubmissionNotFound)
	}
	return nil
}

func (r *PostgresRepo) ListSubmissions(ctx context.Context, status model.ApprovalStatus) ([]model.Submission, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+submissionColumns+` FROM submissions
		WHERE $1 = '' OR approval_status = $1
		ORDER BY created_at ASC, submission_id ASC`, string(status))
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	subs := []model.Submission{}
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// NextLotNumber advances the lot-number counter in a single statement, so concurrent
// first approvals on any instance never receive the same number.
func (r *PostgresRepo) NextLotNumber(ctx context.Context) (int, error) {
	var next int
	err := r.DB.QueryRow(ctx,
		`UPDATE counters
		SET value = GREATEST(value, (SELECT COALESCE(MAX(lot_number), 0) FROM submissions)) + 1
		WHERE name = 'lot_number'
		RETURNING value`).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next lot number: %w", err)
	}
	return next, nil
}

// LockLot holds a session-level advisory lock on a dedicated connection until released
func (r *PostgresRepo) LockLot(ctx context.Context, lotID string) (func(), error) {
	conn, err := r.DB.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("lock lot %s: %w", lotID, err)
	}
	if _, err := conn.Exec(ctx, `SELECT pg_advisory_lock(hashtext($1))`, lotID); err != nil {
		conn.Release()
		return nil, fmt.Errorf("lock lot %s: %w", lotID, err)
	}
	return func() {
		if _, err := conn.Exec(context.Background(), `SELECT pg_advisory_unlock(hashtext($1))`, lotID); err != nil {
			// a lock we cannot release must not go back to the pool
			conn.Conn().Close(context.Background())
		}
		conn.Release()
	}, nil
}

func lotArgs(lot model.Lot) []any {
	return []any{
		lot.LotID, lot.AuctionNumber, lot.SubmissionID, lot.Minimum, lot.Maximum, string(lot.AuctionCenter),
		lot.TotalQuantity, lot.Seller.GradeCode, lot.Seller.SellerName, lot.Seller.NumberOfBags, lot.Seller.BagSize,
		lot.State.String(), lot.BidValue1, lot.BidValue2, lot.PaymentRef, lot.TokenNumber,
		lot.PublishedAt, lot.LastUpdated, lot.ClosedAt,
	}
}

func scanLot(row pgx.Row) (model.Lot, error) {
	var (
		lot    model.Lot
		center string
		state  string
	)
	err := row.Scan(&lot.LotID, &lot.AuctionNumber, &lot.SubmissionID, &lot.Minimum, &lot.Maximum, &center,
		&lot.TotalQuantity, &lot.Seller.GradeCode, &lot.Seller.SellerName, &lot.Seller.NumberOfBags, &lot.Seller.BagSize,
		&state, &lot.BidValue1, &lot.BidValue2, &lot.PaymentRef, &lot.TokenNumber,
		&lot.PublishedAt, &lot.LastUpdated, &lot.ClosedAt)
	if err != nil {
		return model.Lot{}, err
	}
	lot.AuctionCenter = model.AuctionCenter(center)
	if lot.State, err = model.ParseLotState(state); err != nil {
		return model.Lot{}, err
	}
	return lot, nil
}

func collectLots(rows pgx.Rows) ([]model.Lot, error) {
	defer rows.Close()

	lots := []model.Lot{}
	for rows.Next() {
		lot, err := scanLot(rows)
		if err != nil {
			return nil, err
		}
		lots = append(lots, lot)
	}
	return lots, rows.Err()
}

func submissionArgs(sub model.Submission) []any {
	return []any{
		sub.SubmissionID, sub.SellerID, sub.SellerEmail, string(sub.AuctionCenter), sub.TotalQuantity,
		sub.Seller.GradeCode, sub.Seller.SellerName, sub.Seller.NumberOfBags, sub.Seller.BagSize,
		string(sub.ApprovalStatus), sub.FirstApproval, sub.SecondApproval, sub.LotNumber, sub.AddedToAuction,
		sub.AuctionNumber, sub.CreatedAt, sub.UpdatedAt,
	}
}

func scanSubmission(row pgx.Row) (model.Submission, error) {
	var (
		sub    model.Submission
		center string
		status string
	)
	err := row.Scan(&sub.SubmissionID, &sub.SellerID, &sub.SellerEmail, &center, &sub.TotalQuantity,
		&sub.Seller.GradeCode, &sub.Seller.SellerName, &sub.Seller.NumberOfBags, &sub.Seller.BagSize,
		&status, &sub.FirstApproval, &sub.SecondApproval, &sub.LotNumber, &sub.AddedToAuction,
		&sub.AuctionNumber, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		return model.Submission{}, err
	}
	sub.AuctionCenter = model.AuctionCenter(center)
	sub.ApprovalStatus = model.ApprovalStatus(status)
	return sub, nil
}
