package approval

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

const auctionDateLayout = "02-01-2006"

// SubmissionInput is what a seller provides when proposing a lot
type SubmissionInput struct {
	AuctionCenter model.AuctionCenter
	TotalQuantity float64
	Seller        model.SellerDetails
}

// Service runs the two-stage review of seller submissions and promotes approved
// submissions into lots.
type Service struct {
	repo     repository.AuctionDB
	notifier feed.Notifier
	now      func() time.Time
}

func NewService(repo repository.AuctionDB, notifier feed.Notifier) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Submit stores a new pending submission for seller
func (s *Service) Submit(ctx context.Context, seller model.Identity, in SubmissionInput) (model.Submission, error) {
	if seller.UserID == "" {
		return model.Submission{}, fmt.Errorf("approval: %w - missing seller ID", biddingerrors.ErrInvalidInput)
	}
	if !in.AuctionCenter.Valid() {
		return model.Submission{}, fmt.Errorf("approval: %w - unknown auction center %q", biddingerrors.ErrInvalidInput, in.AuctionCenter)
	}
	if !(in.TotalQuantity > 0) {
		return model.Submission{}, fmt.Errorf("approval: %w - total quantity must be positive", biddingerrors.ErrInvalidInput)
	}
	if in.Seller.NumberOfBags < 0 || in.Seller.BagSize < 0 {
		return model.Submission{}, fmt.Errorf("approval: %w - bag count and size must not be negative", biddingerrors.ErrInvalidInput)
	}

	now := s.now()
	sub := model.Submission{
		SubmissionID:   utils.GenerateID(),
		SellerID:       seller.UserID,
		SellerEmail:    seller.Email,
		AuctionCenter:  in.AuctionCenter,
		TotalQuantity:  in.TotalQuantity,
		Seller:         in.Seller,
		ApprovalStatus: model.ApprovalPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.CreateSubmission(ctx, sub); err != nil {
		return model.Submission{}, fmt.Errorf("approval: failed to create submission: %w", err)
	}

	utils.Info("approval: submission received", map[string]any{"submission_id": sub.SubmissionID, "seller_id": sub.SellerID})
	return sub, nil
}

func (s *Service) Get(ctx context.Context, submissionID string) (model.Submission, error) {
	sub, err := s.repo.GetSubmission(ctx, submissionID)
	if err != nil {
		return model.Submission{}, fmt.Errorf("approval: failed to get submission %s: %w", submissionID, err)
	}
	return sub, nil
}

// List returns submissions with the given status, oldest first; an empty status lists all
func (s *Service) List(ctx context.Context, status model.ApprovalStatus) ([]model.Submission, error) {
	switch status {
	case "", model.ApprovalPending, model.ApprovalApproved, model.ApprovalRejected:
	default:
		return nil, fmt.Errorf("approval: %w - unknown approval status %q", biddingerrors.ErrInvalidInput, status)
	}

	subs, err := s.repo.ListSubmissions(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("approval: failed to list submissions: %w", err)
	}
	return subs, nil
}

// FirstApprove approves a pending submission and assigns it the next lot number
func (s *Service) FirstApprove(ctx context.Context, submissionID string) (model.Submission, error) {
	return s.transition(ctx, submissionID, "first approval", func(sub model.Submission) (model.Submission, error) {
		if sub.ApprovalStatus != model.ApprovalPending || sub.FirstApproval {
			return sub, invalid(sub, "first approval")
		}

		lotNumber, err := s.repo.NextLotNumber(ctx)
		if err != nil {
			return sub, fmt.Errorf("approval: failed to assign lot number: %w", err)
		}

		sub.LotNumber = &lotNumber
		sub.FirstApproval = true
		sub.ApprovalStatus = model.ApprovalApproved
		return sub, nil
	})
}

// SecondApprove confirms a submission that passed first approval
func (s *Service) SecondApprove(ctx context.Context, submissionID string) (model.Submission, error) {
	return s.transition(ctx, submissionID, "second approval", func(sub model.Submission) (model.Submission, error) {
		if sub.ApprovalStatus != model.ApprovalApproved || !sub.FirstApproval || sub.SecondApproval {
			return sub, invalid(sub, "second approval")
		}
		sub.SecondApproval = true
		return sub, nil
	})
}

// Reject rejects a submission before its second approval. Its lot number is not reused.
func (s *Service) Reject(ctx context.Context, submissionID string) (model.Submission, error) {
	return s.transition(ctx, submissionID, "rejection", func(sub model.Submission) (model.Submission, error) {
		pending := sub.ApprovalStatus == model.ApprovalPending && !sub.FirstApproval
		firstOnly := sub.ApprovalStatus == model.ApprovalApproved && sub.FirstApproval && !sub.SecondApproval
		if !pending && !firstOnly {
			return sub, invalid(sub, "rejection")
		}
		sub.ApprovalStatus = model.ApprovalRejected
		sub.FirstApproval = false
		sub.SecondApproval = false
		sub.LotNumber = nil
		return sub, nil
	})
}

// AddToAuction creates a not-started lot from a fully approved submission.
// The lot id is derived from the submission id, so a retry after a failed
// submission update completes the promotion instead of creating a second lot.
func (s *Service) AddToAuction(ctx context.Context, submissionID string, minimum, maximum float64) (model.Lot, error) {
	if !(minimum > 0) || !(maximum >= minimum) {
		return model.Lot{}, fmt.Errorf("approval: %w - price bounds must satisfy 0 < minimum <= maximum", biddingerrors.ErrInvalidInput)
	}

	var lot model.Lot
	_, err := s.transition(ctx, submissionID, "add to auction", func(sub model.Submission) (model.Submission, error) {
		if !sub.SecondApproval || sub.AddedToAuction || sub.LotNumber == nil {
			return sub, invalid(sub, "add to auction")
		}

		now := s.now()
		lot = model.Lot{
			LotID:         utils.LotIDForSubmission(sub.SubmissionID),
			AuctionNumber: fmt.Sprintf("%d/%s", *sub.LotNumber, now.Format(auctionDateLayout)),
			SubmissionID:  sub.SubmissionID,
			Minimum:       minimum,
			Maximum:       maximum,
			AuctionCenter: sub.AuctionCenter,
			TotalQuantity: sub.TotalQuantity,
			Seller:        sub.Seller,
			State:         model.StateNotStarted,
			PublishedAt:   now,
			LastUpdated:   now,
		}

		if err := s.repo.CreateLot(ctx, lot); err != nil {
			if !errors.Is(err, biddingerrors.ErrLotExists) {
				return sub, fmt.Errorf("approval: failed to create lot for submission %s: %w", sub.SubmissionID, err)
			}
			existing, err := s.repo.GetLot(ctx, lot.LotID)
			if err != nil {
				return sub, fmt.Errorf("approval: failed to load lot for submission %s: %w", sub.SubmissionID, err)
			}
			lot = existing
		}
		if !lot.QuantityConsistent() {
			utils.Warn("approval: bag count and size do not match total quantity", map[string]any{
				"submission_id":  sub.SubmissionID,
				"total_quantity": lot.TotalQuantity,
				"number_of_bags": lot.Seller.NumberOfBags,
				"bag_size":       lot.Seller.BagSize,
			})
		}

		sub.AddedToAuction = true
		sub.AuctionNumber = lot.AuctionNumber
		return sub, nil
	})
	if err != nil {
		return model.Lot{}, err
	}

	s.notifier.Notify(ctx, feed.Event{LotID: lot.LotID, Kind: feed.KindState})
	return lot, nil
}

// transition applies fn to a submission while holding its lock and stores the result
func (s *Service) transition(ctx context.Context, submissionID, step string, fn func(model.Submission) (model.Submission, error)) (model.Submission, error) {
	if submissionID == "" {
		return model.Submission{}, fmt.Errorf("approval: %w - empty submission ID", biddingerrors.ErrInvalidInput)
	}

	unlock, err := s.repo.LockLot(ctx, "submission/"+submissionID)
	if err != nil {
		return model.Submission{}, fmt.Errorf("approval: failed to lock submission %s: %w", submissionID, err)
	}
	defer unlock()

	sub, err := s.repo.GetSubmission(ctx, submissionID)
	if err != nil {
		return model.Submission{}, fmt.Errorf("approval: failed to get submission %s: %w", submissionID, err)
	}

	next, err := fn(sub)
	if err != nil {
		return model.Submission{}, err
	}
	next.UpdatedAt = s.now()

	if err := s.repo.UpdateSubmission(ctx, next); err != nil {
		return model.Submission{}, fmt.Errorf("approval: failed to update submission %s: %w", submissionID, err)
	}

	fields := map[string]any{"submission_id": submissionID, "status": string(next.ApprovalStatus)}
	if next.LotNumber != nil {
		fields["lot_number"] = *next.LotNumber
	}
	utils.Info("approval: "+step, fields)
	return next, nil
}

func invalid(sub model.Submission, step string) error {
	return fmt.Errorf("approval: %w - %s not allowed for submission %s (status %s, first %t, second %t, added %t)",
		biddingerrors.ErrInvalidTransition, step, sub.SubmissionID, sub.ApprovalStatus,
		sub.FirstApproval, sub.SecondApproval, sub.AddedToAuction)
}
