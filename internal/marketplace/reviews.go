package marketplace

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campusconnect/campusconnect/internal/repository"
)

// LeaveReview lets either party of a completed transaction rate the other.
// The reviewee's aggregate rating is recomputed in the same database
// transaction as the insert.
func (s *Service) LeaveReview(ctx context.Context, transactionID, reviewerID uuid.UUID, in ReviewInput) (*Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, ErrInvalidRating
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	row, err := s.transactions.GetByIDTx(ctx, tx, transactionID)
	if err != nil {
		return nil, err
	}
	role, err := roleOf(row, reviewerID)
	if err != nil {
		return nil, err
	}
	if Status(row.Status) != StatusCompleted {
		return nil, ErrNotReviewable
	}

	revieweeID := row.LenderID
	if role == RoleLender {
		revieweeID = row.BorrowerID
	}

	review := &repository.Review{
		ID:            uuid.New(),
		TransactionID: transactionID,
		ReviewerID:    reviewerID,
		RevieweeID:    revieweeID,
		Rating:        in.Rating,
		Comment:       in.Comment,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.reviews.CreateTx(ctx, tx, review); err != nil {
		return nil, err
	}
	if err := s.reviews.RefreshRatingTx(ctx, tx, revieweeID); err != nil {
		return nil, fmt.Errorf("failed to refresh rating: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit review: %w", err)
	}

	result := reviewFromRepo(review)
	return &result, nil
}

// UserReviews lists the reviews left about a user, newest first.
func (s *Service) UserReviews(ctx context.Context, userID uuid.UUID) ([]Review, error) {
	rows, err := s.reviews.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	reviews := make([]Review, len(rows))
	for i, row := range rows {
		reviews[i] = reviewFromDetails(row)
	}
	return reviews, nil
}
