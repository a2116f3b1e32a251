package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/campusconnect/campusconnect/internal/db"
	"github.com/campusconnect/campusconnect/internal/marketplace"
	"github.com/campusconnect/campusconnect/internal/repository"
)

type ReviewRepo struct {
	db db.DB
}

func NewReviewRepo(db db.DB) marketplace.ReviewRepository {
	return &ReviewRepo{db: db}
}

func (r *ReviewRepo) CreateTx(ctx context.Context, tx db.Tx, review *repository.Review) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO reviews (id, transaction_id, reviewer_id, reviewee_id, rating, comment, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, review.ID, review.TransactionID, review.ReviewerID, review.RevieweeID,
		review.Rating, review.Comment, review.CreatedAt)
	return err
}

// RefreshRatingTx recomputes the reviewee's aggregate rating from all their
// reviews. Run in the same transaction as the insert so the rating can never
// drift from the review rows.
func (r *ReviewRepo) RefreshRatingTx(ctx context.Context, tx db.Tx, revieweeID uuid.UUID) error {
	_, err := tx.Exec(ctx, `
        UPDATE users
        SET rating = COALESCE((SELECT AVG(rating) FROM reviews WHERE reviewee_id = $1), 0)
        WHERE id = $1
    `, revieweeID)
	return err
}

func (r *ReviewRepo) ListByUser(ctx context.Context, revieweeID uuid.UUID) ([]*repository.ReviewDetails, error) {
	var reviews []*repository.ReviewDetails
	err := r.db.Select(ctx, &reviews, `
        SELECT rv.*, u.full_name AS reviewer_name
        FROM reviews rv
        JOIN users u ON u.id = rv.reviewer_id
        WHERE rv.reviewee_id = $1
        ORDER BY rv.created_at DESC
    `, revieweeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}
