package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/campusconnect/campusconnect/internal/db"
	"github.com/campusconnect/campusconnect/internal/marketplace"
	"github.com/campusconnect/campusconnect/internal/repository"
)

type TransactionRepo struct {
	db db.DB
}

func NewTransactionRepo(db db.DB) marketplace.TransactionRepository {
	return &TransactionRepo{db: db}
}

func (r *TransactionRepo) Create(ctx context.Context, t *repository.Transaction) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO transactions (
            id, item_id, lender_id, borrower_id, type, status,
            borrow_date, due_date, notes, payment_status, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `, t.ID, t.ItemID, t.LenderID, t.BorrowerID, t.Type, t.Status,
		t.BorrowDate, t.DueDate, t.Notes, t.PaymentStatus, t.CreatedAt)
	return err
}

func (r *TransactionRepo) CreateTx(ctx context.Context, tx db.Tx, t *repository.Transaction) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO transactions (
            id, item_id, lender_id, borrower_id, type, status,
            borrow_date, due_date, notes, payment_status, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `, t.ID, t.ItemID, t.LenderID, t.BorrowerID, t.Type, t.Status,
		t.BorrowDate, t.DueDate, t.Notes, t.PaymentStatus, t.CreatedAt)
	return err
}

func (r *TransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*repository.Transaction, error) {
	var t repository.Transaction
	err := r.db.Get(ctx, &t, "SELECT * FROM transactions WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TransactionRepo) GetByIDTx(ctx context.Context, tx db.Tx, id uuid.UUID) (*repository.Transaction, error) {
	var t repository.Transaction
	err := tx.Get(ctx, &t, "SELECT * FROM transactions WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TransactionRepo) GetByUser(ctx context.Context, userID uuid.UUID, role string, page, limit int) ([]*repository.Transaction, error) {
	query := "SELECT * FROM transactions WHERE "
	switch role {
	case "lender":
		query += "lender_id = $1"
	case "borrower":
		query += "borrower_id = $1"
	default:
		query += "(lender_id = $1 OR borrower_id = $1)"
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	query += " ORDER BY created_at DESC LIMIT $2 OFFSET $3"

	var transactions []*repository.Transaction
	err := r.db.Select(ctx, &transactions, query, userID, limit, (page-1)*limit)
	return transactions, err
}

func (r *TransactionRepo) FindPendingByItemAndBorrowerTx(ctx context.Context, tx db.Tx, itemID, borrowerID uuid.UUID) (*repository.Transaction, error) {
	var t repository.Transaction
	err := tx.Get(ctx, &t, `
        SELECT * FROM transactions
        WHERE item_id = $1 AND borrower_id = $2 AND status = 'pending'
        ORDER BY created_at DESC
        LIMIT 1
    `, itemID, borrowerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TransactionRepo) UpdateTx(ctx context.Context, tx db.Tx, t *repository.Transaction) error {
	_, err := tx.Exec(ctx, `
        UPDATE transactions
        SET
            status = $1,
            return_date = $2,
            late_return = $3,
            days_overdue = $4,
            notes = $5,
            payment_method = $6,
            payment_amount = $7,
            payment_status = $8,
            payment_reference = $9,
            completed_at = $10
        WHERE id = $11
    `, t.Status, t.ReturnDate, t.LateReturn, t.DaysOverdue, t.Notes,
		t.PaymentMethod, t.PaymentAmount, t.PaymentStatus, t.PaymentReference,
		t.CompletedAt, t.ID)
	return err
}

func (r *TransactionRepo) GetActiveByUser(ctx context.Context, userID uuid.UUID) ([]*repository.ActiveTransaction, error) {
	query := `
        SELECT t.*,
            CASE WHEN t.lender_id = $1 THEN bu.full_name ELSE lu.full_name END AS counterparty_name,
            CASE WHEN t.lender_id = $1 THEN 'lending' ELSE 'borrowing' END AS role
        FROM transactions t
        JOIN users lu ON lu.id = t.lender_id
        JOIN users bu ON bu.id = t.borrower_id
        WHERE (t.lender_id = $1 OR t.borrower_id = $1)
          AND t.status IN ('pending', 'approved', 'active')
        ORDER BY t.created_at DESC
    `
	var transactions []*repository.ActiveTransaction
	err := r.db.Select(ctx, &transactions, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active transactions: %w", err)
	}
	return transactions, nil
}

func (r *TransactionRepo) GetStats(ctx context.Context) ([]*repository.StatusCount, float64, error) {
	var counts []*repository.StatusCount
	err := r.db.Select(ctx, &counts, `
        SELECT status, COUNT(*) AS count
        FROM transactions
        GROUP BY status
    `)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions by status: %w", err)
	}

	var avgOverdue float64
	err = r.db.Get(ctx, &avgOverdue, `
        SELECT COALESCE(AVG(days_overdue), 0)
        FROM transactions
        WHERE status = 'completed'
    `)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to average overdue days: %w", err)
	}
	return counts, avgOverdue, nil
}

func (r *TransactionRepo) FindDueBetween(ctx context.Context, from, to time.Time) ([]*repository.Transaction, error) {
	var transactions []*repository.Transaction
	err := r.db.Select(ctx, &transactions, `
        SELECT * FROM transactions
        WHERE status IN ('approved', 'active')
          AND due_date >= $1 AND due_date < $2
        ORDER BY due_date ASC
    `, from, to)
	return transactions, err
}

func (r *TransactionRepo) FindOverdue(ctx context.Context, asOf time.Time) ([]*repository.Transaction, error) {
	var transactions []*repository.Transaction
	err := r.db.Select(ctx, &transactions, `
        SELECT * FROM transactions
        WHERE status IN ('approved', 'active')
          AND due_date < $1
        ORDER BY due_date ASC
    `, asOf)
	return transactions, err
}
