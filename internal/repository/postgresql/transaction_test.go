package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_database "github.com/campusconnect/campusconnect/internal/db/mocks"
	"github.com/campusconnect/campusconnect/internal/repository"
	"github.com/campusconnect/campusconnect/internal/repository/postgresql"
)

func testTransaction() *repository.Transaction {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &repository.Transaction{
		ID:            uuid.New(),
		ItemID:        uuid.New(),
		LenderID:      uuid.New(),
		BorrowerID:    uuid.New(),
		Type:          "borrow",
		Status:        "pending",
		BorrowDate:    now,
		DueDate:       now.Add(7 * 24 * time.Hour),
		PaymentStatus: "none",
		CreatedAt:     now,
	}
}

func TestTransactionRepo_CreateTx(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewTransactionRepo(mockDB)

		tr := testTransaction()
		mockTx.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(tr.ID),
			gomock.Eq(tr.ItemID),
			gomock.Eq(tr.LenderID),
			gomock.Eq(tr.BorrowerID),
			gomock.Eq(tr.Type),
			gomock.Eq(tr.Status),
			gomock.Eq(tr.BorrowDate),
			gomock.Eq(tr.DueDate),
			gomock.Eq(tr.Notes),
			gomock.Eq(tr.PaymentStatus),
			gomock.Eq(tr.CreatedAt),
		).Return(nil, nil)

		err := repo.CreateTx(ctx, mockTx, tr)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewTransactionRepo(mockDB)

		expectedErr := errors.New("database error")
		mockTx.EXPECT().Exec(
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(),
		).Return(nil, expectedErr)

		err := repo.CreateTx(ctx, mockTx, testTransaction())
		assert.Equal(t, expectedErr, err)
	})
}

func TestTransactionRepo_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("transaction found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewTransactionRepo(mockDB)

		tr := testTransaction()
		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(tr.ID)).
			DoAndReturn(func(_ context.Context, dest *repository.Transaction, _ string, _ uuid.UUID) error {
				*dest = *tr
				return nil
			})

		got, err := repo.GetByID(ctx, tr.ID)
		assert.NoError(t, err)
		assert.Equal(t, tr, got)
	})

	t.Run("transaction not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewTransactionRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgx.ErrNoRows)

		got, err := repo.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
		assert.Nil(t, got)
	})
}

func TestTransactionRepo_FindPendingByItemAndBorrowerTx(t *testing.T) {
	ctx := context.Background()

	t.Run("pending request exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewTransactionRepo(mockDB)

		tr := testTransaction()
		mockTx.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Eq(tr.ItemID), gomock.Eq(tr.BorrowerID)).
			DoAndReturn(func(_ context.Context, dest *repository.Transaction, _ string, _ ...interface{}) error {
				*dest = *tr
				return nil
			})

		got, err := repo.FindPendingByItemAndBorrowerTx(ctx, mockTx, tr.ItemID, tr.BorrowerID)
		assert.NoError(t, err)
		assert.Equal(t, tr, got)
	})

	t.Run("no pending request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewTransactionRepo(mockDB)

		mockTx.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgx.ErrNoRows)

		got, err := repo.FindPendingByItemAndBorrowerTx(ctx, mockTx, uuid.New(), uuid.New())
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
		assert.Nil(t, got)
	})
}

func TestTransactionRepo_UpdateTx(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewTransactionRepo(mockDB)

		now := time.Date(2025, 3, 8, 9, 0, 0, 0, time.UTC)
		tr := testTransaction()
		tr.Status = "completed"
		tr.ReturnDate = &now
		tr.CompletedAt = &now
		tr.LateReturn = true
		tr.DaysOverdue = 2

		mockTx.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(tr.Status),
			gomock.Eq(tr.ReturnDate),
			gomock.Eq(tr.LateReturn),
			gomock.Eq(tr.DaysOverdue),
			gomock.Eq(tr.Notes),
			gomock.Eq(tr.PaymentMethod),
			gomock.Eq(tr.PaymentAmount),
			gomock.Eq(tr.PaymentStatus),
			gomock.Eq(tr.PaymentReference),
			gomock.Eq(tr.CompletedAt),
			gomock.Eq(tr.ID),
		).Return(nil, nil)

		err := repo.UpdateTx(ctx, mockTx, tr)
		assert.NoError(t, err)
	})
}

func TestTransactionRepo_GetByUser(t *testing.T) {
	ctx := context.Background()

	t.Run("lender role filters by lender column", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewTransactionRepo(mockDB)

		userID := uuid.New()
		rows := []*repository.Transaction{testTransaction()}

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Eq(userID), gomock.Eq(20), gomock.Eq(0)).
			DoAndReturn(func(_ context.Context, dest *[]*repository.Transaction, query string, _ ...interface{}) error {
				assert.Contains(t, query, "lender_id = $1")
				assert.NotContains(t, query, "borrower_id")
				*dest = rows
				return nil
			})

		got, err := repo.GetByUser(ctx, userID, "lender", 0, 0)
		assert.NoError(t, err)
		assert.Equal(t, rows, got)
	})

	t.Run("no role matches either side", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewTransactionRepo(mockDB)

		userID := uuid.New()
		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Eq(userID), gomock.Eq(10), gomock.Eq(10)).
			DoAndReturn(func(_ context.Context, dest *[]*repository.Transaction, query string, _ ...interface{}) error {
				assert.Contains(t, query, "lender_id = $1 OR borrower_id = $1")
				return nil
			})

		_, err := repo.GetByUser(ctx, userID, "", 2, 10)
		assert.NoError(t, err)
	})
}

func TestTransactionRepo_GetStats(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewTransactionRepo(mockDB)

		counts := []*repository.StatusCount{
			{Status: "pending", Count: 3},
			{Status: "completed", Count: 7},
		}

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, dest *[]*repository.StatusCount, _ string, _ ...interface{}) error {
				*dest = counts
				return nil
			})
		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, dest *float64, _ string, _ ...interface{}) error {
				*dest = 1.5
				return nil
			})

		got, avg, err := repo.GetStats(ctx)
		assert.NoError(t, err)
		assert.Equal(t, counts, got)
		assert.Equal(t, 1.5, avg)
	})

	t.Run("count error aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewTransactionRepo(mockDB)

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, _, err := repo.GetStats(ctx)
		assert.Error(t, err)
	})
}

func TestTransactionRepo_FindOverdue(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewTransactionRepo(mockDB)

	asOf := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	overdue := []*repository.Transaction{testTransaction()}

	mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(asOf)).
		DoAndReturn(func(_ context.Context, dest *[]*repository.Transaction, query string, _ time.Time) error {
			assert.Contains(t, query, "due_date < $1")
			*dest = overdue
			return nil
		})

	got, err := repo.FindOverdue(ctx, asOf)
	assert.NoError(t, err)
	assert.Equal(t, overdue, got)
}
