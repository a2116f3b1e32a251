package marketplace

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campusconnect/campusconnect/internal/db"
	"github.com/campusconnect/campusconnect/internal/repository"
)

// In-memory fakes. The orchestrator only sequences repository calls, so a
// map-backed double per repository is enough to exercise every flow without
// a database.

type fakeTx struct{}

func (t *fakeTx) Commit(context.Context) error   { return nil }
func (t *fakeTx) Rollback(context.Context) error { return nil }
func (t *fakeTx) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return nil, nil
}
func (t *fakeTx) Get(context.Context, interface{}, string, ...interface{}) error    { return nil }
func (t *fakeTx) Select(context.Context, interface{}, string, ...interface{}) error { return nil }

type fakeDB struct{}

func (d *fakeDB) Get(context.Context, interface{}, string, ...interface{}) error    { return nil }
func (d *fakeDB) Select(context.Context, interface{}, string, ...interface{}) error { return nil }
func (d *fakeDB) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return nil, nil
}
func (d *fakeDB) ExecQueryRow(context.Context, string, ...interface{}) pgx.Row { return nil }
func (d *fakeDB) BeginTx(context.Context) (db.Tx, error)                       { return &fakeTx{}, nil }

type fakeItemRepo struct {
	items map[uuid.UUID]*repository.Item
}

func (r *fakeItemRepo) Create(_ context.Context, item *repository.Item) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) GetByID(_ context.Context, id uuid.UUID) (*repository.ItemDetails, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, repository.ErrObjectNotFound
	}
	return &repository.ItemDetails{Item: *item, OwnerName: "owner"}, nil
}

func (r *fakeItemRepo) GetByIDTx(_ context.Context, _ db.Tx, id uuid.UUID) (*repository.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, repository.ErrObjectNotFound
	}
	return item, nil
}

func (r *fakeItemRepo) Search(context.Context, repository.ItemFilter) ([]*repository.ItemDetails, int64, error) {
	return nil, 0, nil
}

func (r *fakeItemRepo) Update(context.Context, uuid.UUID, uuid.UUID, repository.ItemPatch) (*repository.Item, error) {
	return nil, repository.ErrObjectNotFound
}

func (r *fakeItemRepo) UpdateAvailability(ctx context.Context, id uuid.UUID, status string) (*repository.Item, error) {
	return r.UpdateAvailabilityTx(ctx, nil, id, status)
}

func (r *fakeItemRepo) UpdateAvailabilityTx(_ context.Context, _ db.Tx, id uuid.UUID, status string) (*repository.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, repository.ErrObjectNotFound
	}
	item.AvailabilityStatus = status
	return item, nil
}

func (r *fakeItemRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }

func (r *fakeItemRepo) GetAvailable(context.Context) ([]*repository.ItemDetails, error) {
	return nil, nil
}

type fakeTransactionRepo struct {
	transactions map[uuid.UUID]*repository.Transaction
}

func (r *fakeTransactionRepo) Create(_ context.Context, t *repository.Transaction) error {
	r.transactions[t.ID] = t
	return nil
}

func (r *fakeTransactionRepo) CreateTx(ctx context.Context, _ db.Tx, t *repository.Transaction) error {
	return r.Create(ctx, t)
}

func (r *fakeTransactionRepo) GetByID(_ context.Context, id uuid.UUID) (*repository.Transaction, error) {
	t, ok := r.transactions[id]
	if !ok {
		return nil, repository.ErrObjectNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTransactionRepo) GetByIDTx(ctx context.Context, _ db.Tx, id uuid.UUID) (*repository.Transaction, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeTransactionRepo) GetByUser(context.Context, uuid.UUID, string, int, int) ([]*repository.Transaction, error) {
	return nil, nil
}

func (r *fakeTransactionRepo) FindPendingByItemAndBorrowerTx(_ context.Context, _ db.Tx, itemID, borrowerID uuid.UUID) (*repository.Transaction, error) {
	for _, t := range r.transactions {
		if t.ItemID == itemID && t.BorrowerID == borrowerID && t.Status == string(StatusPending) {
			return t, nil
		}
	}
	return nil, repository.ErrObjectNotFound
}

func (r *fakeTransactionRepo) UpdateTx(_ context.Context, _ db.Tx, t *repository.Transaction) error {
	copied := *t
	r.transactions[t.ID] = &copied
	return nil
}

func (r *fakeTransactionRepo) GetActiveByUser(context.Context, uuid.UUID) ([]*repository.ActiveTransaction, error) {
	return nil, nil
}

func (r *fakeTransactionRepo) GetStats(context.Context) ([]*repository.StatusCount, float64, error) {
	return nil, 0, nil
}

func (r *fakeTransactionRepo) FindDueBetween(context.Context, time.Time, time.Time) ([]*repository.Transaction, error) {
	return nil, nil
}

func (r *fakeTransactionRepo) FindOverdue(context.Context, time.Time) ([]*repository.Transaction, error) {
	return nil, nil
}

type fakeNotificationRepo struct {
	created []*repository.Notification
}

func (r *fakeNotificationRepo) Create(_ context.Context, n *repository.Notification) error {
	r.created = append(r.created, n)
	return nil
}

func (r *fakeNotificationRepo) CreateTx(ctx context.Context, _ db.Tx, n *repository.Notification) error {
	return r.Create(ctx, n)
}

func (r *fakeNotificationRepo) GetByUser(context.Context, uuid.UUID, int, int) ([]*repository.Notification, error) {
	return r.created, nil
}

func (r *fakeNotificationRepo) MarkRead(context.Context, uuid.UUID, uuid.UUID) (*repository.Notification, error) {
	return nil, repository.ErrObjectNotFound
}

func (r *fakeNotificationRepo) MarkAllRead(context.Context, uuid.UUID) (int64, error) { return 0, nil }
func (r *fakeNotificationRepo) UnreadCount(context.Context, uuid.UUID) (int64, error) { return 0, nil }
func (r *fakeNotificationRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error    { return nil }
func (r *fakeNotificationRepo) DeleteOld(context.Context, int) (int64, error)         { return 0, nil }

func (r *fakeNotificationRepo) ExistsForTransaction(_ context.Context, transactionID uuid.UUID, notificationType string) (bool, error) {
	for _, n := range r.created {
		if n.TransactionID != nil && *n.TransactionID == transactionID && n.Type == notificationType {
			return true, nil
		}
	}
	return false, nil
}

type fakeUserRepo struct {
	users   map[uuid.UUID]*repository.User
	lends   int
	borrows int
}

func (r *fakeUserRepo) Create(context.Context, string, string, string, string) (*repository.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*repository.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrObjectNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) Authenticate(context.Context, string, string) (*repository.User, error) {
	return nil, repository.ErrInvalidCredentials
}

func (r *fakeUserRepo) IncrementLoanCountersTx(context.Context, db.Tx, uuid.UUID, uuid.UUID) error {
	r.lends++
	r.borrows++
	return nil
}

type fakeReviewRepo struct {
	reviews map[uuid.UUID][]*repository.Review
}

func (r *fakeReviewRepo) CreateTx(_ context.Context, _ db.Tx, review *repository.Review) error {
	for _, existing := range r.reviews[review.RevieweeID] {
		if existing.TransactionID == review.TransactionID && existing.ReviewerID == review.ReviewerID {
			return &pgconn.PgError{Code: "23505"}
		}
	}
	r.reviews[review.RevieweeID] = append(r.reviews[review.RevieweeID], review)
	return nil
}

func (r *fakeReviewRepo) RefreshRatingTx(context.Context, db.Tx, uuid.UUID) error { return nil }

func (r *fakeReviewRepo) ListByUser(_ context.Context, revieweeID uuid.UUID) ([]*repository.ReviewDetails, error) {
	var details []*repository.ReviewDetails
	for _, review := range r.reviews[revieweeID] {
		details = append(details, &repository.ReviewDetails{Review: *review, ReviewerName: "reviewer"})
	}
	return details, nil
}

type fakeCategoryRepo struct{}

func (r *fakeCategoryRepo) List(context.Context) ([]*repository.Category, error) {
	return []*repository.Category{{ID: 1, Name: "Textbooks", Slug: "textbooks"}}, nil
}

type fakeOutboxRepo struct {
	tasks []*repository.OutboxTask
}

func (r *fakeOutboxRepo) CreateTx(_ context.Context, _ db.Tx, task *repository.OutboxTask) error {
	r.tasks = append(r.tasks, task)
	return nil
}

func (r *fakeOutboxRepo) GetProcessableTasks(context.Context, db.Tx, int) ([]*repository.OutboxTask, error) {
	return nil, nil
}

func (r *fakeOutboxRepo) UpdateTaskStatusTx(context.Context, db.Tx, uuid.UUID, repository.TaskStatus, int, *string, *time.Time) error {
	return nil
}

func (r *fakeOutboxRepo) UpdateTaskStatus(context.Context, db.DB, uuid.UUID, repository.TaskStatus, int, *string, *time.Time) error {
	return nil
}

type fakePusher struct {
	sent map[uuid.UUID]int
}

func (p *fakePusher) Send(userID uuid.UUID, _ interface{}) bool {
	p.sent[userID]++
	return true
}

type fixture struct {
	service       *Service
	items         *fakeItemRepo
	transactions  *fakeTransactionRepo
	notifications *fakeNotificationRepo
	users         *fakeUserRepo
	reviews       *fakeReviewRepo
	outbox        *fakeOutboxRepo
	pusher        *fakePusher

	lenderID   uuid.UUID
	borrowerID uuid.UUID
	itemID     uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		items:         &fakeItemRepo{items: make(map[uuid.UUID]*repository.Item)},
		transactions:  &fakeTransactionRepo{transactions: make(map[uuid.UUID]*repository.Transaction)},
		notifications: &fakeNotificationRepo{},
		users:         &fakeUserRepo{users: make(map[uuid.UUID]*repository.User)},
		reviews:       &fakeReviewRepo{reviews: make(map[uuid.UUID][]*repository.Review)},
		outbox:        &fakeOutboxRepo{},
		pusher:        &fakePusher{sent: make(map[uuid.UUID]int)},
		lenderID:      uuid.New(),
		borrowerID:    uuid.New(),
		itemID:        uuid.New(),
	}

	f.items.items[f.itemID] = &repository.Item{
		ID:                 f.itemID,
		OwnerID:            f.lenderID,
		Name:               "Graphing Calculator",
		AvailabilityStatus: string(AvailabilityAvailable),
	}
	f.users.users[f.lenderID] = &repository.User{ID: f.lenderID, Username: "lender", FullName: "Lena Lender"}
	f.users.users[f.borrowerID] = &repository.User{ID: f.borrowerID, Username: "borrower", FullName: "Bob Borrower"}

	f.service = NewService(&fakeDB{}, f.items, f.transactions, f.notifications, f.users,
		&fakeCategoryRepo{}, f.reviews, f.outbox, f.pusher, nil, zap.NewNop())
	return f
}

func (f *fixture) request(t *testing.T) *Transaction {
	t.Helper()
	tx, err := f.service.RequestToBorrow(context.Background(), f.itemID, f.borrowerID, BorrowRequestInput{
		DueDate: time.Now().UTC().Add(7 * 24 * time.Hour),
	})
	require.NoError(t, err)
	return tx
}

func TestRequestToBorrow(t *testing.T) {
	t.Parallel()

	t.Run("creates pending transaction and notifies lender", func(t *testing.T) {
		f := newFixture(t)

		tx := f.request(t)

		assert.Equal(t, StatusPending, tx.Status)
		assert.Equal(t, f.lenderID, tx.LenderID)
		assert.Equal(t, PaymentStatusNone, tx.PaymentStatus)

		// item stays available so other borrowers can still apply
		assert.Equal(t, string(AvailabilityAvailable), f.items.items[f.itemID].AvailabilityStatus)

		require.Len(t, f.notifications.created, 1)
		notif := f.notifications.created[0]
		assert.Equal(t, f.lenderID, notif.UserID)
		assert.Equal(t, NotificationBorrowRequest, notif.Type)
		assert.Contains(t, notif.Message, "Bob Borrower")
		assert.Contains(t, notif.Message, "Graphing Calculator")
		assert.Equal(t, 1, f.pusher.sent[f.lenderID])

		require.Len(t, f.outbox.tasks, 1)
		assert.Equal(t, LifecycleTopic, f.outbox.tasks[0].Topic)
		assert.True(t, strings.Contains(string(f.outbox.tasks[0].Payload), `"new_status":"pending"`))
	})

	t.Run("rejects unavailable item", func(t *testing.T) {
		f := newFixture(t)
		f.items.items[f.itemID].AvailabilityStatus = string(AvailabilityBorrowed)

		_, err := f.service.RequestToBorrow(context.Background(), f.itemID, f.borrowerID, BorrowRequestInput{})
		assert.ErrorIs(t, err, ErrItemUnavailable)
	})

	t.Run("rejects borrowing own item", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.RequestToBorrow(context.Background(), f.itemID, f.lenderID, BorrowRequestInput{})
		assert.ErrorIs(t, err, ErrSelfBorrow)
	})

	t.Run("rejects duplicate pending request from same borrower", func(t *testing.T) {
		f := newFixture(t)
		f.request(t)

		_, err := f.service.RequestToBorrow(context.Background(), f.itemID, f.borrowerID, BorrowRequestInput{})
		assert.ErrorIs(t, err, ErrDuplicateRequest)
	})

	t.Run("allows a second borrower to go pending", func(t *testing.T) {
		f := newFixture(t)
		f.request(t)

		otherID := uuid.New()
		f.users.users[otherID] = &repository.User{ID: otherID, Username: "other"}
		tx, err := f.service.RequestToBorrow(context.Background(), f.itemID, otherID, BorrowRequestInput{})
		require.NoError(t, err)
		assert.Equal(t, StatusPending, tx.Status)
	})

	t.Run("unknown item", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.RequestToBorrow(context.Background(), uuid.New(), f.borrowerID, BorrowRequestInput{})
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestApprove(t *testing.T) {
	t.Parallel()

	t.Run("lender approves, item becomes borrowed, borrower notified", func(t *testing.T) {
		f := newFixture(t)
		tx := f.request(t)

		approved, err := f.service.Approve(context.Background(), tx.ID, f.lenderID)
		require.NoError(t, err)
		assert.Equal(t, StatusApproved, approved.Status)
		assert.Equal(t, string(AvailabilityBorrowed), f.items.items[f.itemID].AvailabilityStatus)

		require.Len(t, f.notifications.created, 2)
		assert.Equal(t, f.borrowerID, f.notifications.created[1].UserID)
		assert.Equal(t, NotificationRequestApproved, f.notifications.created[1].Type)

		// request event plus approve event
		assert.Len(t, f.outbox.tasks, 2)
	})

	t.Run("borrower cannot approve", func(t *testing.T) {
		f := newFixture(t)
		tx := f.request(t)

		_, err := f.service.Approve(context.Background(), tx.ID, f.borrowerID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("stranger gets forbidden, not a state error", func(t *testing.T) {
		f := newFixture(t)
		tx := f.request(t)

		_, err := f.service.Approve(context.Background(), tx.ID, uuid.New())
		assert.ErrorIs(t, err, repository.ErrForbidden)
	})

	t.Run("double approve rejected", func(t *testing.T) {
		f := newFixture(t)
		tx := f.request(t)

		_, err := f.service.Approve(context.Background(), tx.ID, f.lenderID)
		require.NoError(t, err)
		_, err = f.service.Approve(context.Background(), tx.ID, f.lenderID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestReject(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	tx := f.request(t)

	rejected, err := f.service.Reject(context.Background(), tx.ID, f.lenderID)
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, rejected.Status)

	// the item was never taken, so rejection leaves it untouched
	assert.Equal(t, string(AvailabilityAvailable), f.items.items[f.itemID].AvailabilityStatus)

	// only the original borrow-request notification exists
	assert.Len(t, f.notifications.created, 1)
}

func TestMarkReturned(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T, dueIn time.Duration) (*fixture, *Transaction) {
		f := newFixture(t)
		tx, err := f.service.RequestToBorrow(context.Background(), f.itemID, f.borrowerID, BorrowRequestInput{
			DueDate: time.Now().UTC().Add(dueIn),
		})
		require.NoError(t, err)
		_, err = f.service.Approve(context.Background(), tx.ID, f.lenderID)
		require.NoError(t, err)
		return f, tx
	}

	t.Run("on-time return", func(t *testing.T) {
		f, tx := setup(t, 7*24*time.Hour)

		returned, err := f.service.MarkReturned(context.Background(), tx.ID, f.lenderID)
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, returned.Status)
		assert.False(t, returned.LateReturn)
		assert.Zero(t, returned.DaysOverdue)
		require.NotNil(t, returned.ReturnDate)
		require.NotNil(t, returned.CompletedAt)

		assert.Equal(t, string(AvailabilityAvailable), f.items.items[f.itemID].AvailabilityStatus)
		assert.Equal(t, 1, f.users.lends)
		assert.Equal(t, 1, f.users.borrows)
	})

	t.Run("late return records overdue days", func(t *testing.T) {
		f, tx := setup(t, -72*time.Hour)

		returned, err := f.service.MarkReturned(context.Background(), tx.ID, f.borrowerID)
		require.NoError(t, err)
		assert.True(t, returned.LateReturn)
		assert.Equal(t, 3, returned.DaysOverdue)
	})

	t.Run("return on the due date is on time", func(t *testing.T) {
		late, days := lateness(time.Now().UTC(), time.Now().UTC())
		assert.False(t, late)
		assert.Zero(t, days)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Parallel()

	t.Run("generic path uses the same state machine", func(t *testing.T) {
		f := newFixture(t)
		tx := f.request(t)

		cancelled, err := f.service.UpdateStatus(context.Background(), tx.ID, f.borrowerID, StatusCancelled, "found one elsewhere")
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, cancelled.Status)
		assert.Equal(t, "found one elsewhere", cancelled.Notes)
	})

	t.Run("pending is not a requestable target", func(t *testing.T) {
		f := newFixture(t)
		tx := f.request(t)

		_, err := f.service.UpdateStatus(context.Background(), tx.ID, f.lenderID, StatusPending, "")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("cancelling a pending request does not free another borrower's loan", func(t *testing.T) {
		f := newFixture(t)
		tx := f.request(t)

		otherID := uuid.New()
		f.users.users[otherID] = &repository.User{ID: otherID, Username: "other", FullName: "Olga Other"}
		otherTx, err := f.service.RequestToBorrow(context.Background(), f.itemID, otherID, BorrowRequestInput{
			DueDate: time.Now().UTC().Add(7 * 24 * time.Hour),
		})
		require.NoError(t, err)

		_, err = f.service.Approve(context.Background(), tx.ID, f.lenderID)
		require.NoError(t, err)
		require.Equal(t, string(AvailabilityBorrowed), f.items.items[f.itemID].AvailabilityStatus)

		cancelled, err := f.service.UpdateStatus(context.Background(), otherTx.ID, otherID, StatusCancelled, "")
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, cancelled.Status)
		assert.Equal(t, string(AvailabilityBorrowed), f.items.items[f.itemID].AvailabilityStatus)
	})

	t.Run("cancelling an approved loan frees the item", func(t *testing.T) {
		f := newFixture(t)
		tx := f.request(t)

		_, err := f.service.Approve(context.Background(), tx.ID, f.lenderID)
		require.NoError(t, err)

		_, err = f.service.UpdateStatus(context.Background(), tx.ID, f.borrowerID, StatusCancelled, "")
		require.NoError(t, err)
		assert.Equal(t, string(AvailabilityAvailable), f.items.items[f.itemID].AvailabilityStatus)
	})
}

func TestGetTransaction(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	tx := f.request(t)

	got, err := f.service.GetTransaction(context.Background(), tx.ID, f.borrowerID)
	require.NoError(t, err)
	assert.Equal(t, tx.ID, got.ID)

	_, err = f.service.GetTransaction(context.Background(), tx.ID, uuid.New())
	assert.ErrorIs(t, err, repository.ErrForbidden)
}

func TestPayments(t *testing.T) {
	t.Parallel()

	approve := func(t *testing.T) (*fixture, *Transaction) {
		f := newFixture(t)
		tx := f.request(t)
		_, err := f.service.Approve(context.Background(), tx.ID, f.lenderID)
		require.NoError(t, err)
		return f, tx
	}

	t.Run("intent then confirm completes the transaction", func(t *testing.T) {
		f, tx := approve(t)

		withIntent, err := f.service.CreatePaymentIntent(context.Background(), tx.ID, f.borrowerID, "campus-card", 500)
		require.NoError(t, err)
		assert.Equal(t, PaymentStatusPending, withIntent.PaymentStatus)
		require.NotNil(t, withIntent.PaymentReference)

		confirmed, err := f.service.ConfirmPayment(context.Background(), tx.ID, f.borrowerID)
		require.NoError(t, err)
		assert.Equal(t, PaymentStatusPaid, confirmed.PaymentStatus)
		assert.Equal(t, StatusCompleted, confirmed.Status)
		assert.Equal(t, string(AvailabilityAvailable), f.items.items[f.itemID].AvailabilityStatus)
		assert.Equal(t, 1, f.users.lends)
	})

	t.Run("only the borrower can open or confirm", func(t *testing.T) {
		f, tx := approve(t)

		_, err := f.service.CreatePaymentIntent(context.Background(), tx.ID, f.lenderID, "campus-card", 500)
		assert.ErrorIs(t, err, repository.ErrForbidden)

		_, err = f.service.ConfirmPayment(context.Background(), tx.ID, f.lenderID)
		assert.ErrorIs(t, err, repository.ErrForbidden)
	})

	t.Run("confirm without intent", func(t *testing.T) {
		f, tx := approve(t)

		_, err := f.service.ConfirmPayment(context.Background(), tx.ID, f.borrowerID)
		assert.ErrorIs(t, err, ErrPaymentNotPending)
	})

	t.Run("refund forces cancellation and frees the item", func(t *testing.T) {
		f, tx := approve(t)
		_, err := f.service.CreatePaymentIntent(context.Background(), tx.ID, f.borrowerID, "campus-card", 500)
		require.NoError(t, err)
		_, err = f.service.ConfirmPayment(context.Background(), tx.ID, f.borrowerID)
		require.NoError(t, err)

		refunded, err := f.service.RefundPayment(context.Background(), tx.ID, f.lenderID)
		require.NoError(t, err)
		assert.Equal(t, PaymentStatusRefunded, refunded.PaymentStatus)
		assert.Equal(t, StatusCancelled, refunded.Status)
		assert.Equal(t, string(AvailabilityAvailable), f.items.items[f.itemID].AvailabilityStatus)
	})

	t.Run("refund requires a settled payment", func(t *testing.T) {
		f, tx := approve(t)

		_, err := f.service.RefundPayment(context.Background(), tx.ID, f.lenderID)
		assert.ErrorIs(t, err, ErrPaymentNotPaid)
	})

	t.Run("only the lender can refund", func(t *testing.T) {
		f, tx := approve(t)

		_, err := f.service.RefundPayment(context.Background(), tx.ID, f.borrowerID)
		assert.ErrorIs(t, err, repository.ErrForbidden)
	})
}

func TestLeaveReview(t *testing.T) {
	t.Parallel()

	complete := func(t *testing.T) (*fixture, *Transaction) {
		f := newFixture(t)
		tx := f.request(t)
		_, err := f.service.Approve(context.Background(), tx.ID, f.lenderID)
		require.NoError(t, err)
		_, err = f.service.MarkReturned(context.Background(), tx.ID, f.lenderID)
		require.NoError(t, err)
		return f, tx
	}

	t.Run("borrower rates the lender", func(t *testing.T) {
		f, tx := complete(t)

		review, err := f.service.LeaveReview(context.Background(), tx.ID, f.borrowerID, ReviewInput{Rating: 5, Comment: "great"})
		require.NoError(t, err)
		assert.Equal(t, f.lenderID, review.RevieweeID)
		assert.Equal(t, 5, review.Rating)
		assert.Len(t, f.reviews.reviews[f.lenderID], 1)
	})

	t.Run("lender rates the borrower", func(t *testing.T) {
		f, tx := complete(t)

		review, err := f.service.LeaveReview(context.Background(), tx.ID, f.lenderID, ReviewInput{Rating: 4})
		require.NoError(t, err)
		assert.Equal(t, f.borrowerID, review.RevieweeID)
	})

	t.Run("rating out of range", func(t *testing.T) {
		f, tx := complete(t)

		_, err := f.service.LeaveReview(context.Background(), tx.ID, f.borrowerID, ReviewInput{Rating: 6})
		assert.ErrorIs(t, err, ErrInvalidRating)
	})

	t.Run("pending transactions cannot be reviewed", func(t *testing.T) {
		f := newFixture(t)
		tx := f.request(t)

		_, err := f.service.LeaveReview(context.Background(), tx.ID, f.borrowerID, ReviewInput{Rating: 3})
		assert.ErrorIs(t, err, ErrNotReviewable)
	})

	t.Run("strangers cannot review", func(t *testing.T) {
		f, tx := complete(t)

		_, err := f.service.LeaveReview(context.Background(), tx.ID, uuid.New(), ReviewInput{Rating: 3})
		assert.ErrorIs(t, err, repository.ErrForbidden)
	})

	t.Run("reviews are listed newest first per user", func(t *testing.T) {
		f, tx := complete(t)
		_, err := f.service.LeaveReview(context.Background(), tx.ID, f.borrowerID, ReviewInput{Rating: 5})
		require.NoError(t, err)

		reviews, err := f.service.UserReviews(context.Background(), f.lenderID)
		require.NoError(t, err)
		require.Len(t, reviews, 1)
		assert.Equal(t, tx.ID, reviews[0].TransactionID)
	})
}
