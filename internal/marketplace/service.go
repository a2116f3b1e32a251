//go:generate mockgen -source ./service.go -destination=./mocks/service.go -package=mock_marketplace
package marketplace

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campusconnect/campusconnect/internal/db"
	"github.com/campusconnect/campusconnect/internal/metrics"
	"github.com/campusconnect/campusconnect/internal/repository"
)

// LifecycleTopic is the outbox topic lifecycle events are published under.
const LifecycleTopic = "transaction_lifecycle"

// Notification type tags.
const (
	NotificationBorrowRequest   = "borrow_request"
	NotificationRequestApproved = "request_approved"
	NotificationDueReminder     = "due_reminder"
	NotificationOverdue         = "overdue"
	NotificationPaymentReceived = "payment_received"
	NotificationPaymentRefunded = "payment_refunded"
)

type ItemRepository interface {
	Create(ctx context.Context, item *repository.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*repository.ItemDetails, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id uuid.UUID) (*repository.Item, error)
	Search(ctx context.Context, f repository.ItemFilter) ([]*repository.ItemDetails, int64, error)
	Update(ctx context.Context, id, ownerID uuid.UUID, patch repository.ItemPatch) (*repository.Item, error)
	UpdateAvailability(ctx context.Context, id uuid.UUID, status string) (*repository.Item, error)
	UpdateAvailabilityTx(ctx context.Context, tx db.Tx, id uuid.UUID, status string) (*repository.Item, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	GetAvailable(ctx context.Context) ([]*repository.ItemDetails, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, t *repository.Transaction) error
	CreateTx(ctx context.Context, tx db.Tx, t *repository.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*repository.Transaction, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id uuid.UUID) (*repository.Transaction, error)
	GetByUser(ctx context.Context, userID uuid.UUID, role string, page, limit int) ([]*repository.Transaction, error)
	FindPendingByItemAndBorrowerTx(ctx context.Context, tx db.Tx, itemID, borrowerID uuid.UUID) (*repository.Transaction, error)
	UpdateTx(ctx context.Context, tx db.Tx, t *repository.Transaction) error
	GetActiveByUser(ctx context.Context, userID uuid.UUID) ([]*repository.ActiveTransaction, error)
	GetStats(ctx context.Context) ([]*repository.StatusCount, float64, error)
	FindDueBetween(ctx context.Context, from, to time.Time) ([]*repository.Transaction, error)
	FindOverdue(ctx context.Context, asOf time.Time) ([]*repository.Transaction, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *repository.Notification) error
	CreateTx(ctx context.Context, tx db.Tx, n *repository.Notification) error
	GetByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]*repository.Notification, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) (*repository.Notification, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	DeleteOld(ctx context.Context, daysOld int) (int64, error)
	ExistsForTransaction(ctx context.Context, transactionID uuid.UUID, notificationType string) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, email, username, password, fullName string) (*repository.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*repository.User, error)
	Authenticate(ctx context.Context, email, password string) (*repository.User, error)
	IncrementLoanCountersTx(ctx context.Context, tx db.Tx, lenderID, borrowerID uuid.UUID) error
}

type CategoryRepository interface {
	List(ctx context.Context) ([]*repository.Category, error)
}

type ReviewRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, review *repository.Review) error
	RefreshRatingTx(ctx context.Context, tx db.Tx, revieweeID uuid.UUID) error
	ListByUser(ctx context.Context, revieweeID uuid.UUID) ([]*repository.ReviewDetails, error)
}

type OutboxRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
	GetProcessableTasks(ctx context.Context, tx db.Tx, limit int) ([]*repository.OutboxTask, error)
	UpdateTaskStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
	UpdateTaskStatus(ctx context.Context, db db.DB, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
}

// Pusher delivers a payload to a user's live connection, if one is open.
// Delivery is best-effort and never affects persistence.
type Pusher interface {
	Send(userID uuid.UUID, payload interface{}) bool
}

// AvailabilityCache keeps a read-through copy of available item listings.
type AvailabilityCache interface {
	Get(id uuid.UUID) (*repository.ItemDetails, bool)
	Set(item *repository.ItemDetails)
	SetStatus(id uuid.UUID, status string)
	Delete(id uuid.UUID)
}

// Service is the lifecycle orchestrator: it sequences item, transaction and
// notification mutations for every user action, each inside a single
// database transaction so no transition can be partially applied.
type Service struct {
	db            db.DB
	items         ItemRepository
	transactions  TransactionRepository
	notifications NotificationRepository
	users         UserRepository
	categories    CategoryRepository
	reviews       ReviewRepository
	outbox        OutboxRepository
	pusher        Pusher
	cache         AvailabilityCache
	logger        *zap.Logger
}

func NewService(
	database db.DB,
	items ItemRepository,
	transactions TransactionRepository,
	notifications NotificationRepository,
	users UserRepository,
	categories CategoryRepository,
	reviews ReviewRepository,
	outbox OutboxRepository,
	pusher Pusher,
	cache AvailabilityCache,
	logger *zap.Logger,
) *Service {
	return &Service{
		db:            database,
		items:         items,
		transactions:  transactions,
		notifications: notifications,
		users:         users,
		categories:    categories,
		reviews:       reviews,
		outbox:        outbox,
		pusher:        pusher,
		cache:         cache,
		logger:        logger,
	}
}

// RequestToBorrow creates a pending transaction for an available item and
// notifies the lender. The item itself stays available: a second borrower
// may also go pending, and the lender picks whom to approve.
func (s *Service) RequestToBorrow(ctx context.Context, itemID, borrowerID uuid.UUID, in BorrowRequestInput) (*Transaction, error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	item, err := s.items.GetByIDTx(ctx, tx, itemID)
	if err != nil {
		return nil, err
	}
	if item.AvailabilityStatus != string(AvailabilityAvailable) {
		return nil, ErrItemUnavailable
	}
	if item.OwnerID == borrowerID {
		return nil, ErrSelfBorrow
	}
	if _, err := s.transactions.FindPendingByItemAndBorrowerTx(ctx, tx, itemID, borrowerID); err == nil {
		return nil, ErrDuplicateRequest
	} else if !isNotFound(err) {
		return nil, err
	}

	now := time.Now().UTC()
	borrowDate := in.BorrowDate
	if borrowDate.IsZero() {
		borrowDate = now
	}
	row := &repository.Transaction{
		ID:            uuid.New(),
		ItemID:        itemID,
		LenderID:      item.OwnerID,
		BorrowerID:    borrowerID,
		Type:          "borrow",
		Status:        string(StatusPending),
		BorrowDate:    borrowDate,
		DueDate:       in.DueDate,
		Notes:         in.Notes,
		PaymentStatus: PaymentStatusNone,
		CreatedAt:     now,
	}
	if err := s.transactions.CreateTx(ctx, tx, row); err != nil {
		return nil, fmt.Errorf("failed to create borrow request: %w", err)
	}

	notif := s.buildNotification(item.OwnerID, NotificationBorrowRequest, row,
		fmt.Sprintf("%s wants to borrow %q", s.displayName(ctx, borrowerID), item.Name), "normal")
	if err := s.notifications.CreateTx(ctx, tx, notif); err != nil {
		return nil, fmt.Errorf("failed to record borrow-request notification: %w", err)
	}

	if err := s.enqueueLifecycleEvent(ctx, tx, row, borrowerID, "request", ""); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit borrow request: %w", err)
	}

	metrics.BorrowRequestsTotal.Inc()
	s.push(notif)

	result := transactionFromRepo(row)
	return &result, nil
}

// Approve moves a pending transaction to approved, marks the item borrowed
// and notifies the borrower.
func (s *Service) Approve(ctx context.Context, transactionID, callerID uuid.UUID) (*Transaction, error) {
	return s.applyTransition(ctx, transactionID, callerID, ActionApprove, "")
}

// Reject moves a pending transaction to rejected. The item is untouched and
// no notification is emitted.
func (s *Service) Reject(ctx context.Context, transactionID, callerID uuid.UUID) (*Transaction, error) {
	return s.applyTransition(ctx, transactionID, callerID, ActionReject, "")
}

// UpdateStatus is the generic transition entry point. It resolves the
// requested target status onto the same state machine the dedicated
// endpoints use, so the two paths cannot diverge.
func (s *Service) UpdateStatus(ctx context.Context, transactionID, callerID uuid.UUID, target Status, notes string) (*Transaction, error) {
	action, err := actionForTarget(target)
	if err != nil {
		return nil, err
	}
	return s.applyTransition(ctx, transactionID, callerID, action, notes)
}

// MarkReturned completes a transaction, computing lateness against the due
// date and freeing the item.
func (s *Service) MarkReturned(ctx context.Context, transactionID, callerID uuid.UUID) (*Transaction, error) {
	t, err := s.applyTransition(ctx, transactionID, callerID, ActionReturn, "")
	if err == nil {
		metrics.ReturnsTotal.Inc()
	}
	return t, err
}

func (s *Service) GetTransaction(ctx context.Context, transactionID, callerID uuid.UUID) (*Transaction, error) {
	row, err := s.transactions.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if _, err := roleOf(row, callerID); err != nil {
		return nil, err
	}
	result := transactionFromRepo(row)
	return &result, nil
}

func (s *Service) ListTransactions(ctx context.Context, userID uuid.UUID, role string, page, limit int) ([]Transaction, error) {
	rows, err := s.transactions.GetByUser(ctx, userID, role, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	transactions := make([]Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = transactionFromRepo(row)
	}
	return transactions, nil
}

func (s *Service) ActiveTransactions(ctx context.Context, userID uuid.UUID) ([]ActiveTransaction, error) {
	rows, err := s.transactions.GetActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	transactions := make([]ActiveTransaction, len(rows))
	for i, row := range rows {
		transactions[i] = ActiveTransaction{
			Transaction:      transactionFromRepo(&row.Transaction),
			CounterpartyName: row.CounterpartyName,
			CallerRole:       row.Role,
		}
	}
	return transactions, nil
}

func (s *Service) TransactionStats(ctx context.Context) (*Stats, error) {
	counts, avgOverdue, err := s.transactions.GetStats(ctx)
	if err != nil {
		return nil, err
	}
	stats := &Stats{ByStatus: make(map[string]int64, len(counts)), AvgDaysOverdue: avgOverdue}
	for _, c := range counts {
		stats.ByStatus[c.Status] = c.Count
	}
	return stats, nil
}

// applyTransition runs one lifecycle step: it locks the transaction row,
// resolves the caller's role, consults the state machine, and applies the
// status write together with its item, notification, counter and outbox
// side effects in a single database transaction.
func (s *Service) applyTransition(ctx context.Context, transactionID, callerID uuid.UUID, action Action, notes string) (*Transaction, error) {
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
	role, err := roleOf(row, callerID)
	if err != nil {
		return nil, err
	}

	oldStatus := row.Status
	next, err := Next(Status(row.Status), action, role)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	row.Status = string(next)
	if notes != "" {
		row.Notes = notes
	}
	if next == StatusCompleted {
		row.ReturnDate = &now
		row.CompletedAt = &now
		if action == ActionReturn {
			row.LateReturn, row.DaysOverdue = lateness(row.DueDate, now)
		}
	}
	if err := s.transactions.UpdateTx(ctx, tx, row); err != nil {
		return nil, fmt.Errorf("failed to update transaction status: %w", err)
	}

	var item *repository.Item
	if availability, ok := availabilityAfter(Status(oldStatus), next); ok {
		item, err = s.items.UpdateAvailabilityTx(ctx, tx, row.ItemID, string(availability))
		if err != nil {
			return nil, fmt.Errorf("failed to update item availability: %w", err)
		}
	}

	var notif *repository.Notification
	if next == StatusApproved {
		itemName := "Unknown Item"
		if item != nil {
			itemName = item.Name
		}
		notif = s.buildNotification(row.BorrowerID, NotificationRequestApproved, row,
			fmt.Sprintf("Your request to borrow %q was approved", itemName), "normal")
		if err := s.notifications.CreateTx(ctx, tx, notif); err != nil {
			return nil, fmt.Errorf("failed to record approval notification: %w", err)
		}
	}

	if next == StatusCompleted {
		if err := s.users.IncrementLoanCountersTx(ctx, tx, row.LenderID, row.BorrowerID); err != nil {
			return nil, fmt.Errorf("failed to update loan counters: %w", err)
		}
	}

	if err := s.enqueueLifecycleEvent(ctx, tx, row, callerID, string(action), oldStatus); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transition: %w", err)
	}

	if next == StatusApproved {
		metrics.ApprovalsTotal.Inc()
	}
	if item != nil && s.cache != nil {
		s.cache.SetStatus(item.ID, item.AvailabilityStatus)
	}
	s.push(notif)

	s.logger.Info("transaction transition applied",
		zap.String("transaction_id", row.ID.String()),
		zap.String("action", string(action)),
		zap.String("old_status", oldStatus),
		zap.String("new_status", row.Status),
	)

	result := transactionFromRepo(row)
	return &result, nil
}

func (s *Service) enqueueLifecycleEvent(ctx context.Context, tx db.Tx, row *repository.Transaction, actorID uuid.UUID, action, oldStatus string) error {
	payload, err := json.Marshal(repository.LifecycleEventPayload{
		Timestamp:     time.Now().UTC(),
		TransactionID: row.ID.String(),
		ItemID:        row.ItemID.String(),
		ActorID:       actorID.String(),
		Action:        action,
		OldStatus:     oldStatus,
		NewStatus:     row.Status,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal lifecycle event: %w", err)
	}
	task := &repository.OutboxTask{Topic: LifecycleTopic, Payload: payload}
	if err := s.outbox.CreateTx(ctx, tx, task); err != nil {
		return fmt.Errorf("failed to enqueue lifecycle event: %w", err)
	}
	return nil
}

func (s *Service) buildNotification(userID uuid.UUID, notificationType string, row *repository.Transaction, message, priority string) *repository.Notification {
	itemID := row.ItemID
	transactionID := row.ID
	return &repository.Notification{
		ID:            uuid.New(),
		UserID:        userID,
		Type:          notificationType,
		Message:       message,
		ItemID:        &itemID,
		TransactionID: &transactionID,
		Priority:      priority,
		CreatedAt:     time.Now().UTC(),
	}
}

// displayName resolves a user's name for notification templates, falling
// back to a placeholder rather than failing the whole operation.
func (s *Service) displayName(ctx context.Context, userID uuid.UUID) string {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "Unknown User"
	}
	if user.FullName != "" {
		return user.FullName
	}
	return user.Username
}

func (s *Service) push(n *repository.Notification) {
	if n == nil || s.pusher == nil {
		return
	}
	if s.pusher.Send(n.UserID, notificationFromRepo(n)) {
		metrics.NotificationsPushedTotal.Inc()
	}
}

func roleOf(row *repository.Transaction, callerID uuid.UUID) (Role, error) {
	switch callerID {
	case row.LenderID:
		return RoleLender, nil
	case row.BorrowerID:
		return RoleBorrower, nil
	}
	return "", repository.ErrForbidden
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrObjectNotFound)
}

// lateness compares the due date with the moment of return at day
// granularity. Returning on the due date itself is on time.
func lateness(dueDate, returnedAt time.Time) (bool, int) {
	dueDay := dueDate.UTC().Truncate(24 * time.Hour)
	returnDay := returnedAt.UTC().Truncate(24 * time.Hour)
	if !returnDay.After(dueDay) {
		return false, 0
	}
	return true, int(returnDay.Sub(dueDay).Hours() / 24)
}
