package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrObjectNotFound = errors.New("not found")
	// ErrForbidden is returned when the row exists but the caller is not a
	// party allowed to touch it. Kept distinct from ErrObjectNotFound so the
	// HTTP layer can answer 403 instead of collapsing both into 404.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidCredentials deliberately covers both unknown email and wrong
	// password so login responses cannot be used to probe for accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Item struct {
	ID                 uuid.UUID `db:"id"`
	OwnerID            uuid.UUID `db:"owner_id"`
	CategoryID         *int64    `db:"category_id"`
	Name               string    `db:"name"`
	Description        string    `db:"description"`
	Condition          string    `db:"condition"`
	AvailabilityStatus string    `db:"availability_status"`
	SharingType        string    `db:"sharing_type"`
	Location           string    `db:"location"`
	ListedAt           time.Time `db:"listed_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

// ItemDetails is an Item joined with owner and category display fields.
type ItemDetails struct {
	Item
	OwnerName    string  `db:"owner_name"`
	CategoryName *string `db:"category_name"`
}

type Transaction struct {
	ID               uuid.UUID  `db:"id"`
	ItemID           uuid.UUID  `db:"item_id"`
	LenderID         uuid.UUID  `db:"lender_id"`
	BorrowerID       uuid.UUID  `db:"borrower_id"`
	Type             string     `db:"type"`
	Status           string     `db:"status"`
	BorrowDate       time.Time  `db:"borrow_date"`
	DueDate          time.Time  `db:"due_date"`
	ReturnDate       *time.Time `db:"return_date"`
	LateReturn       bool       `db:"late_return"`
	DaysOverdue      int        `db:"days_overdue"`
	Notes            string     `db:"notes"`
	PaymentMethod    *string    `db:"payment_method"`
	PaymentAmount    *int64     `db:"payment_amount"`
	PaymentStatus    string     `db:"payment_status"`
	PaymentReference *string    `db:"payment_reference"`
	CreatedAt        time.Time  `db:"created_at"`
	CompletedAt      *time.Time `db:"completed_at"`
}

// ActiveTransaction is a Transaction annotated with the counterparty's
// display name and the caller's role in it.
type ActiveTransaction struct {
	Transaction
	CounterpartyName string `db:"counterparty_name"`
	Role             string `db:"role"`
}

type Notification struct {
	ID            uuid.UUID  `db:"id"`
	UserID        uuid.UUID  `db:"user_id"`
	Type          string     `db:"type"`
	Message       string     `db:"message"`
	ItemID        *uuid.UUID `db:"item_id"`
	TransactionID *uuid.UUID `db:"transaction_id"`
	IsRead        bool       `db:"is_read"`
	Priority      string     `db:"priority"`
	CreatedAt     time.Time  `db:"created_at"`
	ReadAt        *time.Time `db:"read_at"`
}

type User struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	Username     string    `db:"username"`
	Password     string    `db:"password"`
	FullName     string    `db:"full_name"`
	Verified     bool      `db:"verified"`
	TotalLends   int       `db:"total_lends"`
	TotalBorrows int       `db:"total_borrows"`
	Rating       float32   `db:"rating"`
	CreatedAt    time.Time `db:"created_at"`
}

type Review struct {
	ID            uuid.UUID `db:"id"`
	TransactionID uuid.UUID `db:"transaction_id"`
	ReviewerID    uuid.UUID `db:"reviewer_id"`
	RevieweeID    uuid.UUID `db:"reviewee_id"`
	Rating        int       `db:"rating"`
	Comment       string    `db:"comment"`
	CreatedAt     time.Time `db:"created_at"`
}

// ReviewDetails is a Review joined with the reviewer's display name.
type ReviewDetails struct {
	Review
	ReviewerName string `db:"reviewer_name"`
}

type Category struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
	Slug string `db:"slug"`
}

// StatusCount is one row of the per-status transaction aggregate.
type StatusCount struct {
	Status string `db:"status"`
	Count  int64  `db:"count"`
}

// ItemFilter narrows an item search. Zero values mean "no filter"; an empty
// Availability defaults to 'available' at query time.
type ItemFilter struct {
	Query        string
	CategorySlug string
	Condition    string
	Location     string
	Availability string
	Page         int
	Limit        int
}

// ItemPatch carries the owner-updatable item fields. Nil pointers are left
// untouched.
type ItemPatch struct {
	Name        *string
	Description *string
	Condition   *string
	SharingType *string
	Location    *string
	CategoryID  *int64
}

type TransactionStats struct {
	ByStatus       map[string]int64
	AvgDaysOverdue float64
}

type TaskStatus string

const (
	TaskStatusCreated    TaskStatus = "CREATED"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusFailed     TaskStatus = "FAILED"
	TaskStatusDone       TaskStatus = "DONE"
)

type OutboxTask struct {
	ID          uuid.UUID       `db:"id"`
	Status      TaskStatus      `db:"status"`
	Payload     json.RawMessage `db:"payload"`
	Topic       string          `db:"topic"`
	Attempts    int             `db:"attempts"`
	LastError   *string         `db:"last_error"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
	CompletedAt *time.Time      `db:"completed_at"`
}

// LifecycleEventPayload is the outbox payload written for every transaction
// lifecycle transition.
type LifecycleEventPayload struct {
	Timestamp     time.Time `json:"timestamp"`
	TransactionID string    `json:"transaction_id"`
	ItemID        string    `json:"item_id"`
	ActorID       string    `json:"actor_id"`
	Action        string    `json:"action"`
	OldStatus     string    `json:"old_status,omitempty"`
	NewStatus     string    `json:"new_status"`
}
