package marketplace

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/campusconnect/campusconnect/internal/repository"
)

// Precondition violations surfaced to clients as 400-level responses.
var (
	ErrItemUnavailable   = errors.New("item is not available for borrowing")
	ErrSelfBorrow        = errors.New("cannot borrow your own item")
	ErrDuplicateRequest  = errors.New("a pending request for this item already exists")
	ErrPaymentNotPending = errors.New("no pending payment on this transaction")
	ErrPaymentNotPaid    = errors.New("payment has not been made on this transaction")
	ErrNotReviewable     = errors.New("only completed transactions can be reviewed")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
)

// Payment states of the simulated payment flow.
const (
	PaymentStatusNone     = "none"
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

type Item struct {
	ID                 uuid.UUID    `json:"id"`
	OwnerID            uuid.UUID    `json:"owner_id"`
	OwnerName          string       `json:"owner_name,omitempty"`
	CategoryID         *int64       `json:"category_id,omitempty"`
	CategoryName       string       `json:"category_name,omitempty"`
	Name               string       `json:"name"`
	Description        string       `json:"description"`
	Condition          string       `json:"condition"`
	AvailabilityStatus Availability `json:"availability_status"`
	SharingType        string       `json:"sharing_type"`
	Location           string       `json:"location"`
	ListedAt           time.Time    `json:"listed_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

type ItemPage struct {
	Items      []Item `json:"items"`
	TotalCount int64  `json:"total_count"`
	Page       int    `json:"page"`
	TotalPages int    `json:"total_pages"`
}

type Transaction struct {
	ID               uuid.UUID  `json:"id"`
	ItemID           uuid.UUID  `json:"item_id"`
	LenderID         uuid.UUID  `json:"lender_id"`
	BorrowerID       uuid.UUID  `json:"borrower_id"`
	Type             string     `json:"type"`
	Status           Status     `json:"status"`
	BorrowDate       time.Time  `json:"borrow_date"`
	DueDate          time.Time  `json:"due_date"`
	ReturnDate       *time.Time `json:"return_date,omitempty"`
	LateReturn       bool       `json:"late_return"`
	DaysOverdue      int        `json:"days_overdue"`
	Notes            string     `json:"notes,omitempty"`
	PaymentMethod    *string    `json:"payment_method,omitempty"`
	PaymentAmount    *int64     `json:"payment_amount,omitempty"`
	PaymentStatus    string     `json:"payment_status"`
	PaymentReference *string    `json:"payment_reference,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

// ActiveTransaction annotates a transaction with the counterparty's display
// name and the caller's side of it ("lending" or "borrowing").
type ActiveTransaction struct {
	Transaction
	CounterpartyName string `json:"counterparty_name"`
	CallerRole       string `json:"caller_role"`
}

type Notification struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	Type          string     `json:"type"`
	Message       string     `json:"message"`
	ItemID        *uuid.UUID `json:"item_id,omitempty"`
	TransactionID *uuid.UUID `json:"transaction_id,omitempty"`
	IsRead        bool       `json:"is_read"`
	Priority      string     `json:"priority"`
	CreatedAt     time.Time  `json:"created_at"`
	ReadAt        *time.Time `json:"read_at,omitempty"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Review struct {
	ID            uuid.UUID `json:"id"`
	TransactionID uuid.UUID `json:"transaction_id"`
	ReviewerID    uuid.UUID `json:"reviewer_id"`
	ReviewerName  string    `json:"reviewer_name,omitempty"`
	RevieweeID    uuid.UUID `json:"reviewee_id"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ReviewInput carries the fields a party supplies when rating the other side
// of a completed transaction.
type ReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type Stats struct {
	ByStatus       map[string]int64 `json:"by_status"`
	AvgDaysOverdue float64          `json:"avg_days_overdue"`
}

// NewItemInput carries the fields an owner supplies when listing an item.
type NewItemInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Condition   string `json:"condition"`
	SharingType string `json:"sharing_type"`
	Location    string `json:"location"`
	CategoryID  *int64 `json:"category_id"`
}

// BorrowRequestInput carries the fields a borrower supplies when requesting
// an item.
type BorrowRequestInput struct {
	BorrowDate time.Time `json:"borrow_date"`
	DueDate    time.Time `json:"due_date"`
	Notes      string    `json:"notes"`
}

func itemFromRepo(row *repository.Item) Item {
	return Item{
		ID:                 row.ID,
		OwnerID:            row.OwnerID,
		CategoryID:         row.CategoryID,
		Name:               row.Name,
		Description:        row.Description,
		Condition:          row.Condition,
		AvailabilityStatus: Availability(row.AvailabilityStatus),
		SharingType:        row.SharingType,
		Location:           row.Location,
		ListedAt:           row.ListedAt,
		UpdatedAt:          row.UpdatedAt,
	}
}

func itemFromDetails(row *repository.ItemDetails) Item {
	item := itemFromRepo(&row.Item)
	item.OwnerName = row.OwnerName
	if row.CategoryName != nil {
		item.CategoryName = *row.CategoryName
	}
	return item
}

func transactionFromRepo(row *repository.Transaction) Transaction {
	return Transaction{
		ID:               row.ID,
		ItemID:           row.ItemID,
		LenderID:         row.LenderID,
		BorrowerID:       row.BorrowerID,
		Type:             row.Type,
		Status:           Status(row.Status),
		BorrowDate:       row.BorrowDate,
		DueDate:          row.DueDate,
		ReturnDate:       row.ReturnDate,
		LateReturn:       row.LateReturn,
		DaysOverdue:      row.DaysOverdue,
		Notes:            row.Notes,
		PaymentMethod:    row.PaymentMethod,
		PaymentAmount:    row.PaymentAmount,
		PaymentStatus:    row.PaymentStatus,
		PaymentReference: row.PaymentReference,
		CreatedAt:        row.CreatedAt,
		CompletedAt:      row.CompletedAt,
	}
}

func notificationFromRepo(row *repository.Notification) Notification {
	return Notification{
		ID:            row.ID,
		UserID:        row.UserID,
		Type:          row.Type,
		Message:       row.Message,
		ItemID:        row.ItemID,
		TransactionID: row.TransactionID,
		IsRead:        row.IsRead,
		Priority:      row.Priority,
		CreatedAt:     row.CreatedAt,
		ReadAt:        row.ReadAt,
	}
}

func categoryFromRepo(row *repository.Category) Category {
	return Category{ID: row.ID, Name: row.Name, Slug: row.Slug}
}

func reviewFromRepo(row *repository.Review) Review {
	return Review{
		ID:            row.ID,
		TransactionID: row.TransactionID,
		ReviewerID:    row.ReviewerID,
		RevieweeID:    row.RevieweeID,
		Rating:        row.Rating,
		Comment:       row.Comment,
		CreatedAt:     row.CreatedAt,
	}
}

func reviewFromDetails(row *repository.ReviewDetails) Review {
	review := reviewFromRepo(&row.Review)
	review.ReviewerName = row.ReviewerName
	return review
}
