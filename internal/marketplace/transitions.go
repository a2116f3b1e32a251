package marketplace

import (
	"errors"
	"fmt"
)

// Status is the lifecycle state of a transaction.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// Valid reports whether s is one of the known lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusActive, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is possible from s.
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusCompleted || s == StatusCancelled
}

// Availability is the item-level flag consumers use to decide whether a new
// borrow request can be made.
type Availability string

const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityBorrowed    Availability = "borrowed"
	AvailabilityReserved    Availability = "reserved"
	AvailabilityUnavailable Availability = "unavailable"
)

// Action is a user-initiated lifecycle operation on a transaction.
type Action string

const (
	ActionApprove  Action = "approve"
	ActionReject   Action = "reject"
	ActionActivate Action = "activate"
	ActionCancel   Action = "cancel"
	ActionComplete Action = "complete"
	ActionReturn   Action = "return"
)

// Role is the caller's relationship to a transaction.
type Role string

const (
	RoleLender   Role = "lender"
	RoleBorrower Role = "borrower"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// Next is the single source of truth for the transaction state machine.
// Every entry point (dedicated approve/reject handlers, the generic status
// update, mark-returned, payment confirm/refund) resolves its transition
// here, so no two code paths can disagree about what a status change means.
func Next(current Status, action Action, role Role) (Status, error) {
	switch current {
	case StatusPending:
		switch {
		case action == ActionApprove && role == RoleLender:
			return StatusApproved, nil
		case action == ActionReject && role == RoleLender:
			return StatusRejected, nil
		case action == ActionCancel && role == RoleBorrower:
			return StatusCancelled, nil
		}
	case StatusApproved:
		switch action {
		case ActionActivate:
			if role == RoleLender {
				return StatusActive, nil
			}
		case ActionComplete, ActionReturn:
			return StatusCompleted, nil
		case ActionCancel:
			return StatusCancelled, nil
		}
	case StatusActive:
		switch action {
		case ActionComplete, ActionReturn:
			return StatusCompleted, nil
		case ActionCancel:
			return StatusCancelled, nil
		}
	}
	return "", fmt.Errorf("%w: cannot %s a %s transaction as %s", ErrInvalidTransition, action, current, role)
}

// actionForTarget maps a requested target status from the generic update
// path onto the action vocabulary of the state machine.
func actionForTarget(target Status) (Action, error) {
	switch target {
	case StatusApproved:
		return ActionApprove, nil
	case StatusRejected:
		return ActionReject, nil
	case StatusActive:
		return ActionActivate, nil
	case StatusCancelled:
		return ActionCancel, nil
	case StatusCompleted:
		return ActionComplete, nil
	}
	return "", fmt.Errorf("%w: %q is not a requestable status", ErrInvalidTransition, target)
}

// availabilityAfter returns the item availability a transition forces, if
// any. Approval locks the item. Completion or cancellation frees it only
// when the transaction actually held it, i.e. it was approved or active:
// cancelling a still-pending request must not release an item another
// borrower's approved loan holds. Rejection leaves the item untouched
// because it was never taken.
func availabilityAfter(from, next Status) (Availability, bool) {
	switch next {
	case StatusApproved, StatusActive:
		return AvailabilityBorrowed, true
	case StatusCompleted, StatusCancelled:
		if from == StatusApproved || from == StatusActive {
			return AvailabilityAvailable, true
		}
	}
	return "", false
}
