package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jiraphat04/classroom_booking/models"
)

// Error kinds mirror the three failure classes every service operation can
// produce. Handlers translate them to 404/409/403; the message is written
// to be rendered to the end user as-is.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindConflict
	KindForbidden
)

type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func NotFoundf(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...interface{}) error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func Forbiddenf(format string, args ...interface{}) error {
	return &Error{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

func IsNotFound(err error) bool  { return kindOf(err) == KindNotFound }
func IsConflict(err error) bool  { return kindOf(err) == KindConflict }
func IsForbidden(err error) bool { return kindOf(err) == KindForbidden }

func kindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Actor is the verified identity attached to every call.
type Actor struct {
	ID   uuid.UUID
	Role string
}

type Action int

const (
	ActionApprove Action = iota + 1
	ActionReject
	ActionCancel
	ActionView
)

// IsStaff reports whether a role carries staff-equivalent rights.
func IsStaff(role string) bool {
	return role == models.RoleStaff || role == models.RoleDepartmentHead
}

// CanPerform is the single authorization surface for role-gated booking
// operations. Cancel deliberately accepts STAFF but not DEPARTMENT_HEAD:
// department heads get elevated visibility, not cancellation rights over
// other users' bookings.
func CanPerform(action Action, role string, ownerID, requesterID uuid.UUID) bool {
	switch action {
	case ActionApprove, ActionReject:
		return IsStaff(role)
	case ActionCancel:
		return role == models.RoleStaff || ownerID == requesterID
	case ActionView:
		return IsStaff(role) || ownerID == requesterID
	}
	return false
}
