package notification

import (
	"errors"
	"fmt"
	"time"

	"travelorders/internal/core/domain/model/actor"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/errs"
	"travelorders/internal/pkg/guard"
)

var (
	// ErrNotificationIsNotConstructed is returned when a Notification instance was not
	// created through the NewNotification factory method.
	ErrNotificationIsNotConstructed = errors.New(
		"Notification must be created via NewNotification constructor")

	// ErrRecipientIsNotConstructed is returned when a Recipient was not created
	// through NewUserRecipient or NewGlobalRecipient.
	ErrRecipientIsNotConstructed = errors.New(
		"Recipient must be created via NewUserRecipient or NewGlobalRecipient")
)

// Type classifies a notification for display purposes.
type Type int

const (
	// UnknownType represents an invalid or undefined type.
	// This value (0) helps catch uninitialized Type values.
	UnknownType Type = iota

	// Info is a neutral status update.
	Info

	// Success signals a positive outcome, e.g. an approved trip.
	Success

	// Warning signals something requiring attention.
	Warning

	// Error signals a negative outcome, e.g. a cancelled trip.
	Error
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType: "unknown",
		Info:        "info",
		Success:     "success",
		Warning:     "warning",
		Error:       "error",
	}
}

func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // UnknownType is intentionally excluded as it's invalid
	return map[Type]string{
		Info:    "info",
		Success: "success",
		Warning: "warning",
		Error:   "error",
	}
}

// TypeFromString parses a notification type ("info", "success", "warning", "error").
func TypeFromString(s string) (Type, error) {
	for t, str := range getValidTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause(
		"type is invalid",
		fmt.Errorf("%q is not a valid notification type", s),
	)
}

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"type is invalid",
			fmt.Errorf("%d is not a valid notification type", t),
		)
	}
	return nil
}

// String returns the wire code of the type.
// Implements the fmt.Stringer interface and is safe to call on any Type value.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Recipient is an immutable value object describing a notification's
// visibility scope: either a specific user identity or the global marker
// visible to every actor. The scope never changes after creation.
type Recipient struct {
	userID kernel.UUID
	global bool

	guard guard.ConstructorGuard
}

// NewUserRecipient creates a recipient scoped to a specific user identity.
func NewUserRecipient(userID kernel.UUID) (Recipient, error) {
	if err := userID.Validate(); err != nil {
		return Recipient{}, err
	}

	return Recipient{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewGlobalRecipient creates the global recipient, visible to every actor.
func NewGlobalRecipient() Recipient {
	return Recipient{
		global: true,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the Recipient was created through a constructor.
func (r Recipient) Validate() error {
	return r.guard.Validate(ErrRecipientIsNotConstructed)
}

// IsGlobal reports whether the recipient is the global marker.
func (r Recipient) IsGlobal() bool {
	return r.global
}

// UserID returns the scoped user identity. Only meaningful when IsGlobal is false.
func (r Recipient) UserID() kernel.UUID {
	return r.userID
}

// Covers reports whether the given actor falls within this visibility scope.
// Global recipients cover everyone; user recipients cover the matching
// identity. Administrators are covered by every scope, mirroring their
// order visibility.
func (r Recipient) Covers(a actor.Actor) bool {
	if r.global || a.IsAdmin() {
		return true
	}
	return r.userID.IsEqual(a.ID())
}

// Notification informs one or more actors of an event, with independent
// read-state. Title, message, type and recipient scope are fixed at
// creation; only the read state mutates afterwards, and only forward
// (unread to read, never back).
type Notification struct {
	// id is the unique identifier for the notification
	id kernel.UUID

	// title and message are display text, fixed at creation
	title   string
	message string

	// ntype classifies the notification for display
	ntype Type

	// recipient is the immutable visibility scope
	recipient Recipient

	// orderID is an optional back-reference to the triggering order;
	// lookup only, no ownership implied
	orderID *kernel.UUID

	// read and readAt track the forward-only read state
	read   bool
	readAt *time.Time

	// createdAt is the immutable creation timestamp
	createdAt time.Time

	// isConstructed ensures the notification was created via a constructor
	isConstructed bool
}

// NewNotification creates a new unread Notification with validation.
//
// Title and message are required; the type and recipient must be valid.
// The read state starts unset.
func NewNotification(
	id kernel.UUID,
	title string,
	message string,
	ntype Type,
	recipient Recipient,
	orderID *kernel.UUID,
	createdAt time.Time,
) (*Notification, error) {
	n := &Notification{
		orderID:       orderID,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		n.setID(id),
		n.setTitle(title),
		n.setMessage(message),
		n.setType(ntype),
		n.setRecipient(recipient),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNotification reconstructs a Notification from persistence,
// including its read state.
func RestoreNotification(
	id kernel.UUID,
	title string,
	message string,
	ntype Type,
	recipient Recipient,
	orderID *kernel.UUID,
	read bool,
	readAt *time.Time,
	createdAt time.Time,
) (*Notification, error) {
	n, err := NewNotification(id, title, message, ntype, recipient, orderID, createdAt)
	if err != nil {
		return nil, err
	}

	n.read = read
	n.readAt = readAt
	return n, nil
}

// Validate ensures the Notification was properly constructed.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}

	return nil
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// Title returns the display title.
func (n *Notification) Title() string {
	return n.title
}

// Message returns the display message.
func (n *Notification) Message() string {
	return n.message
}

// Type returns the notification's display classification.
func (n *Notification) Type() Type {
	return n.ntype
}

// Recipient returns the immutable visibility scope.
func (n *Notification) Recipient() Recipient {
	return n.recipient
}

// OrderID returns the optional back-reference to the triggering order.
// Returns nil when the notification is not tied to an order.
func (n *Notification) OrderID() *kernel.UUID {
	return n.orderID
}

// IsRead reports whether the notification has been read.
func (n *Notification) IsRead() bool {
	return n.read
}

// ReadAt returns the time the notification was read, or nil while unread.
func (n *Notification) ReadAt() *time.Time {
	return n.readAt
}

// CreatedAt returns the immutable creation timestamp.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// IsVisibleTo reports whether the actor may see this notification.
func (n *Notification) IsVisibleTo(a actor.Actor) bool {
	return n.recipient.Covers(a)
}

// MarkAsRead transitions the read state forward.
//
// Marking an already-read notification is a no-op, not an error, so the
// operation is idempotent and readAt keeps its original value.
func (n *Notification) MarkAsRead(now time.Time) {
	if n.read {
		return
	}

	n.read = true
	n.readAt = &now
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	n.title = title
	return nil
}

func (n *Notification) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	n.message = message
	return nil
}

func (n *Notification) setType(ntype Type) error {
	if err := ntype.Validate(); err != nil {
		return err
	}
	n.ntype = ntype
	return nil
}

func (n *Notification) setRecipient(recipient Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	n.recipient = recipient
	return nil
}
