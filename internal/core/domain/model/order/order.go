package order

import (
	"errors"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderHasNoLines is returned when an order is constructed without
	// at least one line.
	ErrOrderHasNoLines = errs.NewValueIsRequiredError("order must contain at least one item")
)

// Order is the aggregate root of the order lifecycle. It owns its Lines and
// derives its total from them; a total supplied from outside is never
// trusted.
//
// Invariants:
//   - Must reference an existing client (checked at admission)
//   - Must own at least one line
//   - Total equals the sum of line subtotals at admission time
//   - Status changes follow the transition table in Status, except for the
//     delivery-completion bypass in ForceDeliver
type Order struct {
	id        kernel.UUID
	clientID  kernel.UUID
	createdAt time.Time
	status    Status
	total     decimal.Decimal
	lines     []*Line

	isConstructed bool
}

// NewOrder creates an admitted Order in Pending status. Every line must be
// valid and is attached to the order; the total is computed from the lines.
// When createdAt is the zero time the current time is used.
func NewOrder(id, clientID kernel.UUID, createdAt time.Time, lines []*Line) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	o.createdAt = createdAt

	total := decimal.Zero
	for _, l := range o.lines {
		total = total.Add(l.Subtotal())
	}
	if !total.IsPositive() {
		return nil, errs.NewValueIsInvalidError("total")
	}
	o.total = total

	return o, nil
}

// RestoreOrder rebuilds an Order from persistence. The persisted status and
// total are kept as stored; the total was derived at admission time and is
// not recomputed against current line data.
func RestoreOrder(
	id, clientID kernel.UUID,
	createdAt time.Time,
	status Status,
	total decimal.Decimal,
	lines []*Line,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setLines(lines),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.createdAt = createdAt
	o.status = status
	o.total = total
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the owning client's identifier.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// CreatedAt returns the admission timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the order total derived from the lines at admission time.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// Lines returns the owned order lines. The returned slice is a copy; the
// lines themselves are shared.
func (o *Order) Lines() []*Line {
	lines := make([]*Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// UpdateStatus applies the order state machine. Illegal pairs fail with an
// InvalidTransitionError and leave the order unchanged.
func (o *Order) UpdateStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// ForceDeliver sets the status to Delivered without consulting the
// transition table. It exists solely for the delivery-completion side
// effect: completing a delivery short-circuits whatever order status existed
// before, including states the table would never deliver from. The prior
// status is returned so callers can log the bypass when it skipped states.
func (o *Order) ForceDeliver() Status {
	prev := o.status
	o.status = Delivered
	return prev
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("client", err)
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setLines(lines []*Line) error {
	if len(lines) == 0 {
		return ErrOrderHasNoLines
	}
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	o.lines = make([]*Line, len(lines))
	copy(o.lines, lines)
	for _, l := range o.lines {
		l.attachTo(o.id)
	}
	return nil
}
