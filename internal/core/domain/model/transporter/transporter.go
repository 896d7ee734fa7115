// Package transporter contains the Transporter entity, referenced by zero or
// more deliveries.
package transporter

import (
	"errors"
	"fmt"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

// ErrTransporterIsNotConstructed is returned when a Transporter instance was
// not created through NewTransporter or RestoreTransporter.
var ErrTransporterIsNotConstructed = errors.New(
	"Transporter must be created via NewTransporter or RestoreTransporter")

// Transporter is a carrier that can be assigned to deliveries. Rating is an
// optional 0..5 score.
type Transporter struct {
	id     kernel.UUID
	name   string
	phone  string
	rating *float64

	isConstructed bool
}

// NewTransporter creates a validated Transporter.
func NewTransporter(id kernel.UUID, name, phone string, rating *float64) (*Transporter, error) {
	tr := &Transporter{
		phone:         phone,
		isConstructed: true,
	}

	if err := errors.Join(
		tr.setID(id),
		tr.setName(name),
		tr.setRating(rating),
	); err != nil {
		return nil, err
	}

	return tr, nil
}

// RestoreTransporter rebuilds a Transporter from persistence.
func RestoreTransporter(id kernel.UUID, name, phone string, rating *float64) (*Transporter, error) {
	return NewTransporter(id, name, phone, rating)
}

// Validate ensures the Transporter was created through a constructor.
func (t *Transporter) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransporterIsNotConstructed
	}
	return nil
}

// ID returns the transporter's unique identifier.
func (t *Transporter) ID() kernel.UUID {
	return t.id
}

// Name returns the transporter name.
func (t *Transporter) Name() string {
	return t.name
}

// Phone returns the contact phone number.
func (t *Transporter) Phone() string {
	return t.phone
}

// Rating returns the 0..5 rating, or nil when unrated.
func (t *Transporter) Rating() *float64 {
	return t.rating
}

func (t *Transporter) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Transporter) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	t.name = name
	return nil
}

func (t *Transporter) setRating(rating *float64) error {
	if rating == nil {
		return nil
	}
	if *rating < 0 || *rating > 5 {
		return errs.NewValueIsInvalidErrorWithCause("rating",
			fmt.Errorf("%g is not between 0 and 5", *rating))
	}
	t.rating = rating
	return nil
}
