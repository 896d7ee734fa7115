// Package supplier contains the Supplier entity, referenced by products.
package supplier

import (
	"errors"
	"fmt"
	"strings"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

// ErrSupplierIsNotConstructed is returned when a Supplier instance was not
// created through NewSupplier or RestoreSupplier.
var ErrSupplierIsNotConstructed = errors.New("Supplier must be created via NewSupplier or RestoreSupplier")

// Supplier is a product source. Products hold a one-way reference to their
// supplier; the supplier never lists its products.
type Supplier struct {
	id      kernel.UUID
	name    string
	email   string
	phone   string
	address string
	rating  *float64

	isConstructed bool
}

// NewSupplier creates a validated Supplier.
func NewSupplier(id kernel.UUID, name, email, phone, address string, rating *float64) (*Supplier, error) {
	s := &Supplier{
		phone:         phone,
		address:       address,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setEmail(email),
		s.setRating(rating),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSupplier rebuilds a Supplier from persistence.
func RestoreSupplier(id kernel.UUID, name, email, phone, address string, rating *float64) (*Supplier, error) {
	return NewSupplier(id, name, email, phone, address, rating)
}

// Validate ensures the Supplier was created through a constructor.
func (s *Supplier) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSupplierIsNotConstructed
	}
	return nil
}

// ID returns the supplier's unique identifier.
func (s *Supplier) ID() kernel.UUID {
	return s.id
}

// Name returns the supplier name.
func (s *Supplier) Name() string {
	return s.name
}

// Email returns the supplier's email address, lower-cased, possibly empty.
func (s *Supplier) Email() string {
	return s.email
}

// Phone returns the contact phone number.
func (s *Supplier) Phone() string {
	return s.phone
}

// Address returns the supplier's postal address.
func (s *Supplier) Address() string {
	return s.address
}

// Rating returns the 0..5 rating, or nil when unrated.
func (s *Supplier) Rating() *float64 {
	return s.rating
}

func (s *Supplier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Supplier) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Supplier) setEmail(email string) error {
	if email == "" {
		return nil
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("%q is not an email address", email))
	}
	s.email = strings.ToLower(email)
	return nil
}

func (s *Supplier) setRating(rating *float64) error {
	if rating == nil {
		return nil
	}
	if *rating < 0 || *rating > 5 {
		return errs.NewValueIsInvalidErrorWithCause("rating",
			fmt.Errorf("%g is not between 0 and 5", *rating))
	}
	s.rating = rating
	return nil
}
