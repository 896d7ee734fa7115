// Package paymentrepo persists payment records.
package paymentrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/payment"
)

// PaymentDTO represents the database structure for persisting payments.
// One payment per order, enforced with a unique index.
type PaymentDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	OccurredAt time.Time
	Amount     decimal.Decimal `gorm:"type:numeric"`
	Method     string
	Status     string `gorm:"index"`
}

// TableName specifies the database table name for payments.
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:         p.ID().Bytes(),
		OrderID:    p.OrderID().Bytes(),
		OccurredAt: p.OccurredAt(),
		Amount:     p.Amount(),
		Method:     p.Method().String(),
		Status:     p.Status().String(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	method, err := payment.MethodFromString(dto.Method)
	if err != nil {
		return nil, err
	}

	status, err := payment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(id, orderID, dto.OccurredAt, dto.Amount, method, status)
}
