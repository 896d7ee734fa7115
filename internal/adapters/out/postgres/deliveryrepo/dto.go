// Package deliveryrepo persists delivery aggregates.
package deliveryrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"commerce/internal/core/domain/model/delivery"
	"commerce/internal/core/domain/model/kernel"
)

// DeliveryDTO represents the database structure for persisting deliveries.
// The order association is one-to-one, enforced with a unique index.
type DeliveryDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	TransporterID *uuid.UUID `gorm:"type:uuid;index"`
	ScheduledAt   *time.Time
	Address       string
	Cost          decimal.Decimal `gorm:"type:numeric"`
	Status        string          `gorm:"index"`
}

// TableName specifies the database table name for deliveries.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	var transporterID *uuid.UUID
	if id := d.Transporter(); id != nil {
		raw := id.Bytes()
		transporterID = &raw
	}

	return DeliveryDTO{
		ID:            d.ID().Bytes(),
		OrderID:       d.OrderID().Bytes(),
		TransporterID: transporterID,
		ScheduledAt:   d.ScheduledAt(),
		Address:       d.Address(),
		Cost:          d.Cost(),
		Status:        d.Status().String(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var transporterID *kernel.UUID
	if dto.TransporterID != nil {
		tID, transporterErr := kernel.UUIDFromBytes((*dto.TransporterID)[:])
		if transporterErr != nil {
			return nil, transporterErr
		}
		transporterID = &tID
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(id, orderID, transporterID, dto.ScheduledAt, dto.Address, dto.Cost, status)
}
