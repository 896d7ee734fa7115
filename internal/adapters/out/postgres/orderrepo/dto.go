// Package orderrepo persists order aggregates. An order row owns its line
// rows: lines are written once at admission and never updated afterwards.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting orders.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID  uuid.UUID `gorm:"type:uuid;index"`
	Status    string    `gorm:"index"`
	Total     decimal.Decimal `gorm:"type:numeric"`
	CreatedAt time.Time
	Lines     []OrderLineDTO `gorm:"foreignKey:OrderID"`
}

// TableName specifies the database table name for orders.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one order line row.
type OrderLineDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid;index"`
	Quantity  int
	UnitPrice decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for order lines.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(o *order.Order) OrderDTO {
	lines := make([]OrderLineDTO, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		lines = append(lines, OrderLineDTO{
			ID:        line.ID().Bytes(),
			OrderID:   line.OrderID().Bytes(),
			ProductID: line.ProductID().Bytes(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:        o.ID().Bytes(),
		ClientID:  o.ClientID().Bytes(),
		Status:    o.Status().String(),
		Total:     o.Total(),
		CreatedAt: o.CreatedAt(),
		Lines:     lines,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, clientID, dto.CreatedAt, status, dto.Total, lines)
}

func lineToDomain(dto OrderLineDTO) (*order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreLine(id, orderID, productID, dto.Quantity, dto.UnitPrice)
}
