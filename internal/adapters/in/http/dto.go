package http

import (
	"time"

	"github.com/shopspring/decimal"

	"commerce/internal/core/domain/model/client"
	"commerce/internal/core/domain/model/delivery"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/payment"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/core/domain/model/transporter"
)

// Request bodies. Identifiers are client-supplied UUID strings, optional
// fields are pointers so absence survives JSON decoding.

type CreateClientRequest struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type CreateProductRequest struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	SupplierID  *string         `json:"supplier_id,omitempty"`
}

type AddStockRequest struct {
	Quantity int `json:"quantity"`
}

type PlaceOrderLineRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type PlaceOrderRequest struct {
	ID       string                  `json:"id"`
	ClientID string                  `json:"client_id"`
	Lines    []PlaceOrderLineRequest `json:"lines"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type CreateTransporterRequest struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Phone  string   `json:"phone"`
	Rating *float64 `json:"rating,omitempty"`
}

type CreateDeliveryRequest struct {
	ID            string          `json:"id"`
	OrderID       string          `json:"order_id"`
	TransporterID *string         `json:"transporter_id,omitempty"`
	ScheduledAt   *time.Time      `json:"scheduled_at,omitempty"`
	Address       string          `json:"address"`
	Cost          decimal.Decimal `json:"cost"`
	Status        *string         `json:"status,omitempty"`
}

type UpdateDeliveryRequest struct {
	OrderID       *string          `json:"order_id,omitempty"`
	TransporterID *string          `json:"transporter_id,omitempty"`
	ScheduledAt   *time.Time       `json:"scheduled_at,omitempty"`
	Address       *string          `json:"address,omitempty"`
	Cost          *decimal.Decimal `json:"cost,omitempty"`
	Status        *string          `json:"status,omitempty"`
}

type UpdateDeliveryStatusRequest struct {
	Status string `json:"status"`
}

type AssignTransporterRequest struct {
	TransporterID string `json:"transporter_id"`
}

type RecordPaymentRequest struct {
	ID         string          `json:"id"`
	OrderID    string          `json:"order_id"`
	OccurredAt *time.Time      `json:"occurred_at,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	Status     *string         `json:"status,omitempty"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status"`
}

// Response bodies.

type ClientResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	SupplierID  *string         `json:"supplier_id,omitempty"`
}

type ProductSummaryResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

type OrderLineResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type OrderResponse struct {
	ID        string              `json:"id"`
	ClientID  string              `json:"client_id"`
	Status    string              `json:"status"`
	Total     decimal.Decimal     `json:"total"`
	CreatedAt time.Time           `json:"created_at"`
	Lines     []OrderLineResponse `json:"lines"`
}

type OrderSummaryResponse struct {
	ID        string          `json:"id"`
	Status    string          `json:"status"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}

type TransporterResponse struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Phone  string   `json:"phone"`
	Rating *float64 `json:"rating,omitempty"`
}

type DeliveryResponse struct {
	ID            string          `json:"id"`
	OrderID       string          `json:"order_id"`
	TransporterID *string         `json:"transporter_id,omitempty"`
	ScheduledAt   *time.Time      `json:"scheduled_at,omitempty"`
	Address       string          `json:"address"`
	Cost          decimal.Decimal `json:"cost"`
	Status        string          `json:"status"`
}

type PaymentResponse struct {
	ID         string          `json:"id"`
	OrderID    string          `json:"order_id"`
	OccurredAt time.Time       `json:"occurred_at"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	Status     string          `json:"status"`
}

func clientResponse(c *client.Client) ClientResponse {
	return ClientResponse{
		ID:      c.ID().String(),
		Name:    c.Name(),
		Email:   c.Email(),
		Address: c.Address(),
	}
}

func productResponse(p *product.Product) ProductResponse {
	resp := ProductResponse{
		ID:          p.ID().String(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price(),
		Stock:       p.Stock(),
	}
	if supplierID := p.Supplier(); supplierID != nil {
		s := supplierID.String()
		resp.SupplierID = &s
	}
	return resp
}

func orderResponse(o *order.Order) OrderResponse {
	lines := make([]OrderLineResponse, len(o.Lines()))
	for i, line := range o.Lines() {
		lines[i] = OrderLineResponse{
			ID:        line.ID().String(),
			ProductID: line.ProductID().String(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice(),
		}
	}

	return OrderResponse{
		ID:        o.ID().String(),
		ClientID:  o.ClientID().String(),
		Status:    o.Status().String(),
		Total:     o.Total(),
		CreatedAt: o.CreatedAt(),
		Lines:     lines,
	}
}

func transporterResponse(t *transporter.Transporter) TransporterResponse {
	return TransporterResponse{
		ID:     t.ID().String(),
		Name:   t.Name(),
		Phone:  t.Phone(),
		Rating: t.Rating(),
	}
}

func deliveryResponse(d *delivery.Delivery) DeliveryResponse {
	resp := DeliveryResponse{
		ID:          d.ID().String(),
		OrderID:     d.OrderID().String(),
		ScheduledAt: d.ScheduledAt(),
		Address:     d.Address(),
		Cost:        d.Cost(),
		Status:      d.Status().String(),
	}
	if transporterID := d.Transporter(); transporterID != nil {
		t := transporterID.String()
		resp.TransporterID = &t
	}
	return resp
}

func paymentResponse(p *payment.Payment) PaymentResponse {
	return PaymentResponse{
		ID:         p.ID().String(),
		OrderID:    p.OrderID().String(),
		OccurredAt: p.OccurredAt(),
		Amount:     p.Amount(),
		Method:     p.Method().String(),
		Status:     p.Status().String(),
	}
}
