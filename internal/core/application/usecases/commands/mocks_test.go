package commands_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/client"
	"commerce/internal/core/domain/model/delivery"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/payment"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/core/domain/model/supplier"
	"commerce/internal/core/domain/model/transporter"
	"commerce/internal/core/ports"
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*product.Product), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockProductRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*product.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockClientRepository struct{ mock.Mock }

func (m *MockClientRepository) Add(ctx context.Context, c *client.Client) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockClientRepository) Get(ctx context.Context, id kernel.UUID) (*client.Client, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*client.Client), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockClientRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockClientRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}
func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}
func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if d := args.Get(0); d != nil {
		return d.(*delivery.Delivery), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockDeliveryRepository) ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}
func (m *MockDeliveryRepository) GetOverdue(ctx context.Context, asOf time.Time) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, asOf)
	if d := args.Get(0); d != nil {
		return d.([]*delivery.Delivery), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockPaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*payment.Payment), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockPaymentRepository) ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

type MockTransporterRepository struct{ mock.Mock }

func (m *MockTransporterRepository) Add(ctx context.Context, t *transporter.Transporter) error {
	return m.Called(ctx, t).Error(0)
}
func (m *MockTransporterRepository) Get(ctx context.Context, id kernel.UUID) (*transporter.Transporter, error) {
	args := m.Called(ctx, id)
	if t := args.Get(0); t != nil {
		return t.(*transporter.Transporter), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockTransporterRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockSupplierRepository struct{ mock.Mock }

func (m *MockSupplierRepository) Add(ctx context.Context, s *supplier.Supplier) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockSupplierRepository) Get(ctx context.Context, id kernel.UUID) (*supplier.Supplier, error) {
	args := m.Called(ctx, id)
	if s := args.Get(0); s != nil {
		return s.(*supplier.Supplier), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockSupplierRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockUoW satisfies every unit-of-work role used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}
func (m *MockUoW) ClientRepository() ports.ClientRepository {
	return m.Called().Get(0).(ports.ClientRepository)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	return m.Called().Get(0).(ports.DeliveryRepository)
}
func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	return m.Called().Get(0).(ports.PaymentRepository)
}
func (m *MockUoW) TransporterRepository() ports.TransporterRepository {
	return m.Called().Get(0).(ports.TransporterRepository)
}
func (m *MockUoW) SupplierRepository() ports.SupplierRepository {
	return m.Called().Get(0).(ports.SupplierRepository)
}

type MockAdmissionUoWFactory struct{ mock.Mock }

func (m *MockAdmissionUoWFactory) Create() commands.AdmissionUoW {
	return m.Called().Get(0).(commands.AdmissionUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return m.Called().Get(0).(commands.DeliveryUoW)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	return m.Called().Get(0).(commands.PaymentUoW)
}

type MockInventoryUoWFactory struct{ mock.Mock }

func (m *MockInventoryUoWFactory) Create() commands.InventoryUoW {
	return m.Called().Get(0).(commands.InventoryUoW)
}

type MockClientUoWFactory struct{ mock.Mock }

func (m *MockClientUoWFactory) Create() commands.ClientUoW {
	return m.Called().Get(0).(commands.ClientUoW)
}

type MockTransporterUoWFactory struct{ mock.Mock }

func (m *MockTransporterUoWFactory) Create() commands.TransporterUoW {
	return m.Called().Get(0).(commands.TransporterUoW)
}
