package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/history"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, t order.Transition) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockOrderRepository) ListByCustomer(ctx context.Context, customerID string) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Append(ctx context.Context, entry *history.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockHistoryRepository) ByOrder(ctx context.Context, id kernel.OrderID) ([]*history.Entry, error) {
	args := m.Called(ctx, id)
	entries, _ := args.Get(0).([]*history.Entry)
	return entries, args.Error(1)
}

func (m *MockHistoryRepository) ByOperator(ctx context.Context, operator string) ([]*history.Entry, error) {
	args := m.Called(ctx, operator)
	entries, _ := args.Get(0).([]*history.Entry)
	return entries, args.Error(1)
}

func (m *MockHistoryRepository) ByTimeRange(ctx context.Context, start, end time.Time) ([]*history.Entry, error) {
	args := m.Called(ctx, start, end)
	entries, _ := args.Get(0).([]*history.Entry)
	return entries, args.Error(1)
}

func (m *MockHistoryRepository) Latest(ctx context.Context, id kernel.OrderID) (*history.Entry, error) {
	args := m.Called(ctx, id)
	entry, _ := args.Get(0).(*history.Entry)
	return entry, args.Error(1)
}

func (m *MockHistoryRepository) HasStatus(ctx context.Context, id kernel.OrderID, status order.Status) (bool, error) {
	args := m.Called(ctx, id, status)
	return args.Bool(0), args.Error(1)
}

func (m *MockHistoryRepository) Count(ctx context.Context, id kernel.OrderID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHistoryRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) Lookup(ctx context.Context, productID int64) (catalog.Product, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(catalog.Product), args.Error(1)
}

func (m *MockProductCatalog) LookupMany(ctx context.Context, productIDs []int64) (map[int64]catalog.Product, error) {
	args := m.Called(ctx, productIDs)
	products, _ := args.Get(0).(map[int64]catalog.Product)
	return products, args.Error(1)
}

func (m *MockProductCatalog) IncrementSales(ctx context.Context, productID int64, delta int) error {
	args := m.Called(ctx, productID, delta)
	return args.Error(0)
}

type MockCustomerDirectory struct{ mock.Mock }

func (m *MockCustomerDirectory) Exists(ctx context.Context, customerID string) (bool, error) {
	args := m.Called(ctx, customerID)
	return args.Bool(0), args.Error(1)
}

// MockUoW satisfies every unit of work view used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) HistoryRepository() ports.HistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.HistoryRepository)
}

func (m *MockUoW) ProductCatalog() ports.ProductCatalog {
	args := m.Called()
	return args.Get(0).(ports.ProductCatalog)
}

func (m *MockUoW) CustomerDirectory() ports.CustomerDirectory {
	args := m.Called()
	return args.Get(0).(ports.CustomerDirectory)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockTransitionUoWFactory struct{ mock.Mock }

func (m *MockTransitionUoWFactory) Create() commands.TransitionUoW {
	args := m.Called()
	return args.Get(0).(commands.TransitionUoW)
}

type MockHistoryUoWFactory struct{ mock.Mock }

func (m *MockHistoryUoWFactory) Create() commands.HistoryUoW {
	args := m.Called()
	return args.Get(0).(commands.HistoryUoW)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
