package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	postgres_adapter "foodorder/internal/adapters/out/postgres"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type OrderQueryHandlersTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *OrderQueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
	suite.orderRepo = orderrepo.NewGormOrderRepository(db)
}

func (suite *OrderQueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderQueryHandlersTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items, order_history CASCADE").Error)
}

func (suite *OrderQueryHandlersTestSuite) TestGetOrder_ReturnsHeaderAndItems() {
	ctx := context.Background()
	created := suite.createOrder("ORDreadmodel1", "alice", time.Now())

	query, err := queries.NewGetOrderQuery("ORDreadmodel1")
	suite.Require().NoError(err)

	resp, err := queries.NewGetOrderQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal("ORDreadmodel1", resp.OrderID)
	suite.Equal("alice", resp.CustomerID)
	suite.Equal("1 Main St", resp.Address)
	suite.Equal("555-0100", resp.Phone)
	suite.True(decimal.RequireFromString("31.00").Equal(resp.Total))
	suite.Equal(order.PendingPayment, resp.Status)
	suite.Equal("Pending payment", resp.StatusDescription)
	suite.Equal(0, resp.Version)
	suite.WithinDuration(created.CreatedAt(), resp.CreatedAt, time.Millisecond)

	suite.Require().Len(resp.Items, 2)
	suite.Equal(int64(1), resp.Items[0].ProductID)
	suite.Equal("Dumplings", resp.Items[0].ProductName)
	suite.Equal(2, resp.Items[0].Quantity)
	suite.True(decimal.RequireFromString("16.00").Equal(resp.Items[0].Subtotal))
	suite.Equal(int64(2), resp.Items[1].ProductID)
	suite.True(decimal.RequireFromString("15.00").Equal(resp.Items[1].Subtotal))
}

func (suite *OrderQueryHandlersTestSuite) TestGetOrder_Unknown_ReturnsNotFound() {
	query, err := queries.NewGetOrderQuery("ORDnotthere01")
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)

	suite.True(errors.Is(err, errs.ErrObjectNotFound))
}

func (suite *OrderQueryHandlersTestSuite) TestGetOrder_UnknownStatusCode_ReturnsNotFound() {
	suite.createOrder("ORDbadstatus1", "alice", time.Now())
	suite.setStatusCode("ORDbadstatus1", 42)

	query, err := queries.NewGetOrderQuery("ORDbadstatus1")
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)

	suite.True(errors.Is(err, errs.ErrObjectNotFound))
}

func (suite *OrderQueryHandlersTestSuite) TestGetCustomerOrders_NewestFirst() {
	now := time.Now()
	suite.createOrder("ORDcustold001", "alice", now.Add(-2*time.Hour))
	suite.createOrder("ORDcustnew001", "alice", now)
	suite.createOrder("ORDcustbob001", "bob", now)
	suite.setStatusCode("ORDcustnew001", order.Paid.Code())

	query, err := queries.NewGetCustomerOrdersQuery("alice")
	suite.Require().NoError(err)

	resp, err := queries.NewGetCustomerOrdersQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(resp, 2)
	suite.Equal("ORDcustnew001", resp[0].OrderID)
	suite.Equal(order.Paid, resp[0].Status)
	suite.Equal("Paid", resp[0].StatusDescription)
	suite.Equal("ORDcustold001", resp[1].OrderID)
	suite.Equal("Pending payment", resp[1].StatusDescription)
}

func (suite *OrderQueryHandlersTestSuite) TestGetCustomerOrders_UnknownStatusIsReportedAsUnknown() {
	suite.createOrder("ORDcustodd001", "carol", time.Now())
	suite.setStatusCode("ORDcustodd001", 42)

	query, err := queries.NewGetCustomerOrdersQuery("carol")
	suite.Require().NoError(err)

	resp, err := queries.NewGetCustomerOrdersQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(resp, 1)
	suite.Equal("Unknown", resp[0].StatusDescription)
}

func (suite *OrderQueryHandlersTestSuite) TestGetCustomerOrders_NoOrders_ReturnsEmpty() {
	query, err := queries.NewGetCustomerOrdersQuery("nobody")
	suite.Require().NoError(err)

	resp, err := queries.NewGetCustomerOrdersQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(resp)
	suite.Empty(resp)
}

func (suite *OrderQueryHandlersTestSuite) TestGetAvailableTransitions_FollowsStatusTable() {
	tests := []struct {
		id          string
		status      order.Status
		available   []order.Status
		final       bool
		cancellable bool
		refundable  bool
	}{
		{"ORDavail00000", order.PendingPayment, []order.Status{order.Paid, order.Cancelled}, false, true, false},
		{"ORDavail00001", order.Paid, []order.Status{order.Delivering, order.Cancelled, order.Refunding}, false, true, true},
		{"ORDavail00002", order.Delivering, []order.Status{order.Completed, order.Refunding}, false, false, true},
		{"ORDavail00004", order.Cancelled, []order.Status{}, true, false, false},
	}

	handler := queries.NewGetAvailableTransitionsQueryHandler(suite.db)
	for _, tt := range tests {
		suite.Run(tt.status.String(), func() {
			suite.createOrder(tt.id, "alice", time.Now())
			suite.setStatusCode(tt.id, tt.status.Code())

			query, err := queries.NewGetAvailableTransitionsQuery(tt.id)
			suite.Require().NoError(err)

			resp, err := handler.Handle(context.Background(), query)
			suite.Require().NoError(err)

			suite.Equal(tt.status, resp.Current)
			suite.ElementsMatch(tt.available, resp.Available)
			suite.Equal(tt.final, resp.IsFinal)
			suite.Equal(tt.cancellable, resp.Cancellable)
			suite.Equal(tt.refundable, resp.Refundable)
		})
	}
}

func (suite *OrderQueryHandlersTestSuite) TestGetAvailableTransitions_Unknown_ReturnsNotFound() {
	query, err := queries.NewGetAvailableTransitionsQuery("ORDnotthere02")
	suite.Require().NoError(err)

	_, err = queries.NewGetAvailableTransitionsQueryHandler(suite.db).Handle(context.Background(), query)

	suite.True(errors.Is(err, errs.ErrObjectNotFound))
}

func (suite *OrderQueryHandlersTestSuite) createOrder(rawID, customerID string, createdAt time.Time) *order.Order {
	id, err := kernel.OrderIDFromString(rawID)
	suite.Require().NoError(err)
	dumplings, err := order.NewLineItem(1, "Dumplings", decimal.RequireFromString("8.00"), 2)
	suite.Require().NoError(err)
	noodles, err := order.NewLineItem(2, "Noodles", decimal.RequireFromString("15.00"), 1)
	suite.Require().NoError(err)

	o, err := order.NewOrder(id, customerID, "1 Main St", "555-0100", []order.LineItem{dumplings, noodles}, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *OrderQueryHandlersTestSuite) setStatusCode(rawID string, code int) {
	suite.Require().NoError(suite.db.Exec("UPDATE orders SET status = ? WHERE order_id = ?", code, rawID).Error)
}

func TestOrderQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueryHandlersTestSuite))
}
