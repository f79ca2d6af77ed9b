package service

import (
	"context"
	"errors"
	"testing"

	"fastfood/internal/model"
	"fastfood/internal/validation"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func orderRequest() *model.OrderRequest {
	return &model.OrderRequest{
		Customer: &model.CustomerInput{
			Name:  "José Muñoz",
			Phone: "987654321",
			Email: strPtr(" "),
		},
		Products: []model.OrderItemRequest{
			{ProductID: 1, Quantity: 2, UnitPrice: decimal.NewFromInt(4990)},
			{ProductID: 3, Quantity: 1, UnitPrice: decimal.NewFromInt(1500)},
		},
		Total:         decimal.NewFromInt(11480),
		PaymentMethod: model.PaymentCash,
	}
}

func strPtr(s string) *string { return &s }

type orderMocks struct {
	sales     *MockSaleRepository
	customers *MockCustomerRepository
	tx        *MockTx
}

func newOrderService(m orderMocks) OrderService {
	return NewOrderService(m.sales, m.customers, validation.New(), zerolog.Nop())
}

func newOrderMocks() orderMocks {
	return orderMocks{
		sales:     new(MockSaleRepository),
		customers: new(MockCustomerRepository),
		tx:        new(MockTx),
	}
}

func itemsMatch(saleID int64) any {
	return mock.MatchedBy(func(items []model.SaleLineItem) bool {
		return len(items) == 2 &&
			items[0].SaleID == saleID && items[0].ProductID == 1 && items[0].Quantity == 2 &&
			items[0].UnitPrice.Equal(decimal.NewFromInt(4990)) &&
			items[0].Subtotal.Equal(decimal.NewFromInt(9980)) &&
			items[1].ProductID == 3 && items[1].Subtotal.Equal(decimal.NewFromInt(1500))
	})
}

func TestOrderService_PlaceOrder_NewCustomer(t *testing.T) {
	ctx := context.Background()
	m := newOrderMocks()

	m.sales.On("BeginTx", ctx).Return(m.tx, nil)
	m.customers.On("FindIDByPhone", ctx, m.tx, "987654321").Return(int64(0), false, nil)
	m.customers.On("Create", ctx, m.tx, mock.MatchedBy(func(c *model.Customer) bool {
		return c.Name == "José Muñoz" && c.Phone == "987654321" && c.Email == nil
	})).Return(int64(5), nil)
	m.sales.On("CreateSale", ctx, m.tx, mock.MatchedBy(func(s *model.Sale) bool {
		return s.CustomerID == 5 && s.Total.Equal(decimal.NewFromInt(11480)) &&
			s.PaymentMethod == model.PaymentCash && s.Status == model.SaleStatusPending
	})).Return(int64(42), nil)
	m.sales.On("CreateLineItems", ctx, m.tx, itemsMatch(42)).Return(nil)
	m.tx.On("Commit", ctx).Return(nil)

	saleID, err := newOrderService(m).PlaceOrder(ctx, orderRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), saleID)
	assert.True(t, m.tx.committed)
	assert.False(t, m.tx.rolledBack)
	m.sales.AssertExpectations(t)
	m.customers.AssertExpectations(t)
}

func TestOrderService_PlaceOrder_ExistingCustomer(t *testing.T) {
	ctx := context.Background()
	m := newOrderMocks()

	m.sales.On("BeginTx", ctx).Return(m.tx, nil)
	m.customers.On("FindIDByPhone", ctx, m.tx, "987654321").Return(int64(9), true, nil)
	m.sales.On("CreateSale", ctx, m.tx, mock.MatchedBy(func(s *model.Sale) bool {
		return s.CustomerID == 9
	})).Return(int64(43), nil)
	m.sales.On("CreateLineItems", ctx, m.tx, itemsMatch(43)).Return(nil)
	m.tx.On("Commit", ctx).Return(nil)

	saleID, err := newOrderService(m).PlaceOrder(ctx, orderRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(43), saleID)
	m.customers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_ValidationFailure(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.OrderRequest)
	}{
		{name: "Short phone", mutate: func(r *model.OrderRequest) { r.Customer.Phone = "12345" }},
		{name: "Name with digits", mutate: func(r *model.OrderRequest) { r.Customer.Name = "John123" }},
		{name: "Empty product list", mutate: func(r *model.OrderRequest) { r.Products = nil }},
		{name: "Total mismatch", mutate: func(r *model.OrderRequest) { r.Total = decimal.NewFromInt(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			m := newOrderMocks()
			req := orderRequest()
			tt.mutate(req)

			saleID, err := newOrderService(m).PlaceOrder(ctx, req)

			var verr *model.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.NotEmpty(t, verr.Messages)
			assert.Zero(t, saleID)
			m.sales.AssertNotCalled(t, "BeginTx", mock.Anything)
		})
	}
}

func TestOrderService_PlaceOrder_RollsBack(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(ctx context.Context, m orderMocks)
		errText   string
	}{
		{
			name: "Customer lookup fails",
			setupMock: func(ctx context.Context, m orderMocks) {
				m.customers.On("FindIDByPhone", ctx, m.tx, "987654321").Return(int64(0), false, errors.New("lookup failed"))
			},
			errText: "lookup failed",
		},
		{
			name: "Sale insert fails",
			setupMock: func(ctx context.Context, m orderMocks) {
				m.customers.On("FindIDByPhone", ctx, m.tx, "987654321").Return(int64(9), true, nil)
				m.sales.On("CreateSale", ctx, m.tx, mock.Anything).Return(int64(0), errors.New("insert failed"))
			},
			errText: "insert failed",
		},
		{
			name: "Line item insert fails",
			setupMock: func(ctx context.Context, m orderMocks) {
				m.customers.On("FindIDByPhone", ctx, m.tx, "987654321").Return(int64(9), true, nil)
				m.sales.On("CreateSale", ctx, m.tx, mock.Anything).Return(int64(44), nil)
				m.sales.On("CreateLineItems", ctx, m.tx, mock.Anything).
					Return(errors.New(`violates foreign key constraint "detalle_ventas_id_producto_fkey"`))
			},
			errText: "detalle_ventas_id_producto_fkey",
		},
		{
			name: "Commit fails",
			setupMock: func(ctx context.Context, m orderMocks) {
				m.customers.On("FindIDByPhone", ctx, m.tx, "987654321").Return(int64(9), true, nil)
				m.sales.On("CreateSale", ctx, m.tx, mock.Anything).Return(int64(44), nil)
				m.sales.On("CreateLineItems", ctx, m.tx, mock.Anything).Return(nil)
				m.tx.On("Commit", ctx).Return(errors.New("commit failed"))
			},
			errText: "commit failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			m := newOrderMocks()
			m.sales.On("BeginTx", ctx).Return(m.tx, nil)
			m.tx.On("Rollback", ctx).Return(nil)
			tt.setupMock(ctx, m)

			saleID, err := newOrderService(m).PlaceOrder(ctx, orderRequest())

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
			assert.Zero(t, saleID)
			assert.True(t, m.tx.rolledBack)
			m.tx.AssertCalled(t, "Rollback", ctx)
		})
	}
}

func TestOrderService_PlaceOrder_BeginTxFails(t *testing.T) {
	ctx := context.Background()
	m := newOrderMocks()
	m.sales.On("BeginTx", ctx).Return(nil, errors.New("pool closed"))

	_, err := newOrderService(m).PlaceOrder(ctx, orderRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "pool closed")
	m.customers.AssertNotCalled(t, "FindIDByPhone", mock.Anything, mock.Anything, mock.Anything)
}
