package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods.
const (
	PaymentCash     = "efectivo"
	PaymentCard     = "tarjeta"
	PaymentTransfer = "transferencia"
)

// PaymentMethods lists every accepted payment method.
var PaymentMethods = []string{PaymentCash, PaymentCard, PaymentTransfer}

// Sale statuses. New sales start as pending.
const (
	SaleStatusPending   = "pendiente"
	SaleStatusPreparing = "preparando"
	SaleStatusReady     = "listo"
	SaleStatusDelivered = "entregado"
)

// Sale is a submitted order.
type Sale struct {
	ID            int64           `json:"id" db:"id_venta"`
	CustomerID    int64           `json:"customerId" db:"id_cliente"`
	Total         decimal.Decimal `json:"total" db:"total"`
	PaymentMethod string          `json:"paymentMethod" db:"metodo_pago"`
	Status        string          `json:"status" db:"estado"`
	CreatedAt     time.Time       `json:"createdAt" db:"fecha_venta"`
}

// SaleLineItem is one product-quantity-price record of a sale.
// UnitPrice is the price at the time of sale, independent of the current catalogue price.
type SaleLineItem struct {
	ID          int64           `json:"id" db:"id_detalle"`
	SaleID      int64           `json:"saleId" db:"id_venta"`
	ProductID   int64           `json:"productId" db:"id_producto"`
	ProductName *string         `json:"productName,omitempty"`
	Quantity    int             `json:"quantity" db:"cantidad"`
	UnitPrice   decimal.Decimal `json:"unitPrice" db:"precio_unitario"`
	Subtotal    decimal.Decimal `json:"subtotal" db:"subtotal"`
}

// SaleSummary is a sale joined with its customer's name and phone.
type SaleSummary struct {
	Sale
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
}

// SaleDetail is a sale summary with its line items.
type SaleDetail struct {
	SaleSummary
	Items []SaleLineItem `json:"items"`
}

// OrderRequest is the payload submitted by the storefront checkout.
type OrderRequest struct {
	Customer      *CustomerInput     `json:"customer"`
	Products      []OrderItemRequest `json:"products"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"paymentMethod"`
}

// CustomerInput carries the checkout form's customer fields.
type CustomerInput struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

// OrderItemRequest is a single cart entry.
type OrderItemRequest struct {
	ProductID int64           `json:"id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// Subtotal returns quantity × unit price.
func (i OrderItemRequest) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Normalize trims the customer's free-text fields and drops blank optional ones.
func (r *OrderRequest) Normalize() {
	r.PaymentMethod = trim(r.PaymentMethod)
	if r.Customer == nil {
		return
	}
	r.Customer.Name = trim(r.Customer.Name)
	r.Customer.Phone = trim(r.Customer.Phone)
	r.Customer.Email = trimOptional(r.Customer.Email)
	r.Customer.Address = trimOptional(r.Customer.Address)
}

// ItemsTotal sums the subtotals of every cart entry.
func (r *OrderRequest) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range r.Products {
		total = total.Add(item.Subtotal())
	}
	return total
}
