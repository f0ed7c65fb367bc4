package entity

import "github.com/shopspring/decimal"

// Estados de pago de una factura.
const (
	StatusPaid    = "paid"
	StatusPending = "pending"
	StatusOverdue = "overdue"
)

// LineItem es una línea de detalle de la factura. Cantidad y precio son no
// negativos; el total de línea se deriva, nunca se almacena.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// LineTotal devuelve cantidad × precio unitario.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.Quantity.Mul(li.Price)
}

// Invoice es la entrada inmutable del motor de render. Llega ya validada por
// las capas CRUD de la aplicación (al menos un ítem, moneda resuelta).
type Invoice struct {
	Number        string          `json:"number"`
	ClientName    string          `json:"clientName"`
	ClientEmail   string          `json:"clientEmail,omitempty"`
	ClientAddress string          `json:"clientAddress,omitempty"`
	Date          string          `json:"date"`
	DueDate       string          `json:"dueDate,omitempty"`
	Items         []LineItem      `json:"items"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// ItemsTotal suma los totales de línea. El renderer nunca lo usa para
// corregir Total: la invariante Total == ItemsTotal se garantiza upstream
// (formulario de edición) y aquí solo existe para poder verificarla en tests.
func (i *Invoice) ItemsTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range i.Items {
		sum = sum.Add(item.LineTotal())
	}
	return sum
}
