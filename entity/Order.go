package entity

import (
	"time"
)

// Order es el pedido de una mesa. Amounts are in cents.
type Order struct {
	ID           uint        `gorm:"primarykey" json:"id"`
	NumeroPedido string      `gorm:"size:32;uniqueIndex;not null" json:"numeroPedido"`
	NumeroMesa   int         `gorm:"index;not null" json:"numeroMesa"`
	Personas     int         `json:"personas"`
	Estado       OrderStatus `gorm:"size:20;index;not null" json:"estado"`

	Subtotal int64 `json:"subtotal"`
	Propina  int64 `json:"propina"`
	Total    int64 `json:"total"`

	// Payment negotiation: the customer sets the flag + requested method
	// (last write wins), the cashier records the settled method on pay.
	MetodoPago           PaymentMethod `gorm:"size:20" json:"metodoPago,omitempty"`
	MetodoPagoSolicitado PaymentMethod `gorm:"size:20" json:"metodoPagoSolicitado,omitempty"`
	ListoParaPagar       bool          `json:"listoParaPagar"`

	// Kitchen acknowledged a cancelled order and cleared it from its board.
	Descartado bool `gorm:"default:false" json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`

	FechaCreacion      time.Time `gorm:"autoCreateTime" json:"fechaCreacion"`
	FechaActualizacion time.Time `gorm:"autoUpdateTime" json:"fechaActualizacion"`
}

// PropinaRate: house convention, 10% of the subtotal.
const PropinaRate = 10

// RecalcularTotales recomputes subtotal, propina and total from the items.
func (o *Order) RecalcularTotales() {
	o.Subtotal = 0
	for _, it := range o.Items {
		o.Subtotal += it.Subtotal
	}
	o.Propina = o.Subtotal / PropinaRate
	o.Total = o.Subtotal + o.Propina
}
