package entity

import (
	"time"
)

// Table es una mesa del salón. At most one active (non-terminal) order is
// bound through PedidoActualID; releasing the table clears the binding but
// never touches the order row.
type Table struct {
	ID        uint        `gorm:"primarykey" json:"id"`
	Numero    int         `gorm:"uniqueIndex;not null" json:"numero"`
	Capacidad int         `json:"capacidad"`
	Estado    TableStatus `gorm:"size:20;index;not null;default:disponible" json:"estado"`

	Ocupantes      int        `json:"ocupantes"`
	PedidoActualID *uint      `json:"pedidoActualId"`
	HoraInicio     *time.Time `json:"horaInicio"`
}
