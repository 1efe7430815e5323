package client

import (
	"sort"

	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/entity"
)

// Cart accumulates products before the order is sent. It lives entirely on
// the client; prices shown here are a preview, the server snapshots its own
// prices when the order is created.
type Cart struct {
	lines map[uint]*CartLine
}

type CartLine struct {
	Producto      entity.Product
	Cantidad      int
	Observaciones string
}

func NewCart() *Cart {
	return &Cart{lines: map[uint]*CartLine{}}
}

// Add increments the line for the product, creating it on first add.
func (c *Cart) Add(p entity.Product, cantidad int) {
	if cantidad <= 0 {
		return
	}
	if ln, ok := c.lines[p.ID]; ok {
		ln.Cantidad += cantidad
		return
	}
	c.lines[p.ID] = &CartLine{Producto: p, Cantidad: cantidad}
}

// SetCantidad overwrites the quantity; zero or less removes the line.
func (c *Cart) SetCantidad(productoID uint, cantidad int) {
	if cantidad <= 0 {
		delete(c.lines, productoID)
		return
	}
	if ln, ok := c.lines[productoID]; ok {
		ln.Cantidad = cantidad
	}
}

func (c *Cart) SetObservaciones(productoID uint, obs string) {
	if ln, ok := c.lines[productoID]; ok {
		ln.Observaciones = obs
	}
}

func (c *Cart) Remove(productoID uint) { delete(c.lines, productoID) }

func (c *Cart) Clear() { c.lines = map[uint]*CartLine{} }

func (c *Cart) Empty() bool { return len(c.lines) == 0 }

// Subtotal is the preview total in cents, before the server applies the tip.
func (c *Cart) Subtotal() int64 {
	var total int64
	for _, ln := range c.lines {
		total += ln.Producto.Precio * int64(ln.Cantidad)
	}
	return total
}

// Lines returns the cart ordered by product id, for stable rendering.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, 0, len(c.lines))
	for _, ln := range c.lines {
		out = append(out, *ln)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Producto.ID < out[j].Producto.ID })
	return out
}

// ToRequest builds the create-order payload for the given table.
func (c *Cart) ToRequest(numeroMesa, personas int) *CreateOrderRequest {
	req := &CreateOrderRequest{NumeroMesa: numeroMesa, Personas: personas}
	for _, ln := range c.Lines() {
		req.Items = append(req.Items, OrderItemRequest{
			ProductoID:    ln.Producto.ID,
			Cantidad:      ln.Cantidad,
			Observaciones: ln.Observaciones,
		})
	}
	return req
}
