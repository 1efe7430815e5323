package entity

type OrderItem struct {
	ID      uint `gorm:"primarykey" json:"id"`
	OrderID uint `gorm:"index;not null" json:"-"`

	ProductoID uint `json:"productoId"`

	// Snapshot of the product at order time; menu edits never rewrite
	// already-placed orders.
	NombreProducto    string `gorm:"size:100" json:"nombreProducto"`
	CategoriaProducto string `gorm:"size:20" json:"categoriaProducto,omitempty"`
	ImagenProducto    string `json:"imagenProducto,omitempty"`

	Cantidad       int    `json:"cantidad"`
	PrecioUnitario int64  `json:"precioUnitario"`
	Subtotal       int64  `json:"subtotal"`
	Observaciones  string `gorm:"size:255" json:"observaciones,omitempty"`
}
