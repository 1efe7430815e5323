package entity

import (
	"gorm.io/gorm"
)

// Categorías del menú.
const (
	CategoriaEntrada   = "entrada"
	CategoriaPrincipal = "principal"
	CategoriaPostre    = "postre"
	CategoriaBebida    = "bebida"
	CategoriaAlcohol   = "alcohol"
)

type Product struct {
	gorm.Model
	Nombre      string `gorm:"size:100;not null" json:"nombre"`
	Descripcion string `gorm:"size:255" json:"descripcion"`
	Precio      int64  `gorm:"not null" json:"precio"` // cents
	Categoria   string `gorm:"size:20;index" json:"categoria"`
	Disponible  bool   `gorm:"default:true" json:"disponible"`
	Imagen      string `json:"imagen,omitempty"`
}
