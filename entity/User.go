package entity

import (
	"gorm.io/gorm"
)

// Staff roles. Customers order anonymously via the table QR flow and never
// get a user record.
const (
	RolCajero   = "cajero"
	RolCocinero = "cocinero"
	RolGerente  = "gerente"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Nombre   string `gorm:"size:100" json:"nombre"`
	Role     string `gorm:"size:20;not null" json:"role"`
}
