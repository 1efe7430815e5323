package repository

import (
	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/entity"
	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

// GET /products → the digital menu only shows what's available
func (r *ProductRepository) ListAvailable() ([]entity.Product, error) {
	var out []entity.Product
	err := r.DB.Where("disponible = ?", true).Order("categoria, nombre").Find(&out).Error
	return out, err
}

func (r *ProductRepository) ListByCategoria(categoria string) ([]entity.Product, error) {
	var out []entity.Product
	err := r.DB.Where("disponible = ? AND categoria = ?", true, categoria).
		Order("nombre").Find(&out).Error
	return out, err
}

func (r *ProductRepository) Get(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
