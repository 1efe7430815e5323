package repository

import (
	"time"

	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/entity"
	"gorm.io/gorm"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

// GET /tables → salón overview, fixed order
func (r *TableRepository) ListAll() ([]entity.Table, error) {
	var out []entity.Table
	err := r.DB.Order("numero").Find(&out).Error
	return out, err
}

func (r *TableRepository) GetByNumero(numero int) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.Where("numero = ?", numero).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) GetByID(id uint) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) ListByStatus(estado entity.TableStatus) ([]entity.Table, error) {
	var out []entity.Table
	err := r.DB.Where("estado = ?", estado).Order("numero").Find(&out).Error
	return out, err
}

func (r *TableRepository) ExistsByNumero(numero int) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Table{}).Where("numero = ?", numero).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *TableRepository) Create(t *entity.Table) error {
	return r.DB.Create(t).Error
}

func (r *TableRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Table{}).Where("id = ?", id).Updates(updates).Error
}

func (r *TableRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Table{}, id).Error
}

// ---------------- Guarded occupancy transitions ----------------

// OccupyGuard seats a party: only an available table can be taken, and the
// order binding happens in the same UPDATE.
func (r *TableRepository) OccupyGuard(tx *gorm.DB, numero int, ocupantes int, orderID uint, now time.Time) (int64, error) {
	res := tx.Model(&entity.Table{}).
		Where("numero = ? AND estado = ?", numero, entity.TableDisponible).
		Updates(map[string]any{
			"estado":           entity.TableOcupada,
			"ocupantes":        ocupantes,
			"pedido_actual_id": orderID,
			"hora_inicio":      now,
		})
	return res.RowsAffected, res.Error
}

// MarkPagadaGuard: the party settled, the table waits for cleanup. It keeps
// looking occupied to other customers.
func (r *TableRepository) MarkPagadaGuard(tx *gorm.DB, numero int, orderID uint) (int64, error) {
	res := tx.Model(&entity.Table{}).
		Where("numero = ? AND estado = ? AND pedido_actual_id = ?", numero, entity.TableOcupada, orderID).
		Update("estado", entity.TablePagada)
	return res.RowsAffected, res.Error
}

// ReleaseGuard frees the table and clears the order binding. The order row
// itself is never touched. Caller verifies the active order is resolved.
func (r *TableRepository) ReleaseGuard(tx *gorm.DB, numero int) (int64, error) {
	res := tx.Model(&entity.Table{}).
		Where("numero = ? AND estado IN ?", numero,
			[]entity.TableStatus{entity.TableOcupada, entity.TablePagada}).
		Updates(map[string]any{
			"estado":           entity.TableDisponible,
			"ocupantes":        0,
			"pedido_actual_id": nil,
			"hora_inicio":      nil,
		})
	return res.RowsAffected, res.Error
}
