package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/entity"
	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/repository"
	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/utils"
	"gorm.io/gorm"
)

// TableService keeps table occupancy consistent with the order lifecycle:
// creation occupies, payment parks the table as pagada, an explicit release
// frees it, and only once the bound order is resolved.
type TableService struct {
	DB        *gorm.DB
	Repo      *repository.TableRepository
	OrderRepo *repository.OrderRepository

	// Highest table number a QR deep link may carry.
	MaxMesas int

	Now utils.Clock
}

func NewTableService(db *gorm.DB, repo *repository.TableRepository, orderRepo *repository.OrderRepository, maxMesas int) *TableService {
	return &TableService{DB: db, Repo: repo, OrderRepo: orderRepo, MaxMesas: maxMesas, Now: time.Now}
}

// ----- QR deep link validation -----

// ValidateNumero checks a table number arriving as a URL parameter (the QR
// deep link): numeric, inside the configured range, and backed by a real
// table. Callers fall back to manual selection on any error; a bad number
// never silently seats anyone.
func (s *TableService) ValidateNumero(param string) (*entity.Table, error) {
	n, err := strconv.Atoi(param)
	if err != nil || n < 1 || n > s.MaxMesas {
		return nil, ErrInvalidTableNumber
	}
	t, err := s.Repo.GetByNumero(n)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	return t, nil
}

// ----- Listings -----

func (s *TableService) ListAll() ([]entity.Table, error) { return s.Repo.ListAll() }

func (s *TableService) GetByNumero(numero int) (*entity.Table, error) {
	t, err := s.Repo.GetByNumero(numero)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTableNotFound
	}
	return t, err
}

func (s *TableService) ListByStatus(estado entity.TableStatus) ([]entity.Table, error) {
	return s.Repo.ListByStatus(estado)
}

// ----- Release -----

// Release frees the table after the party leaves. Gated: the bound order
// must be resolved (pagado or cancelado); nobody abandons a table with an
// open bill. The order row itself is untouched.
func (s *TableService) Release(numero int) (*entity.Table, error) {
	t, err := s.GetByNumero(numero)
	if err != nil {
		return nil, err
	}
	if t.Estado == entity.TableDisponible {
		// Already free; releasing again changes nothing.
		return t, nil
	}

	if t.PedidoActualID != nil {
		o, err := s.OrderRepo.GetOrder(*t.PedidoActualID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if o != nil && !o.Estado.Terminal() {
			return nil, ErrActiveOrderUnresolved
		}
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.ReleaseGuard(tx, numero)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrActiveOrderUnresolved
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetByNumero(numero)
}

// ReleaseByID resolves the table by database id, like every other
// /tables/:id route, then applies the release gate.
func (s *TableService) ReleaseByID(id uint) (*entity.Table, error) {
	t, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	return s.Release(t.Numero)
}

// ----- Staff estado override (PATCH /tables/:id/estado) -----

// UpdateStatus lets staff move a table by hand (reserve it, seat walk-ins).
// Freeing a table still goes through the release gate.
func (s *TableService) UpdateStatus(id uint, estado entity.TableStatus, ocupantes int) (*entity.Table, error) {
	t, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}

	if estado == entity.TableDisponible {
		return s.Release(t.Numero)
	}

	updates := map[string]any{"estado": estado}
	if estado == entity.TableOcupada {
		updates["ocupantes"] = ocupantes
		updates["hora_inicio"] = s.Now()
	}
	if err := s.Repo.Update(t.ID, updates); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(t.ID)
}

// ----- Manager CRUD -----

type TableReq struct {
	Numero    int `json:"numero" binding:"required,min=1"`
	Capacidad int `json:"capacidad" binding:"required,min=1"`
}

func (s *TableService) Create(req *TableReq) (*entity.Table, error) {
	exists, err := s.Repo.ExistsByNumero(req.Numero)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrInvalidTableNumber
	}
	t := entity.Table{Numero: req.Numero, Capacidad: req.Capacidad, Estado: entity.TableDisponible}
	if err := s.Repo.Create(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TableService) UpdateCapacity(id uint, capacidad int) (*entity.Table, error) {
	if _, err := s.Repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	if err := s.Repo.Update(id, map[string]any{"capacidad": capacidad}); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(id)
}

// Delete refuses while a party is seated or a bill is open.
func (s *TableService) Delete(id uint) error {
	t, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTableNotFound
		}
		return err
	}
	if t.Estado == entity.TableOcupada || t.Estado == entity.TablePagada {
		return ErrActiveOrderUnresolved
	}
	return s.Repo.Delete(id)
}
