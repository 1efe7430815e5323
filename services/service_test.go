package services

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/entity"
	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// fixture wires the services over an in-memory sqlite with a frozen clock.
// advance() moves time for everything at once.
type fixture struct {
	t  *testing.T
	db *gorm.DB

	orders *OrderService
	tables *TableService

	now time.Time

	milanesa entity.Product
	limonada entity.Product
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	// One named shared-memory database per fixture; a bare :memory: would
	// give every pooled connection its own empty database.
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"), dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{}, &entity.Product{}, &entity.Table{},
		&entity.Order{}, &entity.OrderItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	f := &fixture{
		t:   t,
		db:  db,
		now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}
	clock := func() time.Time { return f.now }

	orderRepo := repository.NewOrderRepository(db)
	tableRepo := repository.NewTableRepository(db)
	productRepo := repository.NewProductRepository(db)

	f.orders = NewOrderService(db, orderRepo, tableRepo, productRepo)
	f.orders.Now = clock
	f.tables = NewTableService(db, tableRepo, orderRepo, 50)
	f.tables.Now = clock

	f.milanesa = entity.Product{Nombre: "Milanesa napolitana", Precio: 1000, Categoria: entity.CategoriaPrincipal, Disponible: true}
	f.limonada = entity.Product{Nombre: "Limonada", Precio: 500, Categoria: entity.CategoriaBebida, Disponible: true}
	if err := db.Create(&f.milanesa).Error; err != nil {
		t.Fatalf("seed products: %v", err)
	}
	if err := db.Create(&f.limonada).Error; err != nil {
		t.Fatalf("seed products: %v", err)
	}

	for n := 1; n <= 12; n++ {
		tbl := entity.Table{Numero: n, Capacidad: 4, Estado: entity.TableDisponible}
		if err := db.Create(&tbl).Error; err != nil {
			t.Fatalf("seed tables: %v", err)
		}
	}
	return f
}

func (f *fixture) advance(d time.Duration) { f.now = f.now.Add(d) }

func (f *fixture) newPayments(seed int64) *PaymentService {
	return NewPaymentService(f.db, f.orders.Repo, f.tables.Repo, seed)
}

// placeOrder seats table numero with the standard two-line order:
// 2x milanesa (1000) + 1x limonada (500).
func (f *fixture) placeOrder(numero int) *entity.Order {
	f.t.Helper()
	o, err := f.orders.Create(&CreateOrderReq{
		NumeroMesa: numero,
		Personas:   2,
		Items: []OrderItemIn{
			{ProductoID: f.milanesa.ID, Cantidad: 2},
			{ProductoID: f.limonada.ID, Cantidad: 1},
		},
	})
	if err != nil {
		f.t.Fatalf("place order on table %d: %v", numero, err)
	}
	return o
}

// forceEstado arranges a lifecycle position directly, bypassing the guards
// under test.
func (f *fixture) forceEstado(orderID uint, estado entity.OrderStatus) {
	f.t.Helper()
	err := f.db.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("estado", estado).Error
	if err != nil {
		f.t.Fatalf("force estado: %v", err)
	}
}

func (f *fixture) reload(orderID uint) *entity.Order {
	f.t.Helper()
	o, err := f.orders.Get(orderID)
	if err != nil {
		f.t.Fatalf("reload order %d: %v", orderID, err)
	}
	return o
}

func (f *fixture) table(numero int) *entity.Table {
	f.t.Helper()
	tbl, err := f.tables.GetByNumero(numero)
	if err != nil {
		f.t.Fatalf("reload table %d: %v", numero, err)
	}
	return tbl
}
