package services

import (
	"errors"
	"testing"

	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/entity"
)

func TestValidateNumero(t *testing.T) {
	f := newFixture(t) // tables 1..12 exist, MaxMesas = 50

	tests := []struct {
		name    string
		param   string
		wantErr error
	}{
		{name: "valid deep link", param: "5"},
		{name: "not a number", param: "abc", wantErr: ErrInvalidTableNumber},
		{name: "empty", param: "", wantErr: ErrInvalidTableNumber},
		{name: "zero", param: "0", wantErr: ErrInvalidTableNumber},
		{name: "negative", param: "-3", wantErr: ErrInvalidTableNumber},
		{name: "outside configured range", param: "999", wantErr: ErrInvalidTableNumber},
		{name: "in range but no such table", param: "30", wantErr: ErrTableNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := f.tables.ValidateNumero(tt.param)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ValidateNumero(%q) error = %v, want %v", tt.param, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateNumero(%q): %v", tt.param, err)
			}
			if tbl.Numero != 5 {
				t.Errorf("numero = %d, want 5", tbl.Numero)
			}
		})
	}
}

func TestReleaseRequiresResolvedOrder(t *testing.T) {
	f := newFixture(t)
	o := f.placeOrder(2)

	// Open bill: the table cannot be abandoned.
	if _, err := f.tables.Release(2); !errors.Is(err, ErrActiveOrderUnresolved) {
		t.Fatalf("release with active order: error = %v, want %v", err, ErrActiveOrderUnresolved)
	}

	if _, err := f.orders.Cancel(o.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	tbl, err := f.tables.Release(2)
	if err != nil {
		t.Fatalf("release after cancel: %v", err)
	}
	if tbl.Estado != entity.TableDisponible {
		t.Errorf("estado = %s, want disponible", tbl.Estado)
	}
	if tbl.PedidoActualID != nil || tbl.Ocupantes != 0 || tbl.HoraInicio != nil {
		t.Errorf("binding not cleared: %+v", tbl)
	}

	// The cancelled order row survives the release untouched.
	if o := f.reload(o.ID); o.Estado != entity.StatusCancelado {
		t.Errorf("order estado = %s after release, want cancelado", o.Estado)
	}

	// The freed table can seat a new party.
	f.placeOrder(2)
}

func TestReleaseByID(t *testing.T) {
	f := newFixture(t)

	// A table whose database id differs from its numero; the seeded twelve
	// have id == numero and would hide an id/numero mix-up.
	created, err := f.tables.Create(&TableReq{Numero: 20, Capacidad: 4})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == uint(created.Numero) {
		t.Fatalf("fixture table id %d == numero %d, cannot exercise the mapping", created.ID, created.Numero)
	}

	o := f.placeOrder(20)
	if _, err := f.orders.Cancel(o.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	tbl, err := f.tables.ReleaseByID(created.ID)
	if err != nil {
		t.Fatalf("release by id: %v", err)
	}
	if tbl.Numero != 20 || tbl.Estado != entity.TableDisponible {
		t.Errorf("released table = %d/%s, want 20/disponible", tbl.Numero, tbl.Estado)
	}

	if _, err := f.tables.ReleaseByID(9999); !errors.Is(err, ErrTableNotFound) {
		t.Errorf("unknown id: error = %v, want %v", err, ErrTableNotFound)
	}
}

func TestReleaseIdempotentWhenFree(t *testing.T) {
	f := newFixture(t)
	tbl, err := f.tables.Release(7)
	if err != nil {
		t.Fatalf("release free table: %v", err)
	}
	if tbl.Estado != entity.TableDisponible {
		t.Errorf("estado = %s, want disponible", tbl.Estado)
	}
}

func TestUpdateStatusReserveAndSeat(t *testing.T) {
	f := newFixture(t)
	base := f.table(8)

	tbl, err := f.tables.UpdateStatus(base.ID, entity.TableReservada, 0)
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if tbl.Estado != entity.TableReservada {
		t.Errorf("estado = %s, want reservada", tbl.Estado)
	}

	tbl, err = f.tables.UpdateStatus(base.ID, entity.TableOcupada, 3)
	if err != nil {
		t.Fatalf("seat walk-ins: %v", err)
	}
	if tbl.Estado != entity.TableOcupada || tbl.Ocupantes != 3 || tbl.HoraInicio == nil {
		t.Errorf("seat result = %+v, want ocupada/3/hora set", tbl)
	}
}

func TestUpdateStatusFreeGoesThroughReleaseGate(t *testing.T) {
	f := newFixture(t)
	f.placeOrder(2)
	tbl := f.table(2)

	// Marking it AVAILABLE by hand must hit the same gate as a release.
	if _, err := f.tables.UpdateStatus(tbl.ID, entity.TableDisponible, 0); !errors.Is(err, ErrActiveOrderUnresolved) {
		t.Errorf("error = %v, want %v", err, ErrActiveOrderUnresolved)
	}
}

func TestTableCRUD(t *testing.T) {
	f := newFixture(t)

	created, err := f.tables.Create(&TableReq{Numero: 20, Capacidad: 6})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Estado != entity.TableDisponible {
		t.Errorf("new table estado = %s, want disponible", created.Estado)
	}

	// Duplicate number.
	if _, err := f.tables.Create(&TableReq{Numero: 20, Capacidad: 2}); !errors.Is(err, ErrInvalidTableNumber) {
		t.Errorf("duplicate create: error = %v, want %v", err, ErrInvalidTableNumber)
	}

	updated, err := f.tables.UpdateCapacity(created.ID, 8)
	if err != nil {
		t.Fatalf("update capacity: %v", err)
	}
	if updated.Capacidad != 8 {
		t.Errorf("capacidad = %d, want 8", updated.Capacidad)
	}

	if err := f.tables.Delete(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestDeleteRefusesSeatedTable(t *testing.T) {
	f := newFixture(t)
	f.placeOrder(2)
	tbl := f.table(2)

	if err := f.tables.Delete(tbl.ID); !errors.Is(err, ErrActiveOrderUnresolved) {
		t.Errorf("delete seated table: error = %v, want %v", err, ErrActiveOrderUnresolved)
	}
}
