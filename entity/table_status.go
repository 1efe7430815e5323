package entity

import (
	"fmt"
	"strings"
)

// TableStatus internal vocabulary is Spanish lowercase; the wire uses the
// English upper-case names (AVAILABLE, OCCUPIED, RESERVED) except PAGADA,
// which crosses as-is.
type TableStatus string

const (
	TableDisponible TableStatus = "disponible"
	TableOcupada    TableStatus = "ocupada"
	TableReservada  TableStatus = "reservada"
	TablePagada     TableStatus = "pagada" // paid, awaiting release/cleanup
)

var tableStatusWire = map[TableStatus]string{
	TableDisponible: "AVAILABLE",
	TableOcupada:    "OCCUPIED",
	TableReservada:  "RESERVED",
	TablePagada:     "PAGADA",
}

func (s TableStatus) Valid() bool {
	_, ok := tableStatusWire[s]
	return ok
}

func (s TableStatus) Wire() string {
	return tableStatusWire[s]
}

func ParseTableStatusWire(v string) (TableStatus, error) {
	w := strings.ToUpper(strings.TrimSpace(v))
	for s, ws := range tableStatusWire {
		if ws == w {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown table status: %q", v)
}
