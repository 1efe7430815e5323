package entity

import (
	"fmt"
	"strings"
)

type PaymentMethod string

const (
	PagoEfectivo       PaymentMethod = "efectivo"
	PagoTarjetaDebito  PaymentMethod = "tarjeta-debito"
	PagoTarjetaCredito PaymentMethod = "tarjeta-credito"
	PagoTransferencia  PaymentMethod = "transferencia"
	PagoQR             PaymentMethod = "qr"
	PagoOtro           PaymentMethod = "otro"
)

var paymentMethods = []PaymentMethod{
	PagoEfectivo, PagoTarjetaDebito, PagoTarjetaCredito, PagoTransferencia, PagoQR, PagoOtro,
}

func (m PaymentMethod) Valid() bool {
	for _, pm := range paymentMethods {
		if pm == m {
			return true
		}
	}
	return false
}

// Card reports whether settlement goes through the (simulated) card terminal.
func (m PaymentMethod) Card() bool {
	return m == PagoTarjetaDebito || m == PagoTarjetaCredito
}

func (m PaymentMethod) Wire() string {
	return strings.ToUpper(strings.ReplaceAll(string(m), "-", "_"))
}

func ParsePaymentMethodWire(v string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(v)), "_", "-"))
	if !m.Valid() {
		return "", fmt.Errorf("unknown payment method: %q", v)
	}
	return m, nil
}
