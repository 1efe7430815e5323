package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/entity"
)

func TestAPICreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/orders" {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		var req CreateOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.NumeroMesa != 5 || len(req.Items) != 1 {
			t.Errorf("request = %+v", req)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"ok": true,
			"data": entity.Order{
				ID: 1, NumeroPedido: "PED-20260901-0001",
				NumeroMesa: 5, Estado: entity.StatusNuevo, Total: 2750,
			},
		})
	}))
	defer srv.Close()

	api := NewAPI(srv.URL)
	o, err := api.CreateOrder(context.Background(), &CreateOrderRequest{
		NumeroMesa: 5, Personas: 2,
		Items: []OrderItemRequest{{ProductoID: 1, Cantidad: 2}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if o.NumeroPedido != "PED-20260901-0001" || o.Total != 2750 {
		t.Errorf("order = %+v", o)
	}
}

func TestAPIErrorMapping(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      map[string]any
		retryable bool
		reason    string
	}{
		{
			name:   "state conflict",
			status: http.StatusConflict,
			body:   map[string]any{"ok": false, "error": "el pedido ya no puede cancelarse"},
		},
		{
			name:      "card decline",
			status:    http.StatusPaymentRequired,
			body:      map[string]any{"ok": false, "error": "pago rechazado", "reason": "Fondos insuficientes", "retryable": true},
			retryable: true,
			reason:    "Fondos insuficientes",
		},
		{
			name:      "server error",
			status:    http.StatusInternalServerError,
			body:      map[string]any{"ok": false, "error": "boom"},
			retryable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(tt.body)
			}))
			defer srv.Close()

			_, err := NewAPI(srv.URL).Order(context.Background(), 1)
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("error = %v, want *APIError", err)
			}
			if apiErr.Status != tt.status || apiErr.Retryable() != tt.retryable || apiErr.Reason != tt.reason {
				t.Errorf("APIError = %+v, want status=%d retryable=%v reason=%q",
					apiErr, tt.status, tt.retryable, tt.reason)
			}
		})
	}
}

func TestAPISendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Errorf("Authorization = %q, want Bearer tok123", got)
		}
		json.NewEncoder(w).Encode(map[string]any{"ok": true, "data": map[string]any{"items": []entity.Order{}}})
	}))
	defer srv.Close()

	api := NewAPI(srv.URL)
	api.Token = "tok123"
	if _, err := api.ActiveOrders(context.Background()); err != nil {
		t.Fatalf("ActiveOrders: %v", err)
	}
}
