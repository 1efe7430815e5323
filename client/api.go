// Package client is the in-process counterpart of the browser app: a typed
// REST client, the per-view polling synchronizer and the pre-order cart.
// All client-side checks are advisory; the server re-validates everything.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/entity"
)

type API struct {
	BaseURL string
	HTTP    *http.Client

	// Bearer token for the staff boards; empty for the customer flow.
	Token string
}

func NewAPI(baseURL string) *API {
	return &API{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// APIError is a non-2xx answer, decoded from the response envelope.
type APIError struct {
	Status  int
	Message string
	Reason  string // decline reason when the card terminal said no
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Retryable reports whether the action should be offered again to the user
// (transient failure or a simulated decline), as opposed to a rejection the
// state machine will repeat.
func (e *APIError) Retryable() bool {
	return e.Status == http.StatusPaymentRequired || e.Status >= 500
}

// ----- Orders -----

func (a *API) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*entity.Order, error) {
	var o entity.Order
	err := a.do(ctx, http.MethodPost, "/orders", req, &o)
	return &o, err
}

func (a *API) Order(ctx context.Context, id uint) (*entity.Order, error) {
	var o entity.Order
	err := a.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, &o)
	return &o, err
}

func (a *API) OrderByNumero(ctx context.Context, numeroPedido string) (*entity.Order, error) {
	var o entity.Order
	err := a.do(ctx, http.MethodGet, "/orders/numero/"+numeroPedido, nil, &o)
	return &o, err
}

func (a *API) PendingOrders(ctx context.Context) ([]entity.Order, error) {
	return a.orderList(ctx, "/orders/pending")
}

func (a *API) ActiveOrders(ctx context.Context) ([]entity.Order, error) {
	return a.orderList(ctx, "/orders/active")
}

func (a *API) ReadyToPayOrders(ctx context.Context) ([]entity.Order, error) {
	return a.orderList(ctx, "/orders/ready-to-pay")
}

func (a *API) OrdersByTable(ctx context.Context, numeroMesa int) ([]entity.Order, error) {
	return a.orderList(ctx, fmt.Sprintf("/orders/table/%d", numeroMesa))
}

// UpdateOrderStatus sends the wire vocabulary (EN_PREPARACION, ...).
func (a *API) UpdateOrderStatus(ctx context.Context, id uint, estado entity.OrderStatus) (*entity.Order, error) {
	var o entity.Order
	body := map[string]string{"estado": estado.Wire()}
	err := a.do(ctx, http.MethodPatch, fmt.Sprintf("/orders/%d/status", id), body, &o)
	return &o, err
}

func (a *API) AddItems(ctx context.Context, id uint, items []OrderItemRequest) (*entity.Order, error) {
	var o entity.Order
	err := a.do(ctx, http.MethodPost, fmt.Sprintf("/orders/%d/items", id), items, &o)
	return &o, err
}

func (a *API) MarkReadyToPay(ctx context.Context, id uint, metodo entity.PaymentMethod) (*entity.Order, error) {
	var o entity.Order
	body := map[string]string{"metodoPago": metodo.Wire()}
	err := a.do(ctx, http.MethodPost, fmt.Sprintf("/orders/%d/ready-to-pay", id), body, &o)
	return &o, err
}

func (a *API) PayOrder(ctx context.Context, id uint, metodo entity.PaymentMethod) (*entity.Order, error) {
	var o entity.Order
	body := map[string]string{"metodoPago": metodo.Wire()}
	err := a.do(ctx, http.MethodPost, fmt.Sprintf("/orders/%d/pay", id), body, &o)
	return &o, err
}

func (a *API) CancelOrder(ctx context.Context, id uint) error {
	return a.do(ctx, http.MethodDelete, fmt.Sprintf("/orders/%d", id), nil, nil)
}

func (a *API) DismissOrder(ctx context.Context, id uint) error {
	return a.do(ctx, http.MethodDelete, fmt.Sprintf("/orders/%d/dismiss", id), nil, nil)
}

// ----- Tables -----

func (a *API) Tables(ctx context.Context) ([]entity.Table, error) {
	var out struct {
		Items []entity.Table `json:"items"`
	}
	err := a.do(ctx, http.MethodGet, "/tables", nil, &out)
	return out.Items, err
}

// TableByNumero takes the raw deep-link parameter; the server validates it.
func (a *API) TableByNumero(ctx context.Context, numero string) (*entity.Table, error) {
	var t entity.Table
	err := a.do(ctx, http.MethodGet, "/tables/numero/"+numero, nil, &t)
	return &t, err
}

// ReleaseTable takes the table's database id (Table.ID), not its numero.
func (a *API) ReleaseTable(ctx context.Context, tableID uint) (*entity.Table, error) {
	var t entity.Table
	err := a.do(ctx, http.MethodPost, fmt.Sprintf("/tables/%d/release", tableID), nil, &t)
	return &t, err
}

// ----- Auth -----

type LoginResult struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

// Login stores the token on the client for subsequent staff calls.
func (a *API) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var out LoginResult
	body := map[string]string{"email": email, "password": password}
	if err := a.do(ctx, http.MethodPost, "/auth/login", body, &out); err != nil {
		return nil, err
	}
	a.Token = out.Token
	return &out, nil
}

// ----- Request DTOs -----

type OrderItemRequest struct {
	ProductoID    uint   `json:"productoId"`
	Cantidad      int    `json:"cantidad"`
	Observaciones string `json:"observaciones,omitempty"`
}

type CreateOrderRequest struct {
	NumeroMesa int                `json:"numeroMesa"`
	Personas   int                `json:"personas"`
	Items      []OrderItemRequest `json:"items"`
}

// ----- Plumbing -----

type envelope struct {
	OK     bool            `json:"ok"`
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
	Reason string          `json:"reason"`
}

func (a *API) orderList(ctx context.Context, path string) ([]entity.Order, error) {
	var out struct {
		Items []entity.Order `json:"items"`
	}
	err := a.do(ctx, http.MethodGet, path, nil, &out)
	return out.Items, err
}

func (a *API) do(ctx context.Context, method, path string, body, out any) error {
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.BaseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if a.Token != "" {
		req.Header.Set("Authorization", "Bearer "+a.Token)
	}

	res, err := a.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if res.StatusCode >= 300 || !env.OK {
		return &APIError{Status: res.StatusCode, Message: env.Error, Reason: env.Reason}
	}
	if out != nil && env.Data != nil {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}
