package http

import (
	"time"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/order"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type CreateOrderItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type CreateOrderRequest struct {
	CustomerID string            `json:"customerId"`
	Items      []CreateOrderItem `json:"items"`
	Address    string            `json:"address"`
	Phone      string            `json:"phone"`
}

// TransitionRequest drives the generic transition endpoint. TargetStatus is
// a status code and is required.
type TransitionRequest struct {
	TargetStatus *int   `json:"targetStatus"`
	Reason       string `json:"reason"`
	Operator     string `json:"operator"`
	Remarks      string `json:"remarks"`
}

// ActionRequest is the optional body of the named operations.
type ActionRequest struct {
	Reason   string `json:"reason"`
	Operator string `json:"operator"`
}

type OrderItem struct {
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	UnitPrice   string `json:"unitPrice"`
	Quantity    int    `json:"quantity"`
	Subtotal    string `json:"subtotal"`
}

type Order struct {
	OrderID           string      `json:"orderId"`
	CustomerID        string      `json:"customerId"`
	Address           string      `json:"address"`
	Phone             string      `json:"phone"`
	Total             string      `json:"total"`
	Status            int         `json:"status"`
	StatusDescription string      `json:"statusDescription"`
	Version           int         `json:"version"`
	CreatedAt         time.Time   `json:"createdAt"`
	Items             []OrderItem `json:"items"`
}

type OrderSummary struct {
	OrderID           string    `json:"orderId"`
	Total             string    `json:"total"`
	Status            int       `json:"status"`
	StatusDescription string    `json:"statusDescription"`
	CreatedAt         time.Time `json:"createdAt"`
}

type StatusRef struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
}

type AvailableTransitions struct {
	OrderID     string      `json:"orderId"`
	Current     StatusRef   `json:"current"`
	Available   []StatusRef `json:"available"`
	IsFinal     bool        `json:"isFinal"`
	Cancellable bool        `json:"cancellable"`
	Refundable  bool        `json:"refundable"`
}

type HistoryEntry struct {
	ID              string    `json:"id"`
	OrderID         string    `json:"orderId"`
	FromStatus      int       `json:"fromStatus"`
	ToStatus        int       `json:"toStatus"`
	FromDescription string    `json:"fromDescription"`
	ToDescription   string    `json:"toDescription"`
	Reason          string    `json:"reason"`
	Operator        string    `json:"operator"`
	OperatedAt      time.Time `json:"operatedAt"`
	Remarks         string    `json:"remarks,omitempty"`
}

type HistorySummary struct {
	OrderID string        `json:"orderId"`
	Count   int64         `json:"count"`
	Latest  *HistoryEntry `json:"latest"`
}

type ReachedStatus struct {
	OrderID string    `json:"orderId"`
	Status  StatusRef `json:"status"`
	Reached bool      `json:"reached"`
}

func orderFromDomain(o *order.Order) Order {
	items := make([]OrderItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItem{
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice().StringFixed(2),
			Quantity:    item.Quantity(),
			Subtotal:    item.Subtotal().StringFixed(2),
		})
	}

	return Order{
		OrderID:           o.ID().String(),
		CustomerID:        o.CustomerID(),
		Address:           o.Address(),
		Phone:             o.Phone(),
		Total:             o.Total().StringFixed(2),
		Status:            o.Status().Code(),
		StatusDescription: o.Status().Description(),
		Version:           o.Version(),
		CreatedAt:         o.CreatedAt(),
		Items:             items,
	}
}

func orderFromQuery(resp *queries.GetOrderQueryResponse) Order {
	items := make([]OrderItem, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice.StringFixed(2),
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal.StringFixed(2),
		})
	}

	return Order{
		OrderID:           resp.OrderID,
		CustomerID:        resp.CustomerID,
		Address:           resp.Address,
		Phone:             resp.Phone,
		Total:             resp.Total.StringFixed(2),
		Status:            resp.Status.Code(),
		StatusDescription: resp.StatusDescription,
		Version:           resp.Version,
		CreatedAt:         resp.CreatedAt,
		Items:             items,
	}
}

func statusRef(s order.Status) StatusRef {
	return StatusRef{Code: s.Code(), Description: s.Description()}
}

func historyFromQuery(e queries.HistoryEntryResponse) HistoryEntry {
	return HistoryEntry{
		ID:              e.ID,
		OrderID:         e.OrderID,
		FromStatus:      e.FromStatus,
		ToStatus:        e.ToStatus,
		FromDescription: e.FromDescription,
		ToDescription:   e.ToDescription,
		Reason:          e.Reason,
		Operator:        e.Operator,
		OperatedAt:      e.OperatedAt,
		Remarks:         e.Remarks,
	}
}

func historyListFromQuery(entries []queries.HistoryEntryResponse) []HistoryEntry {
	resp := make([]HistoryEntry, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, historyFromQuery(e))
	}
	return resp
}
