package queries

import (
	"time"

	"foodorder/internal/core/domain/model/history"
	"foodorder/internal/core/domain/model/order"
)

// HistoryEntryResponse is the read model of one history row.
type HistoryEntryResponse struct {
	ID              string
	OrderID         string
	FromStatus      int
	ToStatus        int
	FromDescription string
	ToDescription   string
	Reason          string
	Operator        string
	OperatedAt      time.Time
	Remarks         string
}

func toHistoryEntryResponse(e *history.Entry) HistoryEntryResponse {
	return HistoryEntryResponse{
		ID:              e.ID().String(),
		OrderID:         e.OrderID().String(),
		FromStatus:      e.FromCode(),
		ToStatus:        e.ToCode(),
		FromDescription: e.FromDescription(),
		ToDescription:   e.ToDescription(),
		Reason:          e.Reason(),
		Operator:        e.Operator(),
		OperatedAt:      e.OperatedAt(),
		Remarks:         e.Remarks(),
	}
}

func toHistoryEntryResponses(entries []*history.Entry) []HistoryEntryResponse {
	resp := make([]HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, toHistoryEntryResponse(e))
	}
	return resp
}

// statusFromCode keeps unrecognised codes; their String and Description
// report "Unknown".
func statusFromCode(code int) order.Status {
	return order.Status(code)
}
