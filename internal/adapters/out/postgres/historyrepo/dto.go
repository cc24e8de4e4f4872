// Package historyrepo persists the append-only order_history table.
package historyrepo

import (
	"time"

	"foodorder/internal/core/domain/model/history"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// HistoryDTO is one row of order_history. Rows are only ever inserted and,
// by the retention job, deleted.
type HistoryDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        string    `gorm:"type:varchar(32);not null;index:idx_order_history_order_time,priority:1"`
	FromStatus     int       `gorm:"type:smallint;not null"`
	ToStatus       int       `gorm:"type:smallint;not null"`
	FromStatusDesc string    `gorm:"type:varchar(64);not null"`
	ToStatusDesc   string    `gorm:"type:varchar(64);not null"`
	Reason         string    `gorm:"type:varchar(255)"`
	Operator       string    `gorm:"type:varchar(64);not null;index:idx_order_history_operator"`
	OperatedAt     time.Time `gorm:"not null;index:idx_order_history_order_time,priority:2,sort:desc"`
	Remarks        string    `gorm:"type:text"`
}

func (HistoryDTO) TableName() string {
	return "order_history"
}

func fromDomain(e *history.Entry) HistoryDTO {
	return HistoryDTO{
		ID:             e.ID().Bytes(),
		OrderID:        e.OrderID().String(),
		FromStatus:     e.FromCode(),
		ToStatus:       e.ToCode(),
		FromStatusDesc: e.FromDescription(),
		ToStatusDesc:   e.ToDescription(),
		Reason:         e.Reason(),
		Operator:       e.Operator(),
		OperatedAt:     e.OperatedAt(),
		Remarks:        e.Remarks(),
	}
}

func toDomain(dto HistoryDTO) (*history.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.OrderIDFromString(dto.OrderID)
	if err != nil {
		return nil, err
	}

	return history.RestoreEntry(id, orderID, dto.FromStatus, dto.ToStatus,
		dto.FromStatusDesc, dto.ToStatusDesc, dto.Reason, dto.Operator, dto.OperatedAt, dto.Remarks)
}

func toDomainList(dtos []HistoryDTO) ([]*history.Entry, error) {
	entries := make([]*history.Entry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
