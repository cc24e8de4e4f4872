package queries

import (
	"context"
	"errors"
	"strings"

	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetHistoryByOperatorQueryIsNotConstructed = errors.New(
		"GetHistoryByOperatorQuery must be created via NewGetHistoryByOperatorQuery constructor",
	)
)

// GetHistoryByOperatorQuery lists every change made by one operator.
type GetHistoryByOperatorQuery struct {
	operator string

	guard guard.ConstructorGuard
}

func NewGetHistoryByOperatorQuery(operator string) (GetHistoryByOperatorQuery, error) {
	operator = strings.TrimSpace(operator)
	if operator == "" {
		return GetHistoryByOperatorQuery{}, errs.NewValueIsRequiredError("operator")
	}
	return GetHistoryByOperatorQuery{operator: operator, guard: guard.NewConstructorGuard()}, nil
}

func (q GetHistoryByOperatorQuery) Validate() error {
	return q.guard.Validate(ErrGetHistoryByOperatorQueryIsNotConstructed)
}

func (q GetHistoryByOperatorQuery) Operator() string {
	return q.operator
}

type GetHistoryByOperatorQueryHandler struct {
	historyRepo ports.HistoryRepository
}

func NewGetHistoryByOperatorQueryHandler(historyRepo ports.HistoryRepository) GetHistoryByOperatorQueryHandler {
	return GetHistoryByOperatorQueryHandler{historyRepo: historyRepo}
}

func (h GetHistoryByOperatorQueryHandler) Handle(
	ctx context.Context,
	query GetHistoryByOperatorQuery,
) ([]HistoryEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries, err := h.historyRepo.ByOperator(ctx, query.Operator())
	if err != nil {
		return nil, err
	}

	return toHistoryEntryResponses(entries), nil
}
