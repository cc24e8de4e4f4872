package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(" alice ", []commands.CreateOrderLine{
		{ProductID: 2, Quantity: 1},
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 3},
	}, "1 Main St", "555-0100")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "alice", cmd.CustomerID())
	assert.Equal(t, "1 Main St", cmd.Address())
	assert.Equal(t, "555-0100", cmd.Phone())
	assert.Equal(t, []services.LineRequest{
		{ProductID: 2, Quantity: 1},
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 3},
	}, cmd.Lines())
	assert.Equal(t, []int64{1, 2}, cmd.ProductIDs())
}

func TestNewCreateOrderCommand_BlankFields(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("", []commands.CreateOrderLine{{ProductID: 1, Quantity: 1}}, " ", "")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "customerId")
	assert.Contains(t, err.Error(), "address")
	assert.Contains(t, err.Error(), "phone")
}

func TestNewCreateOrderCommand_EmptyLines(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("alice", nil, "addr", "phone")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "items")
}

func TestNewCreateOrderCommand_OneBadLineRejectsAll(t *testing.T) {
	tests := []struct {
		name  string
		lines []commands.CreateOrderLine
		param string
	}{
		{"zero quantity", []commands.CreateOrderLine{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 0}}, "items[1].quantity"},
		{"negative quantity", []commands.CreateOrderLine{{ProductID: 1, Quantity: -1}}, "items[0].quantity"},
		{"zero product", []commands.CreateOrderLine{{ProductID: 0, Quantity: 1}}, "items[0].productId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := commands.NewCreateOrderCommand("alice", tt.lines, "addr", "phone")

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), tt.param)
			assert.Error(t, cmd.Validate())
		})
	}
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	err := commands.CreateOrderCommand{}.Validate()

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
