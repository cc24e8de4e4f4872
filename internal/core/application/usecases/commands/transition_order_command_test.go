package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionOrderCommand(t *testing.T) {
	t.Run("should resolve id and status code", func(t *testing.T) {
		cmd, err := commands.NewTransitionOrderCommand("ORDabc", 2, "kitchen done", "chef", "bag 4")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "ORDabc", cmd.OrderID().String())
		assert.Equal(t, order.Delivering, cmd.Target())
		assert.Equal(t, "kitchen done", cmd.Reason())
		assert.Equal(t, "chef", cmd.Operator())
		assert.Equal(t, "bag 4", cmd.Remarks())
	})

	t.Run("should reject unknown status and bad id together", func(t *testing.T) {
		_, err := commands.NewTransitionOrderCommand("", 9, "", "", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		require.ErrorIs(t, commands.TransitionOrderCommand{}.Validate(), commands.ErrTransitionOrderCommandIsNotConstructed)
	})
}

func TestParseAction(t *testing.T) {
	for _, name := range []string{"pay", "start-delivery", "confirm-delivery", "cancel", "refund", "complete-refund"} {
		action, err := commands.ParseAction(name)
		require.NoError(t, err)
		assert.Equal(t, name, action.String())
	}

	_, err := commands.ParseAction("teleport")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, "unknown", commands.Action(0).String())
}

func TestNewOrderActionCommand(t *testing.T) {
	cmd, err := commands.NewOrderActionCommand("ORDabc", commands.ActionCancel, "changed mind", "alice")
	require.NoError(t, err)
	assert.Equal(t, commands.ActionCancel, cmd.Action())
	assert.Equal(t, "changed mind", cmd.Reason())

	_, err = commands.NewOrderActionCommand("ORDabc", commands.Action(42), "", "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	require.ErrorIs(t, commands.OrderActionCommand{}.Validate(), commands.ErrOrderActionCommandIsNotConstructed)
}

func TestNewCleanupHistoryCommand(t *testing.T) {
	cmd, err := commands.NewCleanupHistoryCommand(30)
	require.NoError(t, err)
	assert.Equal(t, 30, cmd.DaysToKeep())

	for _, days := range []int{0, -5} {
		_, err = commands.NewCleanupHistoryCommand(days)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}
