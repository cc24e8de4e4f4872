package commands

import (
	"errors"
	"fmt"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrCleanupHistoryCommandIsNotConstructed = errors.New(
		"CleanupHistoryCommand must be created via NewCleanupHistoryCommand constructor",
	)
)

// CleanupHistoryCommand removes history entries older than daysToKeep days.
type CleanupHistoryCommand struct { //nolint:recvcheck //using for validation
	daysToKeep int

	guard guard.ConstructorGuard
}

func NewCleanupHistoryCommand(daysToKeep int) (CleanupHistoryCommand, error) {
	cmd := CleanupHistoryCommand{guard: guard.NewConstructorGuard()}

	if err := cmd.setDaysToKeep(daysToKeep); err != nil {
		return CleanupHistoryCommand{}, err
	}

	return cmd, nil
}

func (c CleanupHistoryCommand) Validate() error {
	return c.guard.Validate(ErrCleanupHistoryCommandIsNotConstructed)
}

func (c CleanupHistoryCommand) DaysToKeep() int {
	return c.daysToKeep
}

func (c *CleanupHistoryCommand) setDaysToKeep(days int) error {
	if days <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("daysToKeep", fmt.Errorf("%d is not greater than 0", days))
	}
	c.daysToKeep = days
	return nil
}
