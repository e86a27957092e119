package commands

import (
	"errors"

	"orderalerts/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrProcessOrdersCommandIsNotConstructed = errors.New(
		"ProcessOrdersCommand must be created via NewProcessOrdersCommand constructor",
	)
)

// ProcessOrdersCommand triggers one reconciliation pass over the current order batch.
// Every command carries a fresh run id so log records of one pass can be correlated.
//
// Example:
//
//	cmd := NewProcessOrdersCommand()
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order processing failed: %w", err)
//	}
type ProcessOrdersCommand struct {
	runID uuid.UUID

	guard guard.ConstructorGuard
}

// NewProcessOrdersCommand creates a command for a single pass with a new run id.
func NewProcessOrdersCommand() ProcessOrdersCommand {
	return ProcessOrdersCommand{
		runID: uuid.New(),
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrProcessOrdersCommandIsNotConstructed if validation fails.
func (c ProcessOrdersCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrdersCommandIsNotConstructed)
}

// RunID returns the identifier of the pass.
func (c ProcessOrdersCommand) RunID() uuid.UUID {
	return c.runID
}
