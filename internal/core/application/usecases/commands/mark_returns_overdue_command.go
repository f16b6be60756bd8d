package commands

import (
	"gatepass/internal/pkg/errs"
	"gatepass/internal/pkg/guard"
)

// MarkReturnsOverdueCommand asks the sweep to persist the overdue state on
// every dispatched returnable parcel whose return date has passed without
// a confirmation. It carries no parameters; the sweep always works off the
// current clock.
type MarkReturnsOverdueCommand struct {
	guard guard.ConstructorGuard
}

// NewMarkReturnsOverdueCommand creates a validated command.
func NewMarkReturnsOverdueCommand() (MarkReturnsOverdueCommand, error) {
	return MarkReturnsOverdueCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the command was created through the constructor.
func (c *MarkReturnsOverdueCommand) Validate() error {
	return c.guard.Validate(errs.NewValueIsRequiredError("MarkReturnsOverdueCommand"))
}
