package commands

import (
	"gatepass/internal/core/domain/model/kernel"
	"gatepass/internal/pkg/errs"
	"gatepass/internal/pkg/guard"
)

// ConfirmReturnCommand records that a returnable parcel physically came
// back. A late return is still confirmable; confirmation wins over any
// derived overdue state.
type ConfirmReturnCommand struct {
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmReturnCommand creates a validated command.
func NewConfirmReturnCommand(parcelID kernel.UUID) (ConfirmReturnCommand, error) {
	var cmd ConfirmReturnCommand

	if err := cmd.setParcelID(parcelID); err != nil {
		return ConfirmReturnCommand{}, err
	}

	cmd.guard = guard.NewConstructorGuard()

	return cmd, nil
}

func (c *ConfirmReturnCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("parcelID", err)
	}
	c.parcelID = parcelID
	return nil
}

func (c *ConfirmReturnCommand) ParcelID() kernel.UUID { return c.parcelID }

// Validate checks that the command was created through the constructor.
func (c *ConfirmReturnCommand) Validate() error {
	return c.guard.Validate(errs.NewValueIsRequiredError("ConfirmReturnCommand"))
}
