package commands

import (
	"gatepass/internal/core/domain/model/gatepass"
	"gatepass/internal/pkg/errs"
	"gatepass/internal/pkg/guard"
)

// GenerateGatePassCommand requests a standalone gate pass number for the
// given pass type, outside of a parcel submission. The consumed sequence
// is not returned to the counter if the number ends up unused.
type GenerateGatePassCommand struct {
	passType gatepass.PassType

	guard guard.ConstructorGuard
}

// NewGenerateGatePassCommand creates a validated command.
func NewGenerateGatePassCommand(passType gatepass.PassType) (GenerateGatePassCommand, error) {
	var cmd GenerateGatePassCommand

	if err := cmd.setPassType(passType); err != nil {
		return GenerateGatePassCommand{}, err
	}

	cmd.guard = guard.NewConstructorGuard()

	return cmd, nil
}

func (c *GenerateGatePassCommand) setPassType(passType gatepass.PassType) error {
	if err := passType.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("passType", err)
	}
	c.passType = passType
	return nil
}

func (c *GenerateGatePassCommand) PassType() gatepass.PassType {
	return c.passType
}

// Validate checks that the command was created through the constructor.
func (c *GenerateGatePassCommand) Validate() error {
	return c.guard.Validate(errs.NewValueIsRequiredError("GenerateGatePassCommand"))
}
