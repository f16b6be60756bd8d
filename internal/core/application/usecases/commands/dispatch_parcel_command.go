package commands

import (
	"errors"

	"gatepass/internal/core/domain/model/kernel"
	"gatepass/internal/pkg/errs"
	"gatepass/internal/pkg/guard"
)

// DispatchParcelCommand records that an approved parcel physically left
// the premises.
type DispatchParcelCommand struct {
	parcelID kernel.UUID
	actorID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewDispatchParcelCommand creates a validated command.
func NewDispatchParcelCommand(parcelID, actorID kernel.UUID) (DispatchParcelCommand, error) {
	var cmd DispatchParcelCommand

	err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setActorID(actorID),
	)
	if err != nil {
		return DispatchParcelCommand{}, err
	}

	cmd.guard = guard.NewConstructorGuard()

	return cmd, nil
}

func (c *DispatchParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("parcelID", err)
	}
	c.parcelID = parcelID
	return nil
}

func (c *DispatchParcelCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actorID", err)
	}
	c.actorID = actorID
	return nil
}

func (c *DispatchParcelCommand) ParcelID() kernel.UUID { return c.parcelID }
func (c *DispatchParcelCommand) ActorID() kernel.UUID  { return c.actorID }

// Validate checks that the command was created through the constructor.
func (c *DispatchParcelCommand) Validate() error {
	return c.guard.Validate(errs.NewValueIsRequiredError("DispatchParcelCommand"))
}
