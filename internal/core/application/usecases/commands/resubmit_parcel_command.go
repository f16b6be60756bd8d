package commands

import (
	"errors"
	"time"

	"gatepass/internal/core/domain/model/kernel"
	"gatepass/internal/core/domain/model/parcel"
	"gatepass/internal/pkg/errs"
	"gatepass/internal/pkg/guard"
)

// ResubmitParcelCommand creates a fresh parcel from a rejected one. The
// actor must be the original submitter; every field may be corrected, and
// the new parcel gets its own gate pass number.
type ResubmitParcelCommand struct {
	rejectedParcelID   kernel.UUID
	actorID            kernel.UUID
	recipient          string
	transportation     parcel.TransportationType
	items              []parcel.Item
	dimensions         []parcel.Dimension
	returnable         bool
	returnDate         *time.Time
	requestedManagerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewResubmitParcelCommand creates a validated command.
func NewResubmitParcelCommand(rejectedParcelID, actorID kernel.UUID, recipient string,
	transportation parcel.TransportationType, items []parcel.Item,
	dimensions []parcel.Dimension, returnable bool, returnDate *time.Time,
	requestedManagerID *kernel.UUID) (ResubmitParcelCommand, error) {
	var cmd ResubmitParcelCommand

	err := errors.Join(
		cmd.setRejectedParcelID(rejectedParcelID),
		cmd.setActorID(actorID),
		cmd.setRecipient(recipient),
		cmd.setTransportation(transportation),
		cmd.setItems(items),
		cmd.setRequestedManagerID(requestedManagerID),
	)
	if err != nil {
		return ResubmitParcelCommand{}, err
	}

	cmd.dimensions = dimensions
	cmd.returnable = returnable
	cmd.returnDate = returnDate
	cmd.guard = guard.NewConstructorGuard()

	return cmd, nil
}

func (c *ResubmitParcelCommand) setRejectedParcelID(rejectedParcelID kernel.UUID) error {
	if err := rejectedParcelID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("rejectedParcelID", err)
	}
	c.rejectedParcelID = rejectedParcelID
	return nil
}

func (c *ResubmitParcelCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actorID", err)
	}
	c.actorID = actorID
	return nil
}

func (c *ResubmitParcelCommand) setRecipient(recipient string) error {
	if recipient == "" {
		return errs.NewValueIsRequiredError("recipient")
	}
	c.recipient = recipient
	return nil
}

func (c *ResubmitParcelCommand) setTransportation(transportation parcel.TransportationType) error {
	if err := transportation.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("transportation", err)
	}
	c.transportation = transportation
	return nil
}

func (c *ResubmitParcelCommand) setItems(items []parcel.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	c.items = items
	return nil
}

func (c *ResubmitParcelCommand) setRequestedManagerID(requestedManagerID *kernel.UUID) error {
	if requestedManagerID == nil {
		return nil
	}
	if err := requestedManagerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("requestedManagerID", err)
	}
	c.requestedManagerID = requestedManagerID
	return nil
}

func (c *ResubmitParcelCommand) RejectedParcelID() kernel.UUID { return c.rejectedParcelID }
func (c *ResubmitParcelCommand) ActorID() kernel.UUID          { return c.actorID }
func (c *ResubmitParcelCommand) Recipient() string             { return c.recipient }
func (c *ResubmitParcelCommand) Transportation() parcel.TransportationType {
	return c.transportation
}
func (c *ResubmitParcelCommand) Items() []parcel.Item { return c.items }
func (c *ResubmitParcelCommand) Dimensions() []parcel.Dimension {
	return c.dimensions
}
func (c *ResubmitParcelCommand) Returnable() bool       { return c.returnable }
func (c *ResubmitParcelCommand) ReturnDate() *time.Time { return c.returnDate }
func (c *ResubmitParcelCommand) RequestedManagerID() *kernel.UUID {
	return c.requestedManagerID
}

// Validate checks that the command was created through the constructor.
func (c *ResubmitParcelCommand) Validate() error {
	return c.guard.Validate(errs.NewValueIsRequiredError("ResubmitParcelCommand"))
}
