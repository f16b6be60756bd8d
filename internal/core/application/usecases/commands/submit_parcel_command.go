package commands

import (
	"errors"
	"time"

	"gatepass/internal/core/domain/model/kernel"
	"gatepass/internal/core/domain/model/parcel"
	"gatepass/internal/pkg/errs"
	"gatepass/internal/pkg/guard"
)

// SubmitParcelCommand captures everything an employee provides when
// registering an outbound parcel for approval.
type SubmitParcelCommand struct {
	submitterID        kernel.UUID
	recipient          string
	transportation     parcel.TransportationType
	items              []parcel.Item
	dimensions         []parcel.Dimension
	returnable         bool
	returnDate         *time.Time
	requestedManagerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewSubmitParcelCommand creates a validated command. The return date is
// required when the parcel is returnable; the requested manager is optional
// and resolved against the staff directory by the handler.
func NewSubmitParcelCommand(submitterID kernel.UUID, recipient string,
	transportation parcel.TransportationType, items []parcel.Item,
	dimensions []parcel.Dimension, returnable bool, returnDate *time.Time,
	requestedManagerID *kernel.UUID) (SubmitParcelCommand, error) {
	var cmd SubmitParcelCommand

	err := errors.Join(
		cmd.setSubmitterID(submitterID),
		cmd.setRecipient(recipient),
		cmd.setTransportation(transportation),
		cmd.setItems(items),
		cmd.setRequestedManagerID(requestedManagerID),
	)
	if err != nil {
		return SubmitParcelCommand{}, err
	}

	cmd.dimensions = dimensions
	cmd.returnable = returnable
	cmd.returnDate = returnDate
	cmd.guard = guard.NewConstructorGuard()

	return cmd, nil
}

func (c *SubmitParcelCommand) setSubmitterID(submitterID kernel.UUID) error {
	if err := submitterID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("submitterID", err)
	}
	c.submitterID = submitterID
	return nil
}

func (c *SubmitParcelCommand) setRecipient(recipient string) error {
	if recipient == "" {
		return errs.NewValueIsRequiredError("recipient")
	}
	c.recipient = recipient
	return nil
}

func (c *SubmitParcelCommand) setTransportation(transportation parcel.TransportationType) error {
	if err := transportation.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("transportation", err)
	}
	c.transportation = transportation
	return nil
}

func (c *SubmitParcelCommand) setItems(items []parcel.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	c.items = items
	return nil
}

func (c *SubmitParcelCommand) setRequestedManagerID(requestedManagerID *kernel.UUID) error {
	if requestedManagerID == nil {
		return nil
	}
	if err := requestedManagerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("requestedManagerID", err)
	}
	c.requestedManagerID = requestedManagerID
	return nil
}

func (c *SubmitParcelCommand) SubmitterID() kernel.UUID     { return c.submitterID }
func (c *SubmitParcelCommand) Recipient() string            { return c.recipient }
func (c *SubmitParcelCommand) Items() []parcel.Item         { return c.items }
func (c *SubmitParcelCommand) Dimensions() []parcel.Dimension {
	return c.dimensions
}
func (c *SubmitParcelCommand) Transportation() parcel.TransportationType {
	return c.transportation
}
func (c *SubmitParcelCommand) Returnable() bool        { return c.returnable }
func (c *SubmitParcelCommand) ReturnDate() *time.Time  { return c.returnDate }
func (c *SubmitParcelCommand) RequestedManagerID() *kernel.UUID {
	return c.requestedManagerID
}

// Validate checks that the command was created through the constructor.
func (c *SubmitParcelCommand) Validate() error {
	return c.guard.Validate(errs.NewValueIsRequiredError("SubmitParcelCommand"))
}
