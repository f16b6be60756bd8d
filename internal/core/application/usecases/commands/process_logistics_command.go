package commands

import (
	"errors"

	"gatepass/internal/core/domain/model/kernel"
	"gatepass/internal/core/domain/model/parcel"
	"gatepass/internal/pkg/errs"
	"gatepass/internal/pkg/guard"
)

// ProcessLogisticsCommand carries the enrichment the logistics desk adds
// to a courier parcel before it becomes visible to managers: carrier
// details, measured dimensions and after-packing photos.
type ProcessLogisticsCommand struct {
	parcelID              kernel.UUID
	courierName           string
	courierTrackingNumber string
	dimensions            []parcel.Dimension
	imageRefs             []string

	guard guard.ConstructorGuard
}

// NewProcessLogisticsCommand creates a validated command. The tracking
// number, dimensions and images are optional; the courier name is not.
func NewProcessLogisticsCommand(parcelID kernel.UUID, courierName, courierTrackingNumber string,
	dimensions []parcel.Dimension, imageRefs []string) (ProcessLogisticsCommand, error) {
	var cmd ProcessLogisticsCommand

	err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setCourierName(courierName),
	)
	if err != nil {
		return ProcessLogisticsCommand{}, err
	}

	cmd.courierTrackingNumber = courierTrackingNumber
	cmd.dimensions = dimensions
	cmd.imageRefs = imageRefs
	cmd.guard = guard.NewConstructorGuard()

	return cmd, nil
}

func (c *ProcessLogisticsCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("parcelID", err)
	}
	c.parcelID = parcelID
	return nil
}

func (c *ProcessLogisticsCommand) setCourierName(courierName string) error {
	if courierName == "" {
		return errs.NewValueIsRequiredError("courierName")
	}
	c.courierName = courierName
	return nil
}

func (c *ProcessLogisticsCommand) ParcelID() kernel.UUID { return c.parcelID }
func (c *ProcessLogisticsCommand) CourierName() string   { return c.courierName }
func (c *ProcessLogisticsCommand) CourierTrackingNumber() string {
	return c.courierTrackingNumber
}
func (c *ProcessLogisticsCommand) Dimensions() []parcel.Dimension {
	return c.dimensions
}
func (c *ProcessLogisticsCommand) ImageRefs() []string { return c.imageRefs }

// Validate checks that the command was created through the constructor.
func (c *ProcessLogisticsCommand) Validate() error {
	return c.guard.Validate(errs.NewValueIsRequiredError("ProcessLogisticsCommand"))
}
