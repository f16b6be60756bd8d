package parcel

import (
	"errors"
	"fmt"

	"gatepass/internal/pkg/errs"
	"gatepass/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of the parcel's content list: what leaves the premises,
// identified by serial number where one exists.
type Item struct {
	serialNumber string
	description  string
	quantity     int
	unitPrice    float64

	guard guard.ConstructorGuard
}

// NewItem creates a validated line item. Description is required, quantity
// must be positive and unit price non-negative. Serial number may be empty
// for unserialised goods.
func NewItem(serialNumber, description string, quantity int, unitPrice float64) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setSerialNumber(serialNumber),
		item.setDescription(description),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item came from NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// SerialNumber returns the item's serial number, empty if unserialised.
func (i Item) SerialNumber() string {
	return i.serialNumber
}

// Description returns the item description.
func (i Item) Description() string {
	return i.description
}

// Quantity returns the number of units.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the declared price per unit.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

func (i *Item) setSerialNumber(serialNumber string) error {
	i.serialNumber = serialNumber
	return nil
}

func (i *Item) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	i.description = description
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%f is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}
