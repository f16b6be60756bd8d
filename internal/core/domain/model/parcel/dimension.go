package parcel

import (
	"errors"
	"fmt"

	"gatepass/internal/pkg/errs"
	"gatepass/internal/pkg/guard"
)

// ErrDimensionIsNotConstructed is returned when a Dimension was not created through NewDimension.
var ErrDimensionIsNotConstructed = errors.New("Dimension must be created via NewDimension constructor")

// Dimension records one measured aspect of the parcel: a weight with its
// unit, a free-text dimension string, and the purpose of the measurement.
// Logistics typically appends dimensions after packing.
type Dimension struct {
	weight        float64
	weightUnit    string
	dimensionText string
	purpose       string

	guard guard.ConstructorGuard
}

// NewDimension creates a validated dimension record. Weight must be positive
// and carry a unit; the dimension text and purpose are free-form and optional.
func NewDimension(weight float64, weightUnit, dimensionText, purpose string) (Dimension, error) {
	dimension := Dimension{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		dimension.setWeight(weight),
		dimension.setWeightUnit(weightUnit),
	); err != nil {
		return Dimension{}, err
	}

	dimension.dimensionText = dimensionText
	dimension.purpose = purpose
	return dimension, nil
}

// Validate ensures the Dimension came from NewDimension.
func (d Dimension) Validate() error {
	return d.guard.Validate(ErrDimensionIsNotConstructed)
}

// Weight returns the measured weight.
func (d Dimension) Weight() float64 {
	return d.weight
}

// WeightUnit returns the unit the weight was measured in.
func (d Dimension) WeightUnit() string {
	return d.weightUnit
}

// DimensionText returns the free-text dimension description.
func (d Dimension) DimensionText() string {
	return d.dimensionText
}

// Purpose returns why the measurement was taken.
func (d Dimension) Purpose() string {
	return d.purpose
}

func (d *Dimension) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%f is not greater than 0", weight))
	}
	d.weight = weight
	return nil
}

func (d *Dimension) setWeightUnit(weightUnit string) error {
	if weightUnit == "" {
		return errs.NewValueIsRequiredError("weightUnit")
	}
	d.weightUnit = weightUnit
	return nil
}
