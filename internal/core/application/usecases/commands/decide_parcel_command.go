package commands

import (
	"errors"

	"gatepass/internal/core/domain/model/kernel"
	"gatepass/internal/pkg/errs"
	"gatepass/internal/pkg/guard"
)

// Decision is a manager's verdict on a submitted parcel.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// Validate checks that the decision is one of the known verdicts.
func (d Decision) Validate() error {
	switch d {
	case DecisionApprove, DecisionReject:
		return nil
	default:
		return errs.NewValueIsInvalidError("decision")
	}
}

// String returns the string representation of the decision.
func (d Decision) String() string {
	return string(d)
}

// DecideParcelCommand records a manager's approve or reject verdict on a
// pending parcel. A rejection must carry a reason; an approval must not
// require one.
type DecideParcelCommand struct {
	parcelID  kernel.UUID
	managerID kernel.UUID
	decision  Decision
	reason    string

	guard guard.ConstructorGuard
}

// NewDecideParcelCommand creates a validated command.
func NewDecideParcelCommand(parcelID, managerID kernel.UUID, decision Decision,
	reason string) (DecideParcelCommand, error) {
	var cmd DecideParcelCommand

	err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setManagerID(managerID),
		cmd.setDecision(decision, reason),
	)
	if err != nil {
		return DecideParcelCommand{}, err
	}

	cmd.guard = guard.NewConstructorGuard()

	return cmd, nil
}

func (c *DecideParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("parcelID", err)
	}
	c.parcelID = parcelID
	return nil
}

func (c *DecideParcelCommand) setManagerID(managerID kernel.UUID) error {
	if err := managerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("managerID", err)
	}
	c.managerID = managerID
	return nil
}

func (c *DecideParcelCommand) setDecision(decision Decision, reason string) error {
	if err := decision.Validate(); err != nil {
		return err
	}
	if decision == DecisionReject && reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.decision = decision
	c.reason = reason
	return nil
}

func (c *DecideParcelCommand) ParcelID() kernel.UUID  { return c.parcelID }
func (c *DecideParcelCommand) ManagerID() kernel.UUID { return c.managerID }
func (c *DecideParcelCommand) Decision() Decision     { return c.decision }
func (c *DecideParcelCommand) Reason() string         { return c.reason }

// Validate checks that the command was created through the constructor.
func (c *DecideParcelCommand) Validate() error {
	return c.guard.Validate(errs.NewValueIsRequiredError("DecideParcelCommand"))
}
