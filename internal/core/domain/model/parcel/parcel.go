package parcel

import (
	"errors"
	"fmt"
	"time"

	"gatepass/internal/core/domain/model/gatepass"
	"gatepass/internal/core/domain/model/kernel"
	"gatepass/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not
	// created through NewParcel, NewResubmission or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel, NewResubmission or RestoreParcel")

	// ErrPassTypeMismatch is returned when the gate-pass number namespace does
	// not match the parcel's returnable flag.
	ErrPassTypeMismatch = errors.New("gate pass namespace does not match returnable flag")
)

// Parcel is the aggregate root of the dispatch-approval workflow.
//
// Invariants:
//   - The gate-pass number is assigned at submission and immutable; its
//     namespace (RGP/NRGP) matches the returnable flag.
//   - Items are never empty.
//   - Approval and rejection require an acting manager; an unassigned parcel
//     is claimed by the first manager who decides it.
//   - A courier parcel can only be decided after logistics processing.
//   - A returnable parcel carries a return date on or after its submission day.
//
// Parcels are never deleted. A rejected parcel superseded by a resubmission
// stays in storage; active-work queries exclude it by reference lookup.
type Parcel struct {
	id     kernel.UUID
	number gatepass.Number

	status         Status
	transportation TransportationType

	// logistics gate, meaningful only for courier transport
	logisticsProcessed    bool
	courierName           string
	courierTrackingNumber string
	afterPackingImageRefs []string

	returnable   bool
	returnDate   *time.Time
	returnStatus ReturnStatus

	submitterID       kernel.UUID
	recipient         string
	assignedManagerID *kernel.UUID

	items      []Item
	dimensions []Dimension

	submittedAt     time.Time
	approvedAt      *time.Time
	approvedBy      *kernel.UUID
	rejectedAt      *time.Time
	rejectedBy      *kernel.UUID
	rejectionReason string
	dispatchedAt    *time.Time

	resubmitted       bool
	previousRejection *kernel.UUID

	// version backs the optimistic concurrency check in the repository
	version int

	isConstructed bool
}

// NewParcel creates a parcel in Submitted status. All submission-time
// invariants are checked here; a validation failure reports every failing
// field through errors.Join and nothing is constructed.
func NewParcel(
	id kernel.UUID,
	number gatepass.Number,
	submitterID kernel.UUID,
	recipient string,
	transportation TransportationType,
	items []Item,
	dimensions []Dimension,
	returnable bool,
	returnDate *time.Time,
	assignedManagerID *kernel.UUID,
	now time.Time,
) (*Parcel, error) {
	p := &Parcel{
		status:        Submitted,
		returnable:    returnable,
		submittedAt:   now,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setNumber(number),
		p.setSubmitter(submitterID),
		p.setRecipient(recipient),
		p.setTransportation(transportation),
		p.setItems(items),
		p.setDimensions(dimensions),
		p.setReturnDate(returnDate, now),
		p.setAssignedManager(assignedManagerID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// NewResubmission creates a new Submitted parcel superseding a rejected one.
// Employee-editable fields come from the caller; the submitter carries over
// from the original. The new parcel gets a fresh gate-pass number and links
// back through PreviousRejection; the original is left untouched.
func NewResubmission(
	original *Parcel,
	id kernel.UUID,
	number gatepass.Number,
	recipient string,
	transportation TransportationType,
	items []Item,
	dimensions []Dimension,
	returnable bool,
	returnDate *time.Time,
	assignedManagerID *kernel.UUID,
	now time.Time,
) (*Parcel, error) {
	if err := original.Validate(); err != nil {
		return nil, err
	}
	if err := original.status.ValidateResubmittable(); err != nil {
		return nil, err
	}

	p, err := NewParcel(id, number, original.submitterID, recipient, transportation,
		items, dimensions, returnable, returnDate, assignedManagerID, now)
	if err != nil {
		return nil, err
	}

	originalID := original.id
	p.resubmitted = true
	p.previousRejection = &originalID
	return p, nil
}

// RestoreParcelParams carries the persisted state of a parcel back into the
// domain. Only the persistence adapter should use it.
type RestoreParcelParams struct {
	ID                    kernel.UUID
	Number                gatepass.Number
	Status                Status
	Transportation        TransportationType
	LogisticsProcessed    bool
	CourierName           string
	CourierTrackingNumber string
	AfterPackingImageRefs []string
	Returnable            bool
	ReturnDate            *time.Time
	ReturnStatus          ReturnStatus
	SubmitterID           kernel.UUID
	Recipient             string
	AssignedManagerID     *kernel.UUID
	Items                 []Item
	Dimensions            []Dimension
	SubmittedAt           time.Time
	ApprovedAt            *time.Time
	ApprovedBy            *kernel.UUID
	RejectedAt            *time.Time
	RejectedBy            *kernel.UUID
	RejectionReason       string
	DispatchedAt          *time.Time
	Resubmitted           bool
	PreviousRejection     *kernel.UUID
	Version               int
}

// RestoreParcel reconstructs a parcel from persistence without re-running
// submission-time validation, but still rejecting structurally invalid state.
func RestoreParcel(params RestoreParcelParams) (*Parcel, error) {
	if err := errors.Join(
		params.ID.Validate(),
		params.Number.Validate(),
		params.Status.Validate(),
		params.Transportation.Validate(),
		params.ReturnStatus.Validate(),
		params.SubmitterID.Validate(),
	); err != nil {
		return nil, err
	}

	if params.Version < 1 {
		return nil, errs.NewVersionIsInvalidError("version", fmt.Errorf("%d is not a positive version", params.Version))
	}

	return &Parcel{
		id:                    params.ID,
		number:                params.Number,
		status:                params.Status,
		transportation:        params.Transportation,
		logisticsProcessed:    params.LogisticsProcessed,
		courierName:           params.CourierName,
		courierTrackingNumber: params.CourierTrackingNumber,
		afterPackingImageRefs: params.AfterPackingImageRefs,
		returnable:            params.Returnable,
		returnDate:            params.ReturnDate,
		returnStatus:          params.ReturnStatus,
		submitterID:           params.SubmitterID,
		recipient:             params.Recipient,
		assignedManagerID:     params.AssignedManagerID,
		items:                 params.Items,
		dimensions:            params.Dimensions,
		submittedAt:           params.SubmittedAt,
		approvedAt:            params.ApprovedAt,
		approvedBy:            params.ApprovedBy,
		rejectedAt:            params.RejectedAt,
		rejectedBy:            params.RejectedBy,
		rejectionReason:       params.RejectionReason,
		dispatchedAt:          params.DispatchedAt,
		resubmitted:           params.Resubmitted,
		previousRejection:     params.PreviousRejection,
		version:               params.Version,
		isConstructed:         true,
	}, nil
}

// Validate ensures the Parcel instance came from a constructor.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by identifier.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// Number returns the gate-pass number assigned at submission.
func (p *Parcel) Number() gatepass.Number {
	return p.number
}

// TrackingNumber returns the tracking code, which is the gate-pass code.
func (p *Parcel) TrackingNumber() string {
	return p.number.Code()
}

// Status returns the current workflow status.
func (p *Parcel) Status() Status {
	return p.status
}

// Transportation returns how the parcel leaves the premises.
func (p *Parcel) Transportation() TransportationType {
	return p.transportation
}

// LogisticsProcessed reports whether logistics completed courier processing.
// Only meaningful for courier transport.
func (p *Parcel) LogisticsProcessed() bool {
	return p.logisticsProcessed
}

// CourierName returns the courier set by logistics, empty until processed.
func (p *Parcel) CourierName() string {
	return p.courierName
}

// CourierTrackingNumber returns the courier's own tracking reference.
func (p *Parcel) CourierTrackingNumber() string {
	return p.courierTrackingNumber
}

// AfterPackingImageRefs returns references to images taken after packing.
func (p *Parcel) AfterPackingImageRefs() []string {
	return p.afterPackingImageRefs
}

// IsReturnable reports whether the parcel is expected back.
func (p *Parcel) IsReturnable() bool {
	return p.returnable
}

// ReturnDate returns the expected return date, nil when not set.
func (p *Parcel) ReturnDate() *time.Time {
	return p.returnDate
}

// ReturnStatus returns the explicitly recorded return status.
// Use EffectiveReturnStatus for the derived value.
func (p *Parcel) ReturnStatus() ReturnStatus {
	return p.returnStatus
}

// SubmitterID returns the employee who submitted the parcel.
func (p *Parcel) SubmitterID() kernel.UUID {
	return p.submitterID
}

// Recipient returns who the parcel is addressed to.
func (p *Parcel) Recipient() string {
	return p.recipient
}

// AssignedManager returns the responsible manager, nil while unassigned.
func (p *Parcel) AssignedManager() *kernel.UUID {
	return p.assignedManagerID
}

// Items returns the parcel's line items.
func (p *Parcel) Items() []Item {
	return p.items
}

// Dimensions returns the recorded measurements.
func (p *Parcel) Dimensions() []Dimension {
	return p.dimensions
}

// SubmittedAt returns the submission timestamp.
func (p *Parcel) SubmittedAt() time.Time {
	return p.submittedAt
}

// ApprovedAt returns when the parcel was approved, nil if it never was.
func (p *Parcel) ApprovedAt() *time.Time {
	return p.approvedAt
}

// ApprovedBy returns the approving manager, nil if never approved.
func (p *Parcel) ApprovedBy() *kernel.UUID {
	return p.approvedBy
}

// RejectedAt returns when the parcel was rejected, nil if it never was.
func (p *Parcel) RejectedAt() *time.Time {
	return p.rejectedAt
}

// RejectedBy returns the rejecting manager, nil if never rejected.
func (p *Parcel) RejectedBy() *kernel.UUID {
	return p.rejectedBy
}

// RejectionReason returns the manager's reason, empty if never rejected.
func (p *Parcel) RejectionReason() string {
	return p.rejectionReason
}

// DispatchedAt returns when the parcel left, nil while undelivered.
func (p *Parcel) DispatchedAt() *time.Time {
	return p.dispatchedAt
}

// Resubmitted reports whether this parcel supersedes a rejected one.
func (p *Parcel) Resubmitted() bool {
	return p.resubmitted
}

// PreviousRejection returns the rejected parcel this one supersedes, nil for
// first submissions.
func (p *Parcel) PreviousRejection() *kernel.UUID {
	return p.previousRejection
}

// Version returns the optimistic-concurrency version loaded from storage.
func (p *Parcel) Version() int {
	return p.version
}

// CompleteLogistics records courier enrichment and opens the logistics gate.
// Only courier parcels in Submitted status accept it.
func (p *Parcel) CompleteLogistics(courierName, courierTrackingNumber string, dimensions []Dimension, imageRefs []string) error {
	if p.transportation != Courier {
		return fmt.Errorf("%w: logistics processing applies only to courier parcels", ErrInvalidTransition)
	}
	if p.status != Submitted {
		return fmt.Errorf("%w: cannot process logistics for a %s parcel", ErrInvalidTransition, p.status)
	}
	if courierName == "" {
		return errs.NewValueIsRequiredError("courierName")
	}
	for _, d := range dimensions {
		if err := d.Validate(); err != nil {
			return err
		}
	}

	p.courierName = courierName
	p.courierTrackingNumber = courierTrackingNumber
	p.dimensions = append(p.dimensions, dimensions...)
	p.afterPackingImageRefs = append(p.afterPackingImageRefs, imageRefs...)
	p.logisticsProcessed = true
	return nil
}

// Approve transitions the parcel to Approved on behalf of a manager.
// The manager must pass the review guard: the parcel is visible to them and
// either already assigned to them or unassigned (first decision claims it).
func (p *Parcel) Approve(managerID kernel.UUID, now time.Time) error {
	if err := p.reviewGuard(managerID); err != nil {
		return err
	}

	newStatus, err := p.status.Approve()
	if err != nil {
		return err
	}

	p.claim(managerID)
	p.status = newStatus
	p.approvedAt = &now
	p.approvedBy = &managerID
	return nil
}

// Reject transitions the parcel to Rejected on behalf of a manager.
// Same guard as Approve, plus a non-empty reason.
func (p *Parcel) Reject(managerID kernel.UUID, reason string, now time.Time) error {
	if err := p.reviewGuard(managerID); err != nil {
		return err
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("rejectionReason")
	}

	newStatus, err := p.status.Reject()
	if err != nil {
		return err
	}

	p.claim(managerID)
	p.status = newStatus
	p.rejectedAt = &now
	p.rejectedBy = &managerID
	p.rejectionReason = reason
	return nil
}

// Dispatch transitions an approved parcel to Dispatched. A returnable parcel
// enters return tracking implicitly: its effective status derives pending
// until the return is confirmed or the date passes.
func (p *Parcel) Dispatch(now time.Time) error {
	newStatus, err := p.status.Dispatch()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.dispatchedAt = &now
	return nil
}

// ConfirmReturn records that a returnable, dispatched parcel came back.
func (p *Parcel) ConfirmReturn() error {
	if !p.returnable {
		return fmt.Errorf("%w: parcel is not returnable", ErrInvalidTransition)
	}
	if p.status != Dispatched {
		return fmt.Errorf("%w: cannot confirm return for a %s parcel", ErrInvalidTransition, p.status)
	}
	if p.returnStatus == Returned {
		return fmt.Errorf("%w: return already confirmed", ErrInvalidTransition)
	}

	p.returnStatus = Returned
	return nil
}

// MarkReturnOverdue flips a dispatched returnable parcel to overdue once its
// return date has passed without an explicit status. Returns true when the
// parcel actually changed. Used by the overdue sweep.
func (p *Parcel) MarkReturnOverdue(now time.Time) bool {
	if !p.returnable || p.status != Dispatched {
		return false
	}
	if p.returnStatus != ReturnStatusNone {
		return false
	}
	if p.returnDate == nil || !p.returnDate.Before(startOfDay(now)) {
		return false
	}

	p.returnStatus = ReturnOverdue
	return true
}

// EffectiveReturnStatus resolves the return status the way callers should see
// it: an explicit status is authoritative; otherwise a past return date
// derives overdue and anything else derives pending. Non-returnable parcels
// have no return status.
func (p *Parcel) EffectiveReturnStatus(now time.Time) ReturnStatus {
	if !p.returnable {
		return ReturnStatusNone
	}
	if p.returnStatus != ReturnStatusNone {
		return p.returnStatus
	}
	if p.returnDate != nil && p.returnDate.Before(startOfDay(now)) {
		return ReturnOverdue
	}
	return ReturnPending
}

// VisibleToManager implements the pending-queue predicate: Submitted, past
// the logistics gate, and either unassigned or assigned to this manager.
func (p *Parcel) VisibleToManager(managerID kernel.UUID) bool {
	if p.status != Submitted {
		return false
	}
	if p.transportation == Courier && !p.logisticsProcessed {
		return false
	}
	return p.assignedManagerID == nil || p.assignedManagerID.IsEqual(managerID)
}

// reviewGuard enforces actor and visibility rules shared by Approve and Reject.
func (p *Parcel) reviewGuard(managerID kernel.UUID) error {
	if err := managerID.Validate(); err != nil {
		return err
	}
	if p.transportation == Courier && !p.logisticsProcessed {
		return fmt.Errorf("%w: courier parcel has not been processed by logistics", ErrInvalidTransition)
	}
	if p.assignedManagerID != nil && !p.assignedManagerID.IsEqual(managerID) {
		return fmt.Errorf("%w: parcel is assigned to a different manager", ErrInvalidTransition)
	}
	return nil
}

// claim assigns the acting manager if the parcel was unassigned.
func (p *Parcel) claim(managerID kernel.UUID) {
	if p.assignedManagerID == nil {
		p.assignedManagerID = &managerID
	}
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setNumber(number gatepass.Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	if number.PassType() != gatepass.PassTypeForReturnable(p.returnable) {
		return ErrPassTypeMismatch
	}
	p.number = number
	return nil
}

func (p *Parcel) setSubmitter(submitterID kernel.UUID) error {
	if err := submitterID.Validate(); err != nil {
		return err
	}
	p.submitterID = submitterID
	return nil
}

func (p *Parcel) setRecipient(recipient string) error {
	if recipient == "" {
		return errs.NewValueIsRequiredError("recipient")
	}
	p.recipient = recipient
	return nil
}

func (p *Parcel) setTransportation(transportation TransportationType) error {
	if err := transportation.Validate(); err != nil {
		return err
	}
	p.transportation = transportation
	return nil
}

func (p *Parcel) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	p.items = items
	return nil
}

func (p *Parcel) setDimensions(dimensions []Dimension) error {
	for _, dimension := range dimensions {
		if err := dimension.Validate(); err != nil {
			return err
		}
	}
	p.dimensions = dimensions
	return nil
}

func (p *Parcel) setReturnDate(returnDate *time.Time, now time.Time) error {
	if !p.returnable {
		p.returnDate = nil
		return nil
	}
	if returnDate == nil {
		return errs.NewValueIsRequiredError("returnDate")
	}
	if returnDate.Before(startOfDay(now)) {
		return errs.NewValueIsInvalidErrorWithCause(
			"returnDate", fmt.Errorf("%s is before the submission day", returnDate.Format(time.DateOnly)))
	}
	p.returnDate = returnDate
	return nil
}

func (p *Parcel) setAssignedManager(assignedManagerID *kernel.UUID) error {
	if assignedManagerID == nil {
		return nil
	}
	if err := assignedManagerID.Validate(); err != nil {
		return err
	}
	p.assignedManagerID = assignedManagerID
	return nil
}

// startOfDay truncates a timestamp to midnight in its own location. Return
// dates compare at day granularity.
func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
