package gatepass

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"gatepass/internal/pkg/errs"
	"gatepass/internal/pkg/guard"
)

var (
	// ErrNumberIsNotConstructed is returned when a zero-value Number is used
	// instead of one produced by ComposeNumber or ParseNumber.
	ErrNumberIsNotConstructed = errs.NewValueIsRequiredError(
		"Number must be created via ComposeNumber or ParseNumber",
	)

	// ErrInvalidNumberFormat is returned by ParseNumber for any code that does
	// not match the canonical gate-pass shape.
	ErrInvalidNumberFormat = errors.New("gate pass number format is invalid")

	// ErrSequenceIsOutOfRange is returned when a sequence cannot be rendered
	// inside one financial-year namespace.
	ErrSequenceIsOutOfRange = errors.New("sequence is out of range")
)

// maxSequence bounds a (financialYear, passType) namespace. Sequences 1-999
// print zero-padded to three digits; 1000-9999 widen to four digits rather
// than overflowing the year.
const maxSequence = 9999

var numberPattern = regexp.MustCompile(`^RAPL-(RGP|NRGP)-(\d{4})/(\d{3,4})$`)

// Number is the canonical gate-pass number, e.g. "RAPL-RGP-2526/001".
// The same code doubles as the package's tracking number; the system never
// mints two independent identifiers for one allocation.
type Number struct {
	passType      PassType
	financialYear FinancialYear
	sequence      int

	guard guard.ConstructorGuard
}

// ComposeNumber renders an allocated sequence into a gate-pass Number.
// The sequence must be in [1, 9999]: three digits zero-padded up to 999,
// plain four digits beyond.
func ComposeNumber(sequence int, financialYear FinancialYear, passType PassType) (Number, error) {
	if err := errors.Join(
		validateSequence(sequence),
		financialYear.Validate(),
		passType.Validate(),
	); err != nil {
		return Number{}, err
	}

	return Number{
		passType:      passType,
		financialYear: financialYear,
		sequence:      sequence,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// ParseNumber validates a code against the canonical shape and reconstructs
// its components. Any deviation fails with ErrInvalidNumberFormat.
func ParseNumber(code string) (Number, error) {
	match := numberPattern.FindStringSubmatch(code)
	if match == nil {
		return Number{}, fmt.Errorf("%w: %q", ErrInvalidNumberFormat, code)
	}

	passType, err := PassTypeFromString(match[1])
	if err != nil {
		return Number{}, fmt.Errorf("%w: %q", ErrInvalidNumberFormat, code)
	}

	financialYear, err := FinancialYearFromCode(match[2])
	if err != nil {
		return Number{}, fmt.Errorf("%w: %q", ErrInvalidNumberFormat, code)
	}

	// Four-digit sequences never carry a leading zero; "0042" is not a code
	// ComposeNumber can produce.
	if len(match[3]) == 4 && match[3][0] == '0' {
		return Number{}, fmt.Errorf("%w: %q", ErrInvalidNumberFormat, code)
	}

	sequence, err := strconv.Atoi(match[3])
	if err != nil || validateSequence(sequence) != nil {
		return Number{}, fmt.Errorf("%w: %q", ErrInvalidNumberFormat, code)
	}

	return Number{
		passType:      passType,
		financialYear: financialYear,
		sequence:      sequence,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Code returns the printed form "RAPL-{passType}-{fy}/{sequence}".
func (n Number) Code() string {
	if n.sequence > 999 {
		return fmt.Sprintf("RAPL-%s-%s/%d", n.passType, n.financialYear.Code(), n.sequence)
	}
	return fmt.Sprintf("RAPL-%s-%s/%03d", n.passType, n.financialYear.Code(), n.sequence)
}

// PassType returns the namespace the number was allocated in.
func (n Number) PassType() PassType {
	return n.passType
}

// FinancialYear returns the financial year the number was allocated in.
func (n Number) FinancialYear() FinancialYear {
	return n.financialYear
}

// Sequence returns the allocated sequence value.
func (n Number) Sequence() int {
	return n.sequence
}

// IsEqual reports whether two numbers identify the same allocation.
func (n Number) IsEqual(other Number) bool {
	return n.passType == other.passType &&
		n.financialYear.IsEqual(other.financialYear) &&
		n.sequence == other.sequence
}

// Validate ensures the Number came from a constructor.
func (n Number) Validate() error {
	return n.guard.Validate(ErrNumberIsNotConstructed)
}

// String implements fmt.Stringer using the code form.
func (n Number) String() string {
	return n.Code()
}

func validateSequence(sequence int) error {
	if sequence < 1 || sequence > maxSequence {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"sequence", sequence, 1, maxSequence, ErrSequenceIsOutOfRange)
	}
	return nil
}
