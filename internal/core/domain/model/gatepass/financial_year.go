package gatepass

import (
	"fmt"
	"strconv"
	"time"

	"gatepass/internal/pkg/errs"
	"gatepass/internal/pkg/guard"
)

// ErrFinancialYearIsNotConstructed is returned when a zero-value FinancialYear
// is used instead of one produced by a constructor.
var ErrFinancialYearIsNotConstructed = errs.NewValueIsRequiredError(
	"FinancialYear must be created via FinancialYearOf or FinancialYearFromCode",
)

// FinancialYear is the April 1 – March 31 accounting year that scopes
// gate-pass sequences. A date in April or later belongs to the financial year
// starting that calendar year; January through March belong to the financial
// year that started the previous calendar year.
//
// The year renders as a four-digit code: two-digit start year followed by
// two-digit end year, e.g. FY 2025-26 is "2526".
type FinancialYear struct {
	startYear int

	guard guard.ConstructorGuard
}

// FinancialYearOf derives the financial year a point in time falls into.
func FinancialYearOf(t time.Time) FinancialYear {
	startYear := t.Year()
	if t.Month() < time.April {
		startYear--
	}
	return FinancialYear{startYear: startYear, guard: guard.NewConstructorGuard()}
}

// FinancialYearFromCode parses the four-digit code form ("2526"). The two
// halves must be consecutive two-digit years. Codes are interpreted in the
// 2000s; the numbering scheme did not exist before then.
func FinancialYearFromCode(code string) (FinancialYear, error) {
	if len(code) != 4 {
		return FinancialYear{}, errs.NewValueIsInvalidErrorWithCause(
			"financialYear", fmt.Errorf("%q is not a 4-digit financial year code", code))
	}

	startPart, err := strconv.Atoi(code[:2])
	if err != nil {
		return FinancialYear{}, errs.NewValueIsInvalidErrorWithCause("financialYear", err)
	}
	endPart, err := strconv.Atoi(code[2:])
	if err != nil {
		return FinancialYear{}, errs.NewValueIsInvalidErrorWithCause("financialYear", err)
	}

	if (startPart+1)%100 != endPart {
		return FinancialYear{}, errs.NewValueIsInvalidErrorWithCause(
			"financialYear", fmt.Errorf("%q does not span consecutive years", code))
	}

	return FinancialYear{startYear: 2000 + startPart, guard: guard.NewConstructorGuard()}, nil
}

// Code returns the four-digit printed form, e.g. "2526" for FY 2025-26.
func (f FinancialYear) Code() string {
	return fmt.Sprintf("%02d%02d", f.startYear%100, (f.startYear+1)%100)
}

// StartYear returns the calendar year the financial year begins in.
func (f FinancialYear) StartYear() int {
	return f.startYear
}

// IsEqual reports whether two financial years cover the same period.
func (f FinancialYear) IsEqual(other FinancialYear) bool {
	return f.startYear == other.startYear
}

// Validate ensures the FinancialYear came from a constructor.
func (f FinancialYear) Validate() error {
	return f.guard.Validate(ErrFinancialYearIsNotConstructed)
}

// String implements fmt.Stringer using the code form.
func (f FinancialYear) String() string {
	return f.Code()
}
