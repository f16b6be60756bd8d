// Package gatepass provides the value objects behind gate-pass numbering.
//
// The package includes:
//   - PassType: The RGP/NRGP sequence namespace a gate pass is numbered in
//   - FinancialYear: The April-to-March accounting year used as the sequence-reset boundary
//   - Number: The canonical gate-pass code with its Compose and Parse rules
//
// Key business rules:
//   - Returnable packages draw numbers from RGP, non-returnable from NRGP
//   - A date in April or later belongs to the financial year starting that
//     calendar year; earlier dates belong to the year starting the previous one
//   - Numbers render as RAPL-{passType}-{fyCode}/{sequence}, zero-padded to
//     three digits and widened to four past 999
//   - Parsing validates the exact shape; any deviation fails with ErrInvalidNumberFormat
//
// All types are immutable value objects; instances come from their
// constructors and validate themselves on creation.
package gatepass
