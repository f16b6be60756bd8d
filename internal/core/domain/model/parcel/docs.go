// Package parcel contains the package aggregate of the dispatch-approval
// workflow. The word "package" being taken in Go, the aggregate is named
// Parcel; everything else keeps the business vocabulary: gate pass, logistics
// gate, resubmission, returnable.
//
// The aggregate owns the workflow state machine:
//
//	Submitted ──> Approved ──> Dispatched
//	    │
//	    └──> Rejected ··> (resubmission creates a new Parcel in Submitted)
//
// A courier parcel stays invisible to managers until logistics marks it
// processed; that is a predicate over Submitted, not a distinct state.
// Rejected parcels are retained forever; a resubmission supersedes the
// original by reference, never by mutating it.
package parcel
