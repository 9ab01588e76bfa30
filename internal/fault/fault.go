// Package fault defines the error taxonomy shared by every ROX codec and
// translator. Errors come in two layers: a handful of sentinel values for
// coarse classification via errors.Is, and structured value types that wrap
// a sentinel while carrying the fields a caller needs to react programmatically
// (column index, time offsets, and so on).
package fault

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every structured error below unwraps to exactly one of
// these, so callers that only care about the category can use errors.Is
// without knowing about the structured variants.
var (
	ErrIO                 = errors.New("rox: I/O error")
	ErrInvalidFormat      = errors.New("rox: invalid format")
	ErrUnsupportedFormat  = errors.New("rox: unsupported format")
	ErrUnsupportedVersion = errors.New("rox: unsupported version")
	ErrSerialize          = errors.New("rox: serialize error")
	ErrDeserialize        = errors.New("rox: deserialize error")
	ErrInvariant          = errors.New("rox: chart invariant violation")
)

// InvalidFormat wraps ErrInvalidFormat with a human-readable reason.
func InvalidFormat(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidFormat, reason)
}

// InvalidFormatf is the Printf-style variant of InvalidFormat.
func InvalidFormatf(format string, args ...any) error {
	return InvalidFormat(fmt.Sprintf(format, args...))
}

// UnsupportedFormat wraps ErrUnsupportedFormat with a human-readable reason.
func UnsupportedFormat(reason string) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, reason)
}

// UnsupportedFormatf is the Printf-style variant of UnsupportedFormat.
func UnsupportedFormatf(format string, args ...any) error {
	return UnsupportedFormat(fmt.Sprintf(format, args...))
}

// UnsupportedVersionError reports a binary payload declaring a version the
// decoder does not implement.
type UnsupportedVersionError struct {
	Version uint8
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("rox: unsupported version %d", e.Version)
}

func (e *UnsupportedVersionError) Unwrap() error {
	return ErrUnsupportedVersion
}

// Serialize wraps ErrSerialize with a message from the underlying codec.
func Serialize(message string) error {
	return fmt.Errorf("%w: %s", ErrSerialize, message)
}

// Deserialize wraps ErrDeserialize with a message from the underlying codec.
func Deserialize(message string) error {
	return fmt.Errorf("%w: %s", ErrDeserialize, message)
}

// IO wraps an underlying I/O error with ErrIO for classification.
func IO(err error) error {
	return fmt.Errorf("%w: %w", ErrIO, err)
}

// InvalidColumnError reports a note whose column falls outside the chart's
// key count.
type InvalidColumnError struct {
	Column   uint8
	KeyCount uint8
}

func (e *InvalidColumnError) Error() string {
	return fmt.Sprintf("invalid column index %d for %dK chart", e.Column, e.KeyCount)
}

func (e *InvalidColumnError) Unwrap() error {
	return ErrInvariant
}

// InvalidHoldDurationError reports a Hold or Burst note with a non-positive
// duration.
type InvalidHoldDurationError struct {
	TimeUS     int64
	DurationUS int64
}

func (e *InvalidHoldDurationError) Error() string {
	return fmt.Sprintf("invalid hold/burst duration %dus for note at %dus", e.DurationUS, e.TimeUS)
}

func (e *InvalidHoldDurationError) Unwrap() error {
	return ErrInvariant
}

// TimingPointsNotSortedError reports a timing point that occurs before its
// predecessor.
type TimingPointsNotSortedError struct {
	PrevTimeUS int64
	TimeUS     int64
}

func (e *TimingPointsNotSortedError) Error() string {
	return fmt.Sprintf("timing points not sorted: %dus follows %dus", e.TimeUS, e.PrevTimeUS)
}

func (e *TimingPointsNotSortedError) Unwrap() error {
	return ErrInvariant
}

// OverlappingNotesError reports two notes on the same column whose intervals
// overlap.
type OverlappingNotesError struct {
	Column uint8
	TimeUS int64
}

func (e *OverlappingNotesError) Error() string {
	return fmt.Sprintf("overlapping notes on column %d at %dus", e.Column, e.TimeUS)
}

func (e *OverlappingNotesError) Unwrap() error {
	return ErrInvariant
}

// NoBpmTimingPointError reports a chart with notes but no non-inherited
// (BPM-defining) timing point.
type NoBpmTimingPointError struct{}

func (e *NoBpmTimingPointError) Error() string {
	return "chart has notes but no BPM timing point"
}

func (e *NoBpmTimingPointError) Unwrap() error {
	return ErrInvariant
}
