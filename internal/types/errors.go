package types

import "fmt"

// UnrecognizedFormatError is returned when a file matches no known chart
// or metadata shape, or when a drop contains no usable chart.
type UnrecognizedFormatError struct {
	File   string
	Reason string
}

func (e *UnrecognizedFormatError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("unrecognized format: %s", e.Reason)
	}
	return fmt.Sprintf("%s: unrecognized format: %s", e.File, e.Reason)
}

// EngineMismatchError is returned when a metadata or events file belongs to
// a different engine than the loaded chart.
type EngineMismatchError struct {
	File     string
	Expected Engine // Engine the metadata file was made for
	Loaded   Engine // Engine of the cached chart
}

func (e *EngineMismatchError) Error() string {
	return fmt.Sprintf("%s: this metadata file is for %s charts only, but the loaded chart is %s",
		e.File, e.Expected, e.Loaded)
}

// MissingPrerequisiteError is returned when a metadata or events file is
// dropped before any chart is loaded.
type MissingPrerequisiteError struct {
	File string
	Kind Kind
}

func (e *MissingPrerequisiteError) Error() string {
	return fmt.Sprintf("%s: %s file needs a chart; load a chart file first", e.File, e.Kind)
}

// MalformedInputError is returned for files that are not JSON, either by
// content type or by syntax.
type MalformedInputError struct {
	File   string
	Reason string
	Err    error
}

func (e *MalformedInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: malformed input: %s: %v", e.File, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: malformed input: %s", e.File, e.Reason)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// StructuralGapError is returned when a chart lacks a substructure the
// extractor cannot do without.
type StructuralGapError struct {
	File string
	What string
}

func (e *StructuralGapError) Error() string {
	return fmt.Sprintf("%s: missing %s", e.File, e.What)
}

// FileCountError is returned when a drop holds zero or more than two files.
type FileCountError struct {
	Count int
}

func (e *FileCountError) Error() string {
	return fmt.Sprintf("expected one or two JSON files, got %d", e.Count)
}

// InvalidMultiplierError is returned for a score multiplier that is not a
// positive integer.
type InvalidMultiplierError struct {
	Input string
}

func (e *InvalidMultiplierError) Error() string {
	return fmt.Sprintf("invalid score multiplier %q: must be a positive integer", e.Input)
}

// Warning represents a non-fatal issue encountered during extraction.
//
// Warnings are collected in ChartSummary.Warnings. Examples include:
//   - A scroll speed event whose multiplier is not a number
//   - A note whose lane is not an integer
//   - A difficulty listed in metadata but absent from the chart
type Warning struct {
	// Stage where the warning occurred
	Stage string // "bpm", "scroll", "notes", "difficulties", "merge"

	// Warning message
	Message string
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
