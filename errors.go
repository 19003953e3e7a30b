package chartinfo

import (
	"errors"

	"github.com/meguminbot/chartinfo/internal/types"
)

// UnrecognizedFormatError is an alias to types.UnrecognizedFormatError.
// Re-exporting from internal/types to maintain public API.
type UnrecognizedFormatError = types.UnrecognizedFormatError

// EngineMismatchError is an alias to types.EngineMismatchError.
// Re-exporting from internal/types to maintain public API.
type EngineMismatchError = types.EngineMismatchError

// MissingPrerequisiteError is an alias to types.MissingPrerequisiteError.
// Re-exporting from internal/types to maintain public API.
type MissingPrerequisiteError = types.MissingPrerequisiteError

// MalformedInputError is an alias to types.MalformedInputError.
// Re-exporting from internal/types to maintain public API.
type MalformedInputError = types.MalformedInputError

// StructuralGapError is an alias to types.StructuralGapError.
// Re-exporting from internal/types to maintain public API.
type StructuralGapError = types.StructuralGapError

// FileCountError is an alias to types.FileCountError.
type FileCountError = types.FileCountError

// InvalidMultiplierError is an alias to types.InvalidMultiplierError.
type InvalidMultiplierError = types.InvalidMultiplierError

// Warning is an alias to types.Warning.
type Warning = types.Warning

// ErrNoChart is returned by Session.Summary before any chart is loaded.
var ErrNoChart = errors.New("no chart loaded")
