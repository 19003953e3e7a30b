package chartinfo

import (
	"github.com/meguminbot/chartinfo/internal/detect"
	"github.com/meguminbot/chartinfo/internal/types"
)

// Kind is an alias to types.Kind.
// Re-exporting from internal/types to maintain public API.
type Kind = types.Kind

// Re-export all kind constants.
const (
	KindUnrecognized     = types.KindUnrecognized
	KindPsychChart       = types.KindPsychChart
	KindPsychEvents      = types.KindPsychEvents
	KindVSliceChart      = types.KindVSliceChart
	KindVSliceMetadata   = types.KindVSliceMetadata
	KindCodenameChart    = types.KindCodenameChart
	KindCodenameMetadata = types.KindCodenameMetadata
)

// Variant is an alias to types.Variant.
type Variant = types.Variant

// Re-export the Psych chart variants.
const (
	VariantNone          = types.VariantNone
	VariantV1            = types.VariantV1
	VariantLegacyConvert = types.VariantLegacyConvert
)

// FileKind is an alias to types.FileKind.
type FileKind = types.FileKind

// Engine is an alias to types.Engine.
type Engine = types.Engine

// Re-export all engine constants.
const (
	EngineUnknown  = types.EngineUnknown
	EnginePsych    = types.EnginePsych
	EngineVSlice   = types.EngineVSlice
	EngineCodename = types.EngineCodename
)

// Document is an alias to types.Document.
type Document = types.Document

// Chart is an alias to types.Chart.
type Chart = types.Chart

// MetadataBundle is an alias to types.MetadataBundle.
type MetadataBundle = types.MetadataBundle

// Classify is a wrapper around detect.Classify.
//
// Classify is pure and total: anything that is not a recognised chart or
// metadata object, including invalid JSON, is KindUnrecognized.
func Classify(data []byte) FileKind {
	return detect.Classify(data)
}
