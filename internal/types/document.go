// Package types provides the core data structures shared by the chart
// classifier, the per-engine extractors and the renderer.
//
// This package defines Document, Chart, MetadataBundle and ChartSummary,
// which represent a dropped chart set and its normalised summary across all
// supported engines.
package types

// Document is one dropped JSON file.
//
// Data holds the undecoded JSON text. Nothing in this module mutates Data
// in place; operations that change a document return a new byte slice.
type Document struct {
	// Name identifies the file in error messages (usually its base name)
	Name string

	// ContentType is the MIME type reported for the file
	ContentType string

	// Data is the raw JSON text
	Data []byte
}

// Chart is a classified chart document.
type Chart struct {
	Doc  Document
	Kind FileKind
}

// Engine returns the engine family that produced the chart.
func (c Chart) Engine() Engine {
	return c.Kind.Kind.Engine()
}

// MetadataBundle holds the auxiliary files attached to a chart.
//
// At most one slot is set in a session: the one matching the chart's engine.
type MetadataBundle struct {
	PsychEvents      *Document
	VSliceMetadata   *Document
	CodenameMetadata *Document
}

// For returns the metadata slot used by the given engine, or nil.
func (b MetadataBundle) For(e Engine) *Document {
	switch e {
	case EnginePsych:
		return b.PsychEvents
	case EngineVSlice:
		return b.VSliceMetadata
	case EngineCodename:
		return b.CodenameMetadata
	default:
		return nil
	}
}

// With returns a copy of b with doc stored in the slot for kind.
// Kinds that are not metadata kinds leave the bundle unchanged.
func (b MetadataBundle) With(kind Kind, doc Document) MetadataBundle {
	switch kind {
	case KindPsychEvents:
		b.PsychEvents = &doc
	case KindVSliceMetadata:
		b.VSliceMetadata = &doc
	case KindCodenameMetadata:
		b.CodenameMetadata = &doc
	}
	return b
}

// Empty reports whether no metadata is attached.
func (b MetadataBundle) Empty() bool {
	return b.PsychEvents == nil && b.VSliceMetadata == nil && b.CodenameMetadata == nil
}

// ExtractOptions carries the per-run settings an extractor needs.
type ExtractOptions struct {
	// Multiplier is the score awarded per note
	Multiplier int

	// Lanes is the number of player lanes counted: 4, or 8 for extended-key charts
	Lanes int
}

// LaneRange returns the number of lanes, defaulting to 4.
func (o ExtractOptions) LaneRange() int {
	if o.Lanes == 8 {
		return 8
	}
	return 4
}
