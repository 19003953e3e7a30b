// Package registry manages the engine-specific chart extractors.
package registry

import (
	"github.com/meguminbot/chartinfo/internal/types"
)

// Extractor is the interface all engine extractors implement.
type Extractor interface {
	// Extract builds a summary from a chart and the optional metadata file
	// for the same engine. meta is nil when none was supplied.
	Extract(chart types.Chart, meta *types.Document, opts types.ExtractOptions) (*types.ChartSummary, error)
}

// Merger is an optional interface for extractors whose metadata file
// carries events that must be folded into the chart before extraction.
type Merger interface {
	// Merge returns a copy of the chart with the events of meta added.
	Merge(chart types.Chart, meta types.Document) (types.Chart, error)
}

// extractors maps engines to their extractors.
var extractors = make(map[types.Engine]Extractor)

// Register registers an extractor for an engine.
// This is called by engine packages during initialization (init functions).
func Register(engine types.Engine, extractor Extractor) {
	extractors[engine] = extractor
}

// Get returns the extractor for a given engine.
// Returns nil if no extractor is registered for the engine.
func Get(engine types.Engine) Extractor {
	return extractors[engine]
}
