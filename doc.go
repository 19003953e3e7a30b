// Package chartinfo summarises Friday Night Funkin' chart files.
//
// It recognises the JSON chart formats of three engines (Psych Engine and its
// legacy layout, V-Slice and Codename Engine), pairs a chart with its
// metadata or events file, and extracts song name, BPMs, scroll speeds and
// per-difficulty note counts with a maximum score.
//
// # Quick Start
//
// Summarising a chart and its metadata:
//
//	docs, err := chartinfo.ReadFiles(ctx, "bopeebo-chart.json", "bopeebo-metadata.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	s, res, err := chartinfo.NewSession().Drop(docs...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(res.Output.Text)
//
// # Sessions
//
// A Session is an immutable value holding the last chart, its metadata and
// the active score multiplier. Every operation returns a new Session:
//
//	s, _, _ = s.Drop(chart)            // loads a chart, multiplier resets to the engine default
//	s, _, _ = s.Drop(metadata)         // attaches metadata for the same engine
//	s, _ = s.WithMultiplier(500)       // keeps the cached chart
//	summary, _ := s.Summary()          // recomputed from cached data
//
// Workspace wraps a Session for front ends that receive overlapping drops.
//
// # Supported Files
//
//   - Psych Engine charts (v1 and legacy "song" layout) and events.json
//   - V-Slice chart and metadata files
//   - Codename Engine charts and meta.json
//
// Classification is structural; file names are never consulted. Classify
// exposes the classifier directly.
//
// # Error Handling
//
// Fatal problems are typed errors (UnrecognizedFormatError,
// EngineMismatchError, MissingPrerequisiteError, MalformedInputError,
// StructuralGapError, FileCountError, InvalidMultiplierError); use errors.As.
// Non-fatal oddities such as an unparseable scroll multiplier are reported
// in ChartSummary.Warnings.
package chartinfo
