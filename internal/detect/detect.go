// Package detect classifies chart-set JSON files by their shape.
//
// None of the supported engines tags its files with an engine name, so the
// classifier relies on which fields are present. Several shapes overlap
// (a Psych chart can carry events, a V-Slice chart shares "version" with
// its metadata file), which makes the order of Rules significant.
package detect

import (
	"github.com/tidwall/gjson"

	"github.com/meguminbot/chartinfo/internal/parsing"
	"github.com/meguminbot/chartinfo/internal/types"
)

// Rule is one structural predicate.
type Rule struct {
	// Name is the predicate name shown by debugging tools
	Name string

	// Kind is the result when Match succeeds
	Kind types.Kind

	// Match reports whether the value has this shape. Only the Psych chart
	// rule returns a Variant other than VariantNone.
	Match func(v gjson.Result) (types.Variant, bool)
}

// Rules lists the predicates in precedence order. The first match wins.
var Rules = []Rule{
	{Name: "isPsychChart", Kind: types.KindPsychChart, Match: psychChart},
	{Name: "isPsychEvents", Kind: types.KindPsychEvents, Match: plain(psychEvents)},
	{Name: "isVSliceChart", Kind: types.KindVSliceChart, Match: plain(vsliceChart)},
	{Name: "isVSliceMetadata", Kind: types.KindVSliceMetadata, Match: plain(vsliceMetadata)},
	{Name: "isCodenameMetadata", Kind: types.KindCodenameMetadata, Match: plain(codenameMetadata)},
	{Name: "isCodenameChart", Kind: types.KindCodenameChart, Match: plain(codenameChart)},
}

// Classify determines the kind of a JSON document.
//
// Classify never fails: invalid JSON, non-objects and objects that match no
// rule all yield KindUnrecognized.
func Classify(data []byte) types.FileKind {
	if !gjson.ValidBytes(data) {
		return types.FileKind{Kind: types.KindUnrecognized}
	}
	return ClassifyValue(gjson.ParseBytes(data))
}

// ClassifyValue classifies an already parsed JSON value.
func ClassifyValue(v gjson.Result) types.FileKind {
	if !v.IsObject() {
		return types.FileKind{Kind: types.KindUnrecognized}
	}
	for _, rule := range Rules {
		if variant, ok := rule.Match(v); ok {
			return types.FileKind{Kind: rule.Kind, Variant: variant}
		}
	}
	return types.FileKind{Kind: types.KindUnrecognized}
}

func plain(pred func(gjson.Result) bool) func(gjson.Result) (types.Variant, bool) {
	return func(v gjson.Result) (types.Variant, bool) {
		return types.VariantNone, pred(v)
	}
}

// psychChart matches Psych 1.0 charts ("format":"psych_v1" with top-level
// notes) and the legacy layout (notes under "song", format absent or
// "psych_v1_convert").
func psychChart(v gjson.Result) (types.Variant, bool) {
	format := v.Get("format")
	if format.Type == gjson.String && format.Str == "psych_v1" && parsing.Truthy(v.Get("notes")) {
		return types.VariantV1, true
	}

	legacyFormat := !parsing.Truthy(format) || (format.Type == gjson.String && format.Str == "psych_v1_convert")
	if legacyFormat && parsing.Truthy(v.Get("song")) && parsing.Truthy(v.Get("song.notes")) {
		return types.VariantLegacyConvert, true
	}

	return types.VariantNone, false
}

// psychEvents matches events.json files: events without notes, in either layout.
func psychEvents(v gjson.Result) bool {
	if parsing.Truthy(v.Get("song")) && parsing.Truthy(v.Get("song.events")) && !parsing.Truthy(v.Get("song.notes")) {
		return true
	}
	format := v.Get("format")
	return format.Type == gjson.String && format.Str == "psych_v1" &&
		parsing.Truthy(v.Get("events")) && !parsing.Truthy(v.Get("notes"))
}

// vsliceChart matches V-Slice chart files.
func vsliceChart(v gjson.Result) bool {
	return parsing.Truthy(v.Get("version")) &&
		parsing.Truthy(v.Get("notes")) &&
		parsing.Truthy(v.Get("scrollSpeed"))
}

// vsliceMetadata matches V-Slice metadata files. A file with notes is a
// chart even when it also carries song info.
func vsliceMetadata(v gjson.Result) bool {
	return parsing.Truthy(v.Get("version")) &&
		parsing.Truthy(v.Get("songName")) &&
		parsing.Truthy(v.Get("artist")) &&
		!parsing.Truthy(v.Get("notes"))
}

// codenameMetadata matches Codename meta.json files.
func codenameMetadata(v gjson.Result) bool {
	return parsing.Truthy(v.Get("displayName")) && parsing.Truthy(v.Get("bpm"))
}

// codenameChart matches Codename charts, which mark themselves with a
// literal true "codenameChart" flag.
func codenameChart(v gjson.Result) bool {
	return v.Get("codenameChart").Type == gjson.True
}

// Trace evaluates every rule against data and reports which ones match,
// ignoring precedence.
func Trace(data []byte) []Match {
	if !gjson.ValidBytes(data) {
		return nil
	}
	v := gjson.ParseBytes(data)
	matches := make([]Match, 0, len(Rules))
	for _, rule := range Rules {
		variant, ok := rule.Match(v)
		matches = append(matches, Match{Rule: rule.Name, Kind: rule.Kind, Variant: variant, Matched: ok})
	}
	return matches
}

// Match is one rule result reported by Trace.
type Match struct {
	Rule    string
	Kind    types.Kind
	Variant types.Variant
	Matched bool
}
