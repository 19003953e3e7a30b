// Package vslice extracts chart summaries from V-Slice charts.
//
// A V-Slice chart file holds every difficulty of a song: notes and scroll
// speeds are objects keyed by difficulty name. Note directions (the "d"
// field) are absolute, 0-3 for the player and 4-7 for the opponent. Song
// info and tempo live in a separate metadata file.
package vslice

import (
	"fmt"
	"slices"

	"github.com/tidwall/gjson"

	"github.com/meguminbot/chartinfo/internal/parsing"
	"github.com/meguminbot/chartinfo/internal/registry"
	"github.com/meguminbot/chartinfo/internal/types"
)

// DefaultDifficulties is the order used when no metadata file lists one.
var DefaultDifficulties = []string{"easy", "normal", "hard"}

// scrollEvent is the chart event kind that changes scroll speed.
const scrollEvent = "ScrollSpeed"

// Extractor summarises V-Slice charts.
type Extractor struct{}

func init() {
	registry.Register(types.EngineVSlice, &Extractor{})
}

// Extract implements registry.Extractor.
func (e *Extractor) Extract(chart types.Chart, meta *types.Document, opts types.ExtractOptions) (*types.ChartSummary, error) {
	data := gjson.ParseBytes(chart.Doc.Data)
	var md gjson.Result
	if meta != nil {
		md = gjson.ParseBytes(meta.Data)
	}
	lanes := opts.LaneRange()

	summary := &types.ChartSummary{
		Engine:      types.EngineVSlice,
		EngineLabel: chart.Kind.Label(),
		SongName:    parsing.FirstText(types.Unknown, md.Get("songName"), data.Get("songName")),
		Artist:      parsing.FirstText(types.Unknown, md.Get("artist"), data.Get("artist")),
		Charter:     parsing.FirstText(types.Unknown, md.Get("charter"), data.Get("charter")),
		Multiplier:  opts.Multiplier,
		LaneCount:   lanes,
	}
	summary.BPM, summary.BPMChanges = bpms(data, md)

	notes := objectMap(data.Get("notes"))
	speeds := objectMap(data.Get("scrollSpeed"))
	scrolls := scrollValues(data.Get("events"))

	for _, name := range difficultyOrder(notes, md, summary) {
		diff := types.NewDifficulty(name, lanes)
		notes[name].ForEach(func(_, note gjson.Result) bool {
			if lane, ok := parsing.Lane(note.Get("d")); ok {
				diff.Count(lane)
			}
			return true
		})
		diff.Score(opts.Multiplier)
		summary.Difficulties = append(summary.Difficulties, diff)
		summary.ScrollSpeeds = append(summary.ScrollSpeeds, scrollTimeline(name, speeds[name], scrolls))
	}

	return summary, nil
}

// objectMap indexes the members of a JSON object by key.
func objectMap(obj gjson.Result) map[string]gjson.Result {
	out := make(map[string]gjson.Result)
	if !obj.IsObject() {
		return out
	}
	obj.ForEach(func(key, value gjson.Result) bool {
		out[key.String()] = value
		return true
	})
	return out
}

// hasNotes reports whether a difficulty's note list is a non-empty array.
func hasNotes(list gjson.Result) bool {
	return list.IsArray() && len(list.Array()) > 0
}

// difficultyOrder returns the difficulties to report. The metadata's
// playData.difficulties list sets the order when present; otherwise
// DefaultDifficulties does. Difficulties with notes that the order does not
// mention follow, sorted by name.
func difficultyOrder(notes map[string]gjson.Result, md gjson.Result, summary *types.ChartSummary) []string {
	order := DefaultDifficulties
	listed := md.Get("playData.difficulties")
	fromMeta := listed.IsArray()
	if fromMeta {
		order = nil
		listed.ForEach(func(_, d gjson.Result) bool {
			if d.Type == gjson.String && !slices.Contains(order, d.Str) {
				order = append(order, d.Str)
			}
			return true
		})
	}

	var out []string
	for _, name := range order {
		if hasNotes(notes[name]) {
			out = append(out, name)
		} else if fromMeta {
			summary.Warn("difficulties", fmt.Sprintf("metadata lists %q but the chart has no notes for it", name))
		}
	}

	var extra []string
	for name, list := range notes {
		if !slices.Contains(order, name) && hasNotes(list) {
			extra = append(extra, name)
		}
	}
	slices.Sort(extra)

	return append(out, extra...)
}

// scrollValues returns the v.scroll value of every ScrollSpeed event with a
// numeric scroll, in event order.
func scrollValues(events gjson.Result) []float64 {
	var out []float64
	if !events.IsArray() {
		return out
	}
	events.ForEach(func(_, ev gjson.Result) bool {
		if ev.Get("e").String() != scrollEvent {
			return true
		}
		if scroll := ev.Get("v.scroll"); scroll.Type == gjson.Number {
			out = append(out, scroll.Num)
		}
		return true
	})
	return out
}

// scrollTimeline scales the chart's scroll events by the difficulty's
// starting speed. Without a starting speed the raw event values are kept.
func scrollTimeline(name string, initial gjson.Result, scrolls []float64) types.ScrollTimeline {
	timeline := types.ScrollTimeline{Difficulty: name}
	if v, ok := parsing.Float(initial); ok && v != 0 {
		timeline.Initial = types.Num(v)
	}
	for _, s := range scrolls {
		if timeline.Initial.Valid {
			timeline.Changes = append(timeline.Changes, parsing.Round(timeline.Initial.Value*s, 4))
		} else {
			timeline.Changes = append(timeline.Changes, s)
		}
	}
	return timeline
}

// bpms prefers the first metadata time change, then the chart's own bpm.
// Later metadata time changes with a different tempo are the change list.
func bpms(data, md gjson.Result) (types.Number, []float64) {
	changes := md.Get("timeChanges")
	if first, ok := parsing.Float(changes.Get("0.bpm")); ok && first != 0 {
		var rest []float64
		changes.ForEach(func(i, tc gjson.Result) bool {
			if i.Int() == 0 {
				return true
			}
			if bpm, ok := parsing.Float(tc.Get("bpm")); ok && bpm != first && !slices.Contains(rest, bpm) {
				rest = append(rest, bpm)
			}
			return true
		})
		return types.Num(first), rest
	}
	if bpm, ok := parsing.Float(data.Get("bpm")); ok && bpm != 0 {
		return types.Num(bpm), nil
	}
	return types.Number{}, nil
}
