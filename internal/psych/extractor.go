// Package psych extracts chart summaries from Psych Engine charts.
//
// Psych charts store notes in sections. Each section has a mustHitSection
// flag and notes carry a raw lane index in 0..7: lanes 0-3 belong to
// whichever side the flag names and lanes 4-7 to the other side. The player
// side is therefore lanes 0-3 of must-hit sections plus lanes 4-7 of the
// rest. Extended-key charts double both ranges.
package psych

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/meguminbot/chartinfo/internal/parsing"
	"github.com/meguminbot/chartinfo/internal/registry"
	"github.com/meguminbot/chartinfo/internal/types"
)

// scrollEvent is the event name that changes scroll speed mid-song.
const scrollEvent = "Change Scroll Speed"

// Extractor summarises Psych Engine charts and merges events.json files.
type Extractor struct{}

func init() {
	registry.Register(types.EnginePsych, &Extractor{})
}

// songData returns the object holding notes, events, bpm and speed.
func songData(chart types.Chart) gjson.Result {
	root := gjson.ParseBytes(chart.Doc.Data)
	if chart.Kind.Variant == types.VariantLegacyConvert {
		return root.Get("song")
	}
	return root
}

// Extract implements registry.Extractor. Events files are folded in by
// Merge beforehand, so meta is not read here.
func (e *Extractor) Extract(chart types.Chart, _ *types.Document, opts types.ExtractOptions) (*types.ChartSummary, error) {
	data := songData(chart)
	lanes := opts.LaneRange()

	summary := &types.ChartSummary{
		Engine:      types.EnginePsych,
		EngineLabel: chart.Kind.Label(),
		SongName:    parsing.FirstText(types.Unknown, data.Get("song"), data.Get("songName")),
		Artist:      types.Unknown,
		Charter:     types.Unknown,
		Multiplier:  opts.Multiplier,
		LaneCount:   lanes,
	}

	summary.ScrollSpeeds = []types.ScrollTimeline{scrollTimeline(data, summary)}
	summary.BPM, summary.BPMChanges = bpms(data)

	diff := types.NewDifficulty("", lanes)
	countNotes(data.Get("notes"), &diff, summary)
	diff.Score(opts.Multiplier)
	summary.Difficulties = []types.DifficultySummary{diff}

	return summary, nil
}

// scrollTimeline reads the starting speed and every "Change Scroll Speed"
// event. Event entries are [time, [[name, value1, value2], ...]]; only the
// first sub-event of an entry is inspected.
func scrollTimeline(data gjson.Result, summary *types.ChartSummary) types.ScrollTimeline {
	initial := 1.0
	if speed, ok := parsing.Float(data.Get("speed")); ok && speed != 0 {
		initial = speed
	}
	timeline := types.ScrollTimeline{Initial: types.Num(initial)}

	events := data.Get("events")
	if !events.IsArray() {
		return timeline
	}
	events.ForEach(func(_, ev gjson.Result) bool {
		if ev.Get("1.0.0").String() != scrollEvent {
			return true
		}
		arg := ev.Get("1.0.1")
		mult, ok := eventMultiplier(arg)
		if !ok {
			summary.Warn("scroll", fmt.Sprintf("ignoring %s event with value %q", scrollEvent, arg.String()))
			return true
		}
		timeline.Changes = append(timeline.Changes, parsing.Round(initial*mult, 2))
		return true
	})
	return timeline
}

func eventMultiplier(arg gjson.Result) (float64, bool) {
	if arg.Type == gjson.Number {
		return arg.Num, true
	}
	return parsing.LeadingFloat(arg.String())
}

// bpms collects the chart tempo and every section tempo marked with
// changeBPM, in first-seen order. The chart tempo is the primary value;
// the others are only reported when more than one tempo exists.
func bpms(data gjson.Result) (types.Number, []float64) {
	var seen []float64
	add := func(v float64) {
		for _, s := range seen {
			if s == v {
				return
			}
		}
		seen = append(seen, v)
	}

	data.Get("notes").ForEach(func(_, section gjson.Result) bool {
		if section.Get("changeBPM").Type != gjson.True {
			return true
		}
		if bpm, ok := parsing.Float(section.Get("bpm")); ok && bpm != 0 {
			add(bpm)
		}
		return true
	})

	var primary types.Number
	if bpm, ok := parsing.Float(data.Get("bpm")); ok && bpm != 0 {
		primary = types.Num(bpm)
		add(bpm)
	}

	if len(seen) <= 1 {
		return primary, nil
	}
	changes := make([]float64, 0, len(seen))
	for _, v := range seen {
		if primary.Valid && v == primary.Value {
			continue
		}
		changes = append(changes, v)
	}
	return primary, changes
}

// countNotes tallies the player's notes. Notes are [time, lane, ...].
func countNotes(sections gjson.Result, diff *types.DifficultySummary, summary *types.ChartSummary) {
	lanes := len(diff.Lanes)
	skipped := 0

	sections.ForEach(func(_, section gjson.Result) bool {
		mustHit := parsing.Truthy(section.Get("mustHitSection"))
		section.Get("sectionNotes").ForEach(func(_, note gjson.Result) bool {
			lane, ok := parsing.Lane(note.Get("1"))
			if !ok {
				skipped++
				return true
			}
			switch {
			case mustHit && lane >= 0 && lane < lanes:
				diff.Count(lane)
			case !mustHit && lane >= lanes && lane < 2*lanes:
				diff.Count(lane - lanes)
			}
			return true
		})
		return true
	})

	if skipped > 0 {
		summary.Warn("notes", fmt.Sprintf("skipped %d notes without an integer lane", skipped))
	}
}
