// Package codename extracts chart summaries from Codename Engine charts.
//
// Codename charts keep one note list per strum line and mark the player's
// line with type 1, so no lane remapping is needed. Song name and starting
// tempo are only available from the song's meta.json.
package codename

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/meguminbot/chartinfo/internal/parsing"
	"github.com/meguminbot/chartinfo/internal/registry"
	"github.com/meguminbot/chartinfo/internal/types"
)

const (
	// playerLine is the strum line type used for the player.
	playerLine = 1

	bpmEvent    = "BPM Change"
	scrollEvent = "Scroll Speed Change"
)

// Extractor summarises Codename Engine charts.
type Extractor struct{}

func init() {
	registry.Register(types.EngineCodename, &Extractor{})
}

// Extract implements registry.Extractor. A chart without a player strum
// line yields a *types.StructuralGapError.
func (e *Extractor) Extract(chart types.Chart, meta *types.Document, opts types.ExtractOptions) (*types.ChartSummary, error) {
	data := gjson.ParseBytes(chart.Doc.Data)

	player, err := playerStrumLine(chart.Doc.Name, data)
	if err != nil {
		return nil, err
	}

	lanes := opts.LaneRange()
	summary := &types.ChartSummary{
		Engine:      types.EngineCodename,
		EngineLabel: chart.Kind.Label(),
		Artist:      types.Unknown,
		Charter:     types.Unknown,
		Multiplier:  opts.Multiplier,
		LaneCount:   lanes,
	}

	if meta != nil {
		md := gjson.ParseBytes(meta.Data)
		summary.SongName = parsing.FirstText(types.Unknown, md.Get("displayName"), md.Get("name"))
		if bpm, ok := parsing.Float(md.Get("bpm")); ok {
			summary.BPM = types.Num(bpm)
		}
	} else {
		summary.SongName = types.NotProvided
		summary.MetadataMissing = true
	}

	diff := types.NewDifficulty("", lanes)
	skipped := 0
	player.Get("notes").ForEach(func(_, note gjson.Result) bool {
		lane, ok := parsing.Lane(note.Get("id"))
		if !ok {
			skipped++
			return true
		}
		diff.Count(lane)
		return true
	})
	if skipped > 0 {
		summary.Warn("notes", fmt.Sprintf("skipped %d notes without an integer id", skipped))
	}
	diff.Score(opts.Multiplier)
	summary.Difficulties = []types.DifficultySummary{diff}

	bpmChanges := eventParams(data.Get("events"), bpmEvent, 0, summary)
	if len(bpmChanges) > 1 {
		summary.BPMChanges = bpmChanges
	}

	timeline := types.ScrollTimeline{Changes: eventParams(data.Get("events"), scrollEvent, 1, summary)}
	if speed, ok := parsing.Float(data.Get("scrollSpeed")); ok && speed != 0 {
		timeline.Initial = types.Num(speed)
	}
	summary.ScrollSpeeds = []types.ScrollTimeline{timeline}

	return summary, nil
}

// playerStrumLine returns the first strum line of type 1.
func playerStrumLine(file string, data gjson.Result) (gjson.Result, error) {
	lines := data.Get("strumLines")
	if !lines.IsArray() {
		return gjson.Result{}, &types.StructuralGapError{File: file, What: "strumLines list"}
	}
	var player gjson.Result
	lines.ForEach(func(_, line gjson.Result) bool {
		if t := line.Get("type"); t.Type == gjson.Number && t.Num == playerLine {
			player = line
			return false
		}
		return true
	})
	if !player.Exists() {
		return gjson.Result{}, &types.StructuralGapError{File: file, What: "player strum line (type 1)"}
	}
	return player, nil
}

// eventParams returns params[index] of every event with the given name.
func eventParams(events gjson.Result, name string, index int, summary *types.ChartSummary) []float64 {
	var out []float64
	if !events.IsArray() {
		return out
	}
	events.ForEach(func(_, ev gjson.Result) bool {
		if ev.Get("name").String() != name {
			return true
		}
		param := ev.Get(fmt.Sprintf("params.%d", index))
		v, ok := parsing.Float(param)
		if !ok {
			summary.Warn("events", fmt.Sprintf("ignoring %s event with parameter %q", name, param.String()))
			return true
		}
		out = append(out, v)
		return true
	})
	return out
}
