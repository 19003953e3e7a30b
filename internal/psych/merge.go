package psych

import (
	"bytes"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/meguminbot/chartinfo/internal/parsing"
	"github.com/meguminbot/chartinfo/internal/types"
)

// eventsPath returns where the chart keeps its event list.
func eventsPath(chart types.Chart) string {
	if chart.Kind.Variant == types.VariantLegacyConvert {
		return "song.events"
	}
	return "events"
}

// incomingEvents returns the event list of an events.json file.
func incomingEvents(events gjson.Result) gjson.Result {
	if events.Get("format").String() == "psych_v1" {
		if list := events.Get("events"); list.IsArray() {
			return list
		}
	}
	if list := events.Get("song.events"); list.IsArray() {
		return list
	}
	return gjson.Result{}
}

// Merge implements registry.Merger.
//
// The chart's own events come first, followed by the events of the
// events file. Entries with the same parsed structure are kept once, at
// their first position, in the form they were first written. The result is written to the
// chart's own events location. A file without an event list leaves the
// chart unchanged.
func (e *Extractor) Merge(chart types.Chart, events types.Document) (types.Chart, error) {
	incoming := incomingEvents(gjson.ParseBytes(events.Data))
	if !incoming.Exists() {
		return chart, nil
	}

	path := eventsPath(chart)
	existing := gjson.GetBytes(chart.Doc.Data, path)

	seen := make(map[string]struct{})
	var buf bytes.Buffer
	buf.WriteByte('[')
	add := func(_, ev gjson.Result) bool {
		key := parsing.Canonical(ev)
		if _, dup := seen[key]; dup {
			return true
		}
		seen[key] = struct{}{}
		if len(seen) > 1 {
			buf.WriteByte(',')
		}
		buf.Write(pretty.Ugly([]byte(ev.Raw)))
		return true
	}
	if existing.IsArray() {
		existing.ForEach(add)
	}
	incoming.ForEach(add)
	buf.WriteByte(']')

	merged, err := sjson.SetRawBytes(bytes.Clone(chart.Doc.Data), path, buf.Bytes())
	if err != nil {
		return chart, err
	}

	out := chart
	out.Doc.Data = merged
	return out, nil
}

// Events returns the compacted raw JSON of each entry in the chart's event
// list, in order.
func Events(chart types.Chart) []string {
	list := gjson.GetBytes(chart.Doc.Data, eventsPath(chart))
	if !list.IsArray() {
		return nil
	}
	var out []string
	list.ForEach(func(_, ev gjson.Result) bool {
		out = append(out, string(pretty.Ugly([]byte(ev.Raw))))
		return true
	})
	return out
}
