// Package render turns chart summaries into presentation-ready values:
// a label/value DisplayModel, plain text and a wiki SongInfo template.
package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/meguminbot/chartinfo/internal/parsing"
	"github.com/meguminbot/chartinfo/internal/types"
)

// LaneNames labels canonical lanes 0-7.
var LaneNames = []string{"Left", "Down", "Up", "Right", "Extra1", "Extra2", "Extra3", "Extra4"}

// Field is one label/value line.
type Field struct {
	Label string
	Value string
}

// Section is the per-difficulty block of a DisplayModel.
type Section struct {
	// Title is "Hard Difficulty" and the like, or empty for single-difficulty engines
	Title    string
	Lanes    []Field
	MaxCombo int
	MaxScore int
}

// DisplayModel is what a front end shows for one chart set.
type DisplayModel struct {
	Header   []Field
	Sections []Section
	Warnings []string
}

// Title capitalises a difficulty key: "hard" becomes "Hard".
func Title(difficulty string) string {
	return cases.Title(language.Und).String(difficulty)
}

// Build maps a summary onto a DisplayModel.
func Build(s *types.ChartSummary) DisplayModel {
	m := DisplayModel{
		Header: []Field{
			{Label: "Engine", Value: s.EngineLabel},
			{Label: "Song", Value: s.SongName},
		},
	}
	if s.Engine == types.EngineVSlice {
		m.Header = append(m.Header,
			Field{Label: "Artist", Value: s.Artist},
			Field{Label: "Charter", Value: s.Charter},
		)
	}
	m.Header = append(m.Header,
		Field{Label: "BPM", Value: BPMText(s)},
		Field{Label: "Scroll Speed", Value: strings.Join(ScrollTexts(s), ", ")},
	)

	for _, d := range s.Difficulties {
		sec := Section{MaxCombo: d.TotalNotes, MaxScore: d.MaxScore}
		if d.Name != "" {
			sec.Title = Title(d.Name) + " Difficulty"
		}
		for lane, count := range d.Lanes {
			sec.Lanes = append(sec.Lanes, Field{Label: laneName(lane), Value: fmt.Sprint(count)})
		}
		m.Sections = append(m.Sections, sec)
	}

	for _, w := range s.Warnings {
		m.Warnings = append(m.Warnings, w.String())
	}
	return m
}

func laneName(lane int) string {
	if lane < len(LaneNames) {
		return LaneNames[lane]
	}
	return fmt.Sprintf("Lane%d", lane)
}

// BPMText renders the starting tempo followed by the other tempos in
// parentheses: "100 (120, 140)".
func BPMText(s *types.ChartSummary) string {
	primary := types.Unknown
	switch {
	case s.BPM.Valid:
		primary = parsing.FormatNumber(s.BPM.Value)
	case s.MetadataMissing:
		primary = types.NotProvided
	}
	if len(s.BPMChanges) == 0 {
		return primary
	}
	return fmt.Sprintf("%s (%s)", primary, strings.Join(parsing.FormatNumbers(s.BPMChanges), ", "))
}

// ScrollTexts renders one entry per scroll timeline: "1.2 (1.8, 2.4)",
// suffixed with the difficulty when the engine has several: "2 (Hard)".
// Psych changes always carry two decimals: "2 (3.00, 1.50)".
func ScrollTexts(s *types.ChartSummary) []string {
	out := make([]string, 0, len(s.ScrollSpeeds))
	for _, tl := range s.ScrollSpeeds {
		text := types.Unknown
		if tl.Initial.Valid {
			text = parsing.FormatNumber(tl.Initial.Value)
		}
		if len(tl.Changes) > 0 {
			text += " (" + strings.Join(changeTexts(s.Engine, tl.Changes), ", ") + ")"
		}
		if tl.Difficulty != "" {
			text += " (" + Title(tl.Difficulty) + ")"
		}
		out = append(out, text)
	}
	return out
}

// changeTexts formats scroll changes. Psych changes are shown with two
// decimals, matching how the speed is rounded.
func changeTexts(engine types.Engine, changes []float64) []string {
	if engine != types.EnginePsych {
		return parsing.FormatNumbers(changes)
	}
	out := make([]string, len(changes))
	for i, v := range changes {
		out[i] = parsing.FormatFixed(v, 2)
	}
	return out
}

// perDifficulty renders a value for each difficulty, suffixed with the
// difficulty name when there is one.
func perDifficulty(s *types.ChartSummary, value func(types.DifficultySummary) int) []string {
	out := make([]string, 0, len(s.Difficulties))
	for _, d := range s.Difficulties {
		v := fmt.Sprint(value(d))
		if d.Name != "" {
			v += " (" + Title(d.Name) + ")"
		}
		out = append(out, v)
	}
	return out
}
