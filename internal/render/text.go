package render

import (
	"fmt"
	"strings"

	"github.com/meguminbot/chartinfo/internal/types"
)

const rule = "────────────────────────────────"

// Text renders a DisplayModel as plain text.
func Text(m DisplayModel) string {
	var b strings.Builder

	b.WriteString("Chart Information\n")
	b.WriteString(rule + "\n")
	for _, f := range m.Header {
		fmt.Fprintf(&b, "%s: %s\n", f.Label, f.Value)
	}

	for _, sec := range m.Sections {
		b.WriteString(rule + "\n")
		if sec.Title != "" {
			b.WriteString(sec.Title + "\n")
		}
		for _, f := range sec.Lanes {
			fmt.Fprintf(&b, "%s: %s\n", f.Label, f.Value)
		}
		fmt.Fprintf(&b, "Max Combo: %d\n", sec.MaxCombo)
		fmt.Fprintf(&b, "Max Score: %d\n", sec.MaxScore)
	}

	if len(m.Warnings) > 0 {
		b.WriteString(rule + "\n")
		b.WriteString("Warnings:\n")
		for _, w := range m.Warnings {
			fmt.Fprintf(&b, "  - %s\n", w)
		}
	}
	return b.String()
}

// WikiBreak separates values of multi-value wiki fields.
const WikiBreak = "<br>"

// Wiki renders the SongInfo wiki template for a summary. Fields without a
// value read "Unknown".
func Wiki(s *types.ChartSummary) string {
	orUnknown := func(v string) string {
		if v == "" {
			return types.Unknown
		}
		return v
	}
	join := func(vs []string) string {
		return orUnknown(strings.Join(vs, WikiBreak))
	}

	var b strings.Builder
	b.WriteString("{{SongInfo\n")
	fmt.Fprintf(&b, "    | name = %s\n", orUnknown(s.SongName))
	b.WriteString("    | icon = \n")
	b.WriteString("    | file = \n")
	b.WriteString("    | inst = \n")
	fmt.Fprintf(&b, "    | composer = %s\n", orUnknown(s.Artist))
	fmt.Fprintf(&b, "    | charter = %s\n", orUnknown(s.Charter))
	fmt.Fprintf(&b, "    | bpm = %s\n", orUnknown(BPMText(s)))
	fmt.Fprintf(&b, "    | scroll = %s\n", join(ScrollTexts(s)))
	fmt.Fprintf(&b, "    | maxcombo = %s\n", join(perDifficulty(s, func(d types.DifficultySummary) int { return d.TotalNotes })))
	fmt.Fprintf(&b, "    | maxscore = %s}}", join(perDifficulty(s, func(d types.DifficultySummary) int { return d.MaxScore })))
	return b.String()
}
