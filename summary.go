package chartinfo

import (
	"github.com/meguminbot/chartinfo/internal/render"
	"github.com/meguminbot/chartinfo/internal/types"
)

// ChartSummary is an alias to types.ChartSummary.
type ChartSummary = types.ChartSummary

// DifficultySummary is an alias to types.DifficultySummary.
type DifficultySummary = types.DifficultySummary

// ScrollTimeline is an alias to types.ScrollTimeline.
type ScrollTimeline = types.ScrollTimeline

// Number is an alias to types.Number.
type Number = types.Number

// DisplayModel is an alias to render.DisplayModel.
type DisplayModel = render.DisplayModel

// Field is an alias to render.Field.
type Field = render.Field

// Section is an alias to render.Section.
type Section = render.Section

// Output is a summary rendered for display.
type Output struct {
	// Display holds the label/value pairs a front end lays out
	Display DisplayModel

	// Text is Display as plain text
	Text string

	// Wiki is the SongInfo wiki template
	Wiki string
}

// Render renders a summary for display.
func Render(s *ChartSummary) Output {
	m := render.Build(s)
	return Output{
		Display: m,
		Text:    render.Text(m),
		Wiki:    render.Wiki(s),
	}
}
