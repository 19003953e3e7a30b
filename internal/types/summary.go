package types

// Placeholders rendered in place of absent values.
const (
	// Unknown marks a field the chart set genuinely lacks.
	Unknown = "Unknown"
	// NotProvided marks a field whose source file was not supplied.
	NotProvided = "<meta.json not provided>"
)

// Number is an optional numeric chart value.
type Number struct {
	Value float64
	Valid bool
}

// Num returns a valid Number holding v.
func Num(v float64) Number {
	return Number{Value: v, Valid: true}
}

// ScrollTimeline is the scroll speed history of one difficulty.
//
// Difficulty is empty for engines that store a single difficulty per file.
type ScrollTimeline struct {
	Difficulty string
	Initial    Number
	Changes    []float64
}

// DifficultySummary holds the note statistics of one difficulty.
type DifficultySummary struct {
	// Name is the difficulty key ("easy", "hard", ...) or empty
	Name string

	// Lanes holds the note count per canonical lane index
	Lanes []int

	// TotalNotes is the sum of Lanes and the maximum combo
	TotalNotes int

	// MaxScore is TotalNotes times the score multiplier
	MaxScore int
}

// NewDifficulty returns an empty summary with the given number of lanes.
func NewDifficulty(name string, lanes int) DifficultySummary {
	return DifficultySummary{Name: name, Lanes: make([]int, lanes)}
}

// Count records one note in lane. Lanes outside the range are ignored and
// Count reports false.
func (d *DifficultySummary) Count(lane int) bool {
	if lane < 0 || lane >= len(d.Lanes) {
		return false
	}
	d.Lanes[lane]++
	d.TotalNotes++
	return true
}

// Score sets MaxScore for the given multiplier.
func (d *DifficultySummary) Score(multiplier int) {
	d.MaxScore = d.TotalNotes * multiplier
}

// ChartSummary is the engine-independent description of a chart set.
type ChartSummary struct {
	Engine      Engine
	EngineLabel string

	SongName string
	Artist   string
	Charter  string

	// BPM is the starting tempo
	BPM Number
	// BPMChanges lists the other tempos in first-seen order
	BPMChanges []float64

	ScrollSpeeds []ScrollTimeline
	Difficulties []DifficultySummary

	Multiplier int
	LaneCount  int

	// MetadataMissing is set when the engine keeps song info in a separate
	// file that was not supplied.
	MetadataMissing bool

	// Warnings encountered during extraction (non-fatal issues)
	Warnings []Warning
}

// Rescore recomputes every MaxScore for a new multiplier. Note counts are
// left untouched.
func (s *ChartSummary) Rescore(multiplier int) {
	s.Multiplier = multiplier
	for i := range s.Difficulties {
		s.Difficulties[i].Score(multiplier)
	}
}

// Warn appends a warning.
func (s *ChartSummary) Warn(stage, message string) {
	s.Warnings = append(s.Warnings, Warning{Stage: stage, Message: message})
}
