package chartinfo

import (
	"bytes"
	"fmt"
	"mime"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/meguminbot/chartinfo/internal/detect"
	"github.com/meguminbot/chartinfo/internal/registry"
	"github.com/meguminbot/chartinfo/internal/types"
)

// JSONContentType is the only content type Drop accepts.
const JSONContentType = "application/json"

// State is where a Session is in its lifecycle.
type State int

const (
	// StateEmpty means no chart has been loaded.
	StateEmpty State = iota
	// StateChartLoaded means a chart is cached without metadata.
	StateChartLoaded
	// StateChartWithMetadata means a chart and its metadata file are cached.
	StateChartWithMetadata
)

func (s State) String() string {
	switch s {
	case StateChartLoaded:
		return "chart loaded"
	case StateChartWithMetadata:
		return "chart with metadata"
	default:
		return "empty"
	}
}

// Session is the cached state of a chart-info session: the last chart, its
// metadata and the active score multiplier.
//
// Session is an immutable value. Drop and WithMultiplier return a new
// Session and leave the receiver untouched, so a caller that gets an error
// simply keeps using the Session it had:
//
//	s := chartinfo.NewSession()
//	next, res, err := s.Drop(chart)
//	if err != nil {
//		fmt.Println(err) // s is still valid
//	} else {
//		s = next
//		fmt.Println(res.Output.Text)
//	}
type Session struct {
	opts       *sessionOptions
	chart      *Chart
	metadata   MetadataBundle
	multiplier int
}

// NewSession returns an empty Session.
func NewSession(opts ...Option) Session {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return Session{opts: options}
}

// options returns the session options, tolerating the zero Session.
func (s Session) options() *sessionOptions {
	if s.opts == nil {
		return defaultOptions()
	}
	return s.opts
}

// State reports the lifecycle state.
func (s Session) State() State {
	switch {
	case s.chart == nil:
		return StateEmpty
	case s.metadata.Empty():
		return StateChartLoaded
	default:
		return StateChartWithMetadata
	}
}

// Chart returns the cached chart, if any.
func (s Session) Chart() (Chart, bool) {
	if s.chart == nil {
		return Chart{}, false
	}
	return *s.chart, true
}

// Metadata returns the metadata attached to the cached chart.
func (s Session) Metadata() MetadataBundle {
	return s.metadata
}

// Engine returns the engine of the cached chart, or EngineUnknown.
func (s Session) Engine() Engine {
	if s.chart == nil {
		return EngineUnknown
	}
	return s.chart.Engine()
}

// Multiplier returns the active score multiplier, or 0 before any chart
// is loaded.
func (s Session) Multiplier() int {
	return s.multiplier
}

// Action describes what a drop did.
type Action int

const (
	// ActionLoadedChart means a new chart replaced the session.
	ActionLoadedChart Action = iota
	// ActionAttachedMetadata means a metadata file was added to the cached chart.
	ActionAttachedMetadata
	// ActionRecomputed means the cached chart was summarised again with a
	// new multiplier.
	ActionRecomputed
)

// Result is the outcome of a successful Drop.
type Result struct {
	Action  Action
	Kinds   []FileKind
	Notice  string
	Summary *ChartSummary
	Output  Output
}

// Drop processes one or two dropped files.
//
// One chart file replaces the session and resets the multiplier to the
// engine default. One metadata or events file is attached to the cached
// chart when it is for the same engine. Two files must be one chart and
// its metadata; they replace the session.
//
// Every document must have content type application/json and hold valid
// JSON, or the whole drop fails with *MalformedInputError. On any error
// the receiver is returned unchanged.
func (s Session) Drop(docs ...Document) (Session, *Result, error) {
	log := s.options().logger

	if len(docs) == 0 || len(docs) > 2 {
		return s, nil, &FileCountError{Count: len(docs)}
	}

	prepared := make([]Document, len(docs))
	kinds := make([]FileKind, len(docs))
	for i, doc := range docs {
		clean, err := prepare(doc)
		if err != nil {
			return s, nil, err
		}
		prepared[i] = clean
		kinds[i] = detect.Classify(clean.Data)
		log.Debug("classified file",
			zap.String("file", doc.Name),
			zap.Stringer("kind", kinds[i]),
		)
	}

	var (
		next   Session
		action Action
		err    error
	)
	if len(prepared) == 1 {
		next, action, err = s.dropOne(prepared[0], kinds[0])
	} else {
		next, err = s.dropPair(prepared, kinds)
		action = ActionLoadedChart
	}
	if err != nil {
		log.Debug("drop rejected", zap.Error(err))
		return s, nil, err
	}

	summary, err := next.Summary()
	if err != nil {
		log.Debug("extraction failed", zap.Error(err))
		return s, nil, err
	}

	res := &Result{
		Action:  action,
		Kinds:   kinds,
		Summary: summary,
		Output:  Render(summary),
	}
	if action == ActionAttachedMetadata {
		res.Notice = "Metadata file added and chart reprocessed."
	}
	log.Debug("drop processed",
		zap.Stringer("state", next.State()),
		zap.Stringer("engine", next.Engine()),
		zap.Int("multiplier", next.multiplier),
	)
	return next, res, nil
}

// prepare checks the content type and JSON syntax of a document and strips
// a UTF-8 byte order mark.
func prepare(doc Document) (Document, error) {
	mediaType, _, err := mime.ParseMediaType(doc.ContentType)
	if err != nil || mediaType != JSONContentType {
		return doc, &MalformedInputError{
			File:   doc.Name,
			Reason: fmt.Sprintf("content type %q is not %s", doc.ContentType, JSONContentType),
		}
	}

	data := bytes.TrimPrefix(doc.Data, []byte("\xef\xbb\xbf"))
	if !gjson.ValidBytes(data) {
		return doc, &MalformedInputError{File: doc.Name, Reason: "invalid JSON"}
	}
	doc.Data = data
	return doc, nil
}

// loadChart returns a session holding only chart, with the engine's
// default multiplier.
func (s Session) loadChart(doc Document, kind FileKind) Session {
	chart := Chart{Doc: doc, Kind: kind}
	return Session{
		opts:       s.opts,
		chart:      &chart,
		multiplier: s.options().multiplierFor(chart.Engine()),
	}
}

func (s Session) dropOne(doc Document, kind FileKind) (Session, Action, error) {
	switch {
	case kind.Kind.IsChart():
		return s.loadChart(doc, kind), ActionLoadedChart, nil

	case kind.Kind.IsMetadata():
		if s.chart == nil {
			return s, 0, &MissingPrerequisiteError{File: doc.Name, Kind: kind.Kind}
		}
		if kind.Kind.Engine() != s.chart.Engine() {
			return s, 0, &EngineMismatchError{
				File:     doc.Name,
				Expected: kind.Kind.Engine(),
				Loaded:   s.chart.Engine(),
			}
		}
		next := s
		next.metadata = MetadataBundle{}.With(kind.Kind, doc)
		return next, ActionAttachedMetadata, nil

	default:
		return s, 0, &UnrecognizedFormatError{File: doc.Name, Reason: "unsupported chart format"}
	}
}

func (s Session) dropPair(docs []Document, kinds []FileKind) (Session, error) {
	chartIdx := -1
	for i, k := range kinds {
		if !k.Kind.IsChart() {
			continue
		}
		if chartIdx >= 0 {
			return s, &UnrecognizedFormatError{Reason: "no valid chart detected: both files are charts"}
		}
		chartIdx = i
	}
	if chartIdx < 0 {
		return s, &UnrecognizedFormatError{Reason: "no valid chart detected"}
	}

	other := 1 - chartIdx
	next := s.loadChart(docs[chartIdx], kinds[chartIdx])
	if !kinds[other].Kind.IsMetadata() || kinds[other].Kind.Engine() != next.Engine() {
		return s, &UnrecognizedFormatError{
			File:   docs[other].Name,
			Reason: fmt.Sprintf("no valid chart detected: %s is not metadata for a %s chart", kinds[other], next.Engine()),
		}
	}
	next.metadata = MetadataBundle{}.With(kinds[other].Kind, docs[other])
	return next, nil
}

// WithMultiplier returns a copy of s using a new score multiplier. The
// cached chart is kept, so Summary reflects the new value without
// re-reading any file.
func (s Session) WithMultiplier(multiplier int) (Session, error) {
	if multiplier <= 0 {
		return s, &InvalidMultiplierError{Input: strconv.Itoa(multiplier)}
	}
	s.options().logger.Debug("multiplier updated",
		zap.Int("from", s.multiplier),
		zap.Int("to", multiplier),
	)
	s.multiplier = multiplier
	return s, nil
}

// ParseMultiplier parses user input as a positive integer multiplier.
func ParseMultiplier(input string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || v <= 0 {
		return 0, &InvalidMultiplierError{Input: input}
	}
	return v, nil
}

// Summary extracts the summary of the cached chart with the active
// multiplier. Psych events files are merged into the chart first.
func (s Session) Summary() (*ChartSummary, error) {
	if s.chart == nil {
		return nil, ErrNoChart
	}

	engine := s.chart.Engine()
	ex := registry.Get(engine)
	if ex == nil {
		return nil, &UnrecognizedFormatError{
			File:   s.chart.Doc.Name,
			Reason: fmt.Sprintf("no extractor available for %s", engine),
		}
	}

	chart := *s.chart
	meta := s.metadata.For(engine)
	if merger, ok := ex.(registry.Merger); ok && meta != nil {
		merged, err := merger.Merge(chart, *meta)
		if err != nil {
			return nil, fmt.Errorf("merge %s into %s: %w", meta.Name, chart.Doc.Name, err)
		}
		s.options().logger.Debug("merged events",
			zap.String("chart", chart.Doc.Name),
			zap.String("events", meta.Name),
		)
		chart = merged
	}

	summary, err := ex.Extract(chart, meta, types.ExtractOptions{
		Multiplier: s.multiplier,
		Lanes:      s.options().lanes,
	})
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", engine, err)
	}
	return summary, nil
}
