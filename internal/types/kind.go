package types

// Kind is the detected role of a JSON chart-set file.
type Kind int

const (
	// KindUnrecognized represents a JSON value that matched no known shape.
	KindUnrecognized Kind = iota // Unrecognized
	// KindPsychChart represents a Psych Engine chart (v1 or legacy layout).
	KindPsychChart // Psych Chart
	// KindPsychEvents represents a Psych Engine events-only file.
	KindPsychEvents // Psych Events
	// KindVSliceChart represents a V-Slice chart file.
	KindVSliceChart // V-Slice Chart
	// KindVSliceMetadata represents a V-Slice metadata file.
	KindVSliceMetadata // V-Slice Metadata
	// KindCodenameChart represents a Codename Engine chart file.
	KindCodenameChart // Codename Chart
	// KindCodenameMetadata represents a Codename Engine meta.json file.
	KindCodenameMetadata // Codename Metadata
)

var kindNames = [...]string{
	KindUnrecognized:     "Unrecognized",
	KindPsychChart:       "Psych Chart",
	KindPsychEvents:      "Psych Events",
	KindVSliceChart:      "V-Slice Chart",
	KindVSliceMetadata:   "V-Slice Metadata",
	KindCodenameChart:    "Codename Chart",
	KindCodenameMetadata: "Codename Metadata",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unrecognized"
	}
	return kindNames[k]
}

// IsChart reports whether k is one of the chart kinds.
func (k Kind) IsChart() bool {
	return k == KindPsychChart || k == KindVSliceChart || k == KindCodenameChart
}

// IsMetadata reports whether k is an auxiliary metadata or events kind.
func (k Kind) IsMetadata() bool {
	return k == KindPsychEvents || k == KindVSliceMetadata || k == KindCodenameMetadata
}

// Engine returns the engine family a kind belongs to.
func (k Kind) Engine() Engine {
	switch k {
	case KindPsychChart, KindPsychEvents:
		return EnginePsych
	case KindVSliceChart, KindVSliceMetadata:
		return EngineVSlice
	case KindCodenameChart, KindCodenameMetadata:
		return EngineCodename
	default:
		return EngineUnknown
	}
}

// Variant distinguishes the two Psych chart layouts.
type Variant int

const (
	// VariantNone is used for every kind other than KindPsychChart.
	VariantNone Variant = iota
	// VariantV1 is the Psych 1.0 layout with notes at the top level.
	VariantV1
	// VariantLegacyConvert is the legacy layout with notes under "song".
	VariantLegacyConvert
)

func (v Variant) String() string {
	switch v {
	case VariantV1:
		return "psych_v1"
	case VariantLegacyConvert:
		return "psych_v1_convert"
	default:
		return ""
	}
}

// FileKind is the result of classifying one JSON value.
type FileKind struct {
	Kind    Kind
	Variant Variant
}

func (f FileKind) String() string {
	if f.Variant != VariantNone {
		return f.Kind.String() + " (" + f.Variant.String() + ")"
	}
	return f.Kind.String()
}

// Engine is a chart-producing game engine family.
type Engine int

const (
	// EngineUnknown means no chart has been detected.
	EngineUnknown Engine = iota
	// EnginePsych is Psych Engine, including its legacy layout.
	EnginePsych
	// EngineVSlice is the V-Slice engine.
	EngineVSlice
	// EngineCodename is Codename Engine.
	EngineCodename
)

func (e Engine) String() string {
	switch e {
	case EnginePsych:
		return "Psych Engine"
	case EngineVSlice:
		return "V-Slice Engine"
	case EngineCodename:
		return "Codename Engine"
	default:
		return "Unknown"
	}
}

// DefaultMultiplier returns the per-note score awarded by the engine.
func (e Engine) DefaultMultiplier() int {
	switch e {
	case EnginePsych:
		return 350
	case EngineVSlice:
		return 500
	case EngineCodename:
		return 300
	default:
		return 0
	}
}

// Label returns the name shown to users for a chart of this kind.
// The legacy Psych layout is shared by several forks and gets its own label.
func (f FileKind) Label() string {
	if f.Kind == KindPsychChart && f.Variant == VariantLegacyConvert {
		return "Psych Engine (Legacy) / Kade Engine / Other"
	}
	return f.Kind.Engine().String()
}
