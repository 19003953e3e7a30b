package detect

import (
	"testing"

	"github.com/meguminbot/chartinfo/internal/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		json        string
		wantKind    types.Kind
		wantVariant types.Variant
	}{
		{
			name:        "psych v1 chart",
			json:        `{"format":"psych_v1","notes":[{"sectionNotes":[]}],"bpm":150}`,
			wantKind:    types.KindPsychChart,
			wantVariant: types.VariantV1,
		},
		{
			name:        "psych v1 chart with events",
			json:        `{"format":"psych_v1","notes":[{}],"events":[[0,[["Hey!","",""]]]]}`,
			wantKind:    types.KindPsychChart,
			wantVariant: types.VariantV1,
		},
		{
			name:        "legacy chart without format",
			json:        `{"song":{"song":"Bopeebo","notes":[{}],"bpm":100}}`,
			wantKind:    types.KindPsychChart,
			wantVariant: types.VariantLegacyConvert,
		},
		{
			name:        "legacy chart with convert format",
			json:        `{"format":"psych_v1_convert","song":{"notes":[{}]}}`,
			wantKind:    types.KindPsychChart,
			wantVariant: types.VariantLegacyConvert,
		},
		{
			name:     "legacy events file",
			json:     `{"song":{"events":[[0,[["Change Scroll Speed","1.5",""]]]]}}`,
			wantKind: types.KindPsychEvents,
		},
		{
			name:     "v1 events file",
			json:     `{"format":"psych_v1","events":[[0,[["Hey!","",""]]]]}`,
			wantKind: types.KindPsychEvents,
		},
		{
			name:     "vslice chart",
			json:     `{"version":"2.0.0","notes":{"easy":[{"d":0}]},"scrollSpeed":{"easy":1.2}}`,
			wantKind: types.KindVSliceChart,
		},
		{
			name:     "vslice chart carrying song info",
			json:     `{"version":"2.0.0","songName":"Test","artist":"Kawai Sprite","notes":{"easy":[]},"scrollSpeed":{"easy":1}}`,
			wantKind: types.KindVSliceChart,
		},
		{
			name:     "vslice metadata",
			json:     `{"version":"2.2.0","songName":"Test","artist":"Kawai Sprite","timeChanges":[{"bpm":100}]}`,
			wantKind: types.KindVSliceMetadata,
		},
		{
			name:     "codename metadata",
			json:     `{"displayName":"Test","bpm":120}`,
			wantKind: types.KindCodenameMetadata,
		},
		{
			name:     "codename chart",
			json:     `{"codenameChart":true,"strumLines":[]}`,
			wantKind: types.KindCodenameChart,
		},
		{
			name:     "codename flag must be literal true",
			json:     `{"codenameChart":"true","strumLines":[]}`,
			wantKind: types.KindUnrecognized,
		},
		{
			name:     "empty object",
			json:     `{}`,
			wantKind: types.KindUnrecognized,
		},
		{
			name:     "array",
			json:     `[1,2,3]`,
			wantKind: types.KindUnrecognized,
		},
		{
			name:     "invalid json",
			json:     `{"format":`,
			wantKind: types.KindUnrecognized,
		},
		{
			name:     "psych v1 with empty notes",
			json:     `{"format":"psych_v1","notes":0}`,
			wantKind: types.KindUnrecognized,
		},
		{
			name:     "vslice zero version",
			json:     `{"version":0,"notes":{"easy":[]},"scrollSpeed":{"easy":1}}`,
			wantKind: types.KindUnrecognized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify([]byte(tt.json))
			if got.Kind != tt.wantKind {
				t.Errorf("Classify() kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if got.Variant != tt.wantVariant {
				t.Errorf("Classify() variant = %v, want %v", got.Variant, tt.wantVariant)
			}
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	inputs := []string{
		`{"format":"psych_v1","notes":[{}]}`,
		`{"song":{"events":[]}}`,
		`{"version":1,"songName":"a","artist":"b"}`,
		`{"displayName":"x","bpm":1}`,
		`null`,
	}

	for _, in := range inputs {
		first := Classify([]byte(in))
		for i := 0; i < 3; i++ {
			if got := Classify([]byte(in)); got != first {
				t.Fatalf("Classify(%s) changed between calls: %v then %v", in, first, got)
			}
		}
	}
}

func TestClassify_DoesNotMutateInput(t *testing.T) {
	in := []byte(`{"song":{"notes":[{"sectionNotes":[[0,1]]}]}}`)
	orig := string(in)

	Classify(in)

	if string(in) != orig {
		t.Errorf("Classify mutated input: %s", in)
	}
}

func TestRules_Order(t *testing.T) {
	want := []types.Kind{
		types.KindPsychChart,
		types.KindPsychEvents,
		types.KindVSliceChart,
		types.KindVSliceMetadata,
		types.KindCodenameMetadata,
		types.KindCodenameChart,
	}
	if len(Rules) != len(want) {
		t.Fatalf("len(Rules) = %d, want %d", len(Rules), len(want))
	}
	for i, rule := range Rules {
		if rule.Kind != want[i] {
			t.Errorf("Rules[%d] = %v, want %v", i, rule.Kind, want[i])
		}
	}
}

func TestTrace(t *testing.T) {
	// A legacy chart that also has events matches both Psych rules.
	data := []byte(`{"song":{"notes":[{}],"events":[[0,[]]]}}`)

	matches := Trace(data)
	if len(matches) != len(Rules) {
		t.Fatalf("Trace returned %d results, want %d", len(matches), len(Rules))
	}
	if !matches[0].Matched || matches[0].Variant != types.VariantLegacyConvert {
		t.Errorf("isPsychChart = %+v, want legacy match", matches[0])
	}
	if matches[1].Matched {
		t.Errorf("isPsychEvents matched a file with notes")
	}

	if Trace([]byte(`not json`)) != nil {
		t.Error("Trace of invalid JSON should be nil")
	}
}
