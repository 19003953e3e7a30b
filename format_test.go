package chartinfo

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		want  FileKind
		label string
	}{
		{"psych v1", `{"format":"psych_v1","notes":[{}]}`, FileKind{Kind: KindPsychChart, Variant: VariantV1}, "Psych Engine"},
		{"psych legacy", `{"song":{"notes":[{}]}}`, FileKind{Kind: KindPsychChart, Variant: VariantLegacyConvert}, "Psych Engine (Legacy) / Kade Engine / Other"},
		{"vslice chart", `{"version":"2.0.0","notes":{"hard":[]},"scrollSpeed":{"hard":1}}`, FileKind{Kind: KindVSliceChart}, "V-Slice Engine"},
		{"codename chart", `{"codenameChart":true,"strumLines":[]}`, FileKind{Kind: KindCodenameChart}, "Codename Engine"},
		{"array", `[1,2,3]`, FileKind{Kind: KindUnrecognized}, "Unknown"},
		{"not JSON", `{`, FileKind{Kind: KindUnrecognized}, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify([]byte(tt.data))
			if got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
			if got.Label() != tt.label {
				t.Errorf("Label() = %q, want %q", got.Label(), tt.label)
			}
		})
	}
}

func TestState_String(t *testing.T) {
	tests := map[State]string{
		StateEmpty:             "empty",
		StateChartLoaded:       "chart loaded",
		StateChartWithMetadata: "chart with metadata",
	}
	for state, want := range tests {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", state, got, want)
		}
	}
}

func TestVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	if info.Version != Version || info.GoVersion == "" {
		t.Errorf("GetVersionInfo() = %+v", info)
	}
}
