package psych

import (
	"reflect"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/meguminbot/chartinfo/internal/types"
)

func eventsDoc(json string) types.Document {
	return types.Document{Name: "events.json", ContentType: "application/json", Data: []byte(json)}
}

func TestMerge_LegacyChart(t *testing.T) {
	chart := chartOf(types.VariantLegacyConvert, `{"song":{"notes":[{}],"events":[
		[0, [["Hey!", "", ""]]],
		[500, [["Change Scroll Speed", "2", ""]]]
	]}}`)
	events := eventsDoc(`{"song":{"events":[
		[500, [["Change Scroll Speed", "2", ""]]],
		[900, [["Change Scroll Speed", "0.5", ""]]]
	]}}`)

	merged, err := (&Extractor{}).Merge(chart, events)
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}

	want := []string{
		`[0,[["Hey!","",""]]]`,
		`[500,[["Change Scroll Speed","2",""]]]`,
		`[900,[["Change Scroll Speed","0.5",""]]]`,
	}
	if got := Events(merged); !reflect.DeepEqual(got, want) {
		t.Errorf("Events() = %v, want %v", got, want)
	}

	// Notes survive the rewrite.
	if !gjson.GetBytes(merged.Doc.Data, "song.notes").IsArray() {
		t.Error("merged chart lost song.notes")
	}
}

func TestMerge_V1ChartAndV1Events(t *testing.T) {
	chart := chartOf(types.VariantV1, `{"format":"psych_v1","notes":[{}]}`)
	events := eventsDoc(`{"format":"psych_v1","events":[[10,[["Change Scroll Speed","1.5",""]]]]}`)

	merged, err := (&Extractor{}).Merge(chart, events)
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}

	got := Events(merged)
	if len(got) != 1 || got[0] != `[10,[["Change Scroll Speed","1.5",""]]]` {
		t.Errorf("Events() = %v", got)
	}

	s, err := (&Extractor{}).Extract(merged, nil, types.ExtractOptions{Multiplier: 350})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !reflect.DeepEqual(s.ScrollSpeeds[0].Changes, []float64{1.5}) {
		t.Errorf("scroll changes = %v, want [1.5]", s.ScrollSpeeds[0].Changes)
	}
}

func TestMerge_Idempotent(t *testing.T) {
	chart := chartOf(types.VariantLegacyConvert, `{"song":{"notes":[{}],"events":[[0,[["A","",""]]]]}}`)
	events := eventsDoc(`{"song":{"events":[[0,[["A","",""]]],[1,[["B","",""]]]]}}`)
	ex := &Extractor{}

	once, err := ex.Merge(chart, events)
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	twice, err := ex.Merge(once, events)
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}

	if !reflect.DeepEqual(Events(once), Events(twice)) {
		t.Errorf("merge is not idempotent: %v vs %v", Events(once), Events(twice))
	}
}

func TestMerge_WhitespaceInsensitiveDedupe(t *testing.T) {
	chart := chartOf(types.VariantV1, `{"format":"psych_v1","notes":[{}],"events":[[0,[["A","1",""]]]]}`)
	events := eventsDoc(`{"format":"psych_v1","events":[ [ 0 , [ [ "A" , "1" , "" ] ] ] ]}`)

	merged, err := (&Extractor{}).Merge(chart, events)
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if got := Events(merged); len(got) != 1 {
		t.Errorf("Events() = %v, want a single event", got)
	}
}

func TestMerge_NumericEquivalentDedupe(t *testing.T) {
	tests := []struct {
		name   string
		chart  string
		events string
	}{
		{
			name:   "number spelling",
			chart:  `[100,[["Change Scroll Speed","1.5",""]]]`,
			events: `[100.0,[["Change Scroll Speed","1.5",""]]]`,
		},
		{
			name:   "exponent",
			chart:  `[100,[["A","",""]]]`,
			events: `[1e2,[["A","",""]]]`,
		},
		{
			name:   "string escape",
			chart:  `[0,[["A","",""]]]`,
			events: `[0,[["\u0041","",""]]]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chart := chartOf(types.VariantV1, `{"format":"psych_v1","notes":[{}],"events":[`+tt.chart+`]}`)
			events := eventsDoc(`{"format":"psych_v1","events":[` + tt.events + `]}`)

			merged, err := (&Extractor{}).Merge(chart, events)
			if err != nil {
				t.Fatalf("Merge() error = %v", err)
			}
			got := Events(merged)
			if len(got) != 1 {
				t.Fatalf("Events() = %v, want a single event", got)
			}
			if got[0] != tt.chart {
				t.Errorf("kept %s, want the chart's own spelling %s", got[0], tt.chart)
			}
		})
	}
}

func TestMerge_DistinctEventsKept(t *testing.T) {
	chart := chartOf(types.VariantV1, `{"format":"psych_v1","notes":[{}],"events":[[0,[["A","1",""]]]]}`)
	events := eventsDoc(`{"format":"psych_v1","events":[[0,[["A","1.0",""]]],[0,[["A",1,""]]]]}`)

	merged, err := (&Extractor{}).Merge(chart, events)
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if got := Events(merged); len(got) != 3 {
		t.Errorf("Events() = %v, want 3 distinct events", got)
	}
}

func TestMerge_DoesNotMutateInput(t *testing.T) {
	data := `{"format":"psych_v1","notes":[{}],"events":[]}`
	chart := chartOf(types.VariantV1, data)
	events := eventsDoc(`{"format":"psych_v1","events":[[0,[["A","",""]]]]}`)

	if _, err := (&Extractor{}).Merge(chart, events); err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if string(chart.Doc.Data) != data {
		t.Errorf("Merge mutated the chart: %s", chart.Doc.Data)
	}
}

func TestMerge_NoEventList(t *testing.T) {
	chart := chartOf(types.VariantV1, `{"format":"psych_v1","notes":[{}],"events":[[0,[["A","",""]]]]}`)

	merged, err := (&Extractor{}).Merge(chart, eventsDoc(`{"song":{}}`))
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if string(merged.Doc.Data) != string(chart.Doc.Data) {
		t.Errorf("chart changed without incoming events: %s", merged.Doc.Data)
	}
}
