package render

import (
	"strings"
	"testing"

	"github.com/meguminbot/chartinfo/internal/types"
)

func vsliceSummary() *types.ChartSummary {
	easy := types.NewDifficulty("easy", 4)
	easy.Count(0)
	easy.Count(1)
	easy.Score(500)
	hard := types.NewDifficulty("hard", 4)
	for _, lane := range []int{0, 1, 2, 3, 3} {
		hard.Count(lane)
	}
	hard.Score(500)

	return &types.ChartSummary{
		Engine:      types.EngineVSlice,
		EngineLabel: "V-Slice Engine",
		SongName:    "Bopeebo",
		Artist:      "Kawai Sprite",
		Charter:     types.Unknown,
		BPM:         types.Num(100),
		ScrollSpeeds: []types.ScrollTimeline{
			{Difficulty: "easy", Initial: types.Num(1.2)},
			{Difficulty: "hard", Initial: types.Num(2), Changes: []float64{3}},
		},
		Difficulties: []types.DifficultySummary{easy, hard},
		Multiplier:   500,
		LaneCount:    4,
	}
}

func TestBuild(t *testing.T) {
	m := Build(vsliceSummary())

	wantHeader := []Field{
		{"Engine", "V-Slice Engine"},
		{"Song", "Bopeebo"},
		{"Artist", "Kawai Sprite"},
		{"Charter", "Unknown"},
		{"BPM", "100"},
		{"Scroll Speed", "1.2 (Easy), 2 (3) (Hard)"},
	}
	if len(m.Header) != len(wantHeader) {
		t.Fatalf("header = %v, want %v", m.Header, wantHeader)
	}
	for i, f := range wantHeader {
		if m.Header[i] != f {
			t.Errorf("header[%d] = %v, want %v", i, m.Header[i], f)
		}
	}

	if len(m.Sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(m.Sections))
	}
	hard := m.Sections[1]
	if hard.Title != "Hard Difficulty" || hard.MaxCombo != 5 || hard.MaxScore != 2500 {
		t.Errorf("hard section = %+v", hard)
	}
	if hard.Lanes[3] != (Field{"Right", "2"}) {
		t.Errorf("hard Right = %v", hard.Lanes[3])
	}
}

func TestBuild_ExtendedLaneLabels(t *testing.T) {
	d := types.NewDifficulty("", 8)
	s := &types.ChartSummary{EngineLabel: "Psych Engine", Difficulties: []types.DifficultySummary{d}}

	lanes := Build(s).Sections[0].Lanes
	if len(lanes) != 8 || lanes[4].Label != "Extra1" || lanes[7].Label != "Extra4" {
		t.Errorf("lanes = %v", lanes)
	}
}

func TestBPMText(t *testing.T) {
	tests := []struct {
		name string
		s    types.ChartSummary
		want string
	}{
		{"primary only", types.ChartSummary{BPM: types.Num(150)}, "150"},
		{"with changes", types.ChartSummary{BPM: types.Num(100), BPMChanges: []float64{120, 140.5}}, "100 (120, 140.5)"},
		{"unknown", types.ChartSummary{}, "Unknown"},
		{"meta not provided", types.ChartSummary{MetadataMissing: true, BPMChanges: []float64{150, 175}}, "<meta.json not provided> (150, 175)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BPMText(&tt.s); got != tt.want {
				t.Errorf("BPMText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestText(t *testing.T) {
	out := Text(Build(vsliceSummary()))

	for _, want := range []string{
		"Chart Information",
		"Engine: V-Slice Engine",
		"Easy Difficulty",
		"Left: 1",
		"Max Combo: 5",
		"Max Score: 2500",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Text() missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Warnings") {
		t.Error("Text() should not print a warnings block without warnings")
	}
}

func TestWiki(t *testing.T) {
	got := Wiki(vsliceSummary())

	want := "{{SongInfo\n" +
		"    | name = Bopeebo\n" +
		"    | icon = \n" +
		"    | file = \n" +
		"    | inst = \n" +
		"    | composer = Kawai Sprite\n" +
		"    | charter = Unknown\n" +
		"    | bpm = 100\n" +
		"    | scroll = 1.2 (Easy)<br>2 (3) (Hard)\n" +
		"    | maxcombo = 2 (Easy)<br>5 (Hard)\n" +
		"    | maxscore = 1000 (Easy)<br>2500 (Hard)}}"
	if got != want {
		t.Errorf("Wiki() =\n%s\nwant\n%s", got, want)
	}
}

func TestWiki_EmptySummary(t *testing.T) {
	got := Wiki(&types.ChartSummary{})

	for _, field := range []string{"name", "composer", "charter", "bpm", "scroll", "maxcombo"} {
		if !strings.Contains(got, "| "+field+" = Unknown\n") {
			t.Errorf("field %s should be Unknown:\n%s", field, got)
		}
	}
	if !strings.HasSuffix(got, "| maxscore = Unknown}}") {
		t.Errorf("maxscore should be Unknown:\n%s", got)
	}
}

func TestScrollTexts_PsychTwoDecimals(t *testing.T) {
	s := &types.ChartSummary{
		Engine: types.EnginePsych,
		ScrollSpeeds: []types.ScrollTimeline{
			{Initial: types.Num(2), Changes: []float64{3, 1.5, 2.25}},
		},
	}

	got := ScrollTexts(s)
	if len(got) != 1 || got[0] != "2 (3.00, 1.50, 2.25)" {
		t.Errorf("ScrollTexts() = %q, want [\"2 (3.00, 1.50, 2.25)\"]", got)
	}
	if wiki := Wiki(s); !strings.Contains(wiki, "| scroll = 2 (3.00, 1.50, 2.25)\n") {
		t.Errorf("Wiki() scroll line wrong:\n%s", wiki)
	}

	// Other engines keep the shortest form.
	s.Engine = types.EngineCodename
	if got := ScrollTexts(s); got[0] != "2 (3, 1.5, 2.25)" {
		t.Errorf("Codename ScrollTexts() = %q", got)
	}
}

func TestTitle(t *testing.T) {
	if got := Title("nightmare"); got != "Nightmare" {
		t.Errorf("Title() = %q", got)
	}
}
