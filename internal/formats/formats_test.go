package formats

import (
	"testing"

	"github.com/ytget/ytpick/internal/model"
)

func strPtr(s string) *string   { return &s }
func intPtr(i int) *int         { return &i }
func int64Ptr(i int64) *int64   { return &i }
func f64Ptr(f float64) *float64 { return &f }

func videoOnly(id string, height int, tbr float64) model.StreamVariant {
	return model.StreamVariant{FormatID: id, Ext: "mp4", VCodec: strPtr("avc1"), ACodec: strPtr("none"), Height: intPtr(height), TBR: f64Ptr(tbr)}
}

func audioOnly(id, ext string, abr float64) model.StreamVariant {
	return model.StreamVariant{FormatID: id, Ext: ext, VCodec: strPtr("none"), ACodec: strPtr("mp4a.40.2"), ABR: f64Ptr(abr)}
}

func ids(variants []model.StreamVariant) []string {
	out := make([]string, 0, len(variants))
	for _, v := range variants {
		out = append(out, v.FormatID)
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		variant  model.StreamVariant
		expected Kind
	}{
		{"video only", model.StreamVariant{VCodec: strPtr("vp9"), ACodec: strPtr("none")}, KindVideoOnly},
		{"audio only", model.StreamVariant{VCodec: strPtr("none"), ACodec: strPtr("opus")}, KindAudioOnly},
		{"muxed", model.StreamVariant{VCodec: strPtr("avc1"), ACodec: strPtr("aac")}, KindOther},
		{"both none", model.StreamVariant{VCodec: strPtr("none"), ACodec: strPtr("none")}, KindOther},
		{"video codec missing", model.StreamVariant{ACodec: strPtr("none")}, KindOther},
		{"audio codec missing", model.StreamVariant{VCodec: strPtr("none")}, KindOther},
		{"video with unknown audio", model.StreamVariant{VCodec: strPtr("avc1")}, KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.variant); got != tt.expected {
				t.Errorf("Classify() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestPartition_IsExclusive(t *testing.T) {
	variants := []model.StreamVariant{
		videoOnly("137", 1080, 500),
		audioOnly("140", "m4a", 128),
		{FormatID: "18", VCodec: strPtr("avc1"), ACodec: strPtr("aac"), Height: intPtr(360)},
		{FormatID: "sb0", VCodec: strPtr("none"), ACodec: strPtr("none")},
		videoOnly("248", 1080, 900),
		audioOnly("251", "webm", 160),
	}

	video, audio := Partition(variants)

	seen := make(map[string]int)
	for _, v := range video {
		seen[v.FormatID]++
	}
	for _, a := range audio {
		seen[a.FormatID]++
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("format %s appears in %d groups", id, n)
		}
	}
	if _, ok := seen["18"]; ok {
		t.Error("muxed format 18 should be excluded")
	}
	if _, ok := seen["sb0"]; ok {
		t.Error("storyboard format sb0 should be excluded")
	}
	if len(video)+len(audio) != 4 {
		t.Errorf("expected 4 classified variants, got %d", len(video)+len(audio))
	}

	if variants[0].FormatID != "137" || variants[4].FormatID != "248" {
		t.Error("Partition should not reorder its input")
	}
}

func TestPartition_MuxedExample(t *testing.T) {
	variants := []model.StreamVariant{
		{FormatID: "137", VCodec: strPtr("avc1"), ACodec: strPtr("none"), Height: intPtr(1080), TBR: f64Ptr(500), FileSize: int64Ptr(50_000_000)},
		{FormatID: "18", VCodec: strPtr("avc1"), ACodec: strPtr("aac"), Height: intPtr(360), TBR: f64Ptr(100)},
	}

	video, audio := Partition(variants)

	if !equalIDs(ids(video), []string{"137"}) {
		t.Errorf("expected video [137], got %v", ids(video))
	}
	if video[0].HeightOrZero() != 1080 {
		t.Errorf("expected height 1080, got %d", video[0].HeightOrZero())
	}
	if len(audio) != 0 {
		t.Errorf("expected no audio, got %v", ids(audio))
	}
}

func TestRankVideo(t *testing.T) {
	noHeight := model.StreamVariant{FormatID: "nh", VCodec: strPtr("avc1"), ACodec: strPtr("none"), TBR: f64Ptr(9000)}
	zeroHeight := model.StreamVariant{FormatID: "zh", VCodec: strPtr("avc1"), ACodec: strPtr("none"), Height: intPtr(0), TBR: f64Ptr(9000)}

	tests := []struct {
		name     string
		input    []model.StreamVariant
		expected []string
	}{
		{
			name:     "height first",
			input:    []model.StreamVariant{videoOnly("a", 480, 900), videoOnly("b", 1080, 100), videoOnly("c", 720, 500)},
			expected: []string{"b", "c", "a"},
		},
		{
			name:     "bitrate breaks ties",
			input:    []model.StreamVariant{videoOnly("a", 1080, 100), videoOnly("b", 1080, 300), videoOnly("c", 1080, 200)},
			expected: []string{"b", "c", "a"},
		},
		{
			name:     "unknown height sorts last",
			input:    []model.StreamVariant{noHeight, videoOnly("a", 144, 10)},
			expected: []string{"a", "nh"},
		},
		{
			name:     "stable under equal keys",
			input:    []model.StreamVariant{videoOnly("x", 720, 100), videoOnly("y", 720, 100), videoOnly("z", 720, 100)},
			expected: []string{"x", "y", "z"},
		},
		{
			name:     "missing equals explicit zero",
			input:    []model.StreamVariant{noHeight, zeroHeight},
			expected: []string{"nh", "zh"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RankVideo(tt.input)
			if got := ids(tt.input); !equalIDs(got, tt.expected) {
				t.Errorf("RankVideo() order = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestRankAudio(t *testing.T) {
	noABR := model.StreamVariant{FormatID: "n", VCodec: strPtr("none"), ACodec: strPtr("opus")}

	audio := []model.StreamVariant{
		audioOnly("139", "m4a", 48),
		noABR,
		audioOnly("251", "webm", 160),
		audioOnly("140", "m4a", 128),
		audioOnly("250", "webm", 128),
	}
	RankAudio(audio)

	expected := []string{"251", "140", "250", "139", "n"}
	if got := ids(audio); !equalIDs(got, expected) {
		t.Errorf("RankAudio() order = %v, expected %v", got, expected)
	}
}

func TestEstimateMiB(t *testing.T) {
	tests := []struct {
		name     string
		variant  model.StreamVariant
		expected float64
	}{
		{"no size", model.StreamVariant{}, 0},
		{"exactly one MiB", model.StreamVariant{FileSize: int64Ptr(1 << 20)}, 1},
		{"approximate only", model.StreamVariant{FileSizeApprox: int64Ptr(3 << 19)}, 1.5},
		{"declared wins", model.StreamVariant{FileSize: int64Ptr(1 << 20), FileSizeApprox: int64Ptr(10 << 20)}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateMiB(tt.variant); got != tt.expected {
				t.Errorf("EstimateMiB() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestEstimateMiB_Monotonic(t *testing.T) {
	sizes := []int64{0, 1, 1023, 1 << 20, 50_000_000, 50_000_001, 4 << 30}
	prev := -1.0
	for _, size := range sizes {
		got := EstimateMiB(model.StreamVariant{FileSize: int64Ptr(size)})
		if got < prev {
			t.Errorf("EstimateMiB(%d) = %v is smaller than previous %v", size, got, prev)
		}
		prev = got
	}
}

func TestTop(t *testing.T) {
	variants := []model.StreamVariant{videoOnly("a", 1, 1), videoOnly("b", 1, 1), videoOnly("c", 1, 1)}

	if got := Top(variants, 2); len(got) != 2 {
		t.Errorf("Top(2) returned %d entries", len(got))
	}
	if got := Top(variants, 6); len(got) != 3 {
		t.Errorf("Top(6) returned %d entries", len(got))
	}
	if got := Top(variants, -1); len(got) != 0 {
		t.Errorf("Top(-1) returned %d entries", len(got))
	}
}

func TestKind_String(t *testing.T) {
	if KindVideoOnly.String() != "video" || KindAudioOnly.String() != "audio" || KindOther.String() != "other" {
		t.Error("unexpected kind names")
	}
}
