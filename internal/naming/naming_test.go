package naming

import (
	"errors"
	"testing"
)

func TestExtractYear(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{
			name:     "Landsat 8 surface reflectance band",
			filename: "LC08_L2SP_141055_20150414_20200908_02_T1_SR_B4.TIF",
			want:     "2015",
		},
		{
			name:     "Landsat 8 QA band",
			filename: "LC08_L2SP_141055_20180101_20200902_02_T1_QA_PIXEL.TIF",
			want:     "2018",
		},
		{
			name:     "bare scene ID without extension",
			filename: "LE07_L2SP_141055_20021130_20200916_02_T1",
			want:     "2002",
		},
		{
			name:     "year token at start",
			filename: "20191225_scene.tif",
			want:     "2019",
		},
		{
			name:     "implausible year still accepted",
			filename: "scene_99991231_b1.tif",
			want:     "9999",
		},
		{
			name:     "first 8-digit token wins even if not a date",
			filename: "scene_12345678_20150414.tif",
			want:     "1234",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractYear(tt.filename)
			if err != nil {
				t.Fatalf("ExtractYear(%q) unexpected error: %v", tt.filename, err)
			}
			if got != tt.want {
				t.Errorf("ExtractYear(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestExtractYear_NoToken(t *testing.T) {
	tests := []struct {
		name     string
		filename string
	}{
		{name: "plain text file", filename: "readme.txt"},
		{name: "seven digit segment", filename: "scene_2015041_b4.tif"},
		{name: "nine digit segment", filename: "scene_201504140_b4.tif"},
		{name: "eight chars with letter", filename: "scene_2015041a_b4.tif"},
		{name: "digits split by extension dot", filename: "scene_201504.14.tif"},
		{name: "empty string", filename: ""},
		{name: "underscores only", filename: "___"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractYear(tt.filename)
			if !errors.Is(err, ErrNoYear) {
				t.Errorf("ExtractYear(%q) error = %v, want ErrNoYear", tt.filename, err)
			}
			if got != "" {
				t.Errorf("ExtractYear(%q) = %q, want empty", tt.filename, got)
			}
		})
	}
}

func TestHasYearToken(t *testing.T) {
	if !HasYearToken("LC08_L2SP_141055_20150414_20200908_02_T1_SR_B4.TIF") {
		t.Error("expected year token in Landsat filename")
	}
	if HasYearToken("notes.txt") {
		t.Error("did not expect year token in notes.txt")
	}
}
