package naming

import "testing"

func TestParseSceneID(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     SceneID
	}{
		{
			name:     "surface reflectance band with extension",
			filename: "LC08_L2SP_141055_20150414_20200908_02_T1_SR_B4.TIF",
			want: SceneID{
				Sensor: "LC08", Level: "L2SP", Path: "141", Row: "055",
				AcquiredDate: "20150414", ProcessedDate: "20200908",
				Collection: "02", Tier: "T1", Product: "SR_B4",
			},
		},
		{
			name:     "QA pixel band",
			filename: "LC09_L2SP_141055_20230704_20230706_02_T1_QA_PIXEL.TIF",
			want: SceneID{
				Sensor: "LC09", Level: "L2SP", Path: "141", Row: "055",
				AcquiredDate: "20230704", ProcessedDate: "20230706",
				Collection: "02", Tier: "T1", Product: "QA_PIXEL",
			},
		},
		{
			name:     "bare scene ID",
			filename: "LE07_L2SP_141055_20021130_20200916_02_T1",
			want: SceneID{
				Sensor: "LE07", Level: "L2SP", Path: "141", Row: "055",
				AcquiredDate: "20021130", ProcessedDate: "20200916",
				Collection: "02", Tier: "T1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSceneID(tt.filename)
			if err != nil {
				t.Fatalf("ParseSceneID(%q) unexpected error: %v", tt.filename, err)
			}
			if *got != tt.want {
				t.Errorf("ParseSceneID(%q) = %+v, want %+v", tt.filename, *got, tt.want)
			}
		})
	}
}

func TestParseSceneID_Invalid(t *testing.T) {
	for _, filename := range []string{
		"readme.txt",
		"notes_20150414.txt", // year token without the full ID shape
		"",
	} {
		if _, err := ParseSceneID(filename); err == nil {
			t.Errorf("ParseSceneID(%q) expected error", filename)
		}
	}
}

func TestSceneID_AcquiredYear(t *testing.T) {
	id, err := ParseSceneID("LC08_L2SP_141055_20150414_20200908_02_T1_SR_B4.TIF")
	if err != nil {
		t.Fatal(err)
	}
	if got := id.AcquiredYear(); got != "2015" {
		t.Errorf("AcquiredYear() = %q, want 2015", got)
	}
	if got := id.String(); got != "LC08_L2SP_141055_20150414_20200908_02_T1" {
		t.Errorf("String() = %q", got)
	}
}
