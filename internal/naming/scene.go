package naming

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// SceneID holds the fields of a Landsat Collection 2 product identifier.
// The organizer itself only needs the acquisition year; the full parse
// feeds verbose logging and the transfer history.
type SceneID struct {
	Sensor        string // e.g. "LC08"
	Level         string // e.g. "L2SP"
	Path          string // WRS-2 path, e.g. "141"
	Row           string // WRS-2 row, e.g. "055"
	AcquiredDate  string // YYYYMMDD
	ProcessedDate string // YYYYMMDD
	Collection    string // e.g. "02"
	Tier          string // e.g. "T1"
	Product       string // e.g. "SR_B4", "QA_PIXEL"; empty for bare scene IDs
}

// sceneIDRegex matches Landsat Collection 2 product IDs such as
// LC08_L2SP_141055_20150414_20200908_02_T1 with an optional product suffix.
var sceneIDRegex = regexp.MustCompile(
	`^([A-Z]{2}\d{2})_(L[0-9A-Z]{3})_(\d{3})(\d{3})_(\d{8})_(\d{8})_(\d{2})_(T[12]|RT)(?:_(.+))?$`)

// ParseSceneID decomposes a Landsat Collection 2 filename into its ID fields.
// The extension, if any, is ignored. Returns an error for filenames that do
// not follow the Collection 2 convention; such files may still carry a year
// token usable by ExtractYear.
func ParseSceneID(filename string) (*SceneID, error) {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))

	m := sceneIDRegex.FindStringSubmatch(base)
	if m == nil {
		return nil, fmt.Errorf("not a Landsat Collection 2 product ID: %s", filename)
	}

	return &SceneID{
		Sensor:        m[1],
		Level:         m[2],
		Path:          m[3],
		Row:           m[4],
		AcquiredDate:  m[5],
		ProcessedDate: m[6],
		Collection:    m[7],
		Tier:          m[8],
		Product:       m[9],
	}, nil
}

// AcquiredYear returns the 4-digit year of the acquisition date.
func (s *SceneID) AcquiredYear() string {
	return s.AcquiredDate[:4]
}

// String returns the scene ID without the product suffix.
func (s *SceneID) String() string {
	return fmt.Sprintf("%s_%s_%s%s_%s_%s_%s_%s",
		s.Sensor, s.Level, s.Path, s.Row,
		s.AcquiredDate, s.ProcessedDate, s.Collection, s.Tier)
}
