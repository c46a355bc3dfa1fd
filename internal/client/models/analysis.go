package models

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Known feature keys of face_features.
const (
	FeatureNose         = "nose"
	FeatureEyes         = "eyes"
	FeatureLips         = "lips"
	FeatureEyebrows     = "eyebrows"
	FeatureFaceShape    = "face_shape"
	FeatureFaceSymmetry = "face_symmetry"
	FeatureJawChin      = "jaw_chin"
	FeatureCheekbones   = "cheekbones"
)

var featureLabels = map[string]string{
	FeatureNose:         "Nose",
	FeatureEyes:         "Eyes",
	FeatureLips:         "Lips",
	FeatureEyebrows:     "Eyebrows",
	FeatureFaceShape:    "Face Shape",
	FeatureFaceSymmetry: "Symmetry",
	FeatureJawChin:      "Jaw & Chin",
	FeatureCheekbones:   "Cheekbones",
}

// FeatureLabel returns the display label of a feature key, or the key itself
// when it is not a known feature.
func FeatureLabel(key string) string {
	if l, ok := featureLabels[key]; ok {
		return l
	}
	return key
}

// MetricPercent converts a 0..1 metric to a whole percentage capped at 100.
func MetricPercent(v float64) int {
	pct := int(math.Round(v * 100))
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// AnalysisResponse is the body returned by POST /upload. The analysis may be
// wrapped in predictionResult or sent at the top level.
type AnalysisResponse struct {
	PredictionResult *Prediction `json:"predictionResult,omitempty"`
	Message          string      `json:"message,omitempty"`
	Prediction
}

// Result returns the analysis carried by the response, or nil if it has none.
func (r *AnalysisResponse) Result() *Prediction {
	if r == nil {
		return nil
	}
	if r.PredictionResult != nil {
		return r.PredictionResult
	}
	if r.Prediction.IsEmpty() {
		return nil
	}
	p := r.Prediction
	return &p
}

// Prediction is one facial analysis.
type Prediction struct {
	FaceFeatures    map[string]Feature `json:"face_features,omitempty"`
	Recommendations []Recommendation   `json:"recommendations,omitempty"`
	HumanReadable   string             `json:"human_readable,omitempty"`
}

func (p Prediction) IsEmpty() bool {
	return len(p.FaceFeatures) == 0 && len(p.Recommendations) == 0 && p.HumanReadable == ""
}

// SummaryLines splits HumanReadable into its non-empty lines.
func (p Prediction) SummaryLines() []string {
	var lines []string
	for _, l := range strings.Split(p.HumanReadable, "\n") {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// FeatureKeys returns the feature keys in a stable order: known features
// first in their canonical order, then the rest alphabetically.
func (p Prediction) FeatureKeys() []string {
	known := []string{FeatureFaceShape, FeatureEyes, FeatureEyebrows, FeatureNose, FeatureLips,
		FeatureCheekbones, FeatureJawChin, FeatureFaceSymmetry}

	keys := make([]string, 0, len(p.FaceFeatures))
	seen := make(map[string]struct{}, len(known))
	for _, k := range known {
		if _, ok := p.FaceFeatures[k]; ok {
			keys = append(keys, k)
			seen[k] = struct{}{}
		}
	}

	var rest []string
	for k := range p.FaceFeatures {
		if _, ok := seen[k]; !ok {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

// Feature describes one facial feature. Scalar descriptors (shape, level,
// width, ...) are kept as strings in Attributes; numeric 0..1 scores live
// in Metrics. Nested objects other than metrics are ignored.
type Feature struct {
	Attributes map[string]string
	Metrics    map[string]float64
}

// primaryKeys is the lookup order for a feature's headline value.
var primaryKeys = []string{"primary", "shape", "level", "fullness", "arch", "definition"}

// PrimaryValue returns the headline descriptor of the feature or "" if the
// feature carries none. Zero and false descriptors do not count.
func (f Feature) PrimaryValue() string {
	for _, k := range primaryKeys {
		if v := f.Attributes[k]; isDescriptor(v) {
			return v
		}
	}
	if jaw := f.Attributes["jaw"]; isDescriptor(jaw) {
		return jaw + " jaw"
	}
	return ""
}

func isDescriptor(v string) bool {
	return v != "" && v != "0" && v != "false"
}

// AttributeKeys returns the descriptor names sorted alphabetically.
func (f Feature) AttributeKeys() []string {
	keys := make([]string, 0, len(f.Attributes))
	for k := range f.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MetricKeys returns the metric names sorted alphabetically.
func (f Feature) MetricKeys() []string {
	keys := make([]string, 0, len(f.Metrics))
	for k := range f.Metrics {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (f *Feature) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	f.Attributes = make(map[string]string)
	f.Metrics = make(map[string]float64)

	for k, v := range raw {
		if k == "metrics" {
			var metrics map[string]json.RawMessage
			if err := json.Unmarshal(v, &metrics); err != nil {
				continue
			}
			for mk, mv := range metrics {
				var n float64
				if err := json.Unmarshal(mv, &n); err == nil {
					f.Metrics[mk] = n
				}
			}
			continue
		}
		if s, ok := scalarString(v); ok {
			f.Attributes[k] = s
		}
	}
	return nil
}

func (f Feature) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(f.Attributes)+1)
	for k, v := range f.Attributes {
		out[k] = v
	}
	if len(f.Metrics) > 0 {
		out["metrics"] = f.Metrics
	}
	return json.Marshal(out)
}

// scalarString renders a JSON string, number or bool as text. Objects, arrays
// and null report false.
func scalarString(v json.RawMessage) (string, bool) {
	var x any
	if err := json.Unmarshal(v, &x); err != nil {
		return "", false
	}
	switch t := x.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

// Recommendation is one styling suggestion tied to a facial feature.
type Recommendation struct {
	Feature      string   `json:"feature,omitempty"`
	Variant      string   `json:"variant,omitempty"`
	Technique    string   `json:"technique,omitempty"`
	WhyItMatches string   `json:"why_it_matches,omitempty"`
	Steps        []string `json:"steps,omitempty"`
	Awareness    string   `json:"awareness,omitempty"`
}
