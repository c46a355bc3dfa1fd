package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/faceforward/internal/client/models"
)

func renderPrediction(w io.Writer, p *models.Prediction) {
	if p == nil || p.IsEmpty() {
		fmt.Fprintln(w, "No analysis available.")
		return
	}

	if lines := p.SummaryLines(); len(lines) > 0 {
		fmt.Fprintln(w, "Summary")
		for _, l := range lines {
			fmt.Fprintln(w, "  "+l)
		}
	}

	if keys := p.FeatureKeys(); len(keys) > 0 {
		fmt.Fprintln(w, "Features")
		for _, k := range keys {
			renderFeature(w, k, p.FaceFeatures[k])
		}
	}

	if len(p.Recommendations) > 0 {
		fmt.Fprintln(w, "Recommendations")
		for i, r := range p.Recommendations {
			renderRecommendation(w, i+1, r)
		}
	}
}

func renderFeature(w io.Writer, key string, f models.Feature) {
	head := "  " + models.FeatureLabel(key)
	if v := f.PrimaryValue(); v != "" {
		head += ": " + v
	}
	fmt.Fprintln(w, head)

	for _, k := range f.AttributeKeys() {
		fmt.Fprintf(w, "    %s: %s\n", humanize(k), f.Attributes[k])
	}
	for _, k := range f.MetricKeys() {
		fmt.Fprintf(w, "    %s: %d%%\n", humanize(k), models.MetricPercent(f.Metrics[k]))
	}
}

func renderRecommendation(w io.Writer, n int, r models.Recommendation) {
	head := fmt.Sprintf("  %d. %s", n, models.FeatureLabel(r.Feature))
	if r.Variant != "" {
		head += " (" + r.Variant + ")"
	}
	if r.Technique != "" {
		head += ": " + r.Technique
	}
	fmt.Fprintln(w, head)

	if r.WhyItMatches != "" {
		fmt.Fprintln(w, "     Why: "+r.WhyItMatches)
	}
	if len(r.Steps) > 0 {
		fmt.Fprintln(w, "     Steps:")
		for _, s := range r.Steps {
			fmt.Fprintln(w, "       - "+s)
		}
	}
	if r.Awareness != "" {
		fmt.Fprintln(w, "     Note: "+r.Awareness)
	}
}

func humanize(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}
