package sqlite

import (
	"encoding/json"
	"strings"

	"github.com/hunnit/stylist/core"
)

// The features column is historically messy: depending on which scraper
// produced the row it holds a JSON object, a JSON array, a JSON string,
// or bare comma-separated text. The shape is resolved to a core.FeatureSet
// exactly once, here at scan time.

func decodeFeatures(raw string) core.FeatureSet {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return core.FeatureSet{}
	}

	var mapping map[string]string
	if err := json.Unmarshal([]byte(raw), &mapping); err == nil {
		return core.FeaturesFromMapping(mapping)
	}

	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		return core.FeaturesFromList(list)
	}

	var text string
	if err := json.Unmarshal([]byte(raw), &text); err == nil {
		return core.FeaturesFromText(text)
	}

	return core.FeaturesFromText(raw)
}

func encodeFeatures(fs core.FeatureSet) string {
	labels := fs.Labels()
	if len(labels) == 0 {
		return ""
	}
	// Stored as a JSON array regardless of original shape: the normalized
	// labels are all downstream code ever consumes.
	encoded, err := json.Marshal(labels)
	if err != nil {
		return ""
	}
	return string(encoded)
}
