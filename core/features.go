package core

import (
	"fmt"
	"sort"
	"strings"
)

// FeatureKind discriminates the shape the catalog stored features in.
type FeatureKind int

const (
	// FeatureKindNone means the product has no feature data.
	FeatureKindNone FeatureKind = iota
	// FeatureKindMapping is a name → value mapping ({"fit": "oversized"}).
	FeatureKindMapping
	// FeatureKindList is a plain list of short labels.
	FeatureKindList
	// FeatureKindText is a single comma-delimited string.
	FeatureKindText
)

// FeatureSet is the tagged variant for a product's feature field.
// The catalog stores features as a mapping, a list, or free text depending
// on the scraper that produced the row. The shape is resolved exactly once,
// here; downstream code only ever sees Labels().
type FeatureSet struct {
	kind    FeatureKind
	mapping map[string]string
	list    []string
	text    string
}

// FeaturesFromMapping builds a FeatureSet from a name → value mapping.
func FeaturesFromMapping(m map[string]string) FeatureSet {
	if len(m) == 0 {
		return FeatureSet{}
	}
	return FeatureSet{kind: FeatureKindMapping, mapping: m}
}

// FeaturesFromList builds a FeatureSet from a list of labels.
func FeaturesFromList(labels []string) FeatureSet {
	if len(labels) == 0 {
		return FeatureSet{}
	}
	return FeatureSet{kind: FeatureKindList, list: labels}
}

// FeaturesFromText builds a FeatureSet from a comma-delimited string.
func FeaturesFromText(text string) FeatureSet {
	if strings.TrimSpace(text) == "" {
		return FeatureSet{}
	}
	return FeatureSet{kind: FeatureKindText, text: text}
}

// Kind reports which variant this FeatureSet holds.
func (f FeatureSet) Kind() FeatureKind {
	return f.kind
}

// Labels returns the normalized list of feature strings.
// Mapping entries render as "name: value" (sorted by name so output is
// deterministic), text splits on commas with blanks dropped.
func (f FeatureSet) Labels() []string {
	switch f.kind {
	case FeatureKindMapping:
		names := make([]string, 0, len(f.mapping))
		for name := range f.mapping {
			names = append(names, name)
		}
		sort.Strings(names)
		labels := make([]string, 0, len(names))
		for _, name := range names {
			labels = append(labels, fmt.Sprintf("%s: %s", name, f.mapping[name]))
		}
		return labels
	case FeatureKindList:
		labels := make([]string, 0, len(f.list))
		for _, l := range f.list {
			if trimmed := strings.TrimSpace(l); trimmed != "" {
				labels = append(labels, trimmed)
			}
		}
		return labels
	case FeatureKindText:
		parts := strings.Split(f.text, ",")
		labels := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				labels = append(labels, trimmed)
			}
		}
		return labels
	default:
		return nil
	}
}

// Text returns the labels joined with ", " for embedding input.
func (f FeatureSet) Text() string {
	return strings.Join(f.Labels(), ", ")
}
