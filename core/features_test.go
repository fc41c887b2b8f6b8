package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeatureSet_Labels(t *testing.T) {
	t.Run("mapping renders sorted name-value pairs", func(t *testing.T) {
		fs := FeaturesFromMapping(map[string]string{
			"material": "cotton fleece",
			"fit":      "oversized",
		})
		assert.Equal(t, FeatureKindMapping, fs.Kind())
		assert.Equal(t, []string{"fit: oversized", "material: cotton fleece"}, fs.Labels())
	})

	t.Run("list trims and drops blanks", func(t *testing.T) {
		fs := FeaturesFromList([]string{" zip pocket ", "", "ribbed cuffs"})
		assert.Equal(t, []string{"zip pocket", "ribbed cuffs"}, fs.Labels())
	})

	t.Run("text splits on commas", func(t *testing.T) {
		fs := FeaturesFromText("breathable, quick-dry , ,high waist")
		assert.Equal(t, []string{"breathable", "quick-dry", "high waist"}, fs.Labels())
	})

	t.Run("zero value has no labels", func(t *testing.T) {
		var fs FeatureSet
		assert.Equal(t, FeatureKindNone, fs.Kind())
		assert.Nil(t, fs.Labels())
	})

	t.Run("empty inputs collapse to the none variant", func(t *testing.T) {
		assert.Equal(t, FeatureKindNone, FeaturesFromMapping(nil).Kind())
		assert.Equal(t, FeatureKindNone, FeaturesFromList(nil).Kind())
		assert.Equal(t, FeatureKindNone, FeaturesFromText("  ").Kind())
	})
}

func TestFeatureSet_Text(t *testing.T) {
	fs := FeaturesFromList([]string{"fleece", "kangaroo pocket"})
	assert.Equal(t, "fleece, kangaroo pocket", fs.Text())

	var empty FeatureSet
	assert.Equal(t, "", empty.Text())
}
