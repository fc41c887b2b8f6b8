package lexicon

import "strings"

// Entry maps a canonical category to the synonym phrases shoppers use
// for it. Matching any phrase signals intent for the category.
type Entry struct {
	Category string
	Synonyms []string
}

// Entries is the category intent lexicon for the catalog.
// Order matters: DetectIntentCategory returns the first category with a
// matching synonym, so broader categories must come after narrower ones.
var Entries = []Entry{
	{
		Category: "hoodie",
		Synonyms: []string{
			"hoodie",
			"hoodies",
			"gym hoodie",
			"gym hoodies",
			"workout hoodie",
			"workout hoodies",
			"active hoodie",
			"fleece hoodie",
			"oversized hoodie",
			"oversized hoodies",
			"zip hoodie",
			"zip-up hoodie",
			"full zip hoodie",
			"cropped hoodie",
			"hooded jacket",
			"hooded sweatshirt",
			"sweat jacket",
		},
	},
	{
		Category: "tshirt",
		Synonyms: []string{
			"tshirt",
			"t-shirt",
			"tee",
			"tees",
			"crew neck",
			"crew-neck tee",
			"round neck",
			"top",
			"tank top",
			"tank",
			"crop top",
			"cropped tee",
			"training top",
			"gym top",
			"workout top",
		},
	},
	{
		Category: "shorts",
		Synonyms: []string{
			"shorts",
			"gym shorts",
			"workout shorts",
			"sports shorts",
			"active shorts",
			"running shorts",
			"biker shorts",
			"high-waisted shorts",
			"co-ord shorts",
			"shorts co-ord",
			"bottoms",
			"active bottom",
			"sport bottom",
		},
	},
}

// DetectIntentCategory guesses which catalog category a free-text query is
// about. Matching is a case-insensitive substring check against every
// synonym phrase; the first category in lexicon order wins. Returns ""
// when no synonym appears in the query.
func DetectIntentCategory(query string) string {
	q := strings.ToLower(query)
	for _, entry := range Entries {
		for _, syn := range entry.Synonyms {
			if strings.Contains(q, syn) {
				return entry.Category
			}
		}
	}
	return ""
}

// Enrich appends all synonym phrases of the detected category to the
// query, space-joined, to strengthen the vector-similarity signal of the
// embedded query. The query is returned unchanged when category is empty
// or unknown. Pure function.
func Enrich(query, category string) string {
	if category == "" {
		return query
	}
	for _, entry := range Entries {
		if entry.Category == category {
			return query + " " + strings.Join(entry.Synonyms, " ")
		}
	}
	return query
}

// Synonyms returns the synonym phrases for a category, or nil when the
// category is not in the lexicon.
func Synonyms(category string) []string {
	for _, entry := range Entries {
		if entry.Category == category {
			return entry.Synonyms
		}
	}
	return nil
}
