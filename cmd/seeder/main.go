// Copyright 2025 Hunnit Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Command seeder loads a sample gym-apparel catalog into the SQLite
// database, or imports products from a JSON file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/hunnit/stylist/catalog/sqlite"
	"github.com/hunnit/stylist/core"
)

var (
	dbPath       = flag.String("db", "stylist.db", "Path to the SQLite catalog database")
	seedFileName = flag.String("file", "", "Optional JSON file of products to seed instead of the built-in catalog")
)

func price(v float64) *float64 { return &v }

// products is the built-in sample catalog: enough variety per category
// for the lexicon, graph filters, and rerank to have something to bite on.
var products = []*core.Product{
	{
		ID:          1,
		Title:       "Flex Fleece Hoodie",
		Category:    "hoodie",
		Price:       price(1799),
		Description: "Heavyweight brushed fleece hoodie with a double-lined hood. Built for cold warm-ups and post-session layering.",
		ImageURL:    "https://cdn.hunnit.in/products/flex-fleece-hoodie.jpg",
		ProductURL:  "https://hunnit.in/products/flex-fleece-hoodie",
		Features:    core.FeaturesFromMapping(map[string]string{"fabric": "cotton fleece", "fit": "oversized", "gsm": "420"}),
	},
	{
		ID:          2,
		Title:       "Zip-Up Training Hoodie",
		Category:    "hoodie",
		Price:       price(2199),
		Description: "Full-zip midweight hoodie with thumbholes and zippered side pockets. Layers clean over a training tee.",
		ImageURL:    "https://cdn.hunnit.in/products/zip-up-training-hoodie.jpg",
		ProductURL:  "https://hunnit.in/products/zip-up-training-hoodie",
		Features:    core.FeaturesFromList([]string{"full zip", "thumbholes", "zippered pockets"}),
	},
	{
		ID:          3,
		Title:       "Cropped Gym Hoodie",
		Category:    "hoodie",
		Price:       price(1499),
		Description: "Cropped boxy hoodie in soft loopback terry. Pairs with high-waisted shorts or leggings.",
		ImageURL:    "https://cdn.hunnit.in/products/cropped-gym-hoodie.jpg",
		ProductURL:  "https://hunnit.in/products/cropped-gym-hoodie",
		Features:    core.FeaturesFromList([]string{"cropped", "loopback terry", "raw hem"}),
	},
	{
		ID:          4,
		Title:       "Everyday Pullover Hoodie",
		Category:    "hoodie",
		Price:       price(1299),
		Description: "Lightweight pullover hoodie for mild evenings. Kangaroo pocket, ribbed cuffs, no-fuss fit.",
		ImageURL:    "https://cdn.hunnit.in/products/everyday-pullover-hoodie.jpg",
		ProductURL:  "https://hunnit.in/products/everyday-pullover-hoodie",
		Features:    core.FeaturesFromText("kangaroo pocket, ribbed cuffs, lightweight"),
	},
	{
		ID:          5,
		Title:       "Core Training Tee",
		Category:    "tshirt",
		Price:       price(699),
		Description: "Breathable crew-neck tee in sweat-wicking jersey. The default top for any session.",
		ImageURL:    "https://cdn.hunnit.in/products/core-training-tee.jpg",
		ProductURL:  "https://hunnit.in/products/core-training-tee",
		Features:    core.FeaturesFromMapping(map[string]string{"fabric": "polyester jersey", "fit": "regular", "neck": "crew"}),
	},
	{
		ID:          6,
		Title:       "Oversized Pump Tee",
		Category:    "tshirt",
		Price:       price(899),
		Description: "Drop-shoulder oversized tee in heavyweight cotton. Streetwear cut that still breathes in the gym.",
		ImageURL:    "https://cdn.hunnit.in/products/oversized-pump-tee.jpg",
		ProductURL:  "https://hunnit.in/products/oversized-pump-tee",
		Features:    core.FeaturesFromList([]string{"oversized", "drop shoulder", "240 gsm cotton"}),
	},
	{
		ID:          7,
		Title:       "Seamless Tank Top",
		Category:    "tshirt",
		Price:       price(799),
		Description: "Second-skin seamless tank with ventilation zones across the back. Made for high-rep days.",
		ImageURL:    "https://cdn.hunnit.in/products/seamless-tank-top.jpg",
		ProductURL:  "https://hunnit.in/products/seamless-tank-top",
		Features:    core.FeaturesFromList([]string{"seamless", "ventilation zones", "racerback"}),
	},
	{
		ID:          8,
		Title:       "Crop Top Luxe",
		Category:    "tshirt",
		Description: "Soft modal crop top with a relaxed drape. Studio-to-street without a second thought.",
		ImageURL:    "https://cdn.hunnit.in/products/crop-top-luxe.jpg",
		ProductURL:  "https://hunnit.in/products/crop-top-luxe",
		Features:    core.FeaturesFromText("modal blend, relaxed drape, cropped"),
	},
	{
		ID:          9,
		Title:       "Velocity Running Shorts",
		Category:    "shorts",
		Price:       price(999),
		Description: "Featherweight 5-inch running shorts with an inner brief and reflective trims for night runs.",
		ImageURL:    "https://cdn.hunnit.in/products/velocity-running-shorts.jpg",
		ProductURL:  "https://hunnit.in/products/velocity-running-shorts",
		Features:    core.FeaturesFromMapping(map[string]string{"inseam": "5 inch", "liner": "inner brief", "trim": "reflective"}),
	},
	{
		ID:          10,
		Title:       "High-Waisted Biker Shorts",
		Category:    "shorts",
		Price:       price(1099),
		Description: "Squat-proof high-waisted biker shorts with a sculpting waistband and side phone pocket.",
		ImageURL:    "https://cdn.hunnit.in/products/high-waisted-biker-shorts.jpg",
		ProductURL:  "https://hunnit.in/products/high-waisted-biker-shorts",
		Features:    core.FeaturesFromList([]string{"high-waisted", "squat-proof", "phone pocket"}),
	},
	{
		ID:          11,
		Title:       "Mesh Basketball Shorts",
		Category:    "shorts",
		Price:       price(1199),
		Description: "Loose-fit mesh shorts that move with you. Old-school look, modern quick-dry fabric.",
		ImageURL:    "https://cdn.hunnit.in/products/mesh-basketball-shorts.jpg",
		ProductURL:  "https://hunnit.in/products/mesh-basketball-shorts",
		Features:    core.FeaturesFromList([]string{"mesh", "loose fit", "quick dry"}),
	},
	{
		ID:          12,
		Title:       "Co-ord Shorts Set",
		Category:    "shorts",
		Price:       price(2499),
		Description: "Matching shorts and crop top co-ord in ribbed knit. One decision, full outfit.",
		ImageURL:    "https://cdn.hunnit.in/products/co-ord-shorts-set.jpg",
		ProductURL:  "https://hunnit.in/products/co-ord-shorts-set",
		Features:    core.FeaturesFromText("ribbed knit, two piece, matching set"),
	},
}

// seedProduct is the JSON row format accepted via -file.
type seedProduct struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	ProductURL  string   `json:"product_url"`
	Features    []string `json:"features"`
}

func productsFromFile(filename string) ([]*core.Product, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var rows []seedProduct
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	out := make([]*core.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, &core.Product{
			ID:          core.ID(row.ID),
			Title:       row.Title,
			Category:    row.Category,
			Price:       row.Price,
			Description: row.Description,
			ImageURL:    row.ImageURL,
			ProductURL:  row.ProductURL,
			Features:    core.FeaturesFromList(row.Features),
		})
	}
	return out, nil
}

func main() {
	flag.Parse()

	store, err := sqlite.NewStore(*dbPath)
	if err != nil {
		panic(err)
	}
	defer store.Close()

	seed := products
	if *seedFileName != "" {
		seed, err = productsFromFile(*seedFileName)
		if err != nil {
			panic(err)
		}
	}

	ctx := context.Background()
	if err := store.AddProducts(ctx, seed...); err != nil {
		panic(err)
	}

	count, err := store.CountProducts(ctx)
	if err != nil {
		panic(err)
	}
	fmt.Fprintf(os.Stderr, "Catalog now holds %d products\n", count)
}
