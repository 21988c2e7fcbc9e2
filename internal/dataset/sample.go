package dataset

import (
	"fmt"
	"math/rand"
	"time"
)

// sampleReviews covers the business scenarios the analyzer is built for:
// praise, quality failures, shipping trouble, mis-fulfillment, pricing and
// safety complaints.
var sampleReviews = []string{
	"Excellent product! Highly recommend to everyone. Fast shipping too!",
	"Product broke after 2 days. Poor quality. Want a refund immediately.",
	"Good value for money, happy with purchase.",
	"Wrong item delivered. This is not what I ordered. Very disappointed.",
	"Amazing quality! Exceeded my expectations. Will buy again.",
	"Customer service was rude and unhelpful. Product is okay though.",
	"Perfect! Exactly what I needed. Great quality.",
	"Waste of money. Cheap materials. Do not buy this product.",
	"Decent product for the price. Shipping was delayed by a week.",
	"Outstanding quality and fast shipping! Love it!",
	"Defective product. Stopped working after one week. Need refund.",
	"Too small, doesn't fit. Size chart is wrong.",
	"Overpriced for what you get. Not worth the money.",
	"Item never arrived. Still waiting after 3 weeks.",
	"Dangerous product! My child got hurt. This should be recalled.",
	"Great product but package was damaged during shipping.",
	"Not as described on website. False advertising.",
	"Excellent customer service! Product works perfectly.",
	"Cheaply made. Fell apart immediately. Total waste.",
	"Five stars! Best purchase I've made this year!",
}

var sampleProducts = []string{
	"Laptop Stand", "Phone Case", "Wireless Headphones", "Tablet Cover", "USB Cable",
}

// ratingWeights skews sample ratings toward the upper end, the distribution
// real review datasets tend to show.
var ratingWeights = []struct {
	rating int
	weight float64
}{
	{1, 0.15}, {2, 0.15}, {3, 0.20}, {4, 0.25}, {5, 0.25},
}

// GenerateSample builds a deterministic sample dataset of n rows with text,
// rating, product, date and customer id columns.
func GenerateSample(n int, seed int64) *Dataset {
	rng := rand.New(rand.NewSource(seed))

	ds := &Dataset{
		Columns: []string{"review_text", "rating", "product", "date", "customer_id"},
	}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		row := []string{
			sampleReviews[rng.Intn(len(sampleReviews))],
			fmt.Sprintf("%d", weightedRating(rng)),
			sampleProducts[rng.Intn(len(sampleProducts))],
			start.AddDate(0, 0, i).Format("2006-01-02"),
			fmt.Sprintf("CUST%04d", i),
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds
}

func weightedRating(rng *rand.Rand) int {
	roll := rng.Float64()
	cumulative := 0.0
	for _, rw := range ratingWeights {
		cumulative += rw.weight
		if roll < cumulative {
			return rw.rating
		}
	}
	return ratingWeights[len(ratingWeights)-1].rating
}
