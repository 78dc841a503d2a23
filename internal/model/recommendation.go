package model

// MutualRecommendation is a candidate ranked by common friends.
type MutualRecommendation struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Mutuals int    `json:"mutuals"`
}

// WeightedRecommendation is a candidate ranked by common friends and shared interests.
type WeightedRecommendation struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Score           float64  `json:"score"`
	Mutuals         int      `json:"mutuals"`
	SharedInterests int      `json:"shared_interests"`
	Shared          []string `json:"shared"`
}
