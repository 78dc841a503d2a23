package model

// UserSummary is the {id, name} pair returned by listings and suggestions.
type UserSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// UserInfo is the full view of a single user.
type UserInfo struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Friends   []int    `json:"friends"`
	Interests []string `json:"interests"`
}

// Stats summarises the size of the graph.
type Stats struct {
	Users       int `json:"users"`
	Friendships int `json:"friendships"`
	Communities int `json:"communities"`
	HighWater   int `json:"high_water"`
}

// Influencer is the user with the highest degree.
type Influencer struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Degree int    `json:"degree"`
}
