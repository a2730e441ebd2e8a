package request

// Rules is the rules block of a create-table request
type Rules struct {
	Type  string `json:"type"`
	Value int    `json:"value"`
}

// CreateTableRequest is the request body for creating a table
type CreateTableRequest struct {
	Name    string   `json:"name"`
	Players []string `json:"players"`
	Rules   *Rules   `json:"rules,omitempty"`
}

// RoundRequest is the request body for adding or editing a round
type RoundRequest struct {
	Scores    map[string]int `json:"scores"`
	Note      string         `json:"note,omitempty"`
	IsSpecial bool           `json:"is_special,omitempty"`
}
