package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Table:
		o.printTable(v)
	case TableList:
		o.printTableList(v)
	case Round:
		o.printRound(v)
	case Scoreboard:
		o.printScoreboard(v)
	case History:
		o.printHistory(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Round response type
type Round struct {
	ID        string         `json:"id"`
	Date      int64          `json:"date"`
	Scores    map[string]int `json:"scores"`
	Note      string         `json:"note,omitempty"`
	IsSpecial bool           `json:"is_special,omitempty"`
}

// Rules response type
type Rules struct {
	Type  string `json:"type"`
	Value int    `json:"value"`
}

// Table response type
type Table struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	CreatedAt int64    `json:"created_at"`
	Players   []Player `json:"players"`
	Rounds    []Round  `json:"rounds"`
	Rules     Rules    `json:"rules"`
	IsActive  bool     `json:"is_active"`
}

// TableList wraps a table slice for text rendering
type TableList []Table

// RuleStatus response type
type RuleStatus struct {
	Type         string `json:"type"`
	Value        int    `json:"value"`
	RoundsPlayed int    `json:"rounds_played"`
	Reached      bool   `json:"reached"`
}

// Standing response type
type Standing struct {
	Rank   int    `json:"rank"`
	Player Player `json:"player"`
	Score  int    `json:"score"`
}

// Scoreboard response type
type Scoreboard struct {
	TableID    string         `json:"table_id"`
	Scores     map[string]int `json:"scores"`
	Standings  []Standing     `json:"standings"`
	Leader     *Player        `json:"leader"`
	Trailer    *Player        `json:"trailer"`
	RuleStatus RuleStatus     `json:"rule_status"`
}

// History response type
type History struct {
	TableID string  `json:"table_id"`
	Rounds  []Round `json:"rounds"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func formatDate(millis int64) string {
	return time.UnixMilli(millis).Local().Format("2006-01-02 15:04")
}

func (o *Output) printTable(t Table) {
	fmt.Printf("Table: %s (%s)\n", t.Name, t.ID)
	fmt.Printf("Created: %s\n", formatDate(t.CreatedAt))
	fmt.Printf("Rounds Played: %d\n", len(t.Rounds))
	if t.Rules.Type != "" && t.Rules.Type != "NONE" {
		fmt.Printf("Rule: %s (%d)\n", t.Rules.Type, t.Rules.Value)
	}
	fmt.Printf("Players (%d):\n", len(t.Players))
	for _, p := range t.Players {
		fmt.Printf("  - %s (%s)\n", p.Name, p.ID)
	}
}

func (o *Output) printTableList(tables TableList) {
	if len(tables) == 0 {
		fmt.Println("No tables")
		return
	}
	fmt.Printf("Tables (%d):\n", len(tables))
	for _, t := range tables {
		fmt.Printf("  - %s (%s) - %d players, %d rounds, created %s\n",
			t.Name, t.ID, len(t.Players), len(t.Rounds), formatDate(t.CreatedAt))
	}
}

func (o *Output) printRound(r Round) {
	fmt.Printf("Round: %s\n", r.ID)
	fmt.Printf("Date: %s\n", formatDate(r.Date))
	if r.IsSpecial {
		fmt.Println("Special: yes")
	}
	if r.Note != "" {
		fmt.Printf("Note: %s\n", r.Note)
	}
	fmt.Println("Scores:")
	for pid, score := range r.Scores {
		fmt.Printf("  %s: %+d\n", pid, score)
	}
}

func (o *Output) printScoreboard(s Scoreboard) {
	fmt.Printf("Scoreboard for table %s\n", s.TableID)
	fmt.Println("Standings:")
	for _, st := range s.Standings {
		fmt.Printf("  %d. %s: %+d\n", st.Rank, st.Player.Name, st.Score)
	}
	if s.Leader != nil {
		fmt.Printf("Leader: %s\n", s.Leader.Name)
	}
	if s.Trailer != nil {
		fmt.Printf("Trailer: %s\n", s.Trailer.Name)
	}
	if s.RuleStatus.Type != "" && s.RuleStatus.Type != "NONE" {
		reachedStr := "no"
		if s.RuleStatus.Reached {
			reachedStr = "yes"
		}
		fmt.Printf("Rule: %s (%d) - reached: %s\n", s.RuleStatus.Type, s.RuleStatus.Value, reachedStr)
	}
}

func (o *Output) printHistory(h History) {
	if len(h.Rounds) == 0 {
		fmt.Println("No rounds")
		return
	}
	fmt.Printf("History (%d rounds, newest first):\n", len(h.Rounds))
	for _, r := range h.Rounds {
		special := ""
		if r.IsSpecial {
			special = " [special]"
		}
		fmt.Printf("  %s - %s%s\n", formatDate(r.Date), r.ID, special)
		for pid, score := range r.Scores {
			fmt.Printf("    %s: %+d\n", pid, score)
		}
		if r.Note != "" {
			fmt.Printf("    note: %s\n", r.Note)
		}
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
