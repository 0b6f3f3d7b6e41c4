package simdrive

import (
	"encoding/json"
	"time"
)

// Config holds configuration for a scripted campaign run.
type Config struct {
	BaseURL      string        // Base URL of the service
	CompanyName  string        // Company name for the new game
	Days         int           // Number of days to play
	RecruitEvery int           // Run the recruitment flow every N days (0 disables)
	Candidates   int           // Candidates to generate per recruitment round
	Timeout      time.Duration // HTTP request timeout
	OutputFile   string        // Output file for collected day reports
	LogFile      string        // Log file for campaign output
	Verbose      bool          // Enable verbose logging
}

// agent carries the slice of the agent payload the directive policy reads.
type agent struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Skills     map[string]int `json:"skills"`
	Motivation float64        `json:"motivation"`
	Stability  float64        `json:"stability"`
}

// company mirrors the company block of a game state response.
type company struct {
	Name    string  `json:"name"`
	Cash    float64 `json:"cash"`
	Revenue float64 `json:"revenue"`
	Costs   float64 `json:"costs"`
}

// businessResults mirrors the results block of a day report.
type businessResults struct {
	Revenue     float64 `json:"revenue"`
	Costs       float64 `json:"costs"`
	Net         float64 `json:"net"`
	Clients     int     `json:"clients"`
	Errors      int     `json:"errors"`
	Innovations int     `json:"innovations"`
}

// dayReport mirrors the response of POST /game/day.
type dayReport struct {
	Day             int             `json:"day"`
	Results         businessResults `json:"results"`
	DecisionsImpact []string        `json:"decisions_impact"`
	Recommendations []string        `json:"recommendations"`
	EnergyTotal     int             `json:"energy_total"`
	EnergyUsed      int             `json:"energy_used"`
}

// gameState mirrors the responses of /game/start and /game/state/{id}.
type gameState struct {
	GameID      string  `json:"game_id"`
	Day         int     `json:"day"`
	Company     company `json:"company"`
	Agents      []agent `json:"agents"`
	EnergyTotal int     `json:"energy_total"`
}

// directive mirrors one entry of the actions array sent to /game/day.
type directive struct {
	AgentID string `json:"agent_id"`
	Action  string `json:"action"`
	Focus   string `json:"focus,omitempty"`
}

// candidate keeps the raw candidate payload so hire requests resubmit it
// byte-for-byte, plus the fields the selection policy peeks at.
type candidate struct {
	raw        json.RawMessage
	Name       string  `json:"name"`
	Motivation float64 `json:"motivation"`
}

// errorBody mirrors the service error envelope.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Stats holds campaign statistics.
type Stats struct {
	DaysPlayed       int
	DirectivesIssued int
	CandidatesSeen   int
	InterviewsHeld   int
	AgentsHired      int
	EnergyPurchases  int
	TotalRevenue     float64
	TotalCosts       float64
	TotalNet         float64
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}
