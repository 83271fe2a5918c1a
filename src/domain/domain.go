package domain

import "time"

// MarketType is the kind of wager a BetRecord describes.
type MarketType string

const (
	Moneyline MarketType = "moneyline"
	Spread    MarketType = "spread"
	Total     MarketType = "total"
)

const (
	SelectionOver  = "over"
	SelectionUnder = "under"

	// SubjectTotal is the subject of over/under bets, which belong to no team.
	SubjectTotal = "total"
)

// Card is one rendered game block: the league label from the card header
// and the block's text split into lines.
type Card struct {
	League string
	Lines  []string
}

// BetRecord is a single priced selection on one game. Records of the same
// game share League, EventTimeUTC, TeamA and TeamB.
type BetRecord struct {
	League       string     `json:"league"`
	EventTimeUTC time.Time  `json:"eventTimeUtc"`
	TeamA        string     `json:"teamA"`
	TeamB        string     `json:"teamB"`
	Period       string     `json:"period"`
	MarketType   MarketType `json:"marketType"`
	// Price is kept as the source prints it ("-133", "+110").
	Price     string  `json:"price"`
	Selection string  `json:"selection"`
	Subject   string  `json:"subject"`
	Line      float64 `json:"line"`
}
