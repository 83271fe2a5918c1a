package lines

// Field names one positional slot of a rendered game block.
type Field int

const (
	FieldEventTime Field = iota
	FieldTeamA
	FieldMoneylineA
	FieldSpreadA
	FieldSpreadPriceA
	FieldTotalOver
	FieldOverPrice
	FieldTeamB
	FieldMoneylineB
	FieldSpreadB
	FieldSpreadPriceB
	FieldTotalUnder
	FieldUnderPrice

	fieldCount
)

var fieldNames = [fieldCount]string{
	FieldEventTime:    "event_time",
	FieldTeamA:        "team_a",
	FieldMoneylineA:   "moneyline_a",
	FieldSpreadA:      "spread_a",
	FieldSpreadPriceA: "spread_price_a",
	FieldTotalOver:    "total_over",
	FieldOverPrice:    "over_price",
	FieldTeamB:        "team_b",
	FieldMoneylineB:   "moneyline_b",
	FieldSpreadB:      "spread_b",
	FieldSpreadPriceB: "spread_price_b",
	FieldTotalUnder:   "total_under",
	FieldUnderPrice:   "under_price",
}

func (f Field) String() string {
	if f < 0 || f >= fieldCount {
		return "unknown"
	}
	return fieldNames[f]
}

// Layout maps every Field to its line offset inside a game block. When the
// site shifts its markup, only this table changes.
type Layout [fieldCount]int

var DefaultLayout = Layout{
	FieldEventTime:    0,
	FieldTeamA:        1,
	FieldMoneylineA:   2,
	FieldSpreadA:      3,
	FieldSpreadPriceA: 4,
	FieldTotalOver:    5,
	FieldOverPrice:    6,
	FieldTeamB:        7,
	FieldMoneylineB:   8,
	FieldSpreadB:      9,
	FieldSpreadPriceB: 10,
	FieldTotalUnder:   11,
	FieldUnderPrice:   12,
}

// MinLines is the number of lines a block needs to cover every offset.
func (l Layout) MinLines() int {
	n := 0
	for _, idx := range l {
		if idx+1 > n {
			n = idx + 1
		}
	}
	return n
}
