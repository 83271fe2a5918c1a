package lines

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"mxshs/vbcrawler/src/domain"
)

// DefaultPeriod is the game segment of every line the site lists.
const DefaultPeriod = "FULL GAME"

var (
	parensRe   = regexp.MustCompile(`[()]`)
	ouMarkerRe = regexp.MustCompile(`^[OoUu]\s*`)
)

// Result is the outcome of decomposing one card. Err is non-nil when the
// card was skipped, in which case Records is empty.
type Result struct {
	Records []domain.BetRecord
	Err     error
}

func (r Result) Skipped() bool {
	return r.Err != nil
}

type Decomposer struct {
	layout Layout
	period string
}

type Option func(*Decomposer)

func WithLayout(l Layout) Option {
	return func(d *Decomposer) {
		d.layout = l
	}
}

func WithPeriod(period string) Option {
	return func(d *Decomposer) {
		d.period = period
	}
}

func NewDecomposer(opts ...Option) *Decomposer {
	d := &Decomposer{
		layout: DefaultLayout,
		period: DefaultPeriod,
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

var defaultDecomposer = NewDecomposer()

// DecomposeCard splits one game block into its six bet records using the
// default layout.
func DecomposeCard(league string, lines []string) Result {
	return defaultDecomposer.Decompose(domain.Card{League: league, Lines: lines})
}

// Decompose never fails the caller: any layout deviation comes back as a
// skipped Result.
func (d *Decomposer) Decompose(card domain.Card) Result {
	records, err := d.decompose(card)
	if err != nil {
		return Result{Err: err}
	}

	return Result{Records: records}
}

func (d *Decomposer) decompose(card domain.Card) ([]domain.BetRecord, error) {
	if need := d.layout.MinLines(); len(card.Lines) < need {
		return nil, fmt.Errorf(
			"%w: got %d, need %d", domain.ErrShortCard, len(card.Lines), need,
		)
	}

	get := func(f Field) (string, error) {
		idx := d.layout[f]
		if idx < 0 || idx >= len(card.Lines) {
			return "", fmt.Errorf("%w: %s has no line at offset %d", domain.ErrMalformedField, f, idx)
		}
		return strings.TrimSpace(card.Lines[idx]), nil
	}

	var (
		text [fieldCount]string
		err  error
	)
	for f := Field(0); f < fieldCount; f++ {
		if text[f], err = get(f); err != nil {
			return nil, err
		}
	}

	eventTime, err := NormalizeTime(text[FieldEventTime])
	if err != nil {
		return nil, err
	}

	number := func(f Field) (float64, error) {
		v, err := parseLineValue(text[f])
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q", domain.ErrMalformedField, f, text[f])
		}
		return v, nil
	}

	spreadA, err := number(FieldSpreadA)
	if err != nil {
		return nil, err
	}
	spreadB, err := number(FieldSpreadB)
	if err != nil {
		return nil, err
	}
	over, err := number(FieldTotalOver)
	if err != nil {
		return nil, err
	}
	under, err := number(FieldTotalUnder)
	if err != nil {
		return nil, err
	}

	teamA, teamB := text[FieldTeamA], text[FieldTeamB]

	base := domain.BetRecord{
		League:       strings.TrimSpace(card.League),
		EventTimeUTC: eventTime,
		TeamA:        teamA,
		TeamB:        teamB,
		Period:       d.period,
	}

	record := func(market domain.MarketType, price, selection, subject string, line float64) domain.BetRecord {
		r := base
		r.MarketType = market
		r.Price = cleanPrice(price)
		r.Selection = selection
		r.Subject = subject
		r.Line = line
		return r
	}

	return []domain.BetRecord{
		record(domain.Moneyline, text[FieldMoneylineA], teamA, teamA, 0),
		record(domain.Moneyline, text[FieldMoneylineB], teamB, teamB, 0),
		record(domain.Spread, text[FieldSpreadPriceA], teamA, teamA, spreadA),
		record(domain.Spread, text[FieldSpreadPriceB], teamB, teamB, spreadB),
		record(domain.Total, text[FieldOverPrice], domain.SelectionOver, domain.SubjectTotal, over),
		record(domain.Total, text[FieldUnderPrice], domain.SelectionUnder, domain.SubjectTotal, under),
	}, nil
}

// cleanPrice drops parentheses but keeps the sign and format of the odds.
func cleanPrice(s string) string {
	return strings.TrimSpace(parensRe.ReplaceAllString(s, ""))
}

// parseLineValue reads spread and total values such as "-3.5", "(+2)" or
// "O 220.5".
func parseLineValue(s string) (float64, error) {
	s = strings.TrimSpace(parensRe.ReplaceAllString(s, ""))
	s = ouMarkerRe.ReplaceAllString(s, "")

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	// JSON has no encoding for these.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number: %q", s)
	}

	return v, nil
}
