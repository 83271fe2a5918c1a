package parser

import (
	"context"
	"errors"
	"fmt"

	"mxshs/vbcrawler/src/core"
	"mxshs/vbcrawler/src/domain"
	"mxshs/vbcrawler/src/lines"

	"github.com/sirupsen/logrus"
)

// Report is the outcome of one scraping run.
type Report struct {
	Records []domain.BetRecord
	Cards   int
	Skipped int
	// SkipReasons counts skipped cards per reason ("short_card", ...).
	SkipReasons map[string]int
}

// Parse renders the page for sport and decomposes every game block on it,
// one after another. Only a failure to render the page is returned as an
// error; broken cards are counted in the Report and logged.
func Parse(ctx context.Context, r core.PageRenderer, sport string, log *logrus.Logger) (*Report, error) {
	log.WithField("sport", sport).Info("Rendering page")

	cards, err := r.RenderCards(ctx, sport)
	if err != nil {
		if !errors.Is(err, domain.ErrRender) {
			err = fmt.Errorf("%w: %s", domain.ErrRender, err.Error())
		}
		return nil, err
	}

	report := Decompose(lines.NewDecomposer(), cards, log)

	log.WithFields(logrus.Fields{
		"sport":   sport,
		"cards":   report.Cards,
		"skipped": report.Skipped,
		"records": len(report.Records),
	}).Info("Finished parsing")

	return report, nil
}

// Decompose runs d over cards and collects the records of every card that
// is not skipped.
func Decompose(d *lines.Decomposer, cards []domain.Card, log *logrus.Logger) *Report {
	report := &Report{
		Records:     []domain.BetRecord{},
		SkipReasons: map[string]int{},
	}

	for i, card := range cards {
		report.Cards++

		res := d.Decompose(card)
		if res.Skipped() {
			reason := SkipReason(res.Err)
			report.Skipped++
			report.SkipReasons[reason]++

			log.WithFields(logrus.Fields{
				"card":   i,
				"league": card.League,
				"lines":  len(card.Lines),
				"reason": reason,
			}).WithError(res.Err).Warn("Skipping card")
			continue
		}

		report.Records = append(report.Records, res.Records...)
	}

	return report
}

// SkipReason maps a decomposition error to a short label for counting.
func SkipReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrShortCard):
		return "short_card"
	case errors.Is(err, domain.ErrFormat):
		return "bad_time"
	case errors.Is(err, domain.ErrMalformedField):
		return "malformed_field"
	default:
		return "other"
	}
}
