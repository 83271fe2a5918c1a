package core

import (
	"context"

	"mxshs/vbcrawler/src/domain"
)

// PageRenderer yields the rendered game blocks of one sport page.
type PageRenderer interface {
	RenderCards(ctx context.Context, sport string) ([]domain.Card, error)
}

// Selector holds the CSS selectors that locate cards on the rendered page.
type Selector struct {
	Card   string
	Header string
	// Game is resolved relative to Card.
	Game string
}

var DefaultSelector = Selector{
	Card:   `.card`,
	Header: `.card-header`,
	Game:   `div.card-body > div:nth-of-type(1) > div:nth-of-type(1) > div`,
}
