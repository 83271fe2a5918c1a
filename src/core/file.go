package core

import (
	"context"
	"fmt"
	"os"

	"mxshs/vbcrawler/src/domain"
)

// FileRenderer serves a page that was rendered and saved earlier. The sport
// argument is ignored.
type FileRenderer struct {
	Path     string
	Selector Selector
}

func (fr *FileRenderer) RenderCards(ctx context.Context, sport string) ([]domain.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(fr.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRender, err.Error())
	}
	defer f.Close()

	sel := fr.Selector
	if sel == (Selector{}) {
		sel = DefaultSelector
	}

	cards, err := ExtractCards(f, sel)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", domain.ErrRender, fr.Path, err.Error())
	}

	return cards, nil
}
