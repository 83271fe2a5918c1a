package core

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"mxshs/vbcrawler/src/domain"

	"github.com/chromedp/chromedp"
)

type ChromeOptions struct {
	BaseURL string
	// WaitTimeout bounds navigation plus the wait for the first card.
	WaitTimeout  time.Duration
	Settle       time.Duration
	Headless     bool
	UserAgent    string
	WindowWidth  int
	WindowHeight int
	Selector     Selector
}

// ChromeRenderer drives a headless Chrome through chromedp.
type ChromeRenderer struct {
	opts       ChromeOptions
	driverOpts []chromedp.ExecAllocatorOption
}

func NewChromeRenderer(opts ChromeOptions) *ChromeRenderer {
	if opts.Selector == (Selector{}) {
		opts.Selector = DefaultSelector
	}

	driverOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("log-level", "3"),
		chromedp.Flag("disable-logging", true),
	)
	if opts.WindowWidth > 0 && opts.WindowHeight > 0 {
		driverOpts = append(driverOpts, chromedp.WindowSize(opts.WindowWidth, opts.WindowHeight))
	}
	if opts.UserAgent != "" {
		driverOpts = append(driverOpts, chromedp.UserAgent(opts.UserAgent))
	}

	return &ChromeRenderer{opts: opts, driverOpts: driverOpts}
}

func (cr *ChromeRenderer) PageURL(sport string) string {
	return strings.TrimRight(cr.opts.BaseURL, "/") + "/" + url.PathEscape(sport)
}

func (cr *ChromeRenderer) RenderCards(ctx context.Context, sport string) ([]domain.Card, error) {
	ctx, cancel := chromedp.NewExecAllocator(ctx, cr.driverOpts...)
	defer cancel()

	ctx, cancel = chromedp.NewContext(ctx)
	defer cancel()

	page := cr.PageURL(sport)

	// Start the browser on the long-lived context so the wait timeout below
	// does not tear it down.
	if err := chromedp.Run(ctx); err != nil {
		return nil, fmt.Errorf("%w: starting browser: %s", domain.ErrRender, err.Error())
	}

	waitCtx := ctx
	if cr.opts.WaitTimeout > 0 {
		var cancelWait context.CancelFunc
		waitCtx, cancelWait = context.WithTimeout(ctx, cr.opts.WaitTimeout)
		defer cancelWait()
	}

	err := chromedp.Run(
		waitCtx,
		chromedp.Navigate(page),
		chromedp.WaitReady(cr.opts.Selector.Card, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", domain.ErrRender, page, err.Error())
	}

	var domNode string

	err = chromedp.Run(
		ctx,
		chromedp.Sleep(cr.opts.Settle),
		chromedp.OuterHTML(`body`, &domNode, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", domain.ErrRender, page, err.Error())
	}

	cards, err := ExtractCards(strings.NewReader(domNode), cr.opts.Selector)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", domain.ErrRender, page, err.Error())
	}

	return cards, nil
}
