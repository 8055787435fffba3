package printer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const (
	networkIdleWindow = 500 * time.Millisecond
	networkPollEvery  = 50 * time.Millisecond
)

// ChromeLauncher starts headless Chrome through chromedp.
type ChromeLauncher struct {
	// ExecPath overrides browser discovery when set.
	ExecPath string
}

// NewChromeLauncher returns a launcher using execPath, or the first Chrome
// found on PATH when execPath is empty.
func NewChromeLauncher(execPath string) *ChromeLauncher {
	return &ChromeLauncher{ExecPath: execPath}
}

// Launch starts the browser process and waits until it accepts commands.
// The process outlives ctx; ctx only bounds the launch itself.
func (l *ChromeLauncher) Launch(ctx context.Context) (Browser, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-web-security", true),
	)
	if l.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(l.ExecPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	stop := context.AfterFunc(ctx, browserCancel)
	err := chromedp.Run(browserCtx)
	stop()
	if err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("start chrome: %w", err)
	}

	return &chromeBrowser{
		ctx:         browserCtx,
		cancel:      browserCancel,
		allocCancel: allocCancel,
	}, nil
}

type chromeBrowser struct {
	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc
}

func (b *chromeBrowser) NewPage(ctx context.Context) (Page, error) {
	tabCtx, tabCancel := chromedp.NewContext(b.ctx)

	tracker := newNetworkTracker()
	chromedp.ListenTarget(tabCtx, tracker.handle)

	p := &chromePage{ctx: tabCtx, cancel: tabCancel, tracker: tracker}

	runCtx, done := p.bind(ctx)
	defer done()
	if err := chromedp.Run(runCtx, network.Enable(), chromedp.Navigate("about:blank")); err != nil {
		_ = p.Close()
		return nil, err
	}
	return p, nil
}

func (b *chromeBrowser) Close() error {
	err := chromedp.Cancel(b.ctx)
	b.cancel()
	b.allocCancel()
	return err
}

type chromePage struct {
	ctx     context.Context
	cancel  context.CancelFunc
	tracker *networkTracker
}

// bind derives a context from the tab that also ends when ctx ends.
func (p *chromePage) bind(ctx context.Context) (context.Context, context.CancelFunc) {
	var (
		runCtx context.Context
		cancel context.CancelFunc
	)
	if deadline, ok := ctx.Deadline(); ok {
		runCtx, cancel = context.WithDeadline(p.ctx, deadline)
	} else {
		runCtx, cancel = context.WithCancel(p.ctx)
	}
	stop := context.AfterFunc(ctx, cancel)
	return runCtx, func() {
		stop()
		cancel()
	}
}

func (p *chromePage) SetContent(ctx context.Context, html string) error {
	runCtx, done := p.bind(ctx)
	defer done()

	err := chromedp.Run(runCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		tree, err := page.GetFrameTree().Do(ctx)
		if err != nil {
			return err
		}
		return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
	}))
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	p.tracker.touch()
	if err := p.tracker.waitIdle(runCtx, networkIdleWindow); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("waiting for network idle: %w", ctx.Err())
		}
		return fmt.Errorf("waiting for network idle: %w", err)
	}
	return nil
}

func (p *chromePage) PrintToPDF(ctx context.Context, opts Options) ([]byte, error) {
	width, height, err := opts.PaperSize()
	if err != nil {
		return nil, err
	}
	margins, err := opts.MarginInches()
	if err != nil {
		return nil, err
	}

	runCtx, done := p.bind(ctx)
	defer done()

	var buf []byte
	err = chromedp.Run(runCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		data, _, err := page.PrintToPDF().
			WithPrintBackground(opts.Background()).
			WithLandscape(opts.IsLandscape()).
			WithPaperWidth(width).
			WithPaperHeight(height).
			WithMarginTop(margins[0]).
			WithMarginRight(margins[1]).
			WithMarginBottom(margins[2]).
			WithMarginLeft(margins[3]).
			Do(ctx)
		if err != nil {
			return err
		}
		buf = data
		return nil
	}))
	return buf, err
}

func (p *chromePage) Close() error {
	err := chromedp.Cancel(p.ctx)
	p.cancel()
	return err
}

// networkTracker counts in-flight requests of one tab.
type networkTracker struct {
	mu         sync.Mutex
	inflight   map[network.RequestID]struct{}
	lastChange time.Time
}

func newNetworkTracker() *networkTracker {
	return &networkTracker{
		inflight:   make(map[network.RequestID]struct{}),
		lastChange: time.Now(),
	}
}

func (t *networkTracker) handle(ev interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch e := ev.(type) {
	case *network.EventRequestWillBeSent:
		t.inflight[e.RequestID] = struct{}{}
	case *network.EventLoadingFinished:
		delete(t.inflight, e.RequestID)
	case *network.EventLoadingFailed:
		delete(t.inflight, e.RequestID)
	default:
		return
	}
	t.lastChange = time.Now()
}

func (t *networkTracker) touch() {
	t.mu.Lock()
	t.lastChange = time.Now()
	t.mu.Unlock()
}

// idleSince returns how long no request has been in flight, or 0.
func (t *networkTracker) idleSince(now time.Time) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.inflight) > 0 {
		return 0
	}
	return now.Sub(t.lastChange)
}

// waitIdle blocks until no request has been in flight for window.
func (t *networkTracker) waitIdle(ctx context.Context, window time.Duration) error {
	ticker := time.NewTicker(networkPollEvery)
	defer ticker.Stop()

	for {
		if t.idleSince(time.Now()) >= window {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
