package printer

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

type fakeLauncher struct {
	browser *fakeBrowser
	err     error
	calls   int32
}

func (l *fakeLauncher) Launch(ctx context.Context) (Browser, error) {
	atomic.AddInt32(&l.calls, 1)
	if l.err != nil {
		return nil, l.err
	}
	return l.browser, nil
}

type fakeBrowser struct {
	mu         sync.Mutex
	pages      []*fakePage
	newPageErr error
	closed     int32

	// page behavior applied to every new page
	setContent func(ctx context.Context, html string) error
	print      func(ctx context.Context, opts Options) ([]byte, error)
}

func (b *fakeBrowser) NewPage(ctx context.Context) (Page, error) {
	if b.newPageErr != nil {
		return nil, b.newPageErr
	}
	p := &fakePage{browser: b}
	b.mu.Lock()
	b.pages = append(b.pages, p)
	b.mu.Unlock()
	return p, nil
}

func (b *fakeBrowser) Close() error {
	atomic.AddInt32(&b.closed, 1)
	return nil
}

func (b *fakeBrowser) allPagesClosed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, p := range b.pages {
		if atomic.LoadInt32(&p.closed) != 1 {
			return false
		}
	}
	return true
}

func (b *fakeBrowser) pageCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pages)
}

type fakePage struct {
	browser *fakeBrowser
	html    string
	gotOpts Options
	closed  int32
}

func (p *fakePage) SetContent(ctx context.Context, html string) error {
	p.html = html
	if p.browser.setContent != nil {
		return p.browser.setContent(ctx, html)
	}
	return nil
}

func (p *fakePage) PrintToPDF(ctx context.Context, opts Options) ([]byte, error) {
	p.gotOpts = opts
	if p.browser.print != nil {
		return p.browser.print(ctx, opts)
	}
	return []byte("%PDF-1.4 fake"), nil
}

func (p *fakePage) Close() error {
	atomic.AddInt32(&p.closed, 1)
	return nil
}

var errBoom = errors.New("boom")
