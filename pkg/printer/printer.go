// Package printer converts rendered HTML into PDF documents using a
// long-lived headless browser.
package printer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sangkips/residence-api/pkg/logger"
)

// DefaultContentTimeout bounds the wait for page content to settle.
const DefaultContentTimeout = 30 * time.Second

var (
	// ErrNotReady is returned when Print is called before Start succeeded.
	ErrNotReady = errors.New("pdf printer: browser is not initialized")
	// ErrClosed is returned when Print is called after Stop.
	ErrClosed = errors.New("pdf printer: browser is closed")
)

// PrintError wraps a failure while producing a single document.
type PrintError struct {
	Op  string
	Err error
}

func (e *PrintError) Error() string {
	return fmt.Sprintf("failed to generate PDF: %s: %v", e.Op, e.Err)
}

func (e *PrintError) Unwrap() error { return e.Err }

// Browser is a running headless browser process.
type Browser interface {
	// NewPage opens an isolated tab.
	NewPage(ctx context.Context) (Page, error)
	// Close terminates the browser process.
	Close() error
}

// Page is a single browser tab owned by one print call.
type Page interface {
	// SetContent loads html and returns once network activity is idle.
	SetContent(ctx context.Context, html string) error
	// PrintToPDF prints the current document.
	PrintToPDF(ctx context.Context, opts Options) ([]byte, error)
	// Close releases the tab.
	Close() error
}

// Launcher starts a browser process.
type Launcher interface {
	Launch(ctx context.Context) (Browser, error)
}

// State is the printer lifecycle position.
type State int

const (
	StateUninitialized State = iota
	StateReady
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateClosed:
		return "closed"
	default:
		return "uninitialized"
	}
}

// Config holds printer settings.
type Config struct {
	ContentTimeout time.Duration
	Defaults       Options
}

// PDFPrinter owns one browser for the lifetime of the process and opens a
// fresh page for every Print call.
type PDFPrinter struct {
	launcher Launcher
	cfg      Config
	log      *logger.Logger

	mu      sync.RWMutex
	state   State
	browser Browser
}

// NewPDFPrinter creates a printer in the uninitialized state.
func NewPDFPrinter(launcher Launcher, cfg Config, log *logger.Logger) *PDFPrinter {
	if cfg.ContentTimeout <= 0 {
		cfg.ContentTimeout = DefaultContentTimeout
	}
	if cfg.Defaults.Format == "" {
		cfg.Defaults = Merge(DefaultOptions(), &cfg.Defaults)
	}
	if log == nil {
		log = logger.Default()
	}
	return &PDFPrinter{
		launcher: launcher,
		cfg:      cfg,
		log:      log.WithComponent("pdf_printer"),
	}
}

// Start launches the browser. A launch failure leaves the printer
// uninitialized and is returned as is.
func (p *PDFPrinter) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state {
	case StateReady:
		return nil
	case StateClosed:
		return ErrClosed
	}

	browser, err := p.launcher.Launch(ctx)
	if err != nil {
		p.log.Errorw("failed to initialize browser", "error", err)
		return fmt.Errorf("launch browser: %w", err)
	}

	p.browser = browser
	p.state = StateReady
	p.log.Infow("browser initialized successfully")
	return nil
}

// Stop closes the browser once. It waits for in-flight prints to finish.
func (p *PDFPrinter) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StateReady {
		p.state = StateClosed
		return nil
	}

	p.state = StateClosed
	err := p.browser.Close()
	p.browser = nil
	if err != nil {
		return fmt.Errorf("close browser: %w", err)
	}
	p.log.Infow("browser closed")
	return nil
}

// State returns the current lifecycle state.
func (p *PDFPrinter) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// IsReady reports whether Print can be called.
func (p *PDFPrinter) IsReady() bool {
	return p.State() == StateReady
}

// Print renders html to PDF. opts is merged over the configured defaults.
// The page is closed on every return path.
func (p *PDFPrinter) Print(ctx context.Context, html string, opts *Options) (pdf []byte, err error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	switch p.state {
	case StateUninitialized:
		return nil, ErrNotReady
	case StateClosed:
		return nil, ErrClosed
	}

	merged := Merge(p.cfg.Defaults, opts)
	if err := merged.Validate(); err != nil {
		return nil, &PrintError{Op: "options", Err: err}
	}

	page, err := p.browser.NewPage(ctx)
	if err != nil {
		return nil, &PrintError{Op: "open page", Err: err}
	}
	defer func() {
		if cerr := page.Close(); cerr != nil {
			p.log.WithContext(ctx).Warnw("failed to close page", "error", cerr)
		}
	}()

	loadCtx, cancel := context.WithTimeout(ctx, p.cfg.ContentTimeout)
	defer cancel()

	if err := page.SetContent(loadCtx, html); err != nil {
		p.log.WithContext(ctx).Errorw("error generating PDF", "stage", "set content", "error", err)
		return nil, &PrintError{Op: "set content", Err: err}
	}

	pdf, err = page.PrintToPDF(ctx, merged)
	if err != nil {
		p.log.WithContext(ctx).Errorw("error generating PDF", "stage", "print", "error", err)
		return nil, &PrintError{Op: "print", Err: err}
	}
	if len(pdf) == 0 {
		return nil, &PrintError{Op: "print", Err: errors.New("empty document")}
	}
	return pdf, nil
}
