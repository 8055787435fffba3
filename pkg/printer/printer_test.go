package printer

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkips/residence-api/pkg/logger"
)

func newStartedPrinter(t *testing.T, b *fakeBrowser, cfg Config) *PDFPrinter {
	t.Helper()
	p := NewPDFPrinter(&fakeLauncher{browser: b}, cfg, logger.Nop())
	require.NoError(t, p.Start(context.Background()))
	return p
}

func TestPDFPrinter_PrintBeforeStart(t *testing.T) {
	p := NewPDFPrinter(&fakeLauncher{browser: &fakeBrowser{}}, Config{}, logger.Nop())

	_, err := p.Print(context.Background(), "<p>x</p>", nil)
	assert.ErrorIs(t, err, ErrNotReady)
	assert.Equal(t, StateUninitialized, p.State())
}

func TestPDFPrinter_LaunchFailureIsReturned(t *testing.T) {
	p := NewPDFPrinter(&fakeLauncher{err: errBoom}, Config{}, logger.Nop())

	err := p.Start(context.Background())
	require.ErrorIs(t, err, errBoom)
	assert.False(t, p.IsReady())

	_, err = p.Print(context.Background(), "<p>x</p>", nil)
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestPDFPrinter_PrintSuccessClosesPage(t *testing.T) {
	b := &fakeBrowser{}
	p := newStartedPrinter(t, b, Config{})

	pdf, err := p.Print(context.Background(), "<p>hello</p>", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)

	require.Equal(t, 1, b.pageCount())
	assert.True(t, b.allPagesClosed())
	assert.Equal(t, "<p>hello</p>", b.pages[0].html)

	got := b.pages[0].gotOpts
	assert.Equal(t, "A4", got.Format)
	assert.True(t, got.Background())
	assert.Equal(t, "20px", got.Margin.Left)
}

func TestPDFPrinter_OptionsMergedOverDefaults(t *testing.T) {
	b := &fakeBrowser{}
	p := newStartedPrinter(t, b, Config{})

	noBackground := false
	_, err := p.Print(context.Background(), "<p/>", &Options{
		Format:          "Letter",
		PrintBackground: &noBackground,
		Margin:          Margin{Top: "1cm"},
	})
	require.NoError(t, err)

	got := b.pages[0].gotOpts
	assert.Equal(t, "Letter", got.Format)
	assert.False(t, got.Background())
	assert.Equal(t, "1cm", got.Margin.Top)
	assert.Equal(t, "20px", got.Margin.Bottom)
}

func TestPDFPrinter_InvalidOptionsOpenNoPage(t *testing.T) {
	b := &fakeBrowser{}
	p := newStartedPrinter(t, b, Config{})

	_, err := p.Print(context.Background(), "<p/>", &Options{Format: "B7"})
	var printErr *PrintError
	require.ErrorAs(t, err, &printErr)
	assert.Equal(t, "options", printErr.Op)
	assert.Zero(t, b.pageCount())
}

func TestPDFPrinter_SetContentFailureClosesPage(t *testing.T) {
	b := &fakeBrowser{setContent: func(context.Context, string) error { return errBoom }}
	p := newStartedPrinter(t, b, Config{})

	_, err := p.Print(context.Background(), "<p/>", nil)
	require.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "failed to generate PDF")
	assert.True(t, b.allPagesClosed())
}

func TestPDFPrinter_ContentTimeoutClosesPage(t *testing.T) {
	b := &fakeBrowser{setContent: func(ctx context.Context, _ string) error {
		<-ctx.Done()
		return ctx.Err()
	}}
	p := newStartedPrinter(t, b, Config{ContentTimeout: 20 * time.Millisecond})

	start := time.Now()
	_, err := p.Print(context.Background(), "<img src='http://slow'>", nil)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.True(t, b.allPagesClosed())
}

func TestPDFPrinter_PrintFailureClosesPage(t *testing.T) {
	b := &fakeBrowser{print: func(context.Context, Options) ([]byte, error) { return nil, errBoom }}
	p := newStartedPrinter(t, b, Config{})

	_, err := p.Print(context.Background(), "<p/>", nil)
	var printErr *PrintError
	require.ErrorAs(t, err, &printErr)
	assert.Equal(t, "print", printErr.Op)
	assert.True(t, b.allPagesClosed())
}

func TestPDFPrinter_EmptyDocumentIsAnError(t *testing.T) {
	b := &fakeBrowser{print: func(context.Context, Options) ([]byte, error) { return nil, nil }}
	p := newStartedPrinter(t, b, Config{})

	_, err := p.Print(context.Background(), "<p/>", nil)
	assert.Error(t, err)
	assert.True(t, b.allPagesClosed())
}

func TestPDFPrinter_NewPageFailure(t *testing.T) {
	b := &fakeBrowser{newPageErr: errBoom}
	p := newStartedPrinter(t, b, Config{})

	_, err := p.Print(context.Background(), "<p/>", nil)
	require.ErrorIs(t, err, errBoom)
	assert.True(t, p.IsReady(), "a page failure must not take the browser down")
}

func TestPDFPrinter_StopThenPrintFailsFast(t *testing.T) {
	b := &fakeBrowser{}
	p := newStartedPrinter(t, b, Config{})

	require.NoError(t, p.Stop())
	require.NoError(t, p.Stop())
	assert.EqualValues(t, 1, b.closed)
	assert.Equal(t, StateClosed, p.State())

	done := make(chan error, 1)
	go func() {
		_, err := p.Print(context.Background(), "<p/>", nil)
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrClosed)
	case <-time.After(time.Second):
		t.Fatal("print after stop did not return")
	}

	assert.ErrorIs(t, p.Start(context.Background()), ErrClosed)
}

func TestPDFPrinter_StartIsIdempotent(t *testing.T) {
	l := &fakeLauncher{browser: &fakeBrowser{}}
	p := NewPDFPrinter(l, Config{}, logger.Nop())

	require.NoError(t, p.Start(context.Background()))
	require.NoError(t, p.Start(context.Background()))
	assert.EqualValues(t, 1, l.calls)
}

func TestPDFPrinter_ConcurrentPrintsUseSeparatePages(t *testing.T) {
	b := &fakeBrowser{}
	p := newStartedPrinter(t, b, Config{})

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := p.Print(context.Background(), "<p/>", nil)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, 8, b.pageCount())
	assert.True(t, b.allPagesClosed())
}

func TestPDFPrinter_StopWaitsForInflightPrint(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	b := &fakeBrowser{setContent: func(context.Context, string) error {
		close(started)
		<-release
		return nil
	}}
	p := newStartedPrinter(t, b, Config{})

	printed := make(chan error, 1)
	go func() {
		_, err := p.Print(context.Background(), "<p/>", nil)
		printed <- err
	}()
	<-started

	stopped := make(chan struct{})
	go func() {
		_ = p.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatal("browser closed while a print was running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	assert.NoError(t, <-printed)
	<-stopped
	assert.EqualValues(t, 1, b.closed)
}
