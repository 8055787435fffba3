package render

import (
	"context"
	"embed"
	"os"
	"path/filepath"

	"github.com/sangkips/residence-api/pkg/logger"
)

// Template names understood by the resolver.
const (
	OperationalTemplate = "operational-report"
	PaymentsTemplate    = "payments-report"

	templateExt = ".hbs"
)

//go:embed templates/*.hbs
var defaults embed.FS

// Resolver loads named templates from a directory and falls back to the
// embedded defaults. It never fails.
type Resolver struct {
	dir string
	log *logger.Logger
}

// NewResolver creates a resolver reading from dir.
func NewResolver(dir string, log *logger.Logger) *Resolver {
	if log == nil {
		log = logger.Default()
	}
	return &Resolver{dir: dir, log: log.WithComponent("template_resolver")}
}

// Resolve returns the source of {dir}/{name}.hbs, or the built-in default
// matching the report kind when the file cannot be read.
func (r *Resolver) Resolve(ctx context.Context, name string) string {
	path := filepath.Join(r.dir, filepath.Base(name)+templateExt)
	src, err := os.ReadFile(path)
	if err == nil && len(src) > 0 {
		return string(src)
	}

	r.log.WithContext(ctx).Warnw("failed to load template, using default template",
		"template", name,
		"path", path,
		"error", err,
	)
	return Default(name)
}

// Default returns the embedded template for name. Anything other than the
// operational report gets the payments template.
func Default(name string) string {
	file := PaymentsTemplate
	if name == OperationalTemplate {
		file = OperationalTemplate
	}
	src, err := defaults.ReadFile("templates/" + file + templateExt)
	if err != nil {
		// embedded at build time; unreachable unless the embed pattern changes
		panic(err)
	}
	return string(src)
}
