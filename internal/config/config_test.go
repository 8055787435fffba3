package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg := Load()

	assert.Equal(t, "./templates", cfg.Report.TemplatesDir)
	assert.Equal(t, "Asia/Jakarta", cfg.Report.Timezone)
	assert.Equal(t, 30*time.Second, cfg.PDF.ContentTimeout)
	assert.Equal(t, "A4", cfg.PDF.Format)
	assert.True(t, cfg.PDF.PrintBackground)
	assert.Equal(t, "20px", cfg.PDF.Margin)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PDF_CONTENT_TIMEOUT", "5s")
	t.Setenv("REPORT_TEMPLATES_DIR", "/srv/templates")

	cfg := Load()

	assert.Equal(t, 5*time.Second, cfg.PDF.ContentTimeout)
	assert.Equal(t, "/srv/templates", cfg.Report.TemplatesDir)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{Host: "db", User: "u", Password: "p", Name: "n", Port: "5432", SSLMode: "disable", Timezone: "Asia/Jakarta"}
	assert.Equal(t, "host=db user=u password=p dbname=n port=5432 sslmode=disable TimeZone=Asia/Jakarta", c.DSN())
}
