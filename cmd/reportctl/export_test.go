package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkips/residence-api/internal/domain/enum"
	"github.com/sangkips/residence-api/pkg/apperror"
)

func TestExportCmd_RejectsUnknownKind(t *testing.T) {
	cmd := NewExportCmd()
	cmd.SetArgs([]string{"inventory"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid argument")
}

func TestExportCmd_WriteDefaultName(t *testing.T) {
	t.Chdir(t.TempDir())
	ec := &ExportCmd{}
	var stdout bytes.Buffer

	err := ec.write(&stdout, enum.ReportKindPayments, []byte("%PDF"), time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	data, err := os.ReadFile("laporan-pembayaran-20250131.pdf")
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data))
	assert.Contains(t, stdout.String(), "laporan-pembayaran-20250131.pdf")
}

func TestExportCmd_WriteHTMLToPath(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.html")
	ec := &ExportCmd{out: out, html: true}

	require.NoError(t, ec.write(&bytes.Buffer{}, enum.ReportKindOperational, []byte("<html>"), time.Now()))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "<html>", string(data))
}

func TestExportCmd_WriteStdout(t *testing.T) {
	ec := &ExportCmd{out: "-"}
	var stdout bytes.Buffer

	require.NoError(t, ec.write(&stdout, enum.ReportKindOperational, []byte("%PDF"), time.Now()))
	assert.Equal(t, "%PDF", stdout.String())
}

func TestFlagError(t *testing.T) {
	err := flagError([]apperror.FieldError{
		{Field: "startDate", Message: "bad"},
		{Field: "status", Message: "worse"},
	})
	assert.EqualError(t, err, "invalid flags: startDate: bad; status: worse")
}
