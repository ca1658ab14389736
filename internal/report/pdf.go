package report

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/dlautopecas/adpulse/internal/common"
)

// PDFRenderer converts HTML documents to PDF by shelling out to the
// wkhtmltopdf binary.
type PDFRenderer struct {
	binPath string
}

// NewPDFRenderer locates the wkhtmltopdf binary. An empty binPath looks up
// "wkhtmltopdf" on PATH. A missing binary is reported immediately so the
// run fails before any classifier spend, not after.
func NewPDFRenderer(binPath string) (*PDFRenderer, error) {
	if binPath == "" {
		binPath = "wkhtmltopdf"
	}

	resolved, err := exec.LookPath(binPath)
	if err != nil {
		return nil, common.NewUserError(
			"wkhtmltopdf was not found; install it and make sure it is on your PATH (https://wkhtmltopdf.org/downloads.html)",
			common.ErrRendererUnavailable,
		)
	}

	return &PDFRenderer{binPath: resolved}, nil
}

// Render converts the HTML document to PDF bytes.
func (r *PDFRenderer) Render(ctx context.Context, html string) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "adpulse-report-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	htmlPath := filepath.Join(tmpDir, "report.html")
	pdfPath := filepath.Join(tmpDir, "report.pdf")

	if err := os.WriteFile(htmlPath, []byte(html), 0o600); err != nil {
		return nil, fmt.Errorf("failed to write html: %w", err)
	}

	args := []string{
		"--encoding", "UTF-8",
		"--enable-local-file-access",
		"--margin-top", "15mm",
		"--margin-bottom", "15mm",
		htmlPath,
		pdfPath,
	}

	cmd := exec.CommandContext(ctx, r.binPath, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("wkhtmltopdf failed: %s", stderr.String())
		}
		return nil, fmt.Errorf("wkhtmltopdf failed: %w", err)
	}

	pdf, err := os.ReadFile(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read pdf output: %w", err)
	}

	return pdf, nil
}
