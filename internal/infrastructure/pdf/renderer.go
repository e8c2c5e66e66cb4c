// Package pdf renders aggregated export documents to PDF through headless
// Chrome: an html/template fills an A4 page, chromedp prints it.
package pdf

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"exportdoc/internal/core/types"
	"exportdoc/internal/domain/reports"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer prints aggregated export documents to PDF.
type Renderer struct {
	templates *template.Template
	timeout   time.Duration
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"money": func(m types.Money) string { return m.StringFixed(2) },
		"date": func(t time.Time) string {
			if t.IsZero() {
				return "-"
			}
			return t.Format("02-Jan-2006")
		},
		"boxes": func(b float64) string {
			return types.NewMoney(b).String()
		},
		"kg": func(w float64) string {
			return types.NewMoney(w).StringFixed(2)
		},
	}

	templates, err := template.New("pdf").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse pdf templates: %w", err)
	}

	return &Renderer{
		templates: templates,
		timeout:   30 * time.Second,
	}, nil
}

// CustomsInvoice renders the customs invoice for one export document.
func (r *Renderer) CustomsInvoice(ctx context.Context, report *reports.DocumentReport) ([]byte, error) {
	return r.render(ctx, "customs_invoice.html", report)
}

// PackingList renders the packing list for one export document.
func (r *Renderer) PackingList(ctx context.Context, report *reports.DocumentReport) ([]byte, error) {
	return r.render(ctx, "packing_list.html", report)
}

func (r *Renderer) render(ctx context.Context, name string, report *reports.DocumentReport) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, report); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return r.print(ctx, buf.Bytes())
}

// print loads the HTML in headless Chrome and prints it to A4 PDF.
// Chrome needs a real URL, so the page goes through a temp file.
func (r *Renderer) print(ctx context.Context, html []byte) ([]byte, error) {
	tmpHTML := filepath.Join(os.TempDir(), fmt.Sprintf("exportdoc_%d.html", time.Now().UnixNano()))
	if err := os.WriteFile(tmpHTML, html, 0o644); err != nil {
		return nil, fmt.Errorf("write temp html: %w", err)
	}
	defer os.Remove(tmpHTML)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	browserCtx, cancelBrowser := chromedp.NewContext(ctx)
	defer cancelBrowser()

	var pdfBuf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+tmpHTML),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print pdf: %w", err)
	}

	return pdfBuf, nil
}
