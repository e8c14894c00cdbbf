package services

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"resumekit/export"
	"resumekit/utils"
)

// PDFEngine turns a rendered HTML page into PDF bytes.
type PDFEngine interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
	Available() bool
}

// ChromeEngine drives a headless browser over the DevTools protocol. The
// browser binary is resolved from CHROME_PATH first, then PATH.
type ChromeEngine struct{}

func NewChromeEngine() *ChromeEngine { return &ChromeEngine{} }

// Available reports whether a browser binary can be found. Callers use
// this to fail over to the HTML fallback before paying the startup cost.
func (e *ChromeEngine) Available() bool {
	if p := os.Getenv("CHROME_PATH"); p != "" {
		if _, err := os.Stat(p); err == nil {
			return true
		}
	}
	for _, name := range []string{"google-chrome", "chromium", "chromium-browser", "chrome"} {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}

func (e *ChromeEngine) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	if !e.Available() {
		return nil, export.ErrBackendUnavailable
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	runCtx, cancelRun := context.WithTimeout(cctx, 60*time.Second)
	defer cancelRun()

	// Chrome only prints local files reliably, so the page goes through a
	// temp directory rather than a data: URL.
	tmpDir, err := os.MkdirTemp("", "resumekit-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, err
	}

	var pdfBuf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm
			pdfBuf, _, err = page.PrintToPDF().WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		utils.LogError("Headless PDF render failed", err)
		return nil, err
	}
	return pdfBuf, nil
}
