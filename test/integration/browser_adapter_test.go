package integration

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venture-agent/internal/infrastructure/browser/rod"
)

// These tests launch a real headless Chromium via go-rod.

func newAdapter(t *testing.T) *rod.BrowserAdapter {
	t.Helper()
	cfg := rod.DefaultConfig()
	cfg.Headless = true
	cfg.SlowMotion = 0
	cfg.ScreenshotDir = t.TempDir()

	adapter, err := rod.NewBrowserAdapter(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(adapter.Close)
	return adapter
}

func serveHTML(t *testing.T, html string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, html)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestBrowserAdapter_Navigate(t *testing.T) {
	server := serveHTML(t, `<!DOCTYPE html>
<html>
<head><title>Application Form</title></head>
<body><h1>Apply Now</h1></body>
</html>`)

	ctx := context.Background()
	adapter := newAdapter(t)

	err := adapter.Navigate(ctx, server.URL)
	assert.NoError(t, err)
	assert.Equal(t, server.URL+"/", adapter.CurrentURL())
}

func TestBrowserAdapter_FillAndSelect(t *testing.T) {
	server := serveHTML(t, `<!DOCTYPE html>
<html>
<body>
	<form>
		<input id="company_name" name="company_name" type="text" />
		<select id="funding_stage" name="funding_stage">
			<option>Choose...</option>
			<option>Pre-seed</option>
			<option>Seed</option>
			<option>Series A</option>
		</select>
	</form>
</body>
</html>`)

	ctx := context.Background()
	adapter := newAdapter(t)
	require.NoError(t, adapter.Navigate(ctx, server.URL))

	assert.NoError(t, adapter.Fill(ctx, "#company_name", "Acme Robotics"))
	assert.NoError(t, adapter.SelectOption(ctx, "#funding_stage", "Seed"))

	content, err := adapter.GetPageContent(ctx)
	require.NoError(t, err)
	assert.Contains(t, content.HTML, "company_name")
}

func TestBrowserAdapter_FillClearsPrefilledValue(t *testing.T) {
	server := serveHTML(t, `<!DOCTYPE html>
<html>
<body>
	<input id="email" type="text" value="stale@example.com" />
	<button id="read" onclick="document.title = document.getElementById('email').value">Read</button>
</body>
</html>`)

	ctx := context.Background()
	adapter := newAdapter(t)
	require.NoError(t, adapter.Navigate(ctx, server.URL))

	require.NoError(t, adapter.Fill(ctx, "#email", "founder@startup.com"))
	require.NoError(t, adapter.Click(ctx, "#read"))

	content, err := adapter.GetPageContent(ctx)
	require.NoError(t, err)
	assert.Equal(t, "founder@startup.com", content.Title)
}

func TestBrowserAdapter_ClickWithXPath(t *testing.T) {
	server := serveHTML(t, `<!DOCTYPE html>
<html>
<body>
	<a href="#form" id="apply-link" onclick="document.title='clicked'">Apply Now</a>
</body>
</html>`)

	ctx := context.Background()
	adapter := newAdapter(t)
	require.NoError(t, adapter.Navigate(ctx, server.URL))

	err := adapter.Click(ctx, `//a[@id="apply-link"]`)
	assert.NoError(t, err)

	content, err := adapter.GetPageContent(ctx)
	require.NoError(t, err)
	assert.Equal(t, "clicked", content.Title)
}

func TestBrowserAdapter_ElementNotFound(t *testing.T) {
	server := serveHTML(t, `<!DOCTYPE html><html><body></body></html>`)

	ctx := context.Background()
	cfg := rod.DefaultConfig()
	cfg.Headless = true
	cfg.SlowMotion = 0
	cfg.Timeout = 1 * time.Second
	cfg.ScreenshotDir = t.TempDir()

	adapter, err := rod.NewBrowserAdapter(ctx, cfg)
	require.NoError(t, err)
	defer adapter.Close()

	require.NoError(t, adapter.Navigate(ctx, server.URL))

	err = adapter.Fill(ctx, "#nonexistent", "text")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "element not found")
}

func TestBrowserAdapter_UploadFiles(t *testing.T) {
	server := serveHTML(t, `<!DOCTYPE html>
<html>
<body>
	<input id="pitch_deck" name="pitch_deck" type="file" />
</body>
</html>`)

	deck := filepath.Join(t.TempDir(), "deck.pdf")
	require.NoError(t, os.WriteFile(deck, []byte("%PDF-1.4"), 0644))

	ctx := context.Background()
	adapter := newAdapter(t)
	require.NoError(t, adapter.Navigate(ctx, server.URL))

	assert.NoError(t, adapter.UploadFiles(ctx, "#pitch_deck", []string{deck}))

	err := adapter.UploadFiles(ctx, "#pitch_deck", []string{"/does/not/exist.pdf"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "upload file missing")
}

func TestBrowserAdapter_Screenshot(t *testing.T) {
	server := serveHTML(t, `<!DOCTYPE html>
<html>
<body style="background-color: red; width: 800px; height: 600px;">
	<h1>Screenshot Test</h1>
</body>
</html>`)

	ctx := context.Background()
	adapter := newAdapter(t)
	require.NoError(t, adapter.Navigate(ctx, server.URL))

	shot, err := adapter.Screenshot(ctx)
	require.NoError(t, err)
	require.NotNil(t, shot)

	assert.NotEmpty(t, shot.Data)
	assert.Equal(t, "jpeg", shot.Format)
	assert.Greater(t, shot.Width, 0)
	assert.Greater(t, shot.Height, 0)

	// The capture must exist on disk at the reported path.
	info, err := os.Stat(shot.Path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestBrowserAdapter_FullFormScenario(t *testing.T) {
	server := serveHTML(t, `<!DOCTYPE html>
<html>
<head><title>VC Application</title></head>
<body>
	<form>
		<input id="company" name="company_name" type="text" />
		<textarea id="desc" name="description"></textarea>
		<button type="button" id="check"
			onclick="document.title = document.getElementById('company').value">Check</button>
	</form>
</body>
</html>`)

	ctx := context.Background()
	adapter := newAdapter(t)

	require.NoError(t, adapter.Navigate(ctx, server.URL))
	require.NoError(t, adapter.Fill(ctx, "#company", "Acme Robotics"))
	require.NoError(t, adapter.Fill(ctx, "#desc", "We build warehouse robots."))
	require.NoError(t, adapter.Click(ctx, "#check"))

	content, err := adapter.GetPageContent(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Acme Robotics", content.Title)
	assert.Equal(t, server.URL+"/", content.URL)

	shot, err := adapter.Screenshot(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, shot.Data)
}

func TestBrowserAdapter_CloseIsIdempotent(t *testing.T) {
	cfg := rod.DefaultConfig()
	cfg.Headless = true
	cfg.SlowMotion = 0

	adapter, err := rod.NewBrowserAdapter(context.Background(), cfg)
	require.NoError(t, err)

	adapter.Close()
	assert.NotPanics(t, adapter.Close)
}
