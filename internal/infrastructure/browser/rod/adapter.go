package rod

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"

	"venture-agent/internal/application/port/output"
	"venture-agent/internal/domain/entity"
)

var _ output.BrowserPort = (*BrowserAdapter)(nil)

const (
	defaultSlowMotion = 500 * time.Millisecond
	defaultTimeout    = 10 * time.Second

	screenshotDir      = "screenshots"
	screenshotMaxWidth = 1024
)

// BrowserAdapter drives a Chromium instance through go-rod. One adapter owns
// one page; form runs open a fresh adapter and close it at the end.
type BrowserAdapter struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	page     *rod.Page
	timeout  time.Duration
	shotDir  string
	closed   bool
}

type BrowserConfig struct {
	Headless      bool
	SlowMotion    time.Duration
	Timeout       time.Duration
	NoSandbox     bool
	DevTools      bool
	ScreenshotDir string
}

func DefaultConfig() BrowserConfig {
	return BrowserConfig{
		Headless:      true,
		SlowMotion:    defaultSlowMotion,
		Timeout:       defaultTimeout,
		ScreenshotDir: screenshotDir,
	}
}

func NewBrowserAdapter(_ context.Context, cfg BrowserConfig) (*BrowserAdapter, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = screenshotDir
	}

	l := launcher.New().
		Headless(cfg.Headless).
		Devtools(cfg.DevTools).
		NoSandbox(cfg.NoSandbox).
		Delete("use-mock-keychain")

	url, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().
		ControlURL(url).
		SlowMotion(cfg.SlowMotion)
	if err := browser.Connect(); err != nil {
		l.Kill()
		l.Cleanup()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		browser.Close()
		l.Kill()
		l.Cleanup()
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	return &BrowserAdapter{
		browser:  browser,
		launcher: l,
		page:     page,
		timeout:  cfg.Timeout,
		shotDir:  cfg.ScreenshotDir,
	}, nil
}

func (b *BrowserAdapter) Navigate(ctx context.Context, url string) error {
	if err := b.page.Context(ctx).Navigate(url); err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}
	if err := b.page.WaitLoad(); err != nil {
		return fmt.Errorf("page load failed: %w", err)
	}
	b.page.WaitIdle(5 * time.Second)
	return nil
}

func (b *BrowserAdapter) Click(ctx context.Context, selector string) error {
	el, err := b.element(ctx, selector)
	if err != nil {
		return err
	}
	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("click failed: %w", err)
	}
	b.page.WaitIdle(2 * time.Second)
	return nil
}

func (b *BrowserAdapter) Fill(ctx context.Context, selector, text string) error {
	el, err := b.element(ctx, selector)
	if err != nil {
		return err
	}

	// Clear any prefilled value before typing.
	if err := el.SelectAllText(); err == nil {
		_ = el.Input("")
	}

	if err := el.Input(text); err != nil {
		return fmt.Errorf("input failed: %w", err)
	}
	return nil
}

// SelectOption picks a dropdown option by its visible text.
func (b *BrowserAdapter) SelectOption(ctx context.Context, selector, value string) error {
	el, err := b.element(ctx, selector)
	if err != nil {
		return err
	}
	if err := el.Select([]string{value}, true, rod.SelectorTypeText); err != nil {
		return fmt.Errorf("select option %q failed: %w", value, err)
	}
	return nil
}

func (b *BrowserAdapter) UploadFiles(ctx context.Context, selector string, paths []string) error {
	abs := make([]string, 0, len(paths))
	for _, p := range paths {
		a, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolve path %s: %w", p, err)
		}
		if _, err := os.Stat(a); err != nil {
			return fmt.Errorf("upload file missing: %w", err)
		}
		abs = append(abs, a)
	}

	el, err := b.element(ctx, selector)
	if err != nil {
		return err
	}
	if err := el.SetFiles(abs); err != nil {
		return fmt.Errorf("set files failed: %w", err)
	}
	return nil
}

func (b *BrowserAdapter) GetPageContent(ctx context.Context) (*entity.PageContent, error) {
	info, err := b.page.Info()
	if err != nil {
		return nil, fmt.Errorf("page info failed: %w", err)
	}

	html, err := b.page.Context(ctx).HTML()
	if err != nil {
		return nil, fmt.Errorf("failed to get HTML: %w", err)
	}

	return &entity.PageContent{
		URL:   info.URL,
		Title: info.Title,
		HTML:  html,
	}, nil
}

// Screenshot captures the full page, downscales wide captures, and writes the
// result under the screenshot directory.
func (b *BrowserAdapter) Screenshot(ctx context.Context) (*entity.Screenshot, error) {
	imgBytes, err := b.page.Context(ctx).Screenshot(true, &proto.PageCaptureScreenshot{
		Format:  proto.PageCaptureScreenshotFormatJpeg,
		Quality: gson.Int(80),
	})
	if err != nil {
		return nil, fmt.Errorf("screenshot failed: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("image decode failed: %w", err)
	}

	if img.Bounds().Dx() > screenshotMaxWidth {
		img = imaging.Resize(img, screenshotMaxWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: 75}); err != nil {
		return nil, fmt.Errorf("jpeg encode failed: %w", err)
	}

	if err := os.MkdirAll(b.shotDir, 0755); err != nil {
		return nil, fmt.Errorf("create screenshot dir: %w", err)
	}
	path := filepath.Join(b.shotDir,
		fmt.Sprintf("form_%s.jpg", time.Now().Format("2006-01-02_15-04-05")))
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("write screenshot: %w", err)
	}

	return &entity.Screenshot{
		Data:   buf.Bytes(),
		Format: "jpeg",
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
		Path:   path,
	}, nil
}

func (b *BrowserAdapter) CurrentURL() string {
	info, err := b.page.Info()
	if err != nil {
		return ""
	}
	return info.URL
}

func (b *BrowserAdapter) Close() {
	if b.closed {
		return
	}
	b.closed = true

	if b.browser != nil {
		_ = b.browser.Close()
	}
	if b.launcher != nil {
		b.launcher.Kill()
		b.launcher.Cleanup()
	}
}

// element resolves a CSS selector, or XPath when the selector starts with a
// slash.
func (b *BrowserAdapter) element(ctx context.Context, selector string) (*rod.Element, error) {
	page := b.page.Context(ctx).Timeout(b.timeout)

	var el *rod.Element
	var err error
	if strings.HasPrefix(selector, "/") {
		el, err = page.ElementX(selector)
	} else {
		el, err = page.Element(selector)
	}
	if err != nil {
		return nil, fmt.Errorf("element not found: %s: %w", selector, err)
	}
	return el, nil
}
