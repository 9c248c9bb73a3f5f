// Package fetch retrieves application-form pages over HTTP, falling back to a
// headless browser when the form markup is rendered client side.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; AutofillAgent/1.0)"

// Result holds the content from a form page fetch.
type Result struct {
	URL         string
	HTML        string
	Title       string
	ContentType string
	StatusCode  int
	Rendered    bool
}

// Error represents an error during URL fetching.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// URL retrieves HTML content from a URL.
func URL(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &Error{
			URL:     urlStr,
			Message: "invalid URL",
			Cause:   err,
		}
	}

	client := &http.Client{
		Timeout: opts.Timeout,
	}

	req, err := http.NewRequestWithContext(ctx, "GET", urlStr, nil)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "failed to create request",
			Cause:   err,
		}
	}

	req.Header.Set("User-Agent", opts.UserAgent)
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "HTTP request failed",
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "failed to read response body",
			Cause:   err,
		}
	}

	result := &Result{
		URL:         urlStr,
		HTML:        string(bodyBytes),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}
	result.Title = pageTitle(result.HTML)

	if resp.StatusCode != http.StatusOK {
		return result, &Error{
			URL:     urlStr,
			Message: fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}

	return result, nil
}

// FormPage fetches a URL and, when the static HTML carries no usable form
// controls, retries through the headless browser. Google Forms and most
// ATS-hosted applications render their controls from JavaScript, so the plain
// HTTP body is often an empty shell.
func FormPage(ctx context.Context, urlStr string, opts *Options, verbose bool) (*Result, error) {
	timeout := DefaultTimeout
	if opts != nil && opts.Timeout > 0 {
		timeout = opts.Timeout
	}

	if NeedsBrowser(DetectPlatform(urlStr)) {
		rendered, err := WithBrowser(ctx, urlStr, timeout, verbose)
		if err != nil {
			return nil, &Error{
				URL:     urlStr,
				Message: "browser rendering failed",
				Cause:   err,
			}
		}
		return &Result{
			URL:        urlStr,
			HTML:       rendered,
			Title:      pageTitle(rendered),
			StatusCode: 200,
			Rendered:   true,
		}, nil
	}

	result, err := URL(ctx, urlStr, opts)
	if err != nil {
		return result, err
	}

	if !ShouldUseBrowser(result.HTML) {
		return result, nil
	}
	rendered, err := WithBrowser(ctx, urlStr, timeout, verbose)
	if err != nil {
		return result, &Error{
			URL:     urlStr,
			Message: "browser rendering failed",
			Cause:   err,
		}
	}

	result.HTML = rendered
	result.Title = pageTitle(rendered)
	result.Rendered = true
	return result, nil
}

// CountFormControls parses HTML and counts fillable controls. Used to decide
// whether a static fetch produced a real form.
func CountFormControls(html string) int {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 0
	}
	return doc.Find(`input:not([type=hidden]):not([type=submit]):not([type=button]), textarea, select, [role=radio], [role=checkbox], [role=listbox]`).Length()
}

func pageTitle(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
