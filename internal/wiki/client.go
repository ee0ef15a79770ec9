package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultEndpoint is the MediaWiki action API template.
	DefaultEndpoint = "https://{lang}.wikipedia.org/w/api.php"
	// DefaultArticleBase is the article link template.
	DefaultArticleBase = "https://{lang}.wikipedia.org/wiki/"
	defaultUA          = "goanswer/1.0 (+https://github.com/hyperifyio/goanswer)"
	maxOptions         = 20
)

// Client is a MediaWiki action API client.
type Client struct {
	endpoint string
	ua       string
	http     *http.Client
}

// Option configures the Client.
type Option func(*Client)

// WithEndpoint overrides the API endpoint template. A {lang} placeholder is
// replaced with the request language; endpoints without one are used as is
// (useful for testing).
func WithEndpoint(u string) Option {
	return func(c *Client) { c.endpoint = u }
}

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithUserAgent sets the User-Agent header. Wikimedia rejects anonymous clients.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.ua = ua }
}

// NewClient constructs a Client with defaults.
func NewClient(opts ...Option) *Client {
	c := &Client{
		endpoint: DefaultEndpoint,
		ua:       defaultUA,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Summary resolves req.Title to an article and returns its plain-text extract.
func (c *Client) Summary(ctx context.Context, req SummaryRequest) (Summary, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return Summary{}, &NotFoundError{Title: req.Title}
	}
	if req.AutoSuggest {
		suggested, err := c.suggest(ctx, req.Lang, title)
		if err != nil {
			return Summary{}, err
		}
		title = suggested
	}
	page, err := c.pageInfo(ctx, req.Lang, title, req.FollowRedirect)
	if err != nil {
		return Summary{}, err
	}
	extract, err := c.extract(ctx, req.Lang, page.PageID, req.Sentences)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Title: page.Title, PageID: page.PageID, Extract: extract, URL: page.FullURL}, nil
}

// suggest mirrors the search box: the spelling suggestion wins, then the top hit.
func (c *Client) suggest(ctx context.Context, lang, title string) (string, error) {
	var resp apiResponse
	err := c.call(ctx, lang, url.Values{
		"list":     {"search"},
		"srsearch": {title},
		"srlimit":  {"1"},
		"srinfo":   {"suggestion"},
		"srprop":   {""},
	}, &resp)
	if err != nil {
		return "", err
	}
	if s := strings.TrimSpace(resp.Query.SearchInfo.Suggestion); s != "" {
		return s, nil
	}
	if len(resp.Query.Search) > 0 && resp.Query.Search[0].Title != "" {
		return resp.Query.Search[0].Title, nil
	}
	return "", &NotFoundError{Title: title}
}

func (c *Client) pageInfo(ctx context.Context, lang, title string, followRedirect bool) (apiPage, error) {
	params := url.Values{
		"prop":   {"info|pageprops"},
		"inprop": {"url"},
		"ppprop": {"disambiguation"},
		"titles": {title},
	}
	if followRedirect {
		params.Set("redirects", "1")
	}
	var resp apiResponse
	if err := c.call(ctx, lang, params, &resp); err != nil {
		return apiPage{}, err
	}
	if len(resp.Query.Pages) == 0 {
		return apiPage{}, &NotFoundError{Title: title}
	}
	page := resp.Query.Pages[0]
	if page.Missing || page.Invalid || page.PageID == 0 {
		return apiPage{}, &NotFoundError{Title: title}
	}
	if _, ok := page.PageProps["disambiguation"]; ok {
		return apiPage{}, &AmbiguousError{Title: page.Title, Options: c.options(ctx, lang, page.PageID)}
	}
	return page, nil
}

// options lists candidate articles linked from a disambiguation page. Errors
// only cost the diagnostics, so they are swallowed.
func (c *Client) options(ctx context.Context, lang string, pageID int) []string {
	var resp apiResponse
	err := c.call(ctx, lang, url.Values{
		"prop":        {"links"},
		"pageids":     {strconv.Itoa(pageID)},
		"plnamespace": {"0"},
		"pllimit":     {strconv.Itoa(maxOptions)},
	}, &resp)
	if err != nil || len(resp.Query.Pages) == 0 {
		return nil
	}
	out := make([]string, 0, len(resp.Query.Pages[0].Links))
	for _, l := range resp.Query.Pages[0].Links {
		if l.Title != "" {
			out = append(out, l.Title)
		}
	}
	return out
}

func (c *Client) extract(ctx context.Context, lang string, pageID, sentences int) (string, error) {
	params := url.Values{
		"prop":        {"extracts"},
		"explaintext": {"1"},
		"pageids":     {strconv.Itoa(pageID)},
	}
	if sentences > 0 {
		params.Set("exsentences", strconv.Itoa(sentences))
	}
	var resp apiResponse
	if err := c.call(ctx, lang, params, &resp); err != nil {
		return "", err
	}
	if len(resp.Query.Pages) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Query.Pages[0].Extract), nil
}

func (c *Client) call(ctx context.Context, lang string, params url.Values, out *apiResponse) error {
	if lang == "" {
		lang = "en"
	}
	u, err := url.Parse(strings.ReplaceAll(c.endpoint, "{lang}", lang))
	if err != nil {
		return fmt.Errorf("wiki endpoint: %w", err)
	}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("formatversion", "2")
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	if c.ua != "" {
		req.Header.Set("User-Agent", c.ua)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("wiki status: %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode wiki response: %w", err)
	}
	if out.Error != nil {
		return out.Error
	}
	return nil
}

type apiResponse struct {
	Error *APIError `json:"error"`
	Query struct {
		SearchInfo struct {
			Suggestion string `json:"suggestion"`
		} `json:"searchinfo"`
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
		Pages []apiPage `json:"pages"`
	} `json:"query"`
}

type apiPage struct {
	PageID    int               `json:"pageid"`
	Title     string            `json:"title"`
	Missing   bool              `json:"missing"`
	Invalid   bool              `json:"invalid"`
	FullURL   string            `json:"fullurl"`
	PageProps map[string]string `json:"pageprops"`
	Extract   string            `json:"extract"`
	Links     []struct {
		Title string `json:"title"`
	} `json:"links"`
}
