package wiki

import (
    "context"
    "encoding/json"
    "errors"
    "os"
    "strings"
)

// FileEntry is one article in a FileService fixture.
type FileEntry struct {
    Title     string   `json:"title"`
    Extract   string   `json:"extract"`
    URL       string   `json:"url,omitempty"`
    Ambiguous bool     `json:"ambiguous,omitempty"`
    Options   []string `json:"options,omitempty"`
}

// FileService answers summaries from a local JSON file for offline/testing use.
// The JSON file format is an array of FileEntry objects.
type FileService struct {
    Path string
}

func (f *FileService) Summary(_ context.Context, req SummaryRequest) (Summary, error) {
    if strings.TrimSpace(f.Path) == "" {
        return Summary{}, errors.New("wiki file path is empty")
    }
    b, err := os.ReadFile(f.Path)
    if err != nil {
        return Summary{}, err
    }
    var entries []FileEntry
    if err := json.Unmarshal(b, &entries); err != nil {
        return Summary{}, err
    }
    want := strings.ToLower(strings.TrimSpace(req.Title))
    for i, e := range entries {
        if strings.ToLower(strings.TrimSpace(e.Title)) != want {
            continue
        }
        if e.Ambiguous {
            return Summary{}, &AmbiguousError{Title: e.Title, Options: e.Options}
        }
        return Summary{Title: e.Title, PageID: i + 1, Extract: e.Extract, URL: e.URL}, nil
    }
    return Summary{}, &NotFoundError{Title: req.Title}
}
