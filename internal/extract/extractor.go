package extract

import "golang.org/x/net/html"

// SnippetExtractor locates the informative snippet on a parsed result page.
// Implementations can swap structural heuristics without changing callers,
// and must be deterministic and free of side effects.
type SnippetExtractor interface {
    Extract(doc *html.Node) (string, bool)
}

// DefaultSelector is the inline answer block of Google's basic HTML results.
const DefaultSelector = "div.BNeawe.s3v9rd.AP7Wnd"

// FirstMatch tries each extractor in order and returns the first hit.
type FirstMatch []SnippetExtractor

func (m FirstMatch) Extract(doc *html.Node) (string, bool) {
    for _, e := range m {
        if e == nil {
            continue
        }
        if text, ok := e.Extract(doc); ok {
            return text, true
        }
    }
    return "", false
}

// Func adapts a plain function to SnippetExtractor.
type Func func(doc *html.Node) (string, bool)

func (f Func) Extract(doc *html.Node) (string, bool) { return f(doc) }

// ParseSelectors builds a FirstMatch chain from selector strings. An empty
// list yields the DefaultSelector.
func ParseSelectors(specs []string) (FirstMatch, error) {
    if len(specs) == 0 {
        specs = []string{DefaultSelector}
    }
    out := make(FirstMatch, 0, len(specs))
    for _, s := range specs {
        sel, err := ParseSelector(s)
        if err != nil {
            return nil, err
        }
        out = append(out, sel)
    }
    return out, nil
}
