package extract

import (
    "bytes"
    "fmt"
    "strings"

    "golang.org/x/net/html"
)

// Parse parses an HTML document.
func Parse(input []byte) (*html.Node, error) {
    node, err := html.Parse(bytes.NewReader(input))
    if err != nil {
        return nil, err
    }
    if node == nil {
        return nil, fmt.Errorf("empty document")
    }
    return node, nil
}

// Selector matches elements by tag name and class tokens, the way a
// "div.a.b" CSS selector does. An empty Tag matches any element.
type Selector struct {
    Tag     string
    Classes []string
}

// ParseSelector accepts the compound form tag.class1.class2 (tag optional).
// Combinators, ids and attribute selectors are not supported.
func ParseSelector(s string) (Selector, error) {
    s = strings.TrimSpace(s)
    if s == "" {
        return Selector{}, fmt.Errorf("empty selector")
    }
    if strings.ContainsAny(s, " \t>+~#[]:,*") {
        return Selector{}, fmt.Errorf("unsupported selector %q", s)
    }
    parts := strings.Split(s, ".")
    sel := Selector{Tag: strings.ToLower(parts[0])}
    for _, c := range parts[1:] {
        if c == "" {
            return Selector{}, fmt.Errorf("empty class in selector %q", s)
        }
        sel.Classes = append(sel.Classes, c)
    }
    if sel.Tag == "" && len(sel.Classes) == 0 {
        return Selector{}, fmt.Errorf("selector %q matches nothing", s)
    }
    return sel, nil
}

func (s Selector) String() string {
    if len(s.Classes) == 0 {
        return s.Tag
    }
    return s.Tag + "." + strings.Join(s.Classes, ".")
}

// Extract returns the text of the first element matching s in document order.
// The boolean is false when nothing matches or the match has no text.
func (s Selector) Extract(doc *html.Node) (string, bool) {
    n := findFirst(doc, s.matches)
    if n == nil {
        return "", false
    }
    // Collapsed text, and blank counts as no match: a whitespace-only block
    // falls through to the next selector and then to the sentinel.
    text := Text(n)
    return text, text != ""
}

func (s Selector) matches(n *html.Node) bool {
    if n.Type != html.ElementNode {
        return false
    }
    if s.Tag != "" && !strings.EqualFold(n.Data, s.Tag) {
        return false
    }
    if len(s.Classes) == 0 {
        return true
    }
    have := map[string]bool{}
    for _, attr := range n.Attr {
        if strings.EqualFold(attr.Key, "class") {
            for _, c := range strings.Fields(attr.Val) {
                have[c] = true
            }
        }
    }
    for _, c := range s.Classes {
        if !have[c] {
            return false
        }
    }
    return true
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
    var res *html.Node
    var dfs func(*html.Node)
    dfs = func(cur *html.Node) {
        if res != nil {
            return
        }
        if match(cur) {
            res = cur
            return
        }
        for c := cur.FirstChild; c != nil; c = c.NextSibling {
            dfs(c)
            if res != nil {
                return
            }
        }
    }
    dfs(n)
    return res
}

// Text returns the text content of n with whitespace runs collapsed.
// Script and style contents are skipped.
func Text(n *html.Node) string {
    var b strings.Builder
    collectText(&b, n)
    return collapseSpaces(strings.TrimSpace(b.String()))
}

func collectText(b *strings.Builder, n *html.Node) {
    if n.Type == html.ElementNode {
        switch strings.ToLower(n.Data) {
        case "script", "style", "noscript":
            return
        case "br":
            b.WriteString(" ")
        }
    }
    if n.Type == html.TextNode {
        b.WriteString(n.Data)
    }
    for c := n.FirstChild; c != nil; c = c.NextSibling {
        collectText(b, c)
    }
}

func collapseSpaces(s string) string {
    var b strings.Builder
    lastSpace := false
    for _, r := range s {
        if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\u00a0' {
            if !lastSpace {
                b.WriteByte(' ')
                lastSpace = true
            }
            continue
        }
        b.WriteRune(r)
        lastSpace = false
    }
    return b.String()
}
