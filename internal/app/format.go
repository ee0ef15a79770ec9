package app

import (
    "encoding/json"
    "fmt"
    "strings"

    "github.com/hyperifyio/goanswer/internal/answer"
)

// FormatAnswers renders records for terminal or file output.
func FormatAnswers(records []answer.Record, format string) (string, error) {
    switch format {
    case FormatText, "":
        var b strings.Builder
        for i, r := range records {
            if i > 0 { b.WriteString("\n") }
            fmt.Fprintf(&b, "%s\n%s\n%s\n", r.Title, r.Snippet, r.Link)
        }
        return b.String(), nil
    case FormatMarkdown:
        var b strings.Builder
        for i, r := range records {
            if i > 0 { b.WriteString("\n") }
            fmt.Fprintf(&b, "## %s\n\n%s\n\n<%s>\n", r.Title, r.Snippet, r.Link)
        }
        return b.String(), nil
    case FormatJSON:
        if records == nil {
            records = []answer.Record{}
        }
        b, err := json.MarshalIndent(struct {
            Answers []answer.Record `json:"answers"`
        }{records}, "", "  ")
        if err != nil {
            return "", fmt.Errorf("encode json: %w", err)
        }
        return string(b) + "\n", nil
    default:
        return "", fmt.Errorf("unknown output format %q", format)
    }
}
