package app

import (
    "strings"

    "github.com/jung-kurt/gofpdf"

    "github.com/hyperifyio/goanswer/internal/answer"
)

// writeAnswersPDF renders each record as a heading, the snippet paragraph and
// a clickable source link. Core fonts only cover cp1252, so text goes through
// gofpdf's translator; characters outside it degrade instead of failing.
func writeAnswersPDF(records []answer.Record, outPath string) error {
    pdf := gofpdf.New("P", "mm", "A4", "")
    tr := pdf.UnicodeTranslatorFromDescriptor("")
    pdf.SetTitle("Answers", true)
    pdf.AddPage()

    for i, r := range records {
        if i > 0 {
            pdf.Ln(6)
        }
        pdf.SetFont("Helvetica", "B", 14)
        pdf.MultiCell(0, 8, tr(r.Title), "", "L", false)
        pdf.Ln(2)

        pdf.SetFont("Helvetica", "", 11)
        for _, para := range strings.Split(r.Snippet, "\n") {
            if s := strings.TrimSpace(para); s != "" {
                pdf.MultiCell(0, 5, tr(s), "", "L", false)
            }
        }
        pdf.Ln(2)

        // Anchors and placeholders are not navigable; print them as text.
        if r.Link == "" || strings.HasPrefix(r.Link, "#") {
            pdf.Write(5, tr(r.Link))
        } else {
            pdf.SetTextColor(0, 0, 200)
            pdf.WriteLinkString(5, tr(r.Link), r.Link)
            pdf.SetTextColor(0, 0, 0)
        }
        pdf.Ln(6)
    }
    return pdf.OutputFileAndClose(outPath)
}
