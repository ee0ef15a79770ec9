// Command debugfallback fetches one search result page and reports which of
// the configured snippet selectors match, to diagnose extraction drift.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hyperifyio/goanswer/internal/extract"
	"github.com/hyperifyio/goanswer/internal/fetch"
	"github.com/hyperifyio/goanswer/internal/search"
)

func main() {
	endpoint := os.Getenv("SEARCH_URL")
	q := "Atatürk"
	if len(os.Args) > 1 { q = strings.Join(os.Args[1:], " ") }
	var specs []string
	if v := os.Getenv("SEARCH_SELECTORS"); v != "" { specs = strings.Split(v, ",") }
	selectors, err := extract.ParseSelectors(specs)
	if err != nil {
		fmt.Println("selectors:", err)
		os.Exit(2)
	}
	f := &fetch.Client{UserAgent: search.DefaultUserAgent, PerRequestTimeout: 20 * time.Second, AllowAnyContentType: true}
	eng, err := search.NewEngine(endpoint, f, selectors)
	if err != nil {
		fmt.Println("engine:", err)
		os.Exit(2)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
	defer cancel()

	pageURL := eng.URL(q)
	fmt.Println("url:", pageURL)
	body, ct, err := f.Get(ctx, pageURL)
	fmt.Println("err:", err, "content-type:", ct, "bytes:", len(body))
	if err != nil { return }
	doc, err := extract.Parse(body)
	if err != nil {
		fmt.Println("parse:", err)
		return
	}
	for i, s := range selectors {
		text, ok := s.Extract(doc)
		fmt.Printf("%d. %s matched=%v %q\n", i+1, s, ok, text)
	}
}
