package app

import (
    "os"
    "strconv"
    "strings"
    "time"
)

// ApplyEnvOverrides overrides cfg fields with environment variables when the
// corresponding env vars are set. It runs after the config file is applied
// and before flags, so env beats the file and flags beat env.
func ApplyEnvOverrides(cfg *Config) {
    if cfg == nil { return }

    setString := func(dst *string, envKey string) {
        if v := strings.TrimSpace(os.Getenv(envKey)); v != "" { *dst = v }
    }
    setInt := func(dst *int, envKey string) {
        if s := strings.TrimSpace(os.Getenv(envKey)); s != "" {
            if n, err := strconv.Atoi(s); err == nil { *dst = n }
        }
    }
    setDuration := func(dst *time.Duration, envKey string) {
        if s := strings.TrimSpace(os.Getenv(envKey)); s != "" {
            if d, err := time.ParseDuration(s); err == nil { *dst = d }
        }
    }
    // Booleans override when env present and truthy/falsey
    setBool := func(dst *bool, envKey string) {
        if s := strings.ToLower(strings.TrimSpace(os.Getenv(envKey))); s != "" {
            switch s {
            case "1", "true", "yes", "on":
                *dst = true
            case "0", "false", "no", "off":
                *dst = false
            }
        }
    }

    setString(&cfg.Language, "ANSWER_LANG")
    setInt(&cfg.Sentences, "ANSWER_SENTENCES")
    setBool(&cfg.AutoSuggest, "WIKI_AUTOSUGGEST")
    setBool(&cfg.FollowRedirect, "WIKI_REDIRECT")
    setString(&cfg.WikiAPIURL, "WIKI_API_URL")
    setString(&cfg.WikiArticleURL, "WIKI_ARTICLE_URL")
    setString(&cfg.WikiFile, "WIKI_FILE")
    setString(&cfg.WikiUA, "WIKI_UA")
    setDuration(&cfg.PrimaryTimeout, "PRIMARY_TIMEOUT")

    setString(&cfg.SearchURL, "SEARCH_URL")
    setString(&cfg.SearchUA, "SEARCH_UA")
    if v := strings.TrimSpace(os.Getenv("SEARCH_SELECTORS")); v != "" {
        cfg.SearchSelectors = splitList(v)
    }
    setInt(&cfg.MaxSnippetChars, "MAX_SNIPPET_CHARS")
    setDuration(&cfg.FallbackTimeout, "FALLBACK_TIMEOUT")
    setInt(&cfg.MaxConcurrentFetches, "FETCH_MAX_CONCURRENT")

    setString(&cfg.NoInformationText, "NO_INFORMATION_TEXT")
    setString(&cfg.UnavailableText, "UNAVAILABLE_TEXT")
    setString(&cfg.PlaceholderLink, "PLACEHOLDER_LINK")

    setString(&cfg.Format, "OUTPUT_FORMAT")
    setString(&cfg.ListenAddr, "LISTEN_ADDR")
    setBool(&cfg.Verbose, "VERBOSE")
}

// splitList splits a comma-separated list, dropping blanks.
func splitList(s string) []string {
    parts := strings.Split(s, ",")
    list := make([]string, 0, len(parts))
    for _, p := range parts {
        if v := strings.TrimSpace(p); v != "" { list = append(list, v) }
    }
    return list
}
