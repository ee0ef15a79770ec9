package app

import (
    "flag"
    "fmt"
    "strings"
)

// BindFlags registers every Config knob on fs, using the current cfg values
// as defaults so flags override whatever file and env already set.
func BindFlags(fs *flag.FlagSet, cfg *Config) {
    fs.StringVar(&cfg.Language, "lang", cfg.Language, "Wikipedia language edition, e.g. 'tr' or 'en'")
    fs.IntVar(&cfg.Sentences, "sentences", cfg.Sentences, "Sentences in a primary summary (0 returns the full intro)")
    fs.BoolVar(&cfg.AutoSuggest, "wiki.autosuggest", cfg.AutoSuggest, "Let the wiki search suggest a title for misspelled questions")
    fs.BoolVar(&cfg.FollowRedirect, "wiki.redirect", cfg.FollowRedirect, "Follow wiki redirects")
    fs.StringVar(&cfg.WikiAPIURL, "wiki.api", cfg.WikiAPIURL, "MediaWiki API endpoint; {lang} is substituted")
    fs.StringVar(&cfg.WikiArticleURL, "wiki.article", cfg.WikiArticleURL, "Article link base; {lang} is substituted")
    fs.StringVar(&cfg.WikiFile, "wiki.file", cfg.WikiFile, "Path to JSON fixture replacing the wiki API (offline use)")
    fs.StringVar(&cfg.WikiUA, "wiki.ua", cfg.WikiUA, "User-Agent for wiki API requests")
    fs.DurationVar(&cfg.PrimaryTimeout, "wiki.timeout", cfg.PrimaryTimeout, "Timeout of one primary lookup")

    fs.StringVar(&cfg.SearchURL, "search.url", cfg.SearchURL, "Web search endpoint queried with ?q=")
    fs.StringVar(&cfg.SearchUA, "search.ua", cfg.SearchUA, "User-Agent for web search requests")
    fs.Func("search.selectors", "Comma-separated tag.class selectors for the snippet block, tried in order", func(s string) error {
        list := splitList(s)
        if len(list) == 0 {
            return fmt.Errorf("no selectors in %q", s)
        }
        cfg.SearchSelectors = list
        return nil
    })
    fs.IntVar(&cfg.MaxSnippetChars, "search.maxChars", cfg.MaxSnippetChars, "Maximum characters of a fallback snippet before the truncation marker")
    fs.DurationVar(&cfg.FallbackTimeout, "search.timeout", cfg.FallbackTimeout, "Timeout of one web search fetch")
    fs.IntVar(&cfg.MaxConcurrentFetches, "search.maxConcurrent", cfg.MaxConcurrentFetches, "Maximum concurrent web search fetches (0 is unlimited)")

    fs.StringVar(&cfg.NoInformationText, "text.noInformation", cfg.NoInformationText, "Snippet used when the search page has no answer block")
    fs.StringVar(&cfg.UnavailableText, "text.unavailable", cfg.UnavailableText, "Snippet used when no source could be reached")
    fs.StringVar(&cfg.PlaceholderLink, "text.placeholderLink", cfg.PlaceholderLink, "Link used when no source could be reached")

    fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Verbose logging")
}

// LookupFlagValue scans args for -name or --name, in both the separate and
// the name=value forms, before the FlagSet is parsed. The config and env file
// locations must be known before the other flags get their defaults.
func LookupFlagValue(args []string, name string) (string, bool) {
    for i := 0; i < len(args); i++ {
        a := args[i]
        if a == "--" {
            break
        }
        if !strings.HasPrefix(a, "-") {
            continue
        }
        a = strings.TrimPrefix(strings.TrimPrefix(a, "-"), "-")
        if a == name && i+1 < len(args) {
            return args[i+1], true
        }
        if v, ok := strings.CutPrefix(a, name+"="); ok {
            return v, true
        }
    }
    return "", false
}

// LoadConfig builds a Config from defaults, the optional config file, the
// environment (after loading dotenv files) and finally the flags in args.
// bind registers binary-specific flags on fs before parsing.
func LoadConfig(fs *flag.FlagSet, args []string, bind func(*flag.FlagSet, *Config)) (Config, error) {
    envPath := ".env"
    if v, ok := LookupFlagValue(args, "env"); ok {
        envPath = v
    }
    if err := LoadEnvFiles(envPath); err != nil {
        return Config{}, fmt.Errorf("load env: %w", err)
    }

    cfg := Defaults()
    if path, ok := LookupFlagValue(args, "config"); ok && strings.TrimSpace(path) != "" {
        fc, err := LoadConfigFile(path)
        if err != nil {
            return Config{}, fmt.Errorf("load config: %w", err)
        }
        ApplyFileConfig(&cfg, fc)
    }
    ApplyEnvOverrides(&cfg)

    // Registered so Parse accepts them; values were consumed above.
    fs.String("env", envPath, "Path to a dotenv file loaded before reading the environment")
    fs.String("config", "", "Path to a YAML or JSON config file")
    BindFlags(fs, &cfg)
    if bind != nil {
        bind(fs, &cfg)
    }
    if err := fs.Parse(args); err != nil {
        return Config{}, err
    }
    return cfg, nil
}
