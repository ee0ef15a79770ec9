package app

import (
    "encoding/json"
    "errors"
    "fmt"
    "net/url"
    "os"
    "path/filepath"
    "strings"
    "time"

    "golang.org/x/text/language"
    yaml "gopkg.in/yaml.v3"

    "github.com/hyperifyio/goanswer/internal/extract"
)

// FileConfig represents the single-file configuration schema.
// Nested sections map naturally to flags/env.
type FileConfig struct {
    Language  string `yaml:"language" json:"language"`
    Sentences int    `yaml:"sentences" json:"sentences"`

    Wiki struct {
        API         string        `yaml:"api" json:"api"`
        Article     string        `yaml:"article" json:"article"`
        File        string        `yaml:"file" json:"file"`
        UA          string        `yaml:"ua" json:"ua"`
        AutoSuggest *bool         `yaml:"autoSuggest" json:"autoSuggest"`
        Redirect    *bool         `yaml:"redirect" json:"redirect"`
        Timeout     time.Duration `yaml:"timeout" json:"timeout"`
    } `yaml:"wiki" json:"wiki"`

    Search struct {
        URL           string        `yaml:"url" json:"url"`
        UA            string        `yaml:"ua" json:"ua"`
        Selectors     []string      `yaml:"selectors" json:"selectors"`
        MaxChars      int           `yaml:"maxChars" json:"maxChars"`
        Timeout       time.Duration `yaml:"timeout" json:"timeout"`
        MaxConcurrent int           `yaml:"maxConcurrent" json:"maxConcurrent"`
    } `yaml:"search" json:"search"`

    Messages struct {
        NoInformation   string `yaml:"noInformation" json:"noInformation"`
        Unavailable     string `yaml:"unavailable" json:"unavailable"`
        PlaceholderLink string `yaml:"placeholderLink" json:"placeholderLink"`
    } `yaml:"messages" json:"messages"`

    Output struct {
        Format string `yaml:"format" json:"format"`
        PDF    string `yaml:"pdf" json:"pdf"`
    } `yaml:"output" json:"output"`

    Listen  string `yaml:"listen" json:"listen"`
    Verbose bool   `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
    var fc FileConfig
    b, err := os.ReadFile(path)
    if err != nil {
        return fc, err
    }
    switch ext := filepath.Ext(path); ext {
    case ".yaml", ".yml":
        if err := yaml.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse yaml: %w", err)
        }
    case ".json":
        if err := json.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse json: %w", err)
        }
    default:
        // Try YAML then JSON
        if err := yaml.Unmarshal(b, &fc); err != nil {
            if jerr := json.Unmarshal(b, &fc); jerr != nil {
                return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
            }
        }
    }
    return fc, nil
}

// ApplyFileConfig overlays every value present in fc onto cfg. It runs on top
// of Defaults(), before env and flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
    if cfg == nil { return }

    if fc.Language != "" { cfg.Language = fc.Language }
    if fc.Sentences > 0 { cfg.Sentences = fc.Sentences }

    if fc.Wiki.API != "" { cfg.WikiAPIURL = fc.Wiki.API }
    if fc.Wiki.Article != "" { cfg.WikiArticleURL = fc.Wiki.Article }
    if fc.Wiki.File != "" { cfg.WikiFile = fc.Wiki.File }
    if fc.Wiki.UA != "" { cfg.WikiUA = fc.Wiki.UA }
    if fc.Wiki.AutoSuggest != nil { cfg.AutoSuggest = *fc.Wiki.AutoSuggest }
    if fc.Wiki.Redirect != nil { cfg.FollowRedirect = *fc.Wiki.Redirect }
    if fc.Wiki.Timeout > 0 { cfg.PrimaryTimeout = fc.Wiki.Timeout }

    if fc.Search.URL != "" { cfg.SearchURL = fc.Search.URL }
    if fc.Search.UA != "" { cfg.SearchUA = fc.Search.UA }
    if len(fc.Search.Selectors) > 0 { cfg.SearchSelectors = append([]string{}, fc.Search.Selectors...) }
    if fc.Search.MaxChars > 0 { cfg.MaxSnippetChars = fc.Search.MaxChars }
    if fc.Search.Timeout > 0 { cfg.FallbackTimeout = fc.Search.Timeout }
    if fc.Search.MaxConcurrent > 0 { cfg.MaxConcurrentFetches = fc.Search.MaxConcurrent }

    if fc.Messages.NoInformation != "" { cfg.NoInformationText = fc.Messages.NoInformation }
    if fc.Messages.Unavailable != "" { cfg.UnavailableText = fc.Messages.Unavailable }
    if fc.Messages.PlaceholderLink != "" { cfg.PlaceholderLink = fc.Messages.PlaceholderLink }

    if fc.Output.Format != "" { cfg.Format = fc.Output.Format }
    if fc.Output.PDF != "" { cfg.OutputPDFPath = fc.Output.PDF }

    if fc.Listen != "" { cfg.ListenAddr = fc.Listen }
    if fc.Verbose { cfg.Verbose = true }
}

// ValidateConfig checks required settings and canonicalizes the language to
// its base subtag ("TR" and "tr-TR" both become "tr").
func ValidateConfig(cfg *Config) error {
    if cfg == nil {
        return errors.New("config: nil")
    }
    tag, err := language.Parse(strings.TrimSpace(cfg.Language))
    if err != nil {
        return fmt.Errorf("config: language %q: %w", cfg.Language, err)
    }
    base, conf := tag.Base()
    if conf == language.No {
        return fmt.Errorf("config: language %q has no base language", cfg.Language)
    }
    cfg.Language = base.String()

    if cfg.WikiFile == "" {
        if err := checkHTTPURL("wiki.api", strings.ReplaceAll(cfg.WikiAPIURL, "{lang}", cfg.Language)); err != nil {
            return err
        }
    }
    if err := checkHTTPURL("wiki.article", strings.ReplaceAll(cfg.WikiArticleURL, "{lang}", cfg.Language)); err != nil {
        return err
    }
    if err := checkHTTPURL("search.url", cfg.SearchURL); err != nil {
        return err
    }
    if _, err := extract.ParseSelectors(cfg.SearchSelectors); err != nil {
        return fmt.Errorf("config: search.selectors: %w", err)
    }
    if cfg.Sentences < 0 || cfg.MaxConcurrentFetches < 0 {
        return errors.New("config: negative limits are not allowed")
    }
    if cfg.MaxSnippetChars <= 0 {
        return errors.New("config: max snippet chars must be positive")
    }
    if cfg.PrimaryTimeout <= 0 || cfg.FallbackTimeout <= 0 {
        return errors.New("config: timeouts must be positive")
    }
    switch cfg.Format {
    case FormatText, FormatMarkdown, FormatJSON:
    default:
        return fmt.Errorf("config: unknown output format %q", cfg.Format)
    }
    return nil
}

func checkHTTPURL(name, raw string) error {
    u, err := url.Parse(strings.TrimSpace(raw))
    if err != nil {
        return fmt.Errorf("config: %s: %w", name, err)
    }
    if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
        return fmt.Errorf("config: %s must be an absolute http(s) URL, got %q", name, raw)
    }
    return nil
}
