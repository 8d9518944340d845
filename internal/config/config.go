package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/inkwell/internal/markdown"
	"github.com/gorewood/inkwell/internal/site"
)

// FileName is the project configuration file looked up in the working
// directory.
const FileName = "inkwell.yaml"

// Config holds the settings for a build.
type Config struct {
	BlogDir        string `yaml:"blog_dir"`
	TemplatesDir   string `yaml:"templates_dir"`
	IndexName      string `yaml:"index_name"`
	Extension      string `yaml:"extension"`
	Markdown       string `yaml:"markdown"`
	HighlightStyle string `yaml:"highlight_style"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		BlogDir:        "blog",
		TemplatesDir:   "templates",
		IndexName:      site.DefaultIndexName,
		Extension:      site.DefaultExtension,
		Markdown:       markdown.FlavorMinimal,
		HighlightStyle: markdown.DefaultHighlightStyle,
	}
}

// Load returns the defaults overlaid with the YAML file at path (if it
// exists) and then with INKWELL_* environment variables. Keys absent from
// the file keep their defaults. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	default:
		if err := decode(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

var envOverrides = []struct {
	name  string
	field func(*Config) *string
}{
	{"INKWELL_BLOG_DIR", func(c *Config) *string { return &c.BlogDir }},
	{"INKWELL_TEMPLATES_DIR", func(c *Config) *string { return &c.TemplatesDir }},
	{"INKWELL_INDEX_NAME", func(c *Config) *string { return &c.IndexName }},
	{"INKWELL_MARKDOWN", func(c *Config) *string { return &c.Markdown }},
	{"INKWELL_HIGHLIGHT_STYLE", func(c *Config) *string { return &c.HighlightStyle }},
}

func (c *Config) applyEnv() {
	for _, o := range envOverrides {
		if v := strings.TrimSpace(os.Getenv(o.name)); v != "" {
			*o.field(c) = v
		}
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.BlogDir) == "":
		return errors.New("blog_dir must not be empty")
	case strings.TrimSpace(c.TemplatesDir) == "":
		return errors.New("templates_dir must not be empty")
	case strings.TrimSpace(c.IndexName) == "":
		return errors.New("index_name must not be empty")
	case strings.ContainsAny(c.IndexName, `/\`):
		return fmt.Errorf("index_name %q must be a file name, not a path", c.IndexName)
	case !strings.HasPrefix(c.Extension, ".") || len(c.Extension) < 2:
		return fmt.Errorf("extension %q must start with a dot", c.Extension)
	}

	flavor := strings.ToLower(strings.TrimSpace(c.Markdown))
	if flavor != "" && !slices.Contains(markdown.Flavors(), flavor) {
		return fmt.Errorf("%w %q (want %s)", markdown.ErrUnknownFlavor, c.Markdown, strings.Join(markdown.Flavors(), " or "))
	}
	return nil
}

// Renderer returns the markdown renderer selected by the config.
func (c *Config) Renderer() (markdown.Renderer, error) {
	return markdown.New(c.Markdown, c.HighlightStyle)
}
