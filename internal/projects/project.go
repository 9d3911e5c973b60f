// Package projects loads and validates the project gallery.
package projects

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/Zachkp/portfolio/internal/content"
)

// Image fit modes.
const (
	FitCover   = "cover"
	FitContain = "contain"
)

// Tool is a technology used on a project and what it was used for.
type Tool struct {
	Name    string `yaml:"name" validate:"required"`
	Purpose string `yaml:"purpose" validate:"required"`
}

// Step is one stage of a project's process.
type Step struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description" validate:"required"`
}

// Project is one gallery entry. Link fields are nil when the project has no
// such link.
type Project struct {
	Slug                string   `validate:"required,slug"`
	Title               string   `validate:"required"`
	Description         string   `validate:"required"`
	DetailedDescription string   `validate:"required"`
	Image               string   `validate:"required,asset"`
	ImageFit            string   `validate:"oneof=cover contain"`
	Tags                []string `validate:"dive,required"`
	Color               string
	Tools               []Tool `validate:"dive"`
	Steps               []Step `validate:"dive"`

	ShopifyURL *string `validate:"omitempty,url"`
	GithubURL  *string `validate:"omitempty,url"`
	BehanceURL *string `validate:"omitempty,url"`
	WebsiteURL *string `validate:"omitempty,url"`
}

// Link is an outbound link shown on a card or in the modal.
type Link struct {
	Label string
	URL   string
}

// Links returns the project's present links in display order.
func (p Project) Links() []Link {
	var links []Link
	add := func(label string, u *string) {
		if u != nil {
			links = append(links, Link{Label: label, URL: *u})
		}
	}
	add("Visit Store", p.ShopifyURL)
	add("View Code", p.GithubURL)
	add("View on Behance", p.BehanceURL)
	add("Visit Website", p.WebsiteURL)
	return links
}

// record is the on-disk shape. Empty link strings mean "absent".
type record struct {
	Slug                string   `yaml:"slug"`
	Title               string   `yaml:"title"`
	Description         string   `yaml:"description"`
	DetailedDescription string   `yaml:"detailedDescription"`
	Image               string   `yaml:"image"`
	ImageFit            string   `yaml:"imageFit"`
	Tags                []string `yaml:"tags"`
	Color               string   `yaml:"color"`
	Tools               []Tool   `yaml:"tools"`
	Steps               []Step   `yaml:"steps"`
	ShopifyURL          string   `yaml:"shopifyUrl"`
	GithubURL           string   `yaml:"githubUrl"`
	BehanceURL          string   `yaml:"behanceUrl"`
	WebsiteURL          string   `yaml:"websiteUrl"`
}

func (r record) project() Project {
	fit := r.ImageFit
	if fit == "" {
		fit = FitCover
	}
	return Project{
		Slug:                r.Slug,
		Title:               strings.TrimSpace(r.Title),
		Description:         strings.TrimSpace(r.Description),
		DetailedDescription: strings.TrimSpace(r.DetailedDescription),
		Image:               r.Image,
		ImageFit:            fit,
		Tags:                r.Tags,
		Color:               r.Color,
		Tools:               r.Tools,
		Steps:               r.Steps,
		ShopifyURL:          optional(r.ShopifyURL),
		GithubURL:           optional(r.GithubURL),
		BehanceURL:          optional(r.BehanceURL),
		WebsiteURL:          optional(r.WebsiteURL),
	}
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

var (
	slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	validate    = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	// Images are either bundled assets or absolute http(s) URLs.
	_ = v.RegisterValidation("asset", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return strings.HasPrefix(s, "/") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://")
	})
	return v
}

// ErrDuplicateSlug is returned when two projects share a slug.
var ErrDuplicateSlug = errors.New("projects: duplicate slug")

// Load decodes and validates a YAML list of projects. Unknown fields are
// rejected.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var records []record
	if err := dec.Decode(&records); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("projects: decode: %w", err)
	}

	c := &Catalog{bySlug: make(map[string]int, len(records))}
	for i, rec := range records {
		p := rec.project()
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("projects: entry %d (%q): %w", i, rec.Title, err)
		}
		if _, dup := c.bySlug[p.Slug]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSlug, p.Slug)
		}
		c.bySlug[p.Slug] = len(c.items)
		c.items = append(c.items, p)
	}
	return c, nil
}

// LoadDefault loads the gallery bundled with the binary.
func LoadDefault() (*Catalog, error) {
	return Load(bytes.NewReader(content.ProjectsYAML))
}

// Catalog is an ordered, read-only set of projects.
type Catalog struct {
	items  []Project
	bySlug map[string]int
}

// All returns the projects in source order.
func (c *Catalog) All() []Project {
	out := make([]Project, len(c.items))
	copy(out, c.items)
	return out
}

// BySlug looks a project up by its slug.
func (c *Catalog) BySlug(slug string) (Project, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Project{}, false
	}
	return c.items[i], true
}

func (c *Catalog) Len() int { return len(c.items) }
