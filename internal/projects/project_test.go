package projects

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	c, err := LoadDefault()
	require.NoError(t, err)
	require.Equal(t, 6, c.Len())

	brzrk, ok := c.BySlug("brzrk")
	require.True(t, ok)
	assert.Equal(t, FitContain, brzrk.ImageFit)
	require.NotNil(t, brzrk.ShopifyURL)
	assert.Nil(t, brzrk.GithubURL)

	gateway, ok := c.BySlug("gateway")
	require.True(t, ok)
	assert.Nil(t, gateway.GithubURL, "empty githubUrl means absent")
	require.NotNil(t, gateway.BehanceURL)
	assert.Equal(t, FitCover, gateway.ImageFit)
}

func TestLinksOrder(t *testing.T) {
	gh := "https://github.com/x/y"
	web := "https://example.com"
	p := Project{GithubURL: &gh, WebsiteURL: &web}

	assert.Equal(t, []Link{
		{Label: "View Code", URL: gh},
		{Label: "Visit Website", URL: web},
	}, p.Links())
	assert.Empty(t, Project{}.Links())
}

const valid = `
- slug: one
  title: One
  description: first
  detailedDescription: the first one
  image: /static/img/one.png
`

func TestLoadValid(t *testing.T) {
	c, err := Load(strings.NewReader(valid))
	require.NoError(t, err)
	assert.Equal(t, "One", c.All()[0].Title)

	_, ok := c.BySlug("two")
	assert.False(t, ok)
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown field", valid + "  stars: 5\n"},
		{"missing title", strings.Replace(valid, "title: One", "title: \"\"", 1)},
		{"bad slug", strings.Replace(valid, "slug: one", "slug: One Two", 1)},
		{"bad image", strings.Replace(valid, "/static/img/one.png", "one.png", 1)},
		{"bad fit", valid + "  imageFit: stretch\n"},
		{"bad link", valid + "  githubUrl: not a url\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.yaml))
			require.Error(t, err)
		})
	}
}

func TestLoadValidationErrorsAreTyped(t *testing.T) {
	_, err := Load(strings.NewReader(strings.Replace(valid, "title: One", "title: \"\"", 1)))

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "Title", verrs[0].Field())
}

func TestLoadRejectsDuplicateSlugs(t *testing.T) {
	_, err := Load(strings.NewReader(valid + strings.TrimPrefix(valid, "\n")))
	assert.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestAllReturnsCopy(t *testing.T) {
	c, err := Load(strings.NewReader(valid))
	require.NoError(t, err)

	all := c.All()
	all[0].Title = "changed"
	assert.Equal(t, "One", c.All()[0].Title)
}
