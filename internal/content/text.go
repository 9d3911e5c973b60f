// Package content is the static copy of the site. It changes with a deploy,
// never at runtime.
package content

import _ "embed"

// ProjectsYAML is the project gallery source, validated by package projects.
//
//go:embed projects.yaml
var ProjectsYAML []byte

const (
	Owner        = "Tom Konarski"
	ContactEmail = "enquiries@tomkonarski.com"
)

// Roles cycle in the hero's typed headline.
var Roles = []string{"UI/UX Designer", "Graphic Designer"}

var (
	HeroIntro = `Designing clear, bold digital products and the brands behind them.`

	AboutMe = []string{
		`Hi! I'm a passionate designer and developer who loves creating beautiful, functional digital experiences.
	With a keen eye for detail and a user-first mindset, I bridge the gap between design and development.`,
		`When I'm not coding or designing, you'll find me exploring the latest design trends,
	contributing to open-source projects, or sharing knowledge with the creative community.`,
	}

	ContactIntro = `Have a project in mind or just want to chat? I'd love to hear from you!`

	ConnectIntro = `I'm always interested in hearing about new projects and opportunities.
	Whether you have a question or just want to say hi, feel free to reach out!`
)

// Skill is one card in the about section.
type Skill struct {
	Icon        string
	Title       string
	Description string
}

var Skills = []Skill{
	{
		Icon:        "code",
		Title:       "Frontend Development",
		Description: "Building responsive, performant web applications with React, TypeScript, and modern tooling.",
	},
	{
		Icon:        "palette",
		Title:       "UI/UX Design",
		Description: "Creating intuitive interfaces with a focus on aesthetics, usability, and accessibility.",
	},
	{
		Icon:        "car",
		Title:       "Car Poster Design",
		Description: "Creating stunning automotive poster designs with attention to detail and visual impact.",
	},
}

// SocialLink is an outbound profile link.
type SocialLink struct {
	Name string
	URL  string
}

var SocialLinks = []SocialLink{
	{Name: "LinkedIn", URL: "https://www.linkedin.com/in/tomkonarski/"},
	{Name: "GitHub", URL: "https://github.com/Quelllo"},
	{Name: "Email", URL: "mailto:" + ContactEmail},
}
