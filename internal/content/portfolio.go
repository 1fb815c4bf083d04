// Package content holds the portfolio data object and the ways to build it:
// the built-in default and an optional YAML or JSON override file.
package content

import "strings"

// Portfolio is the single data object the page is rendered from. It is
// built once at startup and never mutated afterwards.
type Portfolio struct {
	Profile      Profile           `yaml:"profile" json:"profile"`
	Contact      ContactInfo       `yaml:"contact" json:"contact"`
	Footer       Footer            `yaml:"footer" json:"footer"`
	Experience   []ExperienceEntry `yaml:"experience" json:"experience" validate:"dive"`
	Certificates []Certificate     `yaml:"certificates" json:"certificates" validate:"dive"`
	Projects     []Project         `yaml:"projects" json:"projects" validate:"dive"`
	SkillGroups  []SkillGroup      `yaml:"skillGroups" json:"skillGroups" validate:"dive"`
}

type Profile struct {
	Name     string `yaml:"name" json:"name" validate:"required"`
	Title    string `yaml:"title" json:"title"`
	Summary  string `yaml:"summary" json:"summary"`
	Headline string `yaml:"headline,omitempty" json:"headline,omitempty"`
	// Image is the hero portrait. The hero shows no picture when empty.
	Image string `yaml:"image,omitempty" json:"image,omitempty" validate:"omitempty,imgsrc"`
}

// Tagline is the line shown under the name in the hero banner.
func (p Profile) Tagline() string {
	if p.Headline != "" {
		return p.Headline
	}
	return p.Title
}

type ContactInfo struct {
	Name     string `yaml:"name" json:"name"`
	Email    string `yaml:"email" json:"email" validate:"required,email"`
	Phone    string `yaml:"phone" json:"phone"`
	LinkedIn string `yaml:"linkedin" json:"linkedin" validate:"omitempty,href"`
	GitHub   string `yaml:"github,omitempty" json:"github,omitempty" validate:"omitempty,href"`
	Resume   string `yaml:"resume" json:"resume" validate:"omitempty,href"`
}

// Footer is the copy shown above the contact icons.
type Footer struct {
	Heading string `yaml:"heading" json:"heading"`
	Blurb   string `yaml:"blurb" json:"blurb"`
}

type ExperienceEntry struct {
	Company   string   `yaml:"company" json:"company" validate:"required"`
	Role      string   `yaml:"role" json:"role" validate:"required"`
	Period    string   `yaml:"period" json:"period"`
	Location  string   `yaml:"location" json:"location"`
	TechStack string   `yaml:"techStack,omitempty" json:"techStack,omitempty"`
	Points    []string `yaml:"points" json:"points"`
}

type Certificate struct {
	Title       string `yaml:"title" json:"title" validate:"required"`
	Issuer      string `yaml:"issuer" json:"issuer"`
	Date        string `yaml:"date" json:"date"`
	Description string `yaml:"description" json:"description"`
	Link        string `yaml:"link" json:"link" validate:"omitempty,href"`
	Note        string `yaml:"note,omitempty" json:"note,omitempty"`
}

// Lines splits the description on newline boundaries.
func (c Certificate) Lines() []string {
	return strings.Split(c.Description, "\n")
}

type Project struct {
	Title       string `yaml:"title" json:"title" validate:"required"`
	Stack       string `yaml:"stack" json:"stack"`
	Description string `yaml:"desc" json:"desc"`
	Live        string `yaml:"live,omitempty" json:"live,omitempty" validate:"omitempty,href"`
	Repo        string `yaml:"repo,omitempty" json:"repo,omitempty" validate:"omitempty,href"`
}

// Link is an outbound action link on a project card.
type Link struct {
	Label string
	URL   string
}

// Links returns the project's live and repository links that are set.
func (p Project) Links() []Link {
	var links []Link
	if p.Live != "" {
		links = append(links, Link{Label: "Live", URL: p.Live})
	}
	if p.Repo != "" {
		links = append(links, Link{Label: "Repo", URL: p.Repo})
	}
	return links
}

type SkillGroup struct {
	Category string   `yaml:"category" json:"category" validate:"required"`
	Skills   []string `yaml:"skills" json:"skills"`
}

// normalize replaces nil collections with empty ones so renderers never
// see a missing field.
func (p *Portfolio) normalize() {
	if p.Experience == nil {
		p.Experience = []ExperienceEntry{}
	}
	for i := range p.Experience {
		if p.Experience[i].Points == nil {
			p.Experience[i].Points = []string{}
		}
	}
	if p.Certificates == nil {
		p.Certificates = []Certificate{}
	}
	if p.Projects == nil {
		p.Projects = []Project{}
	}
	if p.SkillGroups == nil {
		p.SkillGroups = []SkillGroup{}
	}
	for i := range p.SkillGroups {
		if p.SkillGroups[i].Skills == nil {
			p.SkillGroups[i].Skills = []string{}
		}
	}
	if p.Contact.Name == "" {
		p.Contact.Name = p.Profile.Name
	}
}
