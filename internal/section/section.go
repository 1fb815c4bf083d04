// Package section names the anchorable blocks of the portfolio page.
package section

import "fmt"

// ID identifies one anchorable section of the page.
type ID string

const (
	Home           ID = "home"
	Projects       ID = "projects"
	Experience     ID = "experience"
	Certifications ID = "certifications"
	Skills         ID = "skills"
	Contact        ID = "contact"
)

// trackingOrder is the order the active-section scan walks (in reverse).
var trackingOrder = []ID{Home, Projects, Experience, Certifications, Skills, Contact}

// pageOrder is the order sections appear in the page body.
var pageOrder = []ID{Home, Experience, Certifications, Projects, Skills, Contact}

var labels = map[ID]string{
	Home:           "Home",
	Projects:       "Projects",
	Experience:     "Experience",
	Certifications: "Certificates",
	Skills:         "Skills",
	Contact:        "Contact",
}

// Order returns the display order used for scroll tracking.
func Order() []ID {
	out := make([]ID, len(trackingOrder))
	copy(out, trackingOrder)
	return out
}

// PageOrder returns the order in which sections are rendered.
func PageOrder() []ID {
	out := make([]ID, len(pageOrder))
	copy(out, pageOrder)
	return out
}

// Parse converts a raw identifier into an ID.
func Parse(s string) (ID, error) {
	id := ID(s)
	if _, ok := labels[id]; !ok {
		return "", fmt.Errorf("unknown section %q", s)
	}
	return id, nil
}

// Anchor returns the in-page jump target for the section.
func (id ID) Anchor() string {
	return "#" + string(id)
}

// Label returns the navigation label.
func (id ID) Label() string {
	return labels[id]
}

func (id ID) String() string {
	return string(id)
}
