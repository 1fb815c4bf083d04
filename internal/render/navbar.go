package render

import (
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/nav"
	"github.com/Zachkp/portfolio/internal/section"
)

// NavLink is one entry in the navigation bar.
type NavLink struct {
	Label    string
	Href     string
	External bool
	Section  section.ID
	Active   bool
}

// NavData is the view model for nav.html.
type NavData struct {
	Brand    string
	Active   section.ID
	MenuOpen bool
	Links    []NavLink
}

var navSections = []section.ID{
	section.Projects,
	section.Experience,
	section.Certifications,
	section.Skills,
	section.Contact,
}

// BuildNav derives the navigation bar from the contact links and the
// current navigation state.
func BuildNav(site *content.Portfolio, state nav.State) NavData {
	if state.Active == "" {
		state.Active = section.Home
	}
	data := NavData{
		Brand:    site.Profile.Name,
		Active:   state.Active,
		MenuOpen: state.MenuOpen,
	}
	if site.Contact.Resume != "" {
		data.Links = append(data.Links, NavLink{Label: "Resume", Href: site.Contact.Resume, External: true})
	}
	if site.Contact.GitHub != "" {
		data.Links = append(data.Links, NavLink{Label: "GitHub", Href: site.Contact.GitHub, External: true})
	}
	for _, id := range navSections {
		data.Links = append(data.Links, NavLink{
			Label:   id.Label(),
			Href:    id.Anchor(),
			Section: id,
			Active:  id == state.Active,
		})
	}
	return data
}
