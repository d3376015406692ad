package pages

// IncludeComponent is the alias a page lists to be indexed by site search
const IncludeComponent = "siteSearchInclude"

// ComponentDetails describes a CMS component to page editors
type ComponentDetails struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Property is an editable component property
type Property struct {
	Title   string `json:"title"`
	Type    string `json:"type"`
	Default any    `json:"default,omitempty"`
}

// Component is a CMS component that can be attached to a page
type Component interface {
	ComponentDetails() ComponentDetails
	DefineProperties() map[string]Property
}

// SiteSearchInclude is an empty marker: attaching it to a page opts the
// page into search results. It renders nothing and has no properties.
type SiteSearchInclude struct{}

func (SiteSearchInclude) ComponentDetails() ComponentDetails {
	return ComponentDetails{
		Name:        "Site search include",
		Description: "Includes the page in site search results",
	}
}

func (SiteSearchInclude) DefineProperties() map[string]Property {
	return map[string]Property{}
}

// Components lists the components this plugin registers, by alias
func Components() map[string]Component {
	return map[string]Component{
		IncludeComponent: SiteSearchInclude{},
	}
}
