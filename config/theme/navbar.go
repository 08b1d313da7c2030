package theme

import "github.com/rs/zerolog"

type ItemType string
type Position string

const (
	ItemDefault        ItemType = "default"
	ItemDocSidebar     ItemType = "docSidebar"
	ItemDoc            ItemType = "doc"
	ItemDropdown       ItemType = "dropdown"
	ItemLocaleDropdown ItemType = "localeDropdown"
	ItemSearch         ItemType = "search"
	ItemHTML           ItemType = "html"

	PositionLeft  Position = "left"
	PositionRight Position = "right"
)

var (
	ItemTypes = []ItemType{ItemDefault, ItemDocSidebar, ItemDoc, ItemDropdown, ItemLocaleDropdown, ItemSearch, ItemHTML}
	Positions = []Position{PositionLeft, PositionRight}
)

type NavbarConfig struct {
	Title        string       `json:"title,omitempty"`
	Logo         *Logo        `json:"logo,omitempty"`
	HideOnScroll bool         `json:"hideOnScroll,omitempty"`
	Items        []NavbarItem `json:"items,omitempty"`
}

// NavbarItem is a single navbar descriptor. Which fields matter depends on
// Kind: links use To or Href, docSidebar uses SidebarID, doc uses DocID,
// dropdown nests Items, html uses Value.
type NavbarItem struct {
	Type      ItemType     `json:"type,omitempty"`
	Label     string       `json:"label,omitempty"`
	Position  Position     `json:"position,omitempty"`
	To        string       `json:"to,omitempty"`
	Href      string       `json:"href,omitempty"`
	SidebarID string       `json:"sidebarId,omitempty"`
	DocID     string       `json:"docId,omitempty"`
	Value     string       `json:"value,omitempty"`
	ClassName string       `json:"className,omitempty"`
	Items     []NavbarItem `json:"items,omitempty"`
}

func (i NavbarItem) Kind() ItemType {
	if i.Type == "" {
		return ItemDefault
	}
	return i.Type
}

// Side returns the effective position; items default to the left.
func (i NavbarItem) Side() Position {
	if i.Position == "" {
		return PositionLeft
	}
	return i.Position
}

// Target returns what the item points at, for display.
func (i NavbarItem) Target() string {
	switch i.Kind() {
	case ItemDocSidebar:
		return "sidebar:" + i.SidebarID
	case ItemDoc:
		return "doc:" + i.DocID
	case ItemDefault:
		if i.Href != "" {
			return i.Href
		}
		return i.To
	}
	return ""
}

// SidebarRefs collects the sidebar ids referenced by items, dropdowns included.
func SidebarRefs(items []NavbarItem) []string {
	var refs []string
	for _, i := range items {
		if i.Kind() == ItemDocSidebar {
			refs = append(refs, i.SidebarID)
		}
		refs = append(refs, SidebarRefs(i.Items)...)
	}
	return refs
}

func (i NavbarItem) MarshalZerologObject(e *zerolog.Event) {
	e.Str("type", string(i.Kind())).Str("position", string(i.Side()))
	if i.Label != "" {
		e.Str("label", i.Label)
	}
	if t := i.Target(); t != "" {
		e.Str("target", t)
	}
	if len(i.Items) > 0 {
		e.Int("items", len(i.Items))
	}
}
