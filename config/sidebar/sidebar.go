package sidebar

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/unchain-tech/unchain-portal/config/format"
)

type ItemType string

const (
	ItemDoc           ItemType = "doc"
	ItemCategory      ItemType = "category"
	ItemLink          ItemType = "link"
	ItemAutogenerated ItemType = "autogenerated"
	ItemRef           ItemType = "ref"
	ItemHTML          ItemType = "html"
)

var ItemTypes = []ItemType{ItemDoc, ItemCategory, ItemLink, ItemAutogenerated, ItemRef, ItemHTML}

// DefaultID is the sidebar the docs plugin generates when no sidebar file is given.
const DefaultID = "defaultSidebar"

type Item struct {
	Type    ItemType `json:"type"`
	ID      string   `json:"id,omitempty"`
	Label   string   `json:"label,omitempty"`
	Href    string   `json:"href,omitempty"`
	DirName string   `json:"dirName,omitempty"`
	Value   string   `json:"value,omitempty"`
	Items   []Item   `json:"items,omitempty"`
}

// UnmarshalJSON also accepts a bare string as a doc id.
func (i *Item) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*i = Item{Type: ItemDoc, ID: id}
		return nil
	}
	type plain Item
	return json.Unmarshal(data, (*plain)(i))
}

// Sidebars maps a sidebar identifier to its items.
type Sidebars map[string][]Item

func Default() Sidebars {
	return Sidebars{
		DefaultID: {{Type: ItemAutogenerated, DirName: "."}},
	}
}

func Load(path string) (Sidebars, error) {
	f, err := format.Detect(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := format.Decode(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	var out Sidebars
	if err := format.Convert(doc, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

// IDs returns the sidebar identifiers in sorted order.
func (s Sidebars) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (s Sidebars) Has(id string) bool {
	_, ok := s[id]
	return ok
}
