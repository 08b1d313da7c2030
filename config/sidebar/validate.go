package sidebar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/unchain-tech/unchain-portal/config/validate"
)

func (s Sidebars) Validate(v *validate.ValidationErrors, path string) {
	for _, id := range s.IDs() {
		idPath := path + "/" + id
		if strings.TrimSpace(id) == "" {
			validate.Fail(v, idPath, id, errors.New("sidebar id must not be empty"))
			continue
		}
		validateItems(v, idPath, s[id])
	}
}

func validateItems(v *validate.ValidationErrors, path string, items []Item) {
	for i, item := range items {
		item.validate(v, fmt.Sprintf("%s[%d]", path, i))
	}
}

func (i Item) validate(v *validate.ValidationErrors, path string) {
	if !validate.RequireOneOf(v, path+"/type", i.Type, ItemTypes) {
		return
	}
	switch i.Type {
	case ItemDoc, ItemRef:
		validate.RequireString(v, path+"/id", i.ID)
	case ItemLink:
		validate.RequireString(v, path+"/label", i.Label)
		validate.RequireString(v, path+"/href", i.Href)
	case ItemAutogenerated:
		validate.RequireString(v, path+"/dirName", i.DirName)
	case ItemHTML:
		validate.RequireString(v, path+"/value", i.Value)
	case ItemCategory:
		validate.RequireString(v, path+"/label", i.Label)
		if validate.RequireNonEmpty(v, path+"/items", i.Items) {
			validateItems(v, path+"/items", i.Items)
		}
	}
}
