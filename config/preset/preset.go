package preset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Preset is one entry of the presets list: a module name plus an opaque
// options bag handed to that module by the host.
type Preset struct {
	Name    string
	Options map[string]any

	// Resolved is the module the name resolved to, empty until resolution succeeds.
	Resolved string
}

type Presets []Preset

// UnmarshalJSON accepts the shapes the host understands:
// "name", ["name"], ["name", {options}] and {"name": ..., "options": {...}}.
func (p *Preset) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errors.New("empty preset")
	}

	switch data[0] {
	case '"':
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*p = Preset{Name: name}
		return nil

	case '[':
		var tuple []json.RawMessage
		if err := json.Unmarshal(data, &tuple); err != nil {
			return err
		}
		if len(tuple) == 0 || len(tuple) > 2 {
			return fmt.Errorf("preset tuple must have 1 or 2 entries (got %d)", len(tuple))
		}
		var out Preset
		if err := json.Unmarshal(tuple[0], &out.Name); err != nil {
			return fmt.Errorf("preset name: %w", err)
		}
		if len(tuple) == 2 {
			if err := json.Unmarshal(tuple[1], &out.Options); err != nil {
				return fmt.Errorf("preset %q options: %w", out.Name, err)
			}
		}
		out.normalize()
		*p = out
		return nil

	case '{':
		var obj struct {
			Name    string         `json:"name"`
			Options map[string]any `json:"options"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*p = Preset{Name: obj.Name, Options: obj.Options}
		p.normalize()
		return nil
	}
	return fmt.Errorf("invalid preset %s", string(data))
}

// MarshalJSON always writes the tuple form.
func (p Preset) MarshalJSON() ([]byte, error) {
	if len(p.Options) == 0 {
		return json.Marshal([]any{p.Name})
	}
	return json.Marshal([]any{p.Name, p.Options})
}

func (p *Preset) normalize() {
	if len(p.Options) == 0 {
		p.Options = nil
	}
}

// Find returns the first preset resolved to module.
func (ps Presets) Find(module string) (*Preset, bool) {
	for i := range ps {
		if ps[i].Resolved == module {
			return &ps[i], true
		}
	}
	return nil, false
}
