package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tailscale/hujson"
	"github.com/unchain-tech/unchain-portal/utils"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

var Formats = []Format{JSON, YAML, TOML}

// Parse maps a user supplied format name.
func Parse(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json", "jsonc", "hujson":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	}
	return "", fmt.Errorf("unknown format %q (expected one of %v)", name, Formats)
}

// Detect picks the format from the file extension.
func Detect(path string) (Format, error) {
	ext := utils.NormalizeExt(filepath.Ext(path))
	if ext == "" {
		return "", fmt.Errorf("%s: missing file extension", path)
	}
	f, err := Parse(ext)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Decode turns data into a generic document whose root is an object.
// JSON input may carry comments and trailing commas.
func Decode(data []byte, f Format) (map[string]any, error) {
	doc := map[string]any{}
	switch f {
	case YAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case TOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	case JSON:
		std, err := hujson.Standardize(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		if err := json.Unmarshal(std, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown format %q", f)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

// Encode writes a generic document.
func Encode(doc any, f Format) ([]byte, error) {
	switch f {
	case JSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return buf.Bytes(), nil
	case YAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("failed to marshal YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return buf.Bytes(), nil
	case TOML:
		out, err := toml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal TOML: %w", err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown format %q", f)
}

// Convert re-shapes src into dst through JSON, honouring dst's json tags.
func Convert(src any, dst any) error {
	raw, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

// Generic turns a typed value into the generic document form.
func Generic(v any) (map[string]any, error) {
	doc := map[string]any{}
	if err := Convert(v, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
