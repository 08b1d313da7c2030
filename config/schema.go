package config

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/unchain-tech/unchain-portal/config/validate"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaBytes []byte

var schemaLoader = gojsonschema.NewBytesLoader(schemaBytes)

// CheckSchema checks the shape of a decoded document. Shape violations are
// added to v; the returned error is reserved for a broken schema or document.
func CheckSchema(doc map[string]any, v *validate.ValidationErrors) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("schema check failed: %w", err)
	}
	for _, e := range result.Errors() {
		validate.Fail(v, schemaPath(e.Field()), e.Value(), errors.New(e.Description()))
	}
	return nil
}

// schemaPath turns "themeConfig.navbar.items.0" into "themeConfig/navbar/items[0]".
func schemaPath(field string) string {
	if field == "" || field == "(root)" {
		return "(root)"
	}
	parts := strings.Split(field, ".")
	var sb strings.Builder
	for i, p := range parts {
		if isIndex(p) && i > 0 {
			sb.WriteString("[" + p + "]")
			continue
		}
		if i > 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(p)
	}
	return sb.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
