package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	cases := map[string]Format{
		"portal.yaml":   YAML,
		"portal.YML":    YAML,
		"portal.toml":   TOML,
		"portal.json":   JSON,
		"portal.jsonc":  JSON,
		"portal.hujson": JSON,
	}
	for in, want := range cases {
		got, err := Detect(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := Detect("portal")
	assert.Error(t, err)
	_, err = Detect("docusaurus.config.js")
	assert.Error(t, err)
}

func TestDecodeJSONWithComments(t *testing.T) {
	doc, err := Decode([]byte(`{
  // Set the production url of your site here
  "url": "https://unchain-tech.github.io/",
  "i18n": {"defaultLocale": "en", "locales": ["en",],},
}`), JSON)
	require.NoError(t, err)

	assert.Equal(t, "https://unchain-tech.github.io/", doc["url"])
	assert.Equal(t, []any{"en"}, doc["i18n"].(map[string]any)["locales"])
}

func TestDecodeTOML(t *testing.T) {
	doc, err := Decode([]byte(`
title = "UNCHAIN Portal"

[i18n]
defaultLocale = "en"
locales = ["en"]
`), TOML)
	require.NoError(t, err)

	assert.Equal(t, "UNCHAIN Portal", doc["title"])
	assert.Equal(t, []any{"en"}, doc["i18n"].(map[string]any)["locales"])
}

func TestDecodeYAML(t *testing.T) {
	doc, err := Decode([]byte("title: UNCHAIN Portal\ntrailingSlash: false\n"), YAML)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"title": "UNCHAIN Portal", "trailingSlash": false}, doc)

	doc, err = Decode(nil, YAML)
	require.NoError(t, err)
	assert.Empty(t, doc)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte(`{"title": `), JSON)
	assert.ErrorContains(t, err, "failed to parse JSON")
	_, err = Decode([]byte("title = "), TOML)
	assert.ErrorContains(t, err, "failed to parse TOML")
	_, err = Decode([]byte("- a\n- b\n"), YAML)
	assert.ErrorContains(t, err, "failed to parse YAML")
}

func TestEncodeRoundTrip(t *testing.T) {
	doc := map[string]any{
		"title":   "UNCHAIN Portal",
		"presets": []any{[]any{"classic", map[string]any{"blog": false}}},
		"i18n":    map[string]any{"defaultLocale": "en", "locales": []any{"en"}},
	}
	for _, f := range []Format{JSON, YAML} {
		out, err := Encode(doc, f)
		require.NoError(t, err, f)

		back, err := Decode(out, f)
		require.NoError(t, err, f)
		assert.Equal(t, doc, back, f)
	}
}

func TestParse(t *testing.T) {
	f, err := Parse(" YAML ")
	require.NoError(t, err)
	assert.Equal(t, YAML, f)

	_, err = Parse("xml")
	assert.ErrorContains(t, err, `unknown format "xml"`)
}
