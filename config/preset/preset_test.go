package preset

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unchain-tech/unchain-portal/config/validate"
)

func TestPresetShapes(t *testing.T) {
	cases := map[string]Preset{
		`"classic"`:                          {Name: "classic"},
		`["classic"]`:                        {Name: "classic"},
		`["classic", {}]`:                    {Name: "classic"},
		`["classic", null]`:                  {Name: "classic"},
		`["classic", {"blog": false}]`:       {Name: "classic", Options: map[string]any{"blog": false}},
		`{"name": "classic"}`:                {Name: "classic"},
		`{"name": "classic", "options": {}}`: {Name: "classic"},
	}
	for in, want := range cases {
		var got Preset
		require.NoError(t, json.Unmarshal([]byte(in), &got), in)
		assert.Equal(t, want, got, in)
	}
}

func TestPresetShapeErrors(t *testing.T) {
	for _, in := range []string{`[]`, `[1]`, `["a", {}, {}]`, `42`, `["classic", "docs"]`} {
		var p Preset
		assert.Error(t, json.Unmarshal([]byte(in), &p), in)
	}
}

func TestPresetMarshalsAsTuple(t *testing.T) {
	out, err := json.Marshal(Presets{
		{Name: "classic"},
		{Name: "classic", Options: map[string]any{"blog": false}},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[["classic"], ["classic", {"blog": false}]]`, string(out))
}

func TestCandidates(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]string{"@docusaurus/preset-classic", "docusaurus-preset-classic", "classic"}, Candidates("classic"))
	assert.Equal([]string{"docusaurus-preset-awesome"}, Candidates("docusaurus-preset-awesome"))
	assert.Equal([]string{"@unchain/docusaurus-preset"}, Candidates("@unchain"))
	assert.Equal([]string{"@unchain/docusaurus-preset-docs", "@unchain/docs"}, Candidates("@unchain/docs"))
	assert.Equal([]string{"@docusaurus/preset-classic"}, Candidates("@docusaurus/preset-classic"))
}

func TestRegistryResolve(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "my-preset.js"), []byte("module.exports = {}"), 0o644))

	r := NewRegistry(ClassicModule, "@unchain/docusaurus-preset")

	got, err := r.Resolve("classic", dir)
	require.NoError(t, err)
	assert.Equal(t, ClassicModule, got)

	got, err = r.Resolve("@unchain", dir)
	require.NoError(t, err)
	assert.Equal(t, "@unchain/docusaurus-preset", got)

	got, err = r.Resolve("./my-preset.js", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "my-preset.js"), got)

	_, err = r.Resolve("./missing.js", dir)
	assert.Error(t, err)

	_, err = r.Resolve("unknown", dir)
	assert.ErrorContains(t, err, `preset "unknown" cannot be resolved`)

	r.Register("docusaurus-preset-unknown")
	got, err = r.Resolve("unknown", dir)
	require.NoError(t, err)
	assert.Equal(t, "docusaurus-preset-unknown", got)
	assert.Equal(t, []string{ClassicModule, "@unchain/docusaurus-preset", "docusaurus-preset-unknown"}, r.Modules())
}

func TestClassicDefaults(t *testing.T) {
	p := Preset{Name: "classic", Options: map[string]any{
		"docs": map[string]any{"sidebarPath": "./sidebars.yaml", "routeBasePath": "/"},
		"blog": false,
		"theme": map[string]any{
			"customCss": "./src/css/custom.css",
		},
	}}

	opts, err := p.Classic()
	require.NoError(t, err)

	assert.Equal(t, &DocsOptions{Path: "docs", RouteBasePath: "/", SidebarPath: "./sidebars.yaml"}, opts.Docs)
	assert.True(t, opts.Blog.Disabled)
	assert.Empty(t, opts.Blog.Path)
	assert.Equal(t, "src/pages", opts.Pages.Path)
	assert.Equal(t, StringList{"./src/css/custom.css"}, opts.Theme.CustomCSS)
}

func TestClassicWithoutOptions(t *testing.T) {
	opts, err := Preset{Name: "classic"}.Classic()
	require.NoError(t, err)
	assert.Equal(t, "docs", opts.Docs.RouteBasePath)
	assert.Equal(t, "blog", opts.Blog.RouteBasePath)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	r := NewRegistry(ClassicModule)

	cases := []struct {
		name    string
		presets Presets
		errMsg  string
	}{
		{"classic", Presets{{Name: "classic"}}, ""},
		{"none", nil, ""},
		{"unknown", Presets{{Name: "unknown"}}, `presets[0]/name: preset "unknown" cannot be resolved`},
		{"empty name", Presets{{Name: " "}}, "presets[0]/name is required"},
		{"duplicate", Presets{{Name: "classic"}, {Name: ClassicModule}}, "presets[1]/name: module @docusaurus/preset-classic already used by presets[0]"},
		{
			"relative editUrl",
			Presets{{Name: "classic", Options: map[string]any{"docs": map[string]any{"editUrl": "/edit"}}}},
			"presets[0]/options/docs/editUrl: must be an absolute url",
		},
		{
			"bad options",
			Presets{{Name: "classic", Options: map[string]any{"docs": "yes"}}},
			"presets[0]/options: classic options",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, tc.presets.TransformBeforeValidation(r, dir))

			var v validate.ValidationErrors
			tc.presets.Validate(&v, "presets", r, dir)

			if tc.errMsg == "" {
				assert.False(t, v.HasErrors(), v.Error())
				return
			}
			require.True(t, v.HasErrors())
			assert.Contains(t, v.Error(), tc.errMsg)
		})
	}
}

func TestValidateLogsNameAndModule(t *testing.T) {
	var buf bytes.Buffer
	saved := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = saved })

	ps := Presets{{Name: "classic"}}
	require.NoError(t, ps.TransformBeforeValidation(Installed, t.TempDir()))
	var v validate.ValidationErrors
	ps.Validate(&v, "presets", Installed, t.TempDir())
	require.False(t, v.HasErrors(), v.Error())

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, `"config":"presets[0]/name"`))
	assert.Contains(t, out, `"config":"presets[0]/module","value":"@docusaurus/preset-classic"`)
}

func TestFind(t *testing.T) {
	ps := Presets{{Name: "classic"}}
	require.NoError(t, ps.TransformBeforeValidation(Installed, t.TempDir()))

	p, ok := ps.Find(ClassicModule)
	require.True(t, ok)
	assert.Equal(t, "classic", p.Name)

	_, ok = ps.Find("docusaurus-preset-other")
	assert.False(t, ok)
}
