package validate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorsCollectsEverything(t *testing.T) {
	assert := assert.New(t)

	var v ValidationErrors
	RequireString(&v, "title", "  ")
	RequireOneOf(&v, "footer/style", "blue", []string{"dark", "light"})
	RequireString(&v, "tagline", "ok")

	assert.True(v.HasErrors())
	assert.Len(v.Errors(), 2)
	assert.Equal("configuration validation failed:\n"+
		" - title is required\n"+
		" - footer/style must be one of [dark light] (got blue)\n", v.Error())
}

func TestRequireUniqueReportsRepeats(t *testing.T) {
	var v ValidationErrors

	ok := RequireUnique(&v, "i18n/locales", []string{"en", "ja", "en", "en"})

	assert.False(t, ok)
	require.Len(t, v.Errors(), 2)
	assert.EqualError(t, v.Errors()[0], "i18n/locales[2]: duplicate value en")
	assert.EqualError(t, v.Errors()[1], "i18n/locales[3]: duplicate value en")
}

func TestRequireNonEmpty(t *testing.T) {
	var v ValidationErrors

	assert.False(t, RequireNonEmpty(&v, "locales", []string{}))
	assert.True(t, RequireNonEmpty(&v, "locales", []string{"en"}))
	assert.Len(t, v.Errors(), 1)
}

func TestIsLocalAsset(t *testing.T) {
	cases := map[string]bool{
		"img/favicon.ico":           true,
		"/img/favicon.ico":          true,
		"favicon.ico":               true,
		"../secret.txt":             false,
		"img/../../secret.txt":      false,
		"https://example.com/a.png": false,
		"":                          false,
	}
	for in, want := range cases {
		assert.Equal(t, want, IsLocalAsset(in), in)
	}
}

func TestCheckAsset(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "static", "img"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "static", "img", "favicon.ico"), []byte("ico"), 0o644))

	strict := Assets{Root: root, Dirs: []string{"static"}, Strict: true}
	lenient := Assets{Root: root, Dirs: []string{"static"}}

	t.Run("present", func(t *testing.T) {
		var v ValidationErrors
		CheckAsset(&v, "favicon", "img/favicon.ico", strict)
		assert.False(t, v.HasErrors())
	})
	t.Run("missing strict", func(t *testing.T) {
		var v ValidationErrors
		CheckAsset(&v, "favicon", "img/missing.ico", strict)
		require.True(t, v.HasErrors())
		assert.Contains(t, v.Error(), "favicon: not found in static directories")
	})
	t.Run("missing lenient", func(t *testing.T) {
		var v ValidationErrors
		CheckAsset(&v, "favicon", "img/missing.ico", lenient)
		assert.False(t, v.HasErrors())
	})
	t.Run("escapes root", func(t *testing.T) {
		var v ValidationErrors
		CheckAsset(&v, "favicon", "../favicon.ico", lenient)
		assert.True(t, v.HasErrors())
	})
	t.Run("unset", func(t *testing.T) {
		var v ValidationErrors
		CheckAsset(&v, "favicon", "", strict)
		assert.False(t, v.HasErrors())
	})
}

func TestCheckDir(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "favicon.ico")
	require.NoError(t, os.WriteFile(file, []byte("ico"), 0o644))

	cases := []struct {
		name     string
		dir      string
		required bool
		ok       bool
		errMsg   string
	}{
		{"existing", root, true, true, ""},
		{"missing required", filepath.Join(root, "static"), true, false, "staticDirectories[0]: "},
		{"missing optional", filepath.Join(root, "static"), false, true, ""},
		{"file required", file, true, false, "staticDirectories[0]: not a directory"},
		{"file optional", file, false, true, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var v ValidationErrors
			ok := CheckDir(&v, "staticDirectories[0]", tc.dir, tc.required)

			assert.Equal(t, tc.ok, ok)
			if tc.errMsg == "" {
				assert.False(t, v.HasErrors(), v.Error())
				return
			}
			require.True(t, v.HasErrors())
			assert.Contains(t, v.Error(), tc.errMsg)
		})
	}
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "title", Join("", "title"))
	assert.Equal(t, "themeConfig/navbar", Join("themeConfig", "navbar"))
}
