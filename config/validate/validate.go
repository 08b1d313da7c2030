package validate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// Standardized error message helpers

func ErrRequired(field string) error {
	return fmt.Errorf("%s is required", field)
}

func ErrOneOf(field string, allowed any, value any) error {
	return fmt.Errorf("%s must be one of %v (got %v)", field, allowed, value)
}

func ErrDuplicate(field string, value any) error {
	return fmt.Errorf("%s: duplicate value %v", field, value)
}

func ErrInvalid(field string, err error) error {
	return fmt.Errorf("%s: %w", field, err)
}

func RequireString(v *ValidationErrors, path string, value string) bool {
	if strings.TrimSpace(value) == "" {
		err := ErrRequired(path)
		LogConfigError(path, value, err)
		v.Add(err)
		return false
	}
	LogConfigOK(path, value)
	return true
}

func RequireOneOf[T comparable](v *ValidationErrors, path string, value T, allowed []T) bool {
	for _, a := range allowed {
		if value == a {
			LogConfigOK(path, value)
			return true
		}
	}
	err := ErrOneOf(path, allowed, value)
	LogConfigError(path, value, err)
	v.Add(err)
	return false
}

func RequireNonEmpty[T any](v *ValidationErrors, path string, list []T) bool {
	if len(list) == 0 {
		err := ErrRequired(path)
		LogConfigError(path, list, err)
		v.Add(err)
		return false
	}
	return true
}

// RequireUnique reports every repeated entry once, keyed by its index.
func RequireUnique[T comparable](v *ValidationErrors, path string, list []T) bool {
	seen := make(map[T]struct{}, len(list))
	ok := true
	for i, item := range list {
		if _, dup := seen[item]; dup {
			itemPath := fmt.Sprintf("%s[%d]", path, i)
			err := ErrDuplicate(itemPath, item)
			LogConfigError(itemPath, item, err)
			v.Add(err)
			ok = false
			continue
		}
		seen[item] = struct{}{}
	}
	return ok
}

// Fail records err under path. err is wrapped with the path prefix.
func Fail(v *ValidationErrors, path string, value any, err error) {
	LogConfigError(path, value, err)
	v.Add(ErrInvalid(path, err))
}

type ValidationErrors struct {
	errors []error
}

func (v *ValidationErrors) Add(err error) {
	if err != nil {
		v.errors = append(v.errors, err)
	}
}

func (v *ValidationErrors) HasErrors() bool {
	return len(v.errors) > 0
}

func (v *ValidationErrors) Errors() []error {
	return v.errors
}

func (v *ValidationErrors) Unwrap() []error {
	return v.errors
}

func (v *ValidationErrors) Error() string {
	var sb strings.Builder
	sb.WriteString("configuration validation failed:\n")
	for _, err := range v.errors {
		sb.WriteString(" - ")
		sb.WriteString(err.Error())
		sb.WriteRune('\n')
	}
	return sb.String()
}

func LogConfigOK(path string, value any) {
	log.Logger.Info().
		Str("config", path).
		Interface("value", value).
		Msg("config set")
}

func LogConfigError(path string, value any, err error) {
	log.Logger.Error().
		Str("config", path).
		Interface("value", value).
		Err(err).
		Msg("invalid config value")
}

// Assets describes where static files referenced by the configuration live.
// Strict turns a missing file or directory into an error instead of a warning.
type Assets struct {
	Root   string
	Dirs   []string
	Strict bool
}

// CheckDir verifies that dir exists and is a directory. When required is
// false a problem is only logged.
func CheckDir(v *ValidationErrors, pathKey string, dir string, required bool) bool {
	var err error
	info, statErr := os.Stat(dir)
	switch {
	case statErr != nil:
		err = statErr
	case !info.IsDir():
		err = errors.New("not a directory")
	}

	if err == nil {
		LogConfigOK(pathKey, dir)
		return true
	}
	if required {
		Fail(v, pathKey, dir, err)
		return false
	}
	log.Warn().
		Str("config", pathKey).
		Str("value", dir).
		Err(err).
		Msg("directory not usable")
	return true
}

// CheckAsset verifies that rel stays inside the static roots and, if it does,
// that one of them actually holds the file.
func CheckAsset(v *ValidationErrors, pathKey string, rel string, assets Assets) {
	if rel == "" {
		return
	}
	if !IsLocalAsset(rel) {
		Fail(v, pathKey, rel, errors.New("must be a relative path inside the static directories"))
		return
	}
	if len(assets.Dirs) == 0 {
		Fail(v, pathKey, rel, errors.New("no static directories configured"))
		return
	}

	for _, dir := range assets.Dirs {
		full := filepath.Join(assets.Root, dir, filepath.FromSlash(rel))
		if info, err := os.Stat(full); err == nil && !info.IsDir() {
			LogConfigOK(pathKey, rel)
			return
		}
	}

	err := fmt.Errorf("not found in static directories %v", assets.Dirs)
	if assets.Strict {
		Fail(v, pathKey, rel, err)
		return
	}
	log.Warn().
		Str("config", pathKey).
		Str("value", rel).
		Err(err).
		Msg("static asset missing")
}

// IsLocalAsset reports whether rel is a relative slash path that does not
// climb out of its root.
func IsLocalAsset(rel string) bool {
	rel = strings.TrimPrefix(rel, "/")
	if rel == "" || strings.Contains(rel, "://") {
		return false
	}
	return filepath.IsLocal(filepath.FromSlash(rel))
}

// Join builds a slash separated config path; an empty base yields key alone.
func Join(base string, key string) string {
	if base == "" {
		return key
	}
	return base + "/" + key
}
