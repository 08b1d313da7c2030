package preset

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

const (
	ClassicModule = "@docusaurus/preset-classic"

	hostScope  = "@docusaurus"
	typePrefix = "docusaurus-preset"
)

// Registry is the set of preset modules the host has installed.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]struct{}
}

// Installed holds the presets shipped with the host.
var Installed = NewRegistry(ClassicModule)

func NewRegistry(modules ...string) *Registry {
	r := &Registry{modules: map[string]struct{}{}}
	for _, m := range modules {
		r.Register(m)
	}
	return r
}

func (r *Registry) Register(module string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modules[module] = struct{}{}
}

func (r *Registry) Has(module string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.modules[module]
	return ok
}

func (r *Registry) Modules() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.modules))
	for m := range r.modules {
		out = append(out, m)
	}
	slices.Sort(out)
	return out
}

func IsLocalPath(name string) bool {
	return strings.HasPrefix(name, "./") ||
		strings.HasPrefix(name, "../") ||
		filepath.IsAbs(name)
}

// Candidates lists the module names a preset shorthand may refer to, in the
// order the host tries them.
func Candidates(name string) []string {
	if strings.HasPrefix(name, "@") {
		scope, rest, scoped := strings.Cut(name, "/")
		if !scoped {
			return []string{scope + "/" + typePrefix}
		}
		if strings.HasPrefix(rest, typePrefix) || (scope == hostScope && strings.HasPrefix(rest, "preset-")) {
			return []string{name}
		}
		return []string{scope + "/" + typePrefix + "-" + rest, name}
	}
	if strings.HasPrefix(name, typePrefix) {
		return []string{name}
	}
	return []string{
		hostScope + "/preset-" + name,
		typePrefix + "-" + name,
		name,
	}
}

// Resolve maps name to an installed module, or to an absolute file for
// local presets, which are looked up relative to dir.
func (r *Registry) Resolve(name string, dir string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("preset name is empty")
	}
	if IsLocalPath(name) {
		p := name
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("local preset %q: %w", name, err)
		}
		return p, nil
	}
	candidates := Candidates(name)
	for _, c := range candidates {
		if r.Has(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("preset %q cannot be resolved (tried %s)", name, strings.Join(candidates, ", "))
}
