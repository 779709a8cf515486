package themeswitch

import (
	"strings"
	"sync"

	"github.com/fundraise-pro/themegen/internal/domain/theme"
)

// Resolver answers "what is --name right now" for a generated stylesheet,
// following the active mode of a Switch.
type Resolver struct {
	sw     *Switch
	mu     sync.RWMutex
	scopes map[theme.Mode]map[string]string
}

// NewResolver binds sw to the custom properties of a stylesheet. root and
// dark are the declarations of the two mode scopes, keyed without "--".
func NewResolver(sw *Switch, root, dark map[string]string) *Resolver {
	r := &Resolver{sw: sw}
	r.Reload(root, dark)
	return r
}

// Reload swaps in a regenerated stylesheet's declarations.
func (r *Resolver) Reload(root, dark map[string]string) {
	scopes := map[theme.Mode]map[string]string{
		theme.ModeLight: copyScope(root),
		theme.ModeDark:  copyScope(dark),
	}
	r.mu.Lock()
	r.scopes = scopes
	r.mu.Unlock()
}

// Var returns the value of the custom property name ("--" optional) in the
// active scope. Dark mode falls back to the root scope for variables it does
// not override. Unknown names resolve to "".
func (r *Resolver) Var(name string) string {
	value, _ := r.Lookup(name)
	return value
}

// Lookup is Var with an explicit found flag.
func (r *Resolver) Lookup(name string) (string, bool) {
	name = strings.TrimPrefix(strings.TrimSpace(name), "--")

	r.mu.RLock()
	defer r.mu.RUnlock()

	mode := r.sw.Current()
	if value, ok := r.scopes[mode][name]; ok {
		return value, true
	}
	if mode != theme.ModeLight {
		if value, ok := r.scopes[theme.ModeLight][name]; ok {
			return value, true
		}
	}
	return "", false
}

// Mode returns the active mode of the underlying switch.
func (r *Resolver) Mode() theme.Mode {
	return r.sw.Current()
}

func copyScope(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[strings.TrimPrefix(k, "--")] = v
	}
	return dst
}
