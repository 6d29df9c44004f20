package keymap

import "slices"

// Resolver maps key strings to actions within one context set.
type Resolver struct {
	bindings map[string]Action
	byAction map[Action][]string
}

// NewResolver creates a resolver from bindings. When two bindings share a
// key the later one wins, so callers pass only the contexts that are active.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.bindings[key] = b.Action
		}
		r.byAction[b.Action] = appendUnique(r.byAction[b.Action], b.Keys...)
	}
	return r
}

// ForContexts builds a resolver over the default bindings in contexts.
func ForContexts(contexts ...string) *Resolver {
	return NewResolver(ByContext(contexts...))
}

// Resolve returns the action for a key, or "" if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key]
}

// KeysFor returns the keys bound to an action.
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

// ByContext returns the default bindings in any of contexts, in order.
func ByContext(contexts ...string) []Binding {
	var out []Binding
	for _, b := range Bindings {
		if slices.Contains(contexts, b.Context) {
			out = append(out, b)
		}
	}
	return out
}

func appendUnique(dst []string, keys ...string) []string {
	for _, k := range keys {
		if !slices.Contains(dst, k) {
			dst = append(dst, k)
		}
	}
	return dst
}
