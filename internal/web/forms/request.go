package forms

import (
	"net/url"
	"strings"
)

// Hidden inputs used to carry interaction state between requests.
const (
	TouchedKey = "_touched"
	DirtyKey   = "_dirty"
	EventKey   = "_event"
)

// Interaction events a browser can report for a single field.
const (
	EventInput = "input"
	EventBlur  = "blur"
)

// Restore replays posted values onto a freshly constructed form. Each posted
// value counts as a value-changed event against the empty initial value, and
// flags echoed back through the hidden inputs are re-applied.
func (f *Form) Restore(values url.Values) {
	if values == nil {
		return
	}
	for _, field := range f.fields {
		if posted, ok := values[field.Name]; ok && len(posted) > 0 {
			f.SetValue(field.Name, posted[0])
		}
	}
	for _, name := range values[TouchedKey] {
		f.Blur(strings.TrimSpace(name))
	}
	for _, name := range values[DirtyKey] {
		if field := f.index[strings.TrimSpace(name)]; field != nil {
			field.Dirty = true
		}
	}
}

// Apply records a single interaction event reported for the named field. Input
// events are already reflected by Restore; blur marks the field touched.
func (f *Form) Apply(event, name string) bool {
	switch strings.ToLower(strings.TrimSpace(event)) {
	case EventBlur:
		return f.Blur(name)
	case EventInput:
		return f.index[name] != nil
	default:
		return false
	}
}

// TouchedNames lists touched fields in declaration order.
func (f *Form) TouchedNames() []string {
	var out []string
	for _, field := range f.fields {
		if field.Touched {
			out = append(out, field.Name)
		}
	}
	return out
}

// DirtyNames lists dirty fields in declaration order.
func (f *Form) DirtyNames() []string {
	var out []string
	for _, field := range f.fields {
		if field.Dirty {
			out = append(out, field.Name)
		}
	}
	return out
}
