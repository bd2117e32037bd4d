// Package forms models the login and registration forms: field values, the
// validation rules declared per field, and the touched/dirty interaction flags
// the pages use to decide when an invalid field is surfaced.
package forms

// Field holds a single input value plus its interaction state.
type Field struct {
	Name  string
	Label string
	Type  string
	Value string

	// Touched is set once the field has lost focus.
	Touched bool
	// Dirty is set once the value has changed from its initial value.
	Dirty bool

	rules string
}

// Invalid reports whether the value fails any declared rule.
func (f *Field) Invalid() bool {
	return Check(f.Value, f.rules) != ""
}

// ShowInvalid reports whether the field should be rendered as invalid: it must
// fail validation and the user must have interacted with it.
func (f *Field) ShowInvalid() bool {
	return (f.Touched || f.Dirty) && f.Invalid()
}

// Message returns a human-readable message for the first failing rule.
func (f *Field) Message() string {
	return messageFor(f.Label, Check(f.Value, f.rules), f.rules)
}

// Rules returns the validator tag string declared for the field.
func (f *Field) Rules() string {
	return f.rules
}

type fieldSpec struct {
	name  string
	label string
	typ   string
	rules string
}

// Form is an ordered set of fields with aggregate validity.
type Form struct {
	name   string
	fields []*Field
	index  map[string]*Field
}

func newForm(name string, specs ...fieldSpec) *Form {
	form := &Form{
		name:   name,
		fields: make([]*Field, 0, len(specs)),
		index:  make(map[string]*Field, len(specs)),
	}
	for _, spec := range specs {
		field := &Field{Name: spec.name, Label: spec.label, Type: spec.typ, rules: spec.rules}
		form.fields = append(form.fields, field)
		form.index[spec.name] = field
	}
	return form
}

// Name identifies the form ("login", "register").
func (f *Form) Name() string {
	return f.name
}

// Fields returns the fields in declaration order.
func (f *Form) Fields() []*Field {
	out := make([]*Field, len(f.fields))
	copy(out, f.fields)
	return out
}

// Field returns the named field or nil.
func (f *Form) Field(name string) *Field {
	return f.index[name]
}

// Value returns the current value of the named field.
func (f *Form) Value(name string) string {
	if field := f.index[name]; field != nil {
		return field.Value
	}
	return ""
}

// Values returns a copy of all field values keyed by name.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.fields))
	for _, field := range f.fields {
		out[field.Name] = field.Value
	}
	return out
}

// SetValue records a value-changed event. The field becomes dirty when the new
// value differs from the current one. Unknown names are ignored.
func (f *Form) SetValue(name, value string) bool {
	field := f.index[name]
	if field == nil {
		return false
	}
	if field.Value != value {
		field.Dirty = true
	}
	field.Value = value
	return true
}

// Blur records a focus-lost event on the named field.
func (f *Form) Blur(name string) bool {
	field := f.index[name]
	if field == nil {
		return false
	}
	field.Touched = true
	return true
}

// MarkAllTouched flags every field as touched, as happens on submission.
func (f *Form) MarkAllTouched() {
	for _, field := range f.fields {
		field.Touched = true
	}
}

// Valid reports whether every field passes all of its rules.
func (f *Form) Valid() bool {
	for _, field := range f.fields {
		if field.Invalid() {
			return false
		}
	}
	return true
}

// Invalid is the negation of Valid.
func (f *Form) Invalid() bool {
	return !f.Valid()
}

// FieldInvalid reports raw validity of the named field, ignoring interaction flags.
func (f *Form) FieldInvalid(name string) bool {
	field := f.index[name]
	return field != nil && field.Invalid()
}

// ShowInvalid reports whether the named field should be displayed as invalid.
func (f *Form) ShowInvalid(name string) bool {
	field := f.index[name]
	return field != nil && field.ShowInvalid()
}

// Errors returns messages for every invalid field keyed by name.
func (f *Form) Errors() map[string]string {
	out := make(map[string]string)
	for _, field := range f.fields {
		if msg := field.Message(); msg != "" {
			out[field.Name] = msg
		}
	}
	return out
}

// InvalidFlags returns the raw invalid flag of every field keyed by name.
func (f *Form) InvalidFlags() map[string]bool {
	out := make(map[string]bool, len(f.fields))
	for _, field := range f.fields {
		out[field.Name] = field.Invalid()
	}
	return out
}
