package filter

// ValueBag collects raw user input for one open filter builder. It replaces
// the widget-bound live variables of a UI layer with an explicit snapshot:
// the UI calls Set/SelectField on edit events and the core only ever reads.
// One bag belongs to exactly one builder session at a time.
type ValueBag struct {
	values map[string]string
	fields []string // MultiSelect selection, in the order the user chose
}

// NewValueBag creates an empty value bag.
func NewValueBag() *ValueBag {
	return &ValueBag{values: make(map[string]string)}
}

// Set records a raw scalar value for a placeholder name.
func (b *ValueBag) Set(name, value string) *ValueBag {
	b.values[name] = value
	return b
}

// Get returns the raw value for a placeholder name.
func (b *ValueBag) Get(name string) (string, bool) {
	v, ok := b.values[name]
	return v, ok
}

// SelectField appends a MultiSelect field choice, keeping insertion order.
// Selecting a field twice is a no-op.
func (b *ValueBag) SelectField(name string) *ValueBag {
	for _, f := range b.fields {
		if f == name {
			return b
		}
	}
	b.fields = append(b.fields, name)
	return b
}

// DeselectField removes a MultiSelect field choice.
func (b *ValueBag) DeselectField(name string) *ValueBag {
	for i, f := range b.fields {
		if f == name {
			b.fields = append(b.fields[:i], b.fields[i+1:]...)
			return b
		}
	}
	return b
}

// Fields returns the MultiSelect selection in insertion order.
func (b *ValueBag) Fields() []string {
	out := make([]string, len(b.fields))
	copy(out, b.fields)
	return out
}

// Values is the validated, render-ready form of a ValueBag. Produced by
// Validate, consumed by Render; immutable from the caller's perspective.
type Values struct {
	bindings map[string]string
	fields   []string
	warnings []string
}

func newValues() *Values {
	return &Values{bindings: make(map[string]string)}
}

func (v *Values) bind(name, value string) {
	v.bindings[name] = value
}

// Binding returns the validated value for a placeholder name.
func (v *Values) Binding(name string) (string, bool) {
	s, ok := v.bindings[name]
	return s, ok
}

// Fields returns the validated MultiSelect selection in insertion order.
func (v *Values) Fields() []string {
	out := make([]string, len(v.fields))
	copy(out, v.fields)
	return out
}

// Warnings returns soft validation findings (e.g. a suspicious email shape)
// that should be surfaced inline but never block submission.
func (v *Values) Warnings() []string {
	out := make([]string, len(v.warnings))
	copy(out, v.warnings)
	return out
}

func (v *Values) warn(message string) {
	v.warnings = append(v.warnings, message)
}
