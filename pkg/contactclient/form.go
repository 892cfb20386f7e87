package contactclient

// Field is one named form control.
type Field struct {
	Name     string
	Value    string
	Disabled bool
}

// Form is an ordered set of controls. Controls without a name or that are
// disabled are neither validated nor submitted.
type Form struct {
	fields []Field
}

func NewForm(fields ...Field) *Form {
	return &Form{fields: append([]Field(nil), fields...)}
}

// Set updates the value of a named control, adding it when missing.
func (f *Form) Set(name, value string) {
	for i := range f.fields {
		if f.fields[i].Name == name {
			f.fields[i].Value = value
			return
		}
	}
	f.fields = append(f.fields, Field{Name: name, Value: value})
}

// Value returns the value of a control and whether the form has it.
func (f *Form) Value(name string) (string, bool) {
	for _, field := range f.fields {
		if field.Name == name {
			return field.Value, true
		}
	}
	return "", false
}

// Has reports whether the form has a control with that name.
func (f *Form) Has(name string) bool {
	_, ok := f.Value(name)
	return ok
}

// Active returns the named, enabled controls in order.
func (f *Form) Active() []Field {
	out := make([]Field, 0, len(f.fields))
	for _, field := range f.fields {
		if field.Name != "" && !field.Disabled {
			out = append(out, field)
		}
	}
	return out
}

// Values flattens the active controls into the request payload.
func (f *Form) Values() map[string]string {
	values := make(map[string]string, len(f.fields))
	for _, field := range f.Active() {
		values[field.Name] = field.Value
	}
	return values
}

// Reset clears every value.
func (f *Form) Reset() {
	for i := range f.fields {
		f.fields[i].Value = ""
	}
}
