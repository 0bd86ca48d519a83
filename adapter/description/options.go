package description

// WithValueRenderer sets the function used to convert values into text when
// they are appended with AppendValue or AppendValueList. A nil renderer is
// ignored.
func WithValueRenderer(r func(any) string) Option {
	return func(d *StringDescription) {
		if r != nil {
			d.renderer = r
		}
	}
}

// Option configures a [StringDescription] through the functional options
// pattern.
type Option func(*StringDescription)
