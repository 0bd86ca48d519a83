package decoder

// WithWeaklyTypedInput makes the decoder convert between basic types, such as
// strings holding numbers into numeric fields.
func WithWeaklyTypedInput() Option {
	return func(d *Decoder) {
		d.weak = true
	}
}

// WithErrorUnused makes decoding fail when the source has keys that do not
// map to any field of the target.
func WithErrorUnused() Option {
	return func(d *Decoder) {
		d.strict = true
	}
}

// Option configures a [Decoder].
type Option func(*Decoder)
