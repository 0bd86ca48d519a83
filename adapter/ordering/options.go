package ordering

import "github.com/vinicius-lino-figueiredo/gematcher/domain"

// WithComparer sets the comparer used to order values. A nil comparer is
// ignored.
func WithComparer(c domain.Comparer) Option {
	return func(co *Comparison) {
		if c != nil {
			co.comparer = c
		}
	}
}

// Option configures a [Comparison] through the functional options pattern.
type Option func(*Comparison)
