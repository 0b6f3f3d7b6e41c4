// Package energy tracks the capped resource pool consumed by hiring.
package energy

// Option applies a configuration option to the Ledger.
type Option func(*Ledger)

// WithCap sets the fixed maximum of the energy pool.
func WithCap(cap int) Option {
	return func(l *Ledger) {
		if cap > 0 {
			l.cap = cap
		}
	}
}

// WithPerHire sets the fixed energy cost of one hire.
func WithPerHire(cost int) Option {
	return func(l *Ledger) {
		if cost > 0 {
			l.perHire = cost
		}
	}
}

// WithUnitPrice sets the cash price of one energy unit.
func WithUnitPrice(price float64) Option {
	return func(l *Ledger) {
		if price > 0 {
			l.unitPrice = price
		}
	}
}

// WithBundle sets the default purchase size in units.
func WithBundle(units int) Option {
	return func(l *Ledger) {
		if units > 0 {
			l.bundle = units
		}
	}
}
