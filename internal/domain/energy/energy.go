// Package energy tracks the capped resource pool consumed by hiring and
// replenished by purchase.
package energy

import (
	"fmt"
	"math"

	"github.com/okian/corposim/internal/domain/model"
	"github.com/okian/corposim/internal/domain/types"
)

// Default ledger tuning. Runtime values come from the config surface.
const (
	defaultCap       = 5000
	defaultPerHire   = 40
	defaultUnitPrice = 2.5
	defaultBundle    = 100
)

// Ledger holds the energy economy rules. The pool itself lives on the
// GameState; the ledger owns the policy around it.
type Ledger struct {
	cap       int
	perHire   int
	unitPrice float64
	bundle    int
}

// New creates a ledger with default tuning.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		cap:       defaultCap,
		perHire:   defaultPerHire,
		unitPrice: defaultUnitPrice,
		bundle:    defaultBundle,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Cap returns the fixed maximum of the energy pool.
func (l *Ledger) Cap() int { return l.cap }

// PerHire returns the fixed energy cost of one hire.
func (l *Ledger) PerHire() int { return l.perHire }

// Bundle returns the default purchase size in units.
func (l *Ledger) Bundle() int { return l.bundle }

// Used derives consumed energy from roster size. Never directly settable.
func (l *Ledger) Used(rosterSize int) int {
	return rosterSize * l.perHire
}

// CanHire reports whether one more hire fits the pool.
func (l *Ledger) CanHire(state *model.GameState) error {
	used := l.Used(len(state.Agents))
	if used+l.perHire > state.EnergyTotal {
		return fmt.Errorf("%w: insufficient energy (%d used of %d, hire costs %d)",
			types.ErrResourceExhausted, used, state.EnergyTotal, l.perHire)
	}
	return nil
}

// Buy purchases units of energy: debits company cash, credits the pool.
// A purchase that would exceed the cap fails whole with a cap-reached
// condition rather than truncating, so callers can distinguish "bought
// less" from "bought nothing". Insufficient cash fails without mutation.
func (l *Ledger) Buy(state *model.GameState, units int) error {
	if units <= 0 {
		return fmt.Errorf("%w: energy units must be positive", types.ErrInvalidInput)
	}
	if state.EnergyTotal+units > l.cap {
		return fmt.Errorf("%w: energy cap reached (%d of %d, requested %d)",
			types.ErrResourceExhausted, state.EnergyTotal, l.cap, units)
	}

	price := math.Round(float64(units)*l.unitPrice*100) / 100
	if state.Company.Cash < price {
		return fmt.Errorf("%w: insufficient cash (%.2f available, %.2f needed)",
			types.ErrResourceExhausted, state.Company.Cash, price)
	}

	state.Company.Cash = math.Round((state.Company.Cash-price)*100) / 100
	state.EnergyTotal += units
	return nil
}
