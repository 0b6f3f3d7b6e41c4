// Package genesis produces constrained-random agents: bounded skill
// vectors, derived productivity, trait and role assignment.
package genesis

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/corposim/internal/domain/model"
	"github.com/okian/corposim/internal/domain/types"
)

// Default generation constants. Runtime values come from the config
// surface; these are the fallbacks when no option overrides them.
const (
	defaultSkillBudget   = 20
	defaultSkillMin      = 1
	defaultSkillMax      = 10
	defaultBaseline      = 50.0
	defaultJitter        = 8.0
	defaultSalaryMin     = 55_000
	defaultSalaryMax     = 110_000
	maxSampleRetries     = 16
	strengthCount        = 2
	weaknessCount        = 1
	traitCount           = 3
	statFloor, statCeil  = 0.0, 100.0
)

// Name and flavor pools.
var (
	firstNames = []string{"Nova", "Atlas", "Vega", "Orion", "Lumen", "Echo"}
	lastNames  = []string{"Core", "Pulse", "Stack", "Logic", "Prime", "Grid"}
	traitPool  = []string{"stable", "unpredictable", "logical", "collaborative", "innovative", "meticulous"}
	autonomies = []types.AutonomyTier{types.AutonomyLow, types.AutonomyMedium, types.AutonomyHigh}
)

// skillWeights make productivity a strictly monotonic weighted sum over the
// vector while letting different vectors with the same budget diverge.
var skillWeights = map[types.Competency]float64{
	types.CompetencyTechnical:     1.25,
	types.CompetencyCreativity:    1.00,
	types.CompetencyCommunication: 0.95,
	types.CompetencyOrganisation:  1.10,
	types.CompetencyAutonomy:      0.85,
}

// RoleSlot couples a role label with the sector it works in. A zero Sector
// leaves the agent unassigned (baseline business contribution).
type RoleSlot struct {
	Role   string
	Sector types.Sector
}

// DefaultRolePool returns the founding-roster role pool.
func DefaultRolePool() []RoleSlot {
	return []RoleSlot{
		{Role: "Ops", Sector: types.SectorOperations},
		{Role: "Marketing", Sector: types.SectorMarketing},
		{Role: "Finance", Sector: types.SectorFinance},
		{Role: "R&D", Sector: types.SectorResearch},
		{Role: "Support", Sector: types.SectorNone},
	}
}

// Generator builds agents. Safe for concurrent use; RNG access is
// serialized internally.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand

	skillBudget int
	skillMin    int
	skillMax    int

	motivationBaseline float64
	stabilityBaseline  float64
	jitter             float64

	salaryMin int
	salaryMax int

	rolePool []RoleSlot
	idSource func() string
}

// New creates a generator with default configuration options.
func New(opts ...Option) *Generator {
	g := &Generator{
		rng:                rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // simulation randomness, not crypto
		skillBudget:        defaultSkillBudget,
		skillMin:           defaultSkillMin,
		skillMax:           defaultSkillMax,
		motivationBaseline: defaultBaseline,
		stabilityBaseline:  defaultBaseline,
		jitter:             defaultJitter,
		salaryMin:          defaultSalaryMin,
		salaryMax:          defaultSalaryMax,
		rolePool:           DefaultRolePool(),
		idSource:           uuid.NewString,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// SkillBudget returns the exact sum every generated skill vector carries.
func (g *Generator) SkillBudget() int { return g.skillBudget }

// SkillBounds returns the inclusive per-competency range.
func (g *Generator) SkillBounds() (min, max int) { return g.skillMin, g.skillMax }

// Generate returns a fresh, unowned agent drawn from the configured role
// pool. The caller inserts it into a roster.
func (g *Generator) Generate() (*model.Agent, error) {
	return g.GenerateFrom(g.rolePool)
}

// GenerateFrom returns a fresh agent drawn from an explicit role pool,
// e.g. the recruitment-specific pool.
func (g *Generator) GenerateFrom(pool []RoleSlot) (*model.Agent, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: empty role pool", types.ErrInvalidInput)
	}

	skills, err := g.sampleSkills()
	if err != nil {
		return nil, err
	}

	slot := pool[g.rng.Intn(len(pool))]
	strengths, weaknesses := SkillExtremes(skills)

	a := &model.Agent{
		ID:           g.idSource(),
		Name:         firstNames[g.rng.Intn(len(firstNames))] + " " + lastNames[g.rng.Intn(len(lastNames))],
		Role:         slot.Role,
		Sector:       slot.Sector,
		Skills:       skills,
		Strengths:    strengths,
		Weaknesses:   weaknesses,
		Productivity: ProductivityOf(skills, g.skillBudget),
		Salary:       g.salaryMin + g.rng.Intn(g.salaryMax-g.salaryMin+1),
		Autonomy:     autonomies[g.rng.Intn(len(autonomies))],
		Traits:       g.sampleTraits(),
		Motivation:   clampStat(g.motivationBaseline + g.jitterDraw()),
		Stability:    clampStat(g.stabilityBaseline + g.jitterDraw()),
	}
	return a, nil
}

// sampleSkills draws a vector of five values in [skillMin, skillMax]
// summing exactly to skillBudget. Bounded rejection sampling over uniform
// compositions first, then deterministic single-point repair.
func (g *Generator) sampleSkills() (map[types.Competency]int, error) {
	comps := types.Competencies()

	for attempt := 0; attempt < maxSampleRetries; attempt++ {
		vec := g.composition(len(comps))
		if inBounds(vec, g.skillMin, g.skillMax) {
			return toSkillMap(comps, vec), nil
		}
	}

	// Repair path: clamp into range, then donate or remove single points
	// from random competencies until the budget holds again.
	vec := g.composition(len(comps))
	for i := range vec {
		if vec[i] < g.skillMin {
			vec[i] = g.skillMin
		}
		if vec[i] > g.skillMax {
			vec[i] = g.skillMax
		}
	}
	for guard := 0; sum(vec) != g.skillBudget; guard++ {
		if guard > g.skillBudget*len(vec)*2 {
			return nil, fmt.Errorf("%w: skill repair did not converge", types.ErrInternalInvariant)
		}
		i := g.rng.Intn(len(vec))
		switch {
		case sum(vec) < g.skillBudget && vec[i] < g.skillMax:
			vec[i]++
		case sum(vec) > g.skillBudget && vec[i] > g.skillMin:
			vec[i]--
		}
	}

	if s := sum(vec); s != g.skillBudget {
		return nil, fmt.Errorf("%w: skill vector sums to %d, want %d", types.ErrInternalInvariant, s, g.skillBudget)
	}
	return toSkillMap(comps, vec), nil
}

// composition draws a uniform stars-and-bars composition of the budget
// into n positive parts via sorted cut points.
func (g *Generator) composition(n int) []int {
	cuts := make([]int, 0, n-1)
	for len(cuts) < n-1 {
		c := 1 + g.rng.Intn(g.skillBudget-1)
		dup := false
		for _, existing := range cuts {
			if existing == c {
				dup = true
				break
			}
		}
		if !dup {
			cuts = append(cuts, c)
		}
	}
	sort.Ints(cuts)

	vec := make([]int, n)
	prev := 0
	for i, c := range cuts {
		vec[i] = c - prev
		prev = c
	}
	vec[n-1] = g.skillBudget - prev
	return vec
}

func (g *Generator) sampleTraits() []string {
	idx := g.rng.Perm(len(traitPool))[:traitCount]
	sort.Ints(idx)
	traits := make([]string, 0, traitCount)
	for _, i := range idx {
		traits = append(traits, traitPool[i])
	}
	return traits
}

func (g *Generator) jitterDraw() float64 {
	return (g.rng.Float64()*2 - 1) * g.jitter
}

// ProductivityOf derives the productivity scalar from a skill vector,
// normalized against the creation budget. Strictly monotonic: raising any
// competency raises the result.
func ProductivityOf(skills map[types.Competency]int, budget int) float64 {
	weighted := 0.0
	for c, v := range skills {
		weighted += skillWeights[c] * float64(v)
	}
	return math.Round(weighted/float64(budget)*100) / 100
}

// SkillExtremes ranks competencies by value and returns the top two as
// strengths and the bottom one as the weakness. Ties break by the fixed
// competency ordering.
func SkillExtremes(skills map[types.Competency]int) (strengths, weaknesses []types.Competency) {
	ordered := types.Competencies()
	ranked := append([]types.Competency(nil), ordered...)
	pos := make(map[types.Competency]int, len(ordered))
	for i, c := range ordered {
		pos[c] = i
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if skills[ranked[i]] != skills[ranked[j]] {
			return skills[ranked[i]] > skills[ranked[j]]
		}
		return pos[ranked[i]] < pos[ranked[j]]
	})

	strengths = append([]types.Competency(nil), ranked[:strengthCount]...)
	weaknesses = append([]types.Competency(nil), ranked[len(ranked)-weaknessCount:]...)
	return strengths, weaknesses
}

func toSkillMap(comps []types.Competency, vec []int) map[types.Competency]int {
	m := make(map[types.Competency]int, len(comps))
	for i, c := range comps {
		m[c] = vec[i]
	}
	return m
}

func inBounds(vec []int, min, max int) bool {
	for _, v := range vec {
		if v < min || v > max {
			return false
		}
	}
	return true
}

func sum(vec []int) int {
	s := 0
	for _, v := range vec {
		s += v
	}
	return s
}

func clampStat(v float64) float64 {
	return math.Max(statFloor, math.Min(v, statCeil))
}
