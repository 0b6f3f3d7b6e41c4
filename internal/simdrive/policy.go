package simdrive

// planDirectives derives one directive per agent from the latest state:
// agents whose motivation has dipped get support, everyone else trains
// their weakest competency.
func planDirectives(agents []agent) []directive {
	directives := make([]directive, 0, len(agents))
	for _, a := range agents {
		if a.Motivation < supportMotivationBelow {
			directives = append(directives, directive{
				AgentID: a.ID,
				Action:  "support",
			})
			continue
		}
		focus := weakestSkill(a.Skills)
		if focus == "" {
			continue
		}
		directives = append(directives, directive{
			AgentID: a.ID,
			Action:  "train",
			Focus:   focus,
		})
	}
	return directives
}

// weakestSkill returns the competency with the lowest score. Ties break on
// name so the plan is stable across runs.
func weakestSkill(skills map[string]int) string {
	best := ""
	bestScore := 0
	for name, score := range skills {
		if best == "" || score < bestScore || (score == bestScore && name < best) {
			best = name
			bestScore = score
		}
	}
	return best
}

// pickCandidate selects the candidate to hire: highest motivation wins.
// Returns -1 when the pool is empty.
func pickCandidate(pool []candidate) int {
	best := -1
	for i, c := range pool {
		if best == -1 || c.Motivation > pool[best].Motivation {
			best = i
		}
	}
	return best
}
