package ucs

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wayfarer/core"
)

// MultiGoal visits every vertex in goals starting from start, always moving
// to the cheapest remaining goal next.
//
// Each round runs Search from the current position to every remaining goal.
// The cheapest goal wins; among equal costs the goal listed first wins. Its
// leg is appended to the tour without repeating the junction vertex.
//
// Duplicate goals are collapsed. An empty goal list yields the tour [start]
// at cost 0. If some goal cannot be reached the tour Path is nil and Cost is
// +Inf; Legs still holds the steps completed before the dead end.
func MultiGoal(g core.Reader, start string, goals []string, opts ...Option) (*MultiResult, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if err = requireVertex(g, "start", start); err != nil {
		return nil, err
	}

	remaining := make([]string, 0, len(goals))
	seen := make(map[string]bool, len(goals))
	for _, goal := range goals {
		if err = requireVertex(g, "goal", goal); err != nil {
			return nil, err
		}
		if !seen[goal] {
			seen[goal] = true
			remaining = append(remaining, goal)
		}
	}

	out := &MultiResult{Path: core.Path{start}}
	current := start
	for len(remaining) > 0 {
		bestIdx := -1
		var best *Result
		for i, goal := range remaining {
			res, serr := search(g, cfg, current, goal)
			if serr != nil {
				return nil, fmt.Errorf("ucs: leg %s→%s: %w", current, goal, serr)
			}
			if res.Found() && (best == nil || res.Cost < best.Cost) {
				bestIdx, best = i, res
			}
		}
		if best == nil {
			return &MultiResult{Cost: math.Inf(1), Legs: out.Legs}, nil
		}

		goal := remaining[bestIdx]
		out.Legs = append(out.Legs, Leg{Goal: goal, Path: best.Path, Cost: best.Cost})
		out.Path = append(out.Path, best.Path[1:]...)
		out.Cost += best.Cost
		current = goal
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return out, nil
}
