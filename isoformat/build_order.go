package isoformat

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var errLayoutCycle = errors.New("layouts depend on each other")

const (
	unvisited = iota
	visiting
	visited
)

// buildOrder returns entries so that every layout comes after the layouts it
// depends on. Entries and their deps are walked in declaration order, so the
// result is the same on every call.
func buildOrder(entries []catalogEntry) ([]catalogEntry, error) {
	byName := make(map[Name]catalogEntry, len(entries))

	for _, e := range entries {
		if _, dup := byName[e.name]; dup {
			return nil, fmt.Errorf("duplicate layout %q", e.name)
		}

		byName[e.name] = e
	}

	state := make(map[Name]int, len(entries))
	order := make([]catalogEntry, 0, len(entries))

	// path holds the layouts currently being visited, outermost first.
	var path []Name

	var visit func(e catalogEntry) error

	visit = func(e catalogEntry) error {
		switch state[e.name] {
		case visited:
			return nil
		case visiting:
			cycle := append(slices.Clone(path[slices.Index(path, e.name):]), e.name)
			return fmt.Errorf("%w: %s", errLayoutCycle, joinNames(cycle, " -> "))
		}

		state[e.name] = visiting
		path = append(path, e.name)

		for _, d := range e.deps {
			dep, ok := byName[d]
			if !ok {
				return fmt.Errorf("layout %q depends on unknown layout %q", e.name, d)
			}

			if err := visit(dep); err != nil {
				return err
			}
		}

		path = path[:len(path)-1]
		state[e.name] = visited
		order = append(order, e)

		return nil
	}

	for _, e := range entries {
		if err := visit(e); err != nil {
			return nil, err
		}
	}

	return order, nil
}

func joinNames(names []Name, sep string) string {
	var sb strings.Builder

	for i, n := range names {
		if i > 0 {
			sb.WriteString(sep)
		}

		sb.WriteString(string(n))
	}

	return sb.String()
}
