package merger

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Resolver picks one value from the non-missing candidates of a column within an identifier group.
// Candidates are in group order and never empty.
type Resolver func(candidates []string) string

// Resolver names
const (
	ResolverMax        = "max"
	ResolverMin        = "min"
	ResolverFirst      = "first"
	ResolverLast       = "last"
	ResolverNumericMax = "numeric-max"
)

var resolvers = map[string]Resolver{
	ResolverMax:        Max,
	ResolverMin:        Min,
	ResolverFirst:      First,
	ResolverLast:       Last,
	ResolverNumericMax: NumericMax,
}

// LookupResolver returns a built-in resolver by name
func LookupResolver(name string) (Resolver, error) {
	if resolver, ok := resolvers[name]; ok {
		return resolver, nil
	}
	return nil, fmt.Errorf("unknown resolver %q, supported: %s", name, strings.Join(ResolverNames(), ", "))
}

// ResolverNames returns sorted built-in resolver names
func ResolverNames() []string {
	var names []string
	for name := range resolvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Max returns the lexicographically greatest candidate, "9" wins over "10"
func Max(candidates []string) string {
	ret := candidates[0]
	for _, candidate := range candidates[1:] {
		if candidate > ret {
			ret = candidate
		}
	}
	return ret
}

// Min returns the lexicographically smallest candidate
func Min(candidates []string) string {
	ret := candidates[0]
	for _, candidate := range candidates[1:] {
		if candidate < ret {
			ret = candidate
		}
	}
	return ret
}

// First returns the first candidate
func First(candidates []string) string {
	return candidates[0]
}

// Last returns the last candidate
func Last(candidates []string) string {
	return candidates[len(candidates)-1]
}

// NumericMax returns the candidate with the greatest numeric value,
// it falls back to Max unless every candidate parses as a number
func NumericMax(candidates []string) string {
	ret := candidates[0]
	best, err := strconv.ParseFloat(strings.TrimSpace(ret), 64)
	if err != nil {
		return Max(candidates)
	}
	for _, candidate := range candidates[1:] {
		value, err := strconv.ParseFloat(strings.TrimSpace(candidate), 64)
		if err != nil {
			return Max(candidates)
		}
		if value > best {
			best, ret = value, candidate
		}
	}
	return ret
}
