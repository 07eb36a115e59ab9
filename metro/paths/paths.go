// Package paths provides the representation of a journey through a metro
// network as an ordered sequence of stations.
package paths

import "strings"

// Path is an ordered sequence of station labels from a source to a
// destination, both included. An empty path means that no path exists.
//
// A non-empty Path respects the following invariants:
//
//   - Source station: First element in the slice
//   - Destination station: Last element in the slice
//   - Consecutive stations are linked in the network
type Path []string

// Len returns the length of the path in terms of stations.
func (p Path) Len() int {
	return len(p)
}

// Hops returns the number of links traversed by the path.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Source returns the first station of the path or "" if the path is empty.
func (p Path) Source() string {
	if len(p) == 0 {
		return ""
	}
	return p[0]
}

// Destination returns the last station of the path or "" if the path is
// empty.
func (p Path) Destination() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// String returns a string representation of the path as a sequence of
// stations separated by " -> ". For example: "A -> B -> C".
func (p Path) String() string {
	return strings.Join(p, " -> ")
}
