// Package route computes least-cost journeys between two stations of a metro
// network with Dijkstra's algorithm.
//
// Link lengths must be non-negative. This is not checked: with negative
// lengths the returned journey is not guaranteed to be optimal.
package route

import (
	"errors"
	"fmt"
	"math"

	"github.com/rhartert/metro/metro"
	"github.com/rhartert/metro/metro/paths"
	"github.com/rhartert/sparsesets"
	"github.com/rhartert/yagh"
)

// Unreachable is the cost of a Result when no path connects the source to
// the destination.
const Unreachable = -1

// ErrUnknownStation is returned when the source or the destination of a query
// is not in the network.
var ErrUnknownStation = errors.New("unknown station")

// Result is the outcome of a query: the total cost of the journey and the
// stations it goes through. Path is empty and Cost is Unreachable if no path
// exists.
type Result struct {
	Cost int
	Path paths.Path
}

// Reachable returns true if the result holds a path.
func (r Result) Reachable() bool {
	return r.Cost != Unreachable
}

// ShortestPath returns a least-cost path from src to dst where the cost of
// each link is given by mode.
//
// If several paths have the same minimal cost, the one returned depends on
// the order in which links were added to the network: neighbors are relaxed
// in that order and a tentative cost is only replaced by a strictly smaller
// one.
//
// The network is only read. Concurrent queries on the same network are safe
// as long as the network is not modified.
func ShortestPath(g *metro.Network, src string, dst string, mode Mode) (Result, error) {
	if g == nil {
		return Result{}, fmt.Errorf("network is nil")
	}
	s, ok := g.ID(src)
	if !ok {
		return Result{}, fmt.Errorf("source %q: %w", src, ErrUnknownStation)
	}
	t, ok := g.ID(dst)
	if !ok {
		return Result{}, fmt.Errorf("destination %q: %w", dst, ErrUnknownStation)
	}

	if s == t {
		return Result{Cost: 0, Path: paths.Path{src}}, nil
	}

	costs, prevs := shortestTree(g, s, t, mode)
	if costs[t] == math.MaxInt {
		return Result{Cost: Unreachable}, nil
	}

	return Result{
		Cost: costs[t],
		Path: reconstruct(g, prevs, s, t),
	}, nil
}

// shortestTree runs Dijkstra's algorithm from station src and stops as soon
// as station dst is settled.
//
// It returns the tentative cost of each station (math.MaxInt if it was never
// reached) and the predecessor of each reached station on its best known
// path (-1 for the source and for stations not reached).
func shortestTree(g *metro.Network, src int, dst int, mode Mode) ([]int, []int) {
	nStations := g.NumStations()

	costs := make([]int, nStations)
	prevs := make([]int, nStations)
	for i := range costs {
		costs[i] = math.MaxInt
		prevs[i] = -1
	}

	visited := sparsesets.New(nStations)
	h := yagh.New[int](nStations)
	h.Put(src, 0)
	costs[src] = 0

	for h.Size() > 0 {
		entry := h.Pop()
		u, c := entry.Elem, entry.Cost
		visited.Insert(u)

		// The cost of a station is final once it leaves the queue.
		if u == dst {
			break
		}

		for _, arc := range g.Nexts(u) {
			v := arc.To
			if visited.Contains(v) {
				continue
			}

			// Path src -> u -> v is not better than the best known path.
			newCost := c + mode.EdgeCost(arc.Km)
			if costs[v] <= newCost {
				continue
			}

			costs[v] = newCost
			prevs[v] = u
			h.Put(v, newCost)
		}
	}

	return costs, prevs
}

// reconstruct walks the predecessors back from dst to src and returns the
// path in the src to dst order.
func reconstruct(g *metro.Network, prevs []int, src int, dst int) paths.Path {
	path := paths.Path{}
	for v := dst; v != -1; v = prevs[v] {
		path = append(path, g.Label(v))
		if v == src {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
