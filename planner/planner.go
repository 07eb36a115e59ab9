// Package planner answers journey queries over a metro network and renders
// the network and the journeys as text.
package planner

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/rhartert/metro/metro"
	"github.com/rhartert/metro/route"
)

type Config struct {
	// Mode is the weight mode used by Plan when the query does not specify
	// one. Distance returns the shortest journey in kilometers while Time
	// returns the fastest journey, where every link costs a fixed dwell time
	// plus a running time proportional to its length.
	Mode route.Mode
}

// Journey is the answer to a query.
type Journey struct {
	route.Result
	From string
	To   string
	Mode route.Mode
}

// Display returns the journey's cost in its display unit: kilometers in
// Distance mode and minutes, rounded up, in Time mode.
func (j Journey) Display() string {
	if j.Mode == route.Time {
		return fmt.Sprintf("%d min", route.Minutes(j.Cost))
	}
	return fmt.Sprintf("%d km", j.Cost)
}

// Summary returns a human readable description of the journey.
func (j Journey) Summary() string {
	if !j.Reachable() {
		return fmt.Sprintf("No path found between %s and %s.", j.From, j.To)
	}
	label := "Shortest Distance"
	if j.Mode == route.Time {
		label = "Shortest Time"
	}
	return fmt.Sprintf("%s from %s -> %s = %s\nPath: %s", label, j.From, j.To, j.Display(), j.Path)
}

type Planner struct {
	Network *metro.Network
	Cfg     Config

	logger *slog.Logger
}

// New returns a planner over the given network. Queries are logged at debug
// level on logger; a nil logger discards them.
func New(network *metro.Network, cfg Config, logger *slog.Logger) *Planner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Planner{
		Network: network,
		Cfg:     cfg,
		logger:  logger,
	}
}

// Plan returns the best journey from src to dst in the configured mode.
func (p *Planner) Plan(src string, dst string) (Journey, error) {
	return p.PlanMode(src, dst, p.Cfg.Mode)
}

// PlanMode returns the best journey from src to dst in the given mode. The
// returned error wraps route.ErrUnknownStation if either station is not in
// the network.
func (p *Planner) PlanMode(src string, dst string, mode route.Mode) (Journey, error) {
	res, err := route.ShortestPath(p.Network, src, dst, mode)
	if err != nil {
		p.logger.Warn("invalid query", "from", src, "to", dst, "mode", mode.String(), "error", err)
		return Journey{}, err
	}

	p.logger.Debug("journey planned",
		"from", src,
		"to", dst,
		"mode", mode.String(),
		"cost", res.Cost,
		"hops", res.Path.Hops(),
	)
	return Journey{Result: res, From: src, To: dst, Mode: mode}, nil
}

// Stations returns the network's station labels in alphabetical order.
func (p *Planner) Stations() []string {
	stations := p.Network.Stations()
	sort.Strings(stations)
	return stations
}

// MapLines returns one line per station, in alphabetical order, listing its
// neighbors and the length of the link to each of them. For example:
// "RedFort -> [ChandniChowk, 1km] [CivilLines, 3km]".
func (p *Planner) MapLines() []string {
	lines := make([]string, 0, p.Network.NumStations())
	for _, s := range p.Stations() {
		nbrs := p.Network.Neighbors(s)
		names := make([]string, 0, len(nbrs))
		for n := range nbrs {
			names = append(names, n)
		}
		sort.Strings(names)

		sb := strings.Builder{}
		sb.WriteString(s)
		sb.WriteString(" ->")
		for _, n := range names {
			sb.WriteString(fmt.Sprintf(" [%s, %dkm]", n, nbrs[n]))
		}
		lines = append(lines, sb.String())
	}
	return lines
}
