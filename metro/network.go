// Package metro provides the station graph of a metro network: stations
// identified by their label and undirected links weighted in kilometers.
package metro

// Link represents an undirected link between two stations. Km is assumed to
// be non-negative; it is not validated.
type Link struct {
	From string
	To   string
	Km   int
}

// Arc is one direction of a link as seen from the station it leaves.
type Arc struct {
	To int
	Km int
}

// Network represents a metro network as an undirected weighted graph.
//
// Stations are interned to dense IDs in [0, NumStations()) in the order in
// which they are registered. Neighbors of a station are kept in the order in
// which their link was first added.
//
// A Network is safe for concurrent reads. Concurrent calls to AddStation or
// AddLink must be synchronized by the caller.
type Network struct {
	ids    map[string]int
	labels []string
	nexts  [][]Arc
}

// NewNetwork returns an empty network.
func NewNetwork() *Network {
	return &Network{ids: map[string]int{}}
}

// NewNetworkFromLinks creates a new network and adds the given links in
// order.
func NewNetworkFromLinks(links []Link) *Network {
	n := NewNetwork()
	for _, l := range links {
		n.AddLink(l.From, l.To, l.Km)
	}
	return n
}

// AddStation registers a station and returns its ID. Registering an existing
// station has no effect.
func (n *Network) AddStation(label string) int {
	if id, ok := n.ids[label]; ok {
		return id
	}
	id := len(n.labels)
	n.ids[label] = id
	n.labels = append(n.labels, label)
	n.nexts = append(n.nexts, nil)
	return id
}

// AddLink registers both stations if needed and sets the link's length in
// both directions. Adding a link that already exists overwrites its length.
func (n *Network) AddLink(u string, v string, km int) {
	a := n.AddStation(u)
	b := n.AddStation(v)
	n.setArc(a, b, km)
	n.setArc(b, a, km)
}

func (n *Network) setArc(from int, to int, km int) {
	for i, arc := range n.nexts[from] {
		if arc.To == to {
			n.nexts[from][i].Km = km
			return
		}
	}
	n.nexts[from] = append(n.nexts[from], Arc{To: to, Km: km})
}

// HasStation returns true if the station is in the network.
func (n *Network) HasStation(label string) bool {
	_, ok := n.ids[label]
	return ok
}

// Neighbors returns the stations adjacent to u mapped to the length of their
// link. The map is empty if u is not in the network.
func (n *Network) Neighbors(u string) map[string]int {
	id, ok := n.ids[u]
	if !ok {
		return map[string]int{}
	}
	nbrs := make(map[string]int, len(n.nexts[id]))
	for _, arc := range n.nexts[id] {
		nbrs[n.labels[arc.To]] = arc.Km
	}
	return nbrs
}

// Stations returns the labels of all the stations in registration order.
func (n *Network) Stations() []string {
	out := make([]string, len(n.labels))
	copy(out, n.labels)
	return out
}

// NumStations returns the number of stations in the network.
func (n *Network) NumStations() int {
	return len(n.labels)
}

// ID returns the ID of the station and whether it exists.
func (n *Network) ID(label string) (int, bool) {
	id, ok := n.ids[label]
	return id, ok
}

// Label returns the label of the station with the given ID. It panics if id
// is not in [0, NumStations()).
func (n *Network) Label(id int) string {
	return n.labels[id]
}

// Nexts returns the arcs leaving the station with the given ID.
//
// Important: the slice is a view on the network's internal structure and
// should only be used in read-only operations.
func (n *Network) Nexts(id int) []Arc {
	return n.nexts[id]
}

// Links returns every link of the network once, oriented from the station
// registered first. Links are ordered by their first station and then by
// insertion order.
func (n *Network) Links() []Link {
	links := []Link{}
	for u, arcs := range n.nexts {
		for _, arc := range arcs {
			if arc.To < u {
				continue
			}
			links = append(links, Link{
				From: n.labels[u],
				To:   n.labels[arc.To],
				Km:   arc.Km,
			})
		}
	}
	return links
}
