// Package route contains pure route-ordering heuristics.
// Functions here operate on coordinate slices and return visiting orders as
// index permutations; callers own loading items and persisting the result.
package route

// Node holds the minimal per-item info the heuristics need.
type Node struct {
	Lat float64
	Lon float64
}

// Method selects the reordering heuristic.
type Method string

const (
	// MethodNearest is the greedy nearest-neighbor heuristic.
	MethodNearest Method = "nearest"
	// MethodTwoOpt is reserved for a 2-opt improvement pass.
	// It is accepted but not yet implemented and falls back to nearest.
	MethodTwoOpt Method = "two_opt"
)

// ParseMethod maps a caller-supplied method name to a Method.
// An empty string defaults to nearest; unknown names are rejected.
func ParseMethod(s string) (Method, bool) {
	switch s {
	case "", string(MethodNearest):
		return MethodNearest, true
	case string(MethodTwoOpt):
		return MethodTwoOpt, true
	default:
		return "", false
	}
}

// Optimize returns the visiting order for nodes under the given method.
// All methods currently route to NearestNeighborOrder (two_opt is reserved).
func Optimize(_ Method, nodes []Node) []int {
	return NearestNeighborOrder(nodes)
}

// NearestNeighborOrder builds a visiting order with the greedy
// nearest-neighbor heuristic. The first node is a fixed anchor; each step
// visits the closest unvisited node, measured by squared planar Euclidean
// distance on raw lat/lon degrees (an approximation, not great-circle
// distance). Exact ties go to the lowest index, so the result is
// deterministic. Fewer than 2 nodes is a no-op.
//
// O(n²) — fine for itineraries of tens of items, wrong tool for anything big.
func NearestNeighborOrder(nodes []Node) []int {
	order := make([]int, len(nodes))
	for i := range order {
		order[i] = i
	}
	if len(nodes) < 2 {
		return order
	}

	visited := make([]bool, len(nodes))
	visited[0] = true
	cur := nodes[0]

	for pos := 1; pos < len(nodes); pos++ {
		next := -1
		best := 0.0
		for i, n := range nodes {
			if visited[i] {
				continue
			}
			d := sqDist(cur, n)
			if next == -1 || d < best {
				next = i
				best = d
			}
		}
		order[pos] = next
		visited[next] = true
		cur = nodes[next]
	}

	return order
}

// sqDist is the squared planar distance between two nodes. The square root
// is skipped — it does not change which node is nearest.
func sqDist(a, b Node) float64 {
	dLat := b.Lat - a.Lat
	dLon := b.Lon - a.Lon
	return dLat*dLat + dLon*dLon
}
