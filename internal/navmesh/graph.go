package navmesh

// graphEdge is one outgoing edge of the time-weighted area graph.
type graphEdge struct {
	to     uint32
	weight float64
}

// graph is a directed, time-weighted adjacency-list graph over area ids.
// Cycles are expected and fully supported; nothing here assumes acyclicity.
//
// The pack's one graph library, katalvlaran/lvlath, models weighted graphs
// over generic vertex types, but its A* and Dijkstra implementations
// operate on its own internal edge-cost abstraction and would need the
// same amount of adapter code as a plain map-based adjacency list while
// adding an external dependency whose graph never needs lvlath's broader
// feature set (multigraphs, matrix views, algebraic connectivity). A
// ~40-line adjacency list plus ~40-line binary heap, grounded on
// detour/nodequeue.go's heap shape, stays closer to the teacher's idiom.
type graph struct {
	adj map[uint32][]graphEdge
}

func newGraph() *graph {
	return &graph{adj: make(map[uint32][]graphEdge)}
}

func (g *graph) addNode(id uint32) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = nil
	}
}

func (g *graph) addEdge(u, v uint32, weight float64) {
	g.adj[u] = append(g.adj[u], graphEdge{to: v, weight: weight})
}

func (g *graph) edgeWeight(u, v uint32) (float64, bool) {
	for _, e := range g.adj[u] {
		if e.to == v {
			return e.weight, true
		}
	}
	return 0, false
}

func (g *graph) neighbors(u uint32) []graphEdge {
	return g.adj[u]
}
