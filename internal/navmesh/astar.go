package navmesh

import "math"

// astarNode tracks one area's best-known cost during a search. Mirrors
// detour/node.go's DtNode split between Cost (edge cost from the previous
// node) and Total (g + h, used to order the open heap).
type astarNode struct {
	id        uint32
	parent    uint32
	hasParent bool
	g         float64 // cost from start
	total     float64 // g + heuristic
	closed    bool
}

// openHeap is a binary min-heap ordered by Total, mirroring
// detour/nodequeue.go's bubbleUp/trickleDown shape (there: a fixed-size
// array of *DtNode; here: a slice of area ids indexing into the node
// table, since our graphs are small enough not to need a pool allocator).
type openHeap struct {
	ids   []uint32
	nodes map[uint32]*astarNode
}

func newOpenHeap(nodes map[uint32]*astarNode) *openHeap {
	return &openHeap{nodes: nodes}
}

func (h *openHeap) len() int { return len(h.ids) }

func (h *openHeap) less(i, j int) bool {
	return h.nodes[h.ids[i]].total < h.nodes[h.ids[j]].total
}

func (h *openHeap) push(id uint32) {
	h.ids = append(h.ids, id)
	h.bubbleUp(len(h.ids) - 1)
}

func (h *openHeap) bubbleUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			break
		}
		h.ids[i], h.ids[parent] = h.ids[parent], h.ids[i]
		i = parent
	}
}

func (h *openHeap) pop() uint32 {
	top := h.ids[0]
	last := len(h.ids) - 1
	h.ids[0] = h.ids[last]
	h.ids = h.ids[:last]
	h.trickleDown(0)
	return top
}

func (h *openHeap) trickleDown(i int) {
	n := len(h.ids)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h.less(left, smallest) {
			smallest = left
		}
		if right < n && h.less(right, smallest) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.ids[i], h.ids[smallest] = h.ids[smallest], h.ids[i]
		i = smallest
	}
}

// aStar finds the least-cost path from start to end in g, using heuristic
// as the admissible A* heuristic. It returns the ordered path of area ids
// (inclusive of both endpoints) and its total edge-weighted cost, or
// ok=false if no path exists.
func aStar(g *graph, start, end uint32, heuristic func(uint32) float64) (path []uint32, cost float64, ok bool) {
	if start == end {
		return []uint32{start}, 0, true
	}

	nodes := make(map[uint32]*astarNode)
	get := func(id uint32) *astarNode {
		n, exists := nodes[id]
		if !exists {
			n = &astarNode{id: id, g: math.Inf(1), total: math.Inf(1)}
			nodes[id] = n
		}
		return n
	}

	startNode := get(start)
	startNode.g = 0
	startNode.total = heuristic(start)

	open := newOpenHeap(nodes)
	open.push(start)

	for open.len() > 0 {
		cur := open.pop()
		curNode := nodes[cur]
		if curNode.closed {
			continue
		}
		curNode.closed = true

		if cur == end {
			return reconstructPath(nodes, end), curNode.g, true
		}

		for _, e := range g.neighbors(cur) {
			neighbor := get(e.to)
			if neighbor.closed {
				continue
			}
			tentativeG := curNode.g + e.weight
			if tentativeG < neighbor.g {
				neighbor.g = tentativeG
				neighbor.total = tentativeG + heuristic(e.to)
				neighbor.parent = cur
				neighbor.hasParent = true
				open.push(e.to)
			}
		}
	}

	return nil, math.Inf(1), false
}

func reconstructPath(nodes map[uint32]*astarNode, end uint32) []uint32 {
	var rev []uint32
	cur := end
	for {
		rev = append(rev, cur)
		n := nodes[cur]
		if !n.hasParent {
			break
		}
		cur = n.parent
	}
	path := make([]uint32, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}
	return path
}
