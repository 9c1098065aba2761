package gpart

import "math/rand"

const (
	// coarseGraphSizeMax stops coarsening once a level shrinks to this many
	// vertices or fewer; small enough that exact or near-exact bisection of
	// the coarsest level is cheap.
	coarseGraphSizeMax = 21

	// coarseningRatio bounds how much a single HEM pass must shrink a level
	// by; coarsening stops early if a pass fails to make adequate progress.
	coarseningRatio = 0.91

	// coarseningHEMVDegreeLimit caps the degree value fed into the traversal
	// sort, so a handful of very high degree vertices can't dominate it.
	coarseningHEMVDegreeLimit = 1.0
)

// coarsenGraph builds the multilevel coarse-graph stack for g by repeated
// Heavy Edge Matching. stack[0] is g itself, given vertex weight 1 when it
// carries none yet; stack[len(stack)-1] is the coarsest level. regular skips
// the random permutation and degree-bounded traversal order used for general
// graphs, visiting vertices in id order instead — appropriate for the
// regular communication graphs produced by GenerateBruck and
// GenerateRecDoubling, which have no benefit from randomized traversal and a
// narrow, uniform degree distribution. When vweightMax == 1 no multivertex
// can ever form, so the stack holds only g.
func coarsenGraph(g *Graph, vweightMax int, regular bool, rng *rand.Rand) []*Graph {
	if g.VWeights == nil {
		vw := make([]int, g.NumVertices())
		for i := range vw {
			vw[i] = 1
		}
		g.VWeights = vw
	}

	stack := []*Graph{g}
	if vweightMax == 1 {
		return stack
	}

	cur := g
	for {
		next := coarsenHEM(cur, vweightMax, regular, rng)
		stack = append(stack, next)

		progressed := next.NumVertices() > coarseGraphSizeMax &&
			next.NumVertices()/2 < next.NumEdges() &&
			float64(next.NumVertices()) < coarseningRatio*float64(cur.NumVertices())
		if !progressed {
			break
		}
		cur = next
	}

	return stack
}

// coarsenHEM coarsens g by one level of Heavy Edge Matching: every vertex is
// paired with at most one neighbor (preferring the heaviest connecting edge
// among candidates that keep the merged weight within vweightMax). Before
// that, each isolated vertex is paired with an unmatched non-isolated vertex
// taken from the tail of the traversal order, or left on its own when none
// remains. It records the matching as g.VMap, mapping each of g's
// vertices to its vertex id in the returned coarser graph.
func coarsenHEM(g *Graph, vweightMax int, regular bool, rng *rand.Rand) *Graph {
	n := g.NumVertices()
	g.VMap = make([]int, n)

	match := make([]int, n)
	for i := range match {
		match[i] = -1
	}

	var traverse []int
	if regular {
		traverse = make([]int, n)
		for i := range traverse {
			traverse[i] = i
		}
	} else {
		perm := make([]int, n)
		for i := range perm {
			perm[i] = i
		}
		for i := 0; i < n; i++ {
			j := rng.Intn(n)
			perm[i], perm[j] = perm[j], perm[i]
		}

		vdegavg := int(coarseningHEMVDegreeLimit * float64(g.NumEdges()) / float64(n))
		vdeg := make([]int, n)
		for i := 0; i < n; i++ {
			vdeg[i] = g.Degree(i)
			if vdeg[i] > vdegavg {
				vdeg[i] = vdegavg
			}
		}
		traverse = countingSortByValue(perm, vdeg, vdegavg)
	}

	coarseNVertices := 0

	// Isolated vertices have no edge to match on; pair each with some other
	// unmatched vertex before heavy-edge matching starts, working from the
	// tail of the traversal so as not to steal a candidate the forward pass
	// would still visit.
	for i := 0; i < n; i++ {
		v := traverse[i]
		if match[v] != -1 {
			continue
		}
		if g.Degree(v) > 0 {
			break
		}

		vmax := v
		for j := n - 1; j > i; j-- {
			k := traverse[j]
			if match[k] == -1 && g.Degree(k) > 0 {
				vmax = k
				break
			}
		}

		g.VMap[v] = coarseNVertices
		g.VMap[vmax] = coarseNVertices
		match[v] = vmax
		match[vmax] = v
		coarseNVertices++
	}

	for i := 0; i < n; i++ {
		v := traverse[i]
		if match[v] != -1 {
			continue
		}

		wmax := 0
		vmax := v
		for j := g.AdjIndexes[v]; j < g.AdjIndexes[v+1]; j++ {
			k := g.AdjV[j]
			if match[k] == -1 && wmax < g.Edges[j] &&
				g.VertexWeight(v)+g.VertexWeight(k) <= vweightMax {
				vmax = k
				wmax = g.Edges[j]
			}
		}

		g.VMap[v] = coarseNVertices
		g.VMap[vmax] = coarseNVertices
		coarseNVertices++
		match[v] = vmax
		match[vmax] = v
	}

	return createCoarseGraph(g, coarseNVertices, traverse, match)
}

// createCoarseGraph builds the graph induced by g.VMap: coarseNVertices
// multivertices, each the union of a matched pair (or a single unmatched
// vertex when match[v] == v). Parallel edges created by the merge are summed
// into one; an edge whose endpoints land in the same multivertex is dropped.
func createCoarseGraph(g *Graph, coarseNVertices int, traverse, match []int) *Graph {
	n := g.NumVertices()
	cg := &Graph{
		AdjIndexes: make([]int, coarseNVertices+1),
		AdjV:       make([]int, 0, len(g.AdjV)),
		Edges:      make([]int, 0, len(g.Edges)),
		VWeights:   make([]int, coarseNVertices),
	}

	visited := make([]int, coarseNVertices)
	for i := range visited {
		visited[i] = -1
	}

	coarseNedges := 0
	coarseV := 0
	for i := 0; i < n; i++ {
		v := traverse[i]
		if g.VMap[v] != coarseV {
			continue
		}

		cg.VWeights[coarseV] = g.VertexWeight(v)
		nedges := 0

		for j := g.AdjIndexes[v]; j < g.AdjIndexes[v+1]; j++ {
			z := g.VMap[g.AdjV[j]]
			if k := visited[z]; k == -1 {
				cg.AdjV = append(cg.AdjV, z)
				cg.Edges = append(cg.Edges, g.Edges[j])
				visited[z] = nedges
				nedges++
			} else {
				cg.Edges[coarseNedges+k] += g.Edges[j]
			}
		}

		if u := match[v]; u != v {
			cg.VWeights[coarseV] += g.VertexWeight(u)
			for j := g.AdjIndexes[u]; j < g.AdjIndexes[u+1]; j++ {
				z := g.VMap[g.AdjV[j]]
				if k := visited[z]; k == -1 {
					cg.AdjV = append(cg.AdjV, z)
					cg.Edges = append(cg.Edges, g.Edges[j])
					visited[z] = nedges
					nedges++
				} else {
					cg.Edges[coarseNedges+k] += g.Edges[j]
				}
			}
		}

		if j := visited[coarseV]; j != -1 {
			// v and its partner were themselves adjacent: drop the edge
			// that merging turned internal.
			nedges--
			cg.AdjV[coarseNedges+j] = cg.AdjV[coarseNedges+nedges]
			cg.Edges[coarseNedges+j] = cg.Edges[coarseNedges+nedges]
			cg.AdjV = cg.AdjV[:coarseNedges+nedges]
			cg.Edges = cg.Edges[:coarseNedges+nedges]
			visited[coarseV] = -1
		}

		for j := 0; j < nedges; j++ {
			visited[cg.AdjV[coarseNedges+j]] = -1
		}

		coarseNedges += nedges
		coarseV++
		cg.AdjIndexes[coarseV] = coarseNedges
	}

	return cg
}

// projectBisection projects a bisection from the coarsest graph in stack
// down to stack[0], re-running FM refinement at every level on the way.
// bisection must already hold a valid assignment for stack[len(stack)-1];
// on return it holds the corresponding assignment for stack[0].
func projectBisection(stack []*Graph, bisection []int, partsizes [2]int, rng *rand.Rand) {
	if len(stack) < 2 {
		return
	}

	n0 := stack[0].NumVertices()
	coarse := make([]int, n0)
	coarseNVertices := stack[len(stack)-1].NumVertices()
	copy(coarse[:coarseNVertices], bisection[:coarseNVertices])

	for level := len(stack) - 2; level >= 0; level-- {
		g := stack[level]

		for i := 0; i < g.NumVertices(); i++ {
			bisection[i] = coarse[g.VMap[i]]
		}

		refineBisectionFM(g, bisection, partsizes, rng)

		coarseNVertices = g.NumVertices()
		copy(coarse[:coarseNVertices], bisection[:coarseNVertices])
	}
}

// countingSortByValue returns src reordered so that values[src[i]] is
// non-decreasing, preserving relative order among equal values (stable).
// valmax is the largest entry values can take.
func countingSortByValue(src, values []int, valmax int) []int {
	n := len(src)
	count := make([]int, valmax+2)
	for _, v := range values {
		count[v]++
	}
	for i := 1; i <= valmax; i++ {
		count[i] += count[i-1]
	}
	for i := valmax + 1; i > 0; i-- {
		count[i] = count[i-1]
	}
	count[0] = 0

	dst := make([]int, n)
	for i := 0; i < n; i++ {
		j := src[i]
		dst[count[values[j]]] = j
		count[values[j]]++
	}
	return dst
}
