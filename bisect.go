package gpart

import "math/rand"

// bisectionLNDItersMax is the number of independent BFS attempts bisectLND
// makes before keeping the lowest-cut result.
const bisectionLNDItersMax = 4

// bisectLND computes an initial bisection of g by Levelized Nested
// Dissection: grow side 0 by breadth-first search from a random start
// vertex until its weight reaches partsizes[0], restarting the search from
// a random unvisited vertex whenever the frontier empties before that
// target is met. Each of bisectionLNDItersMax independent attempts is
// refined by FM — against the weights the BFS actually realized, not
// partsizes itself, since BFS growth can over- or undershoot the target
// by more than one vertex's weight — and the attempt with the lowest
// edge-cut is returned.
func bisectLND(g *Graph, partsizes [2]int, rng *rand.Rand) []int {
	n := g.NumVertices()
	queue := make([]int, n)
	visited := make([]bool, n)
	bisection := make([]int, n)
	bisectionBest := make([]int, n)
	edgecutMin := -1

	for iter := 0; iter < bisectionLNDItersMax; iter++ {
		pw := [2]int{0, partsizes[0] + partsizes[1]}
		small := false

		for i := range bisection {
			bisection[i] = 1
			visited[i] = false
		}

		start := rng.Intn(n)
		visited[start] = true
		queue[0] = start
		nleft := n - 1
		qtop, qtail := 0, 1

		for {
			if qtop == qtail {
				if nleft == 0 || small {
					break
				}

				// Frontier emptied without reaching the target weight
				// (graph is disconnected, or the connected component ran
				// dry): restart from a random unvisited vertex.
				k := rng.Intn(nleft)
				i := 0
				for ; i < n; i++ {
					if !visited[i] {
						if k == 0 {
							break
						}
						k--
					}
				}
				queue[0] = i
				visited[i] = true
				qtop, qtail = 0, 1
				nleft--
			}

			i := queue[qtop]
			qtop++
			if pw[0] > 0 && pw[1]-g.VertexWeight(i) < partsizes[1] {
				small = true
				continue
			}

			bisection[i] = 0
			pw[0] += g.VertexWeight(i)
			pw[1] -= g.VertexWeight(i)

			if pw[1] <= partsizes[1] {
				break
			}

			small = false
			for j := g.AdjIndexes[i]; j < g.AdjIndexes[i+1]; j++ {
				k := g.AdjV[j]
				if !visited[k] {
					queue[qtail] = k
					qtail++
					visited[k] = true
					nleft--
				}
			}
		}

		edgecut := refineBisectionFM(g, bisection, pw, rng)
		if edgecutMin == -1 || int(edgecut) < edgecutMin {
			edgecutMin = int(edgecut)
			copy(bisectionBest, bisection)
		}
	}

	return bisectionBest
}
