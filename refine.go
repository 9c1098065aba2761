package gpart

import "math/rand"

const (
	fmMovesLimitRatio = 0.15
	fmMovesLimitMin   = 20
	fmMovesLimitMax   = 100
	fmVwavgScale      = 0.05
	fmItersMax        = 4
)

// refineBisectionFM improves bisection in place using the Fiduccia-Mattheyses
// heuristic and returns the resulting edge-cut. partsizes holds the target
// vweight sum for each side. rng drives the per-iteration vertex permutation;
// callers share one rng across a whole partitioning run for determinism.
func refineBisectionFM(g *Graph, bisection []int, partsizes [2]int, rng *rand.Rand) uint64 {
	n := g.NumVertices()
	extcosts := make([]int, n)
	intcosts := make([]int, n)

	var edgecut int
	gainMax := 0
	for i := 0; i < n; i++ {
		gain := 0
		for j := g.AdjIndexes[i]; j < g.AdjIndexes[i+1]; j++ {
			if bisection[g.AdjV[j]] != bisection[i] {
				extcosts[i] += g.Edges[j]
			} else {
				intcosts[i] += g.Edges[j]
			}
			gain += g.Edges[j]
		}
		edgecut += extcosts[i]
		if gain > gainMax {
			gainMax = gain
		}
	}
	edgecut /= 2

	queues := [2]fmQueue{newFMQueue(n, gainMax), newFMQueue(n, gainMax)}
	moves := make([]int, n)
	verticesMoves := make([]int, n)
	for i := range verticesMoves {
		verticesMoves[i] = -1
	}
	perm := make([]int, n)

	moveLimit := int(float64(n) * fmMovesLimitRatio)
	if moveLimit < fmMovesLimitMin {
		moveLimit = fmMovesLimitMin
	}
	if moveLimit > fmMovesLimitMax {
		moveLimit = fmMovesLimitMax
	}

	var pw [2]int
	sum := 0
	for i := 0; i < n; i++ {
		w := g.VertexWeight(i)
		sum += w
		if bisection[i] == 0 {
			pw[0] += w
		}
	}
	pw[1] = sum - pw[0]
	pwdiff := abs(partsizes[0] - pw[0])

	vwavg := 2 * sum / n
	if scaled := int(float64(sum) * fmVwavgScale); vwavg > scaled {
		vwavg = scaled
	}

	edgecutBest := edgecut

	for iter := 0; iter < fmItersMax; iter++ {
		edgecutBestMoveNo := -1
		edgecutCur := edgecutBest
		pwdiffMin := abs(partsizes[0] - pw[0])

		queues[0].clear()
		queues[1].clear()

		for i := 0; i < n; i++ {
			perm[i] = i
		}
		for i := 0; i < n; i++ {
			j := rng.Intn(n)
			perm[i], perm[j] = perm[j], perm[i]
		}

		for i := 0; i < n; i++ {
			j := perm[i]
			if extcosts[j] > 0 || g.AdjIndexes[j] == g.AdjIndexes[j+1] {
				queues[bisection[j]].insert(j, extcosts[j]-intcosts[j])
			}
		}

		moveno := 0
		for ; moveno < n; moveno++ {
			srcpart := 0
			if partsizes[0]-pw[0] >= partsizes[1]-pw[1] {
				srcpart = 1
			}
			dstpart := (srcpart + 1) % 2

			v := queues[srcpart].extractMax()
			if v == -1 {
				break
			}

			edgecutCur -= extcosts[v] - intcosts[v]
			pw[dstpart] += g.VertexWeight(v)
			pw[srcpart] -= g.VertexWeight(v)

			if (edgecutCur < edgecutBest && abs(partsizes[0]-pw[0]) <= pwdiff+vwavg) ||
				(edgecutCur == edgecutBest && abs(partsizes[0]-pw[0]) < pwdiffMin) {
				edgecutBest = edgecutCur
				edgecutBestMoveNo = moveno
				pwdiffMin = abs(partsizes[0] - pw[0])
			} else if moveno-edgecutBestMoveNo > moveLimit {
				edgecutCur += extcosts[v] - intcosts[v]
				pw[srcpart] += g.VertexWeight(v)
				pw[dstpart] -= g.VertexWeight(v)
				break
			}

			bisection[v] = dstpart
			moves[moveno] = v
			verticesMoves[v] = moveno

			extcosts[v], intcosts[v] = intcosts[v], extcosts[v]

			for i := g.AdjIndexes[v]; i < g.AdjIndexes[v+1]; i++ {
				j := g.AdjV[i]
				gainOld := extcosts[j] - intcosts[j]
				extcostOld := extcosts[j]

				var delta int
				if dstpart == bisection[j] {
					delta = g.Edges[i]
				} else {
					delta = -g.Edges[i]
				}
				intcosts[j] += delta
				extcosts[j] -= delta

				if extcostOld > 0 {
					if extcosts[j] == 0 {
						if verticesMoves[j] == -1 {
							queues[bisection[j]].delete(j, gainOld)
						}
					} else {
						if verticesMoves[j] == -1 {
							queues[bisection[j]].update(j, gainOld, extcosts[j]-intcosts[j])
						}
					}
				} else if extcosts[j] > 0 {
					if verticesMoves[j] == -1 {
						queues[bisection[j]].insert(j, extcosts[j]-intcosts[j])
					}
				}
			}
		}

		for i := 0; i < moveno; i++ {
			verticesMoves[moves[i]] = -1
		}
		for moveno--; moveno > edgecutBestMoveNo; moveno-- {
			v := moves[moveno]
			dstpart := (bisection[v] + 1) % 2
			bisection[v] = dstpart

			extcosts[v], intcosts[v] = intcosts[v], extcosts[v]

			pw[dstpart] += g.VertexWeight(v)
			pw[(dstpart+1)%2] -= g.VertexWeight(v)

			for i := g.AdjIndexes[v]; i < g.AdjIndexes[v+1]; i++ {
				j := g.AdjV[i]
				if dstpart == bisection[j] {
					intcosts[j] += g.Edges[i]
					extcosts[j] -= g.Edges[i]
				} else {
					intcosts[j] -= g.Edges[i]
					extcosts[j] += g.Edges[i]
				}
			}
		}

		if edgecutBestMoveNo == -1 || edgecutBest == edgecut {
			break
		}
	}

	return uint64(edgecutBest)
}

// balanceBisectionFM moves exactly nmoves vertices from the side opposite
// moveto into moveto, always taking the current max-gain vertex. Unlike
// refineBisectionFM it tracks no best-so-far state and never undoes a move:
// fewer than nmoves moves may happen if the source side runs out of
// candidates, and the caller sees whatever imbalance results.
func balanceBisectionFM(g *Graph, bisection []int, nmoves, moveto int, rng *rand.Rand) {
	n := g.NumVertices()
	extcosts := make([]int, n)
	intcosts := make([]int, n)

	gainMax := 0
	for i := 0; i < n; i++ {
		gain := 0
		for j := g.AdjIndexes[i]; j < g.AdjIndexes[i+1]; j++ {
			if bisection[g.AdjV[j]] != bisection[i] {
				extcosts[i] += g.Edges[j]
			} else {
				intcosts[i] += g.Edges[j]
			}
			gain += g.Edges[j]
		}
		if gain > gainMax {
			gainMax = gain
		}
	}

	queues := [2]fmQueue{newFMQueue(n, gainMax), newFMQueue(n, gainMax)}
	verticesMoves := make([]int, n)
	for i := range verticesMoves {
		verticesMoves[i] = -1
	}
	perm := make([]int, n)

	for i := 0; i < n; i++ {
		perm[i] = i
	}
	for i := 0; i < n; i++ {
		j := rng.Intn(n)
		perm[i], perm[j] = perm[j], perm[i]
	}

	for i := 0; i < n; i++ {
		j := perm[i]
		if extcosts[j] > 0 || g.AdjIndexes[j] == g.AdjIndexes[j+1] {
			queues[bisection[j]].insert(j, extcosts[j]-intcosts[j])
		}
	}

	dstpart := moveto
	srcpart := (dstpart + 1) % 2

	for moveno := 0; moveno < nmoves; moveno++ {
		v := queues[srcpart].extractMax()
		if v == -1 {
			break
		}

		bisection[v] = dstpart
		verticesMoves[v] = moveno

		extcosts[v], intcosts[v] = intcosts[v], extcosts[v]

		for i := g.AdjIndexes[v]; i < g.AdjIndexes[v+1]; i++ {
			j := g.AdjV[i]
			gainOld := extcosts[j] - intcosts[j]
			extcostOld := extcosts[j]

			var delta int
			if dstpart == bisection[j] {
				delta = g.Edges[i]
			} else {
				delta = -g.Edges[i]
			}
			intcosts[j] += delta
			extcosts[j] -= delta

			if extcostOld > 0 {
				if extcosts[j] == 0 {
					if verticesMoves[j] == -1 {
						queues[bisection[j]].delete(j, gainOld)
					}
				} else {
					if verticesMoves[j] == -1 {
						queues[bisection[j]].update(j, gainOld, extcosts[j]-intcosts[j])
					}
				}
			} else if extcosts[j] > 0 {
				if verticesMoves[j] == -1 {
					queues[bisection[j]].insert(j, extcosts[j]-intcosts[j])
				}
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
