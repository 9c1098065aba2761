package gpart

import (
	"fmt"
	"sort"
)

// Strategy assigns each of commsize communicating processes to one of
// len(pweights) partitions. A correct Strategy places exactly pweights[j]
// processes into partition j.
type Strategy interface {
	Map(pweights []int, commsize int) ([]int, error)
}

// BuildPartitionWeights compacts a rank-to-physical-node assignment into a
// dense partition numbering. oldMapp[i] is the physical node id hosting
// rank i; node ids need not be contiguous or start at zero. pweights[j] is
// the number of ranks hosted on the node assigned partition index j;
// nodeToPart maps each node id that actually hosts a rank to its dense
// partition index (assigned in ascending node-id order).
func BuildPartitionWeights(oldMapp []int) (pweights []int, nodeToPart map[int]int) {
	counts := make(map[int]int)
	for _, node := range oldMapp {
		counts[node]++
	}

	nodes := make([]int, 0, len(counts))
	for node := range counts {
		nodes = append(nodes, node)
	}
	sort.Ints(nodes)

	nodeToPart = make(map[int]int, len(nodes))
	pweights = make([]int, len(nodes))
	for j, node := range nodes {
		nodeToPart[node] = j
		pweights[j] = counts[node]
	}
	return pweights, nodeToPart
}

// GraphStrategy places processes by running the core multilevel
// partitioner against a communication-volume graph, minimizing total
// cross-partition traffic. Graph must have one vertex per process, weighted
// by inter-process message volume.
type GraphStrategy struct {
	Graph   *Graph
	Regular bool
	Opts    []Option
}

// Map implements Strategy.
func (s GraphStrategy) Map(pweights []int, commsize int) ([]int, error) {
	if s.Graph.NumVertices() != commsize {
		return nil, fmt.Errorf("%w: communication graph has %d vertices, want %d",
			ErrInvalidInput, s.Graph.NumVertices(), commsize)
	}
	return PartitionRecursive(s.Graph, pweights, s.Regular, s.Opts...)
}

// LinearStrategy fills partitions in order: the first pweights[0] processes
// go to partition 0, the next pweights[1] to partition 1, and so on. It
// ignores communication volume entirely; useful as a cheap baseline or when
// no communication profile is available.
type LinearStrategy struct{}

// Map implements Strategy.
func (LinearStrategy) Map(pweights []int, commsize int) ([]int, error) {
	if err := checkPartitionWeights(pweights, commsize); err != nil {
		return nil, err
	}

	mapping := make([]int, commsize)
	j, remaining := 0, pweights[0]
	for i := 0; i < commsize; i++ {
		for remaining == 0 {
			j++
			remaining = pweights[j]
		}
		mapping[i] = j
		remaining--
	}
	return mapping, nil
}

// RoundRobinStrategy cycles through partitions one process at a time,
// skipping any partition that has already received its full pweights
// share. Like LinearStrategy it ignores communication volume.
type RoundRobinStrategy struct{}

// Map implements Strategy.
func (RoundRobinStrategy) Map(pweights []int, commsize int) ([]int, error) {
	if err := checkPartitionWeights(pweights, commsize); err != nil {
		return nil, err
	}

	remaining := append([]int(nil), pweights...)
	mapping := make([]int, commsize)
	npart := len(pweights)
	j := 0
	for i := 0; i < commsize; i++ {
		for remaining[j] == 0 {
			j = (j + 1) % npart
		}
		mapping[i] = j
		remaining[j]--
		j = (j + 1) % npart
	}
	return mapping, nil
}

func checkPartitionWeights(pweights []int, commsize int) error {
	if len(pweights) == 0 {
		return fmt.Errorf("%w: no partitions", ErrInvalidInput)
	}
	sum := 0
	for _, w := range pweights {
		sum += w
	}
	if sum != commsize {
		return fmt.Errorf("%w: pweights sum to %d, want %d", ErrInvalidPartWeights, sum, commsize)
	}
	return nil
}

// Apply derives a process-to-partition mapping for the commsize processes
// described by oldMapp (oldMapp[i] is the physical node hosting rank i) by
// first compacting oldMapp into per-partition size targets, then asking
// strategy to place processes into those partitions. It returns the
// resulting mapping alongside the partition size targets strategy used.
func Apply(oldMapp []int, strategy Strategy) (newMapp []int, pweights []int, err error) {
	pweights, _ = BuildPartitionWeights(oldMapp)
	newMapp, err = strategy.Map(pweights, len(oldMapp))
	if err != nil {
		return nil, nil, err
	}
	return newMapp, pweights, nil
}
