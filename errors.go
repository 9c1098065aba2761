package gpart

import "errors"

// Sentinel errors returned by the graph and partitioning operations. Wrap them
// with fmt.Errorf("...: %w", err) when adding context; callers should compare
// with errors.Is against these values rather than matching on message text.
var (
	// ErrEmptyGraph is returned when an operation requires at least one vertex.
	ErrEmptyGraph = errors.New("gpart: graph has no vertices")

	// ErrInvalidInput is returned when nparts exceeds the vertex count or a
	// caller supplies a malformed argument outside the partweights contract.
	ErrInvalidInput = errors.New("gpart: invalid input")

	// ErrInvalidPartWeights is returned when partweights does not sum to the
	// vertex count, or contains an entry outside (0, nvertices). The source
	// implementation this library is based on silently returned success in
	// this case, leaving the output partition untouched; this is treated
	// here as a distinct, reported failure.
	ErrInvalidPartWeights = errors.New("gpart: partweights does not match vertex count")

	// ErrMalformedGraphFile is returned by Load when the text graph format
	// in the input does not parse (bad header, short adjacency line, etc).
	ErrMalformedGraphFile = errors.New("gpart: malformed graph file")
)
