// Package graph accumulates the entity co-occurrence structure of a corpus
// split and finalizes it into the degree vector and symmetrically-normalized
// adjacency matrix consumed by graph-convolution propagation.
//
// The builder is a two-phase state machine: Observe (or Merge) records
// entities and pairs in any order while the split is processed, then one
// Finalize call produces the read-only Graph. Finalize refuses to run twice.
package graph

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrFinalized indicates a second Finalize call on the same accumulator.
	ErrFinalized = errors.New("graph: accumulator already finalized")

	errNotSquare = errors.New("graph: matrix rows are not square")
)

// Key canonicalizes an entity mention into a hashable identity: its exact
// token-id sequence joined with an underscore. Mentions that tokenize to
// the same ids are the same node even if their surface text differs.
func Key(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, "_")
}

// pair is an unordered entity pair, stored with the lexicographically
// smaller key first so (a,b) and (b,a) collide.
type pair [2]string

func makePair(a, b string) pair {
	if b < a {
		a, b = b, a
	}
	return pair{a, b}
}

// Accumulator collects the entity set and co-occurrence pair set of one
// corpus split. Not safe for concurrent use: either guard it with a lock or
// give each worker its own accumulator and Merge them afterwards.
type Accumulator struct {
	order     []string // entity keys in first-seen order
	index     map[string]int
	pairs     map[pair]struct{}
	finalized bool
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		index: make(map[string]int),
		pairs: make(map[pair]struct{}),
	}
}

// Observe records one example's entity pair: both entities join the entity
// set and their unordered pair joins the pair set.
func (a *Accumulator) Observe(e1, e2 string) {
	a.addEntity(e1)
	a.addEntity(e2)
	if e1 != e2 {
		a.pairs[makePair(e1, e2)] = struct{}{}
	}
}

// Merge folds another accumulator's observations into this one, preserving
// this accumulator's first-seen ordering for entities both have recorded.
func (a *Accumulator) Merge(b *Accumulator) {
	for _, key := range b.order {
		a.addEntity(key)
	}
	for p := range b.pairs {
		a.pairs[p] = struct{}{}
	}
}

// Entities returns the number of distinct entities observed so far.
func (a *Accumulator) Entities() int {
	return len(a.order)
}

// Pairs returns the number of distinct unordered pairs observed so far.
func (a *Accumulator) Pairs() int {
	return len(a.pairs)
}

func (a *Accumulator) addEntity(key string) {
	if _, ok := a.index[key]; ok {
		return
	}
	a.index[key] = len(a.order)
	a.order = append(a.order, key)
}

// Graph is the finalized, read-only co-occurrence structure of one split.
// Entities, Degree and Spectral share the same first-seen index order.
type Graph struct {
	// Entities lists the canonical entity keys; the position of a key is
	// its node index in Degree and Spectral.
	Entities []string `json:"entities"`

	// Degree[i] counts the distinct entities node i co-occurred with,
	// excluding itself.
	Degree []float64 `json:"degree"`

	// Spectral is D^(-1/2)·(A+I)·D^(-1/2) with D = diag(degree+1): the
	// symmetric normalization standard to spectral graph convolution.
	// Entries lie in (0, 1] and down-weight high-degree nodes.
	Spectral *Dense `json:"spectral"`
}

// Finalize runs the one-shot normalization pass and seals the accumulator.
// It must not be called before accumulation across the whole split is
// complete, and a second call returns ErrFinalized.
func (a *Accumulator) Finalize() (*Graph, error) {
	if a.finalized {
		return nil, ErrFinalized
	}
	a.finalized = true

	n := len(a.order)
	adjacency := newDense(n)
	for p := range a.pairs {
		i, j := a.index[p[0]], a.index[p[1]]
		adjacency.set(i, j, 1)
		adjacency.set(j, i, 1)
	}

	degree := make([]float64, n)
	d := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for _, v := range adjacency.Row(i) {
			sum += v
		}
		degree[i] = sum
		d[i] = math.Pow(sum+1, -0.5) // +1 for the self-loop added below
	}

	spectral := newDense(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			aij := adjacency.At(i, j)
			if i == j {
				aij++ // A + I
			}
			spectral.set(i, j, d[i]*aij*d[j])
		}
	}

	entities := make([]string, n)
	copy(entities, a.order)

	return &Graph{Entities: entities, Degree: degree, Spectral: spectral}, nil
}
