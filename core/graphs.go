// This file contains a thin wrapper around the graph module
// for checking and walking the routing edges of a bracket.
package core

import (
	"errors"
	"fmt"
	"iter"

	"github.com/dominikbraun/graph"
)

var ErrInvalidTopology = errors.New("invalid bracket topology")

func matchHash(m Match) string {
	return m.ID
}

// The RoutingGraph has all matches of a bracket as its
// nodes. The directed edges model the path that the
// teams take towards the grand final, both as winners
// and as losers.
//
// The graph is acyclic. Adding an edge that would close
// a cycle fails.
type RoutingGraph struct {
	graph.Graph[string, Match]
	adjacencyMap map[string]map[string]graph.Edge[string]
}

// Builds the routing graph from the FeedsInto and LoserFeedsInto
// edges of the matches.
func NewRoutingGraph(matches []Match) (*RoutingGraph, error) {
	g := graph.New(matchHash, graph.Directed(), graph.Acyclic(), graph.PreventCycles())

	for _, m := range matches {
		if err := g.AddVertex(m); err != nil {
			return nil, fmt.Errorf("%w: match %v: %v", ErrInvalidTopology, m.ID, err)
		}
	}

	for _, m := range matches {
		for _, target := range []string{m.FeedsInto, m.LoserFeedsInto} {
			if target == "" {
				continue
			}
			err := g.AddEdge(m.ID, target)
			if errors.Is(err, graph.ErrEdgeAlreadyExists) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("%w: edge %v -> %v: %v", ErrInvalidTopology, m.ID, target, err)
			}
		}
	}

	adjacencyMap, err := g.AdjacencyMap()
	if err != nil {
		return nil, err
	}

	return &RoutingGraph{Graph: g, adjacencyMap: adjacencyMap}, nil
}

// Returns the IDs of the matches on the outgoing edges of
// the given match (the dependants).
func (g *RoutingGraph) Dependants(matchID string) []string {
	outEdges := g.adjacencyMap[matchID]
	dependants := make([]string, 0, len(outEdges))
	for k := range outEdges {
		dependants = append(dependants, k)
	}
	return dependants
}

// Returns the IDs of the matches without outgoing edges
func (g *RoutingGraph) Terminals() []string {
	terminals := make([]string, 0, 2)
	for id, outEdges := range g.adjacencyMap {
		if len(outEdges) == 0 {
			terminals = append(terminals, id)
		}
	}
	return terminals
}

// Returns the match IDs in an order where every match comes
// after all matches that feed into it. Ties are broken by
// the ID so the order is stable.
func (g *RoutingGraph) TopologicalOrder() ([]string, error) {
	return graph.StableTopologicalSort(g.Graph, func(a, b string) bool { return a < b })
}

// Iterates over the matches that are reachable from the start
// match together with their distance from it.
func (g *RoutingGraph) BreadthSearchIter(startID string) iter.Seq2[Match, int] {
	iterator := func(yield func(m Match, depth int) bool) {
		visitor := func(key string, depth int) bool {
			m, _ := g.Vertex(key)
			return !yield(m, depth)
		}
		_ = graph.BFSWithDepth(g.Graph, startID, visitor)
	}
	return iterator
}
