package analysis

import (
	"math"
	"sort"

	"github.com/philipparndt/goobj/pkg/geometry"
)

// EdgeInfo is one undirected polygon edge shared by Faces faces
type EdgeInfo struct {
	From   int              `json:"from"`
	To     int              `json:"to"`
	Start  geometry.Vector3 `json:"start"`
	End    geometry.Vector3 `json:"end"`
	Length float64          `json:"length"`
	Faces  int              `json:"faces"`
}

// EdgeStats summarizes all edges of a mesh
type EdgeStats struct {
	Edges       []EdgeInfo
	Min         float64
	Max         float64
	Avg         float64
	Boundary    int // edges used by exactly one face
	NonManifold int // edges used by more than two faces
}

// Closed reports whether every edge is shared by exactly two faces, which
// Volume needs to be meaningful
func (s EdgeStats) Closed() bool {
	return len(s.Edges) > 0 && s.Boundary == 0 && s.NonManifold == 0
}

type edgeKey struct{ a, b int }

// AnalyzeEdges collects the unique edges of every non-degenerate face in
// first-seen order
func AnalyzeEdges(src Source) EdgeStats {
	vertices := src.Vertices()
	index := make(map[edgeKey]int)
	stats := EdgeStats{Edges: make([]EdgeInfo, 0)}

	for _, face := range src.Faces() {
		if face.IsDegenerate() {
			continue
		}
		for i, from := range face {
			to := face[(i+1)%len(face)]
			key := edgeKey{min(from, to), max(from, to)}

			if j, ok := index[key]; ok {
				stats.Edges[j].Faces++
				continue
			}
			index[key] = len(stats.Edges)
			stats.Edges = append(stats.Edges, EdgeInfo{
				From:   key.a,
				To:     key.b,
				Start:  vertices[key.a],
				End:    vertices[key.b],
				Length: vertices[key.a].Distance(vertices[key.b]),
				Faces:  1,
			})
		}
	}

	if len(stats.Edges) == 0 {
		return stats
	}

	stats.Min = math.MaxFloat64
	total := 0.0
	for _, e := range stats.Edges {
		total += e.Length
		stats.Min = math.Min(stats.Min, e.Length)
		stats.Max = math.Max(stats.Max, e.Length)
		switch {
		case e.Faces == 1:
			stats.Boundary++
		case e.Faces > 2:
			stats.NonManifold++
		}
	}
	stats.Avg = total / float64(len(stats.Edges))

	return stats
}

// FindEdgesByLength returns the edges with minLength <= length <= maxLength
func FindEdgesByLength(edges []EdgeInfo, minLength, maxLength float64) []EdgeInfo {
	var found []EdgeInfo
	for _, e := range edges {
		if e.Length >= minLength && e.Length <= maxLength {
			found = append(found, e)
		}
	}
	return found
}

// FindLongestEdges returns up to count edges, longest first
func FindLongestEdges(edges []EdgeInfo, count int) []EdgeInfo {
	return sortedEdges(edges, count, func(a, b EdgeInfo) bool { return a.Length > b.Length })
}

// FindShortestEdges returns up to count edges, shortest first
func FindShortestEdges(edges []EdgeInfo, count int) []EdgeInfo {
	return sortedEdges(edges, count, func(a, b EdgeInfo) bool { return a.Length < b.Length })
}

func sortedEdges(edges []EdgeInfo, count int, less func(a, b EdgeInfo) bool) []EdgeInfo {
	sorted := make([]EdgeInfo, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	return sorted[:max(0, min(count, len(sorted)))]
}
