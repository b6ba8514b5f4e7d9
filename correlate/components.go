// SPDX-License-Identifier: MIT

package correlate

import "github.com/katalvlaran/synthdata/dataset"

// Component is one connected group of correlated features.
type Component struct {
	Features []string
	Edges    []dataset.Correlation
}

// Components partitions the correlation graph into connected components.
// Features appear in BFS order from the first-seen feature of each
// component; components are ordered by their first-seen feature; each
// edge belongs to the component containing both its ends.
//
// Time:   O(V + E).
// Memory: O(V + E).
func Components(edges []dataset.Correlation) []Component {
	var order []string
	adj := make(map[string][]string)
	link := func(a, b string) {
		for _, x := range adj[a] {
			if x == b {
				return
			}
		}
		adj[a] = append(adj[a], b)
	}
	for _, e := range edges {
		for _, v := range [2]string{e.A, e.B} {
			if _, ok := adj[v]; !ok {
				adj[v] = nil
				order = append(order, v)
			}
		}
		link(e.A, e.B)
		link(e.B, e.A)
	}

	seen := make(map[string]int, len(order))
	var comps []Component
	for _, start := range order {
		if _, ok := seen[start]; ok {
			continue
		}
		id := len(comps)
		queue := []string{start}
		seen[start] = id
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range adj[queue[qi]] {
				if _, ok := seen[v]; !ok {
					seen[v] = id
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, Component{Features: queue})
	}
	for _, e := range edges {
		id := seen[e.A]
		comps[id].Edges = append(comps[id].Edges, e)
	}

	return comps
}
