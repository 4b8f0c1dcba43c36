package paths

import (
	"github.com/graphkit/graphkit/adjacency"
	"github.com/graphkit/graphkit/graphmodel"
	"github.com/graphkit/graphkit/progress"
)

// pathFrame is one explicit DFS stack frame for simple-path enumeration:
// path is the sequence of ids from source to the current node, and inPath
// mirrors its membership for O(1) cycle-avoidance checks.
type pathFrame struct {
	path   []string
	inPath map[string]bool
}

// AllSimplePaths enumerates every simple path from source to target,
// returning the paths and a count of how many were found. The traversal
// never revisits a node already present on the current path; a path is
// recorded the moment the DFS pops a frame whose current node equals
// target, and that frame is not expanded further. This is exponential in
// the number of paths; callers must bound their inputs.
func AllSimplePaths(nodes []graphmodel.Node, edges []graphmodel.Edge, source, target string, sink progress.Sink) ([][]string, uint64) {
	adj := adjacency.Build(edges)
	reporter := progress.NewReporter(sink, "graph_all_simple_paths")

	start := pathFrame{path: []string{source}, inPath: map[string]bool{source: true}}
	stack := []pathFrame{start}

	var paths [][]string
	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		reporter.Tick(1)

		cur := frame.path[len(frame.path)-1]
		if cur == target {
			paths = append(paths, frame.path)
			continue
		}

		for _, nb := range adj.Forward[cur] {
			if frame.inPath[nb] {
				continue
			}

			nextPath := make([]string, len(frame.path)+1)
			copy(nextPath, frame.path)
			nextPath[len(frame.path)] = nb

			nextIn := make(map[string]bool, len(frame.inPath)+1)
			for k := range frame.inPath {
				nextIn[k] = true
			}
			nextIn[nb] = true

			stack = append(stack, pathFrame{path: nextPath, inPath: nextIn})
		}
	}

	return paths, uint64(len(paths))
}
