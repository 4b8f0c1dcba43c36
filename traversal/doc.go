// Package traversal implements plain and tracked BFS/DFS, Kahn's layered
// topological sort, three-color cycle detection, and ancestor/descendant
// transitive closure.
//
// Every procedure here is iterative with an explicit stack or queue, never
// native recursion: a million-node graph must not overflow the goroutine
// stack.
//
// None of these procedures support cancellation or accept a
// context.Context; once invoked, each runs to completion.
package traversal
