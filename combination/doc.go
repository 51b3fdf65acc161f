// Package combination enumerates the subsets of a machine's buttons whose
// combined toggles turn an all-off light bank into a target pattern.
//
// Pressing a button twice cancels out, so every reachable pattern is the XOR of
// some subset of button masks. Find explores the full 2^N tree of
// "skip / press" decisions and returns every subset that lands on the
// objective, not only the smallest ones: the joule solver needs them all.
//
// Cache memoizes Find per objective mask. It belongs to exactly one machine
// (its button list is fixed at construction) and must not be shared between
// goroutines.
//
// Complexity:
//
//   - Find:        Time O(2^N · N), Memory O(N) recursion + result size
//   - Cache.Find:  O(result size) on a hit (results are copied out)
package combination
