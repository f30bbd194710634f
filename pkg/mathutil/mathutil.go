// Package mathutil holds small arithmetic helpers used by the examples.
package mathutil

// AddTwo returns x plus two.
//
// For example, AddTwo(10) returns 12.
func AddTwo(x int) int {
	return x + 2
}
