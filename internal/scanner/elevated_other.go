//go:build !windows

package scanner

// isElevated reports true off Windows, where diskpart needs no elevation.
func isElevated() bool {
	return true
}
