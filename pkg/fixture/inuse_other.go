//go:build !unix && !windows

package fixture

func isInUse(error) bool {
	return false
}
