package fixture

import "testing"

// Swap installs value into slot for the rest of the test and restores the
// previous value on cleanup.
func Swap[T any](t testing.TB, slot *T, value T) {
	t.Helper()
	restore := swap(slot, value)
	t.Cleanup(restore)
}

func swap[T any](slot *T, value T) func() {
	previous := *slot
	*slot = value
	return func() { *slot = previous }
}
