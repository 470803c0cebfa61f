//go:build unix

package fixture_test

import "golang.org/x/sys/unix"

var errInUse error = unix.EBUSY
