//go:build windows

package fixture_test

import "golang.org/x/sys/windows"

var errInUse error = windows.ERROR_SHARING_VIOLATION
