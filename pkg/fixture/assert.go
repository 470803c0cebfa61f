package fixture

import (
	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/glintfix/pkg/host"
	"github.com/arthur-debert/glintfix/pkg/match"
)

// CallSource is anything that keeps recorded calls, such as the host
// doubles and CommandDouble.
type CallSource interface {
	LastCall(method string) (host.Call, bool)
}

// AssertCalledWith checks the most recent call to method against expected,
// compared with match.Equal so matchers and partial dicts may appear among
// the expected arguments.
func AssertCalledWith(t assert.TestingT, src CallSource, method string, expected ...interface{}) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	call, ok := src.LastCall(method)
	if !ok {
		return assert.Fail(t, "expected a call to "+method+", got none")
	}
	return match.AssertArgs(t, expected, call.Args)
}
