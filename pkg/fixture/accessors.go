package fixture

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/arthur-debert/glintfix/pkg/filesystem"
	"github.com/arthur-debert/glintfix/pkg/host"
	"github.com/arthur-debert/glintfix/pkg/logging"
)

// RPCDouble is an rpc decorator with remote dispatch disabled. It records
// each decoration and hands back the decorated function unchanged.
type RPCDouble struct {
	host.Recorder
}

// NewRPCDouble creates a new RPCDouble
func NewRPCDouble() *RPCDouble {
	return &RPCDouble{}
}

// Decorate implements host.RPCDecorator
func (d *RPCDouble) Decorate(fn host.Func, opts ...host.RPCOption) host.Func {
	d.Record("UseRPC", host.ApplyRPCOptions(opts...))
	return host.PassthroughRPC(fn)
}

// NoRPC replaces the rpc decorator for one test
func NoRPC(t testing.TB, acc *host.Accessors) *RPCDouble {
	t.Helper()
	d := NewRPCDouble()
	Swap[host.RPCDecorator](t, &acc.UseRPC, d.Decorate)
	log := logging.ForTest(t, "fixture")
	log.Debug().Msg("Remote dispatch disabled")
	return d
}

// CacheData replaces the cache reader with a double returning empty blobs
func CacheData(t testing.TB, acc *host.Accessors) *host.MockCache {
	t.Helper()
	c := host.NewMockCache()
	Swap[host.CacheReader](t, &acc.Cache, c)
	log := logging.ForTest(t, "fixture")
	log.Debug().Msg("Cache reader patched")
	return c
}

// PathExists replaces the path checker with a double reporting every path
// as missing
func PathExists(t testing.TB, acc *host.Accessors) *host.MockPaths {
	t.Helper()
	p := host.NewMockPaths()
	Swap[host.PathChecker](t, &acc.Paths, p)
	log := logging.ForTest(t, "fixture")
	log.Debug().Msg("Path checker patched")
	return p
}

// MemoryPaths points the path checker at a fresh in-memory filesystem and
// returns it, so a test can create exactly the paths it wants to exist.
func MemoryPaths(t testing.TB, acc *host.Accessors) afero.Fs {
	t.Helper()
	mem := afero.NewMemMapFs()
	Swap[host.PathChecker](t, &acc.Paths, host.FSPaths{FS: filesystem.NewAferoFS(mem)})
	log := logging.ForTest(t, "fixture")
	log.Debug().Msg("Path checker backed by memory filesystem")
	return mem
}
