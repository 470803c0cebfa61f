package fixture

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/glintfix/pkg/config"
	"github.com/arthur-debert/glintfix/pkg/host"
	"github.com/arthur-debert/glintfix/pkg/logging"
)

// Session carries the doubles shared by every test in a test binary: the
// main object, the current engine and the rpc decorator. Building them once
// avoids re-patching per test; the price is that a test mutating a shared
// double without resetting it leaks into later tests. Tests sharing a
// Session must not run in parallel.
type Session struct {
	acc    *host.Accessors
	main   *host.MockMain
	engine *host.MockEngine
	rpc    *RPCDouble
	log    zerolog.Logger

	mu       sync.Mutex
	restores []func()
	closed   bool
}

// NewSession installs the shared doubles into acc. Call Close once the
// test run is over.
func NewSession(acc *host.Accessors) *Session {
	s := &Session{
		acc:    acc,
		main:   host.NewMockMain(),
		engine: host.NewMockEngine(),
		rpc:    NewRPCDouble(),
		log:    logging.GetLogger("fixture"),
	}

	if cfg, err := config.Get(); err != nil {
		s.log.Warn().Err(err).Msg("Failed to load fixture configuration, using defaults")
	} else if err := logging.SetLevel(cfg.LogLevel); err != nil {
		s.log.Warn().Err(err).Msg("Ignoring configured log level")
	}

	s.restores = append(s.restores,
		swap(&acc.GetMain, func() host.Main { return s.main }),
		swap(&acc.GetCurrentEngine, func() host.Engine { return s.engine }),
		swap[host.RPCDecorator](&acc.UseRPC, s.rpc.Decorate),
	)
	s.log.Debug().Msg("Session doubles installed")
	return s
}

// Accessors returns the patched accessor bundle
func (s *Session) Accessors() *host.Accessors {
	return s.acc
}

// Main returns the shared main-object double
func (s *Session) Main() *host.MockMain {
	return s.main
}

// Engine returns the shared current-engine double
func (s *Session) Engine() *host.MockEngine {
	return s.engine
}

// RPC returns the shared rpc decorator double
func (s *Session) RPC() *RPCDouble {
	return s.rpc
}

// ResetCalls clears the call history of every shared double
func (s *Session) ResetCalls() {
	s.main.ResetCalls()
	s.engine.ResetCalls()
	s.rpc.ResetCalls()
}

// Close restores the accessors that NewSession replaced. It is safe to
// call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	for i := len(s.restores) - 1; i >= 0; i-- {
		s.restores[i]()
	}
	s.closed = true
	s.log.Debug().Msg("Session doubles restored")
}
