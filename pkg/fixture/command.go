package fixture

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/arthur-debert/glintfix/pkg/errors"
	"github.com/arthur-debert/glintfix/pkg/host"
	"github.com/arthur-debert/glintfix/pkg/logging"
)

// CommandDouble is a recording command handler. Run returns RunFunc's
// result when set, otherwise Result and Err.
type CommandDouble struct {
	host.Recorder
	Name    string
	Result  interface{}
	Err     error
	RunFunc func(ctx context.Context, args ...interface{}) (interface{}, error)
}

// NewCommandDouble creates a new CommandDouble
func NewCommandDouble(name string) *CommandDouble {
	return &CommandDouble{Name: name}
}

// Run implements host.CommandHandler
func (d *CommandDouble) Run(ctx context.Context, args ...interface{}) (interface{}, error) {
	d.Record("Run", args...)
	if d.RunFunc != nil {
		return d.RunFunc(ctx, args...)
	}
	return d.Result, d.Err
}

// MockCommand is a command handler driven by testify expectations
type MockCommand struct {
	mock.Mock
}

// Run implements host.CommandHandler
func (m *MockCommand) Run(ctx context.Context, args ...interface{}) (interface{}, error) {
	called := m.Called(args...)
	return called.Get(0), called.Error(1)
}

// PatchOption configures a CommandPatch
type PatchOption func(*CommandPatch)

// WithHandler installs h instead of a generated CommandDouble
func WithHandler(h host.CommandHandler) PatchOption {
	return func(p *CommandPatch) {
		p.replacement = h
	}
}

// WithResult sets what the generated double returns
func WithResult(v interface{}) PatchOption {
	return func(p *CommandPatch) {
		p.result = v
	}
}

// WithError sets the error the generated double returns
func WithError(err error) PatchOption {
	return func(p *CommandPatch) {
		p.err = err
	}
}

// LeaveOnRestore keeps the replacement registered on Stop when no handler
// existed before Start.
func LeaveOnRestore() PatchOption {
	return func(p *CommandPatch) {
		p.leaveOnRestore = true
	}
}

// CommandPatch temporarily replaces a named command in a registry. Start
// remembers whatever was registered, Stop puts it back. A command that did
// not exist before Start is unregistered again on Stop unless the patch
// was built with LeaveOnRestore.
type CommandPatch struct {
	registry host.CommandRegistry
	name     string

	replacement    host.CommandHandler
	double         *CommandDouble
	result         interface{}
	err            error
	leaveOnRestore bool

	mu          sync.Mutex
	previous    host.CommandHandler
	hadPrevious bool
	active      bool
}

// PatchCommand builds an inactive patch of name in reg
func PatchCommand(reg host.CommandRegistry, name string, opts ...PatchOption) *CommandPatch {
	p := &CommandPatch{registry: reg, name: name}
	for _, opt := range opts {
		opt(p)
	}
	if p.replacement == nil {
		p.double = NewCommandDouble(name)
		p.double.Result = p.result
		p.double.Err = p.err
		p.replacement = p.double
	}
	return p
}

// Name returns the patched command name
func (p *CommandPatch) Name() string {
	return p.name
}

// Replacement returns the handler installed while the patch is active
func (p *CommandPatch) Replacement() host.CommandHandler {
	return p.replacement
}

// Double returns the generated double, or nil when WithHandler was used
func (p *CommandPatch) Double() *CommandDouble {
	return p.double
}

// Active reports whether the replacement is currently installed
func (p *CommandPatch) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

// Start installs the replacement and returns it
func (p *CommandPatch) Start() (host.CommandHandler, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.active {
		return nil, errors.Newf(errors.ErrPatchState, "command %s is already patched", p.name).
			WithDetail("command", p.name)
	}

	prev, err := p.registry.Lookup(p.name)
	switch {
	case err == nil:
		p.previous, p.hadPrevious = prev, true
	case errors.IsErrorCode(err, errors.ErrCommandNotFound):
		p.previous, p.hadPrevious = nil, false
	default:
		return nil, errors.Wrapf(err, errors.ErrPatchState, "cannot look up command %s", p.name)
	}

	if err := p.registry.Register(p.name, p.replacement, true); err != nil {
		return nil, errors.Wrapf(err, errors.ErrPatchState, "cannot install command %s", p.name)
	}
	p.active = true

	log := logging.GetLogger("fixture")
	log.Debug().
		Str("command", p.name).
		Bool("hadPrevious", p.hadPrevious).
		Msg("Command patched")
	return p.replacement, nil
}

// Stop restores the registry to its state before Start. Stopping an
// inactive patch does nothing.
func (p *CommandPatch) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.active {
		return nil
	}
	p.active = false
	log := logging.GetLogger("fixture").With().Str("command", p.name).Logger()

	if p.hadPrevious {
		previous := p.previous
		p.previous, p.hadPrevious = nil, false
		if err := p.registry.Register(p.name, previous, true); err != nil {
			return errors.Wrapf(err, errors.ErrPatchState, "cannot restore command %s", p.name)
		}
		log.Debug().Msg("Command restored")
		return nil
	}

	if p.leaveOnRestore {
		log.Debug().Msg("Command had no previous handler, leaving replacement installed")
		return nil
	}

	err := p.registry.Unregister(p.name)
	if err != nil && !errors.IsErrorCode(err, errors.ErrCommandNotFound) {
		return errors.Wrapf(err, errors.ErrPatchState, "cannot unregister command %s", p.name)
	}
	log.Debug().Msg("Command unregistered")
	return nil
}

// Do runs fn with the patch active and stops the patch afterwards, even
// when fn panics.
func (p *CommandPatch) Do(fn func(h host.CommandHandler)) (err error) {
	h, err := p.Start()
	if err != nil {
		return err
	}
	defer func() {
		if stopErr := p.Stop(); stopErr != nil && err == nil {
			err = stopErr
		}
	}()
	fn(h)
	return nil
}

// Command patches name in reg for the rest of the test
func Command(t testing.TB, reg host.CommandRegistry, name string, opts ...PatchOption) *CommandPatch {
	t.Helper()
	p := PatchCommand(reg, name, opts...)
	if _, err := p.Start(); err != nil {
		t.Fatalf("patch command %s: %v", name, err)
	}
	t.Cleanup(func() {
		if err := p.Stop(); err != nil {
			t.Errorf("restore command %s: %v", name, err)
		}
	})
	return p
}

var (
	_ host.CommandHandler = (*CommandDouble)(nil)
	_ host.CommandHandler = (*MockCommand)(nil)
)
