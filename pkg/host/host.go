package host

import (
	"context"
	"time"
)

// Func is the shape of a function the host program can dispatch over rpc
type Func func(args ...interface{}) (interface{}, error)

// Main is the host program's main object
type Main interface {
	GetSetting(key string) interface{}
}

// Engine is the engine the host program is currently driving
type Engine interface {
	Name() string
	Execute(ctx context.Context, command string, args map[string]interface{}) (interface{}, error)
}

// RPCOptions are the knobs accepted by the rpc decorator
type RPCOptions struct {
	Name    string
	Timeout time.Duration
}

// RPCOption configures RPCOptions
type RPCOption func(*RPCOptions)

// WithRPCName names the remote endpoint
func WithRPCName(name string) RPCOption {
	return func(o *RPCOptions) { o.Name = name }
}

// WithRPCTimeout bounds a remote call
func WithRPCTimeout(d time.Duration) RPCOption {
	return func(o *RPCOptions) { o.Timeout = d }
}

// ApplyRPCOptions folds opts into an RPCOptions value
func ApplyRPCOptions(opts ...RPCOption) RPCOptions {
	var o RPCOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// RPCDecorator marks fn as remote-callable and returns the callable the
// host program should use in its place
type RPCDecorator func(fn Func, opts ...RPCOption) Func

// CacheReader reads cached data blobs
type CacheReader interface {
	GetCacheData(key string) (map[string]interface{}, error)
}

// PathChecker answers whether a path exists
type PathChecker interface {
	Exists(path string) bool
}

// CommandHandler runs a registered command
type CommandHandler interface {
	Run(ctx context.Context, args ...interface{}) (interface{}, error)
}

// CommandFunc adapts a plain function to CommandHandler. Func values are
// not comparable, so tests asserting on handler identity should use a
// pointer handler such as *fixture.CommandDouble.
type CommandFunc func(ctx context.Context, args ...interface{}) (interface{}, error)

// Run calls f
func (f CommandFunc) Run(ctx context.Context, args ...interface{}) (interface{}, error) {
	return f(ctx, args...)
}

// CommandRegistry maps command names to handlers. Lookup of an
// unregistered name fails with errors.ErrCommandNotFound.
type CommandRegistry interface {
	Register(name string, handler CommandHandler, force bool) error
	Lookup(name string) (CommandHandler, error)
	Unregister(name string) error
}

// Accessors is the bundle of host accessors the host program calls through
type Accessors struct {
	GetMain          func() Main
	GetCurrentEngine func() Engine
	UseRPC           RPCDecorator
	Cache            CacheReader
	Paths            PathChecker
	Commands         CommandRegistry
}
