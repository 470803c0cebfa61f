package host

import (
	"github.com/arthur-debert/glintfix/pkg/errors"
	"github.com/arthur-debert/glintfix/pkg/registry"
)

// CommandMap is an in-memory CommandRegistry
type CommandMap struct {
	handlers registry.Registry[CommandHandler]
}

// NewCommandMap returns an empty CommandMap
func NewCommandMap() *CommandMap {
	return &CommandMap{handlers: registry.New[CommandHandler]()}
}

// Register installs handler under name. Without force an existing entry
// is an ErrCommandExists error; with force it is overwritten.
func (m *CommandMap) Register(name string, handler CommandHandler, force bool) error {
	if force {
		_, _, err := m.handlers.Replace(name, handler)
		return err
	}
	if m.handlers.Has(name) {
		return errors.Newf(errors.ErrCommandExists, "command %s is already registered", name).
			WithDetail("command", name)
	}
	return m.handlers.Register(name, handler)
}

// Lookup returns the handler registered under name
func (m *CommandMap) Lookup(name string) (CommandHandler, error) {
	handler, err := m.handlers.Get(name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCommandNotFound, "command %s is not registered", name)
	}
	return handler, nil
}

// Unregister removes name from the map
func (m *CommandMap) Unregister(name string) error {
	if err := m.handlers.Remove(name); err != nil {
		return errors.Wrapf(err, errors.ErrCommandNotFound, "command %s is not registered", name)
	}
	return nil
}

// Names lists registered command names in sorted order
func (m *CommandMap) Names() []string {
	return m.handlers.List()
}
