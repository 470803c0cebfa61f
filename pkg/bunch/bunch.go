// Package bunch provides Bunch, an open attribute bag for fabricating
// stand-ins for DTOs and named records in tests.
package bunch

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/arthur-debert/glintfix/pkg/errors"
)

// Bunch holds named attributes. Its identity is stable; its contents can
// change through Set. The zero value is an empty Bunch.
type Bunch struct {
	attrs map[string]interface{}
}

// New builds a Bunch from attrs. The map is copied.
func New(attrs map[string]interface{}) *Bunch {
	b := &Bunch{attrs: make(map[string]interface{}, len(attrs))}
	for k, v := range attrs {
		b.attrs[k] = v
	}
	return b
}

// Of builds a Bunch from alternating name, value arguments. It panics on an
// odd count or a non-string name.
func Of(kv ...interface{}) *Bunch {
	if len(kv)%2 != 0 {
		panic(fmt.Sprintf("bunch.Of: odd number of arguments (%d)", len(kv)))
	}
	b := New(nil)
	for i := 0; i < len(kv); i += 2 {
		name, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("bunch.Of: name %d is %T, not string", i/2, kv[i]))
		}
		b.attrs[name] = kv[i+1]
	}
	return b
}

// Get returns the attribute, or nil when unset
func (b *Bunch) Get(name string) interface{} {
	return b.attrs[name]
}

// Lookup returns the attribute and whether it is set
func (b *Bunch) Lookup(name string) (interface{}, bool) {
	v, ok := b.attrs[name]
	return v, ok
}

// Set assigns an attribute
func (b *Bunch) Set(name string, value interface{}) {
	if b.attrs == nil {
		b.attrs = make(map[string]interface{})
	}
	b.attrs[name] = value
}

// Names returns attribute names in sorted order
func (b *Bunch) Names() []string {
	names := make([]string, 0, len(b.attrs))
	for name := range b.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Map returns a copy of the attributes
func (b *Bunch) Map() map[string]interface{} {
	out := make(map[string]interface{}, len(b.attrs))
	for k, v := range b.attrs {
		out[k] = v
	}
	return out
}

// Decode copies the attributes onto a struct pointed to by into. Field
// names match case-insensitively; a `bunch` tag overrides the name.
// Scalar types are converted loosely ("3" decodes into an int field).
func (b *Bunch) Decode(into interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           into,
		TagName:          "bunch",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrDecode, "cannot build bunch decoder")
	}
	if err := decoder.Decode(b.attrs); err != nil {
		return errors.Wrapf(err, errors.ErrDecode, "cannot decode bunch into %T", into)
	}
	return nil
}

// String renders the attributes in name order
func (b *Bunch) String() string {
	items := make([]string, 0, len(b.attrs))
	for _, name := range b.Names() {
		items = append(items, fmt.Sprintf("%s: %#v", name, b.attrs[name]))
	}
	return "Bunch{" + strings.Join(items, ", ") + "}"
}
