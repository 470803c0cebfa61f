package match

import (
	"fmt"
	"sort"
	"strings"

	"github.com/stretchr/testify/mock"
)

// PartialDict is an ordered string-keyed map whose equality only looks at
// the keys it holds. Keys the other side carries that it does not hold
// are remembered in a not-given table, which shows up in String so a
// failing assertion tells what else was passed.
//
// The not-given table only grows during comparisons and is never touched
// by Set, Get or Delete. Reset clears it. The zero value is an empty dict
// ready to use.
type PartialDict struct {
	keys   []string
	values map[string]interface{}

	notGivenKeys []string
	notGiven     map[string]interface{}
}

// NewPartialDict returns an empty PartialDict
func NewPartialDict() *PartialDict {
	return &PartialDict{
		values:   make(map[string]interface{}),
		notGiven: make(map[string]interface{}),
	}
}

// Partial builds a PartialDict from alternating key, value arguments,
// keeping their order. It panics on an odd count or a non-string key.
func Partial(kv ...interface{}) *PartialDict {
	if len(kv)%2 != 0 {
		panic(fmt.Sprintf("match.Partial: odd number of arguments (%d)", len(kv)))
	}
	d := NewPartialDict()
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("match.Partial: key %d is %T, not string", i/2, kv[i]))
		}
		d.Set(key, kv[i+1])
	}
	return d
}

// PartialFrom builds a PartialDict from a map, in sorted key order
func PartialFrom(m map[string]interface{}) *PartialDict {
	d := NewPartialDict()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		d.Set(k, m[k])
	}
	return d
}

// Set stores value under key
func (d *PartialDict) Set(key string, value interface{}) {
	if d.values == nil {
		d.values = make(map[string]interface{})
	}
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Get returns the value under key, or nil
func (d *PartialDict) Get(key string) interface{} {
	return d.values[key]
}

// Lookup returns the value under key and whether it is present
func (d *PartialDict) Lookup(key string) (interface{}, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Delete removes key
func (d *PartialDict) Delete(key string) {
	if _, exists := d.values[key]; !exists {
		return
	}
	delete(d.values, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of held keys
func (d *PartialDict) Len() int {
	return len(d.keys)
}

// Keys returns the held keys in insertion order
func (d *PartialDict) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Equal compares d against other. Every key of other that d holds must
// match; every key of other that d lacks is recorded as not given. All
// keys are visited even after a mismatch so the record is complete.
func (d *PartialDict) Equal(other map[string]interface{}) bool {
	keys := make([]string, 0, len(other))
	for k := range other {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	isEqual := true
	for _, k := range keys {
		v := other[k]
		mine, ok := d.values[k]
		if !ok {
			d.recordNotGiven(k, v)
			continue
		}
		if !Equal(mine, v) {
			isEqual = false
		}
	}
	return isEqual
}

func (d *PartialDict) recordNotGiven(key string, value interface{}) {
	if d.notGiven == nil {
		d.notGiven = make(map[string]interface{})
	}
	if _, seen := d.notGiven[key]; !seen {
		d.notGivenKeys = append(d.notGivenKeys, key)
	}
	d.notGiven[key] = value
}

// Matches implements Matcher for any map with string keys
func (d *PartialDict) Matches(actual interface{}) bool {
	m, ok := toStringMap(actual)
	if !ok {
		return false
	}
	return d.Equal(m)
}

// NotGiven returns a copy of the keys recorded during comparisons
func (d *PartialDict) NotGiven() map[string]interface{} {
	out := make(map[string]interface{}, len(d.notGiven))
	for k, v := range d.notGiven {
		out[k] = v
	}
	return out
}

// Reset clears the not-given table
func (d *PartialDict) Reset() {
	d.notGivenKeys = nil
	d.notGiven = make(map[string]interface{})
}

// String renders held entries followed by not-given entries
func (d *PartialDict) String() string {
	items := make([]string, 0, len(d.keys)+len(d.notGivenKeys))
	for _, k := range d.keys {
		items = append(items, fmt.Sprintf("%#v: %s", k, Render(d.values[k])))
	}
	for _, k := range d.notGivenKeys {
		items = append(items, fmt.Sprintf("%#v: %s", k, Render(d.notGiven[k])))
	}
	return "{" + strings.Join(items, ", ") + "}"
}

// Argument adapts the dict for testify mock expectations
func (d *PartialDict) Argument() interface{} {
	return mock.MatchedBy(func(m map[string]interface{}) bool { return d.Equal(m) })
}

var _ Matcher = (*PartialDict)(nil)
