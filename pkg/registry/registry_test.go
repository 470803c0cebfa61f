package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/arthur-debert/glintfix/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handler struct {
	name string
}

func TestRegister(t *testing.T) {
	reg := New[*handler]()

	t.Run("register valid item", func(t *testing.T) {
		require.NoError(t, reg.Register("echo", &handler{name: "a"}))
		assert.Len(t, reg.List(), 1)
	})

	t.Run("register with empty name", func(t *testing.T) {
		err := reg.Register("", &handler{})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
	})

	t.Run("register duplicate", func(t *testing.T) {
		err := reg.Register("echo", &handler{name: "b"})
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists), "got %v", err)

		got, err := reg.Get("echo")
		require.NoError(t, err)
		assert.Equal(t, "a", got.name, "duplicate must not overwrite")
	})
}

func TestReplace(t *testing.T) {
	reg := New[*handler]()
	a := &handler{name: "a"}
	b := &handler{name: "b"}

	prev, existed, err := reg.Replace("echo", a)
	require.NoError(t, err)
	assert.False(t, existed)
	assert.Nil(t, prev)

	prev, existed, err = reg.Replace("echo", b)
	require.NoError(t, err)
	assert.True(t, existed)
	assert.Same(t, a, prev)

	got, err := reg.Get("echo")
	require.NoError(t, err)
	assert.Same(t, b, got)

	_, _, err = reg.Replace("", a)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestGet(t *testing.T) {
	reg := New[*handler]()
	_ = reg.Register("echo", &handler{name: "a"})

	got, err := reg.Get("echo")
	require.NoError(t, err)
	assert.Equal(t, "a", got.name)

	_, err = reg.Get("missing")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Equal(t, "missing", errors.GetErrorDetails(err)["name"])
}

func TestRemove(t *testing.T) {
	reg := New[*handler]()
	_ = reg.Register("echo", &handler{})

	require.NoError(t, reg.Remove("echo"))
	assert.False(t, reg.Has("echo"))

	err := reg.Remove("echo")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestList(t *testing.T) {
	reg := New[*handler]()
	for _, name := range []string{"charlie", "alpha", "bravo"} {
		_ = reg.Register(name, &handler{name: name})
	}

	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, reg.List())
}

func TestHas(t *testing.T) {
	reg := New[*handler]()
	_ = reg.Register("echo", &handler{})

	tests := []struct {
		name     string
		itemName string
		want     bool
	}{
		{"existing item", "echo", true},
		{"non-existing item", "print", false},
		{"empty name", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reg.Has(tt.itemName))
		})
	}
}

func TestConcurrency(t *testing.T) {
	reg := New[int]()
	const goroutines = 10
	const itemsPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < itemsPerGoroutine; i++ {
				name := fmt.Sprintf("g%d_item%d", id, i)
				if _, _, err := reg.Replace(name, id*1000+i); err != nil {
					t.Errorf("concurrent Replace() failed: %v", err)
				}
			}
		}(g)
	}
	wg.Wait()

	assert.Len(t, reg.List(), goroutines*itemsPerGoroutine)
}

