package host

import (
	"sync"

	"github.com/arthur-debert/glintfix/pkg/filesystem"
)

// NewAccessors returns an accessor bundle wired to in-process
// implementations: an empty settings map, no current engine, local rpc
// dispatch, an in-memory cache, the OS filesystem and an empty command map.
func NewAccessors() *Accessors {
	settings := StaticMain{}
	return &Accessors{
		GetMain:          func() Main { return settings },
		GetCurrentEngine: func() Engine { return nil },
		UseRPC:           PassthroughRPC,
		Cache:            NewMemoryCache(),
		Paths:            FSPaths{FS: filesystem.NewOS()},
		Commands:         NewCommandMap(),
	}
}

// StaticMain serves settings from a fixed map
type StaticMain map[string]interface{}

// GetSetting returns the value for key, or nil
func (m StaticMain) GetSetting(key string) interface{} {
	return m[key]
}

// PassthroughRPC is the rpc decorator with remote dispatch disabled: it
// returns fn unchanged. Called without a target it returns the identity
// function, which hands back its first argument.
func PassthroughRPC(fn Func, _ ...RPCOption) Func {
	if fn != nil {
		return fn
	}
	return func(args ...interface{}) (interface{}, error) {
		if len(args) == 0 {
			return nil, nil
		}
		return args[0], nil
	}
}

// MemoryCache is a map-backed CacheReader
type MemoryCache struct {
	mu   sync.RWMutex
	data map[string]map[string]interface{}
}

// NewMemoryCache returns an empty MemoryCache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{data: make(map[string]map[string]interface{})}
}

// Put stores a blob under key
func (c *MemoryCache) Put(key string, blob map[string]interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = blob
}

// GetCacheData returns the blob stored under key. A missing key yields an
// empty blob, matching what the host returns for a cold cache.
func (c *MemoryCache) GetCacheData(key string) (map[string]interface{}, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if blob, ok := c.data[key]; ok {
		return blob, nil
	}
	return map[string]interface{}{}, nil
}

// FSPaths answers Exists against a filesystem.FS
type FSPaths struct {
	FS filesystem.FS
}

// Exists reports whether path exists on the underlying filesystem
func (p FSPaths) Exists(path string) bool {
	return filesystem.Exists(p.FS, path)
}
