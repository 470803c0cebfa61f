package host

import "context"

// MockMain is a mock implementation of the Main interface
type MockMain struct {
	Recorder
	GetSettingFunc func(key string) interface{}
}

// NewMockMain creates a new MockMain
func NewMockMain() *MockMain {
	return &MockMain{}
}

// GetSetting calls GetSettingFunc if set, otherwise returns nil
func (m *MockMain) GetSetting(key string) interface{} {
	m.Record("GetSetting", key)
	if m.GetSettingFunc != nil {
		return m.GetSettingFunc(key)
	}
	return nil
}

// MockEngine is a mock implementation of the Engine interface
type MockEngine struct {
	Recorder
	NameFunc    func() string
	ExecuteFunc func(ctx context.Context, command string, args map[string]interface{}) (interface{}, error)
}

// NewMockEngine creates a new MockEngine
func NewMockEngine() *MockEngine {
	return &MockEngine{}
}

// Name calls NameFunc if set, otherwise returns "mock-engine"
func (m *MockEngine) Name() string {
	m.Record("Name")
	if m.NameFunc != nil {
		return m.NameFunc()
	}
	return "mock-engine"
}

// Execute calls ExecuteFunc if set, otherwise returns nil, nil
func (m *MockEngine) Execute(ctx context.Context, command string, args map[string]interface{}) (interface{}, error) {
	m.Record("Execute", command, args)
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, command, args)
	}
	return nil, nil
}

// MockCache is a mock implementation of the CacheReader interface
type MockCache struct {
	Recorder
	GetCacheDataFunc func(key string) (map[string]interface{}, error)
}

// NewMockCache creates a new MockCache
func NewMockCache() *MockCache {
	return &MockCache{}
}

// GetCacheData calls GetCacheDataFunc if set, otherwise returns an empty blob
func (m *MockCache) GetCacheData(key string) (map[string]interface{}, error) {
	m.Record("GetCacheData", key)
	if m.GetCacheDataFunc != nil {
		return m.GetCacheDataFunc(key)
	}
	return map[string]interface{}{}, nil
}

// MockPaths is a mock implementation of the PathChecker interface
type MockPaths struct {
	Recorder
	ExistsFunc func(path string) bool
}

// NewMockPaths creates a new MockPaths
func NewMockPaths() *MockPaths {
	return &MockPaths{}
}

// Exists calls ExistsFunc if set, otherwise returns false
func (m *MockPaths) Exists(path string) bool {
	m.Record("Exists", path)
	if m.ExistsFunc != nil {
		return m.ExistsFunc(path)
	}
	return false
}

var (
	_ Main        = (*MockMain)(nil)
	_ Engine      = (*MockEngine)(nil)
	_ CacheReader = (*MockCache)(nil)
	_ PathChecker = (*MockPaths)(nil)
)
