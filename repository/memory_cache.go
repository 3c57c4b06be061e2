package repository

// MemoryCache is the in-process payment memoization cache, used in tests and
// when no Redis address is configured.
type MemoryCache struct {
	Data map[string]string
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		Data: make(map[string]string),
	}
}

func (m *MemoryCache) Get(key string) (string, bool) {
	val, ok := m.Data[key]
	return val, ok
}

func (m *MemoryCache) Set(key string, value string) error {
	m.Data[key] = value
	return nil
}
