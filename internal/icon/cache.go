package icon

// Cache memoizes resolved icons by Key. It is confined to the caller's
// control goroutine: only that goroutine calls Get and AddIcon, so the
// map needs no locking. All cross-goroutine traffic happens on the
// worker's channels.
//
// Per-key lifecycle: absent (never requested) → pending → resolved.
// Resolved is terminal for the session; there is no eviction. Keys are
// independent of any Store instance, so the cache deliberately
// survives entry reloads.
type Cache struct {
	commands chan<- Command
	entries  map[Key]cacheState
}

type cacheState struct {
	resolved bool
	icon     Icon
}

// NewCache returns an empty cache with no worker attached. Lookups
// before SetCommands mark keys pending but send nothing.
func NewCache() *Cache {
	return &Cache{entries: make(map[Key]cacheState)}
}

// SetCommands attaches the worker's command channel, normally from the
// WorkerStarted handshake event.
func (c *Cache) SetCommands(commands chan<- Command) {
	c.commands = commands
}

// Get returns the resolved icon for key, or reports a miss. A first
// miss marks the key pending and enqueues one LoadIcon request;
// further misses while pending send nothing, so at most one request is
// ever outstanding per key.
func (c *Cache) Get(key Key) (Icon, bool) {
	if st, ok := c.entries[key]; ok {
		return st.icon, st.resolved
	}

	c.entries[key] = cacheState{}
	if c.commands != nil {
		c.commands <- LoadIcon{Key: key}
	}
	return Icon{}, false
}

// AddIcon records the resolved icon for key. It is idempotent and
// resolved is terminal: later calls just overwrite the bitmap.
func (c *Cache) AddIcon(key Key, ic Icon) {
	c.entries[key] = cacheState{resolved: true, icon: ic}
}

// Len returns the number of tracked keys (pending and resolved).
func (c *Cache) Len() int {
	return len(c.entries)
}
