package icon

// Settings carries the platform configuration the worker needs before
// it can resolve anything: handed over in the LoadSettings command.
type Settings struct {
	Size        int      // edge length resolvers should aim for
	ThemeDirs   []string // directories searched for theme icons
	DefaultIcon string   // optional image path overriding the placeholder
}

// Resolver turns a Key into an Icon. Implementations must be
// infallible: any internal failure substitutes a deterministic
// placeholder instead of surfacing an error, which is what lets the
// cache and worker get by without an error path. Resolve may block for
// as long as it likes; it is only ever called from the worker
// goroutine.
type Resolver interface {
	Resolve(key Key) Icon
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(key Key) Icon

// Resolve calls f.
func (f ResolverFunc) Resolve(key Key) Icon { return f(key) }
