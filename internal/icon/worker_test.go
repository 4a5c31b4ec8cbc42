package icon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(v uint8) Icon {
	return New(1, 1, []byte{v, v, v, 0xff})
}

// countingResolver tags each resolution with the key value so tests can
// tell results apart.
func countingResolver(calls *int) Resolver {
	return ResolverFunc(func(key Key) Icon {
		*calls++
		return solid(uint8(len(key.Value())))
	})
}

func recvEvent(t *testing.T, events <-chan Event) Event {
	t.Helper()
	select {
	case ev, ok := <-events:
		require.True(t, ok, "event stream closed early")
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for worker event")
		return nil
	}
}

func requireClosed(t *testing.T, events <-chan Event) {
	t.Helper()
	select {
	case ev, ok := <-events:
		require.False(t, ok, "expected closed stream, got %#v", ev)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for worker exit")
	}
}

func startWorker(t *testing.T, factory func(Settings) Resolver) (chan<- Command, <-chan Event) {
	t.Helper()
	events := NewWorker(factory).Start()

	started, ok := recvEvent(t, events).(WorkerStarted)
	require.True(t, ok, "first event must be the handshake")
	require.NotNil(t, started.Commands)
	return started.Commands, events
}

func TestWorker_ResolvesAfterSettings(t *testing.T) {
	calls := 0
	commands, events := startWorker(t, func(Settings) Resolver {
		return countingResolver(&calls)
	})

	commands <- LoadSettings{Settings: Settings{Size: 16}}

	key := URLKey("http://example.com")
	commands <- LoadIcon{Key: key}

	got, ok := recvEvent(t, events).(IconReceived)
	require.True(t, ok)
	assert.Equal(t, key, got.Key)
	assert.Equal(t, solid(4), got.Icon) // "http"
	assert.Equal(t, 1, calls)

	close(commands)
	requireClosed(t, events)
}

func TestWorker_SettingsReachResolverFactory(t *testing.T) {
	var seen Settings
	commands, events := startWorker(t, func(s Settings) Resolver {
		seen = s
		return ResolverFunc(func(Key) Icon { return Placeholder(s.Size) })
	})

	commands <- LoadSettings{Settings: Settings{Size: 32, ThemeDirs: []string{"/x"}}}
	commands <- LoadIcon{Key: CustomKey("a.png")}

	got := recvEvent(t, events).(IconReceived)
	assert.Equal(t, 32, got.Icon.Width)
	assert.Equal(t, 32, seen.Size)
	assert.Equal(t, []string{"/x"}, seen.ThemeDirs)

	close(commands)
	requireClosed(t, events)
}

func TestWorker_RequiresSettingsFirst(t *testing.T) {
	calls := 0
	commands, events := startWorker(t, func(Settings) Resolver {
		return countingResolver(&calls)
	})

	// A load before settings is a protocol violation; the worker quits.
	commands <- LoadIcon{Key: CustomKey("a.png")}

	requireClosed(t, events)
	assert.Zero(t, calls)
}

func TestWorker_SecondSettingsTerminates(t *testing.T) {
	commands, events := startWorker(t, func(Settings) Resolver {
		return ResolverFunc(func(Key) Icon { return Placeholder(1) })
	})

	commands <- LoadSettings{Settings: Settings{}}
	commands <- LoadSettings{Settings: Settings{}}

	requireClosed(t, events)
}

func TestWorker_CloseBeforeSettings(t *testing.T) {
	commands, events := startWorker(t, func(Settings) Resolver {
		return ResolverFunc(func(Key) Icon { return Placeholder(1) })
	})

	close(commands)
	requireClosed(t, events)
}

func TestWorker_ManyLoadsInAnyOrder(t *testing.T) {
	commands, events := startWorker(t, func(Settings) Resolver {
		return ResolverFunc(func(key Key) Icon { return solid(uint8(len(key.Value()))) })
	})
	commands <- LoadSettings{Settings: Settings{}}

	keys := []Key{
		URLKey("http://a.com"),
		URLKey("mailto:x@y.z"),
		CustomKey("deep/path/icon.png"),
	}
	for _, k := range keys {
		commands <- LoadIcon{Key: k}
	}

	got := map[Key]Icon{}
	for range keys {
		ev := recvEvent(t, events).(IconReceived)
		got[ev.Key] = ev.Icon
	}
	for _, k := range keys {
		assert.Equal(t, solid(uint8(len(k.Value()))), got[k], k.String())
	}

	close(commands)
	requireClosed(t, events)
}

func TestWorkerAndCache_EndToEnd(t *testing.T) {
	commands, events := startWorker(t, func(Settings) Resolver {
		return ResolverFunc(func(Key) Icon { return solid(7) })
	})

	cache := NewCache()
	cache.SetCommands(commands)
	commands <- LoadSettings{Settings: Settings{}}

	key := URLKey("https://docs.example.com")
	_, ok := cache.Get(key)
	require.False(t, ok)

	ev := recvEvent(t, events).(IconReceived)
	cache.AddIcon(ev.Key, ev.Icon)

	got, ok := cache.Get(key)
	require.True(t, ok)
	assert.Equal(t, solid(7), got)

	close(commands)
	requireClosed(t, events)
}
