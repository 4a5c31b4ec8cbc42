package icon

// chanCap bounds both worker channels. The cache sends at most one
// LoadIcon per unresolved key, so with a realistic entries file the
// command channel never fills; the bound is there so a stuck consumer
// surfaces as backpressure instead of unbounded growth.
const chanCap = 128

// Command is a request sent to the worker.
type Command interface{ isCommand() }

// LoadSettings must be the first command after the handshake; it
// carries the platform configuration the resolver is built from.
type LoadSettings struct {
	Settings Settings
}

// LoadIcon asks the worker to resolve one key.
type LoadIcon struct {
	Key Key
}

func (LoadSettings) isCommand() {}
func (LoadIcon) isCommand()     {}

// Event is a message from the worker back to the control goroutine.
type Event interface{ isEvent() }

// WorkerStarted is emitted exactly once, first, and hands the caller
// the sending end of the command channel.
type WorkerStarted struct {
	Commands chan<- Command
}

// IconReceived reports one completed resolution. Events may arrive in
// any order relative to the LoadIcon requests that caused them.
type IconReceived struct {
	Key  Key
	Icon Icon
}

func (WorkerStarted) isEvent() {}
func (IconReceived) isEvent()  {}

// workerState is the worker's two-phase protocol state. The settings
// handshake is modeled as an explicit state machine rather than an
// implicit "first message must be X" convention.
type workerState int

const (
	workerUninitialized workerState = iota // waiting for LoadSettings
	workerReady                            // resolving LoadIcon commands
)

// Worker owns the single background resolution goroutine. The resolver
// is built from the injected factory once settings arrive, keeping
// platform selection at the construction site.
type Worker struct {
	newResolver func(Settings) Resolver
}

// NewWorker returns a worker that builds its resolver with factory
// when LoadSettings arrives.
func NewWorker(factory func(Settings) Resolver) *Worker {
	return &Worker{newResolver: factory}
}

// Start launches the worker goroutine and returns its event stream.
// The first event is always WorkerStarted; the stream closes when the
// worker exits (command channel closed, or a protocol violation).
func (w *Worker) Start() <-chan Event {
	events := make(chan Event, chanCap)
	commands := make(chan Command, chanCap)
	go w.run(commands, events)
	return events
}

func (w *Worker) run(commands chan Command, events chan<- Event) {
	defer close(events)

	events <- WorkerStarted{Commands: commands}

	state := workerUninitialized
	var resolver Resolver

	for cmd := range commands {
		switch state {
		case workerUninitialized:
			settings, ok := cmd.(LoadSettings)
			if !ok {
				return
			}
			resolver = w.newResolver(settings.Settings)
			state = workerReady

		case workerReady:
			load, ok := cmd.(LoadIcon)
			if !ok {
				return
			}
			// Resolve may block on platform I/O for as long as it
			// likes; only this goroutine waits.
			events <- IconReceived{Key: load.Key, Icon: resolver.Resolve(load.Key)}
		}
	}
}
