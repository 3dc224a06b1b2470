package viewport

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	messagebus "github.com/vardius/message-bus"

	"scalepage/pkg/scale"
)

// ResizeTopic is the message bus topic carrying scale.Size payloads.
const ResizeTopic = "viewport.resize"

// Bus is a viewport whose change notifications travel over a message bus.
// Each subscriber runs on its own goroutine and sees resizes in publish
// order. Use it when resizes originate on a UI thread that must not block
// on a scaling pass.
type Bus struct {
	bus messagebus.MessageBus
	log zerolog.Logger

	mu     sync.Mutex
	size   scale.Size
	screen scale.Size
}

// NewBus creates a bus viewport. queueSize bounds the number of pending
// resizes per subscriber before Resize blocks.
func NewBus(width, height float64, queueSize int) *Bus {
	size := scale.Size{Width: width, Height: height}
	return &Bus{
		bus:    messagebus.New(queueSize),
		log:    log.With().Str("module", "viewport").Logger(),
		size:   size,
		screen: size,
	}
}

func (b *Bus) Size() scale.Size {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

func (b *Bus) ScreenSize() scale.Size {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.screen
}

func (b *Bus) SetScreenSize(width, height float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.screen = scale.Size{Width: width, Height: height}
}

func (b *Bus) Subscribe(fn func(scale.Size)) func() {
	// The bus identifies handlers by func value, so keep our own closure.
	h := func(size scale.Size) { fn(size) }
	if err := b.bus.Subscribe(ResizeTopic, h); err != nil {
		b.log.Error().Err(err).Msg("Could not subscribe to resizes")
		return func() {}
	}
	var once sync.Once
	return func() {
		once.Do(func() {
			if err := b.bus.Unsubscribe(ResizeTopic, h); err != nil {
				b.log.Warn().Err(err).Msg("Could not unsubscribe from resizes")
			}
		})
	}
}

// Resize records the new size and publishes it to all subscribers.
func (b *Bus) Resize(width, height float64) {
	size := scale.Size{Width: width, Height: height}
	b.mu.Lock()
	b.size = size
	b.mu.Unlock()
	b.log.Trace().Stringer("size", size).Msg("Publishing resize")
	b.bus.Publish(ResizeTopic, size)
}

var (
	_ scale.Viewport = (*Bus)(nil)
	_ scale.Screener = (*Bus)(nil)
)
