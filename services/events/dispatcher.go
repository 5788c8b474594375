package events

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Handler consumes one published domain event. A handler error is logged by
// the dispatcher and never reaches the publisher.
type Handler func(ctx context.Context, evt Event) error

const defaultHandlerTimeout = 10 * time.Second

// Dispatcher is an in-process publish/subscribe registry for booking domain
// events. Subscribers register explicitly at startup; for each published
// event the registered handlers run in registration order, each inside its
// own recover and timeout boundary, so one stuck or panicking subscriber
// cannot starve the others or fail the transition that published the event.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
	logger   *zap.Logger
	timeout  time.Duration
	async    bool
	wg       sync.WaitGroup
}

// NewDispatcher creates a dispatcher that delivers events synchronously.
func NewDispatcher(logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[Type][]Handler),
		logger:   logger,
		timeout:  defaultHandlerTimeout,
	}
}

// SetAsync switches delivery onto a background goroutine per publish. The
// caller then observes the committed booking state before any notification
// is delivered; Wait flushes in-flight deliveries on shutdown.
func (d *Dispatcher) SetAsync(async bool) {
	d.async = async
}

// Register subscribes a handler to one event variant.
func (d *Dispatcher) Register(t Type, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[t] = append(d.handlers[t], h)
}

// Publish delivers evt to every handler registered for its variant. It is
// called only after the state-changing transaction has committed, and it
// never reports failure back to the publisher.
func (d *Dispatcher) Publish(evt Event) {
	if d.async {
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			d.dispatch(evt)
		}()
		return
	}
	d.dispatch(evt)
}

// Wait blocks until all in-flight asynchronous deliveries have finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) dispatch(evt Event) {
	d.mu.RLock()
	handlers := d.handlers[evt.Type()]
	d.mu.RUnlock()

	for _, h := range handlers {
		d.invoke(h, evt)
	}
}

func (d *Dispatcher) invoke(h Handler, evt Event) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("event subscriber panicked",
				zap.String("event", string(evt.Type())),
				zap.String("bookingReference", evt.Booking().Reference),
				zap.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if err := h(ctx, evt); err != nil {
		d.logger.Error("event subscriber failed",
			zap.String("event", string(evt.Type())),
			zap.String("bookingReference", evt.Booking().Reference),
			zap.Error(err),
		)
	}
}
