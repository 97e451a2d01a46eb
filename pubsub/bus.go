package pubsub

import (
	"errors"

	"github.com/boz/go-lifecycle"
)

var ErrNotRunning = errors.New("not running")

// Event is anything published on the bus; the marketplace host publishes
// committed *types.TxResult values.
type Event interface{}

// Bus fans published events out to every live subscriber
type Bus interface {
	Publish(Event) error
	Subscribe() (Subscriber, error)
	Close()
	Done() <-chan struct{}
}

// Subscriber receives, in publish order, every event published after it
// subscribed. A slow subscriber buffers; it never blocks the publisher.
type Subscriber interface {
	Events() <-chan Event
	Close()
	Done() <-chan struct{}
}

type bus struct {
	subscriptions map[*subscriber]bool

	pubch   chan Event
	subch   chan chan<- Subscriber
	unsubch chan *subscriber

	lc lifecycle.Lifecycle
}

// NewBus runs a new bus
func NewBus() Bus {
	b := &bus{
		subscriptions: make(map[*subscriber]bool),
		pubch:         make(chan Event),
		subch:         make(chan chan<- Subscriber),
		unsubch:       make(chan *subscriber),
		lc:            lifecycle.New(),
	}

	go b.run()

	return b
}

func (b *bus) Publish(ev Event) error {
	select {
	case b.pubch <- ev:
		return nil
	case <-b.lc.ShuttingDown():
		return ErrNotRunning
	}
}

func (b *bus) Subscribe() (Subscriber, error) {
	ch := make(chan Subscriber, 1)

	select {
	case b.subch <- ch:
		return <-ch, nil
	case <-b.lc.ShuttingDown():
		return nil, ErrNotRunning
	}
}

func (b *bus) Close() {
	b.lc.Shutdown(nil)
}

func (b *bus) Done() <-chan struct{} {
	return b.lc.Done()
}

func (b *bus) run() {
	defer b.lc.ShutdownCompleted()

loop:
	for {
		select {
		case err := <-b.lc.ShutdownRequest():
			b.lc.ShutdownInitiated(err)
			break loop

		case ev := <-b.pubch:
			for sub := range b.subscriptions {
				if err := sub.publish(ev); err != nil && !errors.Is(err, ErrNotRunning) {
					panic(err)
				}
			}

		case ch := <-b.subch:
			sub := newSubscriber(b.unsubch)
			b.subscriptions[sub] = true
			ch <- sub

		case sub := <-b.unsubch:
			delete(b.subscriptions, sub)
		}
	}

	for sub := range b.subscriptions {
		sub.lc.ShutdownAsync(nil)
	}

	for len(b.subscriptions) > 0 {
		sub := <-b.unsubch
		delete(b.subscriptions, sub)
	}
}

type subscriber struct {
	evbuf []Event

	eventch  chan Event
	pubch    chan Event
	parentch chan<- *subscriber

	lc lifecycle.Lifecycle
}

func newSubscriber(parentch chan<- *subscriber) *subscriber {
	sub := &subscriber{
		eventch:  make(chan Event),
		pubch:    make(chan Event),
		parentch: parentch,
		lc:       lifecycle.New(),
	}

	go sub.run()

	return sub
}

func (s *subscriber) publish(ev Event) error {
	select {
	case s.pubch <- ev:
		return nil
	case <-s.lc.ShuttingDown():
		return ErrNotRunning
	}
}

func (s *subscriber) Events() <-chan Event {
	return s.eventch
}

func (s *subscriber) Close() {
	s.lc.Shutdown(nil)
}

func (s *subscriber) Done() <-chan struct{} {
	return s.lc.Done()
}

func (s *subscriber) run() {
	defer s.lc.ShutdownCompleted()

	var outch chan<- Event
	var curev Event

loop:
	for {
		// sending on a nil channel blocks, which parks the output side while
		// the buffer is empty
		outch = nil
		if len(s.evbuf) > 0 {
			outch = s.eventch
			curev = s.evbuf[0]
		}

		select {
		case err := <-s.lc.ShutdownRequest():
			s.lc.ShutdownInitiated(err)
			break loop

		case outch <- curev:
			s.evbuf = s.evbuf[1:]

		case ev := <-s.pubch:
			s.evbuf = append(s.evbuf, ev)
		}
	}

	s.parentch <- s
}
