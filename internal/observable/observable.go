// Package observable provides a synchronous publish/subscribe primitive for
// stateful entities that need to tell a view layer they changed.
package observable

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrSubscriber wraps every failure reported by NotifySubscribers.
var ErrSubscriber = errors.New("subscriber failed")

// Subscriber is told, with no payload, that the observed entity changed.
// Subscribers are matched by ==, so implementations should be comparable
// (typically pointers).
type Subscriber interface {
	Changed() error
}

// SubscriberFunc adapts a plain function to a Subscriber. Keep the returned
// value to unsubscribe later.
type SubscriberFunc struct {
	fn func() error
}

// Func wraps fn. Every call returns a distinct Subscriber.
func Func(fn func() error) *SubscriberFunc {
	return &SubscriberFunc{fn: fn}
}

// Changed calls the wrapped function.
func (f *SubscriberFunc) Changed() error {
	return f.fn()
}

// Notifier is the subscription contract shared by observable entities.
type Notifier interface {
	Subscribe(s Subscriber)
	Unsubscribe(s Subscriber)
	NotifySubscribers() error
}

type entry struct {
	id  uuid.UUID
	sub Subscriber
}

// Observable keeps subscribers in subscription order. The zero value is ready
// to use. It is not safe for concurrent use.
type Observable struct {
	subscribers []entry
	log         *zap.Logger
}

var _ Notifier = (*Observable)(nil)

// New creates an Observable that logs subscriber failures to log.
func New(log *zap.Logger) *Observable {
	return &Observable{log: log}
}

// Subscribe adds s to the end of the list. Subscribing the same value twice
// makes it notified twice.
func (o *Observable) Subscribe(s Subscriber) {
	if s == nil {
		return
	}
	o.subscribers = append(o.subscribers, entry{id: uuid.New(), sub: s})
}

// Unsubscribe removes every entry equal to s. Subscribers of a
// non-comparable type never match.
func (o *Observable) Unsubscribe(s Subscriber) {
	if s == nil || !reflect.TypeOf(s).Comparable() {
		return
	}
	kept := o.subscribers[:0]
	for _, e := range o.subscribers {
		if !sameSubscriber(e.sub, s) {
			kept = append(kept, e)
		}
	}
	// drop references held past the new length
	for i := len(kept); i < len(o.subscribers); i++ {
		o.subscribers[i] = entry{}
	}
	o.subscribers = kept
}

// SubscriberCount returns the number of active subscriptions.
func (o *Observable) SubscriberCount() int {
	return len(o.subscribers)
}

// NotifySubscribers calls every subscriber in order. Subscribers added or
// removed while notifying take effect on the next call. A failing subscriber
// is logged and does not stop the others; all failures are returned joined.
func (o *Observable) NotifySubscribers() error {
	if len(o.subscribers) == 0 {
		return nil
	}
	snapshot := make([]entry, len(o.subscribers))
	copy(snapshot, o.subscribers)

	var errs []error
	for _, e := range snapshot {
		if err := call(e); err != nil {
			o.logger().Error("Failed to notify subscriber",
				zap.Stringer("subscription", e.id),
				zap.Error(err),
			)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (o *Observable) logger() *zap.Logger {
	if o.log == nil {
		o.log = zap.NewNop()
	}
	return o.log
}

// sameSubscriber reports a == b without panicking when a's dynamic type is
// not comparable.
func sameSubscriber(a, b Subscriber) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return a == b
}

func call(e entry) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: panic: %v", ErrSubscriber, e.id, r)
		}
	}()
	if subErr := e.sub.Changed(); subErr != nil {
		return fmt.Errorf("%w: %s: %w", ErrSubscriber, e.id, subErr)
	}
	return nil
}
