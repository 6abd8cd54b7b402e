package goroutine

import (
	"time"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/base/log"
	"github.com/Beat1ngHeart/Custom-NFT/base/utils"
)

var (
	logger = log.Log()
)

type PanicEvent struct {
	Panic interface{}
	Stack []byte
}

// Option tunes RecoverableGo
type Option func(*options)

type options struct {
	onPanic func(p interface{}, stack []byte)
}

// WithAfterRecovered runs f with the recovered value once a panic is logged
func WithAfterRecovered(f func(p interface{}, stack []byte)) Option {
	return func(o *options) {
		o.onPanic = f
	}
}

// RecoverableGo runs f on a new goroutine. The returned channel yields the
// panic if f panicked, it is closed without a value otherwise.
func RecoverableGo(f func(), opts ...Option) chan *PanicEvent {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	done := make(chan *PanicEvent, 1)
	go func() {
		defer func() {
			p := recover()
			if p == nil {
				close(done)
				return
			}

			stack := utils.Stack(3)
			logger.WithFields(log.Fields{
				"err":   p,
				"stack": string(stack),
			}).Error("panic")
			if o.onPanic != nil {
				o.onPanic(p, stack)
			}
			done <- &PanicEvent{p, stack}
		}()

		f()
	}()
	return done
}

// RecoverableTicker calls f every interval until c is done. A panic in one
// round is logged and the next round still runs.
func RecoverableTicker(c ctx.Ctx, interval time.Duration, f func(ctx.Ctx)) chan struct{} {
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-c.Done():
				return
			case <-ticker.C:
				<-RecoverableGo(func() { f(c) })
			}
		}
	}()
	return stopped
}
