package closer

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type namedFunc struct {
	name string
	fn   func(context.Context) error
}

// Closer runs registered shutdown functions in reverse order of registration.
type Closer struct {
	mu     sync.Mutex
	once   sync.Once
	done   chan struct{}
	funcs  []namedFunc
	logger Logger
}

var globalCloser = New()

func New() *Closer {
	return &Closer{
		done:   make(chan struct{}),
		logger: nopLogger{},
	}
}

func SetLogger(l Logger) { globalCloser.SetLogger(l) }

func Add(fns ...func(context.Context) error) { globalCloser.Add(fns...) }

func AddNamed(name string, fn func(context.Context) error) { globalCloser.AddNamed(name, fn) }

func CloseAll(ctx context.Context) error { return globalCloser.CloseAll(ctx) }

func (c *Closer) SetLogger(l Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = l
}

func (c *Closer) Add(fns ...func(context.Context) error) {
	for _, fn := range fns {
		c.AddNamed("func", fn)
	}
}

func (c *Closer) AddNamed(name string, fn func(context.Context) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, namedFunc{name: name, fn: fn})
}

// CloseAll is idempotent. Later calls return nil.
func (c *Closer) CloseAll(ctx context.Context) error {
	var result error

	c.once.Do(func() {
		defer close(c.done)

		c.mu.Lock()
		funcs := c.funcs
		c.funcs = nil
		log := c.logger
		c.mu.Unlock()

		if len(funcs) == 0 {
			return
		}

		log.Info(ctx, "closing resources", zap.Int("count", len(funcs)))

		var errs []error
		for i := len(funcs) - 1; i >= 0; i-- {
			f := funcs[i]
			start := time.Now()

			if err := c.call(ctx, f); err != nil {
				log.Error(ctx, "failed to close resource",
					zap.String("name", f.name),
					zap.Error(err),
				)
				errs = append(errs, err)
				continue
			}

			log.Info(ctx, "resource closed",
				zap.String("name", f.name),
				zap.Duration("took", time.Since(start)),
			)
		}

		result = errors.Join(errs...)
	})

	return result
}

func (c *Closer) call(ctx context.Context, f namedFunc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("panic while closing " + f.name)
		}
	}()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	return f.fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...zap.Field)  {}
func (nopLogger) Error(context.Context, string, ...zap.Field) {}
