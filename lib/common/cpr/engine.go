// Package cpr contains concurrency primitives.
package cpr

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Source generates elements.
type Source[T any] interface {
	Source(context.Context, chan<- T) error
}

// Sink consumes elements.
type Sink[T any] interface {
	Sink(context.Context, <-chan T) error
}

// Engine connects a source to a sink.
type Engine[T any] struct {
	Source Source[T]
	Sink   Sink[T]
}

// BufSize is the capacity of the channels created by this package.
const BufSize = 100

// Process runs the source and the sink until the source is exhausted
// or one of them fails.
func (eng *Engine[T]) Process(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	ch := make(chan T, BufSize)
	g.Go(func() error {
		defer close(ch)
		return eng.Source.Source(ctx, ch)
	})
	g.Go(func() error {
		return eng.Sink.Sink(ctx, ch)
	})
	return g.Wait()
}

// Push sends the given elements, unless the context is canceled first.
func Push[T any](ctx context.Context, ch chan<- T, ts ...T) error {
	for _, t := range ts {
		select {
		case ch <- t:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Pop receives an element. The boolean is false if the channel is closed.
func Pop[T any](ctx context.Context, ch <-chan T) (T, bool, error) {
	select {
	case t, ok := <-ch:
		return t, ok, nil
	case <-ctx.Done():
		var def T
		return def, false, ctx.Err()
	}
}

// Consume calls f for every element until the channel is closed.
func Consume[T any](ctx context.Context, ch <-chan T, f func(T) error) error {
	for {
		t, ok, err := Pop(ctx, ch)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := f(t); err != nil {
			return err
		}
	}
}

// Collector collects channel result into an array.
type Collector[T any] struct {
	Result []T
}

// Sink implements Sink.
func (c *Collector[T]) Sink(ctx context.Context, inCh <-chan T) error {
	return Consume(ctx, inCh, func(t T) error {
		c.Result = append(c.Result, t)
		return nil
	})
}

// Producer produces values.
type Producer[T any] struct {
	Items []T
}

// Source implements Source.
func (p *Producer[T]) Source(ctx context.Context, outCh chan<- T) error {
	return Push(ctx, outCh, p.Items...)
}
