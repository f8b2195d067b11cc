package firestoredb

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"spotshare/internal/domain/entity"
	"spotshare/internal/errors"

	"google.golang.org/api/iterator"
)

// snapshotIterator yields the full listing set after each change batch.
type snapshotIterator interface {
	Next() ([]*entity.Listing, error)
	Stop()
}

type backoffPolicy struct {
	Initial time.Duration
	Max     time.Duration
}

var defaultBackoff = backoffPolicy{Initial: time.Second, Max: 30 * time.Second}

func (b backoffPolicy) next(d time.Duration) time.Duration {
	if d <= 0 {
		return b.Initial
	}
	d *= 2
	if d > b.Max {
		return b.Max
	}

	return d
}

// feedSubscription runs a listener until Unsubscribe is called.
type feedSubscription struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Unsubscribe stops the listener. It does not wait, so it may be called from
// inside a callback.
func (s *feedSubscription) Unsubscribe() {
	s.once.Do(s.cancel)
}

// startFeed runs the listener on its own goroutine. The feed outlives the
// caller's context deadline and ends only through Unsubscribe.
func startFeed(
	ctx context.Context,
	open func(context.Context) snapshotIterator,
	onSnapshot func([]*entity.Listing),
	onError func(error),
	backoff backoffPolicy,
	logger *slog.Logger,
) *feedSubscription {
	feedCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	sub := &feedSubscription{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(sub.done)
		runFeed(feedCtx, open, onSnapshot, onError, backoff, logger)
	}()

	return sub
}

func runFeed(
	ctx context.Context,
	open func(context.Context) snapshotIterator,
	onSnapshot func([]*entity.Listing),
	onError func(error),
	backoff backoffPolicy,
	logger *slog.Logger,
) {
	var delay time.Duration

	for {
		it := open(ctx)
		delivered, err := consume(ctx, it, onSnapshot)
		it.Stop()

		if ctx.Err() != nil || isCanceled(err) || errors.Is(err, iterator.Done) {
			return
		}

		if delivered {
			delay = 0
		}
		delay = backoff.next(delay)

		logger.Warn("Listing feed interrupted, reopening",
			slog.Duration("retry_in", delay),
			slog.Any("error", err),
		)
		if onError != nil {
			onError(mapError(err, nil, "listing feed interrupted"))
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()

			return
		case <-timer.C:
		}
	}
}

// consume delivers batches until the iterator fails and reports
// whether at least one batch got through.
func consume(ctx context.Context, it snapshotIterator, onSnapshot func([]*entity.Listing)) (bool, error) {
	delivered := false
	for {
		listings, err := it.Next()
		if err != nil {
			return delivered, err
		}
		if ctx.Err() != nil {
			return delivered, ctx.Err()
		}

		delivered = true
		onSnapshot(listings)
	}
}
