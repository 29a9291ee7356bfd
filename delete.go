package tagrm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

const (
	valueRetry = "retry"
	valueAbort = "abort"
)

var retryChoices = []Choice{
	{Label: "Retry", Value: valueRetry},
	{Label: "Abort", Value: valueAbort},
}

// Deleter removes tags one at a time: remote ref first, then local ref.
//
// Every backend call is raced against Timeout. A failed or timed out step
// prints a one-line diagnostic and asks Retry/Abort; Retry repeats both
// steps for the same tag, Abort stops the whole queue. There is no retry cap.
//
// A step reporting ErrRefNotFound counts as done: the ref is already gone.
type Deleter struct {
	Backend  Backend
	Prompter Prompter
	Out      io.Writer
	Logger   *zap.Logger

	// Remote defaults to DefaultRemote.
	Remote string

	// Timeout defaults to DefaultTimeout.
	Timeout time.Duration
}

// Delete processes tags in order. It returns ErrUserAborted (wrapped) when
// the user aborts; tags already deleted stay deleted and later tags are
// never attempted.
func (d *Deleter) Delete(ctx context.Context, tags []string) (*Report, error) {
	log := d.logger()
	out := console{w: d.Out}
	report := &Report{}

	for i, tag := range tags {
		for attempt := 1; ; attempt++ {
			err := d.deleteOnce(ctx, tag)
			if err == nil {
				report.add(Outcome{Tag: tag, Status: StatusDeleted})
				break
			}

			out.fail("Failed to delete tag %s: %v", tag, err)
			log.Warn("tag deletion failed",
				zap.String("tag", tag),
				zap.Int("attempt", attempt),
				zap.Error(err))

			if ctxErr := ctx.Err(); ctxErr != nil {
				report.add(Outcome{Tag: tag, Status: StatusFailed, Err: err})
				return report, ctxErr
			}

			answer, perr := d.Prompter.Ask(ctx,
				fmt.Sprintf("The operation for tag %q failed. What do you want to do?", tag),
				retryChoices)
			if perr != nil && !errors.Is(perr, ErrPromptCancelled) {
				report.add(Outcome{Tag: tag, Status: StatusFailed, Err: err})
				return report, fmt.Errorf("ask retry for tag %s: %w", tag, perr)
			}

			if perr != nil || answer == valueAbort {
				report.add(Outcome{Tag: tag, Status: StatusAborted, Err: err})
				log.Info("deletion aborted",
					zap.String("tag", tag),
					zap.Int("remaining", len(tags)-i-1))
				return report, fmt.Errorf("%w at tag %s (%d of %d)", ErrUserAborted, tag, i+1, len(tags))
			}
		}
	}

	return report, nil
}

// deleteOnce runs both steps for tag; remote always precedes local.
func (d *Deleter) deleteOnce(ctx context.Context, tag string) error {
	remote := d.Remote
	if remote == "" {
		remote = DefaultRemote
	}

	err := d.step(ctx, tag, StepRemote, func(ctx context.Context) error {
		return d.Backend.DeleteRemoteTag(ctx, remote, tag)
	})
	if err != nil {
		return err
	}

	return d.step(ctx, tag, StepLocal, func(ctx context.Context) error {
		return d.Backend.DeleteLocalTag(ctx, tag)
	})
}

func (d *Deleter) step(ctx context.Context, tag string, s Step, fn func(context.Context) error) error {
	out := console{w: d.Out}
	out.work("Deleting %s tag: %s...", s, tag)

	start := time.Now()
	err := runWithTimeout(ctx, d.timeout(), fn)
	d.logger().Debug("backend call finished",
		zap.String("tag", tag),
		zap.Stringer("step", s),
		zap.Duration("took", time.Since(start)),
		zap.Error(err))

	switch {
	case err == nil:
		out.ok("Deleted %s tag: %s", s, tag)
		return nil

	case errors.Is(err, ErrRefNotFound):
		out.note("The %s tag %s is already absent", s, tag)
		d.logger().Warn("ref already absent", zap.String("tag", tag), zap.Stringer("step", s))
		return nil

	default:
		return &TagError{Tag: tag, Step: s, Err: err}
	}
}

func (d *Deleter) timeout() time.Duration {
	if d.Timeout <= 0 {
		return DefaultTimeout
	}

	return d.Timeout
}

func (d *Deleter) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}

	return d.Logger
}

// runWithTimeout races fn against timeout. On timeout fn's result is
// discarded and its context is cancelled; the error wraps ErrTimeout.
func runWithTimeout(ctx context.Context, timeout time.Duration, fn func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- fn(ctx) }()

	select {
	case err := <-done:
		if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w after %s: %w", ErrTimeout, timeout, err)
		}
		return err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w after %s", ErrTimeout, timeout)
		}
		return ctx.Err()
	}
}
