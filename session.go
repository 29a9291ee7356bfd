package tagrm

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

const (
	valueYes  = "yes"
	valueBack = "back"
	valueNo   = "no"
)

var confirmChoices = []Choice{
	{Label: "Yes", Value: valueYes},
	{Label: "Back", Value: valueBack},
	{Label: "No", Value: valueNo},
}

type state uint8

const (
	stateChoosing state = iota
	stateConfirming
	stateExited
)

// Session runs one interactive removal: list, classify, select, confirm, delete.
// Backend and Prompter are required; Out and Logger may be nil.
type Session struct {
	Backend  Backend
	Prompter Prompter
	Out      io.Writer
	Logger   *zap.Logger
	Options  Options
}

// Run lists and classifies tags, then drives the selection loop.
//
// It returns an empty report and nil error when there is nothing to do or the
// user exits. Listing failures wrap ErrBackendUnavailable; an aborted
// deletion wraps ErrUserAborted and still returns the partial report.
func (s *Session) Run(ctx context.Context) (*Report, error) {
	opt := s.Options.normalized()
	if err := opt.Validate(); err != nil {
		return nil, err
	}

	log := s.logger()
	out := console{w: s.Out}

	tags, err := ListTags(ctx, s.Backend, opt.Filter)
	if err != nil {
		return nil, err
	}
	log.Debug("tags listed", zap.Int("count", len(tags)), zap.String("filter", opt.Filter))

	g, dropped, err := NewGrouping(opt.Mode, tags)
	if err != nil {
		return nil, err
	}

	for _, t := range dropped {
		out.note("Skipping malformed beta tag %s", t)
		log.Warn("malformed beta tag dropped", zap.String("tag", t))
	}

	if g.Empty() {
		out.note("No valid %s found.", g.Noun())
		return &Report{}, nil
	}

	return s.selectAndDelete(ctx, g, opt)
}

// selectAndDelete is the selection state machine. Going back re-enters the
// menu with the same grouping; nothing is re-fetched.
func (s *Session) selectAndDelete(ctx context.Context, g Grouping, opt Options) (*Report, error) {
	out := console{w: s.Out}
	question := fmt.Sprintf("We've found the following %s. Which ones would you like to delete?", g.Noun())

	var (
		st     = stateChoosing
		sel    Resolution
		report = &Report{}
		runErr error
	)

	for st != stateExited {
		switch st {
		case stateChoosing:
			value, err := s.Prompter.Ask(ctx, question, g.Menu())
			if errors.Is(err, ErrPromptCancelled) || (err == nil && value == valueExit) {
				out.note("Exiting without making any changes.")
				st = stateExited
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("ask selection: %w", err)
			}

			sel, err = g.Resolve(ctx, s.Prompter, value)
			switch {
			case errors.Is(err, ErrNoMatchingTags):
				out.note("Nothing to delete: %v", err)
				continue
			case errors.Is(err, ErrPromptCancelled):
				continue
			case err != nil:
				return nil, fmt.Errorf("resolve selection: %w", err)
			case len(sel.Tags) == 0:
				out.note("Nothing to delete: %v", ErrNoMatchingTags)
				continue
			}

			st = stateConfirming

		case stateConfirming:
			out.note("%s:", sel.Title)
			out.list(sel.Tags)

			if opt.AutoConfirm {
				report, runErr = s.delete(ctx, opt, sel.Tags)
				st = stateExited
				continue
			}

			answer, err := s.Prompter.Ask(ctx, "Are you sure you want to delete these tags?", confirmChoices)
			if err != nil && !errors.Is(err, ErrPromptCancelled) {
				return nil, fmt.Errorf("ask confirmation: %w", err)
			}

			switch {
			case err == nil && answer == valueYes:
				report, runErr = s.delete(ctx, opt, sel.Tags)
				st = stateExited
			case err == nil && answer == valueBack:
				st = stateChoosing
			default:
				out.note("Operation canceled.")
				st = stateExited
			}
		}
	}

	return report, runErr
}

func (s *Session) delete(ctx context.Context, opt Options, tags []string) (*Report, error) {
	d := &Deleter{
		Backend:  s.Backend,
		Prompter: s.Prompter,
		Out:      s.Out,
		Logger:   s.logger(),
		Remote:   opt.Remote,
		Timeout:  opt.Timeout,
	}

	s.logger().Info("deleting tags",
		zap.Stringer("mode", opt.Mode),
		zap.Int("count", len(tags)),
		zap.String("remote", opt.Remote),
		zap.Duration("timeout", opt.Timeout))

	report, err := d.Delete(ctx, tags)

	out := console{w: s.Out}
	if err != nil {
		out.fail("%s, %v", report.Summary(len(tags)), err)
	} else {
		out.ok("Done: %s", report.Summary(len(tags)))
	}

	return report, err
}

func (s *Session) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}

	return s.Logger
}
