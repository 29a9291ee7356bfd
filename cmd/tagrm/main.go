/*
Package main is the tagrm CLI (Tag ReMover): interactive bulk deletion of
git tags, grouped by beta branch or by release version.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/woozymasta/tagrm"
	"github.com/woozymasta/tagrm/internal/gitcli"
	"github.com/woozymasta/tagrm/internal/logging"
	"github.com/woozymasta/tagrm/internal/prompt"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// Exit codes.
const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

type Options struct {
	// betteralign:ignore

	// Grouping mode
	OptionsMode OptionsMode `group:"Mode"`
	// Git access
	OptionsGit OptionsGit `group:"Git"`
	// Behaviour
	OptionsRun OptionsRun `group:"Run"`
}

type OptionsMode struct {
	Beta    bool `short:"b" long:"beta"    description:"Find and remove beta tags grouped by branch"`
	Release bool `short:"r" long:"release" description:"Find and remove release tags grouped by version"`
}

type OptionsGit struct {
	Dir     string        `short:"C" long:"dir"     description:"Repository directory" default:"."`
	Remote  string        `short:"R" long:"remote"  description:"Remote to delete tags from" default:"origin"`
	Timeout time.Duration `short:"t" long:"timeout" description:"Time limit for every git call" default:"5s"`
}

type OptionsRun struct {
	Filter  string `short:"f" long:"filter"  description:"Only consider tags containing this substring"`
	Yes     bool   `short:"y" long:"yes"     description:"Skip confirmation prompts"`
	Verbose bool   `long:"verbose"          description:"Debug logging to stderr"`
	Version bool   `short:"V" long:"version" description:"Print version and exit"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opt Options
	parser := flags.NewParser(&opt, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "tagrm"
	parser.LongDescription = `tagrm - Tag ReMover.
Interactively deletes git tags from the remote and the local repository,
grouped by beta branch (--beta) or by release version (--release).`

	if _, err := parser.ParseArgs(args); err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	if opt.OptionsRun.Version {
		fmt.Fprintln(stdout, "tagrm", version)
		return exitOK
	}

	mode, err := modeOf(opt.OptionsMode)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		parser.WriteHelp(stderr)
		return exitUsage
	}

	log, err := logging.New(opt.OptionsRun.Verbose)
	if err != nil {
		fmt.Fprintf(stderr, "Error: init logger: %v\n", err)
		return exitFail
	}
	defer func() { _ = log.Sync() }()

	o := tagrm.DefaultOptions()
	o.Mode = mode
	o.AutoConfirm = opt.OptionsRun.Yes
	o.Filter = opt.OptionsRun.Filter
	if opt.OptionsGit.Remote != "" {
		o.Remote = opt.OptionsGit.Remote
	}
	if opt.OptionsGit.Timeout > 0 {
		o.Timeout = opt.OptionsGit.Timeout
	}

	s := &tagrm.Session{
		Backend:  gitcli.New(opt.OptionsGit.Dir),
		Prompter: prompt.New(stdin, stdout),
		Out:      stdout,
		Logger:   log,
		Options:  o,
	}

	_, err = s.Run(ctx)
	return exitCode(err, stderr, log)
}

// modeOf enforces exactly one of --beta / --release.
func modeOf(m OptionsMode) (tagrm.Mode, error) {
	switch {
	case m.Beta && m.Release:
		return tagrm.ModeNone, errors.New("--beta and --release are mutually exclusive")
	case m.Beta:
		return tagrm.ModeBeta, nil
	case m.Release:
		return tagrm.ModeRelease, nil
	default:
		return tagrm.ModeNone, errors.New("you must specify an option, e.g., --beta or --release")
	}
}

func exitCode(err error, stderr io.Writer, log *zap.Logger) int {
	switch {
	case err == nil:
		return exitOK

	case errors.Is(err, tagrm.ErrBackendUnavailable):
		fmt.Fprintf(stderr, "Error fetching tags: %v\n", err)

	case errors.Is(err, tagrm.ErrUserAborted):
		fmt.Fprintln(stderr, "Operation aborted by the user.")

	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}

	log.Debug("run failed", zap.Error(err))

	return exitFail
}
