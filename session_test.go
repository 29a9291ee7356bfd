package tagrm

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type sessionFixture struct {
	session  *Session
	backend  *fakeBackend
	prompter *scriptedPrompter
	out      *bytes.Buffer
	logs     *observer.ObservedLogs
}

func newSession(t *testing.T, tags string, opt Options, answers ...string) *sessionFixture {
	t.Helper()

	core, logs := observer.New(zap.DebugLevel)
	f := &sessionFixture{
		backend:  &fakeBackend{tags: tags},
		prompter: &scriptedPrompter{t: t, answers: answers},
		out:      &bytes.Buffer{},
		logs:     logs,
	}
	if opt.Timeout == 0 {
		opt.Timeout = time.Second
	}
	f.session = &Session{
		Backend:  f.backend,
		Prompter: f.prompter,
		Out:      f.out,
		Logger:   zap.New(core),
		Options:  opt,
	}

	return f
}

// deletions lists the delete calls made on the backend.
func (f *sessionFixture) deletions() []string {
	var out []string
	for _, c := range f.backend.Calls() {
		if c != "list" {
			out = append(out, c)
		}
	}

	return out
}

func TestSession_ReleaseAllAutoConfirm(t *testing.T) {
	t.Parallel()

	f := newSession(t, "v1.0.0\nv1.1.0\nv2.0.0\nnot-a-version\n",
		Options{Mode: ModeRelease, AutoConfirm: true}, valueAll)

	report, err := f.session.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"v1.0.0", "v1.1.0", "v2.0.0"}, report.Deleted())
	assert.Equal(t, []string{
		"remote:origin:v1.0.0", "local:v1.0.0",
		"remote:origin:v1.1.0", "local:v1.1.0",
		"remote:origin:v2.0.0", "local:v2.0.0",
	}, f.deletions())

	// one menu question, no confirmation
	require.Len(t, f.prompter.questions, 1)
	assert.Contains(t, f.prompter.questions[0], "version tags")
	assert.Contains(t, f.out.String(), "deleted 3 of 3 tags")
}

func TestSession_BetaBranchConfirmYes(t *testing.T) {
	t.Parallel()

	f := newSession(t, "1.0.0-beta-foo.0\n1.0.0-beta-foo.1\n1.0.0-beta-bar.0\n",
		Options{Mode: ModeBeta}, branchValuePrefix+"foo", valueYes)

	report, err := f.session.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"1.0.0-beta-foo.0", "1.0.0-beta-foo.1"}, report.Deleted())
	require.Len(t, f.prompter.menus, 2)
	assert.Equal(t, []string{valueYes, valueBack, valueNo}, values(f.prompter.menus[1]))
	assert.Contains(t, f.out.String(), "1.0.0-beta-foo.1")
}

func TestSession_BackReentersSameMenu(t *testing.T) {
	t.Parallel()

	f := newSession(t, "v1.0.0\nv2.0.0\n", Options{Mode: ModeRelease},
		"v1.0.0", valueBack, "v2.0.0", valueYes)

	report, err := f.session.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"v2.0.0"}, report.Deleted())
	assert.Equal(t, []string{"remote:origin:v2.0.0", "local:v2.0.0"}, f.deletions())

	// listed once: going back does not re-fetch
	assert.Equal(t, "list", f.backend.Calls()[0])
	assert.Equal(t, f.prompter.menus[0], f.prompter.menus[2])
}

func TestSession_NoCancelsWithoutDeleting(t *testing.T) {
	t.Parallel()

	f := newSession(t, "v1.0.0\n", Options{Mode: ModeRelease}, valueAll, valueNo)

	report, err := f.session.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, report.Outcomes)
	assert.Empty(t, f.deletions())
	assert.Contains(t, f.out.String(), "Operation canceled.")
}

func TestSession_ExitAndCancel(t *testing.T) {
	t.Parallel()

	for _, answer := range []string{valueExit, cancelAnswer} {
		f := newSession(t, "v1.0.0\n", Options{Mode: ModeRelease}, answer)

		report, err := f.session.Run(context.Background())
		require.NoError(t, err)
		assert.Empty(t, report.Outcomes)
		assert.Empty(t, f.deletions())
		assert.Contains(t, f.out.String(), "Exiting without making any changes.")
	}
}

func TestSession_EmptyCutoffReturnsToMenu(t *testing.T) {
	t.Parallel()

	f := newSession(t, "v1.0.0\nv1.5.0\nv2.0.0\nv2.1.0\n", Options{Mode: ModeRelease, AutoConfirm: true},
		valueBefore, "v1.0.0", // nothing before the lowest tag
		valueBefore, "v2.0.0")

	report, err := f.session.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"v1.0.0", "v1.5.0"}, report.Deleted())
	assert.Contains(t, f.out.String(), "before version v1.0.0")
	assert.Len(t, f.prompter.questions, 4)
}

func TestSession_NothingClassified(t *testing.T) {
	t.Parallel()

	f := newSession(t, "foo\nbar\n", Options{Mode: ModeBeta})

	report, err := f.session.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, report.Outcomes)
	assert.Empty(t, f.prompter.questions)
	assert.Contains(t, f.out.String(), "No valid beta tags found.")
}

func TestSession_FilterApplied(t *testing.T) {
	t.Parallel()

	f := newSession(t, "1.0.0-beta-foo.0\n1.0.0-beta-bar.0\n",
		Options{Mode: ModeBeta, Filter: "foo"}, valueExit)

	_, err := f.session.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, f.prompter.menus, 1)
	assert.Equal(t, []string{branchValuePrefix + "foo", valueAll, valueExit}, values(f.prompter.menus[0]))
}

func TestSession_MalformedBetaTagsWarn(t *testing.T) {
	t.Parallel()

	f := newSession(t, "1.0.0-beta-foo.0\n1.0.0-beta-foo.1.2\n", Options{Mode: ModeBeta}, valueExit)

	_, err := f.session.Run(context.Background())
	require.NoError(t, err)

	warned := f.logs.FilterMessage("malformed beta tag dropped").All()
	require.Len(t, warned, 1)
	assert.Equal(t, "1.0.0-beta-foo.1.2", warned[0].ContextMap()["tag"])
	assert.Contains(t, f.out.String(), "Skipping malformed beta tag 1.0.0-beta-foo.1.2")
}

func TestSession_AbortPropagates(t *testing.T) {
	t.Parallel()

	f := newSession(t, "v1.0.0\nv1.1.0\nv2.0.0\n", Options{Mode: ModeRelease, AutoConfirm: true},
		valueAll, valueAbort)
	f.backend.remote = func(_ context.Context, tag string, _ int) error {
		if tag == "v1.1.0" {
			return errors.New("permission denied")
		}
		return nil
	}

	report, err := f.session.Run(context.Background())
	require.ErrorIs(t, err, ErrUserAborted)
	assert.Equal(t, []string{"v1.0.0=deleted", "v1.1.0=aborted"}, statuses(report))
	assert.Contains(t, f.out.String(), "deleted 1 of 3 tags")
}

func TestSession_BackendUnavailable(t *testing.T) {
	t.Parallel()

	f := newSession(t, "", Options{Mode: ModeRelease})
	f.backend.listErr = errors.New("fatal: not a git repository")

	report, err := f.session.Run(context.Background())
	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.Empty(t, f.prompter.questions)
}

func TestSession_InvalidOptions(t *testing.T) {
	t.Parallel()

	f := newSession(t, "v1.0.0\n", Options{})

	_, err := f.session.Run(context.Background())
	require.Error(t, err)
	assert.Empty(t, f.backend.Calls())
}
