package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
}

func (f *fakeExec) record(name string, args ...string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args...)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Whoami(ctx context.Context) error { return f.record("whoami") }
func (f *fakeExec) Go(ctx context.Context, p string) error { return f.record("go", p) }
func (f *fakeExec) List(ctx context.Context) error { return f.record("list") }
func (f *fakeExec) Show(ctx context.Context, id string) error { return f.record("show", id) }
func (f *fakeExec) Add(ctx context.Context) error { return f.record("add") }
func (f *fakeExec) Edit(ctx context.Context, id string) error { return f.record("edit", id) }
func (f *fakeExec) Delete(ctx context.Context, id string) error {
	return f.record("delete", id)
}
func (f *fakeExec) ClearError(ctx context.Context) error { return f.record("clear") }

func reader(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer

	runREPL(context.Background(), exec, func() string { return "status" }, reader(
		"help",
		"login",
		"help",
		"l",
		"show 3",
		"add",
		"edit 3",
		"delete 4",
		"clear",
		"go /settings",
		"whoami",
		"logout",
		"foobar",
		"exit",
		"list",
	), &out)

	assert.Equal(t, []string{"login", "list", "show", "add", "edit", "delete", "clear", "go", "whoami", "logout"}, exec.calls)
	assert.Equal(t, []string{"3", "3", "4", "/settings"}, exec.args)

	text := out.String()
	assert.Contains(t, text, helpAnonymous)
	assert.Contains(t, text, helpLoggedIn)
	assert.Contains(t, text, "Unknown command: foobar")
	assert.Contains(t, text, "Bye!")
	assert.Contains(t, text, "userdesk status> ")
}

func TestRunREPL_UsageAndEOF(t *testing.T) {
	exec := &fakeExec{loggedIn: true}
	var out bytes.Buffer

	runREPL(context.Background(), exec, func() string { return "s" }, reader("show", "edit", "delete", "go", "", "   "), &out)

	assert.Empty(t, exec.calls)
	for _, usage := range []string{"show <id>", "edit <id>", "delete <id>", "go <path>"} {
		assert.Contains(t, out.String(), "Usage: "+usage)
	}
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer

	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("whoami")), &out)
	require.Equal(t, []string{"whoami"}, exec.calls)
}

func TestRunREPL_StopsWhenContextDone(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runREPL(ctx, exec, func() string { return "" }, reader("login"), &out)
	assert.Empty(t, exec.calls)
}
