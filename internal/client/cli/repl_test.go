package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

type fakeExec struct {
	calls []string
	err   error
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	return f.err
}

func (f *fakeExec) Status(_ context.Context, args []string) error  { return f.record("status", args) }
func (f *fakeExec) AddUser(_ context.Context, args []string) error { return f.record("add-user", args) }
func (f *fakeExec) GetUser(_ context.Context, args []string) error { return f.record("get-user", args) }
func (f *fakeExec) GetUserByToken(_ context.Context, args []string) error {
	return f.record("get-user-by-token", args)
}
func (f *fakeExec) GetUserByEmail(_ context.Context, args []string) error {
	return f.record("get-user-by-email", args)
}
func (f *fakeExec) GetUsers(_ context.Context, args []string) error { return f.record("get-users", args) }
func (f *fakeExec) UpdateUser(_ context.Context, args []string) error {
	return f.record("update-user", args)
}
func (f *fakeExec) DeleteUser(_ context.Context, args []string) error {
	return f.record("delete-user", args)
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	captureOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"status ping",
		"",
		"add-user Ana ana@example.com 30",
		"update-user 1 1 -name Bea",
		"get-users",
		"get-user-by-email ana@example.com",
		"delete-user 1 2",
		"exit",
		"get-user 1",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, bufio.NewScanner(input))

	want := []string{
		"status ping",
		"add-user Ana ana@example.com 30",
		"update-user 1 1 -name Bea",
		"get-users",
		"get-user-by-email ana@example.com",
		"delete-user 1 2",
	}
	if strings.Join(exec.calls, "|") != strings.Join(want, "|") {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
}

func TestRunREPL_ReportsErrorsAndUnknown(t *testing.T) {
	lines := captureOutput(t)

	exec := &fakeExec{err: errors.New("boom")}
	runREPL(context.Background(), exec, bufio.NewScanner(strings.NewReader("get-user 1\nfoobar\n")))

	out := strings.Join(*lines, "\n")
	if !strings.Contains(out, "Error:boom") {
		t.Fatalf("expected error line, got:\n%s", out)
	}
	if !strings.Contains(out, "Unknown command:foobar") {
		t.Fatalf("expected unknown command line, got:\n%s", out)
	}
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	captureOutput(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, bufio.NewScanner(strings.NewReader("status a\nstatus b\n")))

	if len(exec.calls) != 1 {
		t.Fatalf("expected a single call before stopping, got %v", exec.calls)
	}
}
