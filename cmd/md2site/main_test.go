package main

import (
	"strings"
	"testing"
)

func TestRun_NoArgs(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv()
	if code := run(nil, env); code != ExitUsage {
		t.Errorf("run() = %d, want ExitUsage", code)
	}
	if !strings.Contains(stderr.String(), "Usage: md2site") {
		t.Errorf("stderr missing usage\ngot:\n%s", stderr.String())
	}
}

func TestRun_Version(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv()
	if code := run([]string{"version"}, env); code != ExitSuccess {
		t.Errorf("run() = %d, want ExitSuccess", code)
	}
	if !strings.Contains(stdout.String(), "md2site") {
		t.Errorf("stdout missing version line\ngot:\n%s", stdout.String())
	}
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv()
	if code := run([]string{"help"}, env); code != ExitSuccess {
		t.Errorf("run() = %d, want ExitSuccess", code)
	}
	if !strings.Contains(stdout.String(), "Commands:") {
		t.Errorf("stdout missing command list\ngot:\n%s", stdout.String())
	}
}

func TestRun_HelpBuild(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv()
	if code := run([]string{"help", "build"}, env); code != ExitSuccess {
		t.Errorf("run() = %d, want ExitSuccess", code)
	}
	if !strings.Contains(stdout.String(), "Usage: md2site build") {
		t.Errorf("stdout missing build usage\ngot:\n%s", stdout.String())
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv()
	if code := run([]string{"bogus"}, env); code != ExitUsage {
		t.Errorf("run() = %d, want ExitUsage", code)
	}
	if !strings.Contains(stderr.String(), "Unknown command: bogus") {
		t.Errorf("stderr missing unknown command notice\ngot:\n%s", stderr.String())
	}
}

func TestRun_BuildBadFlag(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv()
	if code := run([]string{"build", "--bogus"}, env); code != ExitUsage {
		t.Errorf("run() = %d, want ExitUsage", code)
	}
}
