package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jeffrom/czconfig/config"
)

const scenarioConfig = `types:
  - value: feat
    name: "feat: add"
  - value: fix
    name: "fix: bug"
scopes: [core]
allowCustomScopes: true
allowBreakingChanges: [feat, fix]
subjectLimit: 100
`

type testTerm struct {
	config.TerminalIO
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestTerm(stdin string) *testTerm {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &testTerm{
		TerminalIO: config.TerminalIO{Stdin: strings.NewReader(stdin), Stdout: stdout, Stderr: stderr},
		stdout:     stdout,
		stderr:     stderr,
	}
}

// inTempDir runs the test in a fresh directory containing the given files.
func inTempDir(t *testing.T, files map[string]string) string {
	t.Helper()
	currDir, err := os.Getwd()
	die(err)
	tmpDir := t.TempDir()
	for name, content := range files {
		die(os.WriteFile(filepath.Join(tmpDir, name), []byte(content), 0644))
	}
	die(os.Chdir(tmpDir))
	t.Cleanup(func() { die(os.Chdir(currDir)) })
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "en_US.UTF-8")
	return tmpDir
}

func runCzconfig(t *testing.T, term *testTerm, args ...string) error {
	t.Helper()
	t.Logf("czconfig %s", strings.Join(args, " "))
	err := runWithTerminalIO(append([]string{"czconfig"}, args...), &term.TerminalIO)
	t.Logf("stdout: %s", term.stdout.String())
	return err
}

func die(err error) {
	if err != nil {
		panic(err)
	}
}

func TestValidConfig(t *testing.T) {
	inTempDir(t, map[string]string{".cz-config.yaml": scenarioConfig})
	term := newTestTerm("")
	if err := runCzconfig(t, term); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(term.stdout.String(), ".cz-config.yaml: OK") {
		t.Fatalf("unexpected output %q", term.stdout.String())
	}
}

func TestConfigFoundInParent(t *testing.T) {
	dir := inTempDir(t, map[string]string{".cz-config.yaml": scenarioConfig})
	nested := filepath.Join(dir, "src", "lispy")
	die(os.MkdirAll(nested, 0755))
	die(os.Chdir(nested))

	if err := runCzconfig(t, newTestTerm("")); err != nil {
		t.Fatal(err)
	}
}

func TestInvalidConfig(t *testing.T) {
	tcs := []struct {
		name    string
		file    string
		content string
		expect  error
	}{
		{
			name:    "empty-types",
			file:    ".cz-config.yaml",
			content: "types: []\n",
			expect:  config.ErrSchemaViolation,
		},
		{
			name:    "zero-subject-limit",
			file:    ".cz-config.json",
			content: `{"types": [{"value": "feat", "name": "feat"}], "subjectLimit": 0}`,
			expect:  config.ErrSchemaViolation,
		},
		{
			name:    "unknown-breaking-type",
			file:    ".cz-config.toml",
			content: "allowBreakingChanges = [\"fix\"]\n[[types]]\nvalue = \"feat\"\nname = \"feat\"\n",
			expect:  config.ErrSchemaViolation,
		},
		{
			name:    "malformed",
			file:    ".cz-config.yaml",
			content: "types: [\n",
			expect:  config.ErrMalformedConfig,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			inTempDir(t, map[string]string{tc.file: tc.content})
			err := runCzconfig(t, newTestTerm(""))
			if err == nil {
				t.Fatal("expected config to be invalid")
			}
			if !errors.Is(err, tc.expect) {
				t.Fatalf("expected %v, got %v", tc.expect, err)
			}
			t.Log(err)
		})
	}
}

func TestNoConfig(t *testing.T) {
	inTempDir(t, nil)
	err := runCzconfig(t, newTestTerm(""))
	if err == nil || !strings.Contains(err.Error(), ".cz-config.yaml") {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestCompose(t *testing.T) {
	inTempDir(t, map[string]string{".cz-config.yaml": scenarioConfig})
	term := newTestTerm("")
	if err := runCzconfig(t, term, "--compose", "--type", "feat", "--scope", "core", "--subject", "add widget"); err != nil {
		t.Fatal(err)
	}
	if got := term.stdout.String(); got != "feat(core): add widget\n" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestComposeSubjectLimitOverride(t *testing.T) {
	inTempDir(t, map[string]string{".cz-config.yaml": scenarioConfig})
	err := runCzconfig(t, newTestTerm(""), "--compose", "-t", "fix", "-m", "a subject that is too long", "--subject-limit", "10")
	if err == nil || !strings.Contains(err.Error(), "limit is 10") {
		t.Fatalf("expected subject to be rejected, got %v", err)
	}

	for _, limit := range []string{"0", "-1"} {
		err := runCzconfig(t, newTestTerm(""), "--subject-limit", limit, "--compose", "-t", "feat", "-m", "add widget")
		if !errors.Is(err, config.ErrSchemaViolation) {
			t.Fatalf("--subject-limit %s: expected schema violation, got %v", limit, err)
		}
		if !strings.Contains(err.Error(), "subjectLimit") {
			t.Fatalf("--subject-limit %s: expected error to name subjectLimit, got %v", limit, err)
		}
	}
}

func TestCheckCommit(t *testing.T) {
	inTempDir(t, map[string]string{".cz-config.yaml": scenarioConfig})

	term := newTestTerm("")
	if err := runCzconfig(t, term, "--check-commit", "feat(core): add widget", "--check-commit", "fix: other"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(term.stdout.String(), "2 commits OK") {
		t.Fatalf("unexpected output %q", term.stdout.String())
	}

	term = newTestTerm("")
	err := runCzconfig(t, term, "--check-commit", "perf: cool")
	if err == nil {
		t.Fatal("expected check to fail")
	}
	if !strings.Contains(term.stdout.String(), "perf: cool\n  unknown commit type") {
		t.Fatalf("unexpected failure output %q", term.stdout.String())
	}
}

func TestCheckCommitStdin(t *testing.T) {
	inTempDir(t, map[string]string{".cz-config.yaml": scenarioConfig})
	term := newTestTerm("fix(core): fix widget\n\n# git comment\n")
	if err := runCzconfig(t, term, "--check-commit", "-"); err != nil {
		t.Fatal(err)
	}
}

func TestCheckCommitFile(t *testing.T) {
	dir := inTempDir(t, map[string]string{
		".cz-config.yaml": scenarioConfig,
		"COMMIT_EDITMSG":  "fix: " + strings.Repeat("x", 101) + "\n",
	})
	err := runCzconfig(t, newTestTerm(""), "--check-commit-file", filepath.Join(dir, "COMMIT_EDITMSG"))
	if err == nil {
		t.Fatal("expected long subject to fail")
	}
}

func TestPrintConfig(t *testing.T) {
	dir := inTempDir(t, map[string]string{".cz-config.yaml": scenarioConfig})
	term := newTestTerm("")
	if err := runCzconfig(t, term, "--print-config", "--format", "toml"); err != nil {
		t.Fatal(err)
	}

	p := filepath.Join(dir, "printed.toml")
	die(os.WriteFile(p, term.stdout.Bytes(), 0644))
	printed, err := config.Load(p)
	if err != nil {
		t.Fatal(err)
	}
	orig, err := config.Load(filepath.Join(dir, ".cz-config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if printed.SubjectLimit() != orig.SubjectLimit() || len(printed.Types()) != len(orig.Types()) {
		t.Fatalf("printed config differs:\n%s", term.stdout.String())
	}
}

func TestInit(t *testing.T) {
	dir := inTempDir(t, nil)
	if err := runCzconfig(t, newTestTerm(""), "--init"); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(filepath.Join(dir, ".cz-config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Types()) != 10 {
		t.Fatalf("expected default types, got %d", len(cfg.Types()))
	}

	if err := runCzconfig(t, newTestTerm(""), "--init"); err == nil {
		t.Fatal("expected second init to fail")
	}

	term := newTestTerm("")
	if err := runCzconfig(t, term, "--compose", "-t", "feat", "-s", "interpreter", "-m", "add let form"); err != nil {
		t.Fatal(err)
	}
	if got := term.stdout.String(); got != "✨ feat(interpreter): add let form\n" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestLang(t *testing.T) {
	inTempDir(t, map[string]string{".cz-config.yaml": scenarioConfig})
	term := newTestTerm("")
	if err := runCzconfig(t, term, "--lang", "ja"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(term.stdout.String(), "問題ありません") {
		t.Fatalf("unexpected output %q", term.stdout.String())
	}
}
