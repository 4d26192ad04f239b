package verify

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/whisper-tools/whisper-setup/internal/execx"
)

func TestImportCheckReportsVersion(t *testing.T) {
	c := &Checker{
		Python: "python3",
		Run: func(name string, args ...string) execx.Result {
			if name != "python3" || args[0] != "-c" {
				t.Fatalf("unexpected invocation: %s %v", name, args)
			}
			if !strings.Contains(args[1], "import whisper") {
				t.Fatalf("snippet should import the module, got %q", args[1])
			}
			return execx.Result{OK: true, Stdout: "20231117\n"}
		},
	}

	version, err := c.ImportCheck("whisper")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if version != "20231117" {
		t.Fatalf("unexpected version: %q", version)
	}
}

func TestImportCheckFailureIsDistinct(t *testing.T) {
	c := &Checker{
		Python: "python3",
		Run: func(name string, args ...string) execx.Result {
			return execx.Result{
				OK:     false,
				Stderr: "Traceback (most recent call last):\n  ...\nModuleNotFoundError: No module named 'whisper'\n",
			}
		},
	}

	_, err := c.ImportCheck("whisper")
	if err == nil {
		t.Fatal("expected import error")
	}
	if !strings.Contains(err.Error(), "failed to import whisper") {
		t.Fatalf("error should identify the import phase, got %v", err)
	}
	if !strings.Contains(err.Error(), "ModuleNotFoundError") {
		t.Fatalf("error should carry the last traceback line, got %v", err)
	}
}

func TestModelCheckFailure(t *testing.T) {
	c := &Checker{
		Python: "python3",
		Run: func(name string, args ...string) execx.Result {
			if !strings.Contains(args[1], `load_model("base.en")`) {
				t.Fatalf("snippet should load the reference model, got %q", args[1])
			}
			return execx.Result{OK: false, Stderr: "RuntimeError: checksum mismatch\n"}
		},
	}

	err := c.ModelCheck("whisper", "base.en")
	if err == nil {
		t.Fatal("expected model load error")
	}
	if !strings.Contains(err.Error(), "failed to load model base.en") {
		t.Fatalf("error should identify the model phase, got %v", err)
	}
}

func TestModulePresent(t *testing.T) {
	present := &Checker{Python: "python3", Run: func(string, ...string) execx.Result {
		return execx.Result{OK: true}
	}}
	absent := &Checker{Python: "python3", Run: func(string, ...string) execx.Result {
		return execx.Result{OK: false, Stderr: "ModuleNotFoundError"}
	}}

	if !present.ModulePresent("tiktoken") {
		t.Fatal("expected tiktoken to be reported present")
	}
	if absent.ModulePresent("tiktoken") {
		t.Fatal("expected tiktoken to be reported absent")
	}
}

func TestResolvePythonPrefersVenv(t *testing.T) {
	dir := t.TempDir()
	venvBin := filepath.Join(dir, ".venv", "bin")
	if err := os.MkdirAll(venvBin, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	venvPython := filepath.Join(venvBin, "python3")
	if err := os.WriteFile(venvPython, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write: %v", err)
	}

	if got := resolvePythonIn(dir, "python3"); got != venvPython {
		t.Fatalf("expected venv interpreter, got %q", got)
	}
}

func TestResolvePythonFallsBack(t *testing.T) {
	if got := resolvePythonIn(t.TempDir(), "python3"); got != "python3" {
		t.Fatalf("expected fallback interpreter, got %q", got)
	}
}

func TestResolvePipMatchesVenvInterpreter(t *testing.T) {
	dir := t.TempDir()
	venvBin := filepath.Join(dir, ".venv", "bin")
	if err := os.MkdirAll(venvBin, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, name := range []string{"python3", "pip3"} {
		if err := os.WriteFile(filepath.Join(venvBin, name), []byte("#!/bin/sh\n"), 0o755); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	// Install and verification must land in the same environment.
	if got := resolvePipIn(dir, "pip3"); got != filepath.Join(venvBin, "pip3") {
		t.Fatalf("expected venv pip, got %q", got)
	}
	if got := resolvePythonIn(dir, "python3"); got != filepath.Join(venvBin, "python3") {
		t.Fatalf("expected venv interpreter, got %q", got)
	}
}

func TestResolvePipFallsBack(t *testing.T) {
	if got := resolvePipIn(t.TempDir(), "pip3"); got != "pip3" {
		t.Fatalf("expected fallback pip, got %q", got)
	}
}
