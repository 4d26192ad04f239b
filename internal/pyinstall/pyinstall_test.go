package pyinstall

import (
	"strings"
	"testing"

	"github.com/whisper-tools/whisper-setup/internal/execx"
)

// scriptedPip fails installs for packages listed in failPrimary and
// failFallback, recording every invocation.
type scriptedPip struct {
	failPrimary  map[string]bool
	failFallback map[string]bool
	calls        []string
}

func (s *scriptedPip) run(name string, args ...string) execx.Result {
	s.calls = append(s.calls, strings.Join(append([]string{name}, args...), " "))
	pkg := args[len(args)-1]
	upgrade := len(args) >= 2 && args[1] == "--upgrade"
	if upgrade {
		if s.failFallback[pkg] {
			return execx.Result{OK: false, Stderr: "fallback failed for " + pkg}
		}
		return execx.Result{OK: true}
	}
	if s.failPrimary[pkg] {
		return execx.Result{OK: false, Stderr: "primary failed for " + pkg}
	}
	return execx.Result{OK: true}
}

func TestInstallSucceedsFirstTry(t *testing.T) {
	pip := &scriptedPip{}
	inst := &Installer{Pip: "pip", Run: pip.run}

	out := inst.Install("numpy")
	if !out.OK || out.Fallback {
		t.Fatalf("expected clean success, got %#v", out)
	}
	if len(pip.calls) != 1 || pip.calls[0] != "pip install numpy" {
		t.Fatalf("unexpected invocations: %v", pip.calls)
	}
}

func TestInstallFallbackSucceeds(t *testing.T) {
	pip := &scriptedPip{failPrimary: map[string]bool{"faster-whisper": true}}
	inst := &Installer{Pip: "pip", Run: pip.run}

	out := inst.Install("faster-whisper")
	if !out.OK {
		t.Fatalf("expected fallback success, got %#v", out)
	}
	if !out.Fallback {
		t.Fatal("expected the outcome to record the fallback path")
	}
	if len(pip.calls) != 2 || pip.calls[1] != "pip install --upgrade faster-whisper" {
		t.Fatalf("unexpected invocations: %v", pip.calls)
	}
}

func TestInstallGivesUpAfterOneFallback(t *testing.T) {
	pip := &scriptedPip{
		failPrimary:  map[string]bool{"torch": true},
		failFallback: map[string]bool{"torch": true},
	}
	inst := &Installer{Pip: "pip", Run: pip.run}

	out := inst.Install("torch")
	if out.OK {
		t.Fatal("expected failure when both invocations fail")
	}
	if len(pip.calls) != 2 {
		t.Fatalf("expected exactly 2 invocations (no further retries), got %d", len(pip.calls))
	}
	if !strings.Contains(out.Detail, "fallback failed") {
		t.Fatalf("expected the fallback diagnostic to win, got %q", out.Detail)
	}
}

func TestInstallAllIsBestEffortAndOrdered(t *testing.T) {
	pip := &scriptedPip{
		failPrimary:  map[string]bool{"numpy": true},
		failFallback: map[string]bool{"numpy": true},
	}
	inst := &Installer{Pip: "pip", Run: pip.run}

	pkgs := []string{"torch", "numpy", "tqdm"}
	outcomes := inst.InstallAll(pkgs)

	if len(outcomes) != len(pkgs) {
		t.Fatalf("expected %d outcomes, got %d", len(pkgs), len(outcomes))
	}
	for idx, pkg := range pkgs {
		if outcomes[idx].Package != pkg {
			t.Fatalf("outcome order broken: got %q at %d, want %q", outcomes[idx].Package, idx, pkg)
		}
	}
	if outcomes[1].OK {
		t.Fatal("expected numpy to fail")
	}
	if !outcomes[2].OK {
		t.Fatal("expected the loop to continue past the failure")
	}

	failed := Failed(outcomes)
	if len(failed) != 1 || failed[0].Package != "numpy" {
		t.Fatalf("unexpected failed set: %#v", failed)
	}
}

func TestDefaultPackagesEndWithWhisper(t *testing.T) {
	// openai-whisper must come last so its prerequisites are in place.
	if DefaultPackages[len(DefaultPackages)-1] != "openai-whisper" {
		t.Fatalf("unexpected final package: %q", DefaultPackages[len(DefaultPackages)-1])
	}
}
