// Package verify smoke-tests an installed transcription library.
//
// Two checks run in-process on the Python side: an import (is the
// package on the interpreter path at all) and an optional model load
// (is it functionally usable). The two failure modes are reported
// separately and neither rolls anything back.
package verify

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/whisper-tools/whisper-setup/internal/execx"
)

// DefaultModel is the small reference model used for the functional check.
const DefaultModel = "base.en"

// Checker runs verification snippets through a Python interpreter.
type Checker struct {
	Python string
	Run    execx.RunFunc
}

// New returns a Checker for the given interpreter, preferring a
// project-local virtualenv when one exists in the working directory.
func New(python string) *Checker {
	return &Checker{Python: ResolvePython(python), Run: execx.Run}
}

// ResolvePython prefers a .venv interpreter under the current directory
// over the given fallback, so verification sees the same environment
// the install step populated.
func ResolvePython(fallback string) string {
	return resolvePythonIn(".", fallback)
}

// ResolvePip applies the same preference to pip. Installs and
// verification must target the same environment: a system pip filling
// site-packages the .venv interpreter never sees would make a correct
// install fail its own smoke test.
func ResolvePip(fallback string) string {
	return resolvePipIn(".", fallback)
}

func resolvePythonIn(dir, fallback string) string {
	return resolveVenvTool(dir, []string{"python3", "python"}, fallback)
}

func resolvePipIn(dir, fallback string) string {
	return resolveVenvTool(dir, []string{"pip3", "pip"}, fallback)
}

func resolveVenvTool(dir string, names []string, fallback string) string {
	for _, name := range names {
		cand := filepath.Join(dir, ".venv", "bin", name)
		if info, err := os.Stat(cand); err == nil && !info.IsDir() {
			return cand
		}
	}
	return fallback
}

// ImportCheck imports the module and returns its reported version.
// An error here means the package is not even importable.
func (c *Checker) ImportCheck(module string) (string, error) {
	snippet := fmt.Sprintf("import %s; print(getattr(%s, '__version__', 'unknown'))", module, module)
	res := c.Run(c.Python, "-c", snippet)
	if !res.OK {
		return "", fmt.Errorf("failed to import %s: %s", module, shortDetail(res))
	}
	return res.FirstLine(), nil
}

// ModelCheck loads the reference model to confirm the installed package
// is functionally usable, not just importable. The first run downloads
// the model, so this can take a while.
func (c *Checker) ModelCheck(module, model string) error {
	snippet := fmt.Sprintf("import %s; %s.load_model(%q)", module, module, model)
	res := c.Run(c.Python, "-c", snippet)
	if !res.OK {
		return fmt.Errorf("failed to load model %s: %s", model, shortDetail(res))
	}
	return nil
}

// ModulePresent reports whether the module imports cleanly. Used for
// advisory probes (tiktoken) where no version is needed.
func (c *Checker) ModulePresent(module string) bool {
	res := c.Run(c.Python, "-c", "import "+module)
	return res.OK
}

func shortDetail(res execx.Result) string {
	detail := strings.TrimSpace(res.Stderr)
	if detail == "" {
		detail = strings.TrimSpace(res.Stdout)
	}
	if detail == "" && res.Err != nil {
		detail = res.Err.Error()
	}
	// Python tracebacks end with the error line; that is the useful part.
	lines := strings.Split(detail, "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
