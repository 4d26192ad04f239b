package platform

// Step is one non-interactive package-manager invocation.
type Step struct {
	Name    string
	Command string
	Args    []string
}

// Plan describes how ffmpeg gets provisioned for one platform category.
// Categories without an automated path carry only Guidance. The macOS
// plan additionally requires Homebrew on PATH before its steps run;
// this tool never installs the prerequisite itself.
type Plan struct {
	Category       Category
	Prerequisite   string // binary that must resolve before Steps run
	PrereqGuidance []string
	Steps          []Step
	Guidance       []string // manual instructions shown when automation is unavailable or fails
}

// Automated reports whether the plan carries package-manager steps.
func (p Plan) Automated() bool {
	return len(p.Steps) > 0
}

// The asymmetry between fully automated Debian/Arch installs and the
// guidance-only Windows path is deliberate: those are the platforms
// with a reliable non-interactive package manager already present.
var plans = map[Category]Plan{
	Windows: {
		Category: Windows,
		Guidance: []string{
			"Please install ffmpeg manually:",
			"Option 1: Using Chocolatey: choco install ffmpeg",
			"Option 2: Using Scoop: scoop install ffmpeg",
			"Option 3: Download from https://ffmpeg.org/download.html",
		},
	},
	MacOS: {
		Category:     MacOS,
		Prerequisite: "brew",
		PrereqGuidance: []string{
			"Please install Homebrew (https://brew.sh/) and then run: brew install ffmpeg",
		},
		Steps: []Step{
			{Name: "brew install", Command: "brew", Args: []string{"install", "ffmpeg"}},
		},
		Guidance: []string{
			"Failed to install ffmpeg. Please install it manually: brew install ffmpeg",
		},
	},
	LinuxDebian: {
		Category: LinuxDebian,
		Steps: []Step{
			{Name: "apt update", Command: "sudo", Args: []string{"apt", "update"}},
			{Name: "apt install", Command: "sudo", Args: []string{"apt", "install", "-y", "ffmpeg"}},
		},
		Guidance: []string{
			"Failed to install ffmpeg. Please install it manually: sudo apt install ffmpeg",
		},
	},
	LinuxArch: {
		Category: LinuxArch,
		Steps: []Step{
			{Name: "pacman install", Command: "sudo", Args: []string{"pacman", "-S", "--noconfirm", "ffmpeg"}},
		},
		Guidance: []string{
			"Failed to install ffmpeg. Please install it manually: sudo pacman -S ffmpeg",
		},
	},
	LinuxOther: {
		Category: LinuxOther,
		Guidance: []string{
			"Please install ffmpeg manually for your Linux distribution",
		},
	},
	Unsupported: {
		Category: Unsupported,
		Guidance: []string{
			"Unsupported platform. Please install ffmpeg manually:",
			"Download from https://ffmpeg.org/download.html",
		},
	},
}

// PlanFor returns the install plan for the category. Unknown categories
// fall back to the unsupported plan.
func PlanFor(c Category) Plan {
	if p, ok := plans[c]; ok {
		return p
	}
	return plans[Unsupported]
}
