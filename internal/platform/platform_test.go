package platform

import "testing"

func markers(present ...string) func(string) bool {
	return func(path string) bool {
		for _, p := range present {
			if p == path {
				return true
			}
		}
		return false
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name    string
		goos    string
		markers func(string) bool
		want    Category
	}{
		{"windows", "windows", markers(), Windows},
		{"windows mixed case", "Windows", markers(), Windows},
		{"darwin", "darwin", markers(), MacOS},
		{"debian", "linux", markers("/etc/debian_version"), LinuxDebian},
		{"arch", "linux", markers("/etc/arch-release"), LinuxArch},
		{"debian wins over arch", "linux", markers("/etc/debian_version", "/etc/arch-release"), LinuxDebian},
		{"bare linux", "linux", markers(), LinuxOther},
		{"freebsd", "freebsd", markers(), Unsupported},
		{"empty", "", markers(), Unsupported},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.goos, tc.markers); got != tc.want {
				t.Fatalf("Classify(%q) = %q, want %q", tc.goos, got, tc.want)
			}
		})
	}
}

func TestEveryCategoryHasAPlan(t *testing.T) {
	for _, c := range []Category{Windows, MacOS, LinuxDebian, LinuxArch, LinuxOther, Unsupported} {
		plan := PlanFor(c)
		if plan.Category != c {
			t.Errorf("plan for %q reports category %q", c, plan.Category)
		}
		if !plan.Automated() && len(plan.Guidance) == 0 {
			t.Errorf("plan for %q has neither steps nor guidance", c)
		}
	}
}

func TestDebianPlanIsTwoStepInOrder(t *testing.T) {
	plan := PlanFor(LinuxDebian)
	if len(plan.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(plan.Steps))
	}
	if plan.Steps[0].Name != "apt update" || plan.Steps[1].Name != "apt install" {
		t.Fatalf("unexpected step order: %q then %q", plan.Steps[0].Name, plan.Steps[1].Name)
	}
}

func TestMacOSPlanRequiresHomebrew(t *testing.T) {
	plan := PlanFor(MacOS)
	if plan.Prerequisite != "brew" {
		t.Fatalf("expected brew prerequisite, got %q", plan.Prerequisite)
	}
	if len(plan.PrereqGuidance) == 0 {
		t.Fatal("expected guidance for a missing Homebrew")
	}
}

func TestManualOnlyPlans(t *testing.T) {
	for _, c := range []Category{Windows, LinuxOther, Unsupported} {
		plan := PlanFor(c)
		if plan.Automated() {
			t.Errorf("expected no automated path for %q", c)
		}
	}
}

func TestPlanForUnknownCategory(t *testing.T) {
	plan := PlanFor(Category("beos"))
	if plan.Category != Unsupported {
		t.Fatalf("unknown category should map to unsupported, got %q", plan.Category)
	}
}
