package locator

import "testing"

func TestDeriveImplementation(t *testing.T) {
	cases := []struct {
		name string
		key  string
		mask string
		want string
	}{
		{"leading marker", "app.IWidget", "I*", "app.Widget"},
		{"trailing marker", "repo.ManagerRepositoryInterface", "*Interface", "repo.ManagerRepository"},
		{"deep qualifier", "github.com/acme/app/repo.IEmployeeRepository", "I*", "github.com/acme/app/repo.EmployeeRepository"},
		{"unqualified key", "IWidget", "I*", "Widget"},
		{"marker absent leaves name unchanged", "app.Widget", "*Interface", "app.Widget"},
		{"both sides", "app.IWidgetContract", "I*Contract", "app.Widget"},
		{"mask without placeholder degrades to prefix strip", "app.IWidget", "I", "app.Widget"},
		{"marker only name is not stripped to empty", "app.I", "I*", "app.I"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := deriveImplementation(tc.key, tc.mask)
			if got != tc.want {
				t.Errorf("deriveImplementation(%q, %q) = %q, want %q", tc.key, tc.mask, got, tc.want)
			}
		})
	}
}

func TestSplitKey(t *testing.T) {
	qualifier, simple := splitKey("github.com/acme/app.IWidget")
	if qualifier != "github.com/acme/app" || simple != "IWidget" {
		t.Errorf("splitKey: got (%q, %q)", qualifier, simple)
	}

	qualifier, simple = splitKey("IWidget")
	if qualifier != "" || simple != "IWidget" {
		t.Errorf("splitKey without dot: got (%q, %q)", qualifier, simple)
	}
}
