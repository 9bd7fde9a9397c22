package ui

import "testing"

func TestGetTheme(t *testing.T) {
	if got := GetTheme("Slate").Name; got != "Slate" {
		t.Fatalf("GetTheme(Slate).Name = %q, want Slate", got)
	}
	if got := GetTheme("NoSuchTheme").Name; got != "Dracula" {
		t.Fatalf("GetTheme fallback = %q, want Dracula", got)
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	names := ThemeNames()
	if len(names) < 2 {
		t.Fatalf("ThemeNames() = %v, want at least two themes", names)
	}

	seen := map[string]bool{}
	current := names[0]
	for range names {
		seen[current] = true
		current = NextTheme(current)
	}
	if current != names[0] {
		t.Fatalf("cycle ended at %q, want %q", current, names[0])
	}
	for _, name := range names {
		if !seen[name] {
			t.Fatalf("theme %q never reached in cycle", name)
		}
	}
}

func TestNextTheme_UnknownResetsToFirst(t *testing.T) {
	if got := NextTheme("NoSuchTheme"); got != ThemeNames()[0] {
		t.Fatalf("NextTheme(unknown) = %q, want %q", got, ThemeNames()[0])
	}
}
