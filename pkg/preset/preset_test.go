package preset

import "testing"

func TestResolveKnownPresets(t *testing.T) {
	tests := []struct {
		name      string
		wantCount int
		wantFirst string
	}{
		{"gender", 4, "Woman"},
		{"ethnicity", 6, "White"},
		{"state", 5, "California"},
		{"country", 3, "United States"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options, ok := Resolve(tt.name)
			if !ok {
				t.Fatalf("Resolve(%q) not found", tt.name)
			}
			if len(options) != tt.wantCount {
				t.Errorf("Resolve(%q) returned %d options, want %d", tt.name, len(options), tt.wantCount)
			}
			if options[0].Label != tt.wantFirst {
				t.Errorf("Resolve(%q)[0].Label = %q, want %q", tt.name, options[0].Label, tt.wantFirst)
			}
			if !options[0].ShowValue {
				t.Errorf("preset options should default to showing values")
			}
		})
	}
}

func TestResolveUnknownPreset(t *testing.T) {
	options, ok := Resolve("planets")
	if ok || options != nil {
		t.Errorf("Resolve(planets) = %v, %v; want nil, false", options, ok)
	}
}

func TestResolveReturnsCopy(t *testing.T) {
	first, _ := Resolve("country")
	first[0].Label = "mutated"

	second, _ := Resolve("country")
	if second[0].Label != "United States" {
		t.Error("Resolve must return a copy of the canonical list")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	want := []string{"country", "ethnicity", "gender", "state"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
