package indicator

import "testing"

func TestDerive(t *testing.T) {
	tests := []struct {
		label    string
		expected Flags
	}{
		{"", Flags{}},
		{"gevoelig", Flags{}},
		{"ESBL positief", Flags{BRMO: true, ESBL: true}},
		{"esbl", Flags{BRMO: true, ESBL: true}},
		{"BRMO", Flags{BRMO: true}},
		{"VRE", Flags{BRMO: true, VRE: true}},
		{"MRSA", Flags{BRMO: true, MRSA: true}},
		{"Carbapenemase (CARBA)", Flags{BRMO: true, CARBA: true}},
		{"carbapenem resistent", Flags{BRMO: true, CARBA: true}},
		{"ESBL + MRSA", Flags{BRMO: true, ESBL: true, MRSA: true}},
		// Substring matching is not word aware: known false positive.
		{"VRES", Flags{BRMO: true, VRE: true}},
		{"ongevoelig, geen vrees", Flags{BRMO: true, VRE: true}},
	}

	for _, tt := range tests {
		result := Derive(tt.label)
		if result != tt.expected {
			t.Errorf("Derive(%q) = %+v, expected %+v", tt.label, result, tt.expected)
		}
	}
}

func TestDeriveESBLImpliesBRMO(t *testing.T) {
	labels := []string{"ESBL", "esbl-producent", "ESBL positief", "mogelijk Esbl", "xESBLx"}
	for _, label := range labels {
		f := Derive(label)
		if !f.ESBL || !f.BRMO {
			t.Errorf("Derive(%q) = %+v, expected ESBL and BRMO set", label, f)
		}
	}
}

func TestFlagsAny(t *testing.T) {
	if (Flags{}).Any() {
		t.Error("zero Flags reported Any() = true")
	}
	if !(Flags{CARBA: true}).Any() {
		t.Error("Flags{CARBA} reported Any() = false")
	}
}
