package rhythm

import (
	"strings"
	"testing"
)

func TestCatalogOrder(t *testing.T) {
	want := []string{
		"Normal Sinus Rhythm",
		"Premature Atrial Contraction (PAC)",
		"Premature Ventricular Contraction (PVC)",
		"Atrial Fibrillation (AFib)",
		"Atrial Flutter (AFL)",
		"Supraventricular Tachycardia (SVT/PSVT)",
		"Ventricular Tachycardia (VT)",
		"Ventricular Fibrillation (VF)",
		"1st-Degree AV Block",
		"2nd-Degree AV Block (Wenckebach)",
		"3rd-Degree (Complete) AV Block",
	}

	got := Catalog()
	if len(got) != len(want) {
		t.Fatalf("Catalog() returned %d entries, want %d", len(got), len(want))
	}
	for i, d := range got {
		if d.Label != want[i] {
			t.Errorf("Catalog()[%d].Label = %q, want %q", i, d.Label, want[i])
		}
	}
}

func TestCatalogMethodIDs(t *testing.T) {
	want := map[string]string{
		"Normal Sinus Rhythm":                     "normal",
		"Premature Atrial Contraction (PAC)":      "pac",
		"Premature Ventricular Contraction (PVC)": "pvc",
		"Atrial Fibrillation (AFib)":              "afib",
		"Atrial Flutter (AFL)":                    "afl",
		"Supraventricular Tachycardia (SVT/PSVT)": "svt",
		"Ventricular Tachycardia (VT)":            "vt",
		"Ventricular Fibrillation (VF)":           "vf",
		"1st-Degree AV Block":                     "avb1",
		"2nd-Degree AV Block (Wenckebach)":        "avb2",
		"3rd-Degree (Complete) AV Block":          "avb3",
	}

	seen := make(map[string]bool)
	for _, d := range Catalog() {
		if seen[d.MethodID] {
			t.Errorf("method identifier %q appears more than once", d.MethodID)
		}
		seen[d.MethodID] = true

		if want[d.Label] != d.MethodID {
			t.Errorf("Catalog() maps %q to %q, want %q", d.Label, d.MethodID, want[d.Label])
		}
	}
}

func TestCatalogReturnsFreshCopy(t *testing.T) {
	first := Catalog()
	first[0].Label = "mutated"
	first[0].DefaultHeartRate = -1

	second := Catalog()
	if second[0].Label != "Normal Sinus Rhythm" {
		t.Errorf("mutating a returned catalog leaked into a later call: got %q", second[0].Label)
	}
	if second[0].DefaultHeartRate != 70 {
		t.Errorf("mutating a returned catalog leaked into a later call: got %d", second[0].DefaultHeartRate)
	}
}

func TestDefaultHeartRate(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"Normal Sinus Rhythm", 70},
		{"Premature Atrial Contraction (PAC)", 70},
		{"Premature Ventricular Contraction (PVC)", 70},
		{"Atrial Fibrillation (AFib)", 90},
		{"Atrial Flutter (AFL)", 70},
		// "SVT/PSVT" also contains "VT"; the SVT rule must win.
		{"Supraventricular Tachycardia (SVT/PSVT)", 160},
		{"Ventricular Tachycardia (VT)", 180},
		{"Ventricular Fibrillation (VF)", 70},
		{"1st-Degree AV Block", 50},
		{"2nd-Degree AV Block (Wenckebach)", 50},
		{"3rd-Degree (Complete) AV Block", 50},
		{"Sinus Bradycardia", 50},
		{"Something Unlisted", 70},
	}

	for _, tc := range tests {
		if got := DefaultHeartRate(tc.label); got != tc.want {
			t.Errorf("DefaultHeartRate(%q) = %d, want %d", tc.label, got, tc.want)
		}
	}
}

func TestHeartRateControllable(t *testing.T) {
	for _, d := range Catalog() {
		want := d.MethodID != "vf"
		if d.HeartRateControllable != want {
			t.Errorf("%s: HeartRateControllable = %v, want %v", d.Label, d.HeartRateControllable, want)
		}
	}
}

func TestFind(t *testing.T) {
	d, ok := Find("Atrial Flutter (AFL)")
	if !ok {
		t.Fatal("Find did not locate a catalog label")
	}
	if d.MethodID != "afl" {
		t.Errorf("Find returned method %q, want %q", d.MethodID, "afl")
	}

	if _, ok := Find("Torsades de Pointes"); ok {
		t.Error("Find reported a descriptor for a label outside the catalog")
	}
}

func TestNoteCoversCatalog(t *testing.T) {
	for _, d := range Catalog() {
		note := Note(d.MethodID)
		if note == "" {
			t.Errorf("Note(%q) is empty", d.MethodID)
			continue
		}
		if !strings.Contains(note, "Look for") && d.MethodID != "normal" {
			t.Errorf("Note(%q) is missing its reading guidance", d.MethodID)
		}
	}

	if Note("nonesuch") != "" {
		t.Error("Note returned text for an unknown method identifier")
	}
}
