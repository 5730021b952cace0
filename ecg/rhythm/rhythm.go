package rhythm

import "strings"

// Descriptor describes one selectable rhythm.
type Descriptor struct {
	// Label is the display string, unique across the catalog.
	Label string

	// MethodID is the identifier handed to the synthesis provider.
	// The catalog key "normal" is an internal name; request builders
	// translate it to the provider's own normal-rhythm identifier.
	MethodID string

	// DefaultHeartRate is the BPM value the rate control is pre-filled
	// with when this rhythm is selected.
	DefaultHeartRate int

	// HeartRateControllable reports whether the rate control has any
	// effect. False only for ventricular fibrillation, whose chaotic
	// activity has no rate to control.
	HeartRateControllable bool
}

// catalog is the presentation-ordered source table. Default rates and
// controllability are derived, not stored, so the derivation rules stay
// testable on their own.
var catalog = []struct {
	label    string
	methodID string
}{
	{"Normal Sinus Rhythm", "normal"},

	// Premature beats.
	{"Premature Atrial Contraction (PAC)", "pac"},
	{"Premature Ventricular Contraction (PVC)", "pvc"},

	// Supraventricular tachycardias.
	{"Atrial Fibrillation (AFib)", "afib"},
	{"Atrial Flutter (AFL)", "afl"},
	{"Supraventricular Tachycardia (SVT/PSVT)", "svt"},

	// Ventricular tachycardias.
	{"Ventricular Tachycardia (VT)", "vt"},
	{"Ventricular Fibrillation (VF)", "vf"},

	// AV blocks.
	{"1st-Degree AV Block", "avb1"},
	{"2nd-Degree AV Block (Wenckebach)", "avb2"},
	{"3rd-Degree (Complete) AV Block", "avb3"},
}

// Catalog returns all selectable rhythms in presentation order.
// The returned slice is a fresh copy on every call.
func Catalog() []Descriptor {
	out := make([]Descriptor, len(catalog))
	for i, e := range catalog {
		out[i] = Descriptor{
			Label:                 e.label,
			MethodID:              e.methodID,
			DefaultHeartRate:      DefaultHeartRate(e.label),
			HeartRateControllable: e.methodID != "vf",
		}
	}
	return out
}

// Find returns the descriptor whose label matches exactly.
func Find(label string) (Descriptor, bool) {
	for _, e := range catalog {
		if e.label == label {
			return Descriptor{
				Label:                 e.label,
				MethodID:              e.methodID,
				DefaultHeartRate:      DefaultHeartRate(e.label),
				HeartRateControllable: e.methodID != "vf",
			}, true
		}
	}
	return Descriptor{}, false
}

// DefaultHeartRate maps a rhythm label to its pre-filled heart rate.
//
// The rules match on label substrings, first match wins:
//
//	"AFib"                 → 90
//	"SVT"                  → 160
//	"VT"                   → 180
//	"Block", "Bradycardia" → 50
//	anything else          → 70
//
// The order matters: "SVT/PSVT" contains "VT" and must resolve to the
// supraventricular default, not the ventricular one.
func DefaultHeartRate(label string) int {
	switch {
	case strings.Contains(label, "AFib"):
		return 90
	case strings.Contains(label, "SVT"):
		return 160
	case strings.Contains(label, "VT"):
		return 180
	case strings.Contains(label, "Block"), strings.Contains(label, "Bradycardia"):
		return 50
	default:
		return 70
	}
}
