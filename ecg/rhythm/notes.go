package rhythm

// notes holds the per-rhythm teaching text shown next to the chart,
// keyed by catalog method identifier.
var notes = map[string]string{
	"normal": "Normal Sinus Rhythm.\n" +
		"P wave: present before every QRS complex.\n" +
		"QRS complex: narrow.\n" +
		"Rhythm: regular, with constant R-R intervals.",

	"pac": "Premature Atrial Contraction (PAC).\n" +
		"What it is: an early beat originating in the atria.\n" +
		"Look for: a normal-looking, narrow QRS complex arriving earlier than " +
		"expected; the P wave of the early beat may look different or hide in " +
		"the preceding T wave. A short pause follows before the rhythm resumes.",

	"pvc": "Premature Ventricular Contraction (PVC).\n" +
		"What it is: an early beat originating in the ventricles.\n" +
		"Look for: a beat arriving early whose QRS complex is wide and bizarre " +
		"compared with the surrounding normal beats, typically followed by a " +
		"full compensatory pause.",

	"afib": "Atrial Fibrillation (AFib).\n" +
		"What it is: chaotic, uncoordinated electrical activity in the atria.\n" +
		"Look for: no P waves, only low-amplitude fibrillatory waves on the " +
		"baseline, and R-R intervals that are irregularly irregular, with no " +
		"repeating pattern.",

	"afl": "Atrial Flutter (AFL).\n" +
		"What it is: a fast, organized re-entry circuit in the atria.\n" +
		"Look for: a sawtooth flutter-wave pattern at roughly 300 per minute " +
		"in place of P waves. The ventricular response may be regular or " +
		"irregular depending on how many flutter waves conduct.",

	"svt": "Supraventricular Tachycardia (SVT/PSVT).\n" +
		"What it is: a fast, regular rhythm originating above the ventricles, " +
		"typically 150-250 BPM.\n" +
		"Look for: a rapid, narrow-QRS rhythm; P waves are usually buried in " +
		"the QRS complexes and cannot be identified.",

	"vt": "Ventricular Tachycardia (VT).\n" +
		"What it is: a fast, life-threatening rhythm originating in the " +
		"ventricles.\n" +
		"Look for: a rapid run of wide, bizarre QRS complexes, like a string " +
		"of PVCs. This is a medical emergency.",

	"vf": "Ventricular Fibrillation (VF).\n" +
		"What it is: chaotic, uncoordinated quivering of the ventricles; the " +
		"heart pumps no blood.\n" +
		"Look for: a disorganized, chaotic waveform with no identifiable P " +
		"waves, QRS complexes or T waves. This is cardiac arrest and needs " +
		"immediate defibrillation.",

	"avb1": "1st-Degree AV Block.\n" +
		"What it is: a conduction delay between the atria and the ventricles.\n" +
		"Look for: a regular rhythm whose PR interval is consistently " +
		"prolonged beyond 0.20 seconds; every P wave still conducts.",

	"avb2": "2nd-Degree AV Block (Type I, Wenckebach).\n" +
		"What it is: the AV delay grows with each beat until one impulse is " +
		"blocked entirely.\n" +
		"Look for: PR intervals lengthening beat by beat until a P wave " +
		"appears with no QRS after it, then the cycle repeats.",

	"avb3": "3rd-Degree (Complete) AV Block.\n" +
		"What it is: atria and ventricles beat independently; no atrial " +
		"impulse conducts.\n" +
		"Look for: P waves marching at their own regular rate, QRS complexes " +
		"marching at a separate, much slower rate, and no fixed relationship " +
		"between the two.",
}

// Note returns the teaching text for a catalog method identifier, or an
// empty string for an unknown identifier.
func Note(methodID string) string {
	return notes[methodID]
}

// RateHint is the guidance shown beside the rhythm selector: simple
// tachycardia and bradycardia are demonstrated with the normal rhythm
// and the heart-rate control rather than dedicated catalog entries.
const RateHint = "For tachycardia or bradycardia, select Normal Sinus Rhythm " +
	"and adjust the heart rate: above 100 BPM is tachycardia, below 60 BPM " +
	"is bradycardia."
