// Package rhythm defines the catalog of selectable cardiac rhythms.
//
// The catalog is a fixed, ordered table mapping a display label to the
// synthesis method identifier understood by a signal provider, together
// with the default heart rate pre-filled when the rhythm is selected and
// a flag telling whether the heart-rate control applies at all.
//
// Ordering is part of the contract: entries run from normal sinus rhythm
// through premature beats, supraventricular tachycardias and ventricular
// tachycardias to the AV blocks, and UIs present them in exactly this
// order.
//
// # Usage
//
//	for _, d := range rhythm.Catalog() {
//	    fmt.Println(d.Label, d.MethodID, d.DefaultHeartRate)
//	}
//
//	d, ok := rhythm.Find("Atrial Fibrillation (AFib)")
//	if ok {
//	    fmt.Println(rhythm.Note(d.MethodID))
//	}
package rhythm
