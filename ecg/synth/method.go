package synth

// Method identifiers accepted by the Synthesizer. MethodSinus keeps the
// "ecgsyn" spelling after the dynamical ECG model of McSharry et al.,
// whose role it fills here.
const (
	MethodSinus = "ecgsyn"
	MethodPAC   = "pac"
	MethodPVC   = "pvc"
	MethodAFib  = "afib"
	MethodAFL   = "afl"
	MethodSVT   = "svt"
	MethodVT    = "vt"
	MethodVF    = "vf"
	MethodAVB1  = "avb1"
	MethodAVB2  = "avb2"
	MethodAVB3  = "avb3"
)

// Methods returns every accepted method identifier in a stable order.
func Methods() []string {
	return []string{
		MethodSinus,
		MethodPAC,
		MethodPVC,
		MethodAFib,
		MethodAFL,
		MethodSVT,
		MethodVT,
		MethodVF,
		MethodAVB1,
		MethodAVB2,
		MethodAVB3,
	}
}
