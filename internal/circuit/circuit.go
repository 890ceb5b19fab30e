// Package circuit builds the studio's fixed OpenQASM 3 program texts.
//
// Each builder hardwires the qubit indices its gate sequence touches (3 or
// 4) and only the register declarations scale with the count argument. No
// validation is done: passing a count that disagrees with a template's
// literal indices produces an invalid program, and that contract sits with
// the caller. The templates differ only in entangling layout and ry angles.
package circuit

import "fmt"

// Synthesis returns the 4-qubit audio synthesis circuit.
func Synthesis(layers int) string {
	return fmt.Sprintf(`OPENQASM 3.0;
include "stdgates.inc";
qubit[%d] q;
bit[%d] c;
h q[0];
h q[1];
h q[2];
h q[3];
cx q[0], q[1];
cx q[1], q[2];
cx q[2], q[3];
cx q[0], q[2];
ry(pi/4) q[0];
ry(pi/4) q[1];
ry(pi/8) q[2];
ry(pi/8) q[3];
h q[0];
h q[1];
measure q[0] -> c[0];
measure q[1] -> c[1];
measure q[2] -> c[2];
measure q[3] -> c[3];
`, layers, layers)
}

// Consciousness returns the 3-qubit consciousness-audio circuit.
func Consciousness(levels int) string {
	return fmt.Sprintf(`OPENQASM 3.0;
include "stdgates.inc";
qubit[%d] q;
bit[%d] c;
h q[0];
h q[1];
h q[2];
cx q[0], q[1];
cx q[1], q[2];
cx q[0], q[2];
ry(pi/3) q[0];
ry(pi/6) q[1];
ry(pi/3) q[2];
h q[0];
h q[2];
measure q[0] -> c[0];
measure q[1] -> c[1];
measure q[2] -> c[2];
`, levels, levels)
}

// Echo returns the 4-qubit echo optimization circuit.
func Echo(patterns int) string {
	return fmt.Sprintf(`OPENQASM 3.0;
include "stdgates.inc";
qubit[%d] q;
bit[%d] c;
h q[0];
h q[1];
h q[2];
h q[3];
cx q[0], q[1];
cx q[1], q[2];
cx q[2], q[3];
cx q[0], q[3];
ry(pi/4) q[0];
ry(pi/8) q[1];
ry(pi/4) q[2];
ry(pi/8) q[3];
h q[0];
h q[1];
measure q[0] -> c[0];
measure q[1] -> c[1];
measure q[2] -> c[2];
measure q[3] -> c[3];
`, patterns, patterns)
}

// Frequency returns the 3-qubit frequency harmonization circuit.
func Frequency(bands int) string {
	return fmt.Sprintf(`OPENQASM 3.0;
include "stdgates.inc";
qubit[%d] q;
bit[%d] c;
h q[0];
h q[1];
h q[2];
cx q[0], q[1];
cx q[1], q[2];
cx q[0], q[2];
ry(pi/3) q[0];
ry(pi/6) q[1];
ry(pi/3) q[2];
h q[0];
h q[1];
h q[2];
measure q[0] -> c[0];
measure q[1] -> c[1];
measure q[2] -> c[2];
`, bands, bands)
}

// Spatial returns the 4-qubit spatial audio circuit.
func Spatial(dims int) string {
	return fmt.Sprintf(`OPENQASM 3.0;
include "stdgates.inc";
qubit[%d] q;
bit[%d] c;
h q[0];
h q[1];
h q[2];
h q[3];
cx q[0], q[1];
cx q[1], q[2];
cx q[2], q[3];
cx q[0], q[2];
cx q[1], q[3];
ry(pi/4) q[0];
ry(pi/4) q[1];
ry(pi/8) q[2];
ry(pi/8) q[3];
h q[0];
h q[1];
h q[2];
measure q[0] -> c[0];
measure q[1] -> c[1];
measure q[2] -> c[2];
measure q[3] -> c[3];
`, dims, dims)
}
