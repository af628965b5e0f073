// Package document provides the generic YAML tree used by lxd-profile.
//
// A Value is one of four kinds:
//
//   - Absent: a YAML null or a missing value
//   - Scalar: a string, number, boolean or timestamp (tag and text are kept)
//   - Sequence: an ordered list of Values
//   - Mapping: string keys in insertion order, see Map
//
// Values are built by Parse (or FromNode) and turned back into YAML by
// Marshal (or ToNode). A Scalar may carry a render hint (StyleLiteral) that
// makes the encoder write it as a literal block scalar.
package document
