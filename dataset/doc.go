// Package dataset reads and writes vector files and generates test datasets.
//
// The raw format starts with the element count on its own line, followed by
// the values separated by whitespace (conventionally one per line):
//
//	3
//	1.5
//	2
//	-0.25
//
// The CSV format carries comma-separated values with no count; multiple
// lines are concatenated in order.
package dataset
