package x12

// Parse tokenizes and assembles a raw interchange. Low-level structural
// failures (malformed delimiters, unsupported version without the lenient
// opt-in) return a nil document; envelope mismatches and missing trailers
// return both the document and the findings as an Issues error, so a
// structurally defective interchange can still be inspected.
func Parse(input string, opts ...ParseOpt) (*Interchange, error) {
	segs, d, err := Scan(input, opts...)
	if err != nil {
		return nil, err
	}
	return Assemble(segs, d, opts...)
}
