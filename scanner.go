package x12

import "strings"

// The ISA control segment is a fixed-width layout: every delimiter the rest
// of the interchange uses is read from a known byte offset inside it.
const (
	isaByteCount              = 106 // "ISA" + 16 fixed-width fields + terminator
	isaElementSeparatorOffset = 3
	isaRepetitionOffset       = 82  // ISA11; a repetition separator from 005010 onward
	isaSubElementOffset       = 104 // ISA16, component element separator
	isaTerminatorOffset       = 105
	isaElementCount           = 17 // "ISA" token plus 16 fields
)

// Delimiters is the structural delimiter set discovered from the control
// segment. Callers need it to re-serialize segments with the same framing.
type Delimiters struct {
	Element    byte `json:"element"`
	SubElement byte `json:"subElement"`
	Segment    byte `json:"segment"`
	Repetition byte `json:"repetition"` // 0 when the interchange declares none
}

// ScanDelimiters reads the delimiter set from the fixed offsets of the
// leading ISA segment. It fails with malformed_delimiters when the control
// segment is shorter than its fixed layout or a known position is blank.
func ScanDelimiters(input string) (Delimiters, error) {
	if len(input) < isaByteCount {
		return Delimiters{}, Issues{{
			Code:         CodeMalformedDelimiters,
			Segment:      "ISA",
			SegmentIndex: 0,
			Message:      "control segment shorter than its fixed layout",
			Params:       map[string]any{"min": isaByteCount, "got": len(input)},
		}}
	}
	if input[:3] != "ISA" {
		return Delimiters{}, Issues{{
			Code:         CodeMalformedDelimiters,
			Segment:      "ISA",
			SegmentIndex: 0,
			Message:      "input does not begin with an ISA control segment",
		}}
	}
	d := Delimiters{
		Element:    input[isaElementSeparatorOffset],
		SubElement: input[isaSubElementOffset],
		Segment:    input[isaTerminatorOffset],
	}
	if d.Element == ' ' || d.SubElement == ' ' || d.Segment == ' ' {
		return Delimiters{}, Issues{{
			Code:         CodeMalformedDelimiters,
			Segment:      "ISA",
			SegmentIndex: 0,
			Message:      "delimiter position is blank",
		}}
	}
	// Before 005010 the ISA11 position holds the standards identifier "U",
	// not a delimiter. Any alphanumeric there means no repetition separator.
	if r := input[isaRepetitionOffset]; !isAlphanumeric(r) && r != ' ' {
		d.Repetition = r
	}
	return d, nil
}

// Scan tokenizes a raw interchange into a flat segment list plus the
// discovered delimiter set. Pure function of the input bytes.
func Scan(input string, opts ...ParseOpt) ([]Segment, Delimiters, error) {
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[0]
	}
	d, err := ScanDelimiters(input)
	if err != nil {
		return nil, Delimiters{}, err
	}

	isaFields := strings.Split(input[:isaTerminatorOffset], string(d.Element))
	if len(isaFields) != isaElementCount {
		return nil, Delimiters{}, Issues{{
			Code:         CodeMalformedDelimiters,
			Segment:      "ISA",
			SegmentIndex: 0,
			Message:      "control segment does not split into its fixed field count",
			Params:       map[string]any{"expected": isaElementCount, "got": len(isaFields)},
		}}
	}
	segs := []Segment{{ID: "ISA", Elements: trimAll(isaFields[1:], opt)}}

	for i, raw := range strings.Split(input[isaByteCount:], string(d.Segment)) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		parts := strings.Split(raw, string(d.Element))
		id := strings.TrimSpace(parts[0])
		if id == "" {
			return nil, Delimiters{}, Issues{{
				Code:         CodeInvalidSegmentFormat,
				SegmentIndex: i + 1,
				Message:      "segment with empty identifier",
			}}
		}
		segs = append(segs, Segment{ID: id, Elements: trimAll(parts[1:], opt)})
	}
	return segs, d, nil
}

// Render re-serializes one segment with this delimiter set, including the
// segment terminator.
func (d Delimiters) Render(seg Segment) string {
	b := &strings.Builder{}
	b.WriteString(seg.ID)
	for _, el := range seg.Elements {
		b.WriteByte(d.Element)
		b.WriteString(el)
	}
	b.WriteByte(d.Segment)
	return b.String()
}

// SplitComposite splits an element value on the sub-element separator.
// Composite structure is declared by the owning definition; the tokenizer
// keeps element values whole and lets callers split on demand.
func (d Delimiters) SplitComposite(value string) []string {
	return strings.Split(value, string(d.SubElement))
}

func trimAll(values []string, opt ParseOpt) []string {
	out := make([]string, len(values))
	for i, v := range values {
		if opt.KeepWhitespace {
			out[i] = v
		} else {
			out[i] = strings.TrimSpace(v)
		}
	}
	return out
}

func isAlphanumeric(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}
