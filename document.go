package x12

import "strconv"

// Version identifies an X12 implementation guide generation.
type Version int

const (
	VersionUnknown Version = iota
	Version4010
	Version5010
	Version8010
)

func (v Version) String() string {
	switch v {
	case Version4010:
		return "004010"
	case Version5010:
		return "005010"
	case Version8010:
		return "008010"
	default:
		return ""
	}
}

// MarshalJSON renders the version as its GS08 token string.
func (v Version) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(v.String())), nil
}

// UnmarshalJSON accepts a GS08 token string.
func (v *Version) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	if pv, ok := ParseGroupVersion(s); ok {
		*v = pv
	} else {
		*v = VersionUnknown
	}
	return nil
}

// ParseInterchangeVersion maps an ISA12 control version token to a Version.
func ParseInterchangeVersion(token string) (Version, bool) {
	switch token {
	case "00401":
		return Version4010, true
	case "00501":
		return Version5010, true
	case "00801":
		return Version8010, true
	default:
		return VersionUnknown, false
	}
}

// ParseGroupVersion maps a GS08 version token to a Version. Industry tokens
// carry an addenda suffix (e.g. "004010X092"), so only the leading six
// characters are significant.
func ParseGroupVersion(token string) (Version, bool) {
	if len(token) > 6 {
		token = token[:6]
	}
	switch token {
	case "004010":
		return Version4010, true
	case "005010":
		return Version5010, true
	case "008010":
		return Version8010, true
	default:
		return VersionUnknown, false
	}
}

// Segment is one structured record: an identifier plus ordered element
// values. Element order is significant and never reordered; values may be
// empty, which means "not provided" rather than an empty default.
type Segment struct {
	ID       string   `json:"id"`
	Elements []string `json:"elements"`
}

// NewSegment builds a segment from an id and ordered element values.
func NewSegment(id string, elements ...string) Segment {
	return Segment{ID: id, Elements: elements}
}

// Element returns the value at the 1-based position, or "" when the position
// is absent. Presence of an empty string and absence are deliberately
// conflated here; callers that care use Has.
func (s Segment) Element(pos int) string {
	if pos < 1 || pos > len(s.Elements) {
		return ""
	}
	return s.Elements[pos-1]
}

// Has reports whether the 1-based position is present and non-empty.
func (s Segment) Has(pos int) bool {
	return pos >= 1 && pos <= len(s.Elements) && s.Elements[pos-1] != ""
}

// Transaction is one business document bounded by an ST/SE pair. The ST and
// SE segments are included in Segments.
type Transaction struct {
	SetID         string    `json:"setId"`
	ControlNumber string    `json:"controlNumber"`
	Segments      []Segment `json:"segments"`
}

// FunctionalGroup is a batch of transactions bounded by a GS/GE pair.
type FunctionalGroup struct {
	FunctionalID  string        `json:"functionalId"`
	ControlNumber string        `json:"controlNumber"`
	Version       Version       `json:"version"`
	Transactions  []Transaction `json:"transactions"`
	Header        Segment       `json:"header"`
	Trailer       *Segment      `json:"trailer,omitempty"`
}

// Interchange is the outermost envelope, bounded by an ISA/IEA pair.
// It owns no references into schema metadata; lookups are by id+version.
type Interchange struct {
	Sender        string            `json:"sender"`
	Receiver      string            `json:"receiver"`
	ControlNumber string            `json:"controlNumber"`
	Version       Version           `json:"version"`
	Delimiters    Delimiters        `json:"delimiters"`
	Groups        []FunctionalGroup `json:"groups"`
	Header        Segment           `json:"header"`
	Trailer       *Segment          `json:"trailer,omitempty"`
}

// Transactions returns all transactions across all functional groups in
// document order.
func (ic *Interchange) Transactions() []Transaction {
	var out []Transaction
	for _, g := range ic.Groups {
		out = append(out, g.Transactions...)
	}
	return out
}
