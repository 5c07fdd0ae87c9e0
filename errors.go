package x12

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeMalformedDelimiters    = "malformed_delimiters"
	CodeEnvelopeMismatch       = "envelope_mismatch"
	CodeUnsupportedVersion     = "unsupported_version"
	CodeUnknownSegment         = "unknown_segment"
	CodeUnknownTransactionSet  = "unknown_transaction_set"
	CodeMissingRequiredSegment = "missing_required_segment"
	CodeMissingRequiredElement = "missing_required_element"
	CodeTooManyElements        = "too_many_elements"
	CodeInvalidLength          = "invalid_length"
	CodeInvalidDataType        = "invalid_data_type"
	CodeInvalidFormat          = "invalid_format"
	CodeInvalidCode            = "invalid_code"
	CodeSegmentUsageExceeded   = "segment_usage_exceeded"
	CodeDependencyViolation    = "dependency_violation"
	CodeInvalidSegmentFormat   = "invalid_segment_format"
	// Structural ordering and business semantics
	CodeHierarchyOrder = "hierarchy_order"
	CodeBusinessRule   = "business_rule"
)

// Issue represents a single parse or validation finding.
type Issue struct {
	Code    string // One of the codes listed above.
	Segment string // Segment id (for example "BEG"); empty for document-level findings.
	// SegmentIndex is the index of the segment within its containing
	// transaction (or the flat segment list during assembly); -1 when unknown.
	SegmentIndex int
	Element      int // 1-based element position; 0 for segment-level findings.
	Message      string
	// Params carries structured parameters (e.g., {"expected":"0001", "found":"0002"})
	// for rendering and observability.
	Params map[string]any
}

// Issues is a collection of findings that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. missing_required_element at BEG05
		fmt.Fprintf(b, "%s at %s", it.Code, it.where())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

func (it Issue) where() string {
	switch {
	case it.Segment == "":
		return "document"
	case it.Element > 0:
		return fmt.Sprintf("%s%02d", it.Segment, it.Element)
	default:
		return it.Segment
	}
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether any issue carries the given code.
func (iss Issues) HasCode(code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}
