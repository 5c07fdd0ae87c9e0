package x12

import (
	"strings"
	"time"
)

// ValidationResult is the outcome of validating one segment (or one
// transaction) against its definition. Warnings never affect Valid.
type ValidationResult struct {
	Valid    bool   `json:"valid"`
	Errors   Issues `json:"errors,omitempty"`
	Warnings Issues `json:"warnings,omitempty"`
}

func (r *ValidationResult) addError(it Issue) {
	r.Errors = AppendIssues(r.Errors, it)
	r.Valid = false
}

func (r *ValidationResult) addWarning(it Issue) {
	r.Warnings = AppendIssues(r.Warnings, it)
}

// Merge folds another result into the receiver.
func (r *ValidationResult) Merge(other ValidationResult) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	if !other.Valid {
		r.Valid = false
	}
}

// ValidatedElement pairs one element position with its definition for
// diagnostics-oriented consumers.
type ValidatedElement struct {
	Definition ElementDefinition
	Value      string
	Present    bool // present and non-empty in the source segment
	Position   int  // 1-based
}

// Validator checks segments against a registry for one version.
type Validator struct {
	registry *Registry
	version  Version
}

// NewValidator returns a validator over the standard registry.
func NewValidator(v Version) *Validator {
	return &Validator{registry: StandardRegistry(), version: v}
}

// NewValidatorWithRegistry returns a validator over a caller-built registry.
func NewValidatorWithRegistry(reg *Registry, v Version) *Validator {
	return &Validator{registry: reg, version: v}
}

// Version returns the validator's version.
func (v *Validator) Version() Version { return v.version }

// Registry returns the underlying registry.
func (v *Validator) Registry() *Registry { return v.registry }

// ValidateSegment looks up the segment's definition and validates against
// it. An unregistered id yields a single unknown_segment error.
func (v *Validator) ValidateSegment(seg Segment) ValidationResult {
	def, ok := v.registry.Lookup(v.version, seg.ID)
	if !ok {
		res := ValidationResult{Valid: true}
		res.addError(Issue{
			Code:         CodeUnknownSegment,
			Segment:      seg.ID,
			SegmentIndex: -1,
			Message:      "no definition registered for segment",
		})
		return res
	}
	return ValidateAgainst(seg, def)
}

// ValidateElements returns the per-position element view of a segment
// against its registered definition. Nil when the id is unregistered.
func (v *Validator) ValidateElements(seg Segment) []ValidatedElement {
	def, ok := v.registry.Lookup(v.version, seg.ID)
	if !ok {
		return nil
	}
	out := make([]ValidatedElement, len(def.Elements))
	for i, ed := range def.Elements {
		var val string
		if i < len(seg.Elements) {
			val = seg.Elements[i]
		}
		out[i] = ValidatedElement{
			Definition: ed,
			Value:      val,
			Present:    val != "",
			Position:   i + 1,
		}
	}
	return out
}

// ValidateAgainst validates one segment against one definition. All
// findings accumulate; nothing aborts. Valid is true iff no errors were
// recorded.
func ValidateAgainst(seg Segment, def SegmentDefinition) ValidationResult {
	res := ValidationResult{Valid: true}

	if seg.ID != def.ID {
		res.addError(Issue{
			Code:         CodeUnknownSegment,
			Segment:      seg.ID,
			SegmentIndex: -1,
			Message:      "segment id does not match definition",
			Params:       map[string]any{"expected": def.ID, "found": seg.ID},
		})
		return res
	}

	if len(seg.Elements) > len(def.Elements) {
		it := Issue{
			Code:         CodeTooManyElements,
			Segment:      seg.ID,
			SegmentIndex: -1,
			Element:      len(def.Elements) + 1,
			Message:      "segment carries more elements than its definition",
			Params:       map[string]any{"defined": len(def.Elements), "got": len(seg.Elements)},
		}
		if def.StrictElementCount {
			res.addError(it)
		} else {
			res.addWarning(it)
		}
	}

	for i, ed := range def.Elements {
		pos := i + 1
		var val string
		if i < len(seg.Elements) {
			val = seg.Elements[i]
		}
		if val == "" {
			// An absent or empty optional element is a normal "not provided"
			// state, never coerced to a default.
			if ed.Requirement == Mandatory {
				res.addError(Issue{
					Code:         CodeMissingRequiredElement,
					Segment:      seg.ID,
					SegmentIndex: -1,
					Element:      pos,
					Message:      "required element " + ed.Name + " is missing or empty",
				})
			}
			continue
		}
		checkValue(&res, seg.ID, val, ed, pos)
	}
	return res
}

func checkValue(res *ValidationResult, segID, val string, ed ElementDefinition, pos int) {
	n := len(val)
	if (ed.MinLength > 0 && n < ed.MinLength) || (ed.MaxLength > 0 && n > ed.MaxLength) {
		res.addError(Issue{
			Code:         CodeInvalidLength,
			Segment:      segID,
			SegmentIndex: -1,
			Element:      pos,
			Message:      "element " + ed.Name + " length out of bounds",
			Params:       map[string]any{"min": ed.MinLength, "max": ed.MaxLength, "got": n},
		})
	}

	switch ed.Type {
	case TypeN0:
		if !isInteger(val, ed.SignAllowed) {
			res.addError(typeIssue(segID, pos, ed, val, "must be an integer"))
		}
	case TypeR:
		if !isDecimal(val, ed.SignAllowed) {
			res.addError(typeIssue(segID, pos, ed, val, "must be a decimal number"))
		}
	case TypeDT:
		if !isCalendarDate(val) {
			res.addError(Issue{
				Code:         CodeInvalidFormat,
				Segment:      segID,
				SegmentIndex: -1,
				Element:      pos,
				Message:      "element " + ed.Name + " must be a valid CCYYMMDD date",
				Params:       map[string]any{"got": val},
			})
		}
	case TypeTM:
		if !isClockTime(val) {
			res.addError(Issue{
				Code:         CodeInvalidFormat,
				Segment:      segID,
				SegmentIndex: -1,
				Element:      pos,
				Message:      "element " + ed.Name + " must be a valid HHMM[SS[DD]] time",
				Params:       map[string]any{"got": val},
			})
		}
	case TypeID:
		if len(ed.ValidCodes) > 0 && !containsString(ed.ValidCodes, val) {
			res.addError(Issue{
				Code:         CodeInvalidCode,
				Segment:      segID,
				SegmentIndex: -1,
				Element:      pos,
				Message:      "element " + ed.Name + " is not an allowed code",
				Params:       map[string]any{"got": val, "allowed": ed.ValidCodes},
			})
		}
		if !isPrintableASCII(val) {
			res.addWarning(printableIssue(segID, pos, ed))
		}
	case TypeAN:
		if !isPrintableASCII(val) {
			res.addWarning(printableIssue(segID, pos, ed))
		}
	}
}

func typeIssue(segID string, pos int, ed ElementDefinition, val, msg string) Issue {
	return Issue{
		Code:         CodeInvalidDataType,
		Segment:      segID,
		SegmentIndex: -1,
		Element:      pos,
		Message:      "element " + ed.Name + " " + msg,
		Params:       map[string]any{"type": ed.Type.String(), "got": val},
	}
}

func printableIssue(segID string, pos int, ed ElementDefinition) Issue {
	return Issue{
		Code:         CodeInvalidFormat,
		Segment:      segID,
		SegmentIndex: -1,
		Element:      pos,
		Message:      "element " + ed.Name + " contains non-printable characters",
	}
}

func isInteger(s string, signAllowed bool) bool {
	if signAllowed && (strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+")) {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isDecimal(s string, signAllowed bool) bool {
	if signAllowed && (strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+")) {
		s = s[1:]
	}
	if s == "" || s == "." {
		return false
	}
	dot := false
	digits := 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '.':
			if dot {
				return false
			}
			dot = true
		case s[i] >= '0' && s[i] <= '9':
			digits++
		default:
			return false
		}
	}
	return digits > 0
}

func isCalendarDate(s string) bool {
	if len(s) != 8 || !isInteger(s, false) {
		return false
	}
	_, err := time.Parse("20060102", s)
	return err == nil
}

func isClockTime(s string) bool {
	switch len(s) {
	case 4, 6, 8:
	default:
		return false
	}
	if !isInteger(s, false) {
		return false
	}
	hh := (int(s[0]-'0'))*10 + int(s[1]-'0')
	mm := (int(s[2]-'0'))*10 + int(s[3]-'0')
	if hh > 23 || mm > 59 {
		return false
	}
	if len(s) >= 6 {
		ss := (int(s[4]-'0'))*10 + int(s[5]-'0')
		if ss > 59 {
			return false
		}
	}
	// Trailing two digits are hundredths of a second; any value is legal.
	return true
}

func isPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
