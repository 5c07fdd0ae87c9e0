package x12

// Severity expresses the severity level for findings.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// UnknownSegmentMode controls how segments outside any known envelope
// structure are handled during assembly. Element-level treatment of unknown
// segment ids is a separate concern owned by schema validation.
type UnknownSegmentMode int

const (
	UnknownKeep   UnknownSegmentMode = iota // Continue; data segments stay in the open transaction.
	UnknownReject                           // Fail assembly with an unknown_segment error.
)

// ParseOpt bundles parsing options.
type ParseOpt struct {
	Unknown UnknownSegmentMode
	// LenientVersion carries VersionUnknown instead of failing when the
	// interchange or group version token is not recognized. Callers wanting
	// lenient behavior must opt in explicitly.
	LenientVersion bool
	// KeepWhitespace disables trimming of surrounding whitespace on element
	// values (the wire format pads fixed-width ISA fields with spaces).
	KeepWhitespace bool
}

// ValidateOpt bundles validation options consumed by schema.Engine.
type ValidateOpt struct {
	// PartnerID selects a trading-partner overlay; empty means the base schema.
	PartnerID string
	// FailFast stops collecting findings after the first error.
	FailFast bool
}
