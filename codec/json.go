// Package codec renders parsed interchanges and validation results to JSON
// and back. The document forms round-trip; the report form is export-only.
package codec

import (
	json "github.com/goccy/go-json"

	x12 "github.com/edikit/x12"
)

// MarshalInterchange renders a parsed interchange as JSON.
func MarshalInterchange(ic *x12.Interchange) ([]byte, error) {
	return json.Marshal(ic)
}

// MarshalInterchangeIndent is MarshalInterchange with indentation, for
// human-facing output.
func MarshalInterchangeIndent(ic *x12.Interchange) ([]byte, error) {
	return json.MarshalIndent(ic, "", "  ")
}

// UnmarshalInterchange parses a JSON document produced by
// MarshalInterchange.
func UnmarshalInterchange(data []byte) (*x12.Interchange, error) {
	var ic x12.Interchange
	if err := json.Unmarshal(data, &ic); err != nil {
		return nil, err
	}
	return &ic, nil
}

// Report is the exported shape of a validation outcome. Issues flatten to
// stable lower-camel keys so downstream consumers are not coupled to the
// in-memory finding type.
type Report struct {
	Valid    bool          `json:"valid"`
	Errors   []ReportIssue `json:"errors,omitempty"`
	Warnings []ReportIssue `json:"warnings,omitempty"`
}

// ReportIssue is one finding in a report.
type ReportIssue struct {
	Code         string         `json:"code"`
	Segment      string         `json:"segment,omitempty"`
	SegmentIndex int            `json:"segmentIndex"`
	Element      int            `json:"element,omitempty"`
	Message      string         `json:"message"`
	Params       map[string]any `json:"params,omitempty"`
}

// MarshalReport renders a validation result as a JSON report.
func MarshalReport(res x12.ValidationResult) ([]byte, error) {
	return json.Marshal(NewReport(res))
}

// NewReport converts a validation result to its exported shape.
func NewReport(res x12.ValidationResult) Report {
	return Report{
		Valid:    res.Valid,
		Errors:   reportIssues(res.Errors),
		Warnings: reportIssues(res.Warnings),
	}
}

func reportIssues(iss x12.Issues) []ReportIssue {
	if len(iss) == 0 {
		return nil
	}
	out := make([]ReportIssue, len(iss))
	for i, it := range iss {
		out[i] = ReportIssue{
			Code:         it.Code,
			Segment:      it.Segment,
			SegmentIndex: it.SegmentIndex,
			Element:      it.Element,
			Message:      it.Message,
			Params:       it.Params,
		}
	}
	return out
}
