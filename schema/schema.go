// Package schema holds transaction set schemas: the ordered segment
// expectations of one business document kind, their inter-segment
// dependencies and value-conditioned context rules, and the
// trading-partner overlay that patches a base schema without mutating it.
package schema

import (
	x12 "github.com/edikit/x12"
)

// HierarchyLevel places a segment in the header/detail/summary ordering of
// a transaction set.
type HierarchyLevel int

const (
	LevelHeader HierarchyLevel = iota
	LevelDetail
	LevelSummary
)

func (l HierarchyLevel) String() string {
	switch l {
	case LevelHeader:
		return "header"
	case LevelDetail:
		return "detail"
	case LevelSummary:
		return "summary"
	default:
		return ""
	}
}

// DependencyKind classifies an inter-segment dependency.
type DependencyKind int

const (
	MustFollow DependencyKind = iota // dependency must appear earlier in the sequence
	MustPrecede                      // this segment must appear before the dependency
	MutuallyExclusive                // both present is a violation
	RequiredIf                       // this segment is required when the dependency is present
)

// Dependency ties a segment to another segment id in the same transaction.
type Dependency struct {
	On        string
	Kind      DependencyKind
	Condition string // human-readable condition note
}

// CheckKind is the value-conditioned check a context rule performs.
type CheckKind int

const (
	CheckPositive   CheckKind = iota // element parses as a number > 0
	CheckNonEmpty                    // element present and non-empty
	CheckInCodes                     // element value is a member of Codes
	CheckAnyPresent                  // at least one of Elements is non-empty
	CheckLineCount                   // element equals the count of CountOf segments
)

// Condition gates a context rule on an element value of the same segment.
type Condition struct {
	Element int
	Equals  string
}

// ContextRule is a declarative value-conditioned check evaluated after a
// segment's own element-level validation passes. Severity decides whether a
// failing rule is an error or a warning.
type ContextRule struct {
	ID          string
	Description string
	Element     int   // 1-based target position (CheckPositive/NonEmpty/InCodes/LineCount)
	Elements    []int // target positions for CheckAnyPresent
	Check       CheckKind
	Codes       []string // for CheckInCodes
	CountOf     string   // segment id counted by CheckLineCount
	Severity    x12.Severity
	When        *Condition
}

// ElementPatch is a materialized per-element override produced by a
// trading-partner overlay. Nil pointer fields leave the base untouched.
type ElementPatch struct {
	Requirement *x12.Requirement
	Codes       []string
	CodesSet    bool // distinguishes "no code patch" from "patched to unrestricted"
	MinLength   *int
	MaxLength   *int
}

// SegmentSchema is one expected segment of a transaction set.
type SegmentSchema struct {
	ID           string
	Name         string
	Requirement  x12.Requirement
	MaxUse       int // 0 = unlimited
	Level        HierarchyLevel
	Dependencies []Dependency
	Rules        []ContextRule
	// Elements holds partner overlay patches keyed by 1-based position.
	// Nil on base schemas.
	Elements map[int]ElementPatch
}

// TransactionSetSchema is the ordered segment expectation list for one
// (transaction set, version) pair. Immutable once registered with an
// Engine; partner overlays derive new values and never mutate the base.
type TransactionSetSchema struct {
	SetID       string
	Version     x12.Version
	Name        string
	Description string
	Segments    []SegmentSchema
}

func (s TransactionSetSchema) clone() TransactionSetSchema {
	out := s
	out.Segments = make([]SegmentSchema, len(s.Segments))
	for i, ss := range s.Segments {
		cp := ss
		cp.Dependencies = append([]Dependency(nil), ss.Dependencies...)
		cp.Rules = append([]ContextRule(nil), ss.Rules...)
		if ss.Elements != nil {
			cp.Elements = make(map[int]ElementPatch, len(ss.Elements))
			for k, v := range ss.Elements {
				cp.Elements[k] = v
			}
		}
		out.Segments[i] = cp
	}
	return out
}

// segment returns a pointer to the first entry with the id, or nil.
func (s *TransactionSetSchema) segment(id string) *SegmentSchema {
	for i := range s.Segments {
		if s.Segments[i].ID == id {
			return &s.Segments[i]
		}
	}
	return nil
}
