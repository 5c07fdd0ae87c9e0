package x12

// DataType tags an element with its X12 data type.
type DataType int

const (
	TypeAN DataType = iota // Alphanumeric
	TypeN0                 // Numeric, integer
	TypeR                  // Numeric, decimal
	TypeID                 // Coded identifier
	TypeDT                 // Date, CCYYMMDD
	TypeTM                 // Time, HHMM[SS[DD]]
)

func (t DataType) String() string {
	switch t {
	case TypeAN:
		return "AN"
	case TypeN0:
		return "N0"
	case TypeR:
		return "R"
	case TypeID:
		return "ID"
	case TypeDT:
		return "DT"
	case TypeTM:
		return "TM"
	default:
		return ""
	}
}

// Requirement is the usage level of an element or segment.
type Requirement int

const (
	Mandatory Requirement = iota
	Optional
	Conditional
)

func (r Requirement) String() string {
	switch r {
	case Mandatory:
		return "mandatory"
	case Optional:
		return "optional"
	case Conditional:
		return "conditional"
	default:
		return ""
	}
}

// ElementDefinition describes one element position of a segment. Immutable
// once registered.
type ElementDefinition struct {
	ID          int // standardized element id (e.g. 100 = Currency Code)
	Name        string
	Type        DataType
	MinLength   int
	MaxLength   int // 0 = unbounded
	Requirement Requirement
	ValidCodes  []string // nil = unrestricted
	SignAllowed bool     // leading sign permitted on numeric types
}

// SegmentDefinition describes one segment kind: its element layout and
// occurrence bounds within the containing scope.
type SegmentDefinition struct {
	ID       string
	Name     string
	Elements []ElementDefinition
	MinUsage int
	MaxUsage int // 0 = unlimited
	// StrictElementCount makes excess elements a fatal error instead of the
	// default too_many_elements warning.
	StrictElementCount bool
	Description        string
}

type registryKey struct {
	version Version
	id      string
}

// Registry is an immutable-after-startup table of segment definitions keyed
// by (version, id). Registration is idempotent per key; the last
// registration wins, which is how version-specific overrides are built from
// a shared base.
type Registry struct {
	defs map[registryKey]SegmentDefinition
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: map[registryKey]SegmentDefinition{}}
}

// StandardRegistry returns a registry preloaded with the standard segment
// definitions for all supported versions.
func StandardRegistry() *Registry {
	r := NewRegistry()
	registerStandardSegments(r)
	return r
}

// Register stores a definition under (version, def.ID), replacing any prior
// registration for the same key.
func (r *Registry) Register(v Version, def SegmentDefinition) {
	r.defs[registryKey{version: v, id: def.ID}] = def
}

// Lookup returns the definition for (version, id). Version 8010 reuses the
// 5010 definition when no 8010-specific registration exists; that is the
// only fallback rule.
func (r *Registry) Lookup(v Version, id string) (SegmentDefinition, bool) {
	if def, ok := r.defs[registryKey{version: v, id: id}]; ok {
		return def, true
	}
	if v == Version8010 {
		if def, ok := r.defs[registryKey{version: Version5010, id: id}]; ok {
			return def, true
		}
	}
	return SegmentDefinition{}, false
}

// SegmentIDs lists every segment id registered for the version, fallback
// included.
func (r *Registry) SegmentIDs(v Version) []string {
	seen := map[string]bool{}
	for k := range r.defs {
		if k.version == v || (v == Version8010 && k.version == Version5010) {
			seen[k.id] = true
		}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	return out
}
