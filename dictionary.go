package x12

// ElementVersionInfo is the version-specific face of a dictionary entry:
// which codes a generation allows and any usage notes.
type ElementVersionInfo struct {
	ValidCodes []string // nil = the full standard code list applies
	Notes      string
	UsageRules []string
}

// ElementMaster is the cross-segment definition of a standardized element
// ID, independent of which segment/position carries it.
type ElementMaster struct {
	ID          int
	Name        string
	Description string
	Type        DataType
	MinLength   int
	MaxLength   int
	Versions    map[Version]ElementVersionInfo
}

// Dictionary maps standardized element IDs to their master definitions.
// Built once at startup, read-only thereafter.
type Dictionary struct {
	elements map[int]ElementMaster
}

// NewDictionary returns an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{elements: map[int]ElementMaster{}}
}

// StandardDictionary returns a dictionary preloaded with the standard
// element entries.
func StandardDictionary() *Dictionary {
	d := NewDictionary()
	registerStandardElements(d)
	return d
}

// Register stores a master definition, replacing any prior entry for the id.
func (d *Dictionary) Register(m ElementMaster) {
	d.elements[m.ID] = m
}

// Lookup returns the master definition for a standardized element ID.
func (d *Dictionary) Lookup(id int) (ElementMaster, bool) {
	m, ok := d.elements[id]
	return m, ok
}

// LookupVersion returns the version-specific info for an element ID.
func (d *Dictionary) LookupVersion(id int, v Version) (ElementVersionInfo, bool) {
	m, ok := d.elements[id]
	if !ok {
		return ElementVersionInfo{}, false
	}
	info, ok := m.Versions[v]
	return info, ok
}

// ElementOccurrence is one hit of a cross-document element-ID query.
type ElementOccurrence struct {
	SegmentID        string
	GroupIndex       int
	TransactionIndex int // index within the group
	SegmentIndex     int // index within the transaction
	Element          int // 1-based position within the segment
	Value            string
}

// FindByElementID returns every (segment, position, value) triple in the
// document whose position carries the standardized element ID, resolved
// through the registry's definitions rather than hard-coded per-segment
// knowledge. Empty values are not occurrences.
func FindByElementID(ic *Interchange, elementID int, reg *Registry) []ElementOccurrence {
	var out []ElementOccurrence
	for gi, g := range ic.Groups {
		v := g.Version
		if v == VersionUnknown {
			v = ic.Version
		}
		for ti, tx := range g.Transactions {
			for si, seg := range tx.Segments {
				out = append(out, findInSegment(seg, elementID, v, reg, gi, ti, si)...)
			}
		}
	}
	return out
}

// FindInTransaction is the single-transaction form of FindByElementID.
func FindInTransaction(tx Transaction, elementID int, v Version, reg *Registry) []ElementOccurrence {
	var out []ElementOccurrence
	for si, seg := range tx.Segments {
		out = append(out, findInSegment(seg, elementID, v, reg, 0, 0, si)...)
	}
	return out
}

func findInSegment(seg Segment, elementID int, v Version, reg *Registry, gi, ti, si int) []ElementOccurrence {
	def, ok := reg.Lookup(v, seg.ID)
	if !ok {
		return nil
	}
	var out []ElementOccurrence
	for i, ed := range def.Elements {
		if ed.ID != elementID {
			continue
		}
		if i >= len(seg.Elements) || seg.Elements[i] == "" {
			continue
		}
		out = append(out, ElementOccurrence{
			SegmentID:        seg.ID,
			GroupIndex:       gi,
			TransactionIndex: ti,
			SegmentIndex:     si,
			Element:          i + 1,
			Value:            seg.Elements[i],
		})
	}
	return out
}

func registerStandardElements(d *Dictionary) {
	d.Register(ElementMaster{
		ID:          98,
		Name:        "Entity Identifier Code",
		Description: "Code identifying an organizational entity, a physical location, property or an individual",
		Type:        TypeID,
		MinLength:   2,
		MaxLength:   3,
		Versions: map[Version]ElementVersionInfo{
			Version4010: {
				ValidCodes: []string{"BY", "SE", "BT", "ST", "SU"},
				UsageRules: []string{"Must be present in CUR segment"},
			},
			Version5010: {
				ValidCodes: []string{"BY", "SE", "BT", "ST", "SU", "VN"},
				Notes:      "Vendor code added",
				UsageRules: []string{"Must be present in CUR segment"},
			},
			Version8010: {
				ValidCodes: []string{"BY", "SE", "BT", "ST", "SU", "VN", "3P"},
				Notes:      "Third-party code added",
				UsageRules: []string{"Must be present in CUR segment"},
			},
		},
	})
	d.Register(ElementMaster{
		ID:          100,
		Name:        "Currency Code",
		Description: "Code (Standard ISO) for country in whose currency the charges are specified",
		Type:        TypeID,
		MinLength:   3,
		MaxLength:   3,
		Versions: map[Version]ElementVersionInfo{
			Version4010: {
				ValidCodes: []string{"USD", "CAD", "EUR", "GBP", "JPY"},
				Notes:      "ISO 4217 currency codes",
			},
			Version5010: {Notes: "Full ISO 4217 support"},
			Version8010: {Notes: "Full ISO 4217 support"},
		},
	})
	d.Register(ElementMaster{
		ID:          353,
		Name:        "Transaction Set Purpose Code",
		Description: "Code identifying purpose of transaction set",
		Type:        TypeID,
		MinLength:   2,
		MaxLength:   2,
		Versions: map[Version]ElementVersionInfo{
			Version4010: {ValidCodes: []string{"00", "01", "04", "05"}},
			Version5010: {ValidCodes: []string{"00", "01", "04", "05"}},
			Version8010: {ValidCodes: []string{"00", "01", "04", "05"}},
		},
	})
	d.Register(ElementMaster{
		ID:          373,
		Name:        "Date",
		Description: "Date expressed as CCYYMMDD",
		Type:        TypeDT,
		MinLength:   8,
		MaxLength:   8,
		Versions: map[Version]ElementVersionInfo{
			Version4010: {},
			Version5010: {},
			Version8010: {},
		},
	})
}
