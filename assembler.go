package x12

// Fixed element positions inside the envelope segments (1-based wire
// positions minus the id, so ISA13 is Elements[12]).
const (
	isaSenderIdx   = 5  // ISA06
	isaReceiverIdx = 7  // ISA08
	isaVersionIdx  = 11 // ISA12
	isaControlIdx  = 12 // ISA13
	gsFunctionalIdx = 0 // GS01
	gsControlIdx    = 5 // GS06
	gsVersionIdx    = 7 // GS08
	trailerControlIdx = 1 // IEA02 / GE02 / SE02
	stSetIdx          = 0 // ST01
	stControlIdx      = 1 // ST02
)

// Assemble folds a flat segment list into the four-level hierarchy using the
// matching header/trailer pairs. Structural findings accumulate; the
// document model is returned even when findings exist so callers can inspect
// a defective interchange for diagnostics.
func Assemble(segs []Segment, d Delimiters, opts ...ParseOpt) (*Interchange, error) {
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[0]
	}
	if len(segs) == 0 || segs[0].ID != "ISA" {
		return nil, Issues{{
			Code:         CodeMissingRequiredSegment,
			Segment:      "ISA",
			SegmentIndex: 0,
			Message:      "interchange does not begin with an ISA segment",
		}}
	}

	isa := segs[0]
	var iss Issues

	version, ok := ParseInterchangeVersion(isa.Element(isaVersionIdx + 1))
	if !ok {
		if !opt.LenientVersion {
			return nil, Issues{{
				Code:         CodeUnsupportedVersion,
				Segment:      "ISA",
				SegmentIndex: 0,
				Element:      isaVersionIdx + 1,
				Message:      "unrecognized interchange version token",
				Params:       map[string]any{"token": isa.Element(isaVersionIdx + 1)},
			}}
		}
		version = VersionUnknown
	}

	ic := &Interchange{
		Sender:        isa.Element(isaSenderIdx + 1),
		Receiver:      isa.Element(isaReceiverIdx + 1),
		ControlNumber: isa.Element(isaControlIdx + 1),
		Version:       version,
		Delimiters:    d,
		Header:        isa,
	}

	var group *FunctionalGroup
	var tx *Transaction

	closeTx := func(trailer *Segment, at int) {
		if tx == nil {
			return
		}
		if trailer != nil {
			tx.Segments = append(tx.Segments, *trailer)
			if found := trailer.Element(trailerControlIdx + 1); found != tx.ControlNumber {
				iss = AppendIssues(iss, Issue{
					Code:         CodeEnvelopeMismatch,
					Segment:      "SE",
					SegmentIndex: at,
					Element:      trailerControlIdx + 1,
					Message:      "SE control number does not match ST",
					Params:       map[string]any{"level": "transaction", "expected": tx.ControlNumber, "found": found},
				})
			}
		} else {
			iss = AppendIssues(iss, Issue{
				Code:         CodeMissingRequiredSegment,
				Segment:      "SE",
				SegmentIndex: at,
				Message:      "transaction header has no matching SE trailer",
			})
		}
		if group == nil {
			group = &FunctionalGroup{Version: version}
		}
		group.Transactions = append(group.Transactions, *tx)
		tx = nil
	}

	closeGroup := func(trailer *Segment, at int) {
		if group == nil {
			return
		}
		closeTx(nil, at)
		group.Trailer = trailer
		if trailer != nil {
			if found := trailer.Element(trailerControlIdx + 1); found != group.ControlNumber {
				iss = AppendIssues(iss, Issue{
					Code:         CodeEnvelopeMismatch,
					Segment:      "GE",
					SegmentIndex: at,
					Element:      trailerControlIdx + 1,
					Message:      "GE control number does not match GS",
					Params:       map[string]any{"level": "group", "expected": group.ControlNumber, "found": found},
				})
			}
		} else if group.Header.ID != "" {
			// A synthesized group (transactions outside any GS) already
			// reported the missing GS; a GE finding would be misleading.
			iss = AppendIssues(iss, Issue{
				Code:         CodeMissingRequiredSegment,
				Segment:      "GE",
				SegmentIndex: at,
				Message:      "group header has no matching GE trailer",
			})
		}
		ic.Groups = append(ic.Groups, *group)
		group = nil
	}

	for i := 1; i < len(segs); i++ {
		seg := segs[i]
		switch seg.ID {
		case "GS":
			closeGroup(nil, i)
			gv, ok := ParseGroupVersion(seg.Element(gsVersionIdx + 1))
			if !ok {
				if !opt.LenientVersion {
					iss = AppendIssues(iss, Issue{
						Code:         CodeUnsupportedVersion,
						Segment:      "GS",
						SegmentIndex: i,
						Element:      gsVersionIdx + 1,
						Message:      "unrecognized group version token",
						Params:       map[string]any{"token": seg.Element(gsVersionIdx + 1)},
					})
				}
				// The group is still assembled under the interchange version:
				// only an unusable ISA12 aborts, since without it nothing can
				// be validated, while a bad GS08 leaves the rest of the
				// document inspectable alongside the finding.
				gv = version
			}
			group = &FunctionalGroup{
				FunctionalID:  seg.Element(gsFunctionalIdx + 1),
				ControlNumber: seg.Element(gsControlIdx + 1),
				Version:       gv,
				Header:        seg,
			}
		case "GE":
			if group == nil {
				iss = AppendIssues(iss, Issue{
					Code:         CodeUnknownSegment,
					Segment:      "GE",
					SegmentIndex: i,
					Message:      "GE trailer with no open functional group",
				})
				continue
			}
			trailer := seg
			closeGroup(&trailer, i)
		case "ST":
			closeTx(nil, i)
			if group == nil {
				iss = AppendIssues(iss, Issue{
					Code:         CodeMissingRequiredSegment,
					Segment:      "GS",
					SegmentIndex: i,
					Message:      "transaction set begins outside any functional group",
				})
			}
			tx = &Transaction{
				SetID:         seg.Element(stSetIdx + 1),
				ControlNumber: seg.Element(stControlIdx + 1),
				Segments:      []Segment{seg},
			}
		case "SE":
			if tx == nil {
				iss = AppendIssues(iss, Issue{
					Code:         CodeUnknownSegment,
					Segment:      "SE",
					SegmentIndex: i,
					Message:      "SE trailer with no open transaction",
				})
				continue
			}
			trailer := seg
			closeTx(&trailer, i)
		case "IEA":
			closeGroup(nil, i)
			trailer := seg
			ic.Trailer = &trailer
			if found := trailer.Element(trailerControlIdx + 1); found != ic.ControlNumber {
				iss = AppendIssues(iss, Issue{
					Code:         CodeEnvelopeMismatch,
					Segment:      "IEA",
					SegmentIndex: i,
					Element:      trailerControlIdx + 1,
					Message:      "IEA control number does not match ISA",
					Params:       map[string]any{"level": "interchange", "expected": ic.ControlNumber, "found": found},
				})
			}
		default:
			if tx != nil {
				tx.Segments = append(tx.Segments, seg)
				continue
			}
			if opt.Unknown == UnknownReject {
				iss = AppendIssues(iss, Issue{
					Code:         CodeUnknownSegment,
					Segment:      seg.ID,
					SegmentIndex: i,
					Message:      "segment outside any open transaction",
				})
			}
			// UnknownKeep: data segments between envelopes are tolerated.
		}
	}

	closeGroup(nil, len(segs))
	if ic.Trailer == nil {
		iss = AppendIssues(iss, Issue{
			Code:         CodeMissingRequiredSegment,
			Segment:      "IEA",
			SegmentIndex: len(segs),
			Message:      "interchange header has no matching IEA trailer",
		})
	}

	if len(iss) > 0 {
		return ic, iss
	}
	return ic, nil
}
