package x12

// Package x12 parses ASCII-delimited EDI X12 interchanges into a validated,
// semantically-addressable document model.
//
// It provides:
//
//   - A self-describing tokenizer that reads the four structural delimiters
//     from the ISA control segment and splits raw text into segments
//   - Envelope assembly (Interchange -> FunctionalGroup -> Transaction) with
//     control-number cross-checks at every level
//   - A version-keyed registry of segment and element definitions, plus a
//     standardized element-ID dictionary for cross-document queries
//   - A validation engine returning per-element diagnostics via Issues
//     (code, segment id, element position) rather than an opaque failure
//
// Design policy:
//   - Keep the public API in the root package; transaction set schemas and
//     trading-partner overlays live under schema/, typed segment variants
//     under segments/, JSON projection under codec/.
//   - Registries and schemas are built once and read-only thereafter, so
//     independent documents may be parsed concurrently without locking.
//   - Validation never aborts: every finding is data returned to the caller.
//
// Typical usage:
//
//	ic, err := x12.Parse(raw)
//	res := x12.NewValidator(ic.Version).ValidateSegment(seg)
//	res = engine.ValidateTransaction(tx, ic.Version, x12.ValidateOpt{PartnerID: "ACME"})
