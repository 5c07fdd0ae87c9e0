package schema

import (
	"strconv"
	"strings"
	"sync"

	x12 "github.com/edikit/x12"
)

type schemaKey struct {
	set     string
	version x12.Version
}

type agreementKey struct {
	set     string
	version x12.Version
	partner string
}

// Engine owns the transaction set schemas, the trading-partner agreements,
// and the registries they validate against. Schemas and agreements are
// registered during a setup phase and read-only afterwards; derived partner
// schemas are memoized under a lock so concurrent lookups stay cheap.
type Engine struct {
	registry   *x12.Registry
	dictionary *x12.Dictionary
	schemas    map[schemaKey]TransactionSetSchema
	agreements map[agreementKey]Agreement

	mu      sync.RWMutex
	derived map[agreementKey]TransactionSetSchema
}

// NewEngine returns an engine over the standard registry and dictionary,
// preloaded with the built-in transaction set schemas.
func NewEngine() *Engine {
	e := NewEngineWith(x12.StandardRegistry(), x12.StandardDictionary())
	registerBuiltinSchemas(e)
	return e
}

// NewEngineWith returns an engine over caller-built registries with no
// schemas registered.
func NewEngineWith(reg *x12.Registry, dict *x12.Dictionary) *Engine {
	return &Engine{
		registry:   reg,
		dictionary: dict,
		schemas:    map[schemaKey]TransactionSetSchema{},
		agreements: map[agreementKey]Agreement{},
		derived:    map[agreementKey]TransactionSetSchema{},
	}
}

// Registry returns the engine's segment registry.
func (e *Engine) Registry() *x12.Registry { return e.registry }

// Dictionary returns the engine's element dictionary.
func (e *Engine) Dictionary() *x12.Dictionary { return e.dictionary }

// RegisterSchema stores a base schema under (SetID, Version); last
// registration wins.
func (e *Engine) RegisterSchema(s TransactionSetSchema) {
	e.schemas[schemaKey{set: s.SetID, version: s.Version}] = s
}

// RegisterAgreement stores a partner agreement for a (set, version) pair
// and invalidates any memoized derivation for that key.
func (e *Engine) RegisterAgreement(set string, v x12.Version, ag Agreement) {
	k := agreementKey{set: set, version: v, partner: ag.PartnerID}
	e.agreements[k] = ag
	e.mu.Lock()
	delete(e.derived, k)
	e.mu.Unlock()
}

// Schema returns the immutable base schema for (set, version).
func (e *Engine) Schema(set string, v x12.Version) (TransactionSetSchema, bool) {
	s, ok := e.schemas[schemaKey{set: set, version: v}]
	return s, ok
}

// SetIDs lists the transaction set ids registered for a version.
func (e *Engine) SetIDs(v x12.Version) []string {
	var out []string
	for k := range e.schemas {
		if k.version == v {
			out = append(out, k.set)
		}
	}
	return out
}

// SchemaForPartner returns a derived copy of the base schema with the
// partner's customizations applied in order. The base is never mutated; a
// partner with no registered agreement gets the base unchanged. Derivations
// are memoized per (set, version, partner).
func (e *Engine) SchemaForPartner(set string, v x12.Version, partnerID string) (TransactionSetSchema, bool) {
	base, ok := e.Schema(set, v)
	if !ok {
		return TransactionSetSchema{}, false
	}
	k := agreementKey{set: set, version: v, partner: partnerID}
	ag, ok := e.agreements[k]
	if !ok {
		return base, true
	}

	e.mu.RLock()
	if d, ok := e.derived[k]; ok {
		e.mu.RUnlock()
		return d, true
	}
	e.mu.RUnlock()

	d := applyAgreement(base, ag, e.registry)
	e.mu.Lock()
	e.derived[k] = d
	e.mu.Unlock()
	return d, true
}

// ValidateTransaction checks a parsed transaction against the schema for
// its set id and the given version, optionally under a partner overlay.
// Element-level findings, structural findings, dependency findings and
// context-rule findings all accumulate into one result; the input is never
// mutated.
func (e *Engine) ValidateTransaction(tx x12.Transaction, v x12.Version, opts ...x12.ValidateOpt) x12.ValidationResult {
	var opt x12.ValidateOpt
	if len(opts) > 0 {
		opt = opts[0]
	}

	res := x12.ValidationResult{Valid: true}

	var s TransactionSetSchema
	var ok bool
	if opt.PartnerID != "" {
		s, ok = e.SchemaForPartner(tx.SetID, v, opt.PartnerID)
	} else {
		s, ok = e.Schema(tx.SetID, v)
	}
	if !ok {
		res.Merge(errorResult(x12.Issue{
			Code:         x12.CodeUnknownTransactionSet,
			SegmentIndex: -1,
			Message:      "no schema registered for transaction set " + tx.SetID + " version " + v.String(),
		}))
		return res
	}

	counts := map[string]int{}
	firstIndex := map[string]int{}
	currentLevel := LevelHeader
	warnedEarlyDetail := false

	mandatoryHeaders := map[string]bool{}
	for _, ss := range s.Segments {
		if ss.Level == LevelHeader && ss.Requirement == x12.Mandatory {
			mandatoryHeaders[ss.ID] = false
		}
	}

	for i, seg := range tx.Segments {
		if opt.FailFast && len(res.Errors) > 0 {
			return res
		}

		ss := s.segment(seg.ID)
		counts[seg.ID]++
		if _, seen := firstIndex[seg.ID]; !seen {
			firstIndex[seg.ID] = i
		}
		if _, tracked := mandatoryHeaders[seg.ID]; tracked {
			mandatoryHeaders[seg.ID] = true
		}

		if ss == nil {
			// Unknown to this transaction set's schema: graceful continuation
			// with a warning; strict element rejection happens below when a
			// registry definition exists for the id.
			res.Warnings = x12.AppendIssues(res.Warnings, x12.Issue{
				Code:         x12.CodeUnknownSegment,
				Segment:      seg.ID,
				SegmentIndex: i,
				Message:      "segment not defined in transaction set " + s.SetID,
			})
		} else {
			if ss.MaxUse > 0 && counts[seg.ID] > ss.MaxUse {
				res.Merge(errorResult(x12.Issue{
					Code:         x12.CodeSegmentUsageExceeded,
					Segment:      seg.ID,
					SegmentIndex: i,
					Message:      "segment exceeds its maximum usage",
					Params:       map[string]any{"maxUse": ss.MaxUse, "got": counts[seg.ID]},
				}))
			}

			if ss.Level < currentLevel {
				res.Warnings = x12.AppendIssues(res.Warnings, x12.Issue{
					Code:         x12.CodeHierarchyOrder,
					Segment:      seg.ID,
					SegmentIndex: i,
					Message:      "segment moves backwards in hierarchy",
					Params:       map[string]any{"from": currentLevel.String(), "to": ss.Level.String()},
				})
			} else {
				currentLevel = ss.Level
			}
			if ss.Level > LevelHeader && !warnedEarlyDetail && !allSeen(mandatoryHeaders) {
				warnedEarlyDetail = true
				res.Warnings = x12.AppendIssues(res.Warnings, x12.Issue{
					Code:         x12.CodeHierarchyOrder,
					Segment:      seg.ID,
					SegmentIndex: i,
					Message:      "detail segment before all mandatory header segments",
				})
			}

			for _, dep := range ss.Dependencies {
				if dep.Kind != MustFollow {
					continue
				}
				if _, seen := firstIndex[dep.On]; !seen {
					res.Merge(errorResult(x12.Issue{
						Code:         x12.CodeDependencyViolation,
						Segment:      seg.ID,
						SegmentIndex: i,
						Message:      "segment requires " + dep.On + " to appear before it",
						Params:       map[string]any{"dependsOn": dep.On},
					}))
				}
			}
		}

		segRes := e.validateElements(seg, v, ss)
		attachIndex(&segRes, i)
		res.Merge(segRes)

		if ss != nil && len(segRes.Errors) == 0 {
			for _, rule := range ss.Rules {
				if it, failed := evalRule(rule, seg, tx); failed {
					it.SegmentIndex = i
					switch rule.Severity {
					case x12.Error:
						res.Merge(errorResult(it))
					case x12.Warn:
						res.Warnings = x12.AppendIssues(res.Warnings, it)
					}
				}
			}
		}
	}

	for _, ss := range s.Segments {
		if ss.Requirement == x12.Mandatory && counts[ss.ID] == 0 {
			res.Merge(errorResult(x12.Issue{
				Code:         x12.CodeMissingRequiredSegment,
				Segment:      ss.ID,
				SegmentIndex: -1,
				Message:      "mandatory segment missing from transaction",
			}))
		}
		for _, dep := range ss.Dependencies {
			switch dep.Kind {
			case RequiredIf:
				if counts[dep.On] > 0 && counts[ss.ID] == 0 {
					res.Merge(errorResult(x12.Issue{
						Code:         x12.CodeDependencyViolation,
						Segment:      ss.ID,
						SegmentIndex: -1,
						Message:      "segment is required when " + dep.On + " is present",
						Params:       map[string]any{"dependsOn": dep.On},
					}))
				}
			case MustPrecede:
				si, sOK := firstIndex[ss.ID]
				di, dOK := firstIndex[dep.On]
				if sOK && dOK && si > di {
					res.Merge(errorResult(x12.Issue{
						Code:         x12.CodeDependencyViolation,
						Segment:      ss.ID,
						SegmentIndex: si,
						Message:      "segment must precede " + dep.On,
						Params:       map[string]any{"dependsOn": dep.On},
					}))
				}
			case MutuallyExclusive:
				if counts[ss.ID] > 0 && counts[dep.On] > 0 {
					res.Merge(errorResult(x12.Issue{
						Code:         x12.CodeDependencyViolation,
						Segment:      ss.ID,
						SegmentIndex: firstIndex[ss.ID],
						Message:      "segment cannot appear together with " + dep.On,
						Params:       map[string]any{"dependsOn": dep.On},
					}))
				}
			}
		}
	}

	return res
}

// validateElements runs element-level validation for one segment, applying
// any partner overlay patches the schema entry carries. Envelope and other
// unregistered segments are skipped at this level.
func (e *Engine) validateElements(seg x12.Segment, v x12.Version, ss *SegmentSchema) x12.ValidationResult {
	def, ok := e.registry.Lookup(v, seg.ID)
	if !ok {
		return x12.ValidationResult{Valid: true}
	}
	return x12.ValidateAgainst(seg, patchedDefinition(def, ss))
}

func evalRule(rule ContextRule, seg x12.Segment, tx x12.Transaction) (x12.Issue, bool) {
	if rule.When != nil && seg.Element(rule.When.Element) != rule.When.Equals {
		return x12.Issue{}, false
	}

	fail := func(msg string, params map[string]any) (x12.Issue, bool) {
		return x12.Issue{
			Code:    x12.CodeBusinessRule,
			Segment: seg.ID,
			Element: rule.Element,
			Message: msg,
			Params:  mergeRuleParams(rule, params),
		}, true
	}

	switch rule.Check {
	case CheckPositive:
		val := seg.Element(rule.Element)
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if val == "" || err != nil || f <= 0 {
			return fail("value must be positive", map[string]any{"got": val})
		}
	case CheckNonEmpty:
		if !seg.Has(rule.Element) {
			return fail("value must be present", nil)
		}
	case CheckInCodes:
		val := seg.Element(rule.Element)
		for _, c := range rule.Codes {
			if val == c {
				return x12.Issue{}, false
			}
		}
		return fail("value is not an allowed code", map[string]any{"got": val, "allowed": rule.Codes})
	case CheckAnyPresent:
		for _, pos := range rule.Elements {
			if seg.Has(pos) {
				return x12.Issue{}, false
			}
		}
		return fail("at least one of the listed elements must be present", map[string]any{"elements": rule.Elements})
	case CheckLineCount:
		want := 0
		for _, s := range tx.Segments {
			if s.ID == rule.CountOf {
				want++
			}
		}
		got, err := strconv.Atoi(seg.Element(rule.Element))
		if err != nil || got != want {
			return fail("count does not match "+rule.CountOf+" occurrences",
				map[string]any{"expected": want, "got": seg.Element(rule.Element)})
		}
	}
	return x12.Issue{}, false
}

func mergeRuleParams(rule ContextRule, params map[string]any) map[string]any {
	if params == nil {
		params = map[string]any{}
	}
	params["rule"] = rule.ID
	return params
}

func errorResult(it x12.Issue) x12.ValidationResult {
	return x12.ValidationResult{Valid: false, Errors: x12.Issues{it}}
}

func attachIndex(res *x12.ValidationResult, i int) {
	for j := range res.Errors {
		if res.Errors[j].SegmentIndex < 0 {
			res.Errors[j].SegmentIndex = i
		}
	}
	for j := range res.Warnings {
		if res.Warnings[j].SegmentIndex < 0 {
			res.Warnings[j].SegmentIndex = i
		}
	}
}

func allSeen(m map[string]bool) bool {
	for _, seen := range m {
		if !seen {
			return false
		}
	}
	return true
}
