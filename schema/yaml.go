package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"

	x12 "github.com/edikit/x12"
)

// YAML authoring support. Transaction set schemas and partner agreements
// can be maintained as documents instead of Go code; LoadSchema and
// LoadAgreement parse and resolve them into the in-memory forms the Engine
// registers. Enum fields use lower-camel tokens ("mustFollow", "anyPresent")
// so documents read close to the Go identifiers.

type schemaDoc struct {
	SetID       string       `yaml:"setId"`
	Version     string       `yaml:"version"`
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Segments    []segmentDoc `yaml:"segments"`
}

type segmentDoc struct {
	ID           string          `yaml:"id"`
	Name         string          `yaml:"name"`
	Requirement  string          `yaml:"requirement"`
	MaxUse       int             `yaml:"maxUse"`
	Level        string          `yaml:"level"`
	Dependencies []dependencyDoc `yaml:"dependencies"`
	Rules        []ruleDoc       `yaml:"rules"`
}

type dependencyDoc struct {
	On        string `yaml:"on"`
	Kind      string `yaml:"kind"`
	Condition string `yaml:"condition"`
}

type ruleDoc struct {
	ID          string        `yaml:"id"`
	Description string        `yaml:"description"`
	Element     int           `yaml:"element"`
	Elements    []int         `yaml:"elements"`
	Check       string        `yaml:"check"`
	Codes       []string      `yaml:"codes"`
	CountOf     string        `yaml:"countOf"`
	Severity    string        `yaml:"severity"`
	When        *conditionDoc `yaml:"when"`
}

type conditionDoc struct {
	Element int    `yaml:"element"`
	Equals  string `yaml:"equals"`
}

type agreementDoc struct {
	SetID          string             `yaml:"setId"`
	Version        string             `yaml:"version"`
	PartnerID      string             `yaml:"partnerId"`
	Name           string             `yaml:"name"`
	Customizations []customizationDoc `yaml:"customizations"`
}

type customizationDoc struct {
	Segment     string   `yaml:"segment"`
	Element     int      `yaml:"element"`
	Kind        string   `yaml:"kind"`
	Codes       []string `yaml:"codes"`
	MinLength   *int     `yaml:"minLength"`
	MaxLength   *int     `yaml:"maxLength"`
	Description string   `yaml:"description"`
}

// AgreementDoc is a parsed agreement document together with the (set,
// version) pair it targets.
type AgreementDoc struct {
	SetID     string
	Version   x12.Version
	Agreement Agreement
}

// LoadSchema parses a YAML transaction set schema document.
func LoadSchema(data []byte) (TransactionSetSchema, error) {
	var doc schemaDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return TransactionSetSchema{}, fmt.Errorf("schema document: %w", err)
	}
	if doc.SetID == "" {
		return TransactionSetSchema{}, fmt.Errorf("schema document: setId is required")
	}
	v, err := parseVersionToken(doc.Version)
	if err != nil {
		return TransactionSetSchema{}, err
	}

	out := TransactionSetSchema{
		SetID:       doc.SetID,
		Version:     v,
		Name:        doc.Name,
		Description: doc.Description,
	}
	for _, sd := range doc.Segments {
		ss := SegmentSchema{ID: sd.ID, Name: sd.Name, MaxUse: sd.MaxUse}
		if ss.ID == "" {
			return TransactionSetSchema{}, fmt.Errorf("schema document: segment without id")
		}
		if ss.Requirement, err = parseRequirement(sd.Requirement); err != nil {
			return TransactionSetSchema{}, fmt.Errorf("segment %s: %w", sd.ID, err)
		}
		if ss.Level, err = parseLevel(sd.Level); err != nil {
			return TransactionSetSchema{}, fmt.Errorf("segment %s: %w", sd.ID, err)
		}
		for _, dd := range sd.Dependencies {
			kind, err := parseDependencyKind(dd.Kind)
			if err != nil {
				return TransactionSetSchema{}, fmt.Errorf("segment %s: %w", sd.ID, err)
			}
			ss.Dependencies = append(ss.Dependencies, Dependency{On: dd.On, Kind: kind, Condition: dd.Condition})
		}
		for _, rd := range sd.Rules {
			rule, err := parseRule(rd)
			if err != nil {
				return TransactionSetSchema{}, fmt.Errorf("segment %s: %w", sd.ID, err)
			}
			ss.Rules = append(ss.Rules, rule)
		}
		out.Segments = append(out.Segments, ss)
	}
	return out, nil
}

// LoadAgreement parses a YAML trading-partner agreement document.
func LoadAgreement(data []byte) (AgreementDoc, error) {
	var doc agreementDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return AgreementDoc{}, fmt.Errorf("agreement document: %w", err)
	}
	if doc.PartnerID == "" {
		return AgreementDoc{}, fmt.Errorf("agreement document: partnerId is required")
	}
	if doc.SetID == "" {
		return AgreementDoc{}, fmt.Errorf("agreement document: setId is required")
	}
	v, err := parseVersionToken(doc.Version)
	if err != nil {
		return AgreementDoc{}, err
	}

	ag := Agreement{PartnerID: doc.PartnerID, Name: doc.Name}
	for _, cd := range doc.Customizations {
		kind, err := parseCustomizationKind(cd.Kind)
		if err != nil {
			return AgreementDoc{}, fmt.Errorf("customization for %s: %w", cd.Segment, err)
		}
		if cd.Segment == "" {
			return AgreementDoc{}, fmt.Errorf("customization without segment id")
		}
		ag.Customizations = append(ag.Customizations, Customization{
			SegmentID:   cd.Segment,
			Element:     cd.Element,
			Kind:        kind,
			Codes:       cd.Codes,
			MinLength:   cd.MinLength,
			MaxLength:   cd.MaxLength,
			Description: cd.Description,
		})
	}
	return AgreementDoc{SetID: doc.SetID, Version: v, Agreement: ag}, nil
}

func parseVersionToken(s string) (x12.Version, error) {
	switch s {
	case "4010", "004010":
		return x12.Version4010, nil
	case "5010", "005010":
		return x12.Version5010, nil
	case "8010", "008010":
		return x12.Version8010, nil
	default:
		return x12.VersionUnknown, fmt.Errorf("unsupported version %q", s)
	}
}

func parseRequirement(s string) (x12.Requirement, error) {
	switch s {
	case "mandatory":
		return x12.Mandatory, nil
	case "optional", "":
		return x12.Optional, nil
	case "conditional":
		return x12.Conditional, nil
	default:
		return 0, fmt.Errorf("unknown requirement %q", s)
	}
}

func parseLevel(s string) (HierarchyLevel, error) {
	switch s {
	case "header", "":
		return LevelHeader, nil
	case "detail":
		return LevelDetail, nil
	case "summary":
		return LevelSummary, nil
	default:
		return 0, fmt.Errorf("unknown level %q", s)
	}
}

func parseDependencyKind(s string) (DependencyKind, error) {
	switch s {
	case "mustFollow":
		return MustFollow, nil
	case "mustPrecede":
		return MustPrecede, nil
	case "mutuallyExclusive":
		return MutuallyExclusive, nil
	case "requiredIf":
		return RequiredIf, nil
	default:
		return 0, fmt.Errorf("unknown dependency kind %q", s)
	}
}

func parseCustomizationKind(s string) (CustomizationKind, error) {
	switch s {
	case "makeMandatory":
		return MakeMandatory, nil
	case "makeOptional":
		return MakeOptional, nil
	case "restrictCodes":
		return RestrictCodes, nil
	case "extendCodes":
		return ExtendCodes, nil
	case "changeLengthBounds":
		return ChangeLengthBounds, nil
	default:
		return 0, fmt.Errorf("unknown customization kind %q", s)
	}
}

func parseSeverity(s string) (x12.Severity, error) {
	switch s {
	case "error", "":
		return x12.Error, nil
	case "warn":
		return x12.Warn, nil
	case "ignore":
		return x12.Ignore, nil
	default:
		return 0, fmt.Errorf("unknown severity %q", s)
	}
}

func parseRule(rd ruleDoc) (ContextRule, error) {
	rule := ContextRule{
		ID:          rd.ID,
		Description: rd.Description,
		Element:     rd.Element,
		Elements:    rd.Elements,
		Codes:       rd.Codes,
		CountOf:     rd.CountOf,
	}
	var err error
	if rule.Severity, err = parseSeverity(rd.Severity); err != nil {
		return ContextRule{}, err
	}
	switch rd.Check {
	case "positive":
		rule.Check = CheckPositive
	case "nonEmpty":
		rule.Check = CheckNonEmpty
	case "inCodes":
		rule.Check = CheckInCodes
	case "anyPresent":
		rule.Check = CheckAnyPresent
	case "lineCount":
		rule.Check = CheckLineCount
	default:
		return ContextRule{}, fmt.Errorf("unknown check %q", rd.Check)
	}
	if rd.When != nil {
		rule.When = &Condition{Element: rd.When.Element, Equals: rd.When.Equals}
	}
	return rule, nil
}
