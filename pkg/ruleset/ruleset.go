package ruleset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"
	_ "time/tzdata"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/idcheck/pkg/validator"
)

// Rule types accepted in the "type" field of a rule.
const (
	TypeBirthNumber           = "birth_number"
	TypeBirthNumberMinorChild = "birth_number_minor_child"
	TypeIdentificationNumber  = "identification_number"
	TypeVIN                   = "vin"
	TypeDateFormat            = "date_format"
	TypeDateGreaterThan       = "date_greater_than"
	TypeDateLessThan          = "date_less_than"
	TypePhoneNumberCZSK       = "phone_number_czsk"
	TypeJSON                  = "json"
	TypeStringContains        = "string_contains"
	TypeUniqueValue           = "unique_value"
)

//go:embed default.yaml
var defaultDocument []byte

// Rule is a named, configured validator.
type Rule struct {
	Name      string
	Type      string
	Validator validator.Validator
}

// Set is an immutable collection of rules built from a document.
// It is safe for concurrent use.
type Set struct {
	rules map[string]Rule
	names []string
}

type document struct {
	Rules map[string]yaml.Node `yaml:"rules"`
}

type header struct {
	Type string `yaml:"type"`
}

type options struct {
	clock func() time.Time
}

// Option configures how rules are built.
type Option func(*options)

// WithClock sets the clock of date dependent rules (birth numbers, minor
// child, relative date bounds).
func WithClock(clock func() time.Time) Option {
	return func(o *options) { o.clock = clock }
}

// Parse builds a rule set from a YAML document. Every rule is constructed
// eagerly, so invalid options are reported here and never during validation.
func Parse(data []byte, opts ...Option) (*Set, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrInvalidDocument, err)
	}

	set := &Set{rules: make(map[string]Rule, len(doc.Rules))}
	for name, node := range doc.Rules {
		rule, err := buildRule(name, &node, o)
		if err != nil {
			return nil, err
		}
		set.rules[name] = rule
		set.names = append(set.names, name)
	}
	slices.Sort(set.names)
	return set, nil
}

// LoadFile reads and parses a rule set file.
func LoadFile(path string, opts ...Option) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidDocument, err)
	}
	return Parse(data, opts...)
}

// Default returns the built-in rule set: one rule per validator that needs
// no site specific options. Date bounds and uniqueness checks are not included.
func Default(opts ...Option) *Set {
	set, err := Parse(defaultDocument, opts...)
	if err != nil {
		panic(fmt.Sprintf("ruleset: built-in document: %v", err))
	}
	return set
}

// Names returns the rule names in lexical order.
func (s *Set) Names() []string {
	return slices.Clone(s.names)
}

// Rules returns the rules in lexical order of their names.
func (s *Set) Rules() []Rule {
	out := make([]Rule, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, s.rules[name])
	}
	return out
}

// Get returns the rule registered under name.
func (s *Set) Get(name string) (Rule, error) {
	rule, ok := s.rules[name]
	if !ok {
		return Rule{}, fmt.Errorf("%w: %q", ErrRuleNotFound, name)
	}
	return rule, nil
}

// Validate runs the named rule against v.
func (s *Set) Validate(name string, v validator.Value) (validator.Outcome, error) {
	rule, err := s.Get(name)
	if err != nil {
		return validator.Outcome{}, err
	}
	return rule.Validator.Validate(v), nil
}

func buildRule(name string, node *yaml.Node, o options) (Rule, error) {
	var h header
	if err := node.Decode(&h); err != nil {
		return Rule{}, errors.Join(ErrInvalidDocument, fmt.Errorf("rule %q: %w", name, err))
	}

	v, err := build(h.Type, node, o)
	if err != nil {
		if errors.Is(err, ErrUnknownType) {
			return Rule{}, fmt.Errorf("rule %q: %w: %q", name, ErrUnknownType, h.Type)
		}
		return Rule{}, errors.Join(ErrInvalidRule, fmt.Errorf("rule %q: %w", name, err))
	}
	return Rule{Name: name, Type: h.Type, Validator: v}, nil
}

func build(typ string, node *yaml.Node, o options) (validator.Validator, error) {
	switch typ {
	case TypeBirthNumber:
		var cfg validator.BirthNumberConfig
		if err := decodeOptions(node, &cfg); err != nil {
			return nil, err
		}
		cfg.Clock = o.clock
		return validator.NewBirthNumber(cfg)

	case TypeBirthNumberMinorChild:
		cfg := validator.DefaultBirthNumberMinorChildConfig()
		if err := decodeOptions(node, &cfg); err != nil {
			return nil, err
		}
		cfg.Clock = o.clock
		return validator.NewBirthNumberMinorChild(cfg)

	case TypeIdentificationNumber:
		var cfg validator.IdentificationNumberConfig
		if err := decodeOptions(node, &cfg); err != nil {
			return nil, err
		}
		return validator.NewIdentificationNumber(cfg)

	case TypeVIN:
		cfg := validator.DefaultVINConfig()
		if err := decodeOptions(node, &cfg); err != nil {
			return nil, err
		}
		return validator.NewVIN(cfg)

	case TypeDateFormat:
		var cfg validator.DateFormatConfig
		if err := decodeOptions(node, &cfg); err != nil {
			return nil, err
		}
		return validator.NewDateFormat(cfg)

	case TypeDateGreaterThan:
		var cfg validator.DateGreaterThanConfig
		if err := decodeOptions(node, &cfg); err != nil {
			return nil, err
		}
		cfg.Clock = o.clock
		return validator.NewDateGreaterThan(cfg)

	case TypeDateLessThan:
		var cfg validator.DateLessThanConfig
		if err := decodeOptions(node, &cfg); err != nil {
			return nil, err
		}
		cfg.Clock = o.clock
		return validator.NewDateLessThan(cfg)

	case TypePhoneNumberCZSK:
		var cfg validator.PhoneNumberCZSKConfig
		if err := decodeOptions(node, &cfg); err != nil {
			return nil, err
		}
		return validator.NewPhoneNumberCZSK(cfg)

	case TypeJSON:
		if err := decodeOptions(node, &struct{}{}); err != nil {
			return nil, err
		}
		return validator.NewJSON(), nil

	case TypeStringContains:
		var cfg validator.StringContainsConfig
		if err := decodeOptions(node, &cfg); err != nil {
			return nil, err
		}
		return validator.NewStringContains(cfg)

	case TypeUniqueValue:
		var raw struct {
			validator.UniqueValueConfig `yaml:",inline"`
			Haystack                    []any `yaml:"haystack"`
		}
		if err := decodeOptions(node, &raw); err != nil {
			return nil, err
		}
		cfg := raw.UniqueValueConfig
		for _, h := range raw.Haystack {
			cfg.Haystack = append(cfg.Haystack, validator.ValueOf(h))
		}
		return validator.NewUniqueValue(cfg)

	default:
		return nil, ErrUnknownType
	}
}

// decodeOptions decodes the options of a rule into out. The "type" key is
// skipped and any other key out does not declare is an error, so a misspelt
// option fails the load instead of silently keeping its default.
func decodeOptions(node *yaml.Node, out any) error {
	opts := *node
	if node.Kind == yaml.MappingNode {
		opts.Content = make([]*yaml.Node, 0, len(node.Content))
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == "type" {
				continue
			}
			opts.Content = append(opts.Content, node.Content[i], node.Content[i+1])
		}
	}

	data, err := yaml.Marshal(&opts)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
