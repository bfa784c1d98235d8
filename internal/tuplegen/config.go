package tuplegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/build/constraint"
	"go/token"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned (wrapped) for every configuration
// that fails validation.
var ErrInvalidConfig = errors.New("invalid tuplegen config")

// maxArityLimit bounds the largest tier. Generated code grows
// quadratically with the arity, so anything past this is almost
// certainly a typo.
const maxArityLimit = 64

// Config describes what to generate.
type Config struct {
	// Package is the name of the generated package.
	Package string `yaml:"package"`

	// Tiers lists the arity tiers in increasing order of Max.
	// The first tier is always compiled and must not have a tag;
	// every later tier is compiled when its own tag or the tag
	// of any tier above it is set.
	Tiers []Tier `yaml:"tiers"`
}

// Tier is a range of arities enabled by a single build tag.
// It covers the arities from one past the previous tier's Max up to
// and including its own Max.
type Tier struct {
	Max int    `yaml:"max"`
	Tag string `yaml:"tag,omitempty"`
}

// DefaultConfig returns the configuration used when no configuration
// file is given: arities up to 16 always, 24 with the tuple24 tag and
// 32 with the tuple32 tag.
func DefaultConfig() Config {
	return Config{
		Package: "tuple",
		Tiers: []Tier{
			{Max: 16},
			{Max: 24, Tag: "tuple24"},
			{Max: 32, Tag: "tuple32"},
		},
	}
}

// LoadConfig reads a YAML configuration from the named file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig parses and validates a YAML configuration.
// Unknown fields are rejected.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var tagPattern = regexp.MustCompile(`^[A-Za-z0-9_.]+$`)

// Validate checks that the configuration describes a well formed,
// gap-free sequence of tiers.
func (c Config) Validate() error {
	var errs error
	if !token.IsIdentifier(c.Package) {
		errs = errors.Join(errs, fmt.Errorf("package name %q is not an identifier", c.Package))
	}
	if len(c.Tiers) == 0 {
		errs = errors.Join(errs, errors.New("no tiers"))
	}
	seen := make(map[string]bool)
	prev := -1
	for i, tier := range c.Tiers {
		switch {
		case i == 0 && tier.Tag != "":
			errs = errors.Join(errs, fmt.Errorf("tier 0 has tag %q but the base tier is always compiled", tier.Tag))
		case i > 0 && tier.Tag == "":
			errs = errors.Join(errs, fmt.Errorf("tier %d has no tag", i))
		case i > 0 && !tagPattern.MatchString(tier.Tag):
			errs = errors.Join(errs, fmt.Errorf("tier %d has invalid tag %q", i, tier.Tag))
		case seen[tier.Tag]:
			errs = errors.Join(errs, fmt.Errorf("tier %d repeats tag %q", i, tier.Tag))
		}
		seen[tier.Tag] = true
		if tier.Max <= prev {
			errs = errors.Join(errs, fmt.Errorf("tier %d: max %d does not exceed %d", i, tier.Max, prev))
		}
		if tier.Max > maxArityLimit {
			errs = errors.Join(errs, fmt.Errorf("tier %d: max %d exceeds limit %d", i, tier.Max, maxArityLimit))
		}
		prev = tier.Max
	}
	if errs != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errs)
	}
	return nil
}

// lo returns the smallest arity covered by tier i.
func (c Config) lo(i int) int {
	if i == 0 {
		return 0
	}
	return c.Tiers[i-1].Max + 1
}

// active returns the build constraint under which the declarations
// of tier i are compiled, or nil if they are always compiled.
func (c Config) active(i int) constraint.Expr {
	var x constraint.Expr
	for _, tier := range c.Tiers[i:] {
		if tier.Tag == "" {
			return nil
		}
		tag := &constraint.TagExpr{Tag: tier.Tag}
		if x == nil {
			x = tag
		} else {
			x = &constraint.OrExpr{X: x, Y: tag}
		}
	}
	return x
}

// exclusive returns the build constraint that holds when tier i is the
// highest compiled tier, or nil if that is always the case.
func (c Config) exclusive(i int) constraint.Expr {
	x := c.active(i)
	if i+1 == len(c.Tiers) {
		return x
	}
	not := &constraint.NotExpr{X: c.active(i + 1)}
	if x == nil {
		return not
	}
	return &constraint.AndExpr{X: x, Y: not}
}
