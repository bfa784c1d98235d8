package tuplegen

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestDefaultConfig(t *testing.T) {
	c := qt.New(t)
	cfg := DefaultConfig()
	c.Assert(cfg.Validate(), qt.IsNil)

	c.Assert(cfg.active(0), qt.IsNil)
	c.Assert(cfg.active(1).String(), qt.Equals, "tuple24 || tuple32")
	c.Assert(cfg.active(2).String(), qt.Equals, "tuple32")

	c.Assert(cfg.exclusive(0).String(), qt.Equals, "!(tuple24 || tuple32)")
	c.Assert(cfg.exclusive(1).String(), qt.Equals, "(tuple24 || tuple32) && !tuple32")
	c.Assert(cfg.exclusive(2).String(), qt.Equals, "tuple32")

	c.Assert(cfg.lo(0), qt.Equals, 0)
	c.Assert(cfg.lo(1), qt.Equals, 17)
	c.Assert(cfg.lo(2), qt.Equals, 25)
}

func TestSingleTierConstraints(t *testing.T) {
	c := qt.New(t)
	cfg := Config{Package: "tuple", Tiers: []Tier{{Max: 8}}}
	c.Assert(cfg.Validate(), qt.IsNil)
	c.Assert(cfg.active(0), qt.IsNil)
	c.Assert(cfg.exclusive(0), qt.IsNil)
}

func TestParseConfig(t *testing.T) {
	c := qt.New(t)
	cfg, err := ParseConfig([]byte(`
package: tuple
tiers:
  - max: 16
  - max: 24
    tag: tuple24
  - max: 32
    tag: tuple32
`))
	c.Assert(err, qt.IsNil)
	c.Assert(cfg, qt.DeepEquals, DefaultConfig())
}

var badConfigTests = []struct {
	about  string
	config string
	expect string
}{{
	about:  "unknown field",
	config: "package: tuple\ntiers:\n  - max: 4\n    colour: red\n",
	expect: `.*field colour not found.*`,
}, {
	about:  "bad package name",
	config: "package: 1x\ntiers:\n  - max: 4\n",
	expect: `.*package name "1x" is not an identifier.*`,
}, {
	about:  "no tiers",
	config: "package: tuple\n",
	expect: `.*no tiers.*`,
}, {
	about:  "tagged base tier",
	config: "package: tuple\ntiers:\n  - max: 4\n    tag: small\n",
	expect: `.*tier 0 has tag "small".*`,
}, {
	about:  "untagged upper tier",
	config: "package: tuple\ntiers:\n  - max: 4\n  - max: 8\n",
	expect: `.*tier 1 has no tag.*`,
}, {
	about:  "invalid tag",
	config: "package: tuple\ntiers:\n  - max: 4\n  - max: 8\n    tag: a b\n",
	expect: `.*tier 1 has invalid tag "a b".*`,
}, {
	about:  "repeated tag",
	config: "package: tuple\ntiers:\n  - max: 4\n  - max: 8\n    tag: a\n  - max: 12\n    tag: a\n",
	expect: `.*tier 2 repeats tag "a".*`,
}, {
	about:  "max not increasing",
	config: "package: tuple\ntiers:\n  - max: 8\n  - max: 8\n    tag: a\n",
	expect: `.*tier 1: max 8 does not exceed 8.*`,
}, {
	about:  "negative max",
	config: "package: tuple\ntiers:\n  - max: -1\n",
	expect: `.*tier 0: max -1 does not exceed -1.*`,
}, {
	about:  "max too large",
	config: "package: tuple\ntiers:\n  - max: 100\n",
	expect: `.*tier 0: max 100 exceeds limit 64.*`,
}}

func TestParseConfigErrors(t *testing.T) {
	c := qt.New(t)
	for _, test := range badConfigTests {
		c.Run(test.about, func(c *qt.C) {
			_, err := ParseConfig([]byte(test.config))
			c.Assert(err, qt.ErrorIs, ErrInvalidConfig)
			c.Assert(err, qt.ErrorMatches, "(?s)"+test.expect)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	c := qt.New(t)
	path := filepath.Join(c.TempDir(), "tuplegen.yaml")
	err := os.WriteFile(path, []byte("package: tup\ntiers:\n  - max: 2\n  - max: 3\n    tag: three\n"), 0o666)
	c.Assert(err, qt.IsNil)

	cfg, err := LoadConfig(path)
	c.Assert(err, qt.IsNil)
	c.Assert(cfg, qt.DeepEquals, Config{
		Package: "tup",
		Tiers:   []Tier{{Max: 2}, {Max: 3, Tag: "three"}},
	})

	_, err = LoadConfig(filepath.Join(c.TempDir(), "missing.yaml"))
	c.Assert(err, qt.ErrorMatches, `open .*missing.yaml: no such file or directory`)
}

func TestLoadCheckedInConfig(t *testing.T) {
	c := qt.New(t)
	cfg, err := LoadConfig(filepath.Join("..", "..", "tuple", "tuplegen.yaml"))
	c.Assert(err, qt.IsNil)
	c.Assert(cfg, qt.DeepEquals, DefaultConfig())
}
