// Package config defines the commit prompt configuration: the permitted
// commit types, scopes, breaking change policy and subject length limit.
package config

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/imdario/mergo"
)

// File is the persisted form of a commit configuration. It is decoded from
// one of the recognized configuration files and turned into a Config by
// New.
type File struct {
	Types                []CommitType `json:"types" toml:"types"`
	Scopes               []string     `json:"scopes" toml:"scopes"`
	AllowCustomScopes    *bool        `json:"allowCustomScopes,omitempty" toml:"allowCustomScopes,omitempty"`
	AllowBreakingChanges []string     `json:"allowBreakingChanges" toml:"allowBreakingChanges"`
	SubjectLimit         *int         `json:"subjectLimit,omitempty" toml:"subjectLimit,omitempty"`
	BreaklineChar        string       `json:"breaklineChar,omitempty" toml:"breaklineChar,omitempty"`
	BreakingPrefix       string       `json:"breakingPrefix,omitempty" toml:"breakingPrefix,omitempty"`
	FooterPrefix         string       `json:"footerPrefix,omitempty" toml:"footerPrefix,omitempty"`
	UpperCaseSubject     bool         `json:"upperCaseSubject,omitempty" toml:"upperCaseSubject,omitempty"`
}

// Config is a validated commit configuration. It has no setters; the
// accessors return copies, so a *Config can be shared freely once built.
type Config struct {
	types                []CommitType
	scopes               []string
	allowCustomScopes    bool
	allowBreakingChanges []string
	subjectLimit         int
	breaklineChar        string
	breakingPrefix       string
	footerPrefix         string
	upperCaseSubject     bool
}

// New fills in defaults for omitted optional keys, validates the result and
// returns the Config. Validation failures are reported as *SchemaError,
// joined together when there is more than one.
func New(f File) (*Config, error) {
	defaults := optionalDefaults()
	// explicitly set pointers are kept, so "allowCustomScopes: false" and
	// "subjectLimit: 0" survive the merge.
	if f.AllowCustomScopes != nil {
		defaults.AllowCustomScopes = nil
	}
	if f.SubjectLimit != nil {
		defaults.SubjectLimit = nil
	}
	if err := mergo.Merge(&f, defaults); err != nil {
		return nil, fmt.Errorf("config: applying defaults: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &Config{
		types:                append([]CommitType(nil), f.Types...),
		scopes:               append([]string(nil), f.Scopes...),
		allowCustomScopes:    *f.AllowCustomScopes,
		allowBreakingChanges: append([]string(nil), f.AllowBreakingChanges...),
		subjectLimit:         *f.SubjectLimit,
		breaklineChar:        f.BreaklineChar,
		breakingPrefix:       f.BreakingPrefix,
		footerPrefix:         f.FooterPrefix,
		upperCaseSubject:     f.UpperCaseSubject,
	}, nil
}

// MustDefault returns the validated default configuration. It panics if the
// built-in defaults are invalid.
func MustDefault() *Config {
	cfg, err := New(Default())
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) Types() []CommitType {
	return append([]CommitType(nil), c.types...)
}

func (c *Config) Scopes() []string {
	return append([]string(nil), c.scopes...)
}

func (c *Config) AllowCustomScopes() bool { return c.allowCustomScopes }

func (c *Config) AllowBreakingChanges() []string {
	return append([]string(nil), c.allowBreakingChanges...)
}

func (c *Config) SubjectLimit() int { return c.subjectLimit }
func (c *Config) BreaklineChar() string { return c.breaklineChar }
func (c *Config) BreakingPrefix() string { return c.breakingPrefix }
func (c *Config) FooterPrefix() string { return c.footerPrefix }
func (c *Config) UpperCaseSubject() bool { return c.upperCaseSubject }

// LookupType returns the type whose value is exactly value.
func (c *Config) LookupType(value string) (CommitType, bool) {
	for _, t := range c.types {
		if t.Value == value {
			return t, true
		}
	}
	return CommitType{}, false
}

// LookupKeyword returns the first type whose keyword is kw.
func (c *Config) LookupKeyword(kw string) (CommitType, bool) {
	for _, t := range c.types {
		if t.Keyword() == kw {
			return t, true
		}
	}
	return CommitType{}, false
}

// HasScope reports whether scope is one of the enumerated scopes.
func (c *Config) HasScope(scope string) bool {
	return oneOf(scope, c.scopes)
}

// BreakingAllowed reports whether commits with the keyword kw may declare
// breaking changes.
func (c *Config) BreakingAllowed(kw string) bool {
	return oneOf(kw, c.allowBreakingChanges)
}

// File returns the persisted form of c, with every optional key set.
func (c *Config) File() File {
	return File{
		Types:                c.Types(),
		Scopes:               c.Scopes(),
		AllowCustomScopes:    boolPtr(c.allowCustomScopes),
		AllowBreakingChanges: c.AllowBreakingChanges(),
		SubjectLimit:         intPtr(c.subjectLimit),
		BreaklineChar:        c.breaklineChar,
		BreakingPrefix:       c.breakingPrefix,
		FooterPrefix:         c.footerPrefix,
		UpperCaseSubject:     c.upperCaseSubject,
	}
}

func (c *Config) TextSummary(w io.Writer) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("Commit types:\n")
	for _, t := range c.types {
		bw.WriteString(fmt.Sprintf("  %-16s %s\n", t.Keyword(), t.Name))
	}

	if len(c.scopes) > 0 {
		bw.WriteString(fmt.Sprintf("Scopes: %s\n", strings.Join(c.scopes, ", ")))
	}
	bw.WriteString(fmt.Sprintf("Custom scopes: %t\n", c.allowCustomScopes))
	if len(c.allowBreakingChanges) > 0 {
		bw.WriteString(fmt.Sprintf("Breaking changes allowed for: %s\n", strings.Join(c.allowBreakingChanges, ", ")))
	}
	bw.WriteString(fmt.Sprintf("Subject limit: %d\n", c.subjectLimit))

	return bw.Flush()
}

func oneOf(s string, l []string) bool {
	for _, cand := range l {
		if s == cand {
			return true
		}
	}
	return false
}
