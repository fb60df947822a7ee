// Package message turns commit prompt answers into commit messages and back,
// following the rules of a config.Config.
package message

import (
	"errors"
	"fmt"
	"strings"

	multierror "github.com/hashicorp/go-multierror"

	"github.com/jeffrom/czconfig/config"
	"github.com/jeffrom/czconfig/model"
)

var (
	ErrUnknownType        = errors.New("unknown commit type")
	ErrScopeNotAllowed    = errors.New("scope is not allowed")
	ErrInvalidScope       = errors.New("invalid scope")
	ErrBreakingNotAllowed = errors.New("breaking changes are not allowed for this type")
	ErrEmptySubject       = errors.New("subject is empty")
	ErrMultilineSubject   = errors.New("subject must be a single line")
	ErrMalformedHeader    = errors.New("malformed commit header")
)

// ResolveType finds the commit type named by s, either by its full value
// ("✨ feat") or by its bare keyword ("feat"). A value that merely shares a
// keyword with a configured type ("🐛 feat") is unknown.
func ResolveType(cfg *config.Config, s string) (config.CommitType, error) {
	if t, ok := cfg.LookupType(s); ok {
		return t, nil
	}
	if isBareKeyword(s) {
		if t, ok := cfg.LookupKeyword(config.Keyword(s)); ok {
			return t, nil
		}
	}
	return config.CommitType{}, fmt.Errorf("%w %q", ErrUnknownType, s)
}

func isBareKeyword(s string) bool {
	kw := config.Keyword(s)
	return kw != "" && kw == strings.TrimSpace(s)
}

// AllowsBreaking reports whether the prompt should ask for breaking change
// details after typ was selected.
func AllowsBreaking(cfg *config.Config, typ string) bool {
	t, err := ResolveType(cfg, typ)
	if err != nil {
		return false
	}
	return cfg.BreakingAllowed(t.Keyword())
}

// CheckScope validates a selected or typed scope. The empty scope is always
// allowed.
func CheckScope(cfg *config.Config, scope string) error {
	if scope == "" || cfg.HasScope(scope) {
		return nil
	}
	if strings.ContainsAny(scope, "()\r\n") || strings.TrimSpace(scope) != scope {
		return fmt.Errorf("%w %q", ErrInvalidScope, scope)
	}
	if !cfg.AllowCustomScopes() {
		return fmt.Errorf("%w: %q", ErrScopeNotAllowed, scope)
	}
	return nil
}

// Check validates every part of c against cfg and returns all problems
// found.
func Check(cfg *config.Config, c model.Commit) error {
	var result *multierror.Error

	t, err := ResolveType(cfg, c.Type)
	if err != nil {
		result = multierror.Append(result, err)
	}
	if err := CheckScope(cfg, c.Scope); err != nil {
		result = multierror.Append(result, err)
	}
	if err := CheckSubject(cfg, c.Subject); err != nil {
		result = multierror.Append(result, err)
	}
	if c.IsBreaking() && t.Value != "" && !cfg.BreakingAllowed(t.Keyword()) {
		result = multierror.Append(result, fmt.Errorf("%w: %q", ErrBreakingNotAllowed, t.Keyword()))
	}

	if result == nil {
		return nil
	}
	if len(result.Errors) == 1 {
		return result.Errors[0]
	}
	return result.ErrorOrNil()
}

// Normalize resolves the type to its configured value, trims the answers and
// applies the subject casing and line break rules of cfg.
func Normalize(cfg *config.Config, c model.Commit) model.Commit {
	if t, err := ResolveType(cfg, c.Type); err == nil {
		c.Type = t.Value
	}
	c.Scope = strings.TrimSpace(c.Scope)
	c.Subject = strings.TrimSpace(c.Subject)
	if cfg.UpperCaseSubject() {
		c.Subject = upperFirst(c.Subject)
	}
	c.Body = breaklines(cfg, c.Body)
	c.Breaking = breaklines(cfg, c.Breaking)
	c.Footer = breaklines(cfg, c.Footer)
	return c
}

// Compose builds the commit message for the answers in c:
//
//	<type>(<scope>): <subject>
//
//	<body>
//
//	BREAKING CHANGE: <breaking>
//
//	ISSUES CLOSED: <footer>
//
// The scope and each trailing block are left out when empty.
func Compose(cfg *config.Config, c model.Commit) (string, error) {
	c = Normalize(cfg, c)
	if err := Check(cfg, c); err != nil {
		return "", err
	}

	parts := []string{c.Header()}
	if c.Body != "" {
		parts = append(parts, c.Body)
	}
	if c.Breaking != "" {
		parts = append(parts, cfg.BreakingPrefix()+" "+c.Breaking)
	}
	if c.Footer != "" {
		parts = append(parts, cfg.FooterPrefix()+" "+c.Footer)
	}
	return strings.Join(parts, "\n\n"), nil
}

func breaklines(cfg *config.Config, s string) string {
	s = strings.TrimSpace(s)
	if s == "" || cfg.BreaklineChar() == "" {
		return s
	}
	lines := strings.Split(s, cfg.BreaklineChar())
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}
