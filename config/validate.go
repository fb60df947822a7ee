package config

import (
	"strings"

	multierror "github.com/hashicorp/go-multierror"
)

// Validate checks f against the configuration invariants and returns every
// violation found. Optional keys that are still unset are not reported;
// New fills them in before validating.
func (f File) Validate() error {
	var result *multierror.Error

	if len(f.Types) == 0 {
		result = multierror.Append(result, schemaErrorf("types", "at least one commit type is required"))
	}

	values := make(map[string]int, len(f.Types))
	keywords := make(map[string]string, len(f.Types))
	for i, t := range f.Types {
		if strings.TrimSpace(t.Value) == "" {
			result = multierror.Append(result, schemaErrorf("types", "entry %d has an empty value", i))
			continue
		}
		if prev, ok := values[t.Value]; ok {
			result = multierror.Append(result, schemaErrorf("types", "value %q is used by entries %d and %d", t.Value, prev, i))
		} else {
			values[t.Value] = i
		}

		kw := t.Keyword()
		if kw == "" {
			result = multierror.Append(result, schemaErrorf("types", "value %q has no keyword", t.Value))
			continue
		}
		if prev, ok := keywords[kw]; ok {
			result = multierror.Append(result, schemaErrorf("types", "values %q and %q share the keyword %q", prev, t.Value, kw))
			continue
		}
		keywords[kw] = t.Value
	}

	seenScopes := make(map[string]bool, len(f.Scopes))
	for i, s := range f.Scopes {
		if strings.TrimSpace(s) == "" {
			result = multierror.Append(result, schemaErrorf("scopes", "entry %d is empty", i))
			continue
		}
		if seenScopes[s] {
			result = multierror.Append(result, schemaErrorf("scopes", "scope %q is listed more than once", s))
		}
		seenScopes[s] = true
	}

	for _, kw := range f.AllowBreakingChanges {
		if _, ok := keywords[kw]; !ok {
			result = multierror.Append(result, schemaErrorf("allowBreakingChanges", "%q does not match any commit type keyword", kw))
		}
	}

	if f.SubjectLimit != nil && *f.SubjectLimit <= 0 {
		result = multierror.Append(result, schemaErrorf("subjectLimit", "must be positive, got %d", *f.SubjectLimit))
	}

	if result == nil {
		return nil
	}
	if len(result.Errors) == 1 {
		return result.Errors[0]
	}
	return result.ErrorOrNil()
}
