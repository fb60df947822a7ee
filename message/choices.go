package message

import "github.com/jeffrom/czconfig/config"

type ChoiceKind int

const (
	_ ChoiceKind = iota

	ChoiceType
	ChoiceScope
	ChoiceEmptyScope
	ChoiceCustomScope
)

func (k ChoiceKind) String() string {
	switch k {
	case ChoiceType:
		return "type"
	case ChoiceScope:
		return "scope"
	case ChoiceEmptyScope:
		return "empty"
	case ChoiceCustomScope:
		return "custom"
	case 0:
		return "<INVALID>"
	default:
		return "<UNKNOWN>"
	}
}

// Choice is one entry of a selection menu.
type Choice struct {
	Kind  ChoiceKind
	Name  string
	Value string
}

// TypeChoices returns the commit type menu, in configured order.
func TypeChoices(cfg *config.Config) []Choice {
	types := cfg.Types()
	choices := make([]Choice, 0, len(types))
	for _, t := range types {
		choices = append(choices, Choice{Kind: ChoiceType, Name: t.Name, Value: t.Value})
	}
	return choices
}

// ScopeChoices returns the scope menu. When custom scopes are allowed, an
// entry for no scope and an entry for typing one in follow the configured
// scopes. The custom entry has an empty Value; the prompt is expected to ask
// for the text itself.
func ScopeChoices(cfg *config.Config) []Choice {
	scopes := cfg.Scopes()
	choices := make([]Choice, 0, len(scopes)+2)
	for _, s := range scopes {
		choices = append(choices, Choice{Kind: ChoiceScope, Name: s, Value: s})
	}
	if cfg.AllowCustomScopes() {
		choices = append(choices,
			Choice{Kind: ChoiceEmptyScope, Name: ChoiceEmptyScope.String()},
			Choice{Kind: ChoiceCustomScope, Name: ChoiceCustomScope.String()},
		)
	}
	return choices
}
