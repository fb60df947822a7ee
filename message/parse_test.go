package message

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeffrom/czconfig/config"
	"github.com/jeffrom/czconfig/model"
)

func TestParse(t *testing.T) {
	cfg := newTestConfig(t, nil)

	tcs := []struct {
		name   string
		msg    string
		expect model.Commit
	}{
		{
			name:   "scoped",
			msg:    "feat(core): add widget",
			expect: model.Commit{Type: "feat", Scope: "core", Subject: "add widget"},
		},
		{
			name:   "unscoped",
			msg:    "fix: fix widget\n",
			expect: model.Commit{Type: "fix", Subject: "fix widget"},
		},
		{
			name:   "bang",
			msg:    "feat!: drop widget",
			expect: model.Commit{Type: "feat", Subject: "drop widget", Breaking: "drop widget"},
		},
		{
			name: "full",
			msg: `feat(core): replace widget

widgets are now gadgets
mostly

second paragraph

BREAKING CHANGE: Widget was removed

ISSUES CLOSED: #12
# Please enter the commit message for your changes.
# Lines starting with '#' will be ignored.
`,
			expect: model.Commit{
				Type:     "feat",
				Scope:    "core",
				Subject:  "replace widget",
				Body:     "widgets are now gadgets\nmostly\n\nsecond paragraph",
				Breaking: "Widget was removed",
				Footer:   "#12",
			},
		},
		{
			name:   "unknown-type",
			msg:    "perf: faster",
			expect: model.Commit{Type: "perf", Subject: "faster"},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			c, err := Parse(cfg, tc.msg)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, c)
		})
	}
}

func TestParseEmojiTypes(t *testing.T) {
	cfg := config.MustDefault()

	c, err := Parse(cfg, "♻️ refactor(interpreter): split evaluator")
	require.NoError(t, err)
	assert.Equal(t, model.Commit{Type: "♻️ refactor", Scope: "interpreter", Subject: "split evaluator"}, c)

	// bare keyword resolves to the configured value
	c, err = Parse(cfg, "fix: off by one")
	require.NoError(t, err)
	assert.Equal(t, "🐛 fix", c.Type)

	// an unconfigured emoji is kept as written and fails the type check
	c, err = Parse(cfg, "🐛 feat: add thing")
	require.NoError(t, err)
	assert.Equal(t, "🐛 feat", c.Type)
	assert.True(t, errors.Is(Check(cfg, c), ErrUnknownType))

	c, err = Parse(cfg, "feature: add thing")
	require.NoError(t, err)
	assert.Equal(t, "feature", c.Type)
	assert.True(t, errors.Is(Check(cfg, c), ErrUnknownType))
}

func TestParseMalformed(t *testing.T) {
	cfg := newTestConfig(t, nil)

	for _, msg := range []string{"", "# only a comment", "no separator here", "feat(core) missing colon", ": no type"} {
		t.Run(msg, func(t *testing.T) {
			_, err := Parse(cfg, msg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedHeader), "got %v", err)
		})
	}
}

func TestComposeParseRoundTrip(t *testing.T) {
	cfg := config.MustDefault()
	answers := model.Commit{
		Type:     "🐛 fix",
		Scope:    "interpreter",
		Subject:  "handle empty lists",
		Body:     "eval of () returned nil|now returns an empty list",
		Breaking: "empty list evaluation changed",
		Footer:   "#3",
	}

	msg, err := Compose(cfg, answers)
	require.NoError(t, err)

	parsed, err := Parse(cfg, msg)
	require.NoError(t, err)
	assert.Equal(t, Normalize(cfg, answers), parsed)

	again, err := Compose(cfg, parsed)
	require.NoError(t, err)
	assert.Equal(t, msg, again)
}
