package config

const (
	DefaultSubjectLimit   = 100
	DefaultBreaklineChar  = "|"
	DefaultBreakingPrefix = "BREAKING CHANGE:"
	DefaultFooterPrefix   = "ISSUES CLOSED:"
)

// Default returns the commit configuration of the lispy interpreter project.
func Default() File {
	return File{
		Types: []CommitType{
			{Value: "✨ feat", Name: "✨ feat:     新機能の追加"},
			{Value: "🐛 fix", Name: "🐛 fix:      バグ修正"},
			{Value: "📝 docs", Name: "📝 docs:     ドキュメントのみの変更"},
			{Value: "🎨 style", Name: "🎨 style:    コードの整形"},
			{Value: "♻️ refactor", Name: "♻️ refactor: リファクタリング"},
			{Value: "🚀 perf", Name: "🚀 perf:     パフォーマンス改善"},
			{Value: "🧪 test", Name: "🧪 test:     テストの追加・修正"},
			{Value: "🔨 chore", Name: "🔨 chore:    ビルド・開発環境"},
			{Value: "🔧 ci", Name: "🔧 ci:       CI/CD設定"},
			{Value: "🎉 init", Name: "🎉 init:     プロジェクト初期化"},
		},
		Scopes:               []string{"interpreter", "test", "config", "commitizen", "setup"},
		AllowCustomScopes:    boolPtr(true),
		AllowBreakingChanges: []string{"feat", "fix"},
		SubjectLimit:         intPtr(DefaultSubjectLimit),
	}
}

// optionalDefaults holds the values filled in for keys a file omits. Types,
// scopes and breaking change types are never defaulted.
func optionalDefaults() File {
	return File{
		AllowCustomScopes: boolPtr(true),
		SubjectLimit:      intPtr(DefaultSubjectLimit),
		BreaklineChar:     DefaultBreaklineChar,
		BreakingPrefix:    DefaultBreakingPrefix,
		FooterPrefix:      DefaultFooterPrefix,
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(n int) *int {
	return &n
}
