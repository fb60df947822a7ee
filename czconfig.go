// Package czconfig provides the commit prompt configuration read by
// interactive commit tools: the permitted commit types, scopes, breaking
// change policy and subject length limit.
//
// Related packages: config, message, model, runner, i18n
package czconfig

import "github.com/jeffrom/czconfig/config"

// Config is a validated, read-only commit configuration. Build one with
// config.New, config.Load or config.Discover and pass it by pointer.
//
// See "go doc github.com/jeffrom/czconfig/config Config" for more information.
type Config = config.Config

// File is the persisted form of a Config.
type File = config.File
