// Package config provides configuration resolution, merging, and validation
// facilities for the application.
//
// Every setting is resolved from the following sources, first hit wins:
//  1. Environment variables
//  2. Flat key=value configuration file (CONFIG_FILE, default "conf.env")
//  3. Built-in defaults
//
// The main entry point is [GetStructuredConfig], which produces the immutable
// snapshot used for the whole process lifetime. [Resolver] exposes the same
// precedence for single keys.
package config
