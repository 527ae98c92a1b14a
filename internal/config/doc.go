// Package config stores aicr settings and resolves the active session.
//
// Settings live in $XDG_CONFIG_HOME/aicr/config.yaml (or the OS-appropriate
// equivalent) and are managed through viper. Precedence, highest to lowest:
//
//  1. Command flags (passed as overrides to [Config.Session])
//  2. Environment variables (AICR_*, plus vendor key variables such as
//     GOOGLE_API_KEY and ANTHROPIC_API_KEY)
//  3. Config file
//  4. Built-in defaults
//
// A [Session] is the provider+model+credential triple active for one run.
// The package never prompts for credentials; a missing key is an error
// surfaced before any adapter is constructed.
package config
