// Package config provides configuration loading, merging, and validation
// for the client.
//
// Configuration is assembled from multiple sources in priority order
// (earlier sources win, later ones fill gaps):
//  1. Environment variables (CASPER_ prefix)
//  2. JSON config file
//  3. Built-in defaults
//
// Per-command flags are handled by the command layer and override the
// merged configuration after loading. The main entry point is
// [GetClientConfig].
package config
