// Package commands defines the pawview CLI.
//
// Commands
//
//   - browse      Browse listings in the terminal (default)
//   - metrics     Print responsive scale values for a window size
//   - search      Fuzzy-search listings
//   - favorites   List or clear starred pets
//   - export      Render share cards as PNG or SVG
//
// # Implementation
//
// The root command loads the YAML config before any subcommand runs and
// applies flag overrides, so handlers share one validated config.
package commands
