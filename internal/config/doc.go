// Package config provides configuration structures and utilities for
// phonescan. It defines the analysis options populated from CLI flags and
// the YAML directory file that overrides the built-in numbering tables.
package config
