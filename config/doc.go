// Package config holds the single run configuration of spec.md §6's
// Configuration table and its validation.
package config
