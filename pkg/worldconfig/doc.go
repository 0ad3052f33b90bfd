// Package worldconfig loads and validates YAML configuration selecting a
// generation version and holding the seed finder's bruteforce thresholds.
package worldconfig
