// Package magetasks holds the build, test, lint and demo tasks behind the
// Magefile.
package magetasks
