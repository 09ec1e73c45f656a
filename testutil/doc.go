// Package testutil provides small helpers shared by cryptor package tests:
// scoped environment cleanup and temp-file fixtures.
package testutil
