//go:build !hwydebug

package block

const debugChecks = false
