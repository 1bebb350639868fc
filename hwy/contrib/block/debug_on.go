//go:build hwydebug

package block

const debugChecks = true
