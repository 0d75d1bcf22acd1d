//go:build !cssdebug

package bytecode

const debugAssertions = false

func debugAssert(bool, string, ...interface{}) {}
