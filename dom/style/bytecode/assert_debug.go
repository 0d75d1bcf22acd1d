//go:build cssdebug

package bytecode

import "fmt"

const debugAssertions = true

func debugAssert(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf("bytecode assertion failed: "+format, args...))
	}
}
