// Package assert has a minimal set of assertion helpers for tests. Nothing
// here depends on the rest of the project so it can be used from any package.
package assert

import "fmt"

// TestingErrf is satisfied by testing types which support reporting errors
// such as testing.T, testing.TB and similar.
type TestingErrf interface {
	Errorf(format string, args ...any)
	Helper()
}

// TestingFatalf is satisfied by testing types which support fatal errors
// such as testing.T, testing.TB and similar.
type TestingFatalf interface {
	Fatalf(format string, args ...any)
	Helper()
}

func fromMsgAndArgs(msgAndArgs ...any) string {
	if len(msgAndArgs) == 0 {
		return ""
	}

	fmtStr, ok := msgAndArgs[0].(string)
	if !ok {
		panic("The first argument in msgAndArgs must be a string format value.")
	}

	return fmt.Sprintf(" ("+fmtStr+")", msgAndArgs[1:]...)
}
