package assert

// NilErr checks that err is nil. The failure is fatal since most callers
// use it for setup steps they cannot meaningfully continue after.
func NilErr(t TestingFatalf, err error, msgAndArgs ...any) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("unexpected error `%#v`%s", err, fromMsgAndArgs(msgAndArgs...))
}

// NotNilErr checks that err is not nil. Causes a fatal error otherwise.
func NotNilErr(t TestingFatalf, err error, msgAndArgs ...any) {
	t.Helper()

	if err != nil {
		return
	}

	t.Fatalf("expected an error but got nil%s", fromMsgAndArgs(msgAndArgs...))
}
