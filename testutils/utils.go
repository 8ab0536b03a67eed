package testutils

import (
	"fmt"
	"runtime"
	"testing"
)

func ErrorHere(test *testing.T, str string, args ...interface{}) {
	_, file, line, _ := runtime.Caller(1)
	info := fmt.Sprintf("[%s:%d] ", file, line)
	test.Errorf(info+str, args...)
}

func FatalHere(test *testing.T, str string, args ...interface{}) {
	_, file, line, _ := runtime.Caller(1)
	info := fmt.Sprintf("[%s:%d] ", file, line)
	test.Fatalf(info+str, args...)
}

// Pattern returns n bytes that differ from block to block and from one seed
// to another, so misplaced or missing blocks show up in comparisons.
func Pattern(n int, seed byte) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i/1024) ^ byte(i) ^ seed
	}
	return data
}
