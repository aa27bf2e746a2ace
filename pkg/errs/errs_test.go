package errs

import (
	"testing"
)

var errorMessageTests = []struct {
	err     error
	wantMsg string
}{
	{
		OutOfRange{What: "list index here", ValidLow: 0, ValidHigh: 2, Actual: 3},
		"out of range: list index here must be from 0 to 2, but is 3",
	},
	{
		OutOfRange{What: "list index here", ValidLow: 1, ValidHigh: 0, Actual: 0},
		"out of range: list index here has no valid value, but is 0",
	},
	{
		OutOfRange{What: "negative index", ValidLow: -3, ValidHigh: -1, Actual: -4},
		"out of range: negative index must be from -3 to -1, but is -4",
	},
}

func TestErrorMessages(t *testing.T) {
	for _, test := range errorMessageTests {
		if gotMsg := test.err.Error(); gotMsg != test.wantMsg {
			t.Errorf("got message %v, want %v", gotMsg, test.wantMsg)
		}
	}
}
