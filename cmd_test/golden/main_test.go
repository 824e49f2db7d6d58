package golden

import (
	"flag"
	"testing"

	"github.com/vipcxj/inrange/cmd"
	"github.com/vipcxj/inrange/internal/clitest"
)

var update = flag.Bool("update", false, "update test files with results")

func TestCLI(t *testing.T) {
	ts, err := clitest.Read("testdata")
	if err != nil {
		t.Fatal(err)
	}
	ts.Register("inrange", cmd.Execute)
	ts.Run(t, *update)
}
