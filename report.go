package montecarlo

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logfmt/logfmt"
)

// writeSummary writes keyvals as a single logfmt record, e.g.
// demo=inverse samples=10000 seed=0 mean=1.0041 expected=1 file=inverse_method.png
func writeSummary(w io.Writer, keyvals ...interface{}) error {
	if w == nil {
		w = os.Stdout
	}
	e := logfmt.NewEncoder(w)
	if err := e.EncodeKeyvals(keyvals...); err != nil {
		return fmt.Errorf("failed to encode run summary: %v", err)
	}
	return e.EndRecord()
}

// rounded formats a float for summaries
func rounded(v float64) string {
	return fmt.Sprintf("%.6f", v)
}
