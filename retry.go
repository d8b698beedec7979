package netkit

import (
	"fmt"
	"time"
)

// ExecuteWithRetry repeats a request under a fixed-delay policy until an
// attempt's status lands in the success set with no error, or the budget is
// exhausted. MaxRetries is the total attempt count, first attempt included.
// The final attempt's result is returned verbatim, so an exhausted-retry
// failure is indistinguishable from a single-attempt failure by inspecting
// the result alone.
func ExecuteWithRetry[S Sink](n *Network, cfg RetryConfig, sink S) Result[S] {
	rc := cfg.withDefaults()
	var res Result[S]
	for attempt := 1; attempt <= rc.MaxRetries; attempt++ {
		if attempt > 1 {
			time.Sleep(rc.RetryDelay)
			if err := sink.Reset(); err != nil {
				res.SetError("error resetting sink between attempts", err.Error())
				return res
			}
		}
		res = Execute(n, rc.RequestConfig, sink)
		res.SuccessCodes = append([]int(nil), rc.SuccessCodes...)
		if res.IsSuccess() {
			return res
		}
		n.log.Warn(fmt.Sprintf("attempt %d/%d for %s failed (status %d)",
			attempt, rc.MaxRetries, rc.URL, res.StatusCode))
	}
	return res
}
