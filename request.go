package netkit

import (
	"net/http"
	"time"
)

// Method is the HTTP method of a request. The zero value behaves as Get.
type Method string

const (
	Get     Method = http.MethodGet
	Post    Method = http.MethodPost
	Head    Method = http.MethodHead
	Put     Method = http.MethodPut
	Delete  Method = http.MethodDelete
	Patch   Method = http.MethodPatch
	Options Method = http.MethodOptions
)

func (m Method) String() string {
	if m == "" {
		return http.MethodGet
	}
	return string(m)
}

// Defaults applied when the corresponding config field is left zero.
const (
	DefaultMaxRetries = 3
	DefaultRetryDelay = 150 * time.Millisecond
)

var (
	defaultSuccessCodes      = []int{200, 204}
	defaultMultiSuccessCodes = []int{200, 206}
)

// RequestConfig describes one HTTP request. It is a per-call value object;
// the facade never mutates it.
type RequestConfig struct {
	URL    string
	Method Method

	// RawHeader is a newline-delimited block of "Key: Value" lines applied
	// to the outgoing request.
	RawHeader string

	Body []byte

	// UserAgent overrides the process-config user agent for this request.
	UserAgent string

	// Timeout bounds this request; zero leaves only the transport's own
	// timeout in effect.
	Timeout time.Duration

	// Progress, when set, receives the cumulative byte count after each
	// body chunk is written to the sink.
	Progress func(total int64)
}

// RetryConfig wraps a request with a fixed-delay retry policy. MaxRetries
// is the total attempt budget: the first attempt counts toward it, so
// MaxRetries = 3 means at most three transport calls.
type RetryConfig struct {
	RequestConfig

	MaxRetries   int
	RetryDelay   time.Duration
	SuccessCodes []int
}

// NewRetryConfig returns a RetryConfig for req with the default policy.
func NewRetryConfig(req RequestConfig) RetryConfig {
	return RetryConfig{
		RequestConfig: req,
		MaxRetries:    DefaultMaxRetries,
		RetryDelay:    DefaultRetryDelay,
		SuccessCodes:  append([]int(nil), defaultSuccessCodes...),
	}
}

func (c RetryConfig) withDefaults() RetryConfig {
	if c.MaxRetries < 1 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = DefaultRetryDelay
	}
	if len(c.SuccessCodes) == 0 {
		c.SuccessCodes = append([]int(nil), defaultSuccessCodes...)
	}
	return c
}

// Approach selects how a multi-download partitions the resource.
type Approach int

const (
	// ApproachAuto picks a partition heuristically: resources under the
	// minimum segment size download as a single segment, larger ones split
	// into up to four segments of at least that size.
	ApproachAuto Approach = iota

	// ApproachThread treats SegmentParam as the segment count.
	ApproachThread

	// ApproachSize treats SegmentParam as the bytes per segment.
	ApproachSize
)

func (a Approach) String() string {
	switch a {
	case ApproachThread:
		return "thread"
	case ApproachSize:
		return "size"
	default:
		return "auto"
	}
}

// MultiDownloadConfig describes a segmented download. SegmentRetries and
// RetryDelay shape the per-segment retry policy applied before the
// operation fails as a whole.
type MultiDownloadConfig struct {
	RequestConfig

	Approach     Approach
	SegmentParam int64
	SuccessCodes []int

	SegmentRetries int
	RetryDelay     time.Duration
}

// NewMultiDownloadConfig returns a MultiDownloadConfig for req with the
// default policy.
func NewMultiDownloadConfig(req RequestConfig) MultiDownloadConfig {
	return MultiDownloadConfig{
		RequestConfig:  req,
		Approach:       ApproachAuto,
		SuccessCodes:   append([]int(nil), defaultMultiSuccessCodes...),
		SegmentRetries: DefaultMaxRetries,
		RetryDelay:     DefaultRetryDelay,
	}
}

func (c MultiDownloadConfig) withDefaults() MultiDownloadConfig {
	if len(c.SuccessCodes) == 0 {
		c.SuccessCodes = append([]int(nil), defaultMultiSuccessCodes...)
	}
	if c.SegmentRetries < 1 {
		c.SegmentRetries = DefaultMaxRetries
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = DefaultRetryDelay
	}
	return c
}
