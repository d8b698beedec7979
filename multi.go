package netkit

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/tanq16/netkit/executor"
)

const (
	// minSegmentSize is the smallest range worth a dedicated segment under
	// the Auto approach (256 KB).
	minSegmentSize int64 = 256 * 1024

	// defaultSegmentCount caps how many segments Auto plans.
	defaultSegmentCount int64 = 4
)

// segment is one contiguous byte-range sub-request. Bounds are inclusive,
// matching the Range header convention.
type segment struct {
	index int
	start int64
	end   int64
}

func (s segment) size() int64 {
	return s.end - s.start + 1
}

func (s segment) rangeSpec() string {
	return fmt.Sprintf("bytes=%d-%d", s.start, s.end)
}

type segmentResult struct {
	seg        segment
	statusCode int
	ok         bool
	errMessage string
}

// MultiDownload fetches one resource as concurrent byte-range requests and
// reassembles them into sink. When the size is unknown or the server does
// not advertise range support, it falls back to a single whole-resource
// request. On segment failure the per-segment retry budget applies first;
// once any segment exhausts it the whole operation reports an aggregated
// failure naming every failed range.
func MultiDownload[S RangeSink](n *Network, cfg MultiDownloadConfig, sink S) Result[S] {
	mc := cfg.withDefaults()
	res := Result[S]{
		Content:      sink,
		SuccessCodes: append([]int(nil), mc.SuccessCodes...),
	}
	if err := validateURL(mc.URL); err != nil {
		res.SetError("invalid request URL", err.Error())
		n.log.Error(fmt.Sprintf("multi-download rejected: %v", err))
		return res
	}

	jobID := uuid.NewString()[:8]

	// Probe
	size, sizeOK := n.ContentSize(mc.URL)
	rangeOK := false
	if v, ok := n.FindHeader(mc.URL, "Accept-Ranges"); ok && v == "bytes" {
		rangeOK = true
	}
	if !sizeOK || size <= 0 || !rangeOK {
		n.log.Info(fmt.Sprintf("[%s] no size or range support for %s, falling back to single request", jobID, mc.URL))
		req := mc.RequestConfig
		req.Method = Get
		single := Execute(n, req, sink)
		single.SuccessCodes = append([]int(nil), mc.SuccessCodes...)
		return single
	}

	// Partition
	segments := planSegments(size, mc.Approach, mc.SegmentParam)
	if err := validateSegments(segments, size); err != nil {
		res.SetError("segment planning failed", err.Error())
		n.log.Error(fmt.Sprintf("[%s] %v", jobID, err))
		return res
	}
	n.log.Debug(fmt.Sprintf("[%s] downloading %d bytes in %d segments (%s approach)",
		jobID, size, len(segments), mc.Approach))

	if err := sink.Preallocate(size); err != nil {
		res.SetError("error preallocating sink", err.Error())
		return res
	}

	// Dispatch: one unit of work per segment; each segment owns exclusive
	// write rights to its offset range, so no locking guards the sink.
	var written atomic.Int64
	futures := make([]*executor.Future[segmentResult], len(segments))
	for i, seg := range segments {
		seg := seg
		futures[i] = executor.Submit(n.exec, func() segmentResult {
			return downloadSegment(n, mc, sink, seg, &written)
		})
	}

	// Collect: full join, then aggregate.
	overall := http.StatusOK
	var failed []string
	for _, f := range futures {
		sr := f.Get()
		if !sr.ok {
			failed = append(failed, sr.seg.rangeSpec())
			n.log.Warn(fmt.Sprintf("[%s] segment %d (%s) failed: status %d %s",
				jobID, sr.seg.index, sr.seg.rangeSpec(), sr.statusCode, sr.errMessage))
		}
		if sr.statusCode == http.StatusPartialContent {
			overall = http.StatusPartialContent
		}
	}

	// Finalize
	res.StatusCode = overall
	if len(failed) > 0 {
		res.SetError(
			fmt.Sprintf("download incomplete: %d of %d segments failed", len(failed), len(segments)),
			"failed ranges: "+strings.Join(failed, ", "))
		return res
	}
	n.log.Info(fmt.Sprintf("[%s] downloaded %d bytes in %d segments", jobID, written.Load(), len(segments)))
	return res
}

func downloadSegment(n *Network, mc MultiDownloadConfig, sink io.WriterAt, seg segment, written *atomic.Int64) segmentResult {
	w := &offsetSink{
		w:        io.NewOffsetWriter(sink, seg.start),
		written:  written,
		progress: mc.Progress,
	}
	req := mc.RequestConfig
	req.Method = Get
	req.Progress = nil
	req.RawHeader = joinHeaderLines(mc.RawHeader, "Range: "+seg.rangeSpec())

	rc := RetryConfig{
		RequestConfig: req,
		MaxRetries:    mc.SegmentRetries,
		RetryDelay:    mc.RetryDelay,
		SuccessCodes:  mc.SuccessCodes,
	}
	sres := ExecuteWithRetry(n, rc, w)

	ok := sres.IsSuccess() && w.Len() == seg.size()
	msg := sres.ErrorMessage
	if msg == "" && sres.IsSuccess() && w.Len() != seg.size() {
		msg = fmt.Sprintf("size mismatch: expected %d bytes, got %d", seg.size(), w.Len())
	}
	return segmentResult{
		seg:        seg,
		statusCode: sres.StatusCode,
		ok:         ok,
		errMessage: msg,
	}
}

// planSegments partitions [0,size) per the approach. The result is a set of
// disjoint, contiguous, ascending inclusive ranges whose lengths sum to
// size exactly.
func planSegments(size int64, approach Approach, param int64) []segment {
	if size <= 0 {
		return nil
	}
	switch approach {
	case ApproachThread:
		count := param
		if count < 1 {
			count = 1
		}
		if count > size {
			count = size
		}
		return splitByCount(size, count)
	case ApproachSize:
		if param < 1 {
			return []segment{{index: 0, start: 0, end: size - 1}}
		}
		return splitByLength(size, param)
	default: // ApproachAuto
		if size < minSegmentSize {
			return []segment{{index: 0, start: 0, end: size - 1}}
		}
		count := (size + minSegmentSize - 1) / minSegmentSize
		if count > defaultSegmentCount {
			count = defaultSegmentCount
		}
		return splitByCount(size, count)
	}
}

// splitByCount produces count segments of floor(size/count) bytes, with the
// remainder appended to the final segment.
func splitByCount(size, count int64) []segment {
	length := size / count
	segments := make([]segment, 0, count)
	var start int64
	for i := int64(0); i < count; i++ {
		end := start + length - 1
		if i == count-1 {
			end = size - 1
		}
		segments = append(segments, segment{index: int(i), start: start, end: end})
		start = end + 1
	}
	return segments
}

// splitByLength produces ceil(size/length) segments of length bytes, the
// last one shortened to fit.
func splitByLength(size, length int64) []segment {
	count := (size + length - 1) / length
	segments := make([]segment, 0, count)
	var start int64
	for i := int64(0); i < count; i++ {
		end := start + length - 1
		if end > size-1 {
			end = size - 1
		}
		segments = append(segments, segment{index: int(i), start: start, end: end})
		start = end + 1
	}
	return segments
}

// validateSegments asserts the partition invariant before any dispatch.
func validateSegments(segments []segment, size int64) error {
	if len(segments) == 0 {
		return fmt.Errorf("no segments planned for %d bytes", size)
	}
	var expected, total int64
	for _, s := range segments {
		if s.start != expected || s.end < s.start {
			return fmt.Errorf("segment %d covers %d-%d, expected to start at %d", s.index, s.start, s.end, expected)
		}
		expected = s.end + 1
		total += s.size()
	}
	if total != size {
		return fmt.Errorf("segments cover %d bytes, resource has %d", total, size)
	}
	return nil
}

// offsetSink adapts a positioned writer to the Sink capability so segment
// requests can run through the regular execute/retry path. Reset rewinds to
// the segment start and discounts previously counted bytes, keeping the
// shared cumulative progress honest across retries.
type offsetSink struct {
	w        *io.OffsetWriter
	count    int64
	written  *atomic.Int64
	progress func(total int64)
}

func (o *offsetSink) Append(p []byte) error {
	written, err := o.w.Write(p)
	if written > 0 {
		o.count += int64(written)
		total := o.written.Add(int64(written))
		if o.progress != nil {
			o.progress(total)
		}
	}
	return err
}

func (o *offsetSink) Len() int64 {
	return o.count
}

func (o *offsetSink) Reset() error {
	if o.count > 0 {
		o.written.Add(-o.count)
		o.count = 0
	}
	_, err := o.w.Seek(0, io.SeekStart)
	return err
}
