package netkit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/tanq16/netkit/config"
	"github.com/tanq16/netkit/executor"
)

const downloadBufferSize = 256 * 1024

// Execute performs one HTTP request, streaming the response body into sink.
// Malformed or empty URLs are rejected locally: the result carries
// StatusCode 0 and HasError without any transport call. A HEAD request
// captures the raw response header block instead of a body.
func Execute[S Sink](n *Network, cfg RequestConfig, sink S) Result[S] {
	res := Result[S]{
		Content:      sink,
		SuccessCodes: append([]int(nil), defaultSuccessCodes...),
	}
	if err := validateURL(cfg.URL); err != nil {
		res.SetError("invalid request URL", err.Error())
		n.log.Error(fmt.Sprintf("request rejected: %v", err))
		return res
	}

	req, err := buildRequest(cfg, n.cfg)
	if err != nil {
		res.SetError("error building request", err.Error())
		return res
	}
	if cfg.Timeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
		defer cancel()
		req = req.WithContext(ctx)
	}

	reqID := uuid.NewString()[:8]
	n.log.Debug(fmt.Sprintf("[%s] %s %s", reqID, cfg.Method, cfg.URL))

	resp, err := n.client.Do(req)
	if err != nil {
		res.SetError(err.Error(), fmt.Sprintf("%s %s failed: %v", cfg.Method, cfg.URL, err))
		n.log.Error(fmt.Sprintf("[%s] transport error: %v", reqID, err))
		return res
	}
	defer resp.Body.Close()

	res.StatusCode = resp.StatusCode
	if cfg.Method == Head {
		res.RawHeaders = flattenHeaders(resp.Header)
		n.log.Debug(fmt.Sprintf("[%s] status %d (headers captured)", reqID, resp.StatusCode))
		return res
	}

	buffer := make([]byte, downloadBufferSize)
	var total int64
	for {
		bytesRead, readErr := resp.Body.Read(buffer)
		if bytesRead > 0 {
			if appendErr := sink.Append(buffer[:bytesRead]); appendErr != nil {
				res.SetError("error writing to sink", appendErr.Error())
				return res
			}
			total += int64(bytesRead)
			if cfg.Progress != nil {
				cfg.Progress(total)
			}
		}
		if readErr != nil {
			if readErr == io.EOF {
				break
			}
			res.SetError("error reading response body", readErr.Error())
			return res
		}
	}
	n.log.Debug(fmt.Sprintf("[%s] status %d, %d bytes", reqID, resp.StatusCode, total))
	return res
}

// ExecuteAsync submits one Execute call through the executor gateway and
// returns its future without blocking.
func ExecuteAsync[S Sink](n *Network, cfg RequestConfig, sink S) *executor.Future[Result[S]] {
	return executor.Submit(n.exec, func() Result[S] {
		return Execute(n, cfg, sink)
	})
}

// ContentType returns the Content-Type reported by a HEAD request, or false
// when the HEAD fails, is not a success, or carries no such field.
func (n *Network) ContentType(url string) (string, bool) {
	return n.FindHeader(url, "Content-Type")
}

// ContentSize returns the Content-Length reported by a HEAD request, or
// false when it is absent or unparseable.
func (n *Network) ContentSize(url string) (int64, bool) {
	value, ok := n.FindHeader(url, "Content-Length")
	if !ok {
		return 0, false
	}
	size, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || size < 0 {
		return 0, false
	}
	return size, true
}

// FindHeader issues a HEAD request and looks up key in the captured header
// block. The key match is case-insensitive.
func (n *Network) FindHeader(url, key string) (string, bool) {
	res := Execute(n, RequestConfig{URL: url, Method: Head}, NewStringSink())
	if res.HasError || !res.IsSuccess() {
		return "", false
	}
	return findHeaderLine(res.RawHeaders, key)
}

func validateURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return errors.New("empty URL")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("unparseable URL: %v", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("URL missing scheme or host: %s", raw)
	}
	return nil
}

func buildRequest(cfg RequestConfig, netCfg *config.NetConfig) (*http.Request, error) {
	var body io.Reader
	if len(cfg.Body) > 0 {
		body = bytes.NewReader(cfg.Body)
	}
	req, err := http.NewRequest(cfg.Method.String(), cfg.URL, body)
	if err != nil {
		return nil, err
	}
	applyRawHeader(req, cfg.RawHeader)
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = netCfg.UserAgent()
	}
	if userAgent == "" {
		userAgent = config.DefaultUserAgent
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Connection", "keep-alive")
	return req, nil
}

// applyRawHeader applies a newline-delimited "Key: Value" block to req.
// Lines without a colon are ignored.
func applyRawHeader(req *http.Request, raw string) {
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found || strings.TrimSpace(key) == "" {
			continue
		}
		req.Header.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}
}

// flattenHeaders renders response headers as a deterministic
// newline-delimited "Key: Value" block.
func flattenHeaders(h http.Header) string {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(strings.Join(h[k], ", "))
		b.WriteString("\n")
	}
	return b.String()
}

func findHeaderLine(block, key string) (string, bool) {
	for _, line := range strings.Split(block, "\n") {
		k, v, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(k), strings.TrimSpace(key)) {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}

func joinHeaderLines(lines ...string) string {
	var nonEmpty []string
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			nonEmpty = append(nonEmpty, strings.TrimRight(l, "\n"))
		}
	}
	return strings.Join(nonEmpty, "\n")
}
