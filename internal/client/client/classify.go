package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"syscall"
	"unicode/utf8"
)

// Classify maps the outcome of one HTTP exchange to a typed error. A non-nil
// err is a transport failure; otherwise status is inspected and 2xx yields nil.
func Classify(ctx context.Context, err error, status int, body []byte) error {
	if err != nil {
		return classifyTransport(ctx, err)
	}

	if status >= 200 && status < 300 {
		return nil
	}

	msg := statusMessage(status, body)

	switch {
	case status == http.StatusBadRequest:
		return newError(KindBadRequest, msg, status, nil)
	case status == http.StatusUnauthorized:
		return newError(KindUnauthorized, msg, status, nil)
	case status == http.StatusForbidden:
		return newError(KindForbidden, msg, status, nil)
	case status == http.StatusNotFound:
		return newError(KindNotFound, msg, status, nil)
	case status >= 500 && status <= 599:
		return newError(KindServer, msg, status, nil)
	default:
		return newError(KindUnknown, msg, status, nil)
	}
}

func classifyTransport(ctx context.Context, err error) error {
	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
		return newError(KindCancelled, "request cancelled", 0, err)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return newError(KindTimeout, "request timed out", 0, err)
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return newError(KindTimeout, "request timed out", 0, err)
	}

	if isNetworkError(err) {
		return newError(KindNetwork, fmt.Sprintf("network unreachable: %v", err), 0, err)
	}

	return newError(KindUnknown, err.Error(), 0, err)
}

func isNetworkError(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	for _, errno := range []syscall.Errno{
		syscall.ECONNREFUSED, syscall.ECONNRESET, syscall.EHOSTUNREACH,
		syscall.ENETUNREACH, syscall.ECONNABORTED,
	} {
		if errors.Is(err, errno) {
			return true
		}
	}

	var opErr *net.OpError
	return errors.As(err, &opErr)
}

func statusMessage(status int, body []byte) string {
	msg := fmt.Sprintf("%d %s", status, http.StatusText(status))
	if len(body) > 0 {
		msg += ": " + truncate(body, 128)
	}
	return msg
}

// truncate cuts b to at most n bytes without splitting a UTF-8 sequence.
func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	for n > 0 && !utf8.RuneStart(b[n]) {
		n--
	}
	return string(b[:n]) + "…"
}
