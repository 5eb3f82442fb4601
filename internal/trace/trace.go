// Package trace sends Datadog spans for xref commands when tracing is
// enabled with XREF_TRACE=1.
package trace

import (
	"context"
	"os"
	"strconv"
	"strings"

	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
)

var parent ddtrace.SpanContext

// MaybeTrace starts the tracer if XREF_TRACE=1. A parent span can be
// given in hex with DD_TRACE_ID and DD_SPAN_ID; both are removed from
// the environment so that child processes don't reuse them.
func MaybeTrace(serviceVersion string) bool {
	if os.Getenv("XREF_TRACE") != "1" {
		return false
	}

	carrier := parentCarrier(os.Getenv("DD_TRACE_ID"), os.Getenv("DD_SPAN_ID"))
	os.Unsetenv("DD_TRACE_ID")
	os.Unsetenv("DD_SPAN_ID")

	tracer.Start(
		tracer.WithService("xref"),
		tracer.WithServiceVersion(serviceVersion),
	)
	if carrier != nil {
		if sctx, err := tracer.Extract(carrier); err == nil {
			parent = sctx
		}
	}
	return true
}

// Stop flushes and stops the tracer. It is safe to call when tracing
// was never started.
func Stop() {
	tracer.Stop()
}

// StartSpan starts a span named name, as a child of the span given in
// the environment if there was one.
func StartSpan(ctx context.Context, name string) (ddtrace.Span, context.Context) {
	if parent == nil {
		return tracer.StartSpanFromContext(ctx, name)
	}
	return tracer.StartSpanFromContext(ctx, name, tracer.ChildOf(parent))
}

// parentCarrier builds a W3C traceparent header from hex trace and
// span IDs. It returns nil if either is missing or malformed.
func parentCarrier(traceID, spanID string) tracer.TextMapCarrier {
	traceID = strings.ToLower(strings.TrimLeft(traceID, "0"))
	spanID = strings.ToLower(strings.TrimLeft(spanID, "0"))
	if traceID == "" || spanID == "" || len(traceID) > 32 || len(spanID) > 16 {
		return nil
	}
	for _, id := range []string{traceID, spanID} {
		for i := 0; i < len(id); i += 16 {
			end := min(i+16, len(id))
			if _, err := strconv.ParseUint(id[i:end], 16, 64); err != nil {
				return nil
			}
		}
	}
	header := "00-" + leftPad(traceID, 32) + "-" + leftPad(spanID, 16) + "-01"
	return tracer.TextMapCarrier{"traceparent": header}
}

func leftPad(s string, n int) string {
	return strings.Repeat("0", n-len(s)) + s
}
