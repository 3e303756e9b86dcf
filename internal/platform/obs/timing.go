package obs

import (
	"context"
	"log"
	"strconv"
	"sync/atomic"
	"time"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

var requestCounter atomic.Uint64

// NextRequestID hands out process-unique ids for log correlation.
func NextRequestID() string {
	return strconv.FormatUint(requestCounter.Add(1), 10)
}

// WithRequestID attaches a request id to the context for later log lines.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestID returns the id attached by WithRequestID, or "" outside a request.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time logs the duration of the named operation when the returned func runs,
// along with the error the operation ended with:
//
//	func compute(ctx context.Context) (err error) {
//	    defer obs.Time(ctx, "schedule.Window")(&err)
//	    ...
//	}
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s dur=%dms err=%v", reqID, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s dur=%dms", reqID, name, dur.Milliseconds())
	}
}
