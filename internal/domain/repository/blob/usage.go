package blob

import "context"

// UsageMeter reports aggregate store usage. Implementations may serve a
// cached value with bounded staleness instead of walking the store on
// every call.
type UsageMeter interface {
	UsageBytes(ctx context.Context) (int64, error)
}
