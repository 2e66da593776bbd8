package video

import "errors"

// Configuration failures reported synchronously by Init. Nothing is retried
// here; the caller decides whether to fall back to a smaller mode or another
// standard.
var (
	ErrHeightExceedsStandard  = errors.New("active height exceeds standard")
	ErrWidthExceedsStandard   = errors.New("active width exceeds standard")
	ErrPeripheralUnavailable  = errors.New("output peripheral unavailable")
	ErrBufferAllocationFailed = errors.New("sample buffer allocation failed")
)
