package util

import "strconv"

// Window is the skip/limit pair every list endpoint accepts.
type Window struct {
	Skip  int64
	Limit int64
}

// ParseWindow reads skip/limit query values, falling back to the given
// defaults. Negative skips collapse to 0 and limits are clamped to maxLimit.
func ParseWindow(skipStr, limitStr string, defaultLimit, maxLimit int64) Window {
	w := Window{Skip: 0, Limit: defaultLimit}

	if skipStr != "" {
		if v, err := strconv.ParseInt(skipStr, 10, 64); err == nil && v > 0 {
			w.Skip = v
		}
	}
	if limitStr != "" {
		if v, err := strconv.ParseInt(limitStr, 10, 64); err == nil && v > 0 {
			w.Limit = v
		}
	}
	if w.Limit > maxLimit {
		w.Limit = maxLimit
	}
	return w
}
