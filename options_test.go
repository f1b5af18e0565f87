package binlogevents

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	if o.MaxLogEventSize != DefaultMaxLogEventSize {
		t.Errorf("MaxLogEventSize = %d, want %d", o.MaxLogEventSize, DefaultMaxLogEventSize)
	}
	if o.DefaultBufferSize != DefaultBufferSize {
		t.Errorf("DefaultBufferSize = %d, want %d", o.DefaultBufferSize, DefaultBufferSize)
	}
	if o.FrameDigest != ChecksumNone {
		t.Errorf("FrameDigest = %v, want ChecksumNone", o.FrameDigest)
	}
	if o.logger() == nil {
		t.Error("logger() = nil, want a usable default")
	}
}

func TestOptionsLoggerFallsBackWhenUnset(t *testing.T) {
	var o Options
	if o.logger() == nil {
		t.Error("logger() = nil for zero-value Options, want default logger")
	}
}
