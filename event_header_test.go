package binlogevents

import "testing"

func TestParseEventHeader(t *testing.T) {
	buf := make([]byte, LogEventHeaderLen)
	buf[TimestampOffset] = 0x01
	buf[TimestampOffset+1] = 0x02
	buf[TimestampOffset+2] = 0x03
	buf[TimestampOffset+3] = 0x04
	buf[EventTypeOffset] = byte(TransactionPayloadEvent)
	buf[ServerIDOffset] = 0x10
	buf[EventLenOffset] = 0x20
	buf[LogPosOffset] = 0x30
	buf[FlagsOffset] = 0x01

	h := ParseEventHeader(buf)
	if h.Timestamp != 0x04030201 {
		t.Errorf("Timestamp = %#x, want %#x", h.Timestamp, 0x04030201)
	}
	if h.Type != TransactionPayloadEvent {
		t.Errorf("Type = %v, want %v", h.Type, TransactionPayloadEvent)
	}
	if h.ServerID != 0x10 {
		t.Errorf("ServerID = %d, want 16", h.ServerID)
	}
	if h.EventLen != 0x20 {
		t.Errorf("EventLen = %d, want 32", h.EventLen)
	}
	if h.LogPos != 0x30 {
		t.Errorf("LogPos = %d, want 48", h.LogPos)
	}
	if h.Flags != 0x01 {
		t.Errorf("Flags = %d, want 1", h.Flags)
	}
}
