package binlogevents

import "github.com/aalhour/binlogevents/internal/encoding"

// Common header field offsets and lengths, per spec.md §6. Every
// binlog event begins with this 19-byte header.
const (
	TimestampOffset   = 0
	EventTypeOffset   = 4
	ServerIDOffset    = 5
	EventLenOffset    = 9
	LogPosOffset      = 13
	FlagsOffset       = 17
	LogEventHeaderLen = 19
)

// EventType is the 1-byte type code at EventTypeOffset. Only the codes
// the payload reader must recognize are named; the full binlog
// event-class hierarchy is out of scope (spec.md §1).
type EventType uint8

// TransactionPayloadEvent is the event type that carries a compressed
// stream of other events. A TRANSACTION_PAYLOAD_EVENT must never itself
// appear inside the stream it wraps — PayloadEventStream.Next rejects
// that as corruption (spec.md §4.4 step 5).
const TransactionPayloadEvent EventType = 40

// EventHeader is the parsed form of an event's 19-byte common header.
type EventHeader struct {
	Timestamp uint32
	Type      EventType
	ServerID  uint32
	EventLen  uint32
	LogPos    uint32
	Flags     uint16
}

// ParseEventHeader reads the common header from the first
// LogEventHeaderLen bytes of buf.
//
// REQUIRES: len(buf) >= LogEventHeaderLen.
func ParseEventHeader(buf []byte) EventHeader {
	_ = buf[LogEventHeaderLen-1] // bounds check hint, mirrors the source's Event_reader
	return EventHeader{
		Timestamp: encoding.DecodeFixed32(buf[TimestampOffset:]),
		Type:      EventType(buf[EventTypeOffset]),
		ServerID:  encoding.DecodeFixed32(buf[ServerIDOffset:]),
		EventLen:  encoding.DecodeFixed32(buf[EventLenOffset:]),
		LogPos:    encoding.DecodeFixed32(buf[LogPosOffset:]),
		Flags:     encoding.DecodeFixed16(buf[FlagsOffset:]),
	}
}
