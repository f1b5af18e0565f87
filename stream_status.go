package binlogevents

// StreamStatus is the terminal-or-not state of a PayloadEventStream,
// derived from compression.DecompressStatus per spec.md §4.4: a
// Decompressor's six-way status is narrowed down to the five outcomes the
// stream algorithm can actually leave behind after mapping truncated onto
// corrupted in both places it can occur.
type StreamStatus uint8

const (
	// StreamOK means the last read produced an event successfully.
	StreamOK StreamStatus = iota
	// StreamEnd means the compressed blob is exhausted at a clean frame
	// boundary; this is not an error.
	StreamEnd
	// StreamCorrupted means the decompressed bytes did not form a valid
	// event stream (bad length, embedded TRANSACTION_PAYLOAD_EVENT, or a
	// partial read at the header or body).
	StreamCorrupted
	// StreamOutOfMemory means growing an internal buffer failed.
	StreamOutOfMemory
	// StreamExceedsMaxSize means a declared or requested size exceeded
	// the configured ceiling.
	StreamExceedsMaxSize
)

func (s StreamStatus) String() string {
	switch s {
	case StreamOK:
		return "ok"
	case StreamEnd:
		return "end"
	case StreamCorrupted:
		return "corrupted"
	case StreamOutOfMemory:
		return "out_of_memory"
	case StreamExceedsMaxSize:
		return "exceeds_max_size"
	default:
		return "unknown"
	}
}

// Terminal reports whether this status ends the stream: no further Next
// call can produce an event once the stream has reached one of these.
func (s StreamStatus) Terminal() bool {
	return s != StreamOK
}
