package binlogevents

import (
	"fmt"

	"github.com/aalhour/binlogevents/internal/buffer"
	"github.com/aalhour/binlogevents/internal/checksum"
	"github.com/aalhour/binlogevents/internal/compression"
	"github.com/aalhour/binlogevents/internal/encoding"
	"github.com/aalhour/binlogevents/internal/logging"
	"github.com/aalhour/binlogevents/internal/resource"
)

// eventBuffer is the single reusable Managed_buffer a PayloadEventStream
// decompresses into. refs tracks how many outstanding Events alias it,
// starting at 1 for the stream's own reference; this stands in for the
// source's shared_ptr.use_count() (spec.md §4.4 step 2), since Go has no
// destructor to drop a reference automatically. The count is plain (not
// atomic): the core is single-threaded per instance (spec.md §5).
type eventBuffer struct {
	buf  *buffer.ManagedBuffer[byte]
	refs int
}

// Event is a decoded event's raw bytes, borrowed from the stream's
// internal buffer. Bytes is valid until Release is called or the owning
// PayloadEventStream reuses the buffer for a later event (which only
// happens once every outstanding Event referencing it has been
// released). Callers that need the bytes to outlive the next Next call
// without Release must copy them.
type Event struct {
	data  []byte
	owner *eventBuffer
}

// Bytes returns the event's raw, common-header-prefixed bytes.
func (e Event) Bytes() []byte { return e.data }

// Release signals that the caller is done with the event, allowing the
// stream to reuse its backing buffer on a later Next call instead of
// allocating a new one.
func (e *Event) Release() {
	if e.owner == nil {
		return
	}
	e.owner.refs--
	e.owner = nil
}

// PayloadEventStream decodes a compressed blob of concatenated
// MySQL-style binary-log events one event at a time. Grounded on
// original_source/libs/mysql/binlog/event/compression/
// payload_event_buffer_istream.{h,cpp} (spec.md §4.4).
type PayloadEventStream struct {
	decomp  compression.Decompressor
	opts    Options
	logger  Logger
	current *eventBuffer

	status    StreamStatus
	errString string

	digestValid bool
	digest      uint64
}

// NewPayloadEventStream decodes compressed, a blob produced by
// concatenating events and compressing them with compressionType, per
// the TRANSACTION_PAYLOAD_EVENT payload-data format (spec.md §6).
func NewPayloadEventStream(compressed []byte, compressionType CompressionType, opts Options) (*PayloadEventStream, error) {
	decomp, err := BuildDecompressor(compressionType)
	if err != nil {
		return nil, err
	}
	if err := decomp.Feed(compressed); err != nil {
		return nil, err
	}
	return &PayloadEventStream{
		decomp: decomp,
		opts:   opts,
		logger: opts.logger(),
	}, nil
}

// Status returns the stream's current terminal-or-not state.
func (s *PayloadEventStream) Status() StreamStatus { return s.status }

// HasError reports whether the stream ended in an error state (anything
// other than StreamOK or the clean-EOF StreamEnd).
func (s *PayloadEventStream) HasError() bool {
	return s.status != StreamOK && s.status != StreamEnd
}

// ErrorString describes the last error, or "" if HasError is false.
func (s *PayloadEventStream) ErrorString() string { return s.errString }

// Err returns nil at clean end of stream, or a non-nil error describing
// why decoding stopped.
func (s *PayloadEventStream) Err() error {
	if !s.HasError() {
		return nil
	}
	return fmt.Errorf("binlogevents: %s", s.errString)
}

// FrameDigest returns the digest of the most recently decoded event's
// bytes, computed under Options.FrameDigest, and whether a digest was
// actually computed (false when FrameDigest is ChecksumNone or no event
// has been read yet). Supplemental to the core algorithm (SPEC_FULL.md
// §12); has no bearing on decoding correctness.
func (s *PayloadEventStream) FrameDigest() (uint64, bool) {
	return s.digest, s.digestValid
}

func (s *PayloadEventStream) fail(status StreamStatus, format string, args ...any) {
	s.status = status
	s.errString = fmt.Sprintf(format, args...)
	s.logger.Errorf("%s%s", logging.NSPayload, s.errString)
}

// acquireBuffer implements step 2 of the §4.4 algorithm: reuse the
// current buffer if nothing else still references it, otherwise allocate
// a fresh one.
func (s *PayloadEventStream) acquireBuffer() {
	if s.current != nil && s.current.refs == 1 {
		s.current.buf.SetPosition(0)
		return
	}
	s.current = &eventBuffer{
		buf:  buffer.NewManagedBuffer[byte](resource.Default, s.opts.DefaultBufferSize),
		refs: 1,
	}
}

// installGrowCalculator implements step 3: combine the caller's
// configured limits with the decompressor's published constraint hint.
func (s *PayloadEventStream) installGrowCalculator() {
	calc := buffer.NewGrowCalculator()
	maxSize := s.opts.MaxLogEventSize
	if maxSize == 0 {
		maxSize = DefaultMaxLogEventSize
	}
	calc.SetMaxSize(maxSize)
	combined := calc.Constraint().CombineWith(s.decomp.GetGrowConstraintHint())
	calc.ApplyConstraint(combined)
	s.current.buf.SetGrowCalculator(calc)
}

// Next decodes the next event from the compressed blob. It returns
// ok == false at clean end of stream or on any error; callers must
// inspect Err (or Status/HasError/ErrorString) to distinguish the two,
// since a plain ok == false does not say which occurred.
func (s *PayloadEventStream) Next() (Event, bool) {
	// Step 1: non-recoverable after any terminal status.
	if s.status.Terminal() {
		return Event{}, false
	}

	s.acquireBuffer()
	s.installGrowCalculator()
	buf := s.current.buf

	// Step 4: decompress exactly EventLenOffset+4 = 13 bytes, the common
	// header up to and including the length field.
	headerStatus := s.decomp.Decompress(buf, EventLenOffset+4)
	if headerStatus == compression.DecompressEnd {
		s.status = StreamEnd
		return Event{}, false
	}
	if headerStatus == compression.DecompressTruncated {
		s.fail(StreamCorrupted, "truncated event header")
		return Event{}, false
	}
	if s.failIfNotSuccess(headerStatus) {
		return Event{}, false
	}

	header := buf.ReadPart()

	// Step 5: reject a nested TRANSACTION_PAYLOAD_EVENT (quine guard).
	if EventType(header[EventTypeOffset]) == TransactionPayloadEvent {
		s.fail(StreamCorrupted, "contains an embedded Payload_log_event")
		return Event{}, false
	}

	// Step 6: validate the declared length.
	declaredLen := encoding.DecodeFixed32(header[EventLenOffset:])
	if declaredLen < LogEventHeaderLen {
		s.fail(StreamCorrupted, "declared event length %d is smaller than the common header", declaredLen)
		return Event{}, false
	}

	// Step 7: decompress the remaining declared_length - 13 bytes.
	bodyStatus := s.decomp.Decompress(buf, int(declaredLen)-(EventLenOffset+4))
	if bodyStatus == compression.DecompressEnd || bodyStatus == compression.DecompressTruncated {
		s.fail(StreamCorrupted, "truncated event body: declared length %d", declaredLen)
		return Event{}, false
	}
	if s.failIfNotSuccess(bodyStatus) {
		return Event{}, false
	}

	// Step 8: hand back a reference-counted view of the read part.
	s.current.refs++
	data := []byte(buf.ReadPart())
	if s.opts.FrameDigest != ChecksumNone {
		s.digest = checksum.Compute(s.opts.FrameDigest, data)
		s.digestValid = true
	}
	return Event{data: data, owner: s.current}, true
}

// failIfNotSuccess maps the remaining DecompressStatus values (corrupted,
// out_of_memory, exceeds_max_size) onto the stream's terminal status. It
// reports true ("handled, caller should stop") for anything but success.
func (s *PayloadEventStream) failIfNotSuccess(status compression.DecompressStatus) bool {
	switch status {
	case compression.DecompressSuccess:
		return false
	case compression.DecompressCorrupted:
		s.fail(StreamCorrupted, "decompressor detected corrupted input")
	case compression.DecompressOutOfMemory:
		s.fail(StreamOutOfMemory, "allocation failed while growing the event buffer")
	case compression.DecompressExceedsMaxSize:
		s.fail(StreamExceedsMaxSize, "event exceeds the configured max_log_event_size (%d bytes)", s.opts.MaxLogEventSize)
	default:
		s.fail(StreamCorrupted, "unexpected decompress status %v", status)
	}
	return true
}
