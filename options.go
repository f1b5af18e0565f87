package binlogevents

// options.go implements the caller-facing configuration surface for
// PayloadEventStream and the checksum/logging ambient stack.

import (
	"github.com/aalhour/binlogevents/internal/checksum"
	"github.com/aalhour/binlogevents/internal/logging"
)

// Logger is an alias for the logging.Logger interface, letting callers
// pass their own implementation.
type Logger = logging.Logger

// ChecksumAlgorithm is an alias for the frame-digest algorithm.
type ChecksumAlgorithm = checksum.Algorithm

// Checksum algorithm constants.
const (
	ChecksumNone  = checksum.AlgorithmNone
	ChecksumCRC32 = checksum.AlgorithmCRC32C
	ChecksumXXH3  = checksum.AlgorithmXXH3
)

// DefaultMaxLogEventSize is the event size ceiling applied when Options
// does not override it.
//
// Default: 1 GiB
const DefaultMaxLogEventSize = 1 << 30

// DefaultBufferSize is the initial capacity reserved for a
// PayloadEventStream's reusable event buffer.
//
// Default: 4KB
const DefaultBufferSize = 4 << 10

// Options configures a PayloadEventStream.
type Options struct {
	// MaxLogEventSize bounds the declared length of any single event;
	// events whose header claims a larger size are reported as
	// StreamExceedsMaxSize rather than decompressed.
	//
	// Default: 1GB
	MaxLogEventSize uint64

	// DefaultBufferSize is the initial capacity of the stream's reusable
	// event buffer, sized to avoid a grow on the first few events of a
	// typical transaction.
	//
	// Default: 4KB
	DefaultBufferSize int

	// FrameDigest selects an optional digest computed over each decoded
	// event's raw bytes, exposed via PayloadEventStream.FrameDigest
	// (SPEC_FULL.md §12). This is supplemental to the core algorithm and
	// has no effect on decoding.
	//
	// Default: ChecksumNone (disabled)
	FrameDigest ChecksumAlgorithm

	// Logger receives grow decisions, frame resets, and corruption
	// diagnostics.
	//
	// Default: logging.Discard
	Logger Logger
}

// DefaultOptions returns the Options a PayloadEventStream uses when none
// is supplied.
func DefaultOptions() Options {
	return Options{
		MaxLogEventSize:   DefaultMaxLogEventSize,
		DefaultBufferSize: DefaultBufferSize,
		FrameDigest:       ChecksumNone,
		Logger:            logging.Discard,
	}
}

func (o Options) logger() Logger {
	return logging.OrDefault(o.Logger)
}
