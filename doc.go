/*
Package binlogevents implements the binary-log event codec core of a
MySQL-compatible replication library: growable buffers, streaming
compression, a payload-event stream reader, and GTID set algebra.

# Usage

The typical consumer decompresses a Transaction_payload_event's
compressed blob one embedded event at a time:

	stream, err := binlogevents.NewPayloadEventStream(compressedBlob, binlogevents.CompressionZSTD, binlogevents.DefaultOptions())
	if err != nil {
		// compressed blob could not even be fed to the codec
	}
	for {
		event, ok := stream.Next()
		if !ok {
			break
		}
		handle(event.Bytes())
		event.Release()
	}
	if err := stream.Err(); err != nil {
		// distinguish EOF (err == nil) from corruption/resource errors
	}

# Concurrency

Every type in this module is single-threaded: a PayloadEventStream,
Compressor, Decompressor, or GtidSet instance must not be used from more
than one goroutine without external synchronization. Distinct instances
may run in parallel, provided any custom resource.MemoryResource they
share is itself safe for concurrent use.

# Compatibility

Event framing, the payload-data header, the Gtid text and binary
encodings, and the Gtid_set text encoding are bit-compatible with MySQL's
libbinlogevents. GtidSet has no binary encoding.
*/
package binlogevents
