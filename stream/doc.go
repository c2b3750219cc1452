// SPDX-License-Identifier: EPL-2.0

// Package stream decouples a blocking, externally paced PCM producer
// from the player's pull-based consumption model.
//
// An external process writes raw 16-bit little-endian stereo PCM at
// 44.1kHz into a named pipe. A single background goroutine reads the
// pipe and feeds a fixed-capacity ring buffer; the consumer extracts
// WAV-wrapped chunks on demand. The two never share more than the ring
// buffer, whose lock is held only for the copy and cursor update.
//
// # Session lifecycle
//
//	r := stream.NewReader(stream.Config{PipePath: "/tmp/player.pcm"})
//	r.Start()
//	for !r.Ready() && !r.IsEOF() {
//	    // wait for the pre-buffer threshold before starting playback
//	}
//	for {
//	    chunk, err := r.ReadChunk()
//	    if err == stream.ErrNoData {
//	        if r.IsEOF() {
//	            break
//	        }
//	        continue
//	    }
//	    // feed chunk to the player output
//	}
//	r.Stop()
//
// Start is idempotent. Stop closes the pipe to unblock a pending read
// and waits for the goroutine to exit; no task survives past Stop.
// Reset reuses the session (and its ring buffer allocation) for the next
// track.
//
// # Backpressure and loss
//
// The producer is never blocked: bytes that do not fit in the ring are
// dropped, not overwritten over unread data. With a buffer depth of
// several seconds this only triggers when the consumer has stopped
// pulling, and the drop count is exposed for diagnostics.
//
// # Error model
//
// A pipe that cannot be opened, a zero-length read after a producer was
// seen, and any unexpected read error all surface the same way: the
// end-of-stream flag. Would-block and interrupted reads are retried
// internally. Nothing here is fatal to the process; the consumer
// observes IsEOF and IsReceiving and decides whether to start a new
// session.
package stream
