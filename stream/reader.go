// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
)

const (
	// readChunkSize is the scratch size of one pipe read: 8192 bytes is
	// about 46ms of audio at the stream byte rate.
	readChunkSize = 8192

	// receivingWindow is the rolling window after which a silent
	// producer is no longer considered "receiving". Advisory only; it
	// never tears the session down.
	receivingWindow = 3 * time.Second

	// yieldDelay is how long the read loop sleeps on a would-block
	// read or while waiting for the producer to attach.
	yieldDelay = 5 * time.Millisecond

	defaultBufferSeconds    = 10
	defaultPreBufferSeconds = 3
)

// Config sets up a Reader. PipePath is required; everything else has a
// usable default.
type Config struct {
	// PipePath is the named pipe the external producer writes to. The
	// pipe must already exist; the Reader does not create it or manage
	// the producer process.
	PipePath string

	// BufferSeconds sizes the ring buffer in seconds of audio at the
	// fixed byte rate. Default 10.
	BufferSeconds int

	// PreBufferSeconds is the readiness threshold in seconds of
	// buffered audio. Default 3.
	PreBufferSeconds int

	// Logger receives reader lifecycle events. Defaults to a no-op
	// logger. Nothing is logged on the chunk-extraction path.
	Logger *zerolog.Logger
}

// Reader owns one background goroutine that drains the named pipe into
// a ring buffer, and serves WAV-wrapped chunks to the consumer.
//
// Exactly two parties touch the ring: the reader goroutine writes, the
// caller reads. Start/Stop/Reset manage the session; IsEOF, IsReceiving,
// Ready and BytesReceived are safe from any goroutine.
type Reader struct {
	pipePath  string
	prebuffer int
	ring      *RingBuffer
	log       zerolog.Logger

	mu      sync.Mutex
	running bool
	pipeFD  int
	wg      sync.WaitGroup

	eof      atomic.Bool
	lastData atomic.Int64 // unix nanos of the most recent received byte
	received atomic.Int64
	dropped  atomic.Int64
}

// NewReader builds an idle Reader. The ring buffer is allocated once
// here and reused across sessions.
func NewReader(cfg Config) *Reader {
	if cfg.BufferSeconds <= 0 {
		cfg.BufferSeconds = defaultBufferSeconds
	}
	if cfg.PreBufferSeconds <= 0 {
		cfg.PreBufferSeconds = defaultPreBufferSeconds
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	return &Reader{
		pipePath:  cfg.PipePath,
		prebuffer: cfg.PreBufferSeconds * ByteRate,
		ring:      NewRingBuffer(cfg.BufferSeconds * ByteRate),
		log:       log,
		pipeFD:    -1,
	}
}

// Start launches the background reading task. Calling Start on a
// running Reader is a no-op.
func (r *Reader) Start() {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.mu.Unlock()

	r.eof.Store(false)
	r.lastData.Store(0)
	r.received.Store(0)
	r.dropped.Store(0)
	r.ring.Reset()

	r.wg.Add(1)
	go r.readLoop()

	r.log.Debug().Str("pipe", r.pipePath).Msg("stream reader started")
}

// Stop ends the session: it closes the pipe to unblock the reading
// task and waits for the task to finish. After Stop returns no
// goroutine of this Reader is alive. Stopping an idle Reader is a
// no-op.
func (r *Reader) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	if r.pipeFD >= 0 {
		unix.Close(r.pipeFD)
		r.pipeFD = -1
	}
	r.mu.Unlock()

	r.wg.Wait()

	r.log.Debug().
		Int64("received", r.received.Load()).
		Int64("dropped", r.dropped.Load()).
		Msg("stream reader stopped")
}

// Reset clears the ring buffer and session flags without deallocating,
// so consecutive playback attempts reuse the same memory. The Reader
// must be stopped.
func (r *Reader) Reset() {
	r.ring.Reset()
	r.eof.Store(false)
	r.lastData.Store(0)
	r.received.Store(0)
	r.dropped.Store(0)
}

// Ready reports whether buffered data has reached the pre-buffer
// threshold. Callers use this to decide when to begin playback rather
// than starting on the first byte.
func (r *Reader) Ready() bool {
	return r.ring.Available() >= r.prebuffer
}

// IsEOF reports whether the stream has terminated: producer closed its
// end, the pipe could not be opened, or the read failed.
func (r *Reader) IsEOF() bool {
	return r.eof.Load()
}

// IsReceiving reports whether data has arrived within the last three
// seconds. It detects a stalled producer without tearing down the
// session.
func (r *Reader) IsReceiving() bool {
	r.mu.Lock()
	running := r.running
	r.mu.Unlock()
	if !running {
		return false
	}

	last := r.lastData.Load()
	if last == 0 {
		return false
	}
	return time.Since(time.Unix(0, last)) < receivingWindow
}

// BytesReceived returns the total bytes read from the pipe this
// session.
func (r *Reader) BytesReceived() int64 {
	return r.received.Load()
}

// BytesDropped returns the bytes discarded on ring-buffer overflow this
// session.
func (r *Reader) BytesDropped() int64 {
	return r.dropped.Load()
}

// Buffered returns the number of bytes currently held in the ring.
func (r *Reader) Buffered() int {
	return r.ring.Available()
}

// ReadChunk extracts buffered PCM wrapped in a WAV container: a 44-byte
// header followed by the payload. The payload is the lesser of the
// buffered amount and MaxChunkSize, aligned down to whole stereo
// frames. ErrNoData is returned when not even one frame is buffered.
// Ownership of the returned buffer passes to the caller.
func (r *Reader) ReadChunk() ([]byte, error) {
	n := r.ring.Available()
	if n > MaxChunkSize {
		n = MaxChunkSize
	}
	n -= n % FrameSize
	if n == 0 {
		return nil, ErrNoData
	}

	chunk := make([]byte, HeaderSize+n)
	got := r.ring.Read(chunk[HeaderSize : HeaderSize+n])
	if got < n {
		// Only possible if something else drained the ring between the
		// size query and the copy; the header reflects what was
		// actually delivered.
		chunk = chunk[:HeaderSize+got]
	}
	putWAVHeader(chunk, got)

	return chunk, nil
}

// readLoop is the background task: open the pipe, drain it into the
// ring, flag EOF on producer close or error. Runs until the stream ends
// or Stop closes the pipe out from under it.
func (r *Reader) readLoop() {
	defer r.wg.Done()

	// Open non-blockingly so a missing producer cannot hang the task
	// forever; the fd stays non-blocking and would-block reads yield
	// briefly instead.
	fd, err := unix.Open(r.pipePath, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		r.log.Error().Err(err).Str("pipe", r.pipePath).Msg("pipe open failed")
		r.eof.Store(true)
		return
	}

	r.mu.Lock()
	if !r.running {
		// Stopped while opening.
		r.mu.Unlock()
		unix.Close(fd)
		return
	}
	r.pipeFD = fd
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		if r.pipeFD >= 0 {
			unix.Close(r.pipeFD)
			r.pipeFD = -1
		}
		r.mu.Unlock()
	}()

	scratch := make([]byte, readChunkSize)

	// EAGAIN on a FIFO means a writer exists right now; once observed, a
	// later zero-length read is a closed producer even if it never wrote.
	writerSeen := false

	for {
		r.mu.Lock()
		running := r.running
		fd := r.pipeFD
		r.mu.Unlock()
		if !running || fd < 0 {
			return
		}

		// Stop may close fd between the snapshot above and this read; the
		// resulting EBADF lands in the error arm and exits quietly because
		// running is false by then.
		n, err := unix.Read(fd, scratch)
		switch {
		case n > 0:
			stored := r.ring.Write(scratch[:n])
			if stored < n {
				r.dropped.Add(int64(n - stored))
			}
			r.received.Add(int64(n))
			r.lastData.Store(time.Now().UnixNano())

		case err == unix.EAGAIN:
			// Producer attached but has nothing for us yet.
			writerSeen = true
			time.Sleep(yieldDelay)

		case err == unix.EINTR:
			// Retry immediately.

		case n == 0 && err == nil:
			// A FIFO with no writer reads as empty. Before any sign of a
			// producer that means it has not attached yet; after data, or
			// after a would-block read proved a writer was present, it
			// means the producer closed its end.
			if r.received.Load() > 0 || writerSeen {
				r.eof.Store(true)
				r.log.Debug().Int64("received", r.received.Load()).Msg("stream end of file")
				return
			}
			time.Sleep(yieldDelay)

		default:
			// Read error. If Stop closed the fd this is expected noise;
			// anything else is stream termination.
			r.mu.Lock()
			running := r.running
			r.mu.Unlock()
			if running {
				r.eof.Store(true)
				r.log.Warn().Err(err).Msg("pipe read failed, ending stream")
			}
			return
		}
	}
}
