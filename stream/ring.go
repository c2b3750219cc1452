// SPDX-License-Identifier: EPL-2.0

package stream

import "sync"

// RingBuffer is a fixed-capacity circular byte store shared by the pipe
// reader goroutine (writer) and the consumer (reader).
//
// Writes never overwrite unread data: when the buffer is full, the
// excess bytes of a write are dropped. The internal lock is held only
// for the copy and cursor update, never across a blocking call or an
// allocation.
type RingBuffer struct {
	mu       sync.Mutex
	buf      []byte
	writePos int
	readPos  int
	avail    int
}

// NewRingBuffer returns a ring buffer holding up to capacity bytes.
func NewRingBuffer(capacity int) *RingBuffer {
	return &RingBuffer{buf: make([]byte, capacity)}
}

// Write copies p into the buffer and returns the number of bytes
// stored. Bytes that do not fit are dropped, not blocked on.
func (b *RingBuffer) Write(p []byte) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(p)
	if free := len(b.buf) - b.avail; n > free {
		n = free
	}

	// Copy in up to two segments to handle wrap-around.
	for copied := 0; copied < n; {
		chunk := n - copied
		if right := len(b.buf) - b.writePos; chunk > right {
			chunk = right
		}
		copy(b.buf[b.writePos:b.writePos+chunk], p[copied:copied+chunk])
		b.writePos = (b.writePos + chunk) % len(b.buf)
		copied += chunk
	}

	b.avail += n
	return n
}

// Read copies up to len(p) buffered bytes into p, advancing the read
// cursor, and returns the number of bytes delivered. Bytes arrive in
// the exact order the producer wrote them.
func (b *RingBuffer) Read(p []byte) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(p)
	if n > b.avail {
		n = b.avail
	}

	for copied := 0; copied < n; {
		chunk := n - copied
		if right := len(b.buf) - b.readPos; chunk > right {
			chunk = right
		}
		copy(p[copied:copied+chunk], b.buf[b.readPos:b.readPos+chunk])
		b.readPos = (b.readPos + chunk) % len(b.buf)
		copied += chunk
	}

	b.avail -= n
	return n
}

// Available returns the number of unread bytes.
func (b *RingBuffer) Available() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.avail
}

// Capacity returns the fixed buffer capacity.
func (b *RingBuffer) Capacity() int {
	return len(b.buf)
}

// Reset drops all buffered data without deallocating the buffer.
func (b *RingBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.writePos = 0
	b.readPos = 0
	b.avail = 0
}
