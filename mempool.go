package lsystem

// Buffer holds one generation's encoded symbols.
type Buffer struct {
	Bytes []byte
}

func (b *Buffer) Len() int {
	return len(b.Bytes)
}

// BufferPool double-buffers rewriting: the previous generation is read from
// one buffer while the next is written into the other, then the roles swap.
// Both buffers keep their capacity across generations.
type BufferPool struct {
	active   *Buffer
	inactive *Buffer

	swap bool
}

func NewBufferPool(capacity int) *BufferPool {
	return &BufferPool{
		active: &Buffer{
			Bytes: make([]byte, 0, capacity),
		},
		inactive: &Buffer{
			Bytes: make([]byte, 0, capacity),
		},

		swap: false,
	}
}

func (m *BufferPool) Reset() {
	m.active.Bytes = m.active.Bytes[:0]
	m.inactive.Bytes = m.inactive.Bytes[:0]
	m.swap = false
}

// GetActive returns the buffer being written.
func (m *BufferPool) GetActive() *Buffer {
	if m.swap {
		return m.inactive
	}
	return m.active
}

// GetSwap returns the buffer holding the last completed generation.
func (m *BufferPool) GetSwap() *Buffer {
	if m.swap {
		return m.active
	}
	return m.inactive
}

func (m *BufferPool) AppendString(s string) {
	active := m.GetActive()
	active.Bytes = append(active.Bytes, s...)
}

func (m *BufferPool) AppendBytes(b []byte) {
	active := m.GetActive()
	active.Bytes = append(active.Bytes, b...)
}

func (m *BufferPool) GetLen() int {
	return m.GetActive().Len()
}

func (m *BufferPool) GetCap() int {
	return cap(m.GetActive().Bytes)
}

func (m *BufferPool) Swap() {
	m.swap = !m.swap
}

func (m *BufferPool) ResetWritingHead() {
	active := m.GetActive()
	active.Bytes = active.Bytes[:0]
}

// Load makes s the last completed generation.
func (m *BufferPool) Load(s string) {
	m.Reset()
	m.AppendString(s)
	m.Swap()
}

// ReadAll returns the last completed generation. The slice is only valid
// until the next Swap.
func (m *BufferPool) ReadAll() []byte {
	return m.GetSwap().Bytes
}
