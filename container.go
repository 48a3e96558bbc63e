package hashpages

import (
	"bytes"
	"sync"
)

// Container is the element a page mounts into. The router holds exclusive
// write access to its contents for the application's lifetime: no other
// component may mutate it directly. Writes append markup; Clear wipes the
// contents entirely (a full wipe, not a diff).
type Container interface {
	Write(p []byte) (int, error)
	Clear()
}

// BufferContainer is an in-memory [Container] backed by a bytes.Buffer.
// It backs tests, the HTTP bridge and any host that applies the rendered
// markup to a real element itself.
type BufferContainer struct {
	buf bytes.Buffer
}

func (c *BufferContainer) Write(p []byte) (int, error) { return c.buf.Write(p) }

func (c *BufferContainer) Clear() { c.buf.Reset() }

// HTML returns the markup currently mounted in the container.
func (c *BufferContainer) HTML() string { return c.buf.String() }

var containerPool = sync.Pool{
	New: func() any {
		return new(BufferContainer)
	},
}

func getContainer() *BufferContainer {
	return containerPool.Get().(*BufferContainer)
}

func releaseContainer(c *BufferContainer) {
	c.Clear()
	containerPool.Put(c)
}
