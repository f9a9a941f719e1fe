package executor

import (
	"bytes"

	"github.com/Cyclone1070/sandboxagent/internal/tool/helper/content"
)

// binarySample is how many leading bytes of a stream are scanned for NUL.
const binarySample = 8000

// collector is an io.Writer that keeps at most maxBytes of one output
// stream. A stream that looks binary within its first sampleSize bytes is
// replaced by a notice carrying its size. Write never fails, so a chatty
// child is never blocked on a full pipe.
type collector struct {
	buf        bytes.Buffer
	maxBytes   int
	sampleSize int

	total     int64
	sampled   int
	binary    bool
	truncated bool
}

func newCollector(maxBytes, sampleSize int) *collector {
	return &collector{maxBytes: maxBytes, sampleSize: sampleSize}
}

func (c *collector) Write(p []byte) (int, error) {
	c.total += int64(len(p))
	if c.binary {
		return len(p), nil
	}

	if c.sampled < c.sampleSize {
		sample := p[:min(len(p), c.sampleSize-c.sampled)]
		if content.IsBinaryContent(sample) {
			c.binary = true
			c.buf.Reset()
			return len(p), nil
		}
		c.sampled += len(sample)
	}

	room := c.maxBytes - c.buf.Len()
	if len(p) > room {
		c.truncated = true
		if room > 0 {
			c.buf.Write(p[:room])
		}
		return len(p), nil
	}
	c.buf.Write(p)
	return len(p), nil
}

// String returns the captured text, or the binary notice.
func (c *collector) String() string {
	if c.binary {
		return content.BinaryOutputNotice(c.total)
	}
	return c.buf.String()
}

// Truncated reports whether text output went past maxBytes.
func (c *collector) Truncated() bool {
	return c.truncated
}
