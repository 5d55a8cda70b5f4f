// Package share holds the share and clipboard targets available to headless
// hosts (the API server and the CLI).
package share

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/Skale-Club/xtimator/internal/usecase/interfaces"
)

// Unavailable is the share target of hosts without a share sheet. Every
// share falls back to the clipboard.
type Unavailable struct{}

var _ interfaces.IShareTarget = Unavailable{}

func (Unavailable) Share(context.Context, string, string) error {
	return interfaces.ErrShareUnavailable
}

// WriterClipboard prints copied text to w, one block per copy.
type WriterClipboard struct {
	mu sync.Mutex
	w  io.Writer
}

var _ interfaces.IClipboard = (*WriterClipboard)(nil)

func NewWriterClipboard(w io.Writer) *WriterClipboard {
	return &WriterClipboard{w: w}
}

func (c *WriterClipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := fmt.Fprintln(c.w, text)
	return err
}

// MemoryClipboard keeps the last copied text.
type MemoryClipboard struct {
	mu   sync.RWMutex
	last string
}

var _ interfaces.IClipboard = (*MemoryClipboard)(nil)

func (c *MemoryClipboard) WriteText(_ context.Context, text string) error {
	c.mu.Lock()
	c.last = text
	c.mu.Unlock()
	return nil
}

func (c *MemoryClipboard) Last() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.last
}
