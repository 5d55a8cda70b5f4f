package interfaces

import (
	"context"
	"errors"
)

var (
	// ErrShareUnavailable is returned by a share target that cannot share on
	// this platform. Callers fall back to the clipboard.
	ErrShareUnavailable = errors.New("share target unavailable")
	// ErrShareCancelled means the user dismissed the share sheet.
	ErrShareCancelled = errors.New("share cancelled")
)

// IShareTarget is the platform share capability.
type IShareTarget interface {
	Share(ctx context.Context, title, text string) error
}

// IClipboard is the platform clipboard capability.
type IClipboard interface {
	WriteText(ctx context.Context, text string) error
}
