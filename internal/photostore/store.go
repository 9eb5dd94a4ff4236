// Package photostore keeps the optional photo attached to a punch.
package photostore

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"
)

// ErrNotFound is returned when no photo exists under a name.
var ErrNotFound = errors.New("photo not found")

// Store saves and serves punch photos by name.
type Store interface {
	// Save writes r under name and returns the reference to put on the punch.
	Save(ctx context.Context, name string, r io.Reader, contentType string) (string, error)
	Open(ctx context.Context, name string) (io.ReadCloser, string, error)
}

// PhotoName is the file name for a photo taken by worker at t, e.g.
// "Tony_20251008_090000.jpg".
func PhotoName(worker string, t time.Time) string {
	return sanitize(worker + "_" + t.Format("20060102_150405") + ".jpg")
}

// sanitize keeps names safe for a flat directory or bucket: whitespace
// becomes "_" and anything other than letters, digits, "_", "-" and "."
// is dropped along with leading dots.
func sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r == ' ' || r == '\t':
			b.WriteByte('_')
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '_', r == '-', r == '.':
			b.WriteRune(r)
		}
	}
	return strings.TrimLeft(b.String(), "._")
}
