// Package clipboard implements the copy-email action: one clipboard write
// followed by one user-visible notice.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sysclip "github.com/atotto/clipboard"
)

var (
	ErrDenied      = errors.New("clipboard permission denied")
	ErrUnsupported = errors.New("clipboard not supported")
	ErrFailed      = errors.New("clipboard write failed")
)

// Kind classifies a notice.
type Kind string

const (
	Success Kind = "success"
	Failure Kind = "failure"
)

// Notice is the acknowledgment surfaced to the visitor.
type Notice struct {
	Kind    Kind
	Message string
}

// Writer places text on a clipboard.
type Writer interface {
	WriteText(ctx context.Context, text string) error
}

// Notifier surfaces a notice to the visitor.
type Notifier interface {
	Notify(n Notice)
}

// NotifierFunc adapts a func to Notifier.
type NotifierFunc func(Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

// NoticeFor maps the outcome of a clipboard write to its notice.
func NoticeFor(err error) Notice {
	switch {
	case err == nil:
		return Notice{Kind: Success, Message: "Email copied to clipboard!"}
	case errors.Is(err, ErrDenied):
		return Notice{Kind: Failure, Message: "Could not copy the email: clipboard access was denied."}
	case errors.Is(err, ErrUnsupported):
		return Notice{Kind: Failure, Message: "Could not copy the email: this browser has no clipboard access."}
	default:
		return Notice{Kind: Failure, Message: "Could not copy the email. Please copy it manually."}
	}
}

// CopyEmail writes email to w exactly once and sends exactly one notice to
// n describing the outcome. A failed write or a panicking notifier is
// returned as an error, never panicked.
func CopyEmail(ctx context.Context, w Writer, n Notifier, email string) (err error) {
	notified := false
	notify := func(notice Notice) (nerr error) {
		if notified {
			return nil
		}
		notified = true
		defer func() {
			if r := recover(); r != nil {
				nerr = fmt.Errorf("notify: %v", r)
			}
		}()
		n.Notify(notice)
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrFailed, r)
			_ = notify(NoticeFor(err))
		}
	}()

	if werr := w.WriteText(ctx, email); werr != nil {
		err = fmt.Errorf("copy email: %w", werr)
	}
	if nerr := notify(NoticeFor(err)); nerr != nil && err == nil {
		err = nerr
	}
	return err
}

// ParseResult converts the outcome a browser reports after attempting
// navigator.clipboard.writeText.
func ParseResult(result string) error {
	switch strings.ToLower(strings.TrimSpace(result)) {
	case "ok", "copied":
		return nil
	case "denied":
		return ErrDenied
	case "unsupported":
		return ErrUnsupported
	default:
		return ErrFailed
	}
}

// SystemWriter writes to the operating system clipboard.
type SystemWriter struct{}

func (SystemWriter) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if sysclip.Unsupported {
		return ErrUnsupported
	}
	if err := sysclip.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrFailed, err)
	}
	return nil
}
