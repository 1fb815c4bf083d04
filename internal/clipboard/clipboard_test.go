package clipboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	writes []string
	err    error
	panics bool
}

func (w *recordingWriter) WriteText(_ context.Context, text string) error {
	w.writes = append(w.writes, text)
	if w.panics {
		panic("clipboard host went away")
	}
	return w.err
}

type recordingNotifier struct {
	notices []Notice
}

func (n *recordingNotifier) Notify(notice Notice) {
	n.notices = append(n.notices, notice)
}

func TestCopyEmail(t *testing.T) {
	const email = "veerlapatiswapnika26@gmail.com"

	t.Run("Should write the exact email once and confirm once", func(t *testing.T) {
		w, n := &recordingWriter{}, &recordingNotifier{}
		require.NoError(t, CopyEmail(context.Background(), w, n, email))
		assert.Equal(t, []string{email}, w.writes)
		require.Len(t, n.notices, 1)
		assert.Equal(t, Success, n.notices[0].Kind)
		assert.Equal(t, "Email copied to clipboard!", n.notices[0].Message)
	})

	t.Run("Should report a denied write as a failure notice", func(t *testing.T) {
		w, n := &recordingWriter{err: ErrDenied}, &recordingNotifier{}
		err := CopyEmail(context.Background(), w, n, email)
		assert.ErrorIs(t, err, ErrDenied)
		assert.Len(t, w.writes, 1)
		require.Len(t, n.notices, 1)
		assert.Equal(t, Failure, n.notices[0].Kind)
		assert.Contains(t, n.notices[0].Message, "denied")
	})

	t.Run("Should not crash when the writer panics", func(t *testing.T) {
		w, n := &recordingWriter{panics: true}, &recordingNotifier{}
		var err error
		assert.NotPanics(t, func() { err = CopyEmail(context.Background(), w, n, email) })
		assert.ErrorIs(t, err, ErrFailed)
		require.Len(t, n.notices, 1)
		assert.Equal(t, Failure, n.notices[0].Kind)
	})

	t.Run("Should notify once and not crash when the notifier panics", func(t *testing.T) {
		w := &recordingWriter{}
		calls := 0
		n := NotifierFunc(func(Notice) {
			calls++
			panic("toast failed")
		})

		var err error
		assert.NotPanics(t, func() { err = CopyEmail(context.Background(), w, n, email) })
		assert.Len(t, w.writes, 1)
		assert.Equal(t, 1, calls)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "toast failed")
	})

	t.Run("Should notify once when both the writer and the notifier panic", func(t *testing.T) {
		calls := 0
		n := NotifierFunc(func(Notice) {
			calls++
			panic("toast failed")
		})

		var err error
		assert.NotPanics(t, func() { err = CopyEmail(context.Background(), &recordingWriter{panics: true}, n, email) })
		assert.Equal(t, 1, calls)
		assert.ErrorIs(t, err, ErrFailed)
	})

	t.Run("Should accept a notifier func", func(t *testing.T) {
		var got []Notice
		err := CopyEmail(context.Background(), &recordingWriter{}, NotifierFunc(func(n Notice) { got = append(got, n) }), email)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestParseResult(t *testing.T) {
	assert.NoError(t, ParseResult("ok"))
	assert.NoError(t, ParseResult(" Copied "))
	assert.ErrorIs(t, ParseResult("denied"), ErrDenied)
	assert.ErrorIs(t, ParseResult("unsupported"), ErrUnsupported)
	assert.ErrorIs(t, ParseResult(""), ErrFailed)
	assert.ErrorIs(t, ParseResult("weird"), ErrFailed)
}

func TestNoticeFor(t *testing.T) {
	assert.Equal(t, Success, NoticeFor(nil).Kind)
	assert.Contains(t, NoticeFor(ErrUnsupported).Message, "no clipboard access")
	assert.Equal(t, Failure, NoticeFor(ErrFailed).Kind)
}

func TestSystemWriterHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, SystemWriter{}.WriteText(ctx, "x"), context.Canceled)
}
