package rod_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/novelgrab/novelgrab"
	"github.com/novelgrab/novelgrab/mock"
	"github.com/novelgrab/novelgrab/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingBrowser(t *testing.T) {
	t.Parallel()

	t.Run("wraps opened sessions", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Session{
			NavigateFn: func(ctx context.Context, url string) error { return nil },
			CloseFn:    func() error { return nil },
		}
		browser := &mock.Browser{
			NewSessionFn: func(ctx context.Context) (novelgrab.Session, error) { return inner, nil },
		}

		lb := rod.NewLoggingBrowser(browser, debugLogger(&buf))
		session, err := lb.NewSession(context.Background())
		require.NoError(t, err)

		err = session.Navigate(context.Background(), "https://example.com")
		require.NoError(t, err)
		require.NoError(t, session.Close())

		assert.Contains(t, buf.String(), "navigate")
		assert.Contains(t, buf.String(), "https://example.com")
	})

	t.Run("logs session acquisition failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		browser := &mock.Browser{
			NewSessionFn: func(ctx context.Context) (novelgrab.Session, error) {
				return nil, novelgrab.Errorf(novelgrab.EUNAVAILABLE, "browser gone")
			},
		}

		lb := rod.NewLoggingBrowser(browser, debugLogger(&buf))
		_, err := lb.NewSession(context.Background())

		require.Error(t, err)
		assert.Contains(t, buf.String(), "browser gone")
	})
}

func TestLoggingSession_Delegation(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.Session{
		NavigateFn: func(ctx context.Context, url string) error { return nil },
		WaitForFn: func(ctx context.Context, selector string, timeout time.Duration) error {
			return nil
		},
		ElementTextFn: func(selector string) (string, error) { return "text", nil },
		ElementHTMLFn: func(selector string) (string, error) { return "<p>x</p>", nil },
		CloseFn:       func() error { return nil },
	}
	browser := &mock.Browser{
		NewSessionFn: func(ctx context.Context) (novelgrab.Session, error) { return inner, nil },
	}

	lb := rod.NewLoggingBrowser(browser, debugLogger(&buf))
	session, err := lb.NewSession(context.Background())
	require.NoError(t, err)

	require.NoError(t, session.WaitFor(context.Background(), "div#content", time.Second))

	text, err := session.ElementText("div#content")
	require.NoError(t, err)
	assert.Equal(t, "text", text)

	html, err := session.ElementHTML("div#content")
	require.NoError(t, err)
	assert.Equal(t, "<p>x</p>", html)

	assert.Contains(t, buf.String(), "wait for element")
	assert.Contains(t, buf.String(), "element html")
}
