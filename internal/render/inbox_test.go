package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drabdulwahidyusuf-sudo/uk-esim-mvp/internal/db"
)

func renderToString(t *testing.T, records []*db.SMSRecord) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Inbox(&buf, records))
	return buf.String()
}

func TestInboxRendersRecordFields(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC)
	html := renderToString(t, []*db.SMSRecord{
		{
			ID:         42,
			FromNumber: "+447700900000",
			ToNumber:   "+447911123456",
			Body:       "Welcome aboard",
			CreatedAt:  created,
		},
	})

	assert.Contains(t, html, "#42")
	assert.Contains(t, html, "+447700900000")
	assert.Contains(t, html, "+447911123456")
	assert.Contains(t, html, "Welcome aboard")
	assert.Contains(t, html, "2025-06-01 12:30:45")
	assert.Contains(t, html, "Last 1 messages")
	// No code in the body, so no badge
	assert.NotContains(t, html, `class="otp"`)
}

func TestInboxRendersOTPBadge(t *testing.T) {
	html := renderToString(t, []*db.SMSRecord{
		{ID: 1, FromNumber: "VERIFY", ToNumber: "+447911123456", Body: "Your OTP is 554433", CreatedAt: time.Now()},
	})

	assert.Contains(t, html, `<span class="otp">554433</span>`)
	assert.Contains(t, html, `<span class="badge">OTP</span>`)
}

func TestInboxEscapesBody(t *testing.T) {
	html := renderToString(t, []*db.SMSRecord{
		{ID: 1, FromNumber: "a", ToNumber: "b", Body: `<script>alert("pwned")</script>`, CreatedAt: time.Now()},
	})

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestInboxEmptyBody(t *testing.T) {
	html := renderToString(t, []*db.SMSRecord{
		{ID: 1, FromNumber: "a", ToNumber: "b", Body: "", CreatedAt: time.Now()},
	})

	assert.Contains(t, html, "#1")
	assert.NotContains(t, html, `class="otp"`)
}

func TestInboxSkipsNilRecord(t *testing.T) {
	html := renderToString(t, []*db.SMSRecord{
		nil,
		{ID: 2, FromNumber: "a", ToNumber: "b", Body: "still here", CreatedAt: time.Now()},
	})

	assert.Contains(t, html, "still here")
	assert.Contains(t, html, "Last 1 messages")
}

func TestInboxNoRecords(t *testing.T) {
	html := renderToString(t, nil)

	assert.Contains(t, html, "Last 0 messages")
	assert.Contains(t, html, `href="/"`)
}
