package render

import (
	"html/template"
	"io"

	"github.com/drabdulwahidyusuf-sudo/uk-esim-mvp/internal/db"
	"github.com/drabdulwahidyusuf-sudo/uk-esim-mvp/internal/inbox"
)

// Row is one rendered inbox entry. OTP is empty when the extractor found no
// code, which suppresses the badge.
type Row struct {
	ID         int64
	From       string
	To         string
	Body       string
	OTP        string
	ReceivedAt string
}

// Page is the data handed to the inbox template.
type Page struct {
	Title string
	Rows  []Row
	Count int
}

// Inbox writes the full dashboard document for the given records, in the
// given order. Bodies are untrusted provider text; the template escapes them
// on insert, so embedded markup never alters page structure. A nil record
// is skipped rather than failing the whole page.
func Inbox(w io.Writer, records []*db.SMSRecord) error {
	page := Page{Title: "UK SMS Inbox", Rows: make([]Row, 0, len(records))}

	for _, rec := range records {
		if rec == nil {
			continue
		}
		page.Rows = append(page.Rows, Row{
			ID:         rec.ID,
			From:       rec.FromNumber,
			To:         rec.ToNumber,
			Body:       rec.Body,
			OTP:        inbox.ExtractOTP(rec.Body),
			ReceivedAt: rec.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		})
	}
	page.Count = len(page.Rows)

	return inboxTemplate.Execute(w, page)
}

var inboxTemplate = template.Must(template.New("inbox").Parse(inboxHTML))

const inboxHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8" />
  <title>{{.Title}}</title>
  <style>
    body {
      font-family: system-ui, -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
      background: #050816;
      color: #e5e7eb;
      margin: 0;
      padding: 20px;
    }
    h1 {
      margin-bottom: 10px;
    }
    .subtitle {
      color: #9ca3af;
      margin-bottom: 20px;
    }
    table {
      border-collapse: collapse;
      width: 100%;
      background: #0b1120;
      border-radius: 12px;
      overflow: hidden;
    }
    th, td {
      padding: 10px 12px;
      border-bottom: 1px solid #111827;
      font-size: 14px;
    }
    th {
      background: #111827;
      text-align: left;
    }
    tr:nth-child(even) {
      background: #020617;
    }
    .otp {
      font-weight: bold;
      padding: 2px 6px;
      border-radius: 6px;
      background: #1d4ed8;
      color: white;
      display: inline-block;
      margin-left: 6px;
    }
    .badge {
      display: inline-block;
      font-size: 11px;
      padding: 2px 6px;
      border-radius: 999px;
      background: #111827;
      color: #9ca3af;
      margin-left: 8px;
    }
    .meta {
      font-size: 12px;
      color: #9ca3af;
    }
    .code {
      font-family: "SF Mono", ui-monospace, Menlo, Monaco, Consolas, "Liberation Mono", monospace;
    }
    .header-row {
      display: flex;
      justify-content: space-between;
      align-items: baseline;
      margin-bottom: 12px;
    }
    .pill {
      border-radius: 999px;
      border: 1px solid #374151;
      padding: 4px 10px;
      font-size: 12px;
      color: #9ca3af;
    }
    a {
      color: #60a5fa;
      text-decoration: none;
    }
  </style>
</head>
<body>
  <div class="header-row">
    <div>
      <h1>{{.Title}}</h1>
      <div class="subtitle">Your private verification line &mdash; if the code lands, it lives here.</div>
    </div>
    <div class="pill">
      Last {{.Count}} messages &middot; <a href="/">Refresh</a>
    </div>
  </div>

  <table>
    <thead>
      <tr>
        <th>ID</th>
        <th>From &rarr; To</th>
        <th>Message</th>
        <th>Received At</th>
      </tr>
    </thead>
    <tbody>
      {{range .Rows}}
      <tr>
        <td class="code">#{{.ID}}</td>
        <td>
          <div class="code">{{.From}}</div>
          <div class="meta">&rarr; {{.To}}</div>
        </td>
        <td>
          <span>{{.Body}}</span>
          {{if .OTP}}<span class="otp">{{.OTP}}</span><span class="badge">OTP</span>{{end}}
        </td>
        <td class="meta">{{.ReceivedAt}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>

</body>
</html>
`
