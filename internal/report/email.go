package report

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/shivamGupta-25/YouTube-Analyzer/internal/config"
	"github.com/shivamGupta-25/YouTube-Analyzer/internal/models"
)

// Mailer sends the run digest over SMTP.
type Mailer struct {
	config *config.EmailConfig
}

func NewMailer(cfg *config.EmailConfig) *Mailer {
	return &Mailer{config: cfg}
}

// SendReport renders the run report as HTML and mails it. A run with zero
// analyzed channels is still sent so failures are visible.
func (m *Mailer) SendReport(report *models.RunReport) error {
	if report == nil {
		return fmt.Errorf("report cannot be nil")
	}

	subject := fmt.Sprintf("YouTube Channel Analysis - %d Channels (%s)",
		report.Analyzed, report.Date.Format("Jan 2, 2006"))

	body, err := renderEmailBody(report)
	if err != nil {
		return fmt.Errorf("failed to generate email body: %w", err)
	}

	return m.sendViaSMTP(subject, body)
}

func (m *Mailer) sendViaSMTP(subject, body string) error {
	auth := smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.SMTPServer)

	to := []string{m.config.ToEmail}
	msg := []byte(fmt.Sprintf(`To: %s
From: %s
Subject: %s
MIME-Version: 1.0
Content-Type: text/html; charset=UTF-8

%s`, m.config.ToEmail, m.config.FromEmail, subject, body))

	addr := fmt.Sprintf("%s:%d", m.config.SMTPServer, m.config.SMTPPort)
	return smtp.SendMail(addr, auth, m.config.FromEmail, to, msg)
}

const emailTemplate = `<html>
<body style="font-family: Arial, sans-serif; color: #222; max-width: 640px; margin: 0 auto;">
  <h2>YouTube Channel Analysis</h2>
  <p>{{.Date.Format "January 2, 2006"}} &mdash; {{.Analyzed}} channel(s) analyzed, {{.Skipped}} skipped.</p>

  {{if .Insights}}
  <h3>Insights</h3>
  <p>Median shorts ratio: {{printf "%.2f" .Insights.MedianShortsRatio}}</p>
  <ul>
    {{range .Insights.Suggestions}}<li>{{.}}</li>{{end}}
  </ul>
  {{if .Insights.TopOverallTopics}}
  <p>Top topics:
    {{range $i, $t := .Insights.TopOverallTopics}}{{if $i}}, {{end}}{{$t.Topic}} ({{$t.Count}}){{end}}
  </p>
  {{end}}
  {{end}}

  {{if .Narrative}}
  <h3>Summary</h3>
  <p style="white-space: pre-wrap;">{{.Narrative}}</p>
  {{end}}

  {{if .SkipReasons}}
  <h3>Skipped</h3>
  <ul>
    {{range .SkipReasons}}<li>{{.}}</li>{{end}}
  </ul>
  {{end}}

  {{if .ExportPaths}}
  <h3>Exports</h3>
  <ul>
    {{range .ExportPaths}}<li><code>{{.}}</code></li>{{end}}
  </ul>
  {{end}}
</body>
</html>`

func renderEmailBody(report *models.RunReport) (string, error) {
	tmpl, err := template.New("email").Parse(emailTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, report); err != nil {
		return "", err
	}
	return buf.String(), nil
}
