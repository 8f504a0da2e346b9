package utils

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// ScheduleReminderData feeds the weekly schedule email.
type ScheduleReminderData struct {
	EmployeeName string
	Rows         []ScheduleReminderRow
}

type ScheduleReminderRow struct {
	Date  string
	Shift string
	Hours string
}

var scheduleReminderTmpl = template.Must(template.New("schedule").Parse(`
<h3>Hi {{.EmployeeName}},</h3>
<p>Your shifts for the coming week:</p>
<table border="1" cellpadding="6">
<tr><th>Date</th><th>Shift</th><th>Hours</th></tr>
{{range .Rows}}<tr><td>{{.Date}}</td><td>{{.Shift}}</td><td>{{.Hours}}</td></tr>{{end}}
</table>
`))

// SendScheduleReminderEmail mails an employee their upcoming shifts (async so
// the request is not delayed).
func SendScheduleReminderEmail(to string, data ScheduleReminderData) {
	go func() {
		var body bytes.Buffer
		if err := scheduleReminderTmpl.Execute(&body, data); err != nil {
			log.Printf("Error rendering schedule email: %v", err)
			return
		}
		sendMail(to, "Your shift schedule", body.String())
	}()
}

// SendLowStockEmail mails a manager the products at or below minimum stock.
func SendLowStockEmail(to string, lines []string) {
	go func() {
		body := "<h3>Low stock report</h3><ul>"
		for _, line := range lines {
			body += "<li>" + template.HTMLEscapeString(line) + "</li>"
		}
		body += "</ul>"
		sendMail(to, "Low stock report", body)
	}()
}

func sendMail(to, subject, htmlBody string) {
	host := os.Getenv("SMTP_HOST")
	portStr := os.Getenv("SMTP_PORT")
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")

	port, _ := strconv.Atoi(portStr)

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(host, port, username, password)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("Error sending email to %s: %v", to, err)
	}
}
