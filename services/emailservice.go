package services

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"

	"opsboard/model"

	"github.com/joho/godotenv"
)

// Mailer sends a single HTML message. Sends are best-effort everywhere they
// are used: callers log failures and continue.
type Mailer interface {
	Send(to, subject, body string) error
}

func LoadEmailConfig() (*model.EmailConfig, error) {
	// .env is only present when running locally
	if os.Getenv("RENDER") == "" {
		if err := godotenv.Load(); err != nil {
			fmt.Println("Warning: .env file not loaded, fallback to OS env vars")
		}
	}

	config := &model.EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     os.Getenv("SMTP_PORT"),
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
	}

	if config.Host == "" || config.Port == "" || config.Username == "" || config.Password == "" {
		return nil, fmt.Errorf("missing required SMTP environment variables")
	}

	return config, nil
}

// SMTPMailer sends through the SMTP relay configured in the environment.
type SMTPMailer struct{}

func (SMTPMailer) Send(to, subject, body string) error {
	config, err := LoadEmailConfig()
	if err != nil {
		return fmt.Errorf("config loading error: %w", err)
	}

	addr := config.Host + ":" + config.Port
	auth := smtp.PlainAuth("", config.Username, config.Password, config.Host)

	from := config.Username
	mime := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
	message := "From: " + from + "\n" +
		"To: " + to + "\n" +
		"Subject: " + subject + "\n" +
		mime + "\n" +
		body

	if err := smtp.SendMail(addr, auth, from, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("SMTP send error: %w", err)
	}
	return nil
}

func DashboardURL() string {
	if url := os.Getenv("DASHBOARD_URL"); url != "" {
		return url
	}
	return "https://urc-it.netlify.app"
}

// StatusChangeRecipient picks who to notify about a status change: the
// creator unless they made the change themselves, otherwise the assignee.
// The actor is never notified. Empty means nobody.
func StatusChangeRecipient(task model.Task, actor string) string {
	if task.CreatedBy != "" && task.CreatedBy != actor {
		return task.CreatedBy
	}
	if task.AssignedTo != "" && task.AssignedTo != actor && task.AssignedTo != task.CreatedBy {
		return task.AssignedTo
	}
	return ""
}

// SendTaskAssignmentEmail notifies the assignee of a newly created task. It
// is a no-op when the task has no assignee.
func SendTaskAssignmentEmail(mailer Mailer, task model.Task) error {
	to := strings.TrimSpace(task.AssignedTo)
	if to == "" {
		return nil
	}

	description := task.Description
	if description == "" {
		description = "No description"
	}
	deadline := "No deadline"
	if task.Deadline != nil {
		deadline = task.Deadline.Format("02/01/2006")
	}

	body := emailShell("You have been assigned a new task",
		emailRow("Task", task.Headline)+
			emailRow("Description", description)+
			emailRow("Priority", task.Priority)+
			emailRow("Deadline", deadline)+
			emailRow("Status", task.Status)+
			emailRow("Created by", task.CreatedBy))

	return mailer.Send(to, "New task assigned: "+task.Headline, body)
}

// SendStatusChangeEmail notifies the recipient chosen by
// StatusChangeRecipient. The task is the written, post-update record, so the
// recipient and headline reflect the same edit that changed the status;
// oldStatus carries the status it replaced.
func SendStatusChangeEmail(mailer Mailer, task model.Task, oldStatus, actor string) error {
	to := StatusChangeRecipient(task, actor)
	if to == "" {
		return nil
	}

	body := emailShell("A task you follow changed status",
		emailRow("Task", task.Headline)+
			emailRow("Old status", oldStatus)+
			emailRow("New status", task.Status)+
			emailRow("Changed by", actor))

	return mailer.Send(to, "Task status changed: "+task.Headline, body)
}

// NotifyTaskUpdate sends the status-change email when, and only when, the
// update changed the task's status from the previously mirrored copy. Any
// other edit stays silent.
func NotifyTaskUpdate(mailer Mailer, previous, updated model.Task, actor string) error {
	if previous.Status == updated.Status {
		return nil
	}
	return SendStatusChangeEmail(mailer, updated, previous.Status, actor)
}

func emailShell(heading, rows string) string {
	return `<table width="680px" cellpadding="0" cellspacing="0" border="0" style="font-family:Arial">
	<tbody>
	  <tr><td bgcolor="#eeeeee" align="center"><h1>Operations Dashboard</h1></td></tr>
	  <tr><td bgcolor="#ffffff" align="center"><font color="#333333"><span style="font-size:16px">` + heading + `</span></font></td></tr>
	  <tr><td bgcolor="#ffffff"><table width="100%" cellpadding="6" cellspacing="0" border="0">` + rows + `</table></td></tr>
	  <tr><td bgcolor="#ffffff" align="center"><a href="` + DashboardURL() + `">Open the dashboard</a></td></tr>
	</tbody>
	</table>`
}

func emailRow(label, value string) string {
	return fmt.Sprintf(`<tr><td width="30%%" style="color:#666">%s</td><td><strong>%s</strong></td></tr>`, label, value)
}
