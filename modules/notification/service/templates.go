package service

import (
	"bytes"
	"fmt"
	"html/template"
)

// AvailabilityRequestData feeds the availability-request email sent to each
// team member when a series is created.
type AvailabilityRequestData struct {
	MeetingTitle     string
	DateRangeStart   string
	DateRangeEnd     string
	NumberOfMeetings int
	DurationMinutes  int
	ConsecutiveDays  bool
	AvailabilityURL  string
}

// VoteRequestData feeds the vote-request email sent when schedule options
// are published.
type VoteRequestData struct {
	MeetingTitle string
	OptionCount  int
	VoteURL      string
}

// ScheduledMeetingLine is one meeting row in the confirmation email.
type ScheduledMeetingLine struct {
	Title     string
	StartTime string
	EndTime   string
	Timezone  string
}

// MeetingsScheduledData feeds the confirmation email sent after the vote
// is finalized.
type MeetingsScheduledData struct {
	MeetingTitle string
	Meetings     []ScheduledMeetingLine
}

const emailStyle = `
  body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
  .container { max-width: 600px; margin: 0 auto; padding: 20px; }
  .header { background: {{.Accent}}; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
  .content { background: #f9fafb; padding: 30px; border-radius: 0 0 8px 8px; }
  .button { display: inline-block; background: {{.Accent}}; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; margin: 20px 0; }
  .details { background: white; padding: 20px; border-left: 4px solid {{.Accent}}; margin: 20px 0; }
  .footer { text-align: center; margin-top: 30px; color: #6b7280; font-size: 14px; }
`

var availabilityRequestTmpl = template.Must(template.New("availability_request").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Meeting Availability Request</title>
  <style>` + emailStyle + `</style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Meeting Availability Request</h1>
    </div>
    <div class="content">
      <p>Hi {{.Name}},</p>
      <p>You've been invited to participate in <strong>{{.Data.MeetingTitle}}</strong>. We need to coordinate schedules across multiple time zones to find the best meeting times for everyone.</p>
      <div class="details">
        <h3>Meeting Details:</h3>
        <ul>
          <li><strong>Meeting Series:</strong> {{.Data.MeetingTitle}}</li>
          <li><strong>Number of Meetings:</strong> {{.Data.NumberOfMeetings}} sessions</li>
          <li><strong>Duration:</strong> {{.DurationLabel}} each</li>
          <li><strong>Scheduling Window:</strong> {{.Data.DateRangeStart}} to {{.Data.DateRangeEnd}}</li>
          {{if .Data.ConsecutiveDays}}<li><strong>Format:</strong> Preferably on consecutive days</li>{{end}}
        </ul>
      </div>
      <p>Please click the button below to select your available time slots. The system will automatically handle timezone conversions and find optimal meeting times that work for the entire team.</p>
      <div style="text-align: center;">
        <a href="{{.Data.AvailabilityURL}}" class="button">Select Your Availability</a>
      </div>
      <p><strong>Important:</strong></p>
      <ul>
        <li>Select multiple time slots to increase scheduling flexibility</li>
        <li>Times will be displayed in your local timezone</li>
        <li>Once everyone submits their availability, you'll receive schedule options to vote on</li>
      </ul>
      <p>Thank you for your participation!</p>
    </div>
    <div class="footer">
      <p>This email was sent by Team Meeting Scheduler</p>
      <p>If you can't click the button above, copy and paste this link: {{.Data.AvailabilityURL}}</p>
    </div>
  </div>
</body>
</html>`))

var voteRequestTmpl = template.Must(template.New("vote_request").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Vote on Meeting Schedules</title>
  <style>` + emailStyle + `</style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Vote on Meeting Schedules</h1>
    </div>
    <div class="content">
      <p>Hi {{.Name}},</p>
      <p>Everyone has submitted their availability for <strong>{{.Data.MeetingTitle}}</strong>, and {{.Data.OptionCount}} schedule options have been generated.</p>
      <p>Please rank the options in order of preference. The option with the most points across the whole team wins.</p>
      <div style="text-align: center;">
        <a href="{{.Data.VoteURL}}" class="button">Rank the Options</a>
      </div>
      <p>If you can't click the button above, copy and paste this link: {{.Data.VoteURL}}</p>
    </div>
    <div class="footer">
      <p>This email was sent by Team Meeting Scheduler</p>
    </div>
  </div>
</body>
</html>`))

var meetingsScheduledTmpl = template.Must(template.New("meetings_scheduled").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Meetings Scheduled</title>
  <style>` + emailStyle + `</style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Meetings Successfully Scheduled!</h1>
    </div>
    <div class="content">
      <p>Hi {{.Name}},</p>
      <p>Great news! We've successfully scheduled your <strong>{{.Data.MeetingTitle}}</strong> meetings. Calendar invitations have been sent to your email and should appear in your calendar shortly.</p>
      <div class="details">
        <h3>Scheduled Meetings:</h3>
        <ul>
          {{range .Data.Meetings}}
          <li>
            <strong>{{.Title}}</strong><br>
            {{.StartTime}} - {{.EndTime}} ({{.Timezone}})
          </li>
          {{end}}
        </ul>
      </div>
      <p>If you need to make any changes or have scheduling conflicts, please contact the meeting organizer as soon as possible.</p>
      <p>We look forward to productive meetings with the team!</p>
    </div>
    <div class="footer">
      <p>This email was sent by Team Meeting Scheduler</p>
    </div>
  </div>
</body>
</html>`))

type templateView struct {
	Name          string
	Accent        string
	DurationLabel string
	Data          interface{}
}

func renderAvailabilityRequest(name string, data AvailabilityRequestData) (string, error) {
	return render(availabilityRequestTmpl, templateView{
		Name:          name,
		Accent:        "#3b82f6",
		DurationLabel: durationLabel(data.DurationMinutes),
		Data:          data,
	})
}

func renderVoteRequest(name string, data VoteRequestData) (string, error) {
	return render(voteRequestTmpl, templateView{
		Name:   name,
		Accent: "#3b82f6",
		Data:   data,
	})
}

func renderMeetingsScheduled(name string, data MeetingsScheduledData) (string, error) {
	return render(meetingsScheduledTmpl, templateView{
		Name:   name,
		Accent: "#10b981",
		Data:   data,
	})
}

func render(tmpl *template.Template, view templateView) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// durationLabel formats minutes as hours for the email body, e.g. 210 -> "3.5 hours".
func durationLabel(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d minutes", minutes)
	}
	if minutes%60 == 0 {
		if minutes == 60 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", minutes/60)
	}
	return fmt.Sprintf("%.1f hours", float64(minutes)/60)
}
