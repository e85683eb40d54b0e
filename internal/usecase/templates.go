package usecase

import "go-lawfirm-backend/internal/domain"

type firmEmailData struct {
	Request   *domain.ConsultationRequest
	FirmName  string
	FirmPhone string
	Date      string
}

// firmEmailTemplate is the internal notification sent to the firm's intake
// inbox.
const firmEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Consultation Request</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1a2e4a; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #1a2e4a; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Consultation Request</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">Name:</div>
                <div class="value">{{.Request.FullName}} ({{.Request.Email}})</div>
            </div>
            <div class="field">
                <div class="label">Company:</div>
                <div class="value">{{.Request.Company}}{{if .Request.JobTitle}} &mdash; {{.Request.JobTitle}}{{end}}</div>
            </div>
            <div class="field">
                <div class="label">Phone:</div>
                <div class="value">{{.Request.Phone}}</div>
            </div>
            <div class="field">
                <div class="label">Practice Area:</div>
                <div class="value">{{.Request.PracticeArea}}</div>
            </div>
            <div class="field">
                <div class="label">Consultation:</div>
                <div class="value">{{.Request.ConsultationType}} on {{.Date}} at {{.Request.PreferredTime}} ({{.Request.Timezone}})</div>
            </div>
            {{if .Request.AlternateDate}}
            <div class="field">
                <div class="label">Alternate:</div>
                <div class="value">{{.Request.AlternateDate}} at {{.Request.AlternateTime}}</div>
            </div>
            {{end}}
            <div class="field">
                <div class="label">Case Description:</div>
                <div class="message-box">{{.Request.CaseDescription}}</div>
            </div>
            {{if .Request.AdditionalNotes}}
            <div class="field">
                <div class="label">Additional Notes:</div>
                <div class="message-box">{{.Request.AdditionalNotes}}</div>
            </div>
            {{end}}
            {{if .Request.ReferralSource}}
            <div class="field">
                <div class="label">Referral Source:</div>
                <div class="value">{{.Request.ReferralSource}}</div>
            </div>
            {{end}}
        </div>
        <div class="footer">
            <p>This email was sent from the {{.FirmName}} consultation form.</p>
            <p>Reply directly to reach the requester at {{.Request.Email}}.</p>
        </div>
    </div>
</body>
</html>`

// clientEmailTemplate is the confirmation sent back to the requester.
const clientEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Consultation Request Received</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1a2e4a; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .summary { background: white; padding: 15px; border-left: 4px solid #1a2e4a; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>We received your request</h1>
        </div>
        <div class="content">
            <p>Hi {{.Request.FirstName}},</p>
            <p>Thank you for contacting {{.FirmName}}. A member of our team will
            reach out shortly to confirm the details below.</p>
            <div class="summary">
                <p><strong>Practice area:</strong> {{.Request.PracticeArea}}</p>
                <p><strong>Consultation:</strong> {{.Request.ConsultationType}}</p>
                <p><strong>Preferred:</strong> {{.Date}} at {{.Request.PreferredTime}} ({{.Request.Timezone}})</p>
            </div>
            <p>If anything changes, call us at {{.FirmPhone}}.</p>
        </div>
        <div class="footer">
            <p>{{.FirmName}}</p>
        </div>
    </div>
</body>
</html>`
