package usecase

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"regexp"
	"strings"
	"sync"
	"time"

	"go-lawfirm-backend/config"
	"go-lawfirm-backend/internal/domain"
	"go-lawfirm-backend/pkg/gateway/sms"
	"go-lawfirm-backend/pkg/logger"
	"go-lawfirm-backend/pkg/validation"
)

// emailRegex accepts the basic local@domain.tld shape; anything stricter
// rejects addresses the firm actually receives.
var emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)

type consultationUsecase struct {
	emailGateway domain.EmailGateway
	smsGateway   domain.SMSGateway
	firmName     string
	firmEmail    string
	firmPhone    string
	emailFrom    string
}

// NewConsultationUsecase creates a new consultation intake usecase
func NewConsultationUsecase(cfg *config.Config, emailGW domain.EmailGateway, smsGW domain.SMSGateway) domain.ConsultationUsecase {
	return &consultationUsecase{
		emailGateway: emailGW,
		smsGateway:   smsGW,
		firmName:     cfg.FirmName,
		firmEmail:    cfg.FirmEmail,
		firmPhone:    cfg.FirmPhone,
		emailFrom:    cfg.EmailFrom,
	}
}

// requiredField pairs a submitted value with the label used in the 400 body.
type requiredField struct {
	value string
	label string
}

func (uc *consultationUsecase) validate(req *domain.ConsultationRequest) error {
	required := []requiredField{
		{req.FirstName, "First name"},
		{req.LastName, "Last name"},
		{req.Company, "Company"},
		{req.Email, "Email"},
		{req.Phone, "Phone"},
		{req.PracticeArea, "Practice area"},
		{req.CaseDescription, "Case description"},
		{req.ConsultationType, "Consultation type"},
		{req.Timezone, "Timezone"},
		{req.PreferredDate, "Preferred date"},
		{req.PreferredTime, "Preferred time"},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &domain.ValidationError{Message: f.label + " is required"}
		}
	}
	if !emailRegex.MatchString(req.Email) {
		return &domain.ValidationError{Message: "Invalid email address"}
	}
	return nil
}

// Submit validates the submission, then dispatches the three notification
// channels concurrently and joins all-settled. Channel failures are logged
// and reported as booleans; they never fail the submission itself.
func (uc *consultationUsecase) Submit(ctx context.Context, req *domain.ConsultationRequest) (domain.NotificationReport, error) {
	if err := uc.validate(req); err != nil {
		return domain.NotificationReport{}, err
	}

	dispatches := []func(context.Context, *domain.ConsultationRequest) domain.NotificationOutcome{
		uc.notifyFirm,
		uc.notifyClientEmail,
		uc.notifyClientSMS,
	}

	outcomes := make([]domain.NotificationOutcome, len(dispatches))
	var wg sync.WaitGroup
	for i, dispatch := range dispatches {
		wg.Add(1)
		go func(i int, dispatch func(context.Context, *domain.ConsultationRequest) domain.NotificationOutcome) {
			defer wg.Done()
			outcomes[i] = dispatch(ctx, req)
		}(i, dispatch)
	}
	wg.Wait()

	report := domain.NotificationReport{}
	for _, outcome := range outcomes {
		if !outcome.Success {
			logger.L().Error("notification dispatch failed",
				"channel", string(outcome.Channel),
				"diagnostic", outcome.Diagnostic,
			)
		}
		switch outcome.Channel {
		case domain.ChannelFirmEmail:
			report.FirmEmail = outcome.Success
		case domain.ChannelClientEmail:
			report.ClientEmail = outcome.Success
		case domain.ChannelClientSMS:
			report.SMS = outcome.Success
		}
	}
	return report, nil
}

func (uc *consultationUsecase) notifyFirm(ctx context.Context, req *domain.ConsultationRequest) domain.NotificationOutcome {
	outcome := domain.NotificationOutcome{Channel: domain.ChannelFirmEmail}

	html, err := renderTemplate(firmEmailTemplate, firmEmailData{
		Request:  req,
		FirmName: uc.firmName,
		Date:     formatPreferredDate(req.PreferredDate),
	})
	if err != nil {
		outcome.Diagnostic = err.Error()
		return outcome
	}

	err = uc.emailGateway.Send(ctx, domain.EmailMessage{
		From:    uc.emailFrom,
		To:      uc.firmEmail,
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("New Consultation Request from %s - %s", req.FullName(), formatPreferredDate(req.PreferredDate)),
		HTML:    html,
	})
	if err != nil {
		outcome.Diagnostic = err.Error()
		return outcome
	}
	outcome.Success = true
	return outcome
}

func (uc *consultationUsecase) notifyClientEmail(ctx context.Context, req *domain.ConsultationRequest) domain.NotificationOutcome {
	outcome := domain.NotificationOutcome{Channel: domain.ChannelClientEmail}

	html, err := renderTemplate(clientEmailTemplate, firmEmailData{
		Request:   req,
		FirmName:  uc.firmName,
		FirmPhone: uc.firmPhone,
		Date:      formatPreferredDate(req.PreferredDate),
	})
	if err != nil {
		outcome.Diagnostic = err.Error()
		return outcome
	}

	err = uc.emailGateway.Send(ctx, domain.EmailMessage{
		From:    uc.emailFrom,
		To:      req.Email,
		Subject: fmt.Sprintf("Your consultation request with %s", uc.firmName),
		HTML:    html,
	})
	if err != nil {
		outcome.Diagnostic = err.Error()
		return outcome
	}
	outcome.Success = true
	return outcome
}

func (uc *consultationUsecase) notifyClientSMS(ctx context.Context, req *domain.ConsultationRequest) domain.NotificationOutcome {
	outcome := domain.NotificationOutcome{Channel: domain.ChannelClientSMS}

	to := sms.NormalizePhone(req.Phone)
	if !validation.IsE164(to) {
		outcome.Diagnostic = fmt.Sprintf("phone %q does not normalize to a sendable number", req.Phone)
		return outcome
	}

	text := fmt.Sprintf(
		"Hi %s, %s received your %s consultation request for %s at %s (%s). We'll be in touch shortly to confirm. Questions? Call %s.",
		req.FirstName, uc.firmName, req.ConsultationType,
		formatPreferredDate(req.PreferredDate), req.PreferredTime, req.Timezone,
		uc.firmPhone,
	)

	if err := uc.smsGateway.Send(ctx, to, text); err != nil {
		outcome.Diagnostic = err.Error()
		return outcome
	}
	outcome.Success = true
	return outcome
}

// formatPreferredDate renders an ISO date for humans; anything unparseable is
// passed through as submitted.
func formatPreferredDate(date string) string {
	if parsed, err := time.Parse("2006-01-02", date); err == nil {
		return parsed.Format("Monday, January 2, 2006")
	}
	return date
}

func renderTemplate(tmplText string, data firmEmailData) (string, error) {
	tmpl, err := template.New("email").Parse(tmplText)
	if err != nil {
		return "", fmt.Errorf("failed to parse email template: %w", err)
	}
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}
