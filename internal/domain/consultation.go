package domain

import "context"

// Consultation types accepted by the intake form.
const (
	ConsultationTypePhone    = "phone"
	ConsultationTypeVideo    = "video"
	ConsultationTypeInPerson = "in-person"
)

// ConsultationRequest represents a consultation form submission. It lives for
// the duration of a single request: parsed, validated once, consumed by the
// notification builders, then discarded. Nothing is persisted.
type ConsultationRequest struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Company          string `json:"company"`
	JobTitle         string `json:"jobTitle,omitempty"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	PracticeArea     string `json:"practiceArea"`
	CaseDescription  string `json:"caseDescription"`
	ReferralSource   string `json:"referralSource,omitempty"`
	AdditionalNotes  string `json:"additionalNotes,omitempty"`
	ConsultationType string `json:"consultationType"`
	Timezone         string `json:"timezone"`
	PreferredDate    string `json:"preferredDate"`
	PreferredTime    string `json:"preferredTime"`
	AlternateDate    string `json:"alternateDate,omitempty"`
	AlternateTime    string `json:"alternateTime,omitempty"`
}

// FullName returns the requester's display name for notification copy.
func (r *ConsultationRequest) FullName() string {
	return r.FirstName + " " + r.LastName
}

// ValidationError reports the first invalid field of a submission. It maps to
// a 400 response; no notification channel runs when it is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConsultationUsecase defines the interface for consultation intake operations
type ConsultationUsecase interface {
	// Submit validates the request and fans out the notification channels.
	// A *ValidationError means the payload was rejected before any side
	// effect ran. Channel failures never surface as an error: they are
	// reported in the NotificationReport.
	Submit(ctx context.Context, req *ConsultationRequest) (NotificationReport, error)
}
