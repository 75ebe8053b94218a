package kas

type AddMemberRequest struct {
	Divisi string `json:"divisi" validate:"required"`
}

type UpdateNameRequest struct {
	Divisi string `json:"divisi" validate:"required"`
	Name   string `json:"name"`
}

type ToggleRequest struct {
	Divisi string `json:"divisi" validate:"required"`
	Month  string `json:"month" validate:"required"`
}

type DeleteMemberRequest struct {
	Divisi string `json:"divisi" validate:"required"`
}

type ConfirmDeleteRequest struct {
	ConfirmToken string `json:"confirm_token" validate:"required"`
}

type MemberResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Payments   map[string]bool `json:"payments"`
	LateStatus map[string]bool `json:"late_status"`
}

type RosterResponse struct {
	Divisi  string           `json:"divisi"`
	Members []MemberResponse `json:"members"`
}

type DivisionsResponse struct {
	Divisions []string `json:"divisions"`
	InputList []string `json:"input_list"`
}

type FormLinkResponse struct {
	FormLink string `json:"form_link"`
}

type CreateSubmissionRequest struct {
	Name        string   `json:"name" validate:"required"`
	Divisi      []string `json:"divisi" validate:"required,min=1"`
	Months      []string `json:"months" validate:"required,min=1"`
	EvidenceURL string   `json:"evidence_url"`
}

type SubmissionResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Divisi      []string `json:"divisi"`
	Months      []string `json:"months"`
	EvidenceURL string   `json:"evidence_url"`
	SubmittedAt string   `json:"submitted_at"`
}

type DeleteRequestResponse struct {
	ConfirmToken string `json:"confirm_token"`
	ExpiresAt    string `json:"expires_at"`
}
