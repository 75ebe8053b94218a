package noncash

type UpdateTitleRequest struct {
	Title string `json:"title" validate:"required"`
}

type ConfirmDeleteRequest struct {
	ConfirmToken string `json:"confirm_token" validate:"required"`
}

type EvidenceResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	ImageURL   string `json:"image_url"`
	Month      string `json:"month"`
	UploadedAt string `json:"uploaded_at"`
}

type DeleteRequestResponse struct {
	ConfirmToken string `json:"confirm_token"`
	ExpiresAt    string `json:"expires_at"`
}
