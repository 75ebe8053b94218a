package entity

// NonCashEvidence documents a transaction that never touched the cash ledger:
// an uploaded proof image tagged with a month.
type NonCashEvidence struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	ImageURL   string `json:"imageUrl"`
	Month      Month  `json:"month"`
	UploadedAt string `json:"uploadedAt"`
}
