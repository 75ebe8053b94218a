package entity

// MemberKas is one member row of a division's dues matrix. Absent month keys
// in either map mean false.
type MemberKas struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Payments   map[Month]bool `json:"payments"`
	LateStatus map[Month]bool `json:"lateStatus"`
}

// NewBlankMember is the shape appended by the add-member action: empty name,
// nothing paid, nothing late.
func NewBlankMember(id string) MemberKas {
	return MemberKas{
		ID:         id,
		Name:       "",
		Payments:   map[Month]bool{},
		LateStatus: map[Month]bool{},
	}
}

// DivisiKasContainer maps a division name to its member roster. Absent keys
// are treated as empty rosters.
type DivisiKasContainer map[string][]MemberKas

// KasDivisions is the fixed division roster of the dues registry.
var KasDivisions = []string{
	"Kahim/Wakahim",
	"Secretariat Adm",
	"Financial Adm",
	"Creative Economy",
	"Domestic Affairs",
	"Foreign Affairs",
	"Human Resource and Development",
	"Media and Information",
	"Organizing Refreshment",
	"Research and Development",
	"Social Affairs",
}

// InputDivisiList feeds the divisi dropdowns of the hibah and pagu input forms.
var InputDivisiList = []string{
	"Creative Economy",
	"Domestic Affairs",
	"Foreign Affairs",
	"Human Resource and Development",
	"Media and Information",
	"Organizing Refreshment",
	"Research and Development",
	"Social Affairs",
}

func IsValidKasDivision(division string) bool {
	for _, d := range KasDivisions {
		if d == division {
			return true
		}
	}
	return false
}

// FormSubmission is an observational record of an external payment-form
// response. It is never reconciled against the ledger.
type FormSubmission struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Divisi      []string `json:"divisi"`
	Months      []Month  `json:"months"`
	EvidenceURL string   `json:"evidenceUrl"`
	SubmittedAt string   `json:"submittedAt"`
}
