package worker

import (
	"github.com/uptrace/bun"
)

type CreateRequest struct {
	FirstName          string
	LastName           string
	PhotoPath          string
	Address            string
	ContactNumber      string
	PreviousExperience string
	SalaryAmount       *float64
	SalaryFrequency    string
	Role               string
	JoiningDate        string
	IDProofPath        string
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:workers"`

	ID int64 `json:"id" bun:"-"`

	FirstName          string   `json:"first_name" bun:"first_name"`
	LastName           string   `json:"last_name" bun:"last_name"`
	PhotoPath          string   `json:"photo_path" bun:"photo_path"`
	Address            string   `json:"address" bun:"address"`
	ContactNumber      string   `json:"contact_number" bun:"contact_number"`
	PreviousExperience string   `json:"previous_experience" bun:"previous_experience"`
	SalaryAmount       *float64 `json:"salary_amount" bun:"salary_amount"`
	SalaryFrequency    string   `json:"salary_frequency" bun:"salary_frequency"`
	Role               string   `json:"role" bun:"role"`
	JoiningDate        string   `json:"joining_date" bun:"joining_date"`
	IDProofPath        string   `json:"id_proof_path" bun:"id_proof_path"`
}

// UpdateRequest carries every column; fields left empty are written empty.
type UpdateRequest struct {
	ID int64
	CreateRequest
}
