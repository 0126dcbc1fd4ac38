package form

import (
	"erp/backend/internal/repository/sqlite/worker"
)

type WorkerForm struct {
	FirstName          string `form:"first_name" validate:"required"`
	LastName           string `form:"last_name"`
	PhotoPath          string `form:"photo_path"`
	Address            string `form:"address"`
	ContactNumber      string `form:"contact_number"`
	PreviousExperience string `form:"previous_experience"`
	SalaryAmount       string `form:"salary_amount" validate:"omitempty,numeric"`
	SalaryFrequency    string `form:"salary_frequency" validate:"omitempty,oneof=Monthly Weekly Daily"`
	Role               string `form:"role" validate:"required"`
	JoiningDate        string `form:"joining_date" validate:"required,datetime=2006-01-02"`
	IDProofPath        string `form:"id_proof_path"`
}

// ToCreateRequest validates the form. An empty salary is stored as NULL.
func (f WorkerForm) ToCreateRequest() (worker.CreateRequest, error) {
	trim(&f.FirstName, &f.LastName, &f.PhotoPath, &f.Address, &f.ContactNumber,
		&f.PreviousExperience, &f.SalaryAmount, &f.SalaryFrequency, &f.Role, &f.JoiningDate, &f.IDProofPath)

	if err := check(f); err != nil {
		return worker.CreateRequest{}, err
	}

	request := worker.CreateRequest{
		FirstName:          f.FirstName,
		LastName:           f.LastName,
		PhotoPath:          f.PhotoPath,
		Address:            f.Address,
		ContactNumber:      f.ContactNumber,
		PreviousExperience: f.PreviousExperience,
		SalaryFrequency:    f.SalaryFrequency,
		Role:               f.Role,
		JoiningDate:        f.JoiningDate,
		IDProofPath:        f.IDProofPath,
	}

	if f.SalaryAmount != "" {
		salary, err := money("salary_amount", f.SalaryAmount)
		if err != nil {
			return worker.CreateRequest{}, err
		}
		v := salary.InexactFloat64()
		request.SalaryAmount = &v
	}

	return request, nil
}

func (f WorkerForm) ToUpdateRequest(id int64) (worker.UpdateRequest, error) {
	request, err := f.ToCreateRequest()
	if err != nil {
		return worker.UpdateRequest{}, err
	}

	return worker.UpdateRequest{ID: id, CreateRequest: request}, nil
}
