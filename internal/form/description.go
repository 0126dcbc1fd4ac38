package form

import (
	"erp/backend/internal/repository/sqlite/description"
)

// DescriptionForm passes the rate through unparsed; the store reports a
// bad rate with description.ErrInvalidRate.
type DescriptionForm struct {
	Description    string `form:"description" validate:"required"`
	CustomerPartNo string `form:"customer_part_no"`
	SACCode        string `form:"sac_code"`
	Rate           string `form:"rate"`
	PONo           string `form:"po_no"`
}

func (f DescriptionForm) ToCreateRequest() (description.CreateRequest, error) {
	trim(&f.Description, &f.CustomerPartNo, &f.SACCode, &f.Rate, &f.PONo)

	if err := check(f); err != nil {
		return description.CreateRequest{}, err
	}

	return description.CreateRequest{
		Description:    f.Description,
		CustomerPartNo: f.CustomerPartNo,
		SACCode:        f.SACCode,
		Rate:           f.Rate,
		PONo:           f.PONo,
	}, nil
}
