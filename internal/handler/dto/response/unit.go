package response

import "parkstay/internal/domain/unit"

type UnitResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Zone        string  `json:"zone"`
	Capacity    int     `json:"capacity"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
	VIP         bool    `json:"vip"`
}

func FromUnit(u *unit.Unit) *UnitResponse {
	return &UnitResponse{
		ID:          u.ID(),
		Name:        u.Name(),
		Zone:        u.Zone(),
		Capacity:    u.Capacity(),
		Price:       u.Price(),
		Status:      u.Status().String(),
		Description: u.Description(),
		VIP:         u.IsVIP(),
	}
}

func FromUnits(us []*unit.Unit) []*UnitResponse {
	res := make([]*UnitResponse, len(us))
	for i, u := range us {
		res[i] = FromUnit(u)
	}
	return res
}
