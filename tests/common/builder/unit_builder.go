//go:build unit || e2e

package builder

import (
	"parkstay/internal/domain/unit"
	reqdto "parkstay/internal/handler/dto/request"
	"parkstay/internal/infra/converter"
	"parkstay/internal/pkg/rawrecord"
)

type UnitBuilder struct {
	ID          string
	Name        string
	Zone        string
	Capacity    int
	Price       float64
	Status      unit.Status
	Description string
}

func NewUnitBuilder() *UnitBuilder {
	return &UnitBuilder{
		ID:       "A1",
		Name:     "บ้านริมน้ำ 1",
		Zone:     "Zone A",
		Capacity: 4,
		Price:    1500,
		Status:   unit.StatusActive,
	}
}

func (b *UnitBuilder) With(mutate func(*UnitBuilder)) *UnitBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *UnitBuilder) BuildDomain() (*unit.Unit, error) {
	return unit.NewUnit(b.ID, b.details())
}

func (b *UnitBuilder) MustBuild() *unit.Unit {
	u, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return u
}

func (b *UnitBuilder) BuildRecord() rawrecord.Record {
	return converter.UnitToRecord(b.MustBuild())
}

func (b *UnitBuilder) BuildCreateRequestDTO() reqdto.CreateUnitRequest {
	return reqdto.CreateUnitRequest{
		Name:        b.Name,
		Zone:        b.Zone,
		Capacity:    &b.Capacity,
		Price:       &b.Price,
		Status:      b.Status.String(),
		Description: b.Description,
	}
}

func (b *UnitBuilder) details() unit.Details {
	return unit.Details{
		Name:        b.Name,
		Zone:        b.Zone,
		Capacity:    b.Capacity,
		Price:       b.Price,
		Status:      b.Status,
		Description: b.Description,
	}
}

// Fluent builder methods
func (b *UnitBuilder) WithID(id string) *UnitBuilder {
	b.ID = id
	return b
}

func (b *UnitBuilder) WithZone(zone string) *UnitBuilder {
	b.Zone = zone
	return b
}

func (b *UnitBuilder) WithPrice(price float64) *UnitBuilder {
	b.Price = price
	return b
}

func (b *UnitBuilder) InMaintenance() *UnitBuilder {
	b.Status = unit.StatusMaintenance
	return b
}
