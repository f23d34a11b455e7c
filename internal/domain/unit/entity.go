package unit

import (
	"errors"
	"strings"
)

var (
	ErrEmptyUnitName   = errors.New("unit name cannot be empty")
	ErrUnitNameTooLong = errors.New("unit name is too long (max 255 characters)")
	ErrInvalidCapacity = errors.New("capacity must be at least 1")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrInvalidStatus   = errors.New("invalid unit status")
	ErrEmptyUnitID     = errors.New("unit id cannot be empty")
)

const (
	MaxUnitNameLength = 255
	DefaultCapacity   = 2
)

// vipZoneTokens mark zones reserved for guests of honour.
var vipZoneTokens = []string{"vip", "รับรอง", "พิเศษ"}

type Unit struct {
	id          string
	name        string
	zone        string
	capacity    int
	price       float64
	status      Status
	description string
}

type Details struct {
	Name        string
	Zone        string
	Capacity    int
	Price       float64
	Status      Status
	Description string
}

func NewUnit(id string, d Details) (*Unit, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyUnitID
	}
	u := &Unit{id: id}
	if err := u.Edit(d); err != nil {
		return nil, err
	}
	return u, nil
}

// Reconstruct rebuilds a unit from already-normalised storage values without validation.
func Reconstruct(id, name, zone string, capacity int, price float64, status Status, description string) *Unit {
	return &Unit{
		id:          id,
		name:        name,
		zone:        zone,
		capacity:    capacity,
		price:       price,
		status:      status,
		description: description,
	}
}

func (u *Unit) Edit(d Details) error {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return ErrEmptyUnitName
	}
	if len(name) > MaxUnitNameLength {
		return ErrUnitNameTooLong
	}
	if d.Capacity < 1 {
		return ErrInvalidCapacity
	}
	if d.Price < 0 {
		return ErrNegativePrice
	}
	status := d.Status
	if status == "" {
		status = StatusActive
	}
	if !status.IsValid() {
		return ErrInvalidStatus
	}

	u.name = name
	u.zone = strings.TrimSpace(d.Zone)
	u.capacity = d.Capacity
	u.price = d.Price
	u.status = status
	u.description = d.Description
	return nil
}

func (u *Unit) IsActive() bool {
	return u.status == StatusActive
}

func (u *Unit) IsVIP() bool {
	return IsVIPZone(u.zone)
}

// IsVIPZone matches the zone text case-insensitively against the VIP markers.
func IsVIPZone(zone string) bool {
	z := strings.ToLower(zone)
	for _, token := range vipZoneTokens {
		if strings.Contains(z, token) {
			return true
		}
	}
	return false
}

// Index maps unit ids to units. The first unit wins when ids repeat.
func Index(units []*Unit) map[string]*Unit {
	idx := make(map[string]*Unit, len(units))
	for _, u := range units {
		if _, ok := idx[u.id]; ok {
			continue
		}
		idx[u.id] = u
	}
	return idx
}

// CountActive counts units that can take guests.
func CountActive(units []*Unit) int {
	n := 0
	for _, u := range units {
		if u.IsActive() {
			n++
		}
	}
	return n
}

func (u *Unit) ID() string          { return u.id }
func (u *Unit) Name() string        { return u.name }
func (u *Unit) Zone() string        { return u.zone }
func (u *Unit) Capacity() int       { return u.capacity }
func (u *Unit) Price() float64      { return u.price }
func (u *Unit) Status() Status      { return u.status }
func (u *Unit) Description() string { return u.description }
