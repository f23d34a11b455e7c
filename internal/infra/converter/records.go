package converter

import (
	"parkstay/internal/domain/reservation"
	"parkstay/internal/domain/unit"
	"parkstay/internal/domain/user"
	"parkstay/internal/pkg/rawrecord"
)

// Rows written by the service use canonical English headers so that they
// resolve on the exact pass when read back.

func UnitToRecord(u *unit.Unit) rawrecord.Record {
	return rawrecord.Of(
		rawrecord.Field{Key: "id", Value: u.ID()},
		rawrecord.Field{Key: "name", Value: u.Name()},
		rawrecord.Field{Key: "zone", Value: u.Zone()},
		rawrecord.Field{Key: "capacity", Value: u.Capacity()},
		rawrecord.Field{Key: "price", Value: u.Price()},
		rawrecord.Field{Key: "status", Value: u.Status().String()},
		rawrecord.Field{Key: "description", Value: u.Description()},
	)
}

func ReservationToRecord(r *reservation.Reservation) rawrecord.Record {
	return rawrecord.Of(
		rawrecord.Field{Key: "id", Value: r.ID()},
		rawrecord.Field{Key: "accommodationId", Value: r.UnitID()},
		rawrecord.Field{Key: "guestName", Value: r.GuestName()},
		rawrecord.Field{Key: "guestPhone", Value: r.GuestPhone()},
		rawrecord.Field{Key: "checkInDate", Value: r.CheckIn()},
		rawrecord.Field{Key: "checkOutDate", Value: r.CheckOut()},
		rawrecord.Field{Key: "status", Value: r.Status().String()},
		rawrecord.Field{Key: "bookedBy", Value: r.BookedBy()},
		rawrecord.Field{Key: "createdAt", Value: r.CreatedAt()},
		rawrecord.Field{Key: "notes", Value: r.Notes()},
	)
}

func UserToRecord(u *user.User) rawrecord.Record {
	return rawrecord.Of(
		rawrecord.Field{Key: "id", Value: u.ID()},
		rawrecord.Field{Key: "username", Value: u.Username()},
		rawrecord.Field{Key: "password", Value: u.Password()},
		rawrecord.Field{Key: "name", Value: u.Name()},
		rawrecord.Field{Key: "role", Value: u.Role().String()},
		rawrecord.Field{Key: "status", Value: u.Status().String()},
		rawrecord.Field{Key: "avatar", Value: u.Avatar()},
	)
}
