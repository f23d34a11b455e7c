// Package converter turns raw sheet rows into domain entities and back.
package converter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"parkstay/internal/domain/reservation"
	"parkstay/internal/domain/unit"
	"parkstay/internal/domain/user"
	"parkstay/internal/pkg/clock"
	"parkstay/internal/pkg/flexdate"
	"parkstay/internal/pkg/rawrecord"
)

// Normalizer builds entities from rows of unknown shape. It never fails: every
// field has a default, so a row always yields an entity.
type Normalizer struct {
	clock clock.Clock
	loc   *time.Location
}

func NewNormalizer(clk clock.Clock, loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.Local
	}
	return &Normalizer{clock: clk, loc: loc}
}

func (n *Normalizer) Location() *time.Location {
	return n.loc
}

// Today is the current calendar day in the normaliser's zone.
func (n *Normalizer) Today() string {
	return flexdate.Today(n.clock.Now(), n.loc)
}

func (n *Normalizer) Unit(rec rawrecord.Record, index int) *unit.Unit {
	id := RowID(SheetUnits, rec, index)
	name := field(rec, defaultUnitName, unitNameKeys...)
	zone := field(rec, defaultUnitZone, unitZoneKeys...)
	description := field(rec, "", unitDescriptionKeys...)

	capacity := unit.DefaultCapacity
	if v, ok := rawrecord.Resolve(rec, unitCapacityKeys...); ok && truthy(v) {
		if f, ok := number(v); ok && f >= 1 && f <= math.MaxInt32 {
			capacity = int(f)
		}
	}

	price := 0.0
	if v, ok := rawrecord.Resolve(rec, unitPriceKeys...); ok && truthy(v) {
		if f, ok := number(v); ok && f > 0 {
			price = f
		}
	}

	status := unit.StatusActive
	if containsAny(strings.ToLower(field(rec, "active", unitStatusKeys...)), unitMaintenanceTokens) {
		status = unit.StatusMaintenance
	}

	return unit.Reconstruct(id, name, zone, capacity, price, status, description)
}

func (n *Normalizer) Reservation(rec rawrecord.Record, index int) *reservation.Reservation {
	id := RowID(SheetBookings, rec, index)
	unitID := field(rec, "", bookingUnitKeys...)
	guestName := field(rec, defaultGuestName, bookingGuestKeys...)
	guestPhone := field(rec, "", bookingPhoneKeys...)
	bookedBy := field(rec, defaultBookedBy, bookingByKeys...)
	notes := field(rec, "", bookingNotesKeys...)

	today := n.Today()
	checkIn := n.date(rec, bookingCheckInKeys)
	if checkIn == "" {
		checkIn = today
	}
	checkOut := n.date(rec, bookingCheckOutKeys)
	if checkOut == "" {
		checkOut = flexdate.AddDays(today, 1)
	}

	createdAt := n.timestamp(rec, bookingCreatedAtKeys)

	raw := strings.ToLower(field(rec, "confirmed", bookingStatusKeys...))
	status := reservation.StatusConfirmed
	switch {
	case containsAny(raw, bookingCancelledTokens):
		status = reservation.StatusCancelled
	case containsAny(raw, bookingPendingTokens):
		status = reservation.StatusPending
	}

	return reservation.Reconstruct(
		id, unitID, guestName, guestPhone,
		reservation.StayOf(checkIn, checkOut),
		status, bookedBy, createdAt, notes,
	)
}

func (n *Normalizer) User(rec rawrecord.Record, index int) *user.User {
	id := RowID(SheetUsers, rec, index)
	username := field(rec, "", userUsernameKeys...)
	password := field(rec, "", userPasswordKeys...)
	name := field(rec, username, userNameKeys...)

	role := user.RoleUser
	if containsAny(strings.ToLower(field(rec, "user", userRoleKeys...)), userAdminTokens) {
		role = user.RoleAdmin
	}

	raw := strings.ToLower(field(rec, "", userStatusKeys...))
	status := user.StatusPending
	if !containsAny(raw, userPendingTokens) && containsAny(raw, userApprovedTokens) {
		status = user.StatusApproved
	}

	avatar := field(rec, user.DefaultAvatar(name), userAvatarKeys...)

	return user.Reconstruct(id, username, password, name, role, status, avatar)
}

func (n *Normalizer) Units(rows []rawrecord.Record) []*unit.Unit {
	out := make([]*unit.Unit, len(rows))
	for i, rec := range rows {
		out[i] = n.Unit(rec, i)
	}
	return out
}

func (n *Normalizer) Reservations(rows []rawrecord.Record) []*reservation.Reservation {
	out := make([]*reservation.Reservation, len(rows))
	for i, rec := range rows {
		out[i] = n.Reservation(rec, i)
	}
	return out
}

func (n *Normalizer) Users(rows []rawrecord.Record) []*user.User {
	out := make([]*user.User, len(rows))
	for i, rec := range rows {
		out[i] = n.User(rec, i)
	}
	return out
}

func (n *Normalizer) date(rec rawrecord.Record, keys []string) string {
	v, ok := rawrecord.Resolve(rec, keys...)
	if !ok {
		return ""
	}
	return flexdate.ParseIn(v, n.loc)
}

// timestamp keeps full RFC 3339 instants; anything else is reduced to a day,
// and a blank cell means now.
func (n *Normalizer) timestamp(rec rawrecord.Record, keys []string) string {
	v, ok := rawrecord.Resolve(rec, keys...)
	if ok {
		if s, isText := v.(string); isText {
			if ts, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s)); err == nil {
				return ts.UTC().Format(time.RFC3339)
			}
		}
		if day := flexdate.ParseIn(v, n.loc); day != "" {
			return day
		}
	}
	return n.clock.Now().UTC().Format(time.RFC3339)
}

type Sheet string

const (
	SheetUnits    Sheet = "units"
	SheetBookings Sheet = "bookings"
	SheetUsers    Sheet = "users"
)

func (s Sheet) IsValid() bool {
	switch s {
	case SheetUnits, SheetBookings, SheetUsers:
		return true
	default:
		return false
	}
}

func (s Sheet) String() string {
	return string(s)
}

// syntheticPrefix names ids minted for rows that carry none. They are only
// stable while the sheet keeps its row order.
func (s Sheet) syntheticPrefix() string {
	switch s {
	case SheetUnits:
		return "gen_unit_"
	case SheetBookings:
		return "gen_bk_"
	default:
		return "gen_user_"
	}
}

func (s Sheet) idKeys() []string {
	switch s {
	case SheetUnits:
		return unitIDKeys
	case SheetBookings:
		return bookingIDKeys
	default:
		return userIDKeys
	}
}

// RowID is the id a normalised row gets: its own id cell, or a synthetic one
// derived from its position.
func RowID(sheet Sheet, rec rawrecord.Record, index int) string {
	return field(rec, fmt.Sprintf("%s%d", sheet.syntheticPrefix(), index), sheet.idKeys()...)
}
