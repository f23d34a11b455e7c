package sheetstore

import (
	"context"
	"log/slog"

	"parkstay/internal/infra/converter"
	"parkstay/internal/pkg/errs"
	"parkstay/internal/pkg/flexdate"
	"parkstay/internal/pkg/rawrecord"
	"parkstay/internal/usecase/shared"
)

type f = rawrecord.Field

// DemoRows is a small park with bookings around today. Unit rows use the Thai
// headers of the original paper forms.
func DemoRows(today string) *shared.RawSnapshot {
	day := func(n int) string { return flexdate.AddDays(today, n) }

	return &shared.RawSnapshot{
		Units: []rawrecord.Record{
			rawrecord.Of(f{"รหัส", "h1"}, f{"ชื่อบ้านพัก", "บ้านชมดาว 1"}, f{"โซน", "โซน A"}, f{"จำนวนคน", 4}, f{"ราคาต่อคืน", 1500}, f{"สถานะ", "active"}, f{"รายละเอียด", "บ้านพักเดี่ยว วิวภูเขา บรรยากาศเงียบสงบ มีระเบียงส่วนตัว"}),
			rawrecord.Of(f{"รหัส", "h2"}, f{"ชื่อบ้านพัก", "บ้านชมดาว 2"}, f{"โซน", "โซน A"}, f{"จำนวนคน", 4}, f{"ราคาต่อคืน", 1500}, f{"สถานะ", "active"}, f{"รายละเอียด", "บ้านพักเดี่ยว ใกล้จุดชมวิวพระอาทิตย์ขึ้น"}),
			rawrecord.Of(f{"รหัส", "h3"}, f{"ชื่อบ้านพัก", "บ้านชมดาว 3"}, f{"โซน", "โซน A"}, f{"จำนวนคน", 6}, f{"ราคาต่อคืน", 2000}, f{"สถานะ", "active"}, f{"รายละเอียด", "บ้านพักขนาดกลาง เหมาะสำหรับครอบครัว"}),
			rawrecord.Of(f{"รหัส", "h4"}, f{"ชื่อบ้านพัก", "เรือนริมน้ำ 1"}, f{"โซน", "โซน B"}, f{"จำนวนคน", 2}, f{"ราคาต่อคืน", 1200}, f{"สถานะ", "active"}, f{"รายละเอียด", "เรือนไม้ริมลำธาร ฟังเสียงน้ำไหล สดชื่นตลอดปี"}),
			rawrecord.Of(f{"รหัส", "h5"}, f{"ชื่อบ้านพัก", "เรือนริมน้ำ 2"}, f{"โซน", "โซน B"}, f{"จำนวนคน", 2}, f{"ราคาต่อคืน", 1200}, f{"สถานะ", "ปิดซ่อม"}, f{"รายละเอียด", "เรือนไม้ริมลำธาร อยู่ระหว่างการซ่อมแซมหลังคา"}),
			rawrecord.Of(f{"รหัส", "h6"}, f{"ชื่อบ้านพัก", "บ้านพักรับรองพิเศษ"}, f{"โซน", "VIP"}, f{"จำนวนคน", 10}, f{"ราคาต่อคืน", 5000}, f{"สถานะ", "active"}, f{"รายละเอียด", "บ้านพักขนาดใหญ่ พร้อมห้องประชุมและลานจัดกิจกรรมส่วนตัว"}),
		},
		Bookings: []rawrecord.Record{
			rawrecord.Of(f{"id", "b1"}, f{"accommodationId", "h1"}, f{"guestName", "คุณสมชาย ใจดี"}, f{"guestPhone", "081-111-1111"}, f{"checkInDate", today}, f{"checkOutDate", day(2)}, f{"status", "confirmed"}, f{"bookedBy", "u2"}),
			rawrecord.Of(f{"id", "b2"}, f{"accommodationId", "h3"}, f{"guestName", "บริษัท ท่องเที่ยวไทย"}, f{"guestPhone", "02-999-9999"}, f{"checkInDate", day(1)}, f{"checkOutDate", day(3)}, f{"status", "pending"}, f{"bookedBy", "u1"}, f{"notes", "รอโอนมัดจำ"}),
			rawrecord.Of(f{"id", "b3"}, f{"accommodationId", "h6"}, f{"guestName", "คณะท่านรองฯ"}, f{"guestPhone", "089-000-0000"}, f{"checkInDate", today}, f{"checkOutDate", day(1)}, f{"status", "confirmed"}, f{"bookedBy", "u1"}, f{"notes", "ด่วนพิเศษ"}),
		},
		Users: []rawrecord.Record{
			rawrecord.Of(f{"id", "u1"}, f{"username", "admin"}, f{"password", "1234"}, f{"name", "หัวหน้าอุทยาน (Admin)"}, f{"role", "ADMIN"}, f{"status", "approved"}),
			rawrecord.Of(f{"id", "u2"}, f{"username", "staff"}, f{"password", "1234"}, f{"name", "เจ้าหน้าที่ (Staff)"}, f{"role", "USER"}, f{"status", "approved"}),
		},
	}
}

// SeedIfEmpty writes rows into store when every sheet is empty. It reports whether it wrote anything.
func SeedIfEmpty(ctx context.Context, store shared.SheetStore, rows *shared.RawSnapshot, logger *slog.Logger) (bool, error) {
	current, err := store.ReadAll(ctx)
	if err != nil {
		return false, errs.Wrap(err, "read store before seeding")
	}
	if len(current.Units)+len(current.Bookings)+len(current.Users) > 0 {
		return false, nil
	}

	for _, sheet := range []converter.Sheet{converter.SheetUnits, converter.SheetBookings, converter.SheetUsers} {
		for i, rec := range rows.Rows(sheet) {
			if err := store.Upsert(ctx, sheet, converter.RowID(sheet, rec, i), rec); err != nil {
				return false, errs.Wrapf(err, "seed %s row %d", sheet, i)
			}
		}
	}

	logger.Info("store seeded with demo data",
		slog.Int("units", len(rows.Units)),
		slog.Int("bookings", len(rows.Bookings)),
		slog.Int("users", len(rows.Users)),
	)
	return true, nil
}
