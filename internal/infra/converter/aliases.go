package converter

// Header aliases per logical field, most specific first. Sheets maintained by
// hand mix English and Thai headers and rename columns between revisions.
var (
	unitIDKeys          = []string{"id", "ID", "รหัส", "ลำดับ"}
	unitNameKeys        = []string{"name", "Name", "ชื่อ", "ชื่อบ้านพัก", "รายการ", "บ้านพัก"}
	unitZoneKeys        = []string{"zone", "Zone", "โซน", "บริเวณ", "หมวดหมู่", "หมวด", "สถานที่"}
	unitDescriptionKeys = []string{"description", "detail", "details", "รายละเอียด", "รายละเอียดบ้านพัก", "ข้อมูลเพิ่มเติม", "หมายเหตุ"}
	unitCapacityKeys    = []string{"capacity", "Capacity", "จำนวนคน", "รองรับ", "ผู้เข้าพัก", "พักได้", "people", "ความจุ"}
	unitPriceKeys       = []string{"price", "Price", "ราคา", "ราคาต่อคืน", "ค่าที่พัก", "cost", "rate"}
	unitStatusKeys      = []string{"status", "Status", "สถานะ"}
)

var (
	bookingIDKeys        = []string{"id", "bookingId", "รหัสจอง"}
	bookingUnitKeys      = []string{"accommodationId", "houseId", "รหัสบ้าน", "บ้านพัก"}
	bookingGuestKeys     = []string{"guestName", "name", "ชื่อ", "ชื่อผู้จอง", "ลูกค้า"}
	bookingPhoneKeys     = []string{"guestPhone", "phone", "เบอร์", "โทร", "ติดต่อ"}
	bookingByKeys        = []string{"bookedBy", "user", "ผู้ทำรายการ"}
	bookingNotesKeys     = []string{"notes", "หมายเหตุ"}
	bookingCheckInKeys   = []string{"checkInDate", "checkIn", "เข้าพัก", "วันที่เข้า", "วันเช็คอิน"}
	bookingCheckOutKeys  = []string{"checkOutDate", "checkOut", "ออก", "วันที่ออก", "วันเช็คเอาท์", "คืนห้อง"}
	bookingCreatedAtKeys = []string{"createdAt", "created", "วันที่ทำรายการ"}
	bookingStatusKeys    = []string{"status", "สถานะ"}
)

var (
	userIDKeys       = []string{"id", "userId"}
	userUsernameKeys = []string{"username", "user", "ชื่อผู้ใช้"}
	userPasswordKeys = []string{"password", "pass", "รหัสผ่าน"}
	userNameKeys     = []string{"name", "fullname", "ชื่อสกุล", "ชื่อ"}
	userRoleKeys     = []string{"role", "position", "ตำแหน่ง", "สิทธิ์"}
	userStatusKeys   = []string{"status", "สถานะ"}
	userAvatarKeys   = []string{"avatar", "img", "รูป"}
)

// Status vocabularies, matched as lower-cased substrings.
var (
	unitMaintenanceTokens = []string{"ปิด", "ซ่อม", "maintenance"}

	bookingPendingTokens   = []string{"pending", "รอ", "อนุมัติ"}
	bookingCancelledTokens = []string{"cancel", "ยกเลิก"}

	userAdminTokens    = []string{"admin", "ผู้ดูแล"}
	userPendingTokens  = []string{"pending", "inactive", "รอ"}
	userApprovedTokens = []string{"approved", "active", "อนุมัติ"}
)

const (
	defaultUnitName  = "ไม่ระบุชื่อ"
	defaultUnitZone  = "-"
	defaultGuestName = "ไม่ระบุ"
	defaultBookedBy  = "unknown"
)
