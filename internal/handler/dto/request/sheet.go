package request

import "parkstay/internal/pkg/rawrecord"

// NormalizeRequest carries rows exactly as a sheet export produced them.
type NormalizeRequest struct {
	Rows []rawrecord.Record `json:"rows" binding:"required"`
}
