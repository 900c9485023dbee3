package packets

type SaveTimetableRequest struct {
	RawText string `json:"raw_text" binding:"required"`
}

// ClockRequest is the one-shot clock correction a client sends after it
// learns its local time and zone offset. NowMS is a pointer so the epoch
// instant itself (0) still passes the required binding.
type ClockRequest struct {
	NowMS         *int64 `json:"now_ms" binding:"required"`
	ZoneOffsetMin int    `json:"zone_offset_min"`
}
