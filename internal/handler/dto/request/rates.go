package request

type UpdateRateRequest struct {
	NightlyCents int64 `json:"nightly_cents" binding:"min=0"`
}
