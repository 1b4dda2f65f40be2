package models

// Requests for mood HTTP endpoints. Defined in domain for consistency and reuse.

type MoodsRequest struct {
	Symbol string `query:"symbol" json:"symbol" validate:"required"`
	Days   int    `query:"days" json:"days" default:"30" validate:"gte=1,lte=100"`
}

type MoodHistoryRequest struct {
	Symbol string `param:"symbol" json:"symbol" validate:"required"`
	Days   int    `query:"days" json:"days" default:"30" validate:"gte=1,lte=100"`
}
