package dto

// InteractionDTO 互动上报
type InteractionDTO struct {
	Type   string `json:"type" binding:"required" validate:"oneof=view like comment share"`
	PostID uint64 `json:"post_id" binding:"required"`
}
