package dto

// --- Influencer Requests ---

type CreateInfluencerRequest struct {
	UserID   *uint  `json:"userId"`
	Nickname string `json:"nickname" validate:"required,max=100"`
	Bio      string `json:"bio" validate:"omitempty,max=5000"`

	InstagramHandle    *string `json:"instagramHandle" validate:"omitempty,max=100"`
	InstagramFollowers *int    `json:"instagramFollowers" validate:"omitempty,min=0"`
	TiktokHandle       *string `json:"tiktokHandle" validate:"omitempty,max=100"`
	TiktokFollowers    *int    `json:"tiktokFollowers" validate:"omitempty,min=0"`
	YoutubeHandle      *string `json:"youtubeHandle" validate:"omitempty,max=100"`
	YoutubeFollowers   *int    `json:"youtubeFollowers" validate:"omitempty,min=0"`
	TelegramHandle     *string `json:"telegramHandle" validate:"omitempty,max=100"`
	TelegramFollowers  *int    `json:"telegramFollowers" validate:"omitempty,min=0"`
	VkHandle           *string `json:"vkHandle" validate:"omitempty,max=100"`
	VkFollowers        *int    `json:"vkFollowers" validate:"omitempty,min=0"`
}
