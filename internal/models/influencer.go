package models

// Influencer - профиль инфлюенсера в ростере, переиспользуется между проектами
type Influencer struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	UserID *uint `gorm:"index" json:"userId"`

	Nickname string `gorm:"size:100;not null" json:"nickname"`
	Bio      string `gorm:"type:text" json:"bio"`

	InstagramHandle    *string `gorm:"size:100" json:"instagramHandle"`
	InstagramFollowers *int    `json:"instagramFollowers"`
	TiktokHandle       *string `gorm:"size:100" json:"tiktokHandle"`
	TiktokFollowers    *int    `json:"tiktokFollowers"`
	YoutubeHandle      *string `gorm:"size:100" json:"youtubeHandle"`
	YoutubeFollowers   *int    `json:"youtubeFollowers"`
	TelegramHandle     *string `gorm:"size:100" json:"telegramHandle"`
	TelegramFollowers  *int    `json:"telegramFollowers"`
	VkHandle           *string `gorm:"size:100" json:"vkHandle"`
	VkFollowers        *int    `json:"vkFollowers"`
}
