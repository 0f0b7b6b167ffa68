package models

import "time"

// InstagramAccount represents the instagram_accounts table: one row per
// application user, replaced wholesale on every relink.
type InstagramAccount struct {
	UserID             string    `gorm:"column:user_id;primaryKey" json:"user_id"`
	InstagramAccountID string    `gorm:"column:instagram_account_id" json:"instagram_account_id"`
	FacebookPageID     string    `gorm:"column:facebook_page_id" json:"facebook_page_id"`
	AccessToken        string    `gorm:"column:access_token" json:"-"`
	ConnectedAt        time.Time `gorm:"column:connected_at" json:"connected_at"`
}

func (InstagramAccount) TableName() string {
	return "instagram_accounts"
}
