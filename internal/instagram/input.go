package instagram

import (
	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type SetupBody struct {
	ShortLivedToken string `json:"shortLivedToken"`
	UserID          string `json:"userId"`
	FacebookPageID  string `json:"facebookPageId"`
}

func (b SetupBody) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.ShortLivedToken, v.Required),
		v.Field(&b.UserID, v.Required),
		v.Field(&b.FacebookPageID, v.Required),
	)
}

type UploadBody struct {
	UserID   string `json:"userId"`
	ImageURL string `json:"imageUrl"`
	Caption  string `json:"caption"`
}

func (b UploadBody) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.UserID, v.Required),
		v.Field(&b.ImageURL, v.Required, is.URL),
	)
}
