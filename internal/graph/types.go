package graph

// Profile is the subset of account metadata the front end renders.
type Profile struct {
	Username          string `json:"username"`
	ProfilePictureURL string `json:"profile_picture_url"`
}

// MediaItem is one media object from a listing response.
type MediaItem struct {
	ID           string `json:"id"`
	Caption      string `json:"caption,omitempty"`
	MediaType    string `json:"media_type,omitempty"`
	MediaURL     string `json:"media_url,omitempty"`
	Permalink    string `json:"permalink,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Timestamp    string `json:"timestamp,omitempty"`
}

// MediaPage is one page of media items plus the cursor addressing the next.
type MediaPage struct {
	Items []MediaItem
	After string
}

// mediaListing mirrors the wire shape of /media responses.
type mediaListing struct {
	Data   []MediaItem `json:"data"`
	Paging struct {
		Cursors struct {
			After string `json:"after"`
		} `json:"cursors"`
	} `json:"paging"`
}
