package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/instalink/backend/internal/apperr"
)

const defaultBaseURL = "https://graph.facebook.com/v18.0"

// Client performs outbound calls to the Facebook Graph API. Every call is
// single-shot: a failed request terminates the caller's workflow, nothing is
// retried.
type Client struct {
	http      *resty.Client
	appID     string
	appSecret string
}

func NewClient(appID, appSecret string) *Client {
	return &Client{
		http:      resty.New().SetBaseURL(defaultBaseURL).SetTimeout(15 * time.Second),
		appID:     appID,
		appSecret: appSecret,
	}
}

// WithBaseURL points the client at a different Graph API host, used in tests.
func (c *Client) WithBaseURL(url string) *Client {
	c.http.SetBaseURL(url)
	return c
}

// ExchangeToken trades a short-lived user token for a long-lived one.
func (c *Client) ExchangeToken(ctx context.Context, shortLivedToken string) (string, error) {
	var body struct {
		AccessToken string `json:"access_token"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"grant_type":        "fb_exchange_token",
			"client_id":         c.appID,
			"client_secret":     c.appSecret,
			"fb_exchange_token": shortLivedToken,
		}).
		SetResult(&body).
		Get("/oauth/access_token")
	if err := upstreamError(resp, err); err != nil {
		return "", err
	}
	if body.AccessToken == "" {
		return "", &apperr.UpstreamError{Message: "token exchange returned no access token"}
	}
	return body.AccessToken, nil
}

// ResolveBusinessAccount looks up the Instagram Business Account attached to
// a Facebook Page.
func (c *Client) ResolveBusinessAccount(ctx context.Context, pageID, token string) (string, error) {
	var body struct {
		InstagramBusinessAccount *struct {
			ID string `json:"id"`
		} `json:"instagram_business_account"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"fields":       "instagram_business_account",
			"access_token": token,
		}).
		SetResult(&body).
		Get("/" + pageID)
	if err := upstreamError(resp, err); err != nil {
		return "", err
	}
	if body.InstagramBusinessAccount == nil || body.InstagramBusinessAccount.ID == "" {
		return "", &apperr.NotLinkedError{Detail: "No Instagram Business Account found for this Facebook Page"}
	}
	return body.InstagramBusinessAccount.ID, nil
}

// FetchProfile returns the account's username and profile picture.
func (c *Client) FetchProfile(ctx context.Context, accountID, token string) (Profile, error) {
	var profile Profile
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"fields":       "username,profile_picture_url",
			"access_token": token,
		}).
		SetResult(&profile).
		Get("/" + accountID)
	if err := upstreamError(resp, err); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

// CountMedia measures the total number of media objects by requesting the
// unpaginated listing and counting entries. There is no real total in the
// API; this degrades with account size.
func (c *Client) CountMedia(ctx context.Context, accountID, token string) (int, error) {
	var listing mediaListing
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"limit":        "0",
			"access_token": token,
		}).
		SetResult(&listing).
		Get("/" + accountID + "/media")
	if err := upstreamError(resp, err); err != nil {
		return 0, err
	}
	return len(listing.Data), nil
}

// PageCursor fetches the first offset items (ids only) and returns the
// trailing pagination cursor, which addresses the element after them.
func (c *Client) PageCursor(ctx context.Context, accountID, token string, offset int) (string, error) {
	var listing mediaListing
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"fields":       "id",
			"limit":        fmt.Sprintf("%d", offset),
			"access_token": token,
		}).
		SetResult(&listing).
		Get("/" + accountID + "/media")
	if err := upstreamError(resp, err); err != nil {
		return "", err
	}
	return listing.Paging.Cursors.After, nil
}

// FetchMediaPage returns one page of media items, starting after the given
// cursor when one is supplied.
func (c *Client) FetchMediaPage(ctx context.Context, accountID, token string, limit int, after string) (MediaPage, error) {
	params := map[string]string{
		"fields":       "id,caption,media_type,media_url,permalink,thumbnail_url,timestamp",
		"limit":        fmt.Sprintf("%d", limit),
		"access_token": token,
	}
	if after != "" {
		params["after"] = after
	}
	var listing mediaListing
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&listing).
		Get("/" + accountID + "/media")
	if err := upstreamError(resp, err); err != nil {
		return MediaPage{}, err
	}
	return MediaPage{Items: listing.Data, After: listing.Paging.Cursors.After}, nil
}

// CreateMediaContainer stages an image post. The container is not visible
// until published.
func (c *Client) CreateMediaContainer(ctx context.Context, accountID, token, imageURL, caption string) (string, error) {
	var body struct {
		ID string `json:"id"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"image_url":    imageURL,
			"caption":      caption,
			"access_token": token,
		}).
		SetResult(&body).
		Post("/" + accountID + "/media")
	if err := upstreamError(resp, err); err != nil {
		return "", err
	}
	if body.ID == "" {
		return "", &apperr.UpstreamError{Message: "Failed to create media container"}
	}
	return body.ID, nil
}

// PublishContainer turns a staged container into a live post and returns the
// post id.
func (c *Client) PublishContainer(ctx context.Context, accountID, token, containerID string) (string, error) {
	var body struct {
		ID string `json:"id"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"creation_id":  containerID,
			"access_token": token,
		}).
		SetResult(&body).
		Post("/" + accountID + "/media_publish")
	if err := upstreamError(resp, err); err != nil {
		return "", err
	}
	return body.ID, nil
}

// errorEnvelope is the Graph API failure shape.
type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

func upstreamError(resp *resty.Response, err error) error {
	if err != nil {
		return &apperr.UpstreamError{Message: err.Error()}
	}
	if resp.IsError() {
		var env errorEnvelope
		if jsonErr := json.Unmarshal(resp.Body(), &env); jsonErr == nil && env.Error.Message != "" {
			return &apperr.UpstreamError{Message: env.Error.Message, Code: env.Error.Code}
		}
		return &apperr.UpstreamError{Message: fmt.Sprintf("graph API returned %s", resp.Status())}
	}
	return nil
}
