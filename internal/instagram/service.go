package instagram

import (
	"context"
	"time"

	"github.com/instalink/backend/internal/apperr"
	"github.com/instalink/backend/internal/graph"
	"github.com/instalink/backend/internal/models"
	"github.com/instalink/backend/internal/store"
)

// pageSize is the fixed listing page size.
const pageSize = 18

// GraphAPI is what the workflows need from the Graph API client.
type GraphAPI interface {
	ExchangeToken(ctx context.Context, shortLivedToken string) (string, error)
	ResolveBusinessAccount(ctx context.Context, pageID, token string) (string, error)
	FetchProfile(ctx context.Context, accountID, token string) (graph.Profile, error)
	CountMedia(ctx context.Context, accountID, token string) (int, error)
	PageCursor(ctx context.Context, accountID, token string, offset int) (string, error)
	FetchMediaPage(ctx context.Context, accountID, token string, limit int, after string) (graph.MediaPage, error)
	CreateMediaContainer(ctx context.Context, accountID, token, imageURL, caption string) (string, error)
	PublishContainer(ctx context.Context, accountID, token, containerID string) (string, error)
}

// Service runs the linking, listing and publishing workflows. Each workflow
// is a strictly sequential chain of calls; the first failure aborts it.
type Service struct {
	graph GraphAPI
	store store.AccountStore
	now   func() time.Time
}

func NewService(g GraphAPI, s store.AccountStore) *Service {
	return &Service{graph: g, store: s, now: time.Now}
}

// SetupInput is the already-validated input of the linking workflow.
type SetupInput struct {
	ShortLivedToken string
	UserID          string
	FacebookPageID  string
}

// Link exchanges the short-lived token, resolves the business account behind
// the page, and replaces the user's stored credentials. No row is written
// unless both upstream calls succeed.
func (s *Service) Link(ctx context.Context, in SetupInput) (models.InstagramAccount, error) {
	token, err := s.graph.ExchangeToken(ctx, in.ShortLivedToken)
	if err != nil {
		return models.InstagramAccount{}, err
	}

	accountID, err := s.graph.ResolveBusinessAccount(ctx, in.FacebookPageID, token)
	if err != nil {
		return models.InstagramAccount{}, err
	}

	return s.store.Upsert(ctx, models.InstagramAccount{
		UserID:             in.UserID,
		InstagramAccountID: accountID,
		FacebookPageID:     in.FacebookPageID,
		AccessToken:        token,
		ConnectedAt:        s.now().UTC(),
	})
}

// Pagination describes the listing position, serialized as-is to the client.
type Pagination struct {
	CurrentPage     int  `json:"currentPage"`
	TotalPages      int  `json:"totalPages"`
	TotalPosts      int  `json:"totalPosts"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
	Limit           int  `json:"limit"`
}

// ListResult is the listing workflow's output.
type ListResult struct {
	Profile    graph.Profile     `json:"profile"`
	Posts      []graph.MediaItem `json:"posts"`
	Pagination Pagination        `json:"pagination"`
}

// List fetches one page of the user's media. The Graph API exposes no total,
// so the count comes from an unpaginated listing, and pages past the first
// need an extra round trip to re-derive the cursor at the page boundary.
func (s *Service) List(ctx context.Context, userID string, page int) (ListResult, error) {
	account, err := s.store.Get(ctx, userID)
	if err != nil {
		return ListResult{}, err
	}

	profile, err := s.graph.FetchProfile(ctx, account.InstagramAccountID, account.AccessToken)
	if err != nil {
		return ListResult{}, err
	}

	totalPosts, err := s.graph.CountMedia(ctx, account.InstagramAccountID, account.AccessToken)
	if err != nil {
		return ListResult{}, err
	}
	totalPages := (totalPosts + pageSize - 1) / pageSize

	after := ""
	if page > 1 {
		after, err = s.graph.PageCursor(ctx, account.InstagramAccountID, account.AccessToken, (page-1)*pageSize)
		if err != nil {
			return ListResult{}, err
		}
	}

	mediaPage, err := s.graph.FetchMediaPage(ctx, account.InstagramAccountID, account.AccessToken, pageSize, after)
	if err != nil {
		return ListResult{}, err
	}

	posts := mediaPage.Items
	if posts == nil {
		posts = []graph.MediaItem{}
	}

	return ListResult{
		Profile: profile,
		Posts:   posts,
		Pagination: Pagination{
			CurrentPage:     page,
			TotalPages:      totalPages,
			TotalPosts:      totalPosts,
			HasNextPage:     page < totalPages,
			HasPreviousPage: page > 1,
			Limit:           pageSize,
		},
	}, nil
}

// Publish stages the image as a media container and publishes it, returning
// the live post id. Upstream image rejections are reclassified so the
// boundary can answer with a 400 instead of a generic upstream failure.
func (s *Service) Publish(ctx context.Context, userID, imageURL, caption string) (string, error) {
	account, err := s.store.Get(ctx, userID)
	if err != nil {
		return "", err
	}

	containerID, err := s.graph.CreateMediaContainer(ctx, account.InstagramAccountID, account.AccessToken, imageURL, caption)
	if err != nil {
		return "", apperr.ClassifyUpstream(err)
	}

	postID, err := s.graph.PublishContainer(ctx, account.InstagramAccountID, account.AccessToken, containerID)
	if err != nil {
		return "", apperr.ClassifyUpstream(err)
	}
	return postID, nil
}
