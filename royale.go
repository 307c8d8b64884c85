// Package royale is a client for the Clash Royale statistics API which returns
// normalized models enriched with the bundled game data.
package royale

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/m0t0k1ch1/royale-go/hashtag"
	"github.com/m0t0k1ch1/royale-go/internal/transport"
	"github.com/m0t0k1ch1/royale-go/model"
	"github.com/m0t0k1ch1/royale-go/normalizer"
	"github.com/m0t0k1ch1/royale-go/refdata"
	"github.com/m0t0k1ch1/royale-go/wire"
)

type Client struct {
	baseURL      *url.URL
	httpClient   *retryablehttp.Client
	tables       *refdata.Tables
	logger       *zap.Logger
	validateTags bool
	now          func() time.Time
}

// NewClient returns a client for the API served at baseURL, DefaultBaseURL if
// empty, authenticated with token.
func NewClient(baseURL, token string, opts ...Option) (*Client, error) {
	if len(token) == 0 {
		return nil, ErrEmptyToken
	}
	if len(baseURL) == 0 {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid base url")
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	tables := o.Tables
	if tables == nil {
		if tables, err = refdata.LoadDefault(); err != nil {
			return nil, err
		}
	}

	return &Client{
		baseURL: u,
		httpClient: transport.NewClient(transport.Config{
			Token:     token,
			Timeout:   o.Timeout,
			RetryMax:  o.RetryMax,
			RateLimit: o.RateLimit,
			Burst:     o.Burst,
			Logger:    o.Logger,
			Base:      o.Transport,
		}),
		tables:       tables,
		logger:       o.Logger,
		validateTags: o.ValidateTags,
		now:          time.Now,
	}, nil
}

// Tables returns the game data the models are enriched with.
func (c *Client) Tables() *refdata.Tables {
	return c.tables
}

func (c *Client) Cards(ctx context.Context) (model.Cards, error) {
	var cards wire.Cards
	if err := c.get(ctx, "cards", &cards); err != nil {
		return model.Cards{}, err
	}

	return normalizer.Cards(c.tables, cards)
}

func (c *Client) Locations(ctx context.Context) (model.Locations, error) {
	var locations wire.Locations
	if err := c.get(ctx, "locations", &locations); err != nil {
		return model.Locations{}, err
	}

	return normalizer.Locations(locations), nil
}

func (c *Client) LocationByID(ctx context.Context, id LocationID) (model.Location, error) {
	var location wire.Location
	if err := c.get(ctx, "locations/"+id.String(), &location); err != nil {
		return model.Location{}, err
	}

	return normalizer.Location(location), nil
}

func (c *Client) PlayerLeaderboard(ctx context.Context, id LocationID) (model.PlayerLeaderboard, error) {
	var leaderboard wire.PlayerLeaderboard
	if err := c.get(ctx, rankingsPath(id, RankingTypePlayers), &leaderboard); err != nil {
		return model.PlayerLeaderboard{}, err
	}

	return normalizer.PlayerLeaderboard(leaderboard, c.now()), nil
}

func (c *Client) ClanLeaderboard(ctx context.Context, id LocationID) (model.ClanLeaderboard, error) {
	var leaderboard wire.ClanLeaderboard
	if err := c.get(ctx, rankingsPath(id, RankingTypeClans), &leaderboard); err != nil {
		return model.ClanLeaderboard{}, err
	}

	return normalizer.ClanLeaderboard(leaderboard, c.now()), nil
}

func (c *Client) ClanWarLeaderboard(ctx context.Context, id LocationID) (model.ClanWarLeaderboard, error) {
	var leaderboard wire.ClanWarLeaderboard
	if err := c.get(ctx, rankingsPath(id, RankingTypeClanWars), &leaderboard); err != nil {
		return model.ClanWarLeaderboard{}, err
	}

	return normalizer.ClanWarLeaderboard(leaderboard, c.now()), nil
}

func (c *Client) PlayerProfile(ctx context.Context, tag string) (model.PlayerProfile, error) {
	path, err := c.tagPath("players", tag, "")
	if err != nil {
		return model.PlayerProfile{}, err
	}

	var profile wire.PlayerProfile
	if err := c.get(ctx, path, &profile); err != nil {
		return model.PlayerProfile{}, err
	}

	return normalizer.PlayerProfile(c.tables, profile)
}

// PlayerProfiles fetches the profiles of all the tags concurrently. The result
// follows the order of tags and the first failure cancels the rest.
func (c *Client) PlayerProfiles(ctx context.Context, tags ...string) ([]model.PlayerProfile, error) {
	for _, tag := range tags {
		if _, err := c.validateTag(tag); err != nil {
			return nil, err
		}
	}

	profiles := make([]model.PlayerProfile, len(tags))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxConcurrentRequests)

	for i, tag := range tags {
		g.Go(func() error {
			profile, err := c.PlayerProfile(ctx, tag)
			if err != nil {
				return errors.Wrapf(err, "failed to fetch the player profile: %s", tag)
			}
			profiles[i] = profile

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return profiles, nil
}

func (c *Client) PlayerUpcomingChests(ctx context.Context, tag string) (model.UpcomingChests, error) {
	path, err := c.tagPath("players", tag, "upcomingchests")
	if err != nil {
		return model.UpcomingChests{}, err
	}

	var chests wire.UpcomingChests
	if err := c.get(ctx, path, &chests); err != nil {
		return model.UpcomingChests{}, err
	}

	return normalizer.UpcomingChests(chests), nil
}

func (c *Client) PlayerBattleLogs(ctx context.Context, tag string) ([]model.PlayerBattleLog, error) {
	path, err := c.tagPath("players", tag, "battlelog")
	if err != nil {
		return nil, err
	}

	var battleLogs []wire.BattleLog
	if err := c.get(ctx, path, &battleLogs); err != nil {
		return nil, err
	}

	return normalizer.BattleLogs(c.tables, battleLogs)
}

func (c *Client) ClanProfile(ctx context.Context, tag string) (model.ClanProfile, error) {
	path, err := c.tagPath("clans", tag, "")
	if err != nil {
		return model.ClanProfile{}, err
	}

	var profile wire.ClanProfile
	if err := c.get(ctx, path, &profile); err != nil {
		return model.ClanProfile{}, err
	}

	return normalizer.ClanProfile(profile), nil
}

func (c *Client) validateTag(tag string) (string, error) {
	normalized := hashtag.Normalize(tag)
	if len(normalized) == 0 {
		return "", ErrEmptyHashtag
	}
	if c.validateTags && !hashtag.IsValid(normalized) {
		return "", errors.Wrap(ErrInvalidHashtag, tag)
	}

	return normalized, nil
}

// tagPath joins the resource, the normalized tag prefixed with "#" and sub.
func (c *Client) tagPath(resource, tag, sub string) (string, error) {
	normalized, err := c.validateTag(tag)
	if err != nil {
		return "", err
	}

	path := resource + "/#" + normalized
	if len(sub) > 0 {
		path += "/" + sub
	}

	return path, nil
}

func rankingsPath(id LocationID, rankingType RankingType) string {
	return fmt.Sprintf("locations/%s/rankings/%s", id, rankingType)
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	u := c.baseURL.ResolveReference(&url.URL{Path: path})

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return errors.Wrap(err, "failed to build the request")
	}

	c.logger.Debug("request", zap.String("url", u.String()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to request %s", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := newAPIError(resp)
		c.logger.Warn("request failed",
			zap.String("url", u.String()),
			zap.Int("status", apiErr.StatusCode),
			zap.String("reason", apiErr.Reason),
		)

		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return errors.Wrapf(err, "failed to decode the response of %s", path)
	}

	return nil
}

// newAPIError reads the error body if any, falling back on the status text.
func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
	}

	var clientErr wire.ClientError
	if data, err := io.ReadAll(resp.Body); err == nil && json.Unmarshal(data, &clientErr) == nil {
		apiErr.Reason = clientErr.Reason
		apiErr.Message = clientErr.Message
	}
	if len(apiErr.Reason) == 0 {
		apiErr.Reason = http.StatusText(resp.StatusCode)
	}

	return apiErr
}
