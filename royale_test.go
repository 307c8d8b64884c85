package royale_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	royale "github.com/m0t0k1ch1/royale-go"
	"github.com/m0t0k1ch1/royale-go/model"
)

const testToken = "test-token"

var fixtures = map[string]string{
	"/v1/cards":                              "cards.json",
	"/v1/locations":                          "locations.json",
	"/v1/locations/global/rankings/players":  "player_leaderboard.json",
	"/v1/locations/57000087/rankings/clans":  "clan_leaderboard.json",
	"/v1/locations/global/rankings/clanwars": "clan_leaderboard.json",
	"/v1/players/%23VR80UJG":                 "player_profile.json",
	"/v1/players/%23VR80UJG/upcomingchests":  "upcoming_chests.json",
	"/v1/players/%23VR80UJG/battlelog":       "battlelog.json",
	"/v1/clans/%232QGRPCLY":                  "clan_profile.json",
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type server struct {
	*httptest.Server

	mu    sync.Mutex
	paths []string
}

func (s *server) requested() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.paths...)
}

func newServer(t *testing.T) *server {
	t.Helper()

	s := &server{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.EscapedPath()

		s.mu.Lock()
		s.paths = append(s.paths, path)
		s.mu.Unlock()

		if r.Header.Get("Authorization") != "Bearer "+testToken {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"reason":"accessDenied","message":"Invalid authorization"}`))
			return
		}

		switch path {
		case "/v1/locations/57000087":
			w.Write([]byte(`{"id":57000087,"name":"France","isCountry":true,"countryCode":"FR"}`))
			return
		case "/v1/players/%23VR80UJU":
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		name, ok := fixtures[path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"reason":"notFound"}`))
			return
		}

		data, err := os.ReadFile(filepath.Join("testdata", name))
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}))
	t.Cleanup(s.Close)

	return s
}

func newClient(t *testing.T, s *server, opts ...royale.Option) *royale.Client {
	t.Helper()

	opts = append([]royale.Option{
		royale.WithRetryMax(0),
		royale.WithTransport(s.Client().Transport),
	}, opts...)

	client, err := royale.NewClient(s.URL+"/v1", testToken, opts...)
	require.NoError(t, err)

	return client
}

func TestNewClient(t *testing.T) {
	_, err := royale.NewClient("", "")
	require.ErrorIs(t, err, royale.ErrEmptyToken)

	_, err = royale.NewClient("://api", testToken)
	require.Error(t, err)

	client, err := royale.NewClient("", testToken)
	require.NoError(t, err)
	assert.NotNil(t, client.Tables())
}

func TestTagValidation(t *testing.T) {
	ctx := context.Background()
	s := newServer(t)
	client := newClient(t, s)

	_, err := client.PlayerProfile(ctx, "")
	require.ErrorIs(t, err, royale.ErrEmptyHashtag)

	_, err = client.PlayerProfile(ctx, " # ")
	require.ErrorIs(t, err, royale.ErrEmptyHashtag)

	_, err = client.PlayerBattleLogs(ctx, "#ABC")
	require.ErrorIs(t, err, royale.ErrInvalidHashtag)

	_, err = client.ClanProfile(ctx, "#2QGRPCLYXXXXXXXX")
	require.ErrorIs(t, err, royale.ErrInvalidHashtag)

	// too short once normalized
	_, err = client.PlayerProfile(ctx, "#2P")
	require.ErrorIs(t, err, royale.ErrInvalidHashtag)

	_, err = client.PlayerUpcomingChests(ctx, "##2P")
	require.ErrorIs(t, err, royale.ErrInvalidHashtag)

	_, err = client.PlayerProfiles(ctx, "#VR80UJG", "#ABC")
	require.ErrorIs(t, err, royale.ErrInvalidHashtag)

	assert.Empty(t, s.requested())

	t.Run("MaxLength", func(t *testing.T) {
		s := newServer(t)
		client := newClient(t, s)

		_, err := client.PlayerProfile(ctx, "#V2CQYP9G8LRJUC")

		var apiErr *royale.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.True(t, apiErr.NotFound())
		assert.Equal(t, []string{"/v1/players/%23V2CQYP9G8LRJUC"}, s.requested())
	})

	t.Run("Disabled", func(t *testing.T) {
		s := newServer(t)
		client := newClient(t, s, royale.WithValidateTags(false))

		_, err := client.PlayerProfile(ctx, "#abc")

		var apiErr *royale.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.True(t, apiErr.NotFound())
		assert.Equal(t, "notFound", apiErr.Reason)
		assert.Equal(t, []string{"/v1/players/%23ABC"}, s.requested())
	})
}

func TestAPIError(t *testing.T) {
	ctx := context.Background()
	s := newServer(t)

	client, err := royale.NewClient(s.URL+"/v1/", "wrong-token",
		royale.WithRetryMax(0),
		royale.WithTransport(s.Client().Transport),
	)
	require.NoError(t, err)

	cards, err := client.Cards(ctx)

	var apiErr *royale.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, model.Cards{}, cards)
	assert.Equal(t, &royale.APIError{
		StatusCode: http.StatusForbidden,
		Reason:     "accessDenied",
		Message:    "Invalid authorization",
	}, apiErr)
	assert.False(t, apiErr.NotFound())

	locations, err := client.Locations(ctx)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, model.Locations{}, locations)

	// without a body the status text is the reason
	_, err = newClient(t, s).PlayerProfile(ctx, "#VR80UJU")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "Internal Server Error", apiErr.Reason)
}

func TestPlayerProfile(t *testing.T) {
	s := newServer(t)
	client := newClient(t, s)

	profile, err := client.PlayerProfile(context.Background(), " #vr8oujg")
	require.NoError(t, err)

	assert.Equal(t, "VR80UJG", profile.Tag)
	assert.Equal(t, model.RoleCoLeader, profile.Role)
	require.NotNil(t, profile.Clan)
	assert.Equal(t, "2QGRPCLY", profile.Clan.Tag)
	assert.Len(t, profile.Cards, 4)
	assert.Equal(t, []string{"/v1/players/%23VR80UJG"}, s.requested())
}

func TestPlayerProfiles(t *testing.T) {
	ctx := context.Background()
	s := newServer(t)
	client := newClient(t, s)

	profiles, err := client.PlayerProfiles(ctx, "#VR80UJG", "vr8oujg", "VR80UJG")
	require.NoError(t, err)
	require.Len(t, profiles, 3)
	for _, profile := range profiles {
		assert.Equal(t, "VR80UJG", profile.Tag)
	}
	assert.Len(t, s.requested(), 3)

	profiles, err = client.PlayerProfiles(ctx)
	require.NoError(t, err)
	assert.Empty(t, profiles)

	_, err = client.PlayerProfiles(ctx, "#VR80UJG", "#2QGRPCLY")
	var apiErr *royale.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.NotFound())
}

func TestPlayerUpcomingChests(t *testing.T) {
	client := newClient(t, newServer(t))

	chests, err := client.PlayerUpcomingChests(context.Background(), "#VR80UJG")
	require.NoError(t, err)

	assert.Len(t, chests.Items, 5)
	assert.Len(t, chests.SpecialChests(client.Tables()), 2)
}

func TestPlayerBattleLogs(t *testing.T) {
	client := newClient(t, newServer(t))

	battleLogs, err := client.PlayerBattleLogs(context.Background(), "#VR80UJG")
	require.NoError(t, err)

	require.Len(t, battleLogs, 2)
	assert.Equal(t, model.BattleTypePvP, battleLogs[0].BattleType)
}

func TestClanProfile(t *testing.T) {
	client := newClient(t, newServer(t))

	profile, err := client.ClanProfile(context.Background(), "#2qgrpcly")
	require.NoError(t, err)

	assert.Equal(t, "2QGRPCLY", profile.Tag)
	assert.Len(t, profile.MemberList, 3)
}

func TestCards(t *testing.T) {
	client := newClient(t, newServer(t))

	cards, err := client.Cards(context.Background())
	require.NoError(t, err)

	assert.Equal(t, model.Cards{
		Items: []model.Card{{ID: 26000000}, {ID: 27000000}, {ID: 28000011}},
	}, cards)
}

func TestLocations(t *testing.T) {
	ctx := context.Background()
	client := newClient(t, newServer(t))

	locations, err := client.Locations(ctx)
	require.NoError(t, err)
	assert.Len(t, locations.Items, 3)

	location, err := client.LocationByID(ctx, 57000087)
	require.NoError(t, err)
	assert.Equal(t, model.Location{ID: 57000087}, location)
}

func TestLeaderboards(t *testing.T) {
	ctx := context.Background()
	client := newClient(t, newServer(t))

	players, err := client.PlayerLeaderboard(ctx, royale.GlobalLocation)
	require.NoError(t, err)
	require.Len(t, players.Items, 2)
	assert.Equal(t, "8ULQQ20P2", players.Items[0].Tag)
	assert.False(t, players.FetchedAt.IsZero())

	clans, err := client.ClanLeaderboard(ctx, 57000087)
	require.NoError(t, err)
	assert.NotEmpty(t, clans.Items)

	clanWars, err := client.ClanWarLeaderboard(ctx, royale.GlobalLocation)
	require.NoError(t, err)
	assert.Equal(t, clans.Items, clanWars.Items)

	_, err = client.PlayerLeaderboard(ctx, 57000087)
	var apiErr *royale.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.NotFound())
}

func TestLocationID(t *testing.T) {
	assert.Equal(t, "global", royale.GlobalLocation.String())
	assert.Equal(t, "57000087", royale.LocationID(57000087).String())
}
