// Package normalizer converts API payloads into models: card names are replaced by
// card ids, tags are normalized and battle times are parsed.
package normalizer

import (
	"time"

	"github.com/pkg/errors"

	"github.com/m0t0k1ch1/royale-go/hashtag"
	"github.com/m0t0k1ch1/royale-go/model"
	"github.com/m0t0k1ch1/royale-go/refdata"
	"github.com/m0t0k1ch1/royale-go/wire"
)

// BattleTimeLayout is the layout of battle times sent by the API (e.g. 20180101T093213.000Z).
const BattleTimeLayout string = "20060102T150405.000Z"

func Cards(t *refdata.Tables, cards wire.Cards) (model.Cards, error) {
	items := make([]model.Card, 0, len(cards.Items))
	for _, card := range cards.Items {
		id, err := cardID(t, card.Name)
		if err != nil {
			return model.Cards{}, err
		}
		items = append(items, model.Card{ID: id})
	}

	return model.Cards{Items: items}, nil
}

func Location(location wire.Location) model.Location {
	return model.Location{ID: location.ID}
}

func Locations(locations wire.Locations) model.Locations {
	items := make([]model.Location, 0, len(locations.Items))
	for _, location := range locations.Items {
		items = append(items, Location(location))
	}

	return model.Locations{Items: items}
}

func PlayerProfile(t *refdata.Tables, profile wire.PlayerProfile) (model.PlayerProfile, error) {
	cards, err := playerCards(t, profile.Cards)
	if err != nil {
		return model.PlayerProfile{}, errors.Wrap(err, "failed to normalize the cards")
	}

	currentDeck, err := playerCards(t, profile.CurrentDeck)
	if err != nil {
		return model.PlayerProfile{}, errors.Wrap(err, "failed to normalize the current deck")
	}

	var favourite *model.Card
	if profile.CurrentFavouriteCard != nil {
		id, err := cardID(t, profile.CurrentFavouriteCard.Name)
		if err != nil {
			return model.PlayerProfile{}, errors.Wrap(err, "failed to normalize the favourite card")
		}
		favourite = &model.Card{ID: id}
	}

	achievements := make([]model.Achievement, 0, len(profile.Achievements))
	for _, a := range profile.Achievements {
		achievements = append(achievements, model.Achievement(a))
	}

	return model.PlayerProfile{
		Tag:                   hashtag.Normalize(profile.Tag),
		Name:                  profile.Name,
		ExpLevel:              profile.ExpLevel,
		Trophies:              profile.Trophies,
		BestTrophies:          profile.BestTrophies,
		Wins:                  profile.Wins,
		Losses:                profile.Losses,
		BattleCount:           profile.BattleCount,
		ThreeCrownWins:        profile.ThreeCrownWins,
		ChallengeCardsWon:     profile.ChallengeCardsWon,
		ChallengeMaxWins:      profile.ChallengeMaxWins,
		TournamentCardsWon:    profile.TournamentCardsWon,
		TournamentBattleCount: profile.TournamentBattleCount,
		Role:                  model.Role(profile.Role),
		Donations:             profile.Donations,
		DonationsReceived:     profile.DonationsReceived,
		TotalDonations:        profile.TotalDonations,
		Clan:                  clan(profile.Clan),
		Arena:                 model.Arena{ID: profile.Arena.ID},
		LeagueStatistics:      leagueStatistics(profile.LeagueStatistics),
		Achievements:          achievements,
		Cards:                 cards,
		CurrentDeck:           currentDeck,
		CurrentFavouriteCard:  favourite,
	}, nil
}

func UpcomingChests(chests wire.UpcomingChests) model.UpcomingChests {
	items := make([]model.UpcomingChest, 0, len(chests.Items))
	for _, chest := range chests.Items {
		items = append(items, model.UpcomingChest(chest))
	}

	return model.UpcomingChests{Items: items}
}

func BattleLogs(t *refdata.Tables, battleLogs []wire.BattleLog) ([]model.PlayerBattleLog, error) {
	normalized := make([]model.PlayerBattleLog, 0, len(battleLogs))
	for i, battleLog := range battleLogs {
		bl, err := BattleLog(t, battleLog)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to normalize the battle log %d", i)
		}
		normalized = append(normalized, bl)
	}

	return normalized, nil
}

func BattleLog(t *refdata.Tables, battleLog wire.BattleLog) (model.PlayerBattleLog, error) {
	battleTime, err := time.Parse(BattleTimeLayout, battleLog.BattleTime)
	if err != nil {
		return model.PlayerBattleLog{}, errors.Wrap(err, "failed to parse the battle time")
	}

	team, err := battleParticipants(t, battleLog.Team)
	if err != nil {
		return model.PlayerBattleLog{}, errors.Wrap(err, "failed to normalize the team")
	}

	opponent, err := battleParticipants(t, battleLog.Opponent)
	if err != nil {
		return model.PlayerBattleLog{}, errors.Wrap(err, "failed to normalize the opponent")
	}

	return model.PlayerBattleLog{
		BattleType:              model.BattleType(battleLog.Type),
		BattleTime:              battleTime.UTC(),
		Arena:                   model.Arena{ID: battleLog.Arena.ID},
		GameMode:                model.GameMode{ID: battleLog.GameMode.ID},
		ChallengeID:             battleLog.ChallengeID,
		ChallengeWinCountBefore: battleLog.ChallengeWinCountBefore,
		DeckSelection:           model.DeckSelection(battleLog.DeckSelection),
		Team:                    team,
		Opponent:                opponent,
	}, nil
}

func ClanProfile(profile wire.ClanProfile) model.ClanProfile {
	members := make([]model.ClanMember, 0, len(profile.MemberList))
	for _, m := range profile.MemberList {
		members = append(members, model.ClanMember{
			Tag:               hashtag.Normalize(m.Tag),
			Name:              m.Name,
			Role:              model.Role(m.Role),
			ExpLevel:          m.ExpLevel,
			Trophies:          m.Trophies,
			Arena:             model.Arena{ID: m.Arena.ID},
			ClanRank:          m.ClanRank,
			PreviousClanRank:  m.PreviousClanRank,
			Donations:         m.Donations,
			DonationsReceived: m.DonationsReceived,
			ClanChestPoints:   m.ClanChestPoints,
		})
	}

	return model.ClanProfile{
		Tag:               hashtag.Normalize(profile.Tag),
		Name:              profile.Name,
		AccessType:        model.AccessType(profile.Type),
		Description:       profile.Description,
		BadgeID:           profile.BadgeID,
		ClanScore:         profile.ClanScore,
		Location:          Location(profile.Location),
		RequiredTrophies:  profile.RequiredTrophies,
		DonationsPerWeek:  profile.DonationsPerWeek,
		ClanChestStatus:   model.ClanChestStatus(profile.ClanChestStatus),
		ClanChestPoints:   profile.ClanChestPoints,
		ClanChestLevel:    profile.ClanChestLevel,
		ClanChestMaxLevel: profile.ClanChestMaxLevel,
		MembersCount:      profile.Members,
		MemberList:        members,
	}
}

func PlayerLeaderboard(leaderboard wire.PlayerLeaderboard, fetchedAt time.Time) model.PlayerLeaderboard {
	items := make([]model.PlayerRanking, 0, len(leaderboard.Items))
	for _, r := range leaderboard.Items {
		items = append(items, model.PlayerRanking{
			Tag:          hashtag.Normalize(r.Tag),
			Name:         r.Name,
			ExpLevel:     r.ExpLevel,
			Trophies:     r.Trophies,
			Rank:         r.Rank,
			PreviousRank: r.PreviousRank,
			Clan:         clan(r.Clan),
			Arena:        model.Arena{ID: r.Arena.ID},
		})
	}

	return model.PlayerLeaderboard{
		Items:     items,
		FetchedAt: fetchedAt.UTC(),
	}
}

func ClanLeaderboard(leaderboard wire.ClanLeaderboard, fetchedAt time.Time) model.ClanLeaderboard {
	return model.ClanLeaderboard{
		Items:     clanRankings(leaderboard.Items),
		FetchedAt: fetchedAt.UTC(),
	}
}

func ClanWarLeaderboard(leaderboard wire.ClanWarLeaderboard, fetchedAt time.Time) model.ClanWarLeaderboard {
	return model.ClanWarLeaderboard{
		Items:     clanRankings(leaderboard.Items),
		FetchedAt: fetchedAt.UTC(),
	}
}

// the API only names cards, ids are resolved from the english name
func cardID(t *refdata.Tables, name string) (int, error) {
	card, err := t.CardByEnglishName(name)
	if err != nil {
		return 0, err
	}

	return card.ID, nil
}

func playerCards(t *refdata.Tables, cards []wire.PlayerCard) ([]model.PlayerCard, error) {
	normalized := make([]model.PlayerCard, 0, len(cards))
	for _, card := range cards {
		id, err := cardID(t, card.Name)
		if err != nil {
			return nil, err
		}

		normalized = append(normalized, model.PlayerCard{
			ID:    id,
			Level: card.Level,
			Count: card.Count,
		})
	}

	return normalized, nil
}

func battleParticipants(t *refdata.Tables, participants []wire.BattleParticipant) ([]model.BattleParticipant, error) {
	normalized := make([]model.BattleParticipant, 0, len(participants))
	for _, p := range participants {
		cards := make([]model.BattleCard, 0, len(p.Cards))
		for _, card := range p.Cards {
			id, err := cardID(t, card.Name)
			if err != nil {
				return nil, err
			}
			cards = append(cards, model.BattleCard{ID: id, Level: card.Level})
		}

		normalized = append(normalized, model.BattleParticipant{
			Tag:              hashtag.Normalize(p.Tag),
			Name:             p.Name,
			StartingTrophies: p.StartingTrophies,
			TrophyChange:     p.TrophyChange,
			Crowns:           p.Crowns,
			Clan:             clan(p.Clan),
			Cards:            cards,
		})
	}

	return normalized, nil
}

func clan(c *wire.Clan) *model.Clan {
	if c == nil {
		return nil
	}

	return &model.Clan{
		Tag:     hashtag.Normalize(c.Tag),
		Name:    c.Name,
		BadgeID: c.BadgeID,
	}
}

func clanRankings(rankings []wire.ClanRanking) []model.ClanRanking {
	items := make([]model.ClanRanking, 0, len(rankings))
	for _, r := range rankings {
		items = append(items, model.ClanRanking{
			Tag:          hashtag.Normalize(r.Tag),
			Name:         r.Name,
			Rank:         r.Rank,
			PreviousRank: r.PreviousRank,
			Location:     Location(r.Location),
			BadgeID:      r.BadgeID,
			ClanScore:    r.ClanScore,
			MemberCount:  r.Members,
		})
	}

	return items
}

func leagueStatistics(stats *wire.LeagueStatistics) *model.LeagueStatistics {
	if stats == nil {
		return nil
	}

	normalized := &model.LeagueStatistics{}
	if s := stats.CurrentSeason; s != nil {
		normalized.CurrentSeason = &model.CurrentSeason{
			Trophies:     s.Trophies,
			BestTrophies: s.BestTrophies,
		}
	}
	if s := stats.PreviousSeason; s != nil {
		normalized.PreviousSeason = &model.PreviousSeason{
			ID:           s.ID,
			Rank:         s.Rank,
			Trophies:     s.Trophies,
			BestTrophies: s.BestTrophies,
		}
	}
	if s := stats.BestSeason; s != nil {
		normalized.BestSeason = &model.BestSeason{
			ID:       s.ID,
			Rank:     s.Rank,
			Trophies: s.Trophies,
		}
	}

	return normalized
}
