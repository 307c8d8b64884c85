package model

import (
	"github.com/pkg/errors"
)

var (
	ErrUnknownBattleType = errors.New("unknown battle type")
)

type BattleType string

const (
	BattleTypePvP                       BattleType = "PvP"
	BattleTypePvE                       BattleType = "PvE"
	BattleTypeTournament                BattleType = "tournament"
	BattleTypeFriendly                  BattleType = "friendly"
	BattleTypeClanMate                  BattleType = "clanMate"
	BattleTypeChallenge                 BattleType = "challenge"
	BattleType2v2                       BattleType = "2v2"
	BattleTypeClanMate2v2               BattleType = "clanMate2v2"
	BattleTypeChallenge2v2              BattleType = "challenge2v2"
	BattleTypeTouchdown2v2DraftPractice BattleType = "touchdown2v2DraftPractice"
	BattleTypeTouchdown2v2Draft         BattleType = "touchdown2v2Draft"
	BattleTypeUnknown                   BattleType = "unknown"
)

type battleTypeNames struct {
	url      string
	friendly string
	gameType string
}

var (
	battleTypesMap = map[BattleType]battleTypeNames{
		BattleTypePvP:                       {"pvp", "Arena", "Arena"},
		BattleTypePvE:                       {"pve", "Co-Op", "PvE"},
		BattleTypeTournament:                {"tournament", "Tournament", "Tournament"},
		BattleTypeFriendly:                  {"friendly", "Friendly", "Friendly Battle"},
		BattleTypeClanMate:                  {"clan-mate", "Clan Friendly", "Clan Friendly Battle"},
		BattleTypeChallenge:                 {"challenge", "Challenge", "Challenge"},
		BattleType2v2:                       {"2v2", "2vs2", "2 vs. 2"},
		BattleTypeClanMate2v2:               {"clan-mate-2v2", "Clan Friendly 2vs2", "Clan Mate 2 vs. 2"},
		BattleTypeChallenge2v2:              {"challenge-2v2", "Challenge 2vs2", "Challenge 2 vs. 2"},
		BattleTypeTouchdown2v2DraftPractice: {"touchdown-2v2-draft-practice", "Touchdown 2vs2 Draft Practice", "Touchdown 2 vs. 2 (Draft Practice)"},
		BattleTypeTouchdown2v2Draft:         {"touchdown-2v2-draft", "Touchdown 2vs2 Draft", "Touchdown 2 vs. 2 (Draft)"},
		BattleTypeUnknown:                   {"unknown", "Unknown", "Unknown"},
	}

	urlNameToBattleType = func() map[string]BattleType {
		m := make(map[string]BattleType, len(battleTypesMap))
		for battleType, names := range battleTypesMap {
			m[names.url] = battleType
		}
		return m
	}()
)

// URLName returns the URL friendly name of the battle type (e.g. clan-mate-2v2).
func (bt BattleType) URLName() string {
	if names, ok := battleTypesMap[bt]; ok {
		return names.url
	}

	return battleTypesMap[BattleTypeUnknown].url
}

// FriendlyName returns the name of the battle type shown to users (e.g. Clan Friendly 2vs2).
func (bt BattleType) FriendlyName() string {
	if names, ok := battleTypesMap[bt]; ok {
		return names.friendly
	}

	return battleTypesMap[BattleTypeUnknown].friendly
}

// BattleTypeFromURLName resolves a battle type from its URL friendly name.
func BattleTypeFromURLName(name string) (BattleType, error) {
	battleType, ok := urlNameToBattleType[name]
	if !ok {
		return "", errors.Wrapf(ErrUnknownBattleType, "%q", name)
	}

	return battleType, nil
}

// GameTypeName returns the display name of a game type as sent in battle logs,
// or an empty string for unknown game types.
func GameTypeName(gameType string) string {
	return battleTypesMap[BattleType(gameType)].gameType
}

type DeckSelection string

const (
	// DeckSelectionCollection is the player's current deck.
	DeckSelectionCollection DeckSelection = "collection"
	DeckSelectionDraft      DeckSelection = "draft"
	DeckSelectionPredefined DeckSelection = "predefined"
	// DeckSelectionEventDeck is a deck chosen for a challenge event.
	DeckSelectionEventDeck DeckSelection = "eventDeck"
	DeckSelectionPick      DeckSelection = "pick"
)

type Role string

const (
	RoleMember   Role = "member"
	RoleElder    Role = "elder"
	RoleCoLeader Role = "coLeader"
	RoleLeader   Role = "leader"
)

type AccessType string

const (
	AccessTypeInviteOnly AccessType = "inviteOnly"
	AccessTypeClosed     AccessType = "closed"
	AccessTypeOpen       AccessType = "open"
)

type ClanChestStatus string

const (
	// ClanChestStatusInactive is the weekday status.
	ClanChestStatusInactive  ClanChestStatus = "inactive"
	ClanChestStatusActive    ClanChestStatus = "active"
	ClanChestStatusCompleted ClanChestStatus = "completed"
)

type ChallengeMode int

const (
	ChallengeModeGrand            ChallengeMode = 65000000
	ChallengeModeClassic          ChallengeMode = 65000001
	ChallengeModeKingsCup         ChallengeMode = 65000002
	ChallengeModeDoubleElixir     ChallengeMode = 65000003
	ChallengeModeBlindDeck        ChallengeMode = 65000004
	ChallengeModeDraftMode        ChallengeMode = 65000005
	ChallengeModeThreeBridges     ChallengeMode = 65000006
	ChallengeModeHero             ChallengeMode = 65000007
	ChallengeModeElectroWizard    ChallengeMode = 65000008
	ChallengeModeBattleRamClassic ChallengeMode = 65000010
	ChallengeModeBattleRamGrand   ChallengeMode = 65000011
	ChallengeModeDraftModeInsane  ChallengeMode = 65000012
	ChallengeModeTeam             ChallengeMode = 65000013
	ChallengeModeRetroRoyale      ChallengeMode = 65000014
	ChallengeModeTeamVsEnemy      ChallengeMode = 65000015
)
