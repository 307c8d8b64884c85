package model

import (
	"encoding/json"
	"sort"

	"github.com/m0t0k1ch1/royale-go/hashtag"
)

const DefaultTopMembersLimit int = 5

type ClanMember struct {
	Tag               string `json:"tag"`
	Name              string `json:"name"`
	Role              Role   `json:"role"`
	ExpLevel          int    `json:"expLevel"`
	Trophies          int    `json:"trophies"`
	Arena             Arena  `json:"arena"`
	ClanRank          int    `json:"clanRank"`
	PreviousClanRank  int    `json:"previousClanRank"`
	Donations         int    `json:"donations"`
	DonationsReceived int    `json:"donationsReceived"`
	// ClanChestPoints is nil for members who did not take part in the clan chest.
	ClanChestPoints *int `json:"clanChestPoints,omitempty"`
}

// AccountID returns the id encoded in the member tag.
func (m ClanMember) AccountID() hashtag.HiLo {
	return hashtag.Decode(m.Tag)
}

func (m ClanMember) MarshalJSON() ([]byte, error) {
	type member ClanMember

	return json.Marshal(struct {
		member
		AccountID hashtag.HiLo `json:"accountId"`
	}{
		member:    member(m),
		AccountID: m.AccountID(),
	})
}

type ClanProfile struct {
	Tag               string          `json:"tag"`
	Name              string          `json:"name"`
	AccessType        AccessType      `json:"accessType"`
	Description       string          `json:"description"`
	BadgeID           int             `json:"badgeId"`
	ClanScore         int             `json:"clanScore"`
	Location          Location        `json:"location"`
	RequiredTrophies  int             `json:"requiredTrophies"`
	DonationsPerWeek  int             `json:"donationsPerWeek"`
	ClanChestStatus   ClanChestStatus `json:"clanChestStatus"`
	ClanChestPoints   int             `json:"clanChestPoints"`
	ClanChestLevel    int             `json:"clanChestLevel"`
	ClanChestMaxLevel int             `json:"clanChestMaxLevel"`
	MembersCount      int             `json:"members"`
	MemberList        []ClanMember    `json:"memberList"`
}

// ClanID returns the id encoded in the clan tag.
func (c ClanProfile) ClanID() hashtag.HiLo {
	return hashtag.Decode(c.Tag)
}

// NameNormalized returns the decomposed, lower case clan name.
func (c ClanProfile) NameNormalized() string {
	return normalizeName(c.Name)
}

// TopMembersByDonations returns up to limit members ordered by donations, highest first.
func (c ClanProfile) TopMembersByDonations(limit int) []ClanMember {
	return topMembers(c.MemberList, limit, func(m ClanMember) (int, bool) {
		return m.Donations, true
	})
}

// TopMembersByTrophies returns up to limit members ordered by trophies, highest first.
func (c ClanProfile) TopMembersByTrophies(limit int) []ClanMember {
	return topMembers(c.MemberList, limit, func(m ClanMember) (int, bool) {
		return m.Trophies, true
	})
}

// TopMembersByChestPoints returns up to limit members ordered by clan chest points,
// highest first. Members without chest points are left out.
func (c ClanProfile) TopMembersByChestPoints(limit int) []ClanMember {
	return topMembers(c.MemberList, limit, func(m ClanMember) (int, bool) {
		if m.ClanChestPoints == nil {
			return 0, false
		}
		return *m.ClanChestPoints, true
	})
}

func (c ClanProfile) MarshalJSON() ([]byte, error) {
	type profile ClanProfile

	return json.Marshal(struct {
		profile
		ClanID         hashtag.HiLo `json:"clanId"`
		NameNormalized string       `json:"nameNormalized"`
	}{
		profile:        profile(c),
		ClanID:         c.ClanID(),
		NameNormalized: c.NameNormalized(),
	})
}

// the member list of the profile is never reordered
func topMembers(members []ClanMember, limit int, score func(ClanMember) (int, bool)) []ClanMember {
	type scored struct {
		member ClanMember
		score  int
	}

	candidates := make([]scored, 0, len(members))
	for _, member := range members {
		if s, ok := score(member); ok {
			candidates = append(candidates, scored{member, s})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if limit < 0 {
		limit = 0
	}
	if limit < len(candidates) {
		candidates = candidates[:limit]
	}

	top := make([]ClanMember, 0, len(candidates))
	for _, c := range candidates {
		top = append(top, c.member)
	}

	return top
}
