package refdata

import (
	"io/fs"
	"sort"

	"github.com/pkg/errors"
)

// CardType is the kind of a card.
type CardType string

const (
	CardTypeCharacter CardType = "character"
	CardTypeSpell     CardType = "spell"
	CardTypeBuilding  CardType = "building"
)

type cardJSON struct {
	Name        string `json:"name"`
	IconFile    string `json:"iconFile"`
	UnlockArena string `json:"unlockArena"`
	Rarity      string `json:"rarity"`
	ManaCost    int    `json:"manaCost"`
	TID         string `json:"TID"`
	TIDInfo     string `json:"TID_INFO"`
	SCID        int    `json:"scid"`
	NotInUse    bool   `json:"notInUse"`
}

// CardDetails represents the static details of a card.
type CardDetails struct {
	// ID is the game's card id (26000000 - 28xxxxxx).
	ID          int    `json:"id"`
	Slug        Text   `json:"slug"`
	Key         string `json:"cardKey"`
	Name        Text   `json:"name"`
	Description Text   `json:"description"`
	Elixir      int    `json:"elixir"`

	Type   CardType `json:"cardType"`
	Rarity Rarity   `json:"rarity"`

	// UnlockArena is the key of the arena the card can be found from on.
	UnlockArena string `json:"unlockArena"`

	MaxLevel           int `json:"maxLevel"`
	MaxTournamentLevel int `json:"maxTournamentLevel"`
}

// CardByID returns a card by its id.
func (t *Tables) CardByID(id int) (CardDetails, error) {
	card, ok := t.cardsByID[id]
	if !ok {
		return CardDetails{}, errors.Wrapf(ErrCardNotFound, "id %d", id)
	}

	return card, nil
}

// CardsByIDs returns the cards of the given ids in the same order.
func (t *Tables) CardsByIDs(ids []int) ([]CardDetails, error) {
	cards := make([]CardDetails, 0, len(ids))
	for _, id := range ids {
		card, err := t.CardByID(id)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	return cards, nil
}

// CardByName returns a card by its name in the given locale.
func (t *Tables) CardByName(name string, locale Locale) (CardDetails, error) {
	card, ok := t.cardsByName[localizedKey(locale, name)]
	if !ok {
		return CardDetails{}, errors.Wrapf(ErrCardNotFound, "name %q (%s)", name, locale)
	}

	return card, nil
}

// CardByEnglishName returns a card by its english name, which is how the API names cards.
func (t *Tables) CardByEnglishName(name string) (CardDetails, error) {
	return t.CardByName(name, LocaleEN)
}

// Cards returns all cards ordered by id.
func (t *Tables) Cards() []CardDetails {
	cards := make([]CardDetails, 0, len(t.cardIDs))
	for _, id := range t.cardIDs {
		cards = append(cards, t.cardsByID[id])
	}

	return cards
}

// ToBeFoundCards returns all cards, ordered by id, whose ids are not in existingIDs.
func (t *Tables) ToBeFoundCards(existingIDs []int) []CardDetails {
	existing := make(map[int]struct{}, len(existingIDs))
	for _, id := range existingIDs {
		existing[id] = struct{}{}
	}

	cards := []CardDetails{}
	for _, id := range t.cardIDs {
		if _, ok := existing[id]; ok {
			continue
		}
		cards = append(cards, t.cardsByID[id])
	}

	return cards
}

func (t *Tables) loadCards(fsys fs.FS) error {
	t.cardsByID = map[int]CardDetails{}
	t.cardsByName = map[string]CardDetails{}
	t.cardIDs = nil

	files := []struct {
		name     string
		cardType CardType
	}{
		{spellsFile, CardTypeSpell},
		{charactersFile, CardTypeCharacter},
		{buildingsFile, CardTypeBuilding},
	}

	for _, f := range files {
		var cards []cardJSON
		if err := readJSON(fsys, f.name, &cards); err != nil {
			return err
		}

		for _, c := range cards {
			if len(c.TID) == 0 || c.NotInUse {
				continue
			}

			card, err := t.newCardDetails(c, f.cardType)
			if err != nil {
				return errors.Wrapf(err, "failed to build card %d", c.SCID)
			}

			t.addCard(card)
		}
	}

	sort.Ints(t.cardIDs)

	return nil
}

func (t *Tables) newCardDetails(c cardJSON, cardType CardType) (CardDetails, error) {
	name, err := t.mustText(c.TID)
	if err != nil {
		return CardDetails{}, err
	}
	description, err := t.mustText(c.TIDInfo)
	if err != nil {
		return CardDetails{}, err
	}

	rarity := Rarity(c.Rarity)
	rarityDetails := t.rarities[rarity]

	return CardDetails{
		ID:                 c.SCID,
		Slug:               slugText(name),
		Key:                c.IconFile,
		Name:               name,
		Description:        description,
		Elixir:             c.ManaCost,
		Type:               cardType,
		Rarity:             rarity,
		UnlockArena:        c.UnlockArena,
		MaxLevel:           rarityDetails.LevelCount,
		MaxTournamentLevel: rarityDetails.TournamentLevelCount,
	}, nil
}

// one name entry per locale, so a card can be found by any of its translations
func (t *Tables) addCard(card CardDetails) {
	if _, ok := t.cardsByID[card.ID]; !ok {
		t.cardIDs = append(t.cardIDs, card.ID)
	}
	t.cardsByID[card.ID] = card

	for _, locale := range AllLocales {
		if name := card.Name.Get(locale); len(name) > 0 {
			t.cardsByName[localizedKey(locale, name)] = card
		}
	}
}
