// Package refdata provides lookup tables for the static game data (cards, rarities,
// arenas, chests, locations, badges, alliance roles and their translated texts).
//
// The tables are built once by Load and are read-only afterwards, so a *Tables may
// be shared by any number of goroutines.
package refdata

import (
	"embed"
	"encoding/json"
	"io/fs"

	"github.com/pkg/errors"
)

const (
	textsFile      = "texts.json"
	raritiesFile   = "rarities.json"
	charactersFile = "spells_characters.json"
	buildingsFile  = "spells_buildings.json"
	spellsFile     = "spells_other.json"
	arenasFile     = "arenas.json"
	countriesFile  = "countries.json"
	rolesFile      = "alliance_roles.json"
)

var (
	ErrUnknownText  = errors.New("unknown text id")
	ErrCardNotFound = errors.New("card not found")
)

//go:embed assets/*.json
var assets embed.FS

// Tables holds every reference data lookup.
type Tables struct {
	texts map[string]Text

	rarities map[Rarity]RarityDetails

	cardsByID   map[int]CardDetails
	cardsByName map[string]CardDetails
	cardIDs     []int

	arenasByID     map[int]ArenaDetails
	arenasByNumber map[int]ArenaDetails
	arenasByKey    map[string]ArenaDetails
	arenaIDs       []int

	chestsByName map[string]ChestDetails

	locationsByID   map[int]LocationDetails
	locationsBySlug map[string]LocationDetails
	locationIDs     []int

	badgesByID map[int]BadgeDetails

	rolesByID      map[int]RoleDetails
	rolesByName    map[string]RoleDetails
	rolesByAPIName map[string]RoleDetails
}

// LoadDefault builds the tables from the bundled game data.
func LoadDefault() (*Tables, error) {
	fsys, err := fs.Sub(assets, "assets")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open bundled assets")
	}

	return Load(fsys)
}

// Load builds the tables from the JSON files found in fsys.
func Load(fsys fs.FS) (*Tables, error) {
	t := &Tables{}

	steps := []struct {
		name string
		load func(fs.FS) error
	}{
		{"texts", t.loadTexts},
		{"rarities", t.loadRarities},
		{"cards", t.loadCards},
		{"arenas", t.loadArenas},
		{"chests", t.loadChests},
		{"locations", t.loadLocations},
		{"badges", t.loadBadges},
		{"roles", t.loadRoles},
	}

	for _, step := range steps {
		if err := step.load(fsys); err != nil {
			return nil, errors.Wrapf(err, "failed to load %s", step.name)
		}
	}

	return t, nil
}

// Text returns all translations of a text id.
func (t *Tables) Text(tid string) (Text, bool) {
	text, ok := t.texts[tid]
	return text, ok
}

// Translation returns the translation of a text id for a locale.
func (t *Tables) Translation(tid string, locale Locale) string {
	return t.texts[tid].Get(locale)
}

// SlugText returns the slugified translations of a text id.
func (t *Tables) SlugText(tid string) (Text, bool) {
	text, ok := t.texts[tid]
	if !ok {
		return Text{}, false
	}

	return slugText(text), true
}

func (t *Tables) loadTexts(fsys fs.FS) error {
	var texts []Text
	if err := readJSON(fsys, textsFile, &texts); err != nil {
		return err
	}

	t.texts = make(map[string]Text, len(texts))
	for _, text := range texts {
		t.texts[text.Identifier] = text
	}

	return nil
}

func (t *Tables) mustText(tid string) (Text, error) {
	text, ok := t.texts[tid]
	if !ok {
		return Text{}, errors.Wrapf(ErrUnknownText, "%q", tid)
	}

	return text, nil
}

func localizedKey(locale Locale, name string) string {
	return string(locale) + "-" + name
}

func readJSON(fsys fs.FS, name string, v any) error {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", name)
	}

	if err := json.Unmarshal(b, v); err != nil {
		return errors.Wrapf(err, "failed to unmarshal %s", name)
	}

	return nil
}
