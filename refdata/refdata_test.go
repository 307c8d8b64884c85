package refdata_test

import (
	"sync"
	"testing"
	"testing/fstest"

	"github.com/m0t0k1ch1/royale-go/internal/testutil"
	"github.com/m0t0k1ch1/royale-go/refdata"
)

var (
	tablesOnce sync.Once
	tables     *refdata.Tables
	tablesErr  error
)

func loadTables(t *testing.T) *refdata.Tables {
	t.Helper()

	tablesOnce.Do(func() {
		tables, tablesErr = refdata.LoadDefault()
	})
	if tablesErr != nil {
		t.Fatalf("failed to load tables: %v", tablesErr)
	}

	return tables
}

func TestTexts(t *testing.T) {
	tables := loadTables(t)

	text, ok := tables.Text("TID_LOADING")
	if !ok {
		t.Fatal("text not found")
	}
	if text.Get(refdata.LocaleEN) == text.Get(refdata.LocaleCN) {
		t.Errorf("expected different translations, got %q", text.EN())
	}

	testutil.Equal(t, "Lädt...", tables.Translation("TID_LOADING", refdata.LocaleDE))
	testutil.Equal(t, "", tables.Translation("TID_LOADING", refdata.LocaleFI))
	testutil.Equal(t, "", tables.Translation("TID_UNKNOWN", refdata.LocaleEN))

	slug, ok := tables.SlugText("TID_LOADING")
	if !ok {
		t.Fatal("slug text not found")
	}
	testutil.Equal(t, "loading", slug.EN())
	testutil.Equal(t, "加载中", slug.Get(refdata.LocaleCN))
}

func TestCardByID(t *testing.T) {
	tables := loadTables(t)

	for _, id := range []int{27000000, 27000010, 26000000, 26000035, 28000000, 28000016} {
		card, err := tables.CardByID(id)
		if err != nil {
			t.Fatalf("failed to get card %d: %v", id, err)
		}

		testutil.Equal(t, id, card.ID)
		if card.Elixir < 1 || card.Elixir > 10 {
			t.Errorf("unexpected elixir for %d: %d", id, card.Elixir)
		}
		if len(card.Key) == 0 || len(card.UnlockArena) == 0 || len(card.Name.EN()) == 0 || len(card.Slug.EN()) == 0 {
			t.Errorf("incomplete card %d: %+v", id, card)
		}
	}

	_, err := tables.CardByID(26000099)
	testutil.ErrorIs(t, err, refdata.ErrCardNotFound)

	cards, err := tables.CardsByIDs([]int{28000011, 26000000})
	if err != nil {
		t.Fatalf("failed to get cards: %v", err)
	}
	testutil.Equal(t, 2, len(cards))
	testutil.Equal(t, "The Log", cards[0].Name.EN())

	_, err = tables.CardsByIDs([]int{26000000, 1})
	testutil.ErrorIs(t, err, refdata.ErrCardNotFound)
}

func TestCardByName(t *testing.T) {
	tables := loadTables(t)

	tcs := []struct {
		name   string
		locale refdata.Locale
		id     int
	}{
		{"Knight", refdata.LocaleEN, 26000000},
		{"Heal", refdata.LocaleEN, 28000016},
		{"The Log", refdata.LocaleEN, 28000011},
		{"Goblin Barrel", refdata.LocaleEN, 28000004},
		{"Ritter", refdata.LocaleDE, 26000000},
		{"La bûche", refdata.LocaleFR, 28000011},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			card, err := tables.CardByName(tc.name, tc.locale)
			if err != nil {
				t.Fatalf("failed to get card: %v", err)
			}
			testutil.Equal(t, tc.id, card.ID)
		})
	}

	_, err := tables.CardByEnglishName("Ritter")
	testutil.ErrorIs(t, err, refdata.ErrCardNotFound)
}

func TestCardDetails(t *testing.T) {
	tables := loadTables(t)

	knight, err := tables.CardByEnglishName("Knight")
	if err != nil {
		t.Fatalf("failed to get card: %v", err)
	}
	testutil.Equal(t, refdata.CardTypeCharacter, knight.Type)
	testutil.Equal(t, refdata.RarityCommon, knight.Rarity)
	testutil.Equal(t, 13, knight.MaxLevel)
	testutil.Equal(t, 9, knight.MaxTournamentLevel)

	pekka, err := tables.CardByID(26000004)
	if err != nil {
		t.Fatalf("failed to get card: %v", err)
	}
	testutil.Equal(t, "pekka", pekka.Slug.EN())

	furnace, err := tables.CardByID(27000010)
	if err != nil {
		t.Fatalf("failed to get card: %v", err)
	}
	testutil.Equal(t, refdata.CardTypeBuilding, furnace.Type)
}

func TestCards(t *testing.T) {
	tables := loadTables(t)

	cards := tables.Cards()
	testutil.Equal(t, 64, len(cards))
	for i := 1; i < len(cards); i++ {
		if cards[i-1].ID >= cards[i].ID {
			t.Fatalf("cards are not ordered by id: %d >= %d", cards[i-1].ID, cards[i].ID)
		}
	}

	found := []int{27000010, 28000016}
	for id := 26000000; id < 26000062; id++ {
		found = append(found, id)
	}

	missing := tables.ToBeFoundCards(found)
	testutil.Equal(t, 26, len(missing))
	for _, card := range missing {
		if card.ID == 27000010 || card.ID == 28000016 || card.ID < 27000000 {
			t.Errorf("unexpected missing card %d", card.ID)
		}
	}
}

func TestRarities(t *testing.T) {
	tables := loadTables(t)

	common, ok := tables.RarityByName(refdata.RarityCommon)
	if !ok {
		t.Fatal("rarity not found")
	}
	testutil.Equal(t, "Common", common.Name.EN())
	testutil.Equal(t, 5000, common.UpgradeMaterialCount[11])

	count, ok := tables.CardUpgradeCount(refdata.RarityCommon, 12)
	testutil.Equal(t, true, ok)
	testutil.Equal(t, 5000, count)

	_, ok = tables.CardUpgradeCount(refdata.RarityCommon, 13)
	testutil.Equal(t, false, ok)
	_, ok = tables.CardUpgradeCount(refdata.RarityHero, 1)
	testutil.Equal(t, false, ok)

	legendary, _ := tables.RarityByName(refdata.RarityLegendary)
	testutil.Equal(t, 1, legendary.TournamentLevelCount)
}

func TestArenas(t *testing.T) {
	tables := loadTables(t)

	for _, id := range []int{54000001, 54000002, 54000020, 54000018, 54000024} {
		arena, ok := tables.ArenaByID(id)
		if !ok {
			t.Fatalf("arena %d not found", id)
		}
		if arena.Number == nil {
			t.Errorf("arena %d has no number", id)
		}
		if len(arena.Name.EN()) == 0 || len(arena.Subtitle.EN()) == 0 {
			t.Errorf("arena %d has no name", id)
		}
	}

	arena, ok := tables.ArenaByNumber(11)
	if !ok {
		t.Fatal("arena not found")
	}
	testutil.Equal(t, "Arena 11", arena.Name.EN())
	testutil.Equal(t, 54000024, arena.ID)

	camp, ok := tables.ArenaByKey("TrainingCamp")
	if !ok {
		t.Fatal("arena not found")
	}
	testutil.Equal(t, 0, camp.TrophiesRequired)
	if camp.Number != nil {
		t.Errorf("training camp has a number: %d", *camp.Number)
	}

	testutil.Equal(t, 22, len(tables.Arenas()))
}

func TestChests(t *testing.T) {
	tables := loadTables(t)

	tcs := []struct {
		name      string
		locale    refdata.Locale
		slug      string
		isSpecial bool
	}{
		{"Silver Chest", refdata.LocaleEN, "silver-chest", false},
		{"Wooden Chest", refdata.LocaleEN, "wooden-chest", false},
		{"Super Magical Chest", refdata.LocaleEN, "super-magical-chest", true},
		{"King's Chest", refdata.LocaleEN, "kings-chest", false},
		{"Coffre en or", refdata.LocaleFR, "golden-chest", false},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			chest, ok := tables.ChestByName(tc.name, tc.locale)
			if !ok {
				t.Fatal("chest not found")
			}
			testutil.Equal(t, tc.name, chest.Name.Get(tc.locale))
			testutil.Equal(t, tc.slug, chest.Slug.EN())
			testutil.Equal(t, tc.isSpecial, chest.IsSpecial)
		})
	}

	if _, ok := tables.ChestByName("Silver Chest", refdata.LocaleDE); ok {
		t.Error("found chest by name of another locale")
	}
}

func TestLocations(t *testing.T) {
	tables := loadTables(t)

	germany, ok := tables.LocationByID(57000094)
	if !ok {
		t.Fatal("location not found")
	}
	testutil.Equal(t, refdata.LocationDetails{
		ID:          57000094,
		Name:        "Germany",
		IsCountry:   true,
		CountryCode: "DE",
		Slug:        "germany",
	}, germany)

	for slug, id := range map[string]int{
		"germany":          57000094,
		"Aland-Islands":    57000008,
		"COTE-DIVOIRE":     57000067,
		"saint-barthelemy": 57000193,
		"north-america":    57000001,
	} {
		location, ok := tables.LocationBySlug(slug)
		if !ok {
			t.Errorf("location %s not found", slug)
			continue
		}
		testutil.Equal(t, id, location.ID)
	}

	testutil.Equal(t, 20, len(tables.Locations()))
}

func TestBadges(t *testing.T) {
	tables := loadTables(t)

	for _, id := range []int{16000000, 16000050, 16000179} {
		badge, ok := tables.BadgeByID(id)
		if !ok {
			t.Fatalf("badge %d not found", id)
		}
		testutil.Equal(t, id, badge.ID)
	}

	if _, ok := tables.BadgeByID(16000180); ok {
		t.Error("found badge out of range")
	}
}

func TestRoles(t *testing.T) {
	tables := loadTables(t)

	coLeader, ok := tables.RoleByAPIName("coLeader")
	if !ok {
		t.Fatal("role not found")
	}
	testutil.Equal(t, 3, coLeader.Level)
	testutil.Equal(t, true, coLeader.CanBePromotedToLeader)

	elder, ok := tables.RoleByName("Ältester", refdata.LocaleDE)
	if !ok {
		t.Fatal("role not found")
	}
	testutil.Equal(t, 59000002, elder.ID)

	leader, ok := tables.RoleByID(59000001)
	if !ok {
		t.Fatal("role not found")
	}
	testutil.Equal(t, "leader", leader.APIName)
}

func TestLoad(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		if _, err := refdata.Load(fstest.MapFS{}); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("UnknownText", func(t *testing.T) {
		fsys := fstest.MapFS{
			"texts.json":    {Data: []byte(`[]`)},
			"rarities.json": {Data: []byte(`[{"name":"Common","levelCount":13,"TID":"TID_RARITY_COMMON"}]`)},
		}

		_, err := refdata.Load(fsys)
		testutil.ErrorIs(t, err, refdata.ErrUnknownText)
	})
}

func TestConcurrentReads(t *testing.T) {
	tables := loadTables(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, card := range tables.Cards() {
				if _, err := tables.CardByEnglishName(card.Name.EN()); err != nil {
					t.Errorf("failed to get card %d: %v", card.ID, err)
				}
			}
		}()
	}
	wg.Wait()
}
