package refdata

import (
	"io/fs"
)

var chestTIDs = []string{
	"TID_CHEST_WOOD",
	"TID_CHEST_SILVER",
	"TID_CHEST_GOLD",
	"TID_CHEST_MAGICAL",
	"TID_CHEST_GIANT",
	"TID_CHEST_SUPER",
	"TID_CHEST_LEGENDARY",
	"TID_CHEST_EPIC",
	"TID_CHEST_SKIN",
	"TID_CHEST_DRAFT",
	"TID_CHEST_ITEM_LEGENDARY",
	"TID_CHEST_SHOP_SMALL",
	"TID_CHEST_SHOP_MEDIUM",
	"TID_CHEST_SHOP_LARGE",
	"TID_CHEST_SHOP_LARGE_LEGENDARY",
}

var specialChestTIDs = map[string]bool{
	"TID_CHEST_MAGICAL":        true,
	"TID_CHEST_GIANT":          true,
	"TID_CHEST_SUPER":          true,
	"TID_CHEST_LEGENDARY":      true,
	"TID_CHEST_EPIC":           true,
	"TID_CHEST_ITEM_LEGENDARY": true,
}

// ChestDetails represents the static details of a chest.
type ChestDetails struct {
	TID  string `json:"tid"`
	Name Text   `json:"name"`
	Slug Text   `json:"slug"`

	// IsSpecial is true for chests outside of the regular cycle (e.g. legendary).
	IsSpecial bool `json:"isSpecial"`
}

// ChestByName returns a chest by its name in the given locale.
func (t *Tables) ChestByName(name string, locale Locale) (ChestDetails, bool) {
	chest, ok := t.chestsByName[localizedKey(locale, name)]
	return chest, ok
}

func (t *Tables) loadChests(_ fs.FS) error {
	t.chestsByName = make(map[string]ChestDetails, len(chestTIDs)*len(AllLocales))

	for _, tid := range chestTIDs {
		name, err := t.mustText(tid)
		if err != nil {
			return err
		}

		chest := ChestDetails{
			TID:       tid,
			Name:      name,
			Slug:      slugText(name),
			IsSpecial: specialChestTIDs[tid],
		}

		for _, locale := range AllLocales {
			if localized := name.Get(locale); len(localized) > 0 {
				t.chestsByName[localizedKey(locale, localized)] = chest
			}
		}
	}

	return nil
}
