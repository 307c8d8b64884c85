package refdata

import (
	"io/fs"
	"sort"
	"strings"
)

// LocationDetails represents a country or region.
type LocationDetails struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	IsCountry   bool   `json:"isCountry"`
	CountryCode string `json:"countryCode,omitempty"`
	Slug        string `json:"slug"`
}

// LocationByID returns a location by its id (e.g. 57000000).
func (t *Tables) LocationByID(id int) (LocationDetails, bool) {
	location, ok := t.locationsByID[id]
	return location, ok
}

// LocationBySlug returns a location by its slug, ignoring case.
func (t *Tables) LocationBySlug(slug string) (LocationDetails, bool) {
	location, ok := t.locationsBySlug[strings.ToLower(slug)]
	return location, ok
}

// Locations returns all locations ordered by id.
func (t *Tables) Locations() []LocationDetails {
	locations := make([]LocationDetails, 0, len(t.locationIDs))
	for _, id := range t.locationIDs {
		locations = append(locations, t.locationsByID[id])
	}

	return locations
}

func (t *Tables) loadLocations(fsys fs.FS) error {
	var locations []LocationDetails
	if err := readJSON(fsys, countriesFile, &locations); err != nil {
		return err
	}

	t.locationsByID = make(map[int]LocationDetails, len(locations))
	t.locationsBySlug = make(map[string]LocationDetails, len(locations))
	t.locationIDs = make([]int, 0, len(locations))

	for _, location := range locations {
		location.Slug = Slugify(location.Name)

		if _, ok := t.locationsByID[location.ID]; !ok {
			t.locationIDs = append(t.locationIDs, location.ID)
		}
		t.locationsByID[location.ID] = location
		t.locationsBySlug[location.Slug] = location
	}

	sort.Ints(t.locationIDs)

	return nil
}
