package refdata

import (
	"io/fs"
)

type roleJSON struct {
	Name                      string `json:"name"`
	SCID                      int    `json:"scid"`
	APIName                   string `json:"apiName"`
	Level                     int    `json:"level"`
	TID                       string `json:"TID"`
	CanInvite                 bool   `json:"canInvite"`
	CanSendMail               bool   `json:"canSendMail"`
	CanChangeAllianceSettings bool   `json:"canChangeAllianceSettings"`
	CanAcceptJoinRequest      bool   `json:"canAcceptJoinRequest"`
	CanKick                   bool   `json:"canKick"`
	CanBePromotedToLeader     bool   `json:"canBePromotedToLeader"`
	CanPromoteToOwnLevel      bool   `json:"canPromoteToOwnLevel"`
}

// RoleDetails represents a clan (alliance) role.
type RoleDetails struct {
	// ID is the game's role id (59000000 - 59000004).
	ID      int    `json:"id"`
	Name    Text   `json:"name"`
	APIName string `json:"apiName"`
	Level   int    `json:"level"`
	TID     string `json:"tid"`

	CanInvite                 bool `json:"canInvite"`
	CanSendMail               bool `json:"canSendMail"`
	CanChangeAllianceSettings bool `json:"canChangeAllianceSettings"`
	CanAcceptJoinRequest      bool `json:"canAcceptJoinRequest"`
	CanKick                   bool `json:"canKick"`
	CanBePromotedToLeader     bool `json:"canBePromotedToLeader"`
	CanPromoteToOwnLevel      bool `json:"canPromoteToOwnLevel"`
}

// RoleByID returns a role by its id.
func (t *Tables) RoleByID(id int) (RoleDetails, bool) {
	role, ok := t.rolesByID[id]
	return role, ok
}

// RoleByName returns a role by its name in the given locale.
func (t *Tables) RoleByName(name string, locale Locale) (RoleDetails, bool) {
	role, ok := t.rolesByName[localizedKey(locale, name)]
	return role, ok
}

// RoleByAPIName returns a role by the name the API uses for it (e.g. coLeader).
func (t *Tables) RoleByAPIName(apiName string) (RoleDetails, bool) {
	role, ok := t.rolesByAPIName[apiName]
	return role, ok
}

func (t *Tables) loadRoles(fsys fs.FS) error {
	var roles []roleJSON
	if err := readJSON(fsys, rolesFile, &roles); err != nil {
		return err
	}

	t.rolesByID = make(map[int]RoleDetails, len(roles))
	t.rolesByName = make(map[string]RoleDetails, len(roles)*len(AllLocales))
	t.rolesByAPIName = make(map[string]RoleDetails, len(roles))

	for _, r := range roles {
		name, err := t.mustText(r.TID)
		if err != nil {
			return err
		}

		role := RoleDetails{
			ID:                        r.SCID,
			Name:                      name,
			APIName:                   r.APIName,
			Level:                     r.Level,
			TID:                       r.TID,
			CanInvite:                 r.CanInvite,
			CanSendMail:               r.CanSendMail,
			CanChangeAllianceSettings: r.CanChangeAllianceSettings,
			CanAcceptJoinRequest:      r.CanAcceptJoinRequest,
			CanKick:                   r.CanKick,
			CanBePromotedToLeader:     r.CanBePromotedToLeader,
			CanPromoteToOwnLevel:      r.CanPromoteToOwnLevel,
		}

		t.rolesByID[role.ID] = role
		t.rolesByAPIName[role.APIName] = role

		for _, locale := range AllLocales {
			if localized := name.Get(locale); len(localized) > 0 {
				t.rolesByName[localizedKey(locale, localized)] = role
			}
		}
	}

	return nil
}
