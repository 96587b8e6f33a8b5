package club

import (
	"strings"

	"github.com/tbrandao/clubsheet/internal/models"
)

// Tier identifies which of a team's two roster lists an entry sits on.
type Tier string

const (
	TierTitular Tier = "titular"
	TierReserve Tier = "reserve"
)

// ParseNames splits a comma-separated name list into roster entries with no
// member link set. Blank segments are dropped; order is preserved.
func ParseNames(list string) []models.RosterEntry {
	var entries []models.RosterEntry
	for _, part := range strings.Split(list, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		entries = append(entries, models.RosterEntry{Name: name})
	}
	return entries
}

// AddEntry appends a named entry to the given tier of the team.
func AddEntry(team *models.Team, tier Tier, name string) {
	entry := models.RosterEntry{Name: strings.TrimSpace(name)}
	if tier == TierTitular {
		team.Titulars = append(team.Titulars, entry)
	} else {
		team.Reserves = append(team.Reserves, entry)
	}
}

// RemoveEntry deletes the entry at index from the given tier. Returns false
// if the index is out of range.
func RemoveEntry(team *models.Team, tier Tier, index int) bool {
	list := tierList(team, tier)
	if index < 0 || index >= len(*list) {
		return false
	}
	*list = append((*list)[:index], (*list)[index+1:]...)
	return true
}

// Promote moves the reserve at index onto the end of the titulars list,
// preserving its name and member link. Returns false on a bad index.
func Promote(team *models.Team, index int) bool {
	return move(&team.Reserves, &team.Titulars, index)
}

// Demote moves the titular at index onto the end of the reserves list,
// preserving its name and member link. Returns false on a bad index.
func Demote(team *models.Team, index int) bool {
	return move(&team.Titulars, &team.Reserves, index)
}

// move removes src[index] and appends it to dst. Append-at-end is the
// defined policy; the entry does not keep its original relative position.
func move(src, dst *[]models.RosterEntry, index int) bool {
	if index < 0 || index >= len(*src) {
		return false
	}
	entry := (*src)[index]
	*src = append((*src)[:index], (*src)[index+1:]...)
	*dst = append(*dst, entry)
	return true
}

func tierList(team *models.Team, tier Tier) *[]models.RosterEntry {
	if tier == TierTitular {
		return &team.Titulars
	}
	return &team.Reserves
}
