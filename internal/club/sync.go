package club

import "github.com/tbrandao/clubsheet/internal/models"

// SyncTeam reconciles a team's roster entries against the member directory
// and returns the members it had to create, in creation order.
//
// Entries are processed titulars first, then reserves, each list in its own
// order. For every named entry:
//
//   - an entry whose MemberID still resolves is left alone, so a second run
//     over a fully linked team is a no-op;
//   - otherwise the directory is searched by normalized name, and a match
//     heals the stale or missing link without creating a duplicate;
//   - only when no member matches is a new one created with default fields
//     and linked.
//
// Heal-by-name before create keeps one directory record per person even when
// the same name shows up on several teams or is re-entered with different
// casing or spacing.
func SyncTeam(team *models.Team, dir *Directory) []*models.Member {
	var created []*models.Member
	created = syncEntries(team.Titulars, dir, created)
	created = syncEntries(team.Reserves, dir, created)
	return created
}

func syncEntries(entries []models.RosterEntry, dir *Directory, created []*models.Member) []*models.Member {
	for i := range entries {
		entry := &entries[i]
		if NormalizeName(entry.Name) == "" {
			continue
		}
		if dir.Get(entry.MemberID) != nil {
			continue // already linked
		}
		if m := dir.FindByName(entry.Name); m != nil {
			entry.MemberID = m.ID
			continue
		}
		m := dir.Create(entry.Name)
		entry.MemberID = m.ID
		created = append(created, m)
	}
	return created
}

// SyncAll runs SyncTeam over every team in slice order and concatenates the
// creation lists. Each team's pass sees the directory as mutated by the
// previous ones, so a name first created while syncing an earlier team is
// matched, not duplicated, by a later team in the same batch.
func SyncAll(dir *Directory, teams []*models.Team) []*models.Member {
	var created []*models.Member
	for _, t := range teams {
		created = append(created, SyncTeam(t, dir)...)
	}
	return created
}
