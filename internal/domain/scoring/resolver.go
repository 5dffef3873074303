package scoring

import "github.com/ccwkit/ccwkit/internal/domain"

// ResolveProfile maps a set of top dimension IDs to a profile. The lookup
// key is canonical, so two callers presenting the same set in different
// ranked order resolve identically. A combination absent from the table
// falls back silently to the default profile: a partially populated table
// is an intended state, not a failure.
func ResolveProfile(dimensionIDs []string, set domain.ProfileSet) domain.Resolution {
	key := domain.CanonicalKey(dimensionIDs)

	if id, ok := set.Combinations[key]; ok {
		if rec, ok := set.Records[id]; ok {
			return domain.Resolution{Key: key, ProfileID: id, Profile: rec}
		}
	}

	return domain.Resolution{
		Key:       key,
		ProfileID: set.Default,
		Profile:   set.Records[set.Default],
		Fallback:  true,
	}
}
