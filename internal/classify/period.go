package classify

import "lomtag/internal/genre"

// TimePeriod returns the release-period tag for a year, or the era marker's
// tag when the year is absent. Years 1996 through 2021 have no period tag.
func TimePeriod(year Year, era string) genre.Set {
	if year.Valid {
		switch {
		case year.Value <= RetroLastYear:
			return genre.Of(genre.Retro)
		case year.Value >= AtmodaFirstYear && year.Value <= AtmodaLastYear:
			return genre.Of(genre.Atmoda)
		case year.Value >= NewFirstYear:
			return genre.Of(genre.New)
		}
		return 0
	}
	switch NormalizeEra(era) {
	case EraVintage:
		return genre.Of(genre.Retro)
	case EraVCR:
		return genre.Of(genre.Atmoda)
	}
	return 0
}
