package recipe

import (
	"github.com/dmorales/recetario/internal/domain"
)

// Rating bounds
const (
	MinRatingValue = 1
	MaxRatingValue = 5
)

// ApplyRating upserts a user's rating entry on the recipe and maintains the
// aggregate. An existing entry swaps its value into the total without
// changing the count; a new entry grows both.
func ApplyRating(r *domain.Recipe, userID string, value int) error {
	if value < MinRatingValue || value > MaxRatingValue {
		return domain.ErrInvalidRating
	}

	for i := range r.Ratings {
		if r.Ratings[i].UserID == userID {
			r.RatingTotal -= r.Ratings[i].Value
			r.Ratings[i].Value = value
			r.RatingTotal += value
			recomputeMean(r)
			return nil
		}
	}

	r.Ratings = append(r.Ratings, domain.RecipeRating{UserID: userID, Value: value})
	r.RatingCount++
	r.RatingTotal += value
	recomputeMean(r)
	return nil
}

// RemoveUserRating drops the user's entry, if any, and recomputes the
// aggregate from the remaining entries. Returns true when an entry was
// removed.
func RemoveUserRating(r *domain.Recipe, userID string) bool {
	for i := range r.Ratings {
		if r.Ratings[i].UserID == userID {
			r.Ratings = append(r.Ratings[:i], r.Ratings[i+1:]...)
			RecomputeAggregate(r)
			return true
		}
	}
	return false
}

// RecomputeAggregate rebuilds count, total and mean from the entry list.
// Used after bulk removal, where incremental maintenance is not trusted.
func RecomputeAggregate(r *domain.Recipe) {
	r.RatingCount = len(r.Ratings)
	r.RatingTotal = 0
	for _, entry := range r.Ratings {
		r.RatingTotal += entry.Value
	}
	recomputeMean(r)
}

func recomputeMean(r *domain.Recipe) {
	if r.RatingCount > 0 {
		r.Rating = float64(r.RatingTotal) / float64(r.RatingCount)
	} else {
		r.Rating = 0
	}
}
