package entity

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// SortNearest orders search results by great-circle distance to the
// caller-supplied coordinates. It only takes effect when both user
// coordinates are present; otherwise filtering falls back to standard
// paged search.
const SortNearest = "nearest"

// MediaFilter is the transient criteria set for a media search. A nil
// field contributes no constraint; present fields combine as a
// conjunction.
type MediaFilter struct {
	Status           *MediaStatus
	Title            *string // Case-insensitive substring on the title.
	BusinessID       *uuid.UUID
	ExcludeID        *uuid.UUID
	MinPrice         *float64 // Inclusive.
	MaxPrice         *float64 // Inclusive.
	MinImpressions   *int
	Bounds           *BoundingBox
	Sort             string
	UserLatitude     *float64
	UserLongitude    *float64
}

// NearestRequested reports whether distance ranking applies: the sort
// mode is "nearest" and both user coordinates were supplied.
func (f *MediaFilter) NearestRequested() bool {
	return f.Sort == SortNearest && f.UserLatitude != nil && f.UserLongitude != nil
}

// UserPoint returns the user coordinates as an orb point (lon, lat).
// Only meaningful when NearestRequested is true.
func (f *MediaFilter) UserPoint() orb.Point {
	return orb.Point{*f.UserLongitude, *f.UserLatitude}
}

// Matches reports whether a single media item satisfies every present
// criterion. This is the reference semantics of the filter; the
// postgres repository translates the same criteria to SQL.
func (f *MediaFilter) Matches(m *Media) bool {
	for _, pred := range f.predicates() {
		if !pred(m) {
			return false
		}
	}

	return true
}

// predicates builds one closure per present criterion; absent criteria
// simply contribute no closure.
func (f *MediaFilter) predicates() []func(*Media) bool {
	preds := make([]func(*Media) bool, 0, 8)

	if f.Status != nil {
		preds = append(preds, func(m *Media) bool { return m.Status == *f.Status })
	}
	if f.Title != nil {
		needle := strings.ToLower(*f.Title)
		preds = append(preds, func(m *Media) bool {
			return strings.Contains(strings.ToLower(m.Title), needle)
		})
	}
	if f.BusinessID != nil {
		preds = append(preds, func(m *Media) bool { return m.BusinessID == *f.BusinessID })
	}
	if f.ExcludeID != nil {
		preds = append(preds, func(m *Media) bool { return m.ID != *f.ExcludeID })
	}
	if f.MinPrice != nil {
		preds = append(preds, func(m *Media) bool { return m.Price >= *f.MinPrice })
	}
	if f.MaxPrice != nil {
		preds = append(preds, func(m *Media) bool { return m.Price <= *f.MaxPrice })
	}
	if f.MinImpressions != nil {
		preds = append(preds, func(m *Media) bool { return m.DailyImpressions >= *f.MinImpressions })
	}
	if f.Bounds != nil {
		preds = append(preds, func(m *Media) bool {
			if !m.Location.HasCoordinates() {
				return false
			}

			return f.Bounds.Contains(*m.Location.Latitude, *m.Location.Longitude)
		})
	}

	return preds
}

// BoundingBox is a south/north/west/east rectangle in degrees. West
// greater than east means the box wraps across the antimeridian and
// selects longitudes >= west OR <= east, never an empty range.
type BoundingBox struct {
	South float64
	North float64
	West  float64
	East  float64
}

// ParseBoundingBox parses a "south,west,north,east" query string.
func ParseBoundingBox(raw string) (*BoundingBox, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return nil, errors.Errorf("bounding box must have 4 components, got %d", len(parts))
	}

	values := make([]float64, 4)
	for i, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid bounding box component %q", part)
		}
		values[i] = value
	}

	box := &BoundingBox{South: values[0], West: values[1], North: values[2], East: values[3]}
	if box.South > box.North {
		return nil, errors.Errorf("bounding box south %v exceeds north %v", box.South, box.North)
	}

	return box, nil
}

// Contains reports whether the coordinate falls inside the box.
func (b *BoundingBox) Contains(lat, lng float64) bool {
	if b.Wraps() {
		if lat < b.South || lat > b.North {
			return false
		}

		return lng >= b.West || lng <= b.East
	}

	return b.bound().Contains(orb.Point{lng, lat})
}

// Wraps reports whether the box crosses the antimeridian.
func (b *BoundingBox) Wraps() bool {
	return b.West > b.East
}

func (b *BoundingBox) bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.West, b.South},
		Max: orb.Point{b.East, b.North},
	}
}
