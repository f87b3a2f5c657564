package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func locatedMedia(lat, lng float64) *Media {
	return &Media{
		ID:     uuid.New(),
		Status: MediaStatusActive,
		Location: &Location{
			Latitude:  &lat,
			Longitude: &lng,
		},
	}
}

func TestMediaFilter_Matches_EmptyFilterMatchesEverything(t *testing.T) {
	filter := &MediaFilter{}
	assert.True(t, filter.Matches(&Media{}))
}

func TestMediaFilter_Matches_PriceBoundsInclusive(t *testing.T) {
	filter := &MediaFilter{
		MinPrice: ptr(100.0),
		MaxPrice: ptr(300.0),
	}

	assert.True(t, filter.Matches(&Media{Price: 100}))
	assert.True(t, filter.Matches(&Media{Price: 150}))
	assert.True(t, filter.Matches(&Media{Price: 250}))
	assert.True(t, filter.Matches(&Media{Price: 300}))
	assert.False(t, filter.Matches(&Media{Price: 99.99}))
	assert.False(t, filter.Matches(&Media{Price: 300.01}))
}

func TestMediaFilter_Matches_TitleSubstringCaseInsensitive(t *testing.T) {
	filter := &MediaFilter{Title: ptr("times square")}

	assert.True(t, filter.Matches(&Media{Title: "Times Square Billboard North"}))
	assert.False(t, filter.Matches(&Media{Title: "Sunset Strip Poster"}))
}

func TestMediaFilter_Matches_StatusAndImpressions(t *testing.T) {
	filter := &MediaFilter{
		Status:         ptr(MediaStatusActive),
		MinImpressions: ptr(5000),
	}

	assert.True(t, filter.Matches(&Media{Status: MediaStatusActive, DailyImpressions: 5000}))
	assert.False(t, filter.Matches(&Media{Status: MediaStatusInactive, DailyImpressions: 9000}))
	assert.False(t, filter.Matches(&Media{Status: MediaStatusActive, DailyImpressions: 4999}))
}

func TestMediaFilter_Matches_ExcludeID(t *testing.T) {
	excluded := uuid.New()
	filter := &MediaFilter{ExcludeID: &excluded}

	assert.False(t, filter.Matches(&Media{ID: excluded}))
	assert.True(t, filter.Matches(&Media{ID: uuid.New()}))
}

func TestMediaFilter_Matches_BoundsExcludeUnlocated(t *testing.T) {
	filter := &MediaFilter{
		Bounds: &BoundingBox{South: -10, North: 10, West: -10, East: 10},
	}

	assert.True(t, filter.Matches(locatedMedia(0, 0)))
	assert.False(t, filter.Matches(locatedMedia(20, 0)))
	assert.False(t, filter.Matches(&Media{Location: &Location{}}))
	assert.False(t, filter.Matches(&Media{}))
}

func TestMediaFilter_NearestRequested(t *testing.T) {
	assert.False(t, (&MediaFilter{Sort: SortNearest}).NearestRequested())
	assert.False(t, (&MediaFilter{
		Sort:         SortNearest,
		UserLatitude: ptr(40.0),
	}).NearestRequested())
	assert.False(t, (&MediaFilter{
		UserLatitude:  ptr(40.0),
		UserLongitude: ptr(-74.0),
	}).NearestRequested())
	assert.True(t, (&MediaFilter{
		Sort:          SortNearest,
		UserLatitude:  ptr(40.0),
		UserLongitude: ptr(-74.0),
	}).NearestRequested())
}

func TestParseBoundingBox(t *testing.T) {
	box, err := ParseBoundingBox("40.5,-74.3,40.9,-73.7")
	require.NoError(t, err)
	assert.Equal(t, 40.5, box.South)
	assert.Equal(t, -74.3, box.West)
	assert.Equal(t, 40.9, box.North)
	assert.Equal(t, -73.7, box.East)
}

func TestParseBoundingBox_Invalid(t *testing.T) {
	_, err := ParseBoundingBox("40.5,-74.3,40.9")
	assert.Error(t, err)

	_, err = ParseBoundingBox("40.5,-74.3,abc,-73.7")
	assert.Error(t, err)

	// South above north is never a valid box.
	_, err = ParseBoundingBox("41.0,-74.3,40.0,-73.7")
	assert.Error(t, err)
}

func TestBoundingBox_Contains(t *testing.T) {
	box := &BoundingBox{South: 40.5, North: 40.9, West: -74.3, East: -73.7}

	assert.True(t, box.Contains(40.7, -74.0))
	assert.True(t, box.Contains(40.5, -74.3)) // edges are inclusive
	assert.False(t, box.Contains(41.0, -74.0))
	assert.False(t, box.Contains(40.7, -73.0))
}

func TestBoundingBox_ContainsAcrossAntimeridian(t *testing.T) {
	// Fiji area: the box spans 177E to 178W.
	box := &BoundingBox{South: -20, North: -15, West: 177, East: -178}
	require.True(t, box.Wraps())

	assert.True(t, box.Contains(-17, 179))
	assert.True(t, box.Contains(-17, -179))
	assert.False(t, box.Contains(-17, 170))
	assert.False(t, box.Contains(-10, 179))
}
