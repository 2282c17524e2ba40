// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/camera-collector/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildListCamerasQuery_EmptyFilter(t *testing.T) {
	query, args, err := buildListCamerasQuery(models.CameraFilter{Limit: 20})
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from cameras")
	require.NotContains(t, q, "where")

	// no filter fields → only pagination, bound inline by the builder
	assert.Empty(t, args)

	// unspecified sort key falls back to creation time ascending
	require.Contains(t, q, "order by created_at asc")
	require.Contains(t, q, "limit 20")
}

func Test_buildListCamerasQuery_AllFilters(t *testing.T) {
	filter := models.CameraFilter{
		Brand:      "Nikon",
		Type:       "SLR",
		FilmFormat: "35mm",
		Condition:  models.ConditionExcellent,
		YearMin:    1950,
		YearMax:    1979,
		SortBy:     "year",
		SortDir:    models.SortDesc,
		Offset:     40,
		Limit:      20,
	}

	query, args, err := buildListCamerasQuery(filter)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "where")
	require.Contains(t, q, "brand =")
	require.Contains(t, q, "type =")
	require.Contains(t, q, "film_format =")
	require.Contains(t, q, "condition =")
	require.Contains(t, q, "year_manufactured >=")
	require.Contains(t, q, "year_manufactured <=")

	// "year" aliases the real column name
	require.Contains(t, q, "order by year_manufactured desc")
	require.Contains(t, q, "offset 40")

	// placeholder format should be $N (Postgres)
	require.Contains(t, query, "$1")
	require.Len(t, args, 6)
	assert.Equal(t, "Nikon", args[0])
	assert.Equal(t, "SLR", args[1])
	assert.Equal(t, "35mm", args[2])
	assert.Equal(t, models.ConditionExcellent, args[3])
	assert.Equal(t, 1950, args[4])
	assert.Equal(t, 1979, args[5])
}

func Test_buildListCamerasQuery_UnknownSortKeyFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		sortBy  string
		sortDir string
		want    string
	}{
		{name: "unknown key", sortBy: "shutter_speed", sortDir: models.SortDesc, want: "order by created_at asc"},
		{name: "empty key", sortBy: "", sortDir: models.SortDesc, want: "order by created_at asc"},
		{name: "sql injection attempt", sortBy: "brand; DROP TABLE cameras", want: "order by created_at asc"},
		{name: "known key default dir", sortBy: "brand", want: "order by brand asc"},
		{name: "known key desc", sortBy: "estimated_value", sortDir: "DESC", want: "order by estimated_value desc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, _, err := buildListCamerasQuery(models.CameraFilter{SortBy: tt.sortBy, SortDir: tt.sortDir, Limit: 10})
			require.NoError(t, err)
			assert.Contains(t, strings.ToLower(query), tt.want)
		})
	}
}

func Test_buildListCamerasQuery_ConditionSortUsesScale(t *testing.T) {
	// Sorting by condition must follow the poor..mint scale, not the
	// alphabetical order of the labels.
	query, _, err := buildListCamerasQuery(models.CameraFilter{SortBy: "condition", SortDir: models.SortDesc, Limit: 10})
	require.NoError(t, err)

	lower := strings.ToLower(query)
	assert.Contains(t, lower, "order by case condition")
	assert.Contains(t, lower, "when 'poor' then 1")
	assert.Contains(t, lower, "when 'mint' then 5")
	assert.Contains(t, lower, "else 0 end desc")
}

func Test_buildCountCamerasQuery_SameWhereClause(t *testing.T) {
	filter := models.CameraFilter{
		Brand:   "Leica",
		YearMin: 1930,
		SortBy:  "brand",
		Offset:  100,
		Limit:   10,
	}

	query, args, err := buildCountCamerasQuery(filter)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "count(*)")
	require.Contains(t, q, "from cameras")
	require.Contains(t, q, "brand =")
	require.Contains(t, q, "year_manufactured >=")

	// the total ignores sort and pagination
	require.NotContains(t, q, "order by")
	require.NotContains(t, q, "limit")
	require.NotContains(t, q, "offset")

	require.Len(t, args, 2)
	assert.Equal(t, "Leica", args[0])
	assert.Equal(t, 1930, args[1])
}

func Test_buildCountCamerasQuery_EmptyFilter(t *testing.T) {
	query, args, err := buildCountCamerasQuery(models.CameraFilter{})
	require.NoError(t, err)

	require.NotContains(t, strings.ToLower(query), "where")
	assert.Empty(t, args)
}

func Test_buildUpdateCameraQuery_PartialFields(t *testing.T) {
	brand := "Canon"
	value := 1250.0
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	query, args, err := buildUpdateCameraQuery("cam-1", models.CameraUpdate{
		Brand:          &brand,
		EstimatedValue: &value,
	}, now)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "update cameras")
	require.Contains(t, q, "brand =")
	require.Contains(t, q, "estimated_value =")
	require.Contains(t, q, "updated_at =")
	require.Contains(t, q, "where id =")
	require.Contains(t, q, "returning")

	// untouched fields never appear in SET
	require.NotContains(t, q, "model =")
	require.NotContains(t, q, "notes =")

	// updated_at, brand, estimated_value, id
	require.Len(t, args, 4)
	assert.Contains(t, args, now)
	assert.Contains(t, args, brand)
	assert.Contains(t, args, value)
	assert.Contains(t, args, "cam-1")
}

func Test_buildUpdateCameraQuery_ReturnsAllColumns(t *testing.T) {
	notes := "CLA'd in 2024"
	query, _, err := buildUpdateCameraQuery("cam-2", models.CameraUpdate{Notes: &notes}, time.Now())
	require.NoError(t, err)

	q := strings.ToLower(query)
	for _, column := range cameraColumns {
		require.Contains(t, q, column)
	}
}
