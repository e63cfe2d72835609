package extractor_test

import (
	"testing"

	"github.com/rohmanhakim/parks-explorer/internal/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchPayloadJSON = `{
  "searchResults": [
    {
      "fields": {
        "name": "Cafe X",
        "address": "",
        "city": "Houghton",
        "group_sic_code_name_ext": "Restaurant"
      }
    },
    {
      "fields": {
        "name": "North Shore Trailhead",
        "address": "123 Lakeshore Dr",
        "city": "",
        "group_sic_code_name_ext": ""
      }
    }
  ]
}`

func TestPlacesFromSearchJSON_PlaceholderSubstitution(t *testing.T) {
	ext, _ := setupExtractor()

	places, err := ext.PlacesFromSearchJSON([]byte(searchPayloadJSON))

	require.NoError(t, err)
	require.Len(t, places, 2)

	// Empty address replaced; non-empty fields pass through unchanged.
	assert.Equal(t, "Cafe X", places[0].Name)
	assert.Equal(t, "Restaurant", places[0].Category)
	assert.Equal(t, "no address", places[0].Address)
	assert.Equal(t, "Houghton", places[0].City)

	assert.Equal(t, "North Shore Trailhead", places[1].Name)
	assert.Equal(t, "no category", places[1].Category)
	assert.Equal(t, "123 Lakeshore Dr", places[1].Address)
	assert.Equal(t, "no city", places[1].City)
}

func TestPlacesFromSearchJSON_OrderFollowsService(t *testing.T) {
	ext, _ := setupExtractor()

	places, err := ext.PlacesFromSearchJSON([]byte(searchPayloadJSON))

	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "Cafe X", places[0].Name)
	assert.Equal(t, "North Shore Trailhead", places[1].Name)
}

func TestPlacesFromSearchJSON_EmptyResults(t *testing.T) {
	ext, _ := setupExtractor()

	places, err := ext.PlacesFromSearchJSON([]byte(`{"searchResults": []}`))

	require.NoError(t, err)
	assert.Empty(t, places)
}

func TestPlacesFromSearchJSON_MissingResultsArray(t *testing.T) {
	ext, sink := setupExtractor()

	places, err := ext.PlacesFromSearchJSON([]byte(`{"resultsCount": 0}`))

	require.Error(t, err)
	assert.Nil(t, places)
	require.Len(t, sink.errors, 1)
	assert.Equal(t, metadata.CauseContentInvalid, sink.errors[0].Cause)
}

func TestPlacesFromSearchJSON_InvalidJSON(t *testing.T) {
	ext, sink := setupExtractor()

	places, err := ext.PlacesFromSearchJSON([]byte(`{"searchResults": [`))

	require.Error(t, err)
	assert.Nil(t, places)
	require.Len(t, sink.errors, 1)
}

func TestPlacesFromSearchJSON_ItemWithoutFields(t *testing.T) {
	ext, _ := setupExtractor()

	_, err := ext.PlacesFromSearchJSON([]byte(`{"searchResults": [{"distance": 1.2}]}`))

	require.Error(t, err)
}

func TestPlaceResultInfo(t *testing.T) {
	ext, _ := setupExtractor()

	places, err := ext.PlacesFromSearchJSON([]byte(searchPayloadJSON))

	require.NoError(t, err)
	assert.Equal(t, "Cafe X (Restaurant): no address, Houghton", places[0].Info())
}
