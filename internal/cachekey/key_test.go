package cachekey_test

import (
	"testing"

	"github.com/rohmanhakim/parks-explorer/internal/cachekey"
)

func TestBuildKey_NoParams(t *testing.T) {
	key := cachekey.BuildKey("https://www.nps.gov/index.htm", nil)
	if key != "https://www.nps.gov/index.htm" {
		t.Errorf("expected endpoint as key, got %q", key)
	}

	key = cachekey.BuildKey("https://www.nps.gov/index.htm", map[string]string{})
	if key != "https://www.nps.gov/index.htm" {
		t.Errorf("expected endpoint as key for empty map, got %q", key)
	}
}

func TestBuildKey_ParamsSerializedInNameOrder(t *testing.T) {
	key := cachekey.BuildKey("http://www.mapquestapi.com/search/v2/radius", map[string]string{
		"origin": "49931",
		"radius": "10",
		"key":    "secret",
	})
	want := "http://www.mapquestapi.com/search/v2/radius_key_secret_origin_49931_radius_10"
	if key != want {
		t.Errorf("got %q, want %q", key, want)
	}
}

func TestBuildKey_OrderIndependent(t *testing.T) {
	// Two logically identical requests built in different orders must
	// collapse to the same key.
	first := map[string]string{}
	first["origin"] = "49931"
	first["radius"] = "10"
	first["maxMatches"] = "10"

	second := map[string]string{}
	second["maxMatches"] = "10"
	second["radius"] = "10"
	second["origin"] = "49931"

	endpoint := "http://www.mapquestapi.com/search/v2/radius"
	if cachekey.BuildKey(endpoint, first) != cachekey.BuildKey(endpoint, second) {
		t.Error("identical parameter mappings produced different keys")
	}
}

func TestBuildKey_DifferingValuesYieldDifferentKeys(t *testing.T) {
	endpoint := "http://www.mapquestapi.com/search/v2/radius"
	a := cachekey.BuildKey(endpoint, map[string]string{"origin": "49931"})
	b := cachekey.BuildKey(endpoint, map[string]string{"origin": "82190"})
	if a == b {
		t.Error("different parameter values produced the same key")
	}

	c := cachekey.BuildKey(endpoint, map[string]string{"origin": "49931", "radius": "10"})
	if a == c {
		t.Error("different parameter sets produced the same key")
	}
}

func TestBuildKey_DifferentEndpointsYieldDifferentKeys(t *testing.T) {
	params := map[string]string{"origin": "49931"}
	a := cachekey.BuildKey("http://a.example.com/search", params)
	b := cachekey.BuildKey("http://b.example.com/search", params)
	if a == b {
		t.Error("different endpoints produced the same key")
	}
}
