/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

package catalog

/*****************************************************************************************************************/

import (
	"math"
	"testing"

	"github.com/nks676/startracker/pkg/star"
)

/*****************************************************************************************************************/

func TestSpatialIndexNearestFindsClosestStar(t *testing.T) {
	stars := []star.Star{
		star.NewFromEquatorial(1, 10, 10, 5.0),
		star.NewFromEquatorial(2, 50, -20, 3.0),
		star.NewFromEquatorial(3, 200, 60, 7.0),
	}

	idx, err := NewSpatialIndex(stars)
	if err != nil {
		t.Fatalf("NewSpatialIndex returned an error: %v", err)
	}

	target := star.NewFromEquatorial(0, 10.001, 10.001, 0)

	id, distance := idx.Nearest(target.Direction)
	if id != 1 {
		t.Errorf("expected nearest star ID 1, got %d", id)
	}
	if distance > 1e-3 {
		t.Errorf("expected a small distance to the near-identical direction, got %f", distance)
	}
}

/*****************************************************************************************************************/

func TestDeduplicateDropsDuplicatesKeepingBrightest(t *testing.T) {
	stars := []star.Star{
		star.NewFromEquatorial(1, 10, 10, 5.0),  // fainter duplicate of 2
		star.NewFromEquatorial(2, 10, 10, 2.0),  // brighter
		star.NewFromEquatorial(3, 80, -40, 4.0), // distinct
	}

	deduped, err := Deduplicate(stars, 1.0/3600*(math.Pi/180))
	if err != nil {
		t.Fatalf("Deduplicate returned an error: %v", err)
	}

	if len(deduped) != 2 {
		t.Fatalf("expected 2 stars after deduplication, got %d", len(deduped))
	}

	var keptBrightest bool

	for _, s := range deduped {
		if s.ID == 1 {
			t.Errorf("expected fainter duplicate (ID 1) to be dropped")
		}
		if s.ID == 2 {
			keptBrightest = true
		}
	}

	if !keptBrightest {
		t.Errorf("expected brighter duplicate (ID 2) to be kept")
	}
}

/*****************************************************************************************************************/

func TestDeduplicateKeepsDistinctStars(t *testing.T) {
	stars := []star.Star{
		star.NewFromEquatorial(1, 10, 10, 5.0),
		star.NewFromEquatorial(2, 170, -60, 2.0),
	}

	deduped, err := Deduplicate(stars, 1.0/3600*(math.Pi/180))
	if err != nil {
		t.Fatalf("Deduplicate returned an error: %v", err)
	}

	if len(deduped) != 2 {
		t.Errorf("expected both distinct stars to be kept, got %d", len(deduped))
	}
}

/*****************************************************************************************************************/

func TestDeduplicateHandlesEmptyInput(t *testing.T) {
	deduped, err := Deduplicate(nil, 1e-6)
	if err != nil {
		t.Fatalf("Deduplicate returned an error for empty input: %v", err)
	}
	if len(deduped) != 0 {
		t.Errorf("expected no stars, got %d", len(deduped))
	}
}

/*****************************************************************************************************************/
