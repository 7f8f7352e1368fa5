package services

import (
	"airlift-load-service/internal/domain"
	"errors"
	"testing"
)

func testItem(id int64, priority int, weight float64) domain.CargoItem {
	return domain.CargoItem{
		ID:       id,
		Type:     domain.ItemWaterCase,
		Priority: priority,
		WeightKg: weight,
		LengthM:  0.45,
		WidthM:   0.30,
		HeightM:  0.25,
	}
}

func TestOrderByPriorityThreeKeys(t *testing.T) {
	items := []domain.CargoItem{
		testItem(4, 5, 10),
		testItem(3, 5, 10), // duplicate of 4 except submission order
		testItem(2, 5, 20), // heavier wins within priority
		testItem(1, 9, 1),  // highest priority wins regardless of weight
	}

	ordered, err := OrderByPriority(items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantIDs := []int64{1, 2, 3, 4}
	for i, want := range wantIDs {
		if ordered[i].ID != want {
			t.Fatalf("position %d: got ID %d, want %d (order %+v)", i, ordered[i].ID, want, ordered)
		}
	}
}

func TestOrderByPriorityDoesNotMutateInput(t *testing.T) {
	items := []domain.CargoItem{
		testItem(1, 2, 10),
		testItem(2, 9, 10),
	}

	if _, err := OrderByPriority(items); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items[0].ID != 1 {
		t.Fatal("input slice was reordered")
	}
}

func TestOrderByPriorityRejectsMalformedItems(t *testing.T) {
	bad := testItem(7, 5, 10)
	bad.WeightKg = -3

	_, err := OrderByPriority([]domain.CargoItem{testItem(1, 5, 10), bad})
	if err == nil {
		t.Fatal("expected validation error")
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.ItemID != 7 {
		t.Fatalf("error should name item 7, got %d", verr.ItemID)
	}
}
