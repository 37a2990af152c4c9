package policy

import "testing"

func TestPointsFor_FixedTable(t *testing.T) {
	t.Parallel()

	expected := map[Category]int{
		CategoryCallOutPrior:      3,
		CategoryCallOutAfterStart: 8,
		CategoryNoCallNoShow:      8,
		CategoryTardyShort:        1,
		CategoryTardyLong:         2,
		CategoryEarlyDepartShort:  1,
		CategoryEarlyDepartLong:   2,
		CategoryLateReturnShort:   1,
		CategoryLateReturnLong:    2,
	}

	categories := Categories()
	if len(categories) != len(expected) {
		t.Fatalf("expected %d categories, got %d", len(expected), len(categories))
	}

	for _, c := range categories {
		want, ok := expected[c]
		if !ok {
			t.Fatalf("unexpected category %s", c)
		}
		if got := PointsFor(c); got != want {
			t.Errorf("PointsFor(%s) = %d, want %d", c, got, want)
		}
		if Label(c) == "" {
			t.Errorf("Label(%s) is empty", c)
		}
		if !Valid(c) {
			t.Errorf("Valid(%s) = false", c)
		}
	}
}

func TestPointsFor_UnknownCategory(t *testing.T) {
	t.Parallel()

	if Valid(Category("bogus")) {
		t.Fatal("expected bogus category to be invalid")
	}
	if got := PointsFor(Category("bogus")); got != 0 {
		t.Fatalf("expected 0 points for unknown category, got %d", got)
	}
}

func TestDefaultCategory_IsValid(t *testing.T) {
	t.Parallel()

	if !Valid(DefaultCategory) {
		t.Fatal("DefaultCategory must be a defined category")
	}
}
