package domain

import "testing"

func TestComputeValueQueryWorld(t *testing.T) {
	w := World{ID: "w1", Title: "Shop", OwnerWallet: "spark1abc"}
	if got := ComputeValue(w); got != 1000 {
		t.Fatalf("ComputeValue = %d, want 1000", got)
	}
}

func TestComputeValueSlotWorld(t *testing.T) {
	tests := []struct {
		name        string
		archetypeID string
		rarity      float64
		want        int
	}{
		{"triple slot-forge", "slot-forge", 3.0, 1000 + 3000},
		{"paired physics-world", "physics-world", 1.8, 1000 + 2160},
		{"mixed world-stitcher", "world-stitcher", 1.0, 1000 + 1800},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := World{
				ID:          "w1",
				ArchetypeID: tc.archetypeID,
				Slot:        &SlotProvenance{RarityMultiplier: tc.rarity},
			}
			if got := ComputeValue(w); got != tc.want {
				t.Fatalf("ComputeValue = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestComputeValueCountsPages(t *testing.T) {
	w := World{
		ID:    "w1",
		Tools: []string{"chart", "gallery"},
		Pages: []Page{
			{ID: "p1", Tools: []string{"chart", "map", "feed"}},
			{ID: "p2"},
		},
	}
	// Creation tools add nothing; each page adds 100 plus 100 per tool.
	want := 1000 + (100 + 300) + 100
	if got := ComputeValue(w); got != want {
		t.Fatalf("ComputeValue = %d, want %d", got, want)
	}
}

func TestPageValue(t *testing.T) {
	p := Page{Tools: []string{"chart", "map"}}
	if got := PageValue(p); got != 300 {
		t.Fatalf("PageValue = %d, want 300", got)
	}
}

func TestToolValue(t *testing.T) {
	if got := ToolValue("world-trading"); got != 900 {
		t.Fatalf("ToolValue(world-trading) = %d, want 900", got)
	}
	if got := ToolValue("something-new"); got != 300 {
		t.Fatalf("ToolValue default = %d, want 300", got)
	}
}

func TestSuggestedListingPrice(t *testing.T) {
	w := World{
		Tools: []string{"store", "chart"},
		Pages: []Page{{Tools: []string{"content-hub"}}},
	}
	if got := SuggestedListingPrice(w); got != 700+400+250 {
		t.Fatalf("SuggestedListingPrice = %d, want %d", got, 700+400+250)
	}
	if got := SuggestedListingPrice(World{}); got != 100 {
		t.Fatalf("SuggestedListingPrice floor = %d, want 100", got)
	}
}
