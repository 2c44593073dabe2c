package pets

import "testing"

func TestSearch(t *testing.T) {
	all := []Pet{
		{ID: "1", Name: "Biscuit", Species: SpeciesDog, Breed: "Beagle", Location: "Austin"},
		{ID: "2", Name: "Mochi", Species: SpeciesCat, Location: "Denver"},
		{ID: "3", Name: "Clover", Species: SpeciesRabbit, Location: "Austin"},
	}

	got := Search("mochi", all)
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("Search(mochi) = %+v", got)
	}

	got = Search("austin", all)
	if len(got) != 2 {
		t.Errorf("Search(austin) returned %d pets, want 2", len(got))
	}

	if got := Search("  ", all); len(got) != 3 || got[0].ID != "1" {
		t.Errorf("empty query should return all pets in order, got %+v", got)
	}
	if got := Search("zzzz", all); len(got) != 0 {
		t.Errorf("Search(zzzz) = %+v, want none", got)
	}
}
