package challenge

import "testing"

func TestPickRandomReturnsDistinctSubset(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e", "f", "g"}

	for i := 0; i < 50; i++ {
		got := pickRandom(ids, 3)
		if len(got) != 3 {
			t.Fatalf("expected 3 ids, got %d", len(got))
		}

		seen := map[string]bool{}
		valid := map[string]bool{}
		for _, id := range ids {
			valid[id] = true
		}
		for _, id := range got {
			if seen[id] {
				t.Fatalf("duplicate id %q in selection %v", id, got)
			}
			if !valid[id] {
				t.Fatalf("unknown id %q in selection %v", id, got)
			}
			seen[id] = true
		}
	}
}

func TestPickRandomSmallCatalog(t *testing.T) {
	// Catalogue plus petit que la sélection demandée : on prend tout
	ids := []string{"a", "b"}
	got := pickRandom(ids, 3)
	if len(got) != 2 {
		t.Fatalf("expected 2 ids, got %d", len(got))
	}

	if got := pickRandom(nil, 3); len(got) != 0 {
		t.Fatalf("expected empty selection, got %v", got)
	}
}

func TestPickRandomDoesNotMutateInput(t *testing.T) {
	ids := []string{"a", "b", "c", "d"}
	pickRandom(ids, 2)
	want := []string{"a", "b", "c", "d"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("input mutated: %v", ids)
		}
	}
}
