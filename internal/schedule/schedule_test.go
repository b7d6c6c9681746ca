package schedule

import "testing"

func TestBuildNoDuplicateTeamPerDay(t *testing.T) {
	teams := []string{"Aurora", "Bears", "Comets", "Drifters", "Embers", "Falcons"}

	t.Run("even team count", func(t *testing.T) {
		days := Build(teams, 2, 0.6)
		for i, d := range days {
			seen := make(map[string]bool)
			for _, m := range d {
				if seen[m.Home] || seen[m.Away] {
					t.Fatalf("day %d has a repeated team: %+v", i, d)
				}
				seen[m.Home] = true
				seen[m.Away] = true
			}
		}
	})

	t.Run("odd team count uses a ghost bye", func(t *testing.T) {
		odd := append([]string(nil), teams...)
		odd = append(odd, "Glaciers")
		days := Build(odd, 1, 0.6)
		for i, d := range days {
			seen := make(map[string]bool)
			for _, m := range d {
				if seen[m.Home] || seen[m.Away] {
					t.Fatalf("day %d has a repeated team: %+v", i, d)
				}
				seen[m.Home] = true
				seen[m.Away] = true
			}
		}
	})
}

func TestBuildGamesPerMatchup(t *testing.T) {
	teams := []string{"Aurora", "Bears", "Comets", "Drifters"}
	days := Build(teams, 2, 1.0)

	counts := make(map[string]int)
	for _, d := range days {
		for _, m := range d {
			counts[m.Home+"@"+m.Away]++
		}
	}

	total := 0
	for _, d := range days {
		total += len(d)
	}

	expected := len(teams) * (len(teams) - 1)
	if total != expected {
		t.Errorf("expected %d total matchups for %d teams x2 passes, got %d", expected, len(teams), total)
	}
}

func TestBuildClampsDensity(t *testing.T) {
	teams := []string{"Aurora", "Bears", "Comets", "Drifters"}
	low := Build(teams, 1, 0.0)
	high := Build(teams, 1, 5.0)

	if len(low) == 0 || len(high) == 0 {
		t.Fatal("expected non-empty schedules even with out-of-range density")
	}
}
