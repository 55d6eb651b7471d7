package metrics

import "testing"

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"the", 1},
		{"day", 1},
		{"hello", 2},
		{"policy", 3},
		{"escalating", 4},
		{"frustrated", 2},
		{"tree", 1},
		{"", 1},
		{"123", 1},
	}

	for _, test := range tests {
		t.Run(test.word, func(t *testing.T) {
			got := countSyllables(test.word)
			if got != test.want {
				t.Errorf("countSyllables(%q) = %d, want %d", test.word, got, test.want)
			}
		})
	}
}

func TestReadability(t *testing.T) {
	t.Run("plain short sentences read easy", func(t *testing.T) {
		got := readability("The cat sat on the mat. The dog ran to the tree.")
		if got != 100 {
			t.Errorf("readability = %d, want 100", got)
		}
	})

	t.Run("dense prose reads harder", func(t *testing.T) {
		simple := readability("The cat sat on the mat. The dog ran to the tree.")
		dense := readability("Notwithstanding the aforementioned contractual obligations, the organization unilaterally determined that remuneration adjustments necessitated comprehensive administrative reevaluation procedures.")
		if dense >= simple {
			t.Errorf("dense prose readability %d should be below simple prose %d", dense, simple)
		}
	})

	t.Run("too short scores zero", func(t *testing.T) {
		if got := readability("Too short."); got != 0 {
			t.Errorf("readability = %d, want 0", got)
		}
	})
}
