package domain

import (
	"errors"
	"testing"
)

func TestCategories_FixedEnumeration(t *testing.T) {
	cats := Categories()
	if len(cats) != 10 {
		t.Fatalf("expected 10 categories, got %d", len(cats))
	}
	for _, c := range cats {
		if !c.IsValid() {
			t.Fatalf("category %q should be valid", c)
		}
	}

	cats[0] = "mutated"
	if Categories()[0] != CategoryArtificialIntelligence {
		t.Fatalf("Categories must return a copy")
	}
}

func TestParseCategory(t *testing.T) {
	if c, err := ParseCategory("Machine Learning"); err != nil || c != CategoryMachineLearning {
		t.Fatalf("unexpected result: %q %v", c, err)
	}
	for _, bad := range []string{"", "machine learning", "Machine Learning ", "Astrology"} {
		if _, err := ParseCategory(bad); !errors.Is(err, ErrInvalidCategory) {
			t.Fatalf("ParseCategory(%q): expected ErrInvalidCategory, got %v", bad, err)
		}
	}
}

func TestChatMessage_Involves(t *testing.T) {
	m := &ChatMessage{SenderID: 1, RecipientID: 2}
	if !m.Involves(1, 2) || !m.Involves(2, 1) {
		t.Fatalf("message should involve 1 and 2 in both orders")
	}
	if m.Involves(1, 3) {
		t.Fatalf("message should not involve 3")
	}
}
