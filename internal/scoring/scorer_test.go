package scoring

import (
	"strings"
	"testing"

	"github.com/cardwise/card-assistant/internal/models"
)

func TestScorer_Score_Empty(t *testing.T) {
	scorer := NewScorer()

	if got := scorer.Score("", "some content here", models.ChunkMetadata{}); got != 0 {
		t.Errorf("empty query: got %f, want 0", got)
	}
	if got := scorer.Score("annual fee", "", models.ChunkMetadata{}); got != 0 {
		t.Errorf("empty content: got %f, want 0", got)
	}
	if got := scorer.Score("   ", "content", models.ChunkMetadata{}); got != 0 {
		t.Errorf("whitespace query: got %f, want 0", got)
	}
}

func TestScorer_Score_Bounds(t *testing.T) {
	scorer := NewScorer()

	// Stack every signal: exact phrase, full token overlap, card and bank
	// mention, section mention, feature pattern, currency figures.
	query := "hdfc regalia annual fee charges"
	content := "HDFC Regalia annual fee charges: the annual fee is ₹2500 plus " +
		"renewal charges waived on spends above ₹300000. " +
		strings.Repeat("Additional fee details apply. ", 5)
	meta := models.ChunkMetadata{
		CardName: "Regalia",
		BankName: "HDFC Bank",
		Section:  "charges",
	}

	got := scorer.Score(query, content, meta)
	if got < 0 || got > 1 {
		t.Fatalf("score %f out of [0,1]", got)
	}
	if got != 1.0 {
		t.Errorf("fully stacked signals should clamp to 1.0, got %f", got)
	}
}

func TestScorer_Score_ExactPhraseBeatsDisjoint(t *testing.T) {
	scorer := NewScorer()
	query := "lounge access benefits"

	matching := "Complimentary lounge access benefits are available at all domestic airports for primary cardholders."
	disjoint := "The billing cycle closes on the fifth calendar day of every month without exception or deviation."

	hit := scorer.Score(query, matching, models.ChunkMetadata{})
	miss := scorer.Score(query, disjoint, models.ChunkMetadata{})

	if hit <= miss {
		t.Errorf("exact phrase chunk scored %f, disjoint chunk %f; want hit > miss", hit, miss)
	}
	if miss > 0.2 {
		t.Errorf("disjoint chunk scored %f, want near zero", miss)
	}
}

func TestScorer_Score_MetadataBoosts(t *testing.T) {
	scorer := NewScorer()
	query := "what are the hdfc regalia charges"
	content := "Joining charges and renewal charges are detailed in the cardmember agreement for this product line."

	plain := scorer.Score(query, content, models.ChunkMetadata{})
	withMeta := scorer.Score(query, content, models.ChunkMetadata{
		CardName: "Regalia",
		BankName: "HDFC",
	})

	if withMeta <= plain {
		t.Errorf("metadata mention did not raise score: plain %f, with meta %f", plain, withMeta)
	}
}

func TestScorer_Score_SectionLabelWords(t *testing.T) {
	scorer := NewScorer()
	query := "what are the annual fees and charges"
	content := "An annual charge of ₹500 applies from the second year onward unless spends cross the waiver threshold."

	plain := scorer.Score(query, content, models.ChunkMetadata{})
	tagged := scorer.Score(query, content, models.ChunkMetadata{Section: "fees_and_charges"})

	// Splitter sections are snake_case multi-word labels; individual label
	// words in the query must still trigger the boost.
	if tagged <= plain {
		t.Errorf("section label did not raise score: plain %f, tagged %f", plain, tagged)
	}

	unrelated := scorer.Score(query, content, models.ChunkMetadata{Section: "travel"})
	if unrelated != plain {
		t.Errorf("unrelated section changed score: plain %f, got %f", plain, unrelated)
	}
}

func TestScorer_Score_ShortContentPenalized(t *testing.T) {
	scorer := NewScorer()
	query := "reward points"

	short := "Reward points."
	long := "Reward points accrue at four points per two hundred rupees spent on retail purchases, excluding fuel and wallet loads."

	if s, l := scorer.Score(query, short, models.ChunkMetadata{}), scorer.Score(query, long, models.ChunkMetadata{}); s >= l {
		t.Errorf("short noisy chunk %f should score below substantial chunk %f", s, l)
	}
}

func TestScorer_Score_Deterministic(t *testing.T) {
	scorer := NewScorer()
	query := "cashback on groceries"
	content := "Earn 5% cashback on groceries and department store spends up to a monthly cap."
	meta := models.ChunkMetadata{BankName: "Axis Bank", Section: "rewards_and_benefits"}

	first := scorer.Score(query, content, meta)
	for range 10 {
		if got := scorer.Score(query, content, meta); got != first {
			t.Fatalf("score changed across calls: %f then %f", first, got)
		}
	}
}

func TestScorer_Score_FuzzyTokens(t *testing.T) {
	scorer := NewScorer()

	// "rewrds" has no containment match but sits within edit distance of
	// "rewards".
	typo := scorer.Score("rewrds", "rewards catalogue with transfer partners and airline miles conversions", models.ChunkMetadata{})
	if typo == 0 {
		t.Error("close misspelling should still produce token overlap")
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "Strips punctuation and short words",
			input: "What is the annual fee?",
			want:  []string{"what", "the", "annual", "fee"},
		},
		{
			name:  "Empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "Only short words",
			input: "is it ok",
			want:  nil,
		},
		{
			name:  "Brackets and quotes removed",
			input: `"Regalia" (HDFC) card!`,
			want:  []string{"regalia", "hdfc", "card"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Tokenize(test.input)
			if len(got) != len(test.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", test.input, got, test.want)
			}
			for i := range got {
				if got[i] != test.want[i] {
					t.Errorf("token %d: got %q, want %q", i, got[i], test.want[i])
				}
			}
		})
	}
}
