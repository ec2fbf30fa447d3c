package index

import (
	"fmt"
	"testing"

	"github.com/cardwise/card-assistant/internal/models"
	"github.com/cardwise/card-assistant/internal/scoring"
)

func chunk(id, content string, meta models.ChunkMetadata) models.TextChunk {
	return models.TextChunk{
		ID:       id,
		Content:  content,
		Source:   models.SourceDocument,
		Metadata: meta,
	}
}

func TestIndex_AddAndLen(t *testing.T) {
	idx := New(scoring.NewScorer())

	idx.Add([]models.TextChunk{
		chunk("a", "The annual fee is ₹500 and is waived on annual spends above ₹100000.", models.ChunkMetadata{}),
		chunk("b", "Reward points accrue at two points per hundred rupees on all retail spends.", models.ChunkMetadata{}),
	})
	idx.Add([]models.TextChunk{
		chunk("c", "Lounge access is complimentary twice per quarter at domestic airports.", models.ChunkMetadata{}),
	})

	if got := idx.Len(); got != 3 {
		t.Errorf("Len after two adds: got %d, want 3", got)
	}
}

func TestIndex_Add_SkipsEmpty(t *testing.T) {
	idx := New(scoring.NewScorer())

	idx.Add([]models.TextChunk{
		chunk("", "content without an id never enters the index at all", models.ChunkMetadata{}),
		chunk("a", "   ", models.ChunkMetadata{}),
		chunk("b", "Foreign transaction markup is 3.5 percent on all international spends.", models.ChunkMetadata{}),
	})

	if got := idx.Len(); got != 1 {
		t.Errorf("Len: got %d, want 1", got)
	}
}

func TestIndex_Clear(t *testing.T) {
	idx := New(scoring.NewScorer())
	idx.Add([]models.TextChunk{
		chunk("a", "Fuel surcharge waiver applies on transactions between ₹400 and ₹5000.", models.ChunkMetadata{}),
	})

	idx.Clear()
	idx.Clear() // idempotent

	if got := idx.Len(); got != 0 {
		t.Errorf("Len after Clear: got %d, want 0", got)
	}

	stats := idx.Stats()
	if stats.TotalDocuments != 0 {
		t.Errorf("TotalDocuments after Clear: got %d, want 0", stats.TotalDocuments)
	}
	if len(stats.Sources) != 0 || len(stats.Banks) != 0 || len(stats.Cards) != 0 {
		t.Errorf("breakdowns not empty after Clear: %+v", stats)
	}
}

func TestIndex_Search_RanksAndFilters(t *testing.T) {
	idx := New(scoring.NewScorer())
	idx.Add([]models.TextChunk{
		chunk("fees", "The annual fee for this card is ₹2500, waived on spends above ₹300000 in a year.", models.ChunkMetadata{Section: "fees_and_charges"}),
		chunk("lounge", "Complimentary lounge access is offered at all major domestic airport terminals quarterly.", models.ChunkMetadata{}),
		chunk("cycle", "The statement generation date can be changed once per year through customer care.", models.ChunkMetadata{}),
	})

	results := idx.Search("what is the annual fee", 10, 0)
	if len(results) == 0 {
		t.Fatal("expected at least one result")
	}
	if results[0].Chunk.ID != "fees" {
		t.Errorf("top result: got %q, want %q", results[0].Chunk.ID, "fees")
	}
	for i := 1; i < len(results); i++ {
		if results[i].Similarity > results[i-1].Similarity {
			t.Errorf("results not sorted: %f after %f", results[i].Similarity, results[i-1].Similarity)
		}
	}
	for _, r := range results {
		if r.Similarity <= 0 {
			t.Errorf("result %q at or below floor: %f", r.Chunk.ID, r.Similarity)
		}
	}
}

func TestIndex_Search_FloorExcludes(t *testing.T) {
	idx := New(scoring.NewScorer())
	idx.Add([]models.TextChunk{
		chunk("a", "The grievance redressal officer can be reached through the published escalation matrix.", models.ChunkMetadata{}),
	})

	results := idx.Search("cashback on fuel", 3, 0.9)
	if len(results) != 0 {
		t.Errorf("expected no results above floor 0.9, got %d", len(results))
	}
}

func TestIndex_Search_TopKDefaultsToThree(t *testing.T) {
	idx := New(scoring.NewScorer())
	var chunks []models.TextChunk
	for i := range 6 {
		chunks = append(chunks, chunk(
			fmt.Sprintf("c%d", i),
			fmt.Sprintf("Reward points on grocery purchases accrue at slab %d of the published catalogue rates.", i),
			models.ChunkMetadata{},
		))
	}
	idx.Add(chunks)

	results := idx.Search("reward points on grocery", 0, 0)
	if len(results) != 3 {
		t.Errorf("topK <= 0 should default to 3, got %d results", len(results))
	}
}

func TestIndex_SearchWithMapping_BoostsHintedBank(t *testing.T) {
	idx := New(scoring.NewScorer())
	idx.Add([]models.TextChunk{
		chunk("hdfc", "Renewal charges are reversed if yearly spends cross the published milestone threshold.", models.ChunkMetadata{BankName: "HDFC Bank"}),
		chunk("other", "Renewal charges are reversed if yearly spends cross the published milestone threshold.", models.ChunkMetadata{BankName: "Axis Bank"}),
	})

	mapping := models.MappingResult{
		Category: "bank_hdfc",
		SuggestedFilters: models.SuggestedFilters{
			Banks: []string{"HDFC"},
		},
	}

	results := idx.SearchWithMapping("renewal reversal policy", mapping, 2, 0)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Chunk.ID != "hdfc" {
		t.Errorf("hinted bank should rank first, got %q", results[0].Chunk.ID)
	}
	if results[0].Similarity <= results[1].Similarity {
		t.Errorf("hinted chunk %f should outscore unhinted %f", results[0].Similarity, results[1].Similarity)
	}
}

func TestIndex_Stats(t *testing.T) {
	idx := New(scoring.NewScorer())
	idx.Add([]models.TextChunk{
		chunk("a", "Annual fee details for the Regalia product are listed in the charges schedule.", models.ChunkMetadata{BankName: "HDFC Bank", CardName: "Regalia"}),
		chunk("b", "Reward rates for the Regalia product are listed in the benefits schedule.", models.ChunkMetadata{BankName: "HDFC Bank", CardName: "Regalia"}),
		chunk("c", "Interest-free period runs up to fifty days from statement generation.", models.ChunkMetadata{}),
	})

	stats := idx.Stats()
	if stats.TotalDocuments != 3 {
		t.Errorf("TotalDocuments: got %d, want 3", stats.TotalDocuments)
	}
	if stats.Sources[string(models.SourceDocument)] != 3 {
		t.Errorf("Sources[document]: got %d, want 3", stats.Sources[string(models.SourceDocument)])
	}
	if stats.Banks["HDFC Bank"] != 2 {
		t.Errorf("Banks[HDFC Bank]: got %d, want 2", stats.Banks["HDFC Bank"])
	}
	if stats.Cards["Regalia"] != 2 {
		t.Errorf("Cards[Regalia]: got %d, want 2", stats.Cards["Regalia"])
	}
	if _, ok := stats.Banks[""]; ok {
		t.Error("empty bank name must not appear in breakdown")
	}
}
