package questionbank_test

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"testing"

	"github.com/stemsi/safetrain-backend/internal/questionbank"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func TestEveryTopicHasValidPool(t *testing.T) {
	for _, topic := range questionbank.Topics() {
		pool := questionbank.Lookup(topic)
		if len(pool) == 0 {
			t.Fatalf("topic %q has an empty pool", topic)
		}

		seen := make(map[string]bool)
		for _, tpl := range pool {
			if seen[tpl.Text] {
				t.Errorf("topic %q: duplicate template %q", topic, tpl.Text)
			}
			seen[tpl.Text] = true

			if len(tpl.Answers) < 2 {
				t.Errorf("topic %q: %q has fewer than 2 answers", topic, tpl.Text)
			}
			if tpl.Points < 1 {
				t.Errorf("topic %q: %q has non-positive points", topic, tpl.Text)
			}

			correct := 0
			for _, a := range tpl.Answers {
				if a.Correct {
					correct++
				}
			}
			switch tpl.Type {
			case questionbank.QuestionTypeSingle:
				if correct != 1 {
					t.Errorf("topic %q: single question %q has %d correct answers", topic, tpl.Text, correct)
				}
			case questionbank.QuestionTypeMultiple:
				if correct < 1 {
					t.Errorf("topic %q: multiple question %q has no correct answer", topic, tpl.Text)
				}
			default:
				t.Errorf("topic %q: unexpected type %q", topic, tpl.Type)
			}
		}
	}
}

func TestLookupUnknownTopicFallsBackToGeneralPool(t *testing.T) {
	safety := questionbank.Lookup(questionbank.TopicOccupationalSafety)
	firstAid := questionbank.Lookup(questionbank.TopicFirstAid)
	want := append(append([]questionbank.Template{}, safety[:3]...), firstAid[:2]...)

	for _, topic := range []questionbank.Topic{"", "chemistry", "FIRST-AID"} {
		got := questionbank.Lookup(topic)
		if len(got) != 5 {
			t.Fatalf("topic %q: expected 5 templates, got %d", topic, len(got))
		}
		for i := range want {
			if got[i].Text != want[i].Text {
				t.Errorf("topic %q [%d]: expected %q, got %q", topic, i, want[i].Text, got[i].Text)
			}
		}
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	pool := questionbank.Lookup(questionbank.TopicFireSafety)
	original := pool[0].Text
	originalAnswer := pool[0].Answers[0].Text

	pool[0].Text = "mutated"
	pool[0].Answers[0].Text = "mutated"

	again := questionbank.Lookup(questionbank.TopicFireSafety)
	if again[0].Text != original {
		t.Errorf("catalog mutated through Lookup result: %q", again[0].Text)
	}
	if again[0].Answers[0].Text != originalAnswer {
		t.Errorf("catalog answers mutated through Lookup result: %q", again[0].Answers[0].Text)
	}
}

func TestTopicName(t *testing.T) {
	if got := questionbank.TopicFirstAid.Name(); got != "first aid" {
		t.Errorf("expected %q, got %q", "first aid", got)
	}
	if got := questionbank.Topic("unknown").Name(); got != "general topics" {
		t.Errorf("expected general label, got %q", got)
	}
	if questionbank.Topic("unknown").Known() {
		t.Error("expected unknown topic to be reported as not known")
	}
}

func TestSampleLength(t *testing.T) {
	for _, topic := range append(questionbank.Topics(), "unknown") {
		pool := questionbank.Lookup(topic)
		size := len(pool)

		for _, count := range []int{-3, 0, 1, size - 1, size, size + 1, 2*size + 3, 50} {
			got := questionbank.Sample(pool, count, seeded())

			want := 0
			if count > 0 {
				copies := (count + size - 1) / size
				want = min(count, copies*size)
			}
			if len(got) != want {
				t.Errorf("topic %q count %d: expected %d templates, got %d", topic, count, want, len(got))
			}
		}
	}
}

func TestSampleWithoutReplacementWithinPoolSize(t *testing.T) {
	pool := questionbank.Lookup(questionbank.TopicOccupationalSafety)

	for seed := uint64(0); seed < 20; seed++ {
		got := questionbank.Sample(pool, len(pool), rand.New(rand.NewPCG(seed, seed+1)))
		seen := make(map[string]bool)
		for _, tpl := range got {
			if seen[tpl.Text] {
				t.Fatalf("seed %d: template %q drawn twice", seed, tpl.Text)
			}
			seen[tpl.Text] = true
		}
	}
}

// Requests larger than the pool repeat templates; this mirrors the
// behaviour callers already rely on.
func TestSampleBeyondPoolSizeDuplicatesTemplates(t *testing.T) {
	pool := questionbank.Lookup(questionbank.TopicFirstAid)
	count := len(pool) + 2

	got := questionbank.Sample(pool, count, seeded())

	counts := make(map[string]int)
	for _, tpl := range got {
		counts[tpl.Text]++
	}

	duplicated := false
	for text, n := range counts {
		if n > 2 {
			t.Errorf("template %q drawn %d times from a pool replicated twice", text, n)
		}
		if n > 1 {
			duplicated = true
		}
	}
	if !duplicated {
		t.Error("expected at least one duplicated template")
	}

	questions := questionbank.Materialize(got, nil)
	ids := make(map[string]bool)
	for _, q := range questions {
		if ids[q.ID] {
			t.Errorf("duplicate id %q", q.ID)
		}
		ids[q.ID] = true
	}
}

func TestSampleDeterministicWithSeed(t *testing.T) {
	pool := questionbank.Lookup(questionbank.TopicExplosives)

	a := questionbank.Sample(pool, 3, seeded())
	b := questionbank.Sample(pool, 3, seeded())
	for i := range a {
		if a[i].Text != b[i].Text {
			t.Fatalf("[%d]: expected same draw for same seed, got %q and %q", i, a[i].Text, b[i].Text)
		}
	}
}

func TestSampleEmptyPool(t *testing.T) {
	if got := questionbank.Sample(nil, 5, nil); len(got) != 0 {
		t.Errorf("expected no templates from empty pool, got %d", len(got))
	}
}

func TestMaterialize(t *testing.T) {
	templates := questionbank.Lookup(questionbank.TopicWorkAtHeight)
	templates[1].Points = 0

	n := 0
	questions := questionbank.Materialize(templates, func() string {
		n++
		return fmt.Sprintf("%04d", n)
	})

	if len(questions) != len(templates) {
		t.Fatalf("expected %d questions, got %d", len(templates), len(questions))
	}

	idPattern := regexp.MustCompile(`^q_\d+_\d{4}$`)
	for i, q := range questions {
		if q.Text != templates[i].Text {
			t.Errorf("[%d]: order not preserved, expected %q, got %q", i, templates[i].Text, q.Text)
		}
		if !idPattern.MatchString(q.ID) {
			t.Errorf("[%d]: unexpected id format %q", i, q.ID)
		}
		if want := fmt.Sprintf("q_%d_%04d", i+1, i+1); q.ID != want {
			t.Errorf("[%d]: expected id %q, got %q", i, want, q.ID)
		}
		if q.Type != templates[i].Type {
			t.Errorf("[%d]: expected type %q, got %q", i, templates[i].Type, q.Type)
		}
		for j, a := range q.Answers {
			if want := fmt.Sprintf("%s_a%d", q.ID, j+1); a.ID != want {
				t.Errorf("[%d][%d]: expected answer id %q, got %q", i, j, want, a.ID)
			}
			if a.Text != templates[i].Answers[j].Text || a.IsCorrect != templates[i].Answers[j].Correct {
				t.Errorf("[%d][%d]: answer order or flag changed", i, j)
			}
		}
	}

	if questions[1].Points != 1 {
		t.Errorf("expected points to default to 1, got %d", questions[1].Points)
	}
}

func TestMaterializeDefaultIDsAreDistinct(t *testing.T) {
	pool := questionbank.Lookup(questionbank.TopicUndergroundMining)
	questions := questionbank.Materialize(questionbank.Sample(pool, 40, seeded()), nil)

	ids := make(map[string]bool, len(questions))
	for _, q := range questions {
		if ids[q.ID] {
			t.Fatalf("duplicate id %q", q.ID)
		}
		ids[q.ID] = true
	}
}

func TestGenerator(t *testing.T) {
	gen := questionbank.NewGenerator(seeded(), func() string { return "abcd1234" })

	got := gen.Generate("no-such-topic", 4)
	if len(got) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(got))
	}

	general := make(map[string]bool)
	for _, tpl := range questionbank.Lookup("no-such-topic") {
		general[tpl.Text] = true
	}
	for i, q := range got {
		if !general[q.Text] {
			t.Errorf("[%d]: %q is not from the general pool", i, q.Text)
		}
		if want := fmt.Sprintf("q_%d_abcd1234", i+1); q.ID != want {
			t.Errorf("[%d]: expected id %q, got %q", i, want, q.ID)
		}
	}

	if got := gen.Generate(questionbank.TopicOther, 0); len(got) != 0 {
		t.Errorf("expected no questions for zero count, got %d", len(got))
	}
}
