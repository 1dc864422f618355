package reviews

import (
	"testing"

	"eventease/models"
)

func TestAverageEmpty(t *testing.T) {
	avg, count := Average(nil)
	if avg != 0 || count != 0 {
		t.Fatalf("empty set: avg=%v count=%d", avg, count)
	}
}

func TestAverage(t *testing.T) {
	list := []models.Review{
		{Rating: 5},
		{Rating: 4},
		{Rating: 3},
	}
	avg, count := Average(list)
	if count != 3 {
		t.Fatalf("count = %d", count)
	}
	if avg != 4 {
		t.Fatalf("avg = %v, want 4", avg)
	}
}

func TestAverageFractional(t *testing.T) {
	list := []models.Review{{Rating: 5}, {Rating: 4}}
	avg, _ := Average(list)
	if avg != 4.5 {
		t.Fatalf("avg = %v, want 4.5", avg)
	}
}
