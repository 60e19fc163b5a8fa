package types

import (
	"encoding/json"
	"testing"
)

func TestTopicScoreValidate(t *testing.T) {
	cases := []struct {
		score float64
		ok    bool
	}{
		{0, true},
		{10, true},
		{7.5, true},
		{-0.5, false},
		{10.1, false},
		{11, false},
	}
	for _, c := range cases {
		err := TopicScore{Topic: "algebra", Score: c.score}.Validate()
		if c.ok && err != nil {
			t.Fatalf("score %v: unexpected error %v", c.score, err)
		}
		if !c.ok && err == nil {
			t.Fatalf("score %v: expected validation error", c.score)
		}
	}
}

func TestMergeIncomingWins(t *testing.T) {
	current := TopicScores{{"algebra", 5}, {"geometry", 3}}
	incoming := TopicScores{{"algebra", 8}}

	merged := current.Merge(incoming)
	if len(merged) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(merged))
	}
	if merged[0].Topic != "algebra" || merged[0].Score != 8 {
		t.Fatalf("expected algebra=8 first, got %+v", merged[0])
	}
	if merged[1].Topic != "geometry" || merged[1].Score != 3 {
		t.Fatalf("expected geometry=3 preserved, got %+v", merged[1])
	}
}

func TestMergeAppendsNewTopicsInOrder(t *testing.T) {
	current := TopicScores{{"algebra", 5}}
	incoming := TopicScores{{"calculus", 2}, {"geometry", 6}}

	merged := current.Merge(incoming)
	want := TopicScores{{"algebra", 5}, {"calculus", 2}, {"geometry", 6}}
	if len(merged) != len(want) {
		t.Fatalf("expected %d topics, got %d", len(want), len(merged))
	}
	for i := range want {
		if merged[i] != want[i] {
			t.Fatalf("position %d: expected %+v, got %+v", i, want[i], merged[i])
		}
	}
}

func TestMergeLastWriteWinsWithinIncoming(t *testing.T) {
	merged := TopicScores{}.Merge(TopicScores{{"algebra", 1}, {"algebra", 9}})
	if len(merged) != 1 {
		t.Fatalf("expected 1 topic, got %d", len(merged))
	}
	if merged[0].Score != 9 {
		t.Fatalf("expected last write 9, got %v", merged[0].Score)
	}
}

func TestMergeDoesNotModifyReceiver(t *testing.T) {
	current := TopicScores{{"algebra", 5}}
	current.Merge(TopicScores{{"algebra", 9}})
	if current[0].Score != 5 {
		t.Fatalf("receiver mutated: %v", current[0].Score)
	}
}

func TestMarshalWireShape(t *testing.T) {
	s := TopicScores{{"mathematics", 8}, {"linear algebra", 6.5}}
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `[{"mathematics":8},{"linear algebra":6.5}]`
	if string(b) != want {
		t.Fatalf("expected %s, got %s", want, b)
	}
}

func TestUnmarshalPreservesEncounterOrder(t *testing.T) {
	var s TopicScores
	raw := `[{"geometry": 3, "algebra": 5}, {"calculus": 1}]`
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := TopicScores{{"geometry", 3}, {"algebra", 5}, {"calculus", 1}}
	if len(s) != len(want) {
		t.Fatalf("expected %d topics, got %d", len(want), len(s))
	}
	for i := range want {
		if s[i] != want[i] {
			t.Fatalf("position %d: expected %+v, got %+v", i, want[i], s[i])
		}
	}
}

func TestUnmarshalDuplicateKeepsLast(t *testing.T) {
	var s TopicScores
	raw := `[{"algebra": 2}, {"algebra": 7}]`
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(s) != 1 || s[0].Score != 7 {
		t.Fatalf("expected single algebra=7, got %+v", s)
	}
}

func TestUnmarshalRejectsNonArray(t *testing.T) {
	var s TopicScores
	if err := json.Unmarshal([]byte(`{"algebra": 2}`), &s); err == nil {
		t.Fatalf("expected error for non-array input")
	}
	if err := json.Unmarshal([]byte(`[{"algebra": "high"}]`), &s); err == nil {
		t.Fatalf("expected error for non-numeric score")
	}
}

func TestScanRoundTrip(t *testing.T) {
	orig := TopicScores{{"algebra", 7.5}, {"geometry", 3}}
	v, err := orig.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}

	var got TopicScores
	if err := got.Scan(v); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(got) != len(orig) {
		t.Fatalf("expected %d topics, got %d", len(orig), len(got))
	}
	for i := range orig {
		if got[i] != orig[i] {
			t.Fatalf("position %d: expected %+v, got %+v", i, orig[i], got[i])
		}
	}
}

func TestScanNil(t *testing.T) {
	got := TopicScores{{"algebra", 1}}
	if err := got.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil scores, got %+v", got)
	}
}
