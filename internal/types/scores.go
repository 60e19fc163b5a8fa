package types

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/yungbote/quizdeck-backend/internal/apierr"
)

const (
	ScoreMin = 0
	ScoreMax = 10
)

// TopicScore is a single proficiency entry. Scores live on a 0-10 scale.
type TopicScore struct {
	Topic string
	Score float64
}

func (ts TopicScore) Validate() error {
	if ts.Score < ScoreMin || ts.Score > ScoreMax {
		return apierr.Validation("Score must be between 0 and 10")
	}
	return nil
}

// TopicScores is an ordered topic->score mapping, unique by topic. The wire
// shape is the client's list of single-pair objects ([{"algebra": 7.5}]), so
// the JSON codec below preserves that exact layout while the in-memory
// representation stays a flat ordered slice.
type TopicScores []TopicScore

// Get returns the score for topic and whether it is present.
func (s TopicScores) Get(topic string) (float64, bool) {
	for _, ts := range s {
		if ts.Topic == topic {
			return ts.Score, true
		}
	}
	return 0, false
}

// Merge combines incoming into s: topics already present keep their position
// and take the incoming score, topics only in s are preserved, new topics
// append in encounter order. A topic repeated in incoming resolves
// last-write-wins. The receiver is not modified.
func (s TopicScores) Merge(incoming TopicScores) TopicScores {
	merged := make(TopicScores, 0, len(s)+len(incoming))
	index := make(map[string]int, len(s)+len(incoming))

	for _, ts := range s {
		if i, ok := index[ts.Topic]; ok {
			merged[i].Score = ts.Score
			continue
		}
		index[ts.Topic] = len(merged)
		merged = append(merged, ts)
	}
	for _, ts := range incoming {
		if i, ok := index[ts.Topic]; ok {
			merged[i].Score = ts.Score
			continue
		}
		index[ts.Topic] = len(merged)
		merged = append(merged, ts)
	}
	return merged
}

// Upsert returns a copy of s with topic set to score, appended when new.
func (s TopicScores) Upsert(topic string, score float64) TopicScores {
	return s.Merge(TopicScores{{Topic: topic, Score: score}})
}

// MarshalJSON emits the list-of-single-pair shape the client stores:
// [{"topic a": 1.5}, {"topic b": 3}].
func (s TopicScores) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, ts := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(ts.Topic)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(ts.Score)
		if err != nil {
			return nil, err
		}
		buf.WriteByte('{')
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts a list of objects, each holding one or more
// topic->score pairs. It decodes at the token level so the key order inside
// multi-pair objects survives; duplicate topics keep the last value seen.
func (s *TopicScores) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*s = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return fmt.Errorf("topic_scores: expected array, got %v", tok)
	}

	out := make(TopicScores, 0)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); !ok || d != '{' {
			return fmt.Errorf("topic_scores: expected object, got %v", tok)
		}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return err
			}
			topic, ok := keyTok.(string)
			if !ok {
				return fmt.Errorf("topic_scores: expected string key, got %v", keyTok)
			}
			valTok, err := dec.Token()
			if err != nil {
				return err
			}
			num, ok := valTok.(json.Number)
			if !ok {
				return fmt.Errorf("topic_scores: score for %q is not numeric", topic)
			}
			score, err := num.Float64()
			if err != nil {
				return fmt.Errorf("topic_scores: score for %q: %w", topic, err)
			}
			out = out.Upsert(topic, score)
		}
		// consume '}'
		if _, err := dec.Token(); err != nil {
			return err
		}
	}
	// consume ']'
	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = out
	return nil
}

// Value / Scan store the wire shape in a jsonb column.
func (s TopicScores) Value() (driver.Value, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *TopicScores) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("topic_scores: cannot scan %T", value)
	}
	if len(raw) == 0 {
		*s = nil
		return nil
	}
	return s.UnmarshalJSON(raw)
}

func (TopicScores) GormDataType() string { return "jsonb" }
