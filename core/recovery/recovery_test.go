package recovery

import (
	"errors"
	"reflect"
	"testing"
)

func TestApply_FirstNonEmptyWins(t *testing.T) {
	strategies := []Strategy{
		{Name: "empty", Attempt: func(string) ([]any, error) { return []any{}, nil }},
		{Name: "errors", Attempt: func(string) ([]any, error) { return nil, errors.New("nope") }},
		{Name: "wins", Attempt: func(string) ([]any, error) { return []any{"x"}, nil }},
		{Name: "never-reached", Attempt: func(string) ([]any, error) { return []any{"y"}, nil }},
	}

	res := Apply("raw", strategies)
	if res.UsedStrategy != "wins" {
		t.Errorf("used strategy = %q, want wins", res.UsedStrategy)
	}
	if res.AttemptedStrategies != 3 {
		t.Errorf("attempted = %d, want 3", res.AttemptedStrategies)
	}
	if !reflect.DeepEqual(res.Data, []any{"x"}) {
		t.Errorf("data = %v, want [x]", res.Data)
	}
}

func TestApply_PanickingStrategySkipped(t *testing.T) {
	strategies := []Strategy{
		{Name: "panics", Attempt: func(string) ([]any, error) { panic("boom") }},
		{Name: "wins", Attempt: func(string) ([]any, error) { return []any{float64(1)}, nil }},
	}

	res := Apply("raw", strategies)
	if res.UsedStrategy != "wins" {
		t.Errorf("used strategy = %q, want wins", res.UsedStrategy)
	}
	if res.AttemptedStrategies != 2 {
		t.Errorf("attempted = %d, want 2", res.AttemptedStrategies)
	}
}

func TestApply_TotalFailure(t *testing.T) {
	strategies := []Strategy{
		{Name: "a", Attempt: func(string) ([]any, error) { return nil, errors.New("no") }},
		{Name: "b", Attempt: nil},
	}

	res := Apply("raw", strategies)
	if res.Data == nil || len(res.Data) != 0 {
		t.Errorf("data = %v, want empty non-nil", res.Data)
	}
	if res.UsedStrategy != "" {
		t.Errorf("used strategy = %q, want none", res.UsedStrategy)
	}
	if res.AttemptedStrategies != 2 {
		t.Errorf("attempted = %d, want 2", res.AttemptedStrategies)
	}
}

func TestApply_NoStrategies(t *testing.T) {
	res := Apply("raw", nil)
	if len(res.Data) != 0 || res.UsedStrategy != "" || res.AttemptedStrategies != 0 {
		t.Errorf("unexpected result %+v for an empty chain", res)
	}
}
