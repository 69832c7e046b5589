package observability

import (
	"errors"
	"testing"
)

func TestAttributeConstructors(t *testing.T) {
	if a := String("k", "v"); a.Key != "k" || a.Value != "v" {
		t.Errorf("String() = %+v", a)
	}
	if a := Int("n", 3); a.Key != "n" || a.Value != 3 {
		t.Errorf("Int() = %+v", a)
	}
	if a := Bool("b", true); a.Key != "b" || a.Value != true {
		t.Errorf("Bool() = %+v", a)
	}
	if a := Error(errors.New("boom")); a.Key != "error" || a.Value != "boom" {
		t.Errorf("Error() = %+v", a)
	}
	if a := Error(nil); a.Key != "error" || a.Value != "" {
		t.Errorf("Error(nil) = %+v", a)
	}
}

func TestNopDiscardsEverything(t *testing.T) {
	logger := Nop()
	logger.Debug("a")
	logger.Info("b", String("k", "v"))
	logger.Warn("c")
	logger.Error("d")
}
