package numeric

import (
	"errors"
	"strings"
	"testing"
)

func TestCatch(t *testing.T) {
	err := Catch(func() { PanicLengthMismatch("Add", 2, 3) })
	if !errors.Is(err, ErrLogic) {
		t.Fatalf("got %v, want ErrLogic", err)
	}
	var oe *OpError
	if !errors.As(err, &oe) || oe.Op != "Add" {
		t.Errorf("got %#v, want *OpError for Add", err)
	}
	if !strings.Contains(err.Error(), "2 vs 3") {
		t.Errorf("message %q lacks lengths", err.Error())
	}

	if err := Catch(func() {}); err != nil {
		t.Errorf("Catch(no panic): got %v", err)
	}
	if err := Catch(func() { PanicIndex("Variable", 4, 3) }); !errors.Is(err, ErrLogic) {
		t.Errorf("PanicIndex: got %v, want ErrLogic", err)
	}
}

func TestRecoverRepanicsForeignValues(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("recovered %v, want boom", r)
		}
	}()
	_ = Catch(func() { panic("boom") })
	t.Error("Catch swallowed a foreign panic")
}
