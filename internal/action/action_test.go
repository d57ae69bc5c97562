package action

import (
	"errors"
	"testing"
)

func TestImpossibleFormatsMessage(t *testing.T) {
	err := Impossible("no enemy within %d tiles", 5)
	if err.Error() != "no enemy within 5 tiles" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestImpossibleMatchesWithErrorsAs(t *testing.T) {
	err := Impossible("you cannot target what you cannot see")

	var imp *ImpossibleError
	if !errors.As(err, &imp) {
		t.Fatal("expected errors.As to match ImpossibleError")
	}
	if imp.Msg != "you cannot target what you cannot see" {
		t.Fatalf("unexpected Msg %q", imp.Msg)
	}

	var other *ImpossibleError
	if errors.As(errors.New("boom"), &other) {
		t.Fatal("plain errors must not match ImpossibleError")
	}
}
