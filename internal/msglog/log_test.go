package msglog

import "testing"

func TestAddStacksConsecutiveDuplicates(t *testing.T) {
	l := New(10)
	l.Add("The orc growls.", ColorEnemyAttack)
	l.Add("The orc growls.", ColorEnemyAttack)
	l.Add("The orc growls.", ColorEnemyAttack)

	msgs := l.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 stacked entry, got %d", len(msgs))
	}
	if msgs[0].Count != 3 {
		t.Fatalf("expected count 3, got %d", msgs[0].Count)
	}
	if got := msgs[0].FullText(); got != "The orc growls. (x3)" {
		t.Fatalf("unexpected full text %q", got)
	}
}

func TestAddDoesNotStackAcrossDifferentColors(t *testing.T) {
	l := New(10)
	l.Add("hit", ColorPlayerAttack)
	l.Add("hit", ColorEnemyAttack)
	if len(l.Messages()) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(l.Messages()))
	}
}

func TestHistoryIsBounded(t *testing.T) {
	l := New(3)
	l.Addf(ColorDefault, "msg %d", 1)
	l.Addf(ColorDefault, "msg %d", 2)
	l.Addf(ColorDefault, "msg %d", 3)
	l.Addf(ColorDefault, "msg %d", 4)

	msgs := l.Messages()
	if len(msgs) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(msgs))
	}
	if msgs[0].Text != "msg 2" {
		t.Fatalf("expected oldest entry dropped, got %q first", msgs[0].Text)
	}
	if msgs[2].Text != "msg 4" {
		t.Fatalf("expected newest entry last, got %q", msgs[2].Text)
	}
}

func TestTail(t *testing.T) {
	l := New(10)
	l.Add("a", ColorDefault)
	l.Add("b", ColorDefault)
	l.Add("c", ColorDefault)

	tail := l.Tail(2)
	if len(tail) != 2 || tail[0].Text != "b" || tail[1].Text != "c" {
		t.Fatalf("unexpected tail %+v", tail)
	}
	if got := l.Tail(99); len(got) != 3 {
		t.Fatalf("expected full history for oversized tail, got %d", len(got))
	}
}
