package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if n := FirstNonZero(0, 0, 3, 4); n != 3 {
		t.Fatalf("got %v", n)
	}
	if s := FirstNonZero("", "go"); s != "go" {
		t.Fatalf("got %v", s)
	}
	if n := FirstNonZero[int](); n != 0 {
		t.Fatalf("got %v", n)
	}
}

func TestStrToBool(t *testing.T) {
	for _, str := range []string{"true", "T", "yes", "Y", " on", "1"} {
		if !StrToBool(str) {
			t.Fatalf("%s", str)
		}
	}
	for _, str := range []string{"false", "no", "", "maybe"} {
		if StrToBool(str) {
			t.Fatalf("%s", str)
		}
	}
}
