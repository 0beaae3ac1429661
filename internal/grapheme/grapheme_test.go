package grapheme

import "testing"

const family = "\U0001F468\u200d\U0001F469\u200d\U0001F467"

func TestSplitAndCount_MultiRuneClusters(t *testing.T) {
	text := "a" + "e\u0301" + family + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "e\u0301" {
		t.Fatalf("split[1]=%q, want %q", got[1], "e\u0301")
	}
	if got[2] != family {
		t.Fatalf("split[2]=%q, want family emoji", got[2])
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
	if Split("") != nil || Count("") != 0 {
		t.Fatalf("empty text must have no clusters")
	}
}

func TestJoin(t *testing.T) {
	cases := []struct {
		in   []string
		want string
	}{
		{in: nil, want: ""},
		{in: []string{"a"}, want: "a"},
		{in: []string{"e\u0301", family, "\t"}, want: "e\u0301" + family + "\t"},
	}
	for _, tc := range cases {
		if got := Join(tc.in); got != tc.want {
			t.Fatalf("Join(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}

	text := "x y" + family
	if got := Join(Split(text)); got != text {
		t.Fatalf("Join(Split(%q))=%q", text, got)
	}
}

func TestIsSpace(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{in: " ", want: true},
		{in: "\t", want: true},
		{in: "\u3000", want: true},
		{in: "", want: false},
		{in: "a", want: false},
		{in: "_", want: false},
	}
	for _, tc := range cases {
		if got := IsSpace(tc.in); got != tc.want {
			t.Fatalf("IsSpace(%q)=%v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestClassOf(t *testing.T) {
	cases := []struct {
		in   string
		want Class
	}{
		{in: "a", want: ClassWord},
		{in: "Z", want: ClassWord},
		{in: "7", want: ClassWord},
		{in: "_", want: ClassWord},
		{in: "e\u0301", want: ClassWord},
		{in: "界", want: ClassWord},
		{in: "あ", want: ClassWord},
		{in: "!", want: ClassPunct},
		{in: "(", want: ClassPunct},
		{in: "\"", want: ClassPunct},
		{in: "。", want: ClassPunct},
		{in: "€", want: ClassPunct},
		{in: " ", want: ClassSpace},
		{in: "\t", want: ClassSpace},
		{in: "", want: ClassSpace},
	}
	for _, tc := range cases {
		if got := ClassOf(tc.in); got != tc.want {
			t.Fatalf("ClassOf(%q)=%d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestWidth(t *testing.T) {
	cases := []struct {
		in       string
		tabWidth int
		want     int
	}{
		{in: "a", tabWidth: 4, want: 1},
		{in: "\t", tabWidth: 4, want: 4},
		{in: "\t", tabWidth: 8, want: 8},
		{in: "\t", tabWidth: 0, want: 1},
		{in: "界", tabWidth: 4, want: 2},
		{in: "\uff21", tabWidth: 4, want: 2},
		{in: "e\u0301", tabWidth: 4, want: 1},
	}
	for _, tc := range cases {
		if got := Width(tc.in, tc.tabWidth); got != tc.want {
			t.Fatalf("Width(%q, %d)=%d, want %d", tc.in, tc.tabWidth, got, tc.want)
		}
	}
}
