package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type tokTest struct {
	in   string
	want []Token
}

func stripPos(toks []Token) []Token {
	res := make([]Token, len(toks))
	for i, t := range toks {
		t.Pos = Pos{}
		res[i] = t
	}
	return res
}

func TestTokenize(t *testing.T) {
	tests := []tokTest{
		{
			in: `server { port = 8080 }`,
			want: []Token{
				{Type: TString, Text: "server"},
				{Type: TLCurl, Text: "{"},
				{Type: TString, Text: "port"},
				{Type: TEquals, Text: "="},
				{Type: TNumber, Text: "8080"},
				{Type: TRCurl, Text: "}"},
				{Type: TEOF},
			},
		},
		{
			in: `tags=["a",'b c',-3.5]`,
			want: []Token{
				{Type: TString, Text: "tags"},
				{Type: TEquals, Text: "="},
				{Type: TLSquare, Text: "["},
				{Type: TQuoted, Text: "a"},
				{Type: TComma, Text: ","},
				{Type: TQuoted, Text: "b c"},
				{Type: TComma, Text: ","},
				{Type: TNumber, Text: "-3.5"},
				{Type: TRSquare, Text: "]"},
				{Type: TEOF},
			},
		},
		{
			in: "a // line\nb /* block\n */ c",
			want: []Token{
				{Type: TString, Text: "a"},
				{Type: TNewline, Text: "\n"},
				{Type: TString, Text: "b"},
				{Type: TString, Text: "c"},
				{Type: TEOF},
			},
		},
		{
			in: `--5 3.5.1 +1 http://x.y/z true`,
			want: []Token{
				{Type: TString, Text: "--5"},
				{Type: TString, Text: "3.5.1"},
				{Type: TNumber, Text: "+1"},
				{Type: TString, Text: "http://x.y/z"},
				{Type: TString, Text: "true"},
				{Type: TEOF},
			},
		},
		{
			in: `"tab\there" "q\"q" 'it\'s' "é😀" "raw
line"`,
			want: []Token{
				{Type: TQuoted, Text: "tab\there"},
				{Type: TQuoted, Text: `q"q`},
				{Type: TQuoted, Text: "it's"},
				{Type: TQuoted, Text: "é😀"},
				{Type: TQuoted, Text: "raw\nline"},
				{Type: TEOF},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Tokenize(nil, []byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, stripPos(got)); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenPositions(t *testing.T) {
	toks, err := Tokenize(nil, []byte("a {\n  b = 1\n}"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"1:1", "1:3", "1:4", "2:3", "2:5", "2:7", "2:8", "3:1", "3:2"}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens", len(toks))
	}
	for i, tok := range toks {
		if got := tok.Pos.Short(); got != want[i] {
			t.Errorf("token %d %s: got %s want %s", i, tok.Type, got, want[i])
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{`"abc`, ErrUnterminated},
		{`'abc\'`, ErrUnterminated},
		{`a /* b`, ErrUnterminated},
		{`"\q"`, ErrBadEscape},
		{`"\u12"`, ErrBadUnicode},
	}
	for _, tt := range tests {
		_, err := Tokenize(nil, []byte(tt.in))
		if !errors.Is(err, tt.err) {
			t.Errorf("%s: got %v want %v", tt.in, err, tt.err)
		}
		var te *TokenizeErr
		if !errors.As(err, &te) {
			t.Errorf("%s: expected *TokenizeErr", tt.in)
		}
	}
}

func TestTokenNode(t *testing.T) {
	toks, err := Tokenize(nil, []byte(`42 "42" null 'null'`))
	if err != nil {
		t.Fatal(err)
	}
	if k := toks[0].Node().Kind(); k.String() != "Integer" {
		t.Errorf("got %s", k)
	}
	if k := toks[1].Node().Kind(); k.String() != "String" {
		t.Errorf("got %s", k)
	}
	if k := toks[2].Node().Kind(); k.String() != "Null" {
		t.Errorf("got %s", k)
	}
	if k := toks[3].Node().Kind(); k.String() != "String" {
		t.Errorf("got %s", k)
	}
}
