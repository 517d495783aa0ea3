package tree

import (
	"io"
	"strings"
	"testing"
)

func TestScannerTokens(t *testing.T) {
	input := `{"a":"x","b":true,"c":null,"d":[1],"e":{}}`
	want := []TokenKind{
		TokenBeginObject,
		TokenKey, TokenString,
		TokenKey, TokenBool,
		TokenKey, TokenNull,
		TokenKey, TokenBeginArray, TokenNumber, TokenEndArray,
		TokenKey, TokenBeginObject, TokenEndObject,
		TokenEndObject,
	}
	s := NewScanner(strings.NewReader(input))
	var got []TokenKind
	for {
		tok, err := s.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		got = append(got, tok.Kind)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestScannerDistinguishesKeysFromStrings(t *testing.T) {
	s := NewScanner(strings.NewReader(`{"key":"value"}`))
	var keys, strs []string
	for {
		tok, err := s.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		switch tok.Kind {
		case TokenKey:
			keys = append(keys, tok.Str)
		case TokenString:
			strs = append(strs, tok.Str)
		}
	}
	if len(keys) != 1 || keys[0] != "key" {
		t.Errorf("keys = %v", keys)
	}
	if len(strs) != 1 || strs[0] != "value" {
		t.Errorf("strings = %v", strs)
	}
}

func TestScannerPositions(t *testing.T) {
	input := "{\n  \"kind\": \"step\"\n}"
	s := NewScanner(strings.NewReader(input))

	tok, err := s.Next()
	if err != nil {
		t.Fatal(err)
	}
	if tok.Pos.Line != 1 || tok.Pos.Column != 1 {
		t.Errorf("{ at %s, want line 1, column 1", tok.Pos)
	}

	tok, err = s.Next()
	if err != nil {
		t.Fatal(err)
	}
	if tok.Kind != TokenKey || tok.Pos.Line != 2 {
		t.Errorf("key at %s, want line 2", tok.Pos)
	}

	tok, err = s.Next()
	if err != nil {
		t.Fatal(err)
	}
	if tok.Kind != TokenString || tok.Pos.Line != 2 {
		t.Errorf("value at %s, want line 2", tok.Pos)
	}

	tok, err = s.Next()
	if err != nil {
		t.Fatal(err)
	}
	if tok.Kind != TokenEndObject || tok.Pos.Line != 3 || tok.Pos.Column != 1 {
		t.Errorf("} at %s, want line 3, column 1", tok.Pos)
	}
}

func TestScannerSyntaxErrorsPassThrough(t *testing.T) {
	s := NewScanner(strings.NewReader(`{"a": }`))
	var err error
	for err == nil {
		_, err = s.Next()
	}
	if err == io.EOF {
		t.Fatal("expected a syntax error")
	}
}
