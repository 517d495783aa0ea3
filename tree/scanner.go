package tree

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// Scanner is a TokenSource over a reader, backed by json.Decoder. It
// distinguishes object keys from string values and tracks line/column
// positions for every token it hands out.
type Scanner struct {
	dec   *json.Decoder
	src   *lineReader
	stack []scanFrame
	pos   Position
}

type scanFrame struct {
	object  bool
	keyNext bool
}

func NewScanner(r io.Reader) *Scanner {
	src := &lineReader{r: r}
	dec := json.NewDecoder(src)
	dec.UseNumber()
	return &Scanner{dec: dec, src: src, pos: Position{Line: 1, Column: 1}}
}

func (s *Scanner) Pos() Position { return s.pos }

func (s *Scanner) Next() (Token, error) {
	raw, err := s.dec.Token()
	if err != nil {
		return Token{}, err
	}
	s.pos = s.src.position(s.dec.InputOffset())
	tok := Token{Pos: s.pos}

	switch v := raw.(type) {
	case json.Delim:
		switch v {
		case '{':
			tok.Kind = TokenBeginObject
			s.enterValue()
			s.stack = append(s.stack, scanFrame{object: true, keyNext: true})
		case '}':
			tok.Kind = TokenEndObject
			s.leave()
		case '[':
			tok.Kind = TokenBeginArray
			s.enterValue()
			s.stack = append(s.stack, scanFrame{})
		case ']':
			tok.Kind = TokenEndArray
			s.leave()
		}
	case string:
		if s.keyExpected() {
			tok.Kind = TokenKey
			tok.Str = v
			s.stack[len(s.stack)-1].keyNext = false
		} else {
			tok.Kind = TokenString
			tok.Str = v
			s.enterValue()
		}
	case bool:
		tok.Kind = TokenBool
		tok.Bool = v
		s.enterValue()
	case json.Number:
		tok.Kind = TokenNumber
		tok.Str = v.String()
		s.enterValue()
	case nil:
		tok.Kind = TokenNull
		s.enterValue()
	default:
		return Token{}, fmt.Errorf("unsupported JSON token %v", raw)
	}
	return tok, nil
}

func (s *Scanner) keyExpected() bool {
	if len(s.stack) == 0 {
		return false
	}
	top := s.stack[len(s.stack)-1]
	return top.object && top.keyNext
}

// enterValue marks that the pending key's value (or array element) has
// been consumed, so the next object token is a key again.
func (s *Scanner) enterValue() {
	if len(s.stack) > 0 && s.stack[len(s.stack)-1].object {
		s.stack[len(s.stack)-1].keyNext = true
	}
}

func (s *Scanner) leave() {
	if len(s.stack) > 0 {
		s.stack = s.stack[:len(s.stack)-1]
	}
	s.enterValue()
}

// lineReader records newline offsets as bytes stream through, so a byte
// offset reported by the decoder maps back to a line/column pair.
type lineReader struct {
	r        io.Reader
	off      int64
	newlines []int64
}

func (lr *lineReader) Read(p []byte) (int, error) {
	n, err := lr.r.Read(p)
	for i := 0; i < n; i++ {
		if p[i] == '\n' {
			lr.newlines = append(lr.newlines, lr.off+int64(i))
		}
	}
	lr.off += int64(n)
	return n, err
}

// position maps the offset just past a token to the token's last byte.
func (lr *lineReader) position(end int64) Position {
	off := end - 1
	if off < 0 {
		off = 0
	}
	i := sort.Search(len(lr.newlines), func(i int) bool {
		return lr.newlines[i] >= off
	})
	var lineStart int64
	if i > 0 {
		lineStart = lr.newlines[i-1] + 1
	}
	return Position{Line: i + 1, Column: int(off-lineStart) + 1}
}
