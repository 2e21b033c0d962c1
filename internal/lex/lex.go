package lex

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const eof = -1

// Token is a parsed token from the raw filter expression sent to the lexer
type Token struct {
	Typ TokType // the type of the item
	pos int     // the position of the item in the string
	Val string  // the value of the item
}

// String is a string representation of a lex item
func (i Token) String() string {
	switch {
	case i.Typ == TErr:
		return i.Val
	case len(i.Val) > 10:
		return fmt.Sprintf("%.10q...", i.Val)
	}
	return fmt.Sprintf("%q", i.Val)
}

// TokType is an enum of token types that can be produced by the lexer.
type TokType int

// types of tokens that can be lexed
const (
	TErr TokType = iota
	TOpcode
	TValue
	TComma
	TEOF
)

var tokStrings = map[TokType]string{
	TErr:    "tERR",
	TOpcode: "tOPCODE",
	TValue:  "tVALUE",
	TComma:  "tCOMMA",
	TEOF:    "tEOF",
}

func (tt TokType) String() string {
	return tokStrings[tt]
}

const (
	opcodeSeparator = '.'
	valueSeparator  = ','
)

type tokenStateFn func(*Lexer) tokenStateFn

// Lexer splits a raw filter expression ([opcode.]value[,value...]) into tokens.
//
// Only the first '.' separates the opcode, every later '.' belongs to a value. An
// expression without any '.' has no opcode at all.
type Lexer struct {
	input string // the input to lex

	pos      int          // the position of the cursor
	start    int          // the start of the current token
	currItem Token        // the current item being worked on
	state    tokenStateFn // where to resume on the next call
	atEOF    bool         // whether we have finished lexing the string or not
}

// Lex creates a lexer for an input string
func Lex(input string) *Lexer {
	l := &Lexer{
		input: input,
		state: lexValue,
	}
	if HasOpcode(input) {
		l.state = lexOpcode
	}
	return l
}

// Next lexes and returns just the next token in the input.
func (l *Lexer) Next() Token {
	// default to returning EOF
	l.currItem = Token{
		Typ: TEOF,
		pos: l.pos,
		Val: "EOF",
	}

	if l.state == nil {
		return l.currItem
	}

	// run the current state; every state emits exactly one token
	l.state = l.state(l)
	return l.currItem
}

// Peek looks at the the next token but does not impact the lexer state
// note this is intentionally not a pointer because we don't want any changes to take affect here.
func (l Lexer) Peek() Token {
	return l.Next()
}

// HasOpcode reports whether the input carries an opcode prefix.
func HasOpcode(input string) bool {
	return strings.ContainsRune(input, opcodeSeparator)
}

// lexOpcode consumes everything up to the first '.' as the opcode. Commas are part
// of the opcode here so that "a,b.c" reports the bad opcode "a,b".
func lexOpcode(l *Lexer) tokenStateFn {
	for {
		switch l.next() {
		case eof:
			// Lex only enters this state when the input contains a separator
			return l.errorf("missing opcode separator")
		case opcodeSeparator:
			l.backup()
			l.emit(TOpcode)
			l.next()
			l.ignore()
			return lexValue
		}
	}
}

// lexValue consumes a single value up to the next ',' or the end of input. Empty
// values are emitted as well so "a," lexes as two values.
func lexValue(l *Lexer) tokenStateFn {
	for {
		switch l.next() {
		case eof:
			l.emit(TValue)
			return lexEnd
		case valueSeparator:
			l.backup()
			l.emit(TValue)
			return lexComma
		}
	}
}

func lexComma(l *Lexer) tokenStateFn {
	l.next()
	l.emit(TComma)
	return lexValue
}

func lexEnd(l *Lexer) tokenStateFn {
	l.emit(TEOF)
	l.currItem.Val = "EOF"
	return nil
}

// toTok returns the item at the current input point with the specified type
// and advances the input.
func (l *Lexer) toTok(t TokType) Token {
	i := Token{
		Typ: t,
		pos: l.start,
		Val: l.input[l.start:l.pos],
	}
	// update the lexer's start for the next token to be the current position
	l.start = l.pos
	return i
}

// emit passes the trailing text as an item back to the parser.
func (l *Lexer) emit(t TokType) {
	l.currItem = l.toTok(t)
}

// ignore skips over the pending input before this point.
func (l *Lexer) ignore() {
	l.start = l.pos
}

// next moves one rune forward in the input string and returns the consumed rune
func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.atEOF = true
		return eof
	}
	r, width := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += width
	return r
}

// backup steps back one rune.
func (l *Lexer) backup() {
	if !l.atEOF && l.pos > 0 {
		_, width := utf8.DecodeLastRuneInString(l.input[:l.pos])
		l.pos -= width
	}
}

// errorf returns an error token and terminates the scan by passing
// back a nil pointer that will be the next state, terminating l.Next.
func (l *Lexer) errorf(format string, args ...any) tokenStateFn {
	l.currItem = Token{
		Typ: TErr,
		pos: l.start,
		Val: fmt.Sprintf(format, args...),
	}
	l.start = 0
	l.pos = 0
	l.input = l.input[:0]
	return nil
}
