package token

import "fmt"

type Type int

const (
	TEOF Type = iota
	TIdent
	TString
	TRawString
	TNumber
	TKeyword
	TLParen
	TRParen
	TLCurl
	TRCurl
	TSemi
	TEquals
	TNewline
	TComment
	TSlashdash
)

func (t Type) String() string {
	return map[Type]string{
		TEOF:       "TEOF",
		TIdent:     "TIdent",
		TString:    "TString",
		TRawString: "TRawString",
		TNumber:    "TNumber",
		TKeyword:   "TKeyword",
		TLParen:    "TLParen",
		TRParen:    "TRParen",
		TLCurl:     "TLCurl",
		TRCurl:     "TRCurl",
		TSemi:      "TSemi",
		TEquals:    "TEquals",
		TNewline:   "TNewline",
		TComment:   "TComment",
		TSlashdash: "TSlashdash",
	}[t]
}

// Token is one lexical unit of a KDL document. Bytes is the raw lexeme,
// undecoded; string and number tokens are turned into values by the
// decode helpers.
type Token struct {
	Type  Type
	Span  Span
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Span.String())
}
