package lexer

// TokKind enumerates token kinds produced by the lexer.
type TokKind int

const (
	// Special
	TokStart   TokKind = iota // synthetic, always first
	TokEOF                    // synthetic, always last
	TokNewline                // statement separator

	// Literals/identifiers
	TokIdent
	TokNumber

	// Keywords
	TokLet
	TokIf
	TokElse
	TokWhile
	TokFor
	TokPrint
	TokRead
	TokGoto

	// Operators/punctuation
	TokEq     // =
	TokEqEq   // ==
	TokGt     // >
	TokGe     // >=
	TokLt     // <
	TokLe     // <=
	TokPlus   // +
	TokMinus  // -
	TokStar   // *
	TokSlash  // /
	TokBang   // !
	TokDotDot // ..
	TokColon  // :
	TokLParen // (
	TokRParen // )
	TokLBrace // {
	TokRBrace // }
)

var kindNames = [...]string{
	TokStart:   "START",
	TokEOF:     "EOF",
	TokNewline: "NEWLINE",
	TokIdent:   "IDENT",
	TokNumber:  "NUMBER",
	TokLet:     "LET",
	TokIf:      "IF",
	TokElse:    "ELSE",
	TokWhile:   "WHILE",
	TokFor:     "FOR",
	TokPrint:   "PRINT",
	TokRead:    "READ",
	TokGoto:    "GOTO",
	TokEq:      "EQ",
	TokEqEq:    "EQEQ",
	TokGt:      "GT",
	TokGe:      "GE",
	TokLt:      "LT",
	TokLe:      "LE",
	TokPlus:    "PLUS",
	TokMinus:   "MINUS",
	TokStar:    "STAR",
	TokSlash:   "SLASH",
	TokBang:    "BANG",
	TokDotDot:  "DOTDOT",
	TokColon:   "COLON",
	TokLParen:  "LPAREN",
	TokRParen:  "RPAREN",
	TokLBrace:  "LBRACE",
	TokRBrace:  "RBRACE",
}

func (k TokKind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// Token is a single lexeme with its 1-based source line. Synthesized tokens
// (START/NEWLINE/EOF) carry a canonical surface form in Lex.
type Token struct {
	Kind TokKind
	Lex  string
	Line int
}

// keywordKind maps a lower-cased identifier to its keyword token, if any.
func keywordKind(s string) (TokKind, bool) {
	switch s {
	case "let":
		return TokLet, true
	case "if":
		return TokIf, true
	case "else":
		return TokElse, true
	case "while":
		return TokWhile, true
	case "for":
		return TokFor, true
	case "print":
		return TokPrint, true
	case "read":
		return TokRead, true
	case "goto":
		return TokGoto, true
	default:
		return 0, false
	}
}
