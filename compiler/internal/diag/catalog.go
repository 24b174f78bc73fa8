package diag

import (
	_ "embed"
	"encoding/json"
	"sync"
)

//go:embed codes.json
var codesJSON []byte

// CodeEntry is a single diagnostic code definition.
type CodeEntry struct {
	ID    string `json:"id"`    // e.g., "BPP0001"
	Title string `json:"title"` // short human title e.g., "unexpected token"
}

// Registry is the top-level catalog format. The lexer section exists but is
// empty: the lexer has no error path by contract.
type Registry struct {
	Lexer  map[string]CodeEntry `json:"lexer"`
	Parser map[string]CodeEntry `json:"parser"`
}

var (
	regOnce sync.Once
	reg     Registry
	regErr  error
)

func load() error {
	regOnce.Do(func() {
		if len(codesJSON) == 0 {
			return // empty catalog is allowed
		}
		regErr = json.Unmarshal(codesJSON, &reg)
	})
	return regErr
}

// Lookup returns a code entry by (domain, key).
func Lookup(domain, key string) (CodeEntry, bool) {
	if err := load(); err != nil {
		return CodeEntry{}, false
	}
	var m map[string]CodeEntry
	switch domain {
	case "lexer":
		m = reg.Lexer
	case "parser":
		m = reg.Parser
	default:
		return CodeEntry{}, false
	}
	if m == nil {
		return CodeEntry{}, false
	}
	ce, ok := m[key]
	return ce, ok
}

// MustLookup returns an entry if found; otherwise a synthesized placeholder
// with the provided defaults, so codes stay stable even if the JSON is
// temporarily missing an entry.
func MustLookup(domain, key, defaultID, defaultTitle string) CodeEntry {
	if ce, ok := Lookup(domain, key); ok {
		return ce
	}
	return CodeEntry{ID: defaultID, Title: defaultTitle}
}
