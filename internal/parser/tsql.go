package parser

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/zocbuild/zocbuild/pkg/zocbuild"
)

// ErrNoObjectDefinition is returned when a script contains no CREATE or
// ALTER header for a supported object type.
var ErrNoObjectDefinition = fmt.Errorf("no CREATE or ALTER statement for a supported object type: %w", zocbuild.ErrParseFailed)

var tsqlLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `[Nn]?'(?:[^']|'')*'`},
	{Name: "Bracketed", Pattern: `\[(?:[^\]]|\]\])*\]`},
	{Name: "Quoted", Pattern: `"(?:[^"]|"")*"`},
	{Name: "Ident", Pattern: `[A-Za-z_@#][A-Za-z0-9_@#$]*`},
	{Name: "Number", Pattern: `[0-9]+(?:\.[0-9]+)?`},
	{Name: "Dot", Pattern: `\.`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Other", Pattern: `[^'"\[\s]`},
})

var (
	symbols       = tsqlLexer.Symbols()
	tokIdent      = symbols["Ident"]
	tokBracketed  = symbols["Bracketed"]
	tokQuoted     = symbols["Quoted"]
	tokDot        = symbols["Dot"]
	tokWhitespace = symbols["Whitespace"]
)

// headerKeywords maps the keyword after CREATE/ALTER to an object type.
var headerKeywords = map[string]zocbuild.DatabaseObjectType{
	"FUNCTION":  zocbuild.ObjectTypeFunction,
	"PROC":      zocbuild.ObjectTypeProcedure,
	"PROCEDURE": zocbuild.ObjectTypeProcedure,
	"TABLE":     zocbuild.ObjectTypeTable,
	"TRIGGER":   zocbuild.ObjectTypeTrigger,
	"TYPE":      zocbuild.ObjectTypeType,
	"VIEW":      zocbuild.ObjectTypeView,
}

// TSQLParser implements zocbuild.ScriptParser for SQL Server scripts.
// TSQLParser is stateless and safe for concurrent use.
type TSQLParser struct{}

// NewTSQLParser creates a new T-SQL header parser.
func NewTSQLParser() *TSQLParser {
	return &TSQLParser{}
}

func (p *TSQLParser) Parse(ctx zocbuild.ParseContext, text string) (*zocbuild.SQLScript, error) {
	lex, err := tsqlLexer.LexString(ctx.Path, blankComments(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", zocbuild.ErrParseFailed, err)
	}
	all, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", zocbuild.ErrParseFailed, err)
	}

	tokens := significant(all)
	for i := 0; i < len(tokens); i++ {
		if !isKeyword(tokens[i], "CREATE") && !isKeyword(tokens[i], "ALTER") {
			continue
		}
		j := i + 1
		if j+1 < len(tokens) && isKeyword(tokens[j], "OR") && isKeyword(tokens[j+1], "ALTER") {
			j += 2
		}
		if j >= len(tokens) || tokens[j].Type != tokIdent {
			continue
		}
		objectType, ok := headerKeywords[strings.ToUpper(tokens[j].Value)]
		if !ok {
			continue
		}

		parts := readName(tokens[j+1:])
		if len(parts) == 0 {
			return nil, fmt.Errorf("%w: %s %s at %s has no object name",
				zocbuild.ErrParseFailed, strings.ToUpper(tokens[i].Value), objectType, tokens[j].Pos)
		}

		script := &zocbuild.SQLScript{
			ObjectName:   parts[len(parts)-1],
			SchemaName:   zocbuild.DefaultSchemaName,
			ObjectType:   objectType,
			OriginalText: text,
		}
		if len(parts) > 1 {
			script.SchemaName = parts[len(parts)-2]
		}
		return script, nil
	}

	return nil, ErrNoObjectDefinition
}

// blankComments replaces -- and nested /* */ comments with spaces, keeping
// line breaks so token positions still point into the original text. Text
// inside '...', "..." and [...] is left alone.
func blankComments(text string) string {
	out := []byte(text)
	depth := 0
	var closer byte
	for i := 0; i < len(out); i++ {
		ch := out[i]
		var next byte
		if i+1 < len(out) {
			next = out[i+1]
		}

		switch {
		case depth > 0:
			switch {
			case ch == '/' && next == '*':
				depth++
				out[i], out[i+1] = ' ', ' '
				i++
			case ch == '*' && next == '/':
				depth--
				out[i], out[i+1] = ' ', ' '
				i++
			case ch != '\n' && ch != '\r':
				out[i] = ' '
			}

		case closer != 0:
			if ch == closer {
				if next == closer {
					i++
				} else {
					closer = 0
				}
			}

		case ch == '-' && next == '-':
			for i < len(out) && out[i] != '\n' && out[i] != '\r' {
				out[i] = ' '
				i++
			}

		case ch == '/' && next == '*':
			depth = 1
			out[i], out[i+1] = ' ', ' '
			i++

		case ch == '\'':
			closer = '\''
		case ch == '"':
			closer = '"'
		case ch == '[':
			closer = ']'
		}
	}
	return string(out)
}

// significant drops whitespace and the EOF token.
func significant(tokens []lexer.Token) []lexer.Token {
	out := make([]lexer.Token, 0, len(tokens))
	for _, t := range tokens {
		switch {
		case t.EOF(), t.Type == tokWhitespace:
			continue
		}
		out = append(out, t)
	}
	return out
}

func isKeyword(t lexer.Token, keyword string) bool {
	return t.Type == tokIdent && strings.EqualFold(t.Value, keyword)
}

// readName reads a dotted multi-part name such as [db].[dbo].[orders_get]
// from the start of tokens. At most three parts are consumed.
func readName(tokens []lexer.Token) []string {
	var parts []string
	for i := 0; i < len(tokens) && len(parts) < 3; i++ {
		part, ok := identifier(tokens[i])
		if !ok {
			break
		}
		parts = append(parts, part)
		if i+1 >= len(tokens) || tokens[i+1].Type != tokDot {
			break
		}
		i++
	}
	return parts
}

// identifier unwraps a regular, bracketed or quoted identifier.
func identifier(t lexer.Token) (string, bool) {
	switch t.Type {
	case tokIdent:
		return t.Value, true
	case tokBracketed:
		inner := t.Value[1 : len(t.Value)-1]
		return strings.ReplaceAll(inner, "]]", "]"), true
	case tokQuoted:
		inner := t.Value[1 : len(t.Value)-1]
		return strings.ReplaceAll(inner, `""`, `"`), true
	default:
		return "", false
	}
}

var _ zocbuild.ScriptParser = (*TSQLParser)(nil)
