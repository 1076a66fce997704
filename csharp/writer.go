// Package csharp renders converter statement trees as formatted C# source
// text. It knows nothing about curl; the statement IR is its whole input.
package csharp

import (
	"fmt"
	"strings"

	"github.com/Jerry809/curl-to-csharp/converter/model"
)

const indentUnit = "    "

// Render emits the statement sequence as C# source, one statement per line,
// scoped blocks braced and indented.
func Render(stmts []model.Statement) string {
	var b strings.Builder
	for _, stmt := range stmts {
		writeStatement(&b, stmt, 0)
	}
	return b.String()
}

func writeStatement(b *strings.Builder, stmt model.Statement, depth int) {
	indent := strings.Repeat(indentUnit, depth)

	switch s := stmt.(type) {
	case model.Declaration:
		fmt.Fprintf(b, "%svar %s = %s;\n", indent, s.Name, expr(s.Init))
	case model.Assignment:
		fmt.Fprintf(b, "%s%s.%s = %s;\n", indent, expr(s.Target), s.Member, expr(s.Value))
	case model.Call:
		fmt.Fprintf(b, "%s%s.%s(%s);\n", indent, expr(s.Receiver), s.Member, argList(s.Args))
	case model.ScopedBlock:
		fmt.Fprintf(b, "%susing (var %s = new %s(%s))\n%s{\n", indent, s.Name, s.Type, argList(s.Args), indent)
		for _, inner := range s.Body {
			writeStatement(b, inner, depth+1)
		}
		fmt.Fprintf(b, "%s}\n", indent)
	default:
		panic(fmt.Sprintf("csharp: unknown statement %T", stmt))
	}
}

func expr(e model.Expression) string {
	switch x := e.(type) {
	case model.StringLit:
		return `"` + escape(x.Value) + `"`
	case model.BoolLit:
		if x.Value {
			return "true"
		}
		return "false"
	case model.Ident:
		return x.Name
	case model.New:
		return fmt.Sprintf("new %s(%s)", x.Type, argList(x.Args))
	case model.Invoke:
		return fmt.Sprintf("%s(%s)", x.Func, argList(x.Args))
	case model.Interp:
		var b strings.Builder
		b.WriteString(`$"`)
		for _, chunk := range x.Chunks {
			if chunk.Expr != nil {
				b.WriteString("{" + expr(chunk.Expr) + "}")
			} else {
				b.WriteString(escapeInterp(chunk.Text))
			}
		}
		b.WriteString(`"`)
		return b.String()
	case model.Await:
		return "await " + expr(x.Expr)
	default:
		panic(fmt.Sprintf("csharp: unknown expression %T", e))
	}
}

func argList(args []model.Expression) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = expr(a)
	}
	return strings.Join(parts, ", ")
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\x00", `\0`,
)

// escape produces the body of a C# string literal.
func escape(s string) string {
	return escaper.Replace(s)
}

var interpEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\x00", `\0`,
	"{", "{{",
	"}", "}}",
)

// escapeInterp additionally doubles braces for interpolated literals.
func escapeInterp(s string) string {
	return interpEscaper.Replace(s)
}
