package gen

import "strings"

// generatedHeader is the first line of every file this package owns.
// Generated files are machine-owned and never hand-edited.
const generatedHeader = "// Code generated by iconforge. DO NOT EDIT."

var rustStringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
)

var rustStringUnescaper = strings.NewReplacer(
	`\\`, `\`,
	`\"`, `"`,
	`\n`, "\n",
	`\r`, "\r",
)

// escapeRustString escapes a value for embedding in a Rust string literal.
// SVG bodies carry double quotes in every attribute, and multi-line text
// nodes carry newlines; both must stay on the entry's single line so the
// line-oriented read-back can reconstruct them.
func escapeRustString(s string) string {
	return rustStringEscaper.Replace(s)
}

// unescapeRustString reverses escapeRustString when reading entries back
// out of a generated file.
func unescapeRustString(s string) string {
	return rustStringUnescaper.Replace(s)
}
