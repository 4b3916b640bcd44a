/*
Package confindent reads and writes configuration by indentation.

A confindent document is a sequence of lines. Every non-blank line declares a
key and an optional value, separated by whitespace. Nesting is expressed purely
through leading indentation: a line indented one unit deeper than a preceding
line becomes a child of that line. An indentation unit is either one tab or two
spaces, and the two may be mixed freely across lines.

	Host example.com
		Username user
		Password pass

	Idle 600

Parsing never fails. Blank lines are skipped, indent-only lines are skipped,
and lines with irregular indentation are kept by degrading them to top-level
sections. Degenerate input simply produces an empty Document.

	doc := confindent.ParseString("Host example.com\n\tUsername user")
	host := doc.Child("Host")
	user, ok := confindent.ChildValue[string](host, "Username")

Values are plain text until a caller asks for a type. The generic accessors
Get, GetVec and ChildValue convert a section's value on demand and report
absence and conversion failure uniformly as a missing value:

	doc := confindent.ParseString("Retries 5\nPorts 80,443,8080")
	retries, ok := confindent.ChildValue[int](doc, "Retries")
	ports, ok := confindent.GetVec[int](doc.Child("Ports"))

Documents can also be built programmatically with CreateChild and written back
out with String, WriteTo or WriteFile. The serializer always emits tabs, one
per nesting level, regardless of the indentation style of the input.
*/
package confindent
