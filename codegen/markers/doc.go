/*
Package markers reads bean declarations out of Go source lines.

A bean is a struct preceded by the definition marker. Its properties are the
fields and methods preceded by a property marker:

	//bean:definition style=immutable
	type Person struct {
		//bean:property
		number int
		//bean:property validate=notNull
		street string
		//bean:property get=optional
		owner *Person
		//bean:property init="[]string{}"
		tags []string
	}

	//bean:property style=derived
	func (p *Person) Address() string {

# Marker Syntax

Options follow the marker token as key=value pairs separated by commas or
spaces. Values may be double-quoted; quoted values use Go string syntax.

	//bean:definition   style=mutable|immutable
	//bean:property     validate=notNull get=field|optional style=derived
	//                  accessor=Name init="expr"

Unknown keys or values are structural errors. The declaration following a
property marker is the next line that is neither blank nor a comment.

The parser recognizes this narrow grammar only; it is not a Go parser.
*/
package markers
