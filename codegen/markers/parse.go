package markers

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"goa.design/beans/runtime/beans"
)

// Parser reads bean declarations. The zero value is ready to use.
type Parser struct {
	// FieldPrefix is stripped from field names before deriving property
	// names, so that with prefix "f" field fNumber declares property number.
	FieldPrefix string
}

// Parse parses lines with the zero Parser.
func Parse(lines []string) (*BeanModel, error) {
	return Parser{}.Parse(lines)
}

// Parse returns the bean declared in lines, or nil if lines declare no bean.
// Lines inside a generated region are ignored.
func (p Parser) Parse(lines []string) (*BeanModel, error) {
	skip := generatedLines(lines)

	def := -1
	for i, line := range lines {
		if skip[i] || !hasMarker(line, DefinitionMarker) {
			continue
		}
		if def >= 0 {
			return nil, Errorf(i, "duplicate %s marker, first at line %d", DefinitionMarker, def+1)
		}
		def = i
	}
	if def < 0 {
		return nil, nil
	}

	model, err := parseDefinition(lines, skip, def)
	if err != nil {
		return nil, err
	}

	body := bodyEnd(lines, skip, model.HeaderLine)
	seen := make(map[string]int)
	for i, line := range lines {
		if skip[i] || !hasMarker(line, PropertyMarker) {
			continue
		}
		prop, err := p.parseProperty(lines, skip, i, model.Name)
		if err != nil {
			return nil, err
		}
		if prop.Style != beans.StyleDerived && (i <= model.HeaderLine || i >= body) {
			return nil, Errorf(i, "%s on field %s is outside the %s struct body", PropertyMarker, prop.FieldName, model.Name)
		}
		if first, ok := seen[prop.Name]; ok {
			return nil, Errorf(prop.Line, "property %q already declared at line %d", prop.Name, first+1)
		}
		seen[prop.Name] = prop.Line
		model.Properties = append(model.Properties, prop)
	}
	return model, nil
}

// parseDefinition reads the definition marker options and the struct header
// that follows the marker or shares its line.
func parseDefinition(lines []string, skip []bool, def int) (*BeanModel, error) {
	line := lines[def]
	at := strings.Index(line, DefinitionMarker)
	opts, err := parseOptions(line[at+len(DefinitionMarker):])
	if err != nil {
		return nil, Errorf(def, "%s: %v", DefinitionMarker, err)
	}
	model := &BeanModel{}
	for _, o := range opts {
		switch {
		case o.key == "style" && o.value == "immutable":
			model.Immutable = true
		case o.key == "style" && o.value == "mutable":
			model.Immutable = false
		default:
			return nil, Errorf(def, "%s: unsupported option %s=%s", DefinitionMarker, o.key, o.value)
		}
	}

	header := -1
	if strings.TrimSpace(line[:at]) != "" {
		header = def
	} else {
		for i := def + 1; i < len(lines); i++ {
			if skip[i] || isBlankOrComment(lines[i]) {
				continue
			}
			header = i
			break
		}
	}
	if header < 0 {
		return nil, Errorf(def, "%s is not followed by a struct declaration", DefinitionMarker)
	}
	text := lines[header]
	if header == def {
		text = text[:at]
	}
	if err := parseHeader(stripComment(text), model); err != nil {
		return nil, Errorf(header, "%v", err)
	}
	model.HeaderLine = header
	return model, nil
}

// parseHeader reads "type Name[Params] struct {".
func parseHeader(text string, model *BeanModel) error {
	rest, ok := strings.CutPrefix(strings.TrimSpace(text), "type ")
	if !ok {
		return errors.New("expected struct declaration, found " + quote(text))
	}
	rest = strings.TrimLeft(rest, " \t")
	name, rest := leadingIdent(rest)
	if name == "" {
		return errors.New("missing struct name")
	}
	model.Name = name
	if strings.HasPrefix(rest, "[") {
		end := matching(rest, 0)
		if end < 0 {
			return errors.New("unterminated type parameter list")
		}
		model.TypeParams = strings.TrimSpace(rest[1:end])
		model.TypeParamNames = paramNames(model.TypeParams)
		if len(model.TypeParamNames) == 0 {
			return errors.New("empty type parameter list")
		}
		rest = rest[end+1:]
	}
	rest = strings.TrimSpace(rest)
	body, ok := strings.CutPrefix(rest, "struct")
	if !ok || strings.TrimSpace(body) != "{" {
		return errors.New(name + " must be declared as a struct with the opening brace on the header line")
	}
	return nil
}

// paramNames extracts the names of a type parameter list such as
// "K comparable, V map[string][]string" or "F, S any".
func paramNames(params string) []string {
	var names []string
	for _, part := range splitTopLevel(params, ',') {
		name, _ := leadingIdent(strings.TrimSpace(part))
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

func (p Parser) parseProperty(lines []string, skip []bool, marker int, bean string) (*PropertyDeclaration, error) {
	line := lines[marker]
	at := strings.Index(line, PropertyMarker)
	opts, err := parseOptions(line[at+len(PropertyMarker):])
	if err != nil {
		return nil, Errorf(marker, "%s: %v", PropertyMarker, err)
	}

	var (
		derived  bool
		validate string
		get      string
		prop     = &PropertyDeclaration{}
	)
	for _, o := range opts {
		switch o.key {
		case "style":
			if o.value != "derived" {
				return nil, Errorf(marker, "%s: unsupported style %q", PropertyMarker, o.value)
			}
			derived = true
		case "validate":
			if o.value != ValidateNotNull {
				return nil, Errorf(marker, "%s: unsupported validation %q", PropertyMarker, o.value)
			}
			validate = o.value
		case "get":
			if o.value != "field" && o.value != "optional" {
				return nil, Errorf(marker, "%s: unsupported getter style %q", PropertyMarker, o.value)
			}
			get = o.value
		case "accessor":
			if !isIdent(o.value) {
				return nil, Errorf(marker, "%s: accessor %q is not an identifier", PropertyMarker, o.value)
			}
			prop.Accessor = o.value
		case "init":
			if strings.TrimSpace(o.value) == "" {
				return nil, Errorf(marker, "%s: empty initializer", PropertyMarker)
			}
			prop.Initializer = o.value
		default:
			return nil, Errorf(marker, "%s: unknown option %q", PropertyMarker, o.key)
		}
	}

	decl := -1
	for i := marker + 1; i < len(lines); i++ {
		if skip[i] {
			break
		}
		if isBlankOrComment(lines[i]) {
			continue
		}
		decl = i
		break
	}
	if decl < 0 {
		return nil, Errorf(marker, "%s is not followed by a declaration", PropertyMarker)
	}
	prop.Line = decl
	text := strings.TrimSpace(lines[decl])

	if strings.HasPrefix(text, "func ") || strings.HasPrefix(text, "func(") {
		if !derived {
			return nil, Errorf(decl, "method declarations need style=derived")
		}
		if validate != "" || get != "" || prop.Initializer != "" {
			return nil, Errorf(marker, "derived property accepts no validate, get or init option")
		}
		name, typ, recv, err := parseMethod(text)
		if err != nil {
			return nil, Errorf(decl, "%v", err)
		}
		if recv != bean {
			return nil, Errorf(decl, "derived method %s has receiver %s, not %s", name, recv, bean)
		}
		prop.FieldName = name
		prop.Name = lowerFirst(name)
		prop.Type = typ
		prop.Style = beans.StyleDerived
		return prop, nil
	}
	if derived {
		return nil, Errorf(decl, "style=derived must annotate a method")
	}

	name, typ, err := parseField(text)
	if err != nil {
		return nil, Errorf(decl, "%v", err)
	}
	prop.FieldName = name
	prop.Type = typ
	prop.Validate = validate
	prop.Name = lowerFirst(name)
	if p.FieldPrefix != "" && len(name) > len(p.FieldPrefix) && strings.HasPrefix(name, p.FieldPrefix) {
		prop.Name = lowerFirst(name[len(p.FieldPrefix):])
	}

	switch {
	case get == "optional":
		if !strings.HasPrefix(typ, "*") {
			return nil, Errorf(decl, "get=optional requires a pointer type, %s has type %s", name, typ)
		}
		prop.Style = beans.StyleOptionalWrapped
	case get == "field":
		prop.Style = beans.StyleFieldOnlyGet
	case strings.HasPrefix(typ, "[]") || strings.HasPrefix(typ, "map["):
		prop.Style = beans.StyleCollection
	case validate == ValidateNotNull:
		prop.Style = beans.StyleReadWriteValidated
	default:
		prop.Style = beans.StyleReadWrite
	}
	return prop, nil
}

// parseField reads "name Type [tag] [// comment]".
func parseField(text string) (name, typ string, err error) {
	if text == "}" || strings.HasPrefix(text, "}") || strings.HasPrefix(text, ")") {
		return "", "", errors.New("property marker is not followed by a field")
	}
	if strings.HasPrefix(text, "*") {
		return "", "", errors.New("embedded fields cannot be properties")
	}
	name, rest := leadingIdent(text)
	if name == "" {
		return "", "", errors.New("expected field declaration, found " + quote(text))
	}
	if strings.HasPrefix(rest, ".") {
		return "", "", errors.New("embedded fields cannot be properties")
	}
	if strings.HasPrefix(strings.TrimLeft(rest, " \t"), ",") {
		return "", "", errors.New("declare one field per property marker")
	}
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", "", errors.New("expected field declaration, found " + quote(text))
	}
	typ = strings.TrimSpace(typeText(rest))
	if typ == "" {
		return "", "", errors.New("embedded fields cannot be properties")
	}
	return name, typ, nil
}

// parseMethod reads "func (r *Bean) Name() Type {" and returns the base type
// name of the receiver along with the method name and result type.
func parseMethod(text string) (name, typ, recv string, err error) {
	rest := strings.TrimSpace(strings.TrimPrefix(text, "func"))
	if !strings.HasPrefix(rest, "(") {
		return "", "", "", errors.New("derived property must be a method")
	}
	end := matching(rest, 0)
	if end < 0 {
		return "", "", "", errors.New("unterminated receiver")
	}
	recv = receiverType(rest[1:end])
	rest = strings.TrimLeft(rest[end+1:], " \t")
	name, rest = leadingIdent(rest)
	if name == "" {
		return "", "", "", errors.New("missing method name")
	}
	rest = strings.TrimLeft(rest, " \t")
	if !strings.HasPrefix(rest, "()") {
		return "", "", "", errors.New("derived method " + name + " must take no arguments")
	}
	rest = strings.TrimSpace(stripComment(rest[2:]))
	body, ok := strings.CutSuffix(rest, "{")
	if !ok {
		return "", "", "", errors.New("derived method " + name + " must open its body on the declaration line")
	}
	typ = strings.TrimSpace(body)
	if typ == "" || strings.HasPrefix(typ, "(") {
		return "", "", "", errors.New("derived method " + name + " must return a single value")
	}
	return name, typ, recv, nil
}

// receiverType returns the base type name of a receiver such as "p *Pair[F, S]",
// "*Light" or "a Address".
func receiverType(recv string) string {
	recv = strings.TrimSpace(recv)
	if _, rest := leadingIdent(recv); rest != "" && (rest[0] == ' ' || rest[0] == '\t') {
		recv = strings.TrimSpace(rest)
	}
	recv = strings.TrimSpace(strings.TrimPrefix(recv, "*"))
	name, _ := leadingIdent(recv)
	return name
}

// bodyEnd returns the line closing the struct body opened on header, or
// len(lines) if the body is never closed. Braces inside comments, strings and
// struct tags are ignored.
func bodyEnd(lines []string, skip []bool, header int) int {
	depth := 0
	for i := header; i < len(lines); i++ {
		if skip[i] {
			continue
		}
		line := lines[i]
		for j := 0; j < len(line); j++ {
			switch c := line[j]; c {
			case '"', '`', '\'':
				j = closingQuote(line, j)
			case '/':
				if j+1 < len(line) && line[j+1] == '/' {
					j = len(line)
				}
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					return i
				}
			}
		}
	}
	return len(lines)
}

// closingQuote returns the index of the quote closing the literal opened at
// open, or len(s) if the literal runs to the end of the line.
func closingQuote(s string, open int) int {
	q := s[open]
	for j := open + 1; j < len(s); j++ {
		switch {
		case s[j] == '\\' && q != '`':
			j++
		case s[j] == q:
			return j
		}
	}
	return len(s)
}

// typeText returns the type part of a field declaration, ending at a
// top-level struct tag or line comment.
func typeText(s string) string {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '[' || c == '(' || c == '{':
			depth++
		case c == ']' || c == ')' || c == '}':
			depth--
		case depth == 0 && (c == '`' || c == '"'):
			return s[:i]
		case depth == 0 && c == '/' && i+1 < len(s) && s[i+1] == '/':
			return s[:i]
		}
	}
	return s
}

// IsGeneratedStart reports whether line opens a generated region, at any
// indentation.
func IsGeneratedStart(line string) bool {
	return hasToken(line, " AUTOGENERATED START ")
}

// IsGeneratedEnd reports whether line closes a generated region, at any
// indentation.
func IsGeneratedEnd(line string) bool {
	return hasToken(line, " AUTOGENERATED END ")
}

func hasToken(line, token string) bool {
	return strings.Contains(" "+strings.TrimSpace(line)+" ", token)
}

// generatedLines flags the lines of the generated region, markers included.
func generatedLines(lines []string) []bool {
	skip := make([]bool, len(lines))
	in := false
	for i, line := range lines {
		switch {
		case IsGeneratedStart(line):
			in = true
			skip[i] = true
		case IsGeneratedEnd(line):
			skip[i] = true
			in = false
		default:
			skip[i] = in
		}
	}
	return skip
}

// hasMarker reports whether line carries marker as a comment token.
func hasMarker(line, marker string) bool {
	at := strings.Index(line, marker)
	if at < 0 {
		return false
	}
	after := line[at+len(marker):]
	if after != "" && after[0] != ' ' && after[0] != '\t' {
		return false
	}
	before := strings.TrimSpace(line[:at])
	return before == "" || strings.HasPrefix(before, "type ")
}

func isBlankOrComment(line string) bool {
	t := strings.TrimSpace(line)
	return t == "" || strings.HasPrefix(t, "//")
}

// stripComment removes a trailing line comment.
func stripComment(s string) string {
	if i := strings.Index(s, "//"); i >= 0 {
		return s[:i]
	}
	return s
}

// matching returns the index of the bracket closing the one at open, or -1.
func matching(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '[', '(', '{':
			depth++
		case ']', ')', '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// splitTopLevel splits s at sep outside brackets.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[', '(', '{':
			depth++
		case ']', ')', '}':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// leadingIdent splits s into a leading Go identifier and the rest.
func leadingIdent(s string) (string, string) {
	end := 0
	for end < len(s) {
		r, size := utf8.DecodeRuneInString(s[end:])
		if r != '_' && !unicode.IsLetter(r) && (end == 0 || !unicode.IsDigit(r)) {
			break
		}
		end += size
	}
	return s[:end], s[end:]
}

func isIdent(s string) bool {
	id, rest := leadingIdent(s)
	return id != "" && rest == ""
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

func quote(s string) string {
	return "\"" + strings.TrimSpace(s) + "\""
}
