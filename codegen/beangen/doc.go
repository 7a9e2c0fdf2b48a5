// Package beangen rewrites Go source units that declare beans.
//
// A unit is a list of lines. When it carries a //bean:definition marker the
// generator parses the annotated struct, renders the accessors, mutators,
// property handles, name dispatch, builder factory and meta-bean into the
// region delimited by the AUTOGENERATED START and END markers, and returns the
// rewritten lines. Everything outside the region is returned unchanged:
//
//	g := beangen.New(beangen.Config{})
//	res, err := g.Generate(ctx, "address.go", lines)
//	if err != nil {
//		return err
//	}
//	if res.Changed {
//		write(res.Lines)
//	}
//
// Generation is a pure function of the input lines and the configuration, so
// units may be processed concurrently with a shared Generator.
package beangen
