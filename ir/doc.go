// Package ir provides the document model for KDL documents.
//
// A Document is an ordered list of Nodes; a Node has a name, an
// optional type annotation, ordered Entries (arguments and properties)
// and an optional child Document. Values are a closed tagged union over
// the KDL value space: string, integer, float, bool and null.
//
// The model carries no position information; parse keeps spans on the
// side for consumers that want them.
//
// Parse output is treated as immutable: nothing in this package mutates
// a Document after construction, and consumers are expected not to
// either. Programmatic construction goes through the builder:
//
//	doc := ir.NewDocument(
//	    ir.NewNode("server").
//	        Arg(ir.String("web-1")).
//	        Prop("port", ir.Integer(8080, 10)).
//	        Child(ir.NewNode("tls").Arg(ir.Bool(true))),
//	)
package ir
