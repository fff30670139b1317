// Package manifest provides the node tree that SCORM manifests and LOM
// metadata documents are built from, and its XML rendering.
//
// A Node has a name (which may carry a namespace prefix such as "adlcp:"),
// ordered attributes, ordered children and an optional scalar value. Attribute
// order is reproduced on output. Schema builders in internal/schema construct
// trees; Render turns them into an indented XML document:
//
//	root := manifest.Element("manifest",
//	    manifest.Leaf("schema", manifest.String("ADL SCORM")),
//	).WithAttr("version", manifest.Int(1))
//
//	xmlText, err := manifest.Render([]*manifest.Node{root})
//
// Parse reads a rendered document back into nodes, with every attribute and
// value as a string scalar.
package manifest
