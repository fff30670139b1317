// Package schema builds SCORM manifest and LOM metadata trees.
//
// One Builder exists per supported SCORM version. Builders are pure apart from
// listing the content root through a FileLister, so the same Params always
// produce the same tree:
//
//	b, err := schema.For(scormpack.Version2004Ed3)
//	if err != nil {
//	    return err
//	}
//	nodes, err := b.Manifest(params)
//	if err != nil {
//	    return err
//	}
//	xml, err := manifest.Render(nodes)
package schema
