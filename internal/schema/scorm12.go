package schema

import (
	"strings"

	m "github.com/romanpravda/scormpack/internal/manifest"
	"github.com/romanpravda/scormpack/pkg/scormpack"
)

type scorm12 struct{ noMetadata }

func (scorm12) Manifest(p Params) ([]*m.Node, error) {
	files, err := FilesForSchema(p.Files, p.Source)
	if err != nil {
		return nil, err
	}

	org := SchemaOrganization(p.Organization)

	root := m.Element("manifest",
		m.Element("metadata",
			m.Leaf("schema", m.String(scormSchema)),
			m.Leaf("schemaversion", m.String(p.DisplayVersion)),
		),
		m.Element("organizations",
			m.Element("organization",
				m.Leaf("title", m.String(p.Title)),
				m.Element("item",
					m.Leaf("title", m.String(p.Title)),
					m.Leaf("adlcp:masteryscore", m.Int(p.MasteryScore)),
				).
					WithAttr("identifier", m.String(ItemIdentifier(p.Identifier))).
					WithAttr("identifierref", m.String(IdentifierRef(p.Identifier))),
			).WithAttr("identifier", m.String(org)),
		).WithAttr("default", m.String(org)),
		m.Element("resources",
			sco(p, files),
		),
	).
		WithAttr("identifier", m.String(SchemaIdentifier(p.Identifier))).
		WithAttr("version", m.Int(1)).
		WithAttr("xmlns:adlcp", m.String(nsADLCP12)).
		WithAttr("xmlns", m.String(nsIMSCP12)).
		WithAttr("xmlns:xsi", m.String(nsXSI)).
		WithAttr("xsi:schemaLocation", m.String(schemaLocations(scormpack.DefinitionFilesDir+"/",
			nsIMSCP12, "imscp_rootv1p1p2",
			nsIMSMD12, "imsmd_rootv1p2p1",
			nsADLCP12, "adlcp_rootv1p2",
		)))

	return []*m.Node{root}, nil
}

// sco returns the single resource element every builder emits.
func sco(p Params, files []*m.Node) *m.Node {
	return m.Element("resource", files...).
		WithAttr("identifier", m.String(IdentifierRef(p.Identifier))).
		WithAttr("type", m.String("webcontent")).
		WithAttr("href", m.String(p.StartingPage)).
		WithAttr("adlcp:scormType", m.String("sco"))
}

// schemaLocations joins namespace/file pairs into an xsi:schemaLocation value.
// Each file name gets dir prepended and ".xsd" appended.
func schemaLocations(dir string, pairs ...string) string {
	parts := make([]string, 0, len(pairs))
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, pairs[i]+" "+dir+pairs[i+1]+".xsd")
	}
	return strings.Join(parts, " ")
}
