package schema

import (
	m "github.com/romanpravda/scormpack/internal/manifest"
	"github.com/romanpravda/scormpack/pkg/scormpack"
)

// hiddenLMSControls are the LMS navigation controls hidden for the SCO.
var hiddenLMSControls = []string{
	"continue",
	"previous",
	"exit",
	"exitAll",
	"abandon",
	"abandonAll",
	"suspendAll",
}

type scorm2004Ed4 struct{}

func (scorm2004Ed4) Manifest(p Params) ([]*m.Node, error) {
	files, err := FilesForSchema(p.Files, p.Source)
	if err != nil {
		return nil, err
	}

	org := SchemaOrganization(p.Organization)

	item := m.Element("item", m.Leaf("title", m.String(p.Title))).
		WithAttr("identifier", m.String(ItemIdentifier(p.Identifier))).
		WithAttr("identifierref", m.String(IdentifierRef(p.Identifier))).
		WithAttr("isvisible", m.Bool(true))

	organization := m.Element("organization", m.Leaf("title", m.String(p.Title))).
		WithAttr("identifier", m.String(org)).
		WithAttr("adlseq:objectivesGlobalToSystem", m.Bool(false)).
		WithAttr("structure", m.String("hierarchical"))

	resources := m.Element("resources")

	if p.Simplified {
		item.WithChildren(
			m.Element("metadata",
				lomElement(),
				m.Leaf("adlcp:location", m.String(scormpack.MetadataFileName)),
			),
		)
		organization.WithChildren(item, flowControl())
	} else {
		item.WithChildren(presentation(), m.Element("imsss:sequencing", deliveryControls()))
		organization.WithChildren(
			item,
			m.Element("metadata",
				lomElement(
					m.Element("general",
						langString("description", "en", p.MetadataDescription),
					),
				),
				m.Leaf("adlcp:location", m.String(scormpack.MetadataFileName)),
			),
			flowControl(),
		)
		resources.WithChildren(
			m.Element("metadata",
				lomElement(
					m.Element("general",
						langString("title", "en", p.Title),
						langString("description", "en", p.MetadataDescription),
					),
				),
			),
		)
	}
	resources.WithChildren(sco(p, files))

	root := m.Element("manifest",
		m.Element("metadata",
			m.Leaf("schema", m.String(scormSchema)),
			m.Leaf("schemaversion", m.String(p.DisplayVersion)),
			m.Leaf("adlcp:location", m.String(scormpack.MetadataFileName)),
		),
		m.Element("organizations", organization).WithAttr("default", m.String(org)),
		resources,
	).
		WithAttr("identifier", m.String(SchemaIdentifier(p.Identifier))).
		WithAttr("version", m.Float(1.3)).
		WithAttr("xmlns:adlnav", m.String(nsADLNav)).
		WithAttr("xmlns:lom", m.String(nsLOM)).
		WithAttr("xmlns", m.String(nsIMSCP)).
		WithAttr("xmlns:adlseq", m.String(nsADLSeq)).
		WithAttr("xmlns:imsss", m.String(nsIMSSS)).
		WithAttr("xmlns:adlcp", m.String(nsADLCP)).
		WithAttr("xmlns:xsi", m.String(nsXSI)).
		WithAttr("xsi:schemaLocation", m.String(schemaLocations("",
			nsIMSCP, "imscp_v1p1",
			nsADLCP, "adlcp_v1p3",
			nsADLSeq, "adlseq_v1p3",
			nsADLNav, "adlnav_v1p3",
			nsIMSSS, "imsss_v1p0",
			nsLOM, "lom",
		)))

	return []*m.Node{root}, nil
}

func (scorm2004Ed4) Metadata(p MetadataParams) ([]*m.Node, error) {
	return []*m.Node{lomDocument(p)}, nil
}

func presentation() *m.Node {
	nav := m.Element("adlnav:navigationInterface")
	for _, control := range hiddenLMSControls {
		nav.WithChildren(m.Leaf("adlnav:hideLMSUI", m.String(control)))
	}
	return m.Element("adlnav:presentation", nav)
}

func flowControl() *m.Node {
	return m.Element("imsss:sequencing",
		m.Element("imsss:controlMode").WithAttr("flow", m.String("true")),
	)
}

// lomElement returns a lom root carrying its own namespace declarations.
func lomElement(children ...*m.Node) *m.Node {
	return m.Element("lom", children...).
		WithAttr("xmlns", m.String(nsLOM)).
		WithAttr("xmlns:xsi", m.String(nsXSI)).
		WithAttr("xsi:schemaLocation", m.String(lomLocation))
}

// langString wraps text into <name><string language="..">text</string></name>.
// Empty text leaves the string element empty.
func langString(name, language, text string) *m.Node {
	s := m.Element("string").WithAttr("language", m.String(language))
	if text != "" {
		s.WithValue(m.String(text))
	}
	return m.Element(name, s)
}
