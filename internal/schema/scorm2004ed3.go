package schema

import (
	m "github.com/romanpravda/scormpack/internal/manifest"
	"github.com/romanpravda/scormpack/pkg/scormpack"
)

type scorm2004Ed3 struct{ noMetadata }

func (scorm2004Ed3) Manifest(p Params) ([]*m.Node, error) {
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
					itemSequencing(p.MasteryScore),
				).
					WithAttr("identifier", m.String(ItemIdentifier(p.Identifier))).
					WithAttr("identifierref", m.String(IdentifierRef(p.Identifier))),
				m.Element("imsss:sequencing",
					m.Element("imsss:controlMode").
						WithAttr("choice", m.String("true")).
						WithAttr("flow", m.String("true")),
				),
			).WithAttr("identifier", m.String(org)),
		).WithAttr("default", m.String(org)),
		m.Element("resources",
			sco(p, files),
		),
	).
		WithAttr("identifier", m.String(SchemaIdentifier(p.Identifier))).
		WithAttr("version", m.Int(1)).
		WithAttr("xmlns:adlnav", m.String(nsADLNav)).
		WithAttr("xmlns", m.String(nsIMSCP)).
		WithAttr("xmlns:adlseq", m.String(nsADLSeq)).
		WithAttr("xmlns:imsss", m.String(nsIMSSS)).
		WithAttr("xmlns:adlcp", m.String(nsADLCP)).
		WithAttr("xmlns:xsi", m.String(nsXSI)).
		WithAttr("xsi:schemaLocation", m.String(schemaLocations(scormpack.DefinitionFilesDir+"/",
			nsIMSCP, "imscp_v1p1",
			nsADLCP, "adlcp_v1p3",
			nsADLSeq, "adlseq_v1p3",
			nsADLNav, "adlnav_v1p3",
			nsIMSSS, "imsss_v1p0",
		)))

	return []*m.Node{root}, nil
}

// itemSequencing ties item completion to the mastery score.
func itemSequencing(masteryScore int) *m.Node {
	return m.Element("imsss:sequencing",
		m.Element("imsss:objectives",
			m.Element("imsss:primaryObjective",
				m.Leaf("imsss:minNormalizedMeasure", m.Float(float64(masteryScore)/100)),
			).
				WithAttr("objectiveID", m.String("PRIMARYOBJ")).
				WithAttr("satisfiedByMeasure", m.String("true")),
		),
		deliveryControls(),
	)
}

func deliveryControls() *m.Node {
	return m.Element("imsss:deliveryControls").
		WithAttr("completionSetByContent", m.String("true")).
		WithAttr("objectiveSetByContent", m.String("true"))
}
