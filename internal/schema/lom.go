package schema

import m "github.com/romanpravda/scormpack/internal/manifest"

const lomVocabulary = "LOMv1.0"

// lomDocument builds the metadata.xml tree. Only the values in p vary.
func lomDocument(p MetadataParams) *m.Node {
	return lomElement(
		m.Element("general",
			m.Element("identifier",
				m.Leaf("catalog", m.String(p.CatalogValue)),
				m.Leaf("entry", m.String(p.EntryIdentifier)),
			),
			langString("title", "en-US", p.Title),
			m.Leaf("language", m.String("en")),
			langString("description", "en-US", ""),
			langString("keyword", "en-US", ""),
		),
		m.Element("lifeCycle",
			langString("version", "en-US", p.LifeCycleVersion),
			vocabulary("status", "final"),
		),
		m.Element("metaMetadata",
			m.Leaf("metadataSchema", m.String(lomVocabulary)),
			m.Leaf("metadataSchema", m.String("SCORM_CAM_v1.3")),
		),
		m.Element("technical",
			m.Leaf("format", m.String("text/html")),
		),
		m.Element("rights",
			vocabulary("cost", "yes"),
			vocabulary("copyrightAndOtherRestrictions", "yes"),
		),
		m.Element("classification",
			vocabulary("purpose", p.Classification),
			langString("description", "en-US", ""),
			langString("keyword", "en-US", ""),
		),
	)
}

func vocabulary(name, value string) *m.Node {
	return m.Element(name,
		m.Leaf("source", m.String(lomVocabulary)),
		m.Leaf("value", m.String(value)),
	)
}
