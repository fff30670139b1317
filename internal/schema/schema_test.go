package schema

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romanpravda/scormpack/internal/manifest"
	"github.com/romanpravda/scormpack/pkg/scormpack"
)

type stubLister struct {
	files []string
	err   error
	roots []string
}

func (s *stubLister) ListFiles(root string) ([]string, error) {
	s.roots = append(s.roots, root)
	return s.files, s.err
}

func introParams(lister FileLister) Params {
	return Params{
		Title:               "Intro",
		Identifier:          "intro1",
		Organization:        "",
		MasteryScore:        80,
		StartingPage:        "index.html",
		Source:              "/tmp/src",
		MetadataDescription: "Build Date: 03.07.2024; Technology: html;",
		Files:               lister,
	}
}

func hrefs(t *testing.T, root *manifest.Node) []string {
	t.Helper()
	var res *manifest.Node
	for _, r := range root.Child("resources").ChildrenNamed("resource") {
		res = r
	}
	require.NotNil(t, res, "resource element")

	var out []string
	for _, f := range res.ChildrenNamed("file") {
		href, ok := f.Attribute("href")
		require.True(t, ok)
		out = append(out, href.Text())
	}
	return out
}

func attr(t *testing.T, n *manifest.Node, name string) string {
	t.Helper()
	require.NotNil(t, n)
	v, ok := n.Attribute(name)
	require.True(t, ok, "attribute %s on <%s>", name, n.Name)
	return v.Text()
}

func TestDerive(t *testing.T) {
	assert.Equal(t, "item_Course1", ItemIdentifier("Course 1"))
	assert.Equal(t, "resource_Course1", IdentifierRef("Course 1"))
	assert.Equal(t, "My_Org", SchemaOrganization("My Org"))
	assert.Equal(t, "My.Course", SchemaIdentifier("My Course"))
	assert.Equal(t, "", SchemaOrganization(""))
	assert.Equal(t, "item_abc", ItemIdentifier(" a b c "))
}

func TestFilesForSchema(t *testing.T) {
	lister := &stubLister{files: []string{"index.html", filepath.Join("img", "logo.png")}}

	nodes, err := FilesForSchema(lister, "/content")
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, []string{"/content"}, lister.roots)
	assert.Equal(t, "file", nodes[0].Name)
	assert.Equal(t, filepath.Join("img", "logo.png"), attr(t, nodes[1], "href"))
}

func TestFilesForSchema_ListingFailure(t *testing.T) {
	cause := errors.New("permission denied")

	_, err := FilesForSchema(&stubLister{err: cause}, "/content")
	require.Error(t, err)
	assert.ErrorIs(t, err, scormpack.ErrFileAccess)
	assert.ErrorIs(t, err, cause)

	_, err = FilesForSchema(nil, "/content")
	assert.ErrorIs(t, err, scormpack.ErrFileAccess)
}

func TestFor(t *testing.T) {
	for _, v := range scormpack.SupportedVersions() {
		b, err := For(v)
		require.NoError(t, err, v.String())
		assert.NotNil(t, b)
	}

	_, err := For(scormpack.Version(0))
	assert.ErrorIs(t, err, scormpack.ErrUnsupportedVersion)
}

func TestBuilders_PropagateListingErrors(t *testing.T) {
	for _, v := range scormpack.SupportedVersions() {
		t.Run(v.String(), func(t *testing.T) {
			b, err := For(v)
			require.NoError(t, err)

			_, err = b.Manifest(introParams(&stubLister{err: errors.New("boom")}))
			assert.ErrorIs(t, err, scormpack.ErrFileAccess)
		})
	}
}

func TestBuilders_SharedStructure(t *testing.T) {
	for _, v := range scormpack.SupportedVersions() {
		t.Run(v.String(), func(t *testing.T) {
			b, err := For(v)
			require.NoError(t, err)

			p := introParams(&stubLister{files: []string{"index.html", filepath.Join("img", "logo.png")}})
			p.DisplayVersion = v.DisplayName()
			p.Organization = "Acme Learning"

			nodes, err := b.Manifest(p)
			require.NoError(t, err)
			require.Len(t, nodes, 1)
			root := nodes[0]

			assert.Equal(t, "manifest", root.Name)
			assert.Equal(t, "intro1", attr(t, root, "identifier"))
			assert.Equal(t, v.DisplayName(), root.Find("metadata", "schemaversion").Value.Text())
			assert.Equal(t, "ADL SCORM", root.Find("metadata", "schema").Value.Text())
			assert.Equal(t, "Acme_Learning", attr(t, root.Child("organizations"), "default"))

			item := root.Find("organizations", "organization", "item")
			assert.Equal(t, "item_intro1", attr(t, item, "identifier"))
			assert.Equal(t, "resource_intro1", attr(t, item, "identifierref"))
			assert.Equal(t, "Intro", item.Child("title").Value.Text())

			assert.Equal(t, []string{"index.html", filepath.Join("img", "logo.png")}, hrefs(t, root))
		})
	}
}

func TestScorm12_Render(t *testing.T) {
	b, err := For(scormpack.Version12)
	require.NoError(t, err)

	p := introParams(&stubLister{files: []string{"index.html", "img/logo.png"}})
	p.DisplayVersion = "1.2"

	nodes, err := b.Manifest(p)
	require.NoError(t, err)

	got, err := manifest.Render(nodes)
	require.NoError(t, err)

	want := `<?xml version="1.0" encoding="UTF-8"?>
<manifest identifier="intro1" version="1" xmlns:adlcp="http://www.adlnet.org/xsd/adlcp_rootv1p2" xmlns="http://www.imsproject.org/xsd/imscp_rootv1p1p2" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:schemaLocation="http://www.imsproject.org/xsd/imscp_rootv1p1p2 definitionFiles/imscp_rootv1p1p2.xsd http://www.imsglobal.org/xsd/imsmd_rootv1p2p1 definitionFiles/imsmd_rootv1p2p1.xsd http://www.adlnet.org/xsd/adlcp_rootv1p2 definitionFiles/adlcp_rootv1p2.xsd">
  <metadata>
    <schema>ADL SCORM</schema>
    <schemaversion>1.2</schemaversion>
  </metadata>
  <organizations default="">
    <organization identifier="">
      <title>Intro</title>
      <item identifier="item_intro1" identifierref="resource_intro1">
        <title>Intro</title>
        <adlcp:masteryscore>80</adlcp:masteryscore>
      </item>
    </organization>
  </organizations>
  <resources>
    <resource identifier="resource_intro1" type="webcontent" href="index.html" adlcp:scormType="sco">
      <file href="index.html"></file>
      <file href="img/logo.png"></file>
    </resource>
  </resources>
</manifest>
`
	assert.Equal(t, want, got)

	meta, err := b.Metadata(MetadataParams{Title: "Intro"})
	assert.NoError(t, err)
	assert.Nil(t, meta)
}

func TestScorm2004Ed3_Sequencing(t *testing.T) {
	b, err := For(scormpack.Version2004Ed3)
	require.NoError(t, err)

	nodes, err := b.Manifest(introParams(&stubLister{}))
	require.NoError(t, err)
	root := nodes[0]

	assert.Equal(t, "1", attr(t, root, "version"))
	assert.Contains(t, attr(t, root, "xsi:schemaLocation"), "http://www.imsglobal.org/xsd/imsss definitionFiles/imsss_v1p0.xsd")

	primary := root.Find("organizations", "organization", "item", "imsss:sequencing", "imsss:objectives", "imsss:primaryObjective")
	assert.Equal(t, "PRIMARYOBJ", attr(t, primary, "objectiveID"))
	assert.Equal(t, "true", attr(t, primary, "satisfiedByMeasure"))

	measure := primary.Child("imsss:minNormalizedMeasure")
	require.NotNil(t, measure)
	assert.Equal(t, manifest.KindFloat, measure.Value.Kind())
	assert.Equal(t, "0.8", measure.Value.Text())

	delivery := root.Find("organizations", "organization", "item", "imsss:sequencing", "imsss:deliveryControls")
	assert.Equal(t, "true", attr(t, delivery, "completionSetByContent"))
	assert.Equal(t, "true", attr(t, delivery, "objectiveSetByContent"))

	control := root.Find("organizations", "organization", "imsss:sequencing", "imsss:controlMode")
	assert.Equal(t, "true", attr(t, control, "choice"))
	assert.Equal(t, "true", attr(t, control, "flow"))

	meta, err := b.Metadata(MetadataParams{})
	assert.NoError(t, err)
	assert.Nil(t, meta)
}

func TestScorm2004Ed3_MeasureIsNotTruncated(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{80, "0.8"},
		{75, "0.75"},
		{100, "1"},
		{0, "0"},
		{33, "0.33"},
	}

	b, err := For(scormpack.Version2004Ed3)
	require.NoError(t, err)

	for _, tt := range tests {
		p := introParams(&stubLister{})
		p.MasteryScore = tt.score

		nodes, err := b.Manifest(p)
		require.NoError(t, err)

		text, err := manifest.Render(nodes)
		require.NoError(t, err)
		assert.Contains(t, text, "<imsss:minNormalizedMeasure>"+tt.want+"</imsss:minNormalizedMeasure>")
	}
}

func TestScorm2004Ed4_Rich(t *testing.T) {
	b, err := For(scormpack.Version2004Ed4)
	require.NoError(t, err)

	nodes, err := b.Manifest(introParams(&stubLister{files: []string{"index.html"}}))
	require.NoError(t, err)
	root := nodes[0]

	version, _ := root.Attribute("version")
	assert.Equal(t, manifest.KindFloat, version.Kind())
	assert.Equal(t, "1.3", version.Text())
	assert.Equal(t, nsLOM, attr(t, root, "xmlns:lom"))
	assert.Contains(t, attr(t, root, "xsi:schemaLocation"), "http://ltsc.ieee.org/xsd/LOM lom.xsd")
	assert.NotContains(t, attr(t, root, "xsi:schemaLocation"), "definitionFiles/")
	assert.Equal(t, "metadata.xml", root.Find("metadata", "adlcp:location").Value.Text())

	org := root.Find("organizations", "organization")
	assert.Equal(t, "false", attr(t, org, "adlseq:objectivesGlobalToSystem"))
	assert.Equal(t, "hierarchical", attr(t, org, "structure"))

	item := org.Child("item")
	assert.Equal(t, "true", attr(t, item, "isvisible"))

	var hidden []string
	for _, n := range item.Find("adlnav:presentation", "adlnav:navigationInterface").ChildrenNamed("adlnav:hideLMSUI") {
		hidden = append(hidden, n.Value.Text())
	}
	assert.Equal(t, []string{"continue", "previous", "exit", "exitAll", "abandon", "abandonAll", "suspendAll"}, hidden)
	sequencing := item.Child("imsss:sequencing")
	require.Len(t, sequencing.Children, 1, "item sequencing carries delivery controls only")
	delivery := sequencing.Children[0]
	assert.Equal(t, "imsss:deliveryControls", delivery.Name)
	assert.Equal(t, "true", attr(t, delivery, "completionSetByContent"))
	assert.Equal(t, "true", attr(t, delivery, "objectiveSetByContent"))
	assert.Nil(t, item.Find("imsss:sequencing", "imsss:objectives"))

	desc := org.Find("metadata", "lom", "general", "description", "string")
	assert.Equal(t, "en", attr(t, desc, "language"))
	assert.Equal(t, "Build Date: 03.07.2024; Technology: html;", desc.Value.Text())
	assert.Equal(t, "metadata.xml", org.Find("metadata", "adlcp:location").Value.Text())

	control := org.Find("imsss:sequencing", "imsss:controlMode")
	assert.Equal(t, "true", attr(t, control, "flow"))
	_, hasChoice := control.Attribute("choice")
	assert.False(t, hasChoice)

	resources := root.Child("resources")
	require.Len(t, resources.Children, 2)
	assert.Equal(t, "metadata", resources.Children[0].Name)
	assert.Equal(t, "Intro", resources.Children[0].Find("lom", "general", "title", "string").Value.Text())
	assert.Equal(t, "resource", resources.Children[1].Name)
}

func TestScorm2004Ed4_Simplified(t *testing.T) {
	b, err := For(scormpack.Version2004Ed4)
	require.NoError(t, err)

	p := introParams(&stubLister{files: []string{"index.html"}})
	p.Simplified = true

	nodes, err := b.Manifest(p)
	require.NoError(t, err)
	root := nodes[0]

	item := root.Find("organizations", "organization", "item")
	var names []string
	for _, c := range item.Children {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"title", "metadata"}, names)

	lom := item.Find("metadata", "lom")
	require.NotNil(t, lom)
	assert.Empty(t, lom.Children)
	assert.Equal(t, nsLOM, attr(t, lom, "xmlns"))
	assert.Equal(t, "metadata.xml", item.Find("metadata", "adlcp:location").Value.Text())

	org := root.Find("organizations", "organization")
	assert.Nil(t, org.Child("metadata"))
	assert.Equal(t, "true", attr(t, org.Find("imsss:sequencing", "imsss:controlMode"), "flow"))

	resources := root.Child("resources")
	require.Len(t, resources.Children, 1)
	assert.Equal(t, "resource", resources.Children[0].Name)
}

func TestScorm2004Ed4_Metadata(t *testing.T) {
	b, err := For(scormpack.Version2004Ed4)
	require.NoError(t, err)

	nodes, err := b.Metadata(MetadataParams{
		Title:            "Intro",
		EntryIdentifier:  "1",
		CatalogValue:     "Catalog",
		LifeCycleVersion: "1",
		Classification:   "educational objective",
	})
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	lom := nodes[0]

	assert.Equal(t, "lom", lom.Name)
	assert.Equal(t, nsLOM+" lom.xsd", attr(t, lom, "xsi:schemaLocation"))

	var top []string
	for _, c := range lom.Children {
		top = append(top, c.Name)
	}
	assert.Equal(t, []string{"general", "lifeCycle", "metaMetadata", "technical", "rights", "classification"}, top)

	assert.Equal(t, "Catalog", lom.Find("general", "identifier", "catalog").Value.Text())
	assert.Equal(t, "1", lom.Find("general", "identifier", "entry").Value.Text())
	assert.Equal(t, "Intro", lom.Find("general", "title", "string").Value.Text())
	assert.Equal(t, "en", lom.Find("general", "language").Value.Text())
	assert.False(t, lom.Find("general", "description", "string").Value.IsSet())
	assert.Equal(t, "final", lom.Find("lifeCycle", "status", "value").Value.Text())
	assert.Equal(t, "text/html", lom.Find("technical", "format").Value.Text())
	assert.Equal(t, "yes", lom.Find("rights", "copyrightAndOtherRestrictions", "value").Value.Text())
	assert.Equal(t, "educational objective", lom.Find("classification", "purpose", "value").Value.Text())

	var schemas []string
	for _, n := range lom.Child("metaMetadata").Children {
		schemas = append(schemas, n.Value.Text())
	}
	assert.Equal(t, []string{"LOMv1.0", "SCORM_CAM_v1.3"}, schemas)

	_, err = manifest.Render(nodes)
	assert.NoError(t, err)
}

func TestBuilders_Deterministic(t *testing.T) {
	for _, v := range scormpack.SupportedVersions() {
		b, err := For(v)
		require.NoError(t, err)

		p := introParams(&stubLister{files: []string{"a.html", "index.html"}})
		first, err := b.Manifest(p)
		require.NoError(t, err)
		second, err := b.Manifest(p)
		require.NoError(t, err)

		a, err := manifest.Render(first)
		require.NoError(t, err)
		c, err := manifest.Render(second)
		require.NoError(t, err)
		assert.Equal(t, a, c, v.String())
	}
}
