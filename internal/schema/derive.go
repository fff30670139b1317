package schema

import (
	"fmt"
	"strings"

	"github.com/romanpravda/scormpack/internal/manifest"
	"github.com/romanpravda/scormpack/pkg/scormpack"
)

// SchemaIdentifier turns a course identifier into the manifest identifier.
func SchemaIdentifier(s string) string {
	return strings.ReplaceAll(s, " ", ".")
}

// ItemIdentifier returns the organization item id for a course identifier.
func ItemIdentifier(identifier string) string {
	return "item_" + strings.ReplaceAll(identifier, " ", "")
}

// IdentifierRef returns the resource id an item points to.
func IdentifierRef(identifier string) string {
	return "resource_" + strings.ReplaceAll(identifier, " ", "")
}

// SchemaOrganization returns the organization id.
func SchemaOrganization(organization string) string {
	return strings.ReplaceAll(organization, " ", "_")
}

// FilesForSchema returns one file node per regular file under root.
func FilesForSchema(lister FileLister, root string) ([]*manifest.Node, error) {
	if lister == nil {
		return nil, fmt.Errorf("no file lister for %s: %w", root, scormpack.ErrFileAccess)
	}

	paths, err := lister.ListFiles(root)
	if err != nil {
		return nil, fmt.Errorf("failed to list content root %s: %w: %w", root, scormpack.ErrFileAccess, err)
	}

	nodes := make([]*manifest.Node, 0, len(paths))
	for _, p := range paths {
		nodes = append(nodes, manifest.Element("file").WithAttr("href", manifest.String(p)))
	}
	return nodes, nil
}
