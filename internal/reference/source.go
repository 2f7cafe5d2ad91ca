package reference

import "context"

// Document names one of the four reference tables.
type Document string

const (
	DocumentLicenses            Document = "licenses"
	DocumentAssetSources        Document = "asset-sources"
	DocumentComplianceChecklist Document = "compliance-checklist"
	DocumentContentCategories   Document = "content-categories"
)

// Documents lists every table a Dataset is assembled from.
var Documents = []Document{
	DocumentLicenses,
	DocumentAssetSources,
	DocumentComplianceChecklist,
	DocumentContentCategories,
}

// maxDocumentSize caps how much of a single reference document is read.
const maxDocumentSize = 4 << 20

// Source fetches the raw bytes of a reference document.
type Source interface {
	Fetch(ctx context.Context, doc Document) ([]byte, error)
}
