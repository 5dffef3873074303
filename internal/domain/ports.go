package domain

// CatalogLoader loads instrument catalogs. Load reads a catalog file;
// Default returns the embedded CCW catalog.
type CatalogLoader interface {
	Load(path string) (*Catalog, error)
	Default() (*Catalog, error)
}

// GitInfo stamps reports with the commit hash of the directory a catalog
// was loaded from, so a report records which instrument version produced it.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}

// ReportHistory persists condensed report entries per working directory.
type ReportHistory interface {
	Save(dir string, entry ReportEntry) error
	Load(dir string) ([]ReportEntry, error)
}
