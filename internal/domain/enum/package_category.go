package enum

// PackageCategory represents the type of service a package covers
type PackageCategory string

const (
	PackageCategoryPhoto PackageCategory = "photo"
	PackageCategoryVideo PackageCategory = "video"
	PackageCategoryCombo PackageCategory = "combo"
)

// Valid reports whether the category is one of the known values
func (c PackageCategory) Valid() bool {
	switch c {
	case PackageCategoryPhoto, PackageCategoryVideo, PackageCategoryCombo:
		return true
	}
	return false
}
