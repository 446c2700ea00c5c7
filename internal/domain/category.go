package domain

// Category is a marketplace content category. Its value is the remote
// category identifier used in catalog query strings.
type Category string

func (c Category) ID() string {
	return string(c)
}

const (
	CategoryFullIconThemes   Category = "132"
	CategoryCursors          Category = "107"
	CategoryGnomeShellThemes Category = "134"
	CategoryGtk4Themes       Category = "135"
	CategoryKDEThemes        Category = "104"
)

var Categories = []Category{
	CategoryFullIconThemes,
	CategoryCursors,
	CategoryGnomeShellThemes,
	CategoryGtk4Themes,
	CategoryKDEThemes,
}

func (c Category) Label() string {
	switch c {
	case CategoryFullIconThemes:
		return "Full Icon Themes"
	case CategoryCursors:
		return "Cursor Themes"
	case CategoryGnomeShellThemes:
		return "Gnome Shell Themes"
	case CategoryGtk4Themes:
		return "Gtk Themes"
	case CategoryKDEThemes:
		return "KDE Themes"
	default:
		return "Others"
	}
}

// CategoryFromID resolves a remote category identifier. ok is false for ids
// outside the five supported categories.
func CategoryFromID(id string) (Category, bool) {
	switch Category(id) {
	case CategoryFullIconThemes, CategoryCursors, CategoryGnomeShellThemes, CategoryGtk4Themes, CategoryKDEThemes:
		return Category(id), true
	default:
		return "", false
	}
}

// LabelForID returns the display label for a remote category id, falling
// back to "Others" for ids outside the supported set.
func LabelForID(id string) string {
	return Category(id).Label()
}
