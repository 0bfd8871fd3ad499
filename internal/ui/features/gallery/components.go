package gallery

import (
	"net/url"
	"strconv"
)

// GridID is the element patched when assets change.
const GridID = "gallery-grid"

// AssetPath returns the URL of a catalogued image.
func AssetPath(file string) string {
	return "/gallery/assets/" + url.PathEscape(file)
}

func itemID(i int) string {
	return "gallery-item-" + strconv.Itoa(i+1)
}
