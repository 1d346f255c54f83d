package catalog

// DefaultCountry is shown when nothing better is known: it is also the
// direct-fetch fallback when the catalog itself cannot be loaded.
const DefaultCountry = "Algeria"

// Resolve picks the country to display, in priority order: the requested
// country if it is a catalog member, then DefaultCountry if present, then
// the first catalog entry in received order. A catalog that carries neither
// the request nor the default is served from its first entry rather than
// rejected. An empty catalog resolves to DefaultCountry.
func Resolve(catalog []string, requested string) string {
	if requested != "" && contains(catalog, requested) {
		return requested
	}
	if contains(catalog, DefaultCountry) {
		return DefaultCountry
	}
	if len(catalog) > 0 {
		return catalog[0]
	}
	return DefaultCountry
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
