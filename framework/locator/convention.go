package locator

import "strings"

// DefaultMask strips a leading "I" marker from the capability's simple
// name: "app.IWidget" derives "app.Widget".
const DefaultMask = "I*"

// deriveImplementation applies the convention mask to a capability key
// and returns the derived implementation identifier.
//
// The mask is a single pattern with one "*" placeholder; the text
// around it is the marker stripped from the simple-name portion of the
// key (everything after the last "."). The stripped simple name is
// substituted back into the qualified key:
//
//	deriveImplementation("app.IWidget", "I*")                    // "app.Widget"
//	deriveImplementation("repo.ManagerInterface", "*Interface")  // "repo.Manager"
//
// Mask syntax is not validated. A mask that does not match the simple
// name leaves it unchanged; the mismatch surfaces later as a
// construction failure on the underived identifier.
func deriveImplementation(key, mask string) string {
	qualifier, simple := splitKey(key)

	prefix, suffix, _ := strings.Cut(mask, "*")
	if len(simple) > len(prefix)+len(suffix) &&
		strings.HasPrefix(simple, prefix) && strings.HasSuffix(simple, suffix) {
		simple = simple[len(prefix) : len(simple)-len(suffix)]
	}

	if qualifier == "" {
		return simple
	}
	return qualifier + "." + simple
}

// splitKey separates a qualified key into its qualifier and simple
// name at the last dot. Keys without a dot are all simple name.
func splitKey(key string) (qualifier, simple string) {
	if i := strings.LastIndex(key, "."); i >= 0 {
		return key[:i], key[i+1:]
	}
	return "", key
}
