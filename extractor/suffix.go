package extractor

import "strings"

// ExtensionSuffixes are the vendor markers that identify non-core procedures.
var ExtensionSuffixes = []string{"ARB", "EXT", "KHR", "OVR", "NV", "AMD", "INTEL"}

// IsExtension reports whether name ends with one of ExtensionSuffixes.
func IsExtension(name string) bool {
	for _, suffix := range ExtensionSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
