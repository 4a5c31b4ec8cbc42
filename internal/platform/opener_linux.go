//go:build linux

package platform

// openerArgs builds the argv that hands target to the desktop handler.
func openerArgs(target string) []string {
	return []string{"xdg-open", target}
}
