//go:build !linux && !darwin && !windows

package platform

// BSDs and friends ship xdg-open with their desktop environments.
func openerArgs(target string) []string {
	return []string{"xdg-open", target}
}
