//go:build windows

package platform

// openerArgs builds the argv that hands target to the shell handler.
// "start" needs a cmd wrapper and a dummy title argument.
func openerArgs(target string) []string {
	return []string{"cmd", "/c", "start", "", target}
}
