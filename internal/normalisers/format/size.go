package format

import "fmt"

// Size renders a repository size given in kilobytes. Sizes below 1024 KB
// are shown in KB, everything else in MB; there is no larger unit.
func Size(kb int) string {
	if kb < 1024 {
		return fmt.Sprintf("%.2f KB", float64(kb))
	}
	return fmt.Sprintf("%.2f MB", float64(kb)/1024)
}
