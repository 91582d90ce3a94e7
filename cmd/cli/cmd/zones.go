// Package cmd - zones command
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"isofit/core/catalog"
)

// zonesCmd lists the supported deviation letters and preferred zones
var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "List supported deviation letters and preferred zones",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-8s %-16s %-7s %-8s %s\n", "LETTER", "ANCHORING", "TABLE", "FORMULA", "NOTES")
		for _, entry := range catalog.Entries() {
			fmt.Printf("%-8s %-16s %-7s %-8s %s\n",
				entry.Letter+"/"+strings.ToUpper(entry.Letter),
				entry.Category.String(),
				yesNo(entry.TableMode),
				yesNo(entry.FormulaMode),
				entry.Notes,
			)
		}
		fmt.Printf("\nPreferred zones: %s\n", strings.Join(catalog.PreferredZones, ", "))
	},
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
