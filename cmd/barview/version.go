package main

import (
	"context"
	"fmt"
	"log"

	"github.com/janekbaraniewski/barview/internal/appupdate"
	"github.com/janekbaraniewski/barview/internal/version"
	"github.com/spf13/cobra"
)

// NewVersionCommand prints the build metadata and, for release builds, checks
// GitHub for a newer version. The check is best effort and never fails the
// command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the barview version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Println("barview " + version.String())

			res, err := appupdate.Check(context.Background(), appupdate.CheckOptions{
				CurrentVersion: version.Version,
			})
			if err != nil {
				log.Printf("update check failed: %v", err)
				return
			}
			if res.UpdateAvailable {
				fmt.Printf("\nA newer release is available: %s (running %s)\n", res.LatestVersion, res.CurrentVersion)
				fmt.Printf("Upgrade: %s\n", res.UpgradeHint)
			}
		},
	}
}
