package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/astiages123/auditpath/internal/selfupdate"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update auditpath to the latest release",
	RunE:  runUpdate,
}

func init() {
	updateCmd.Flags().Bool("check", false, "Only check whether an update is available")
	updateCmd.Flags().String("version", "", "Update to a specific release tag instead of the latest")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	checker := selfupdate.NewChecker()

	if checkOnly, _ := cmd.Flags().GetBool("check"); checkOnly {
		result, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
		if err != nil {
			return fmt.Errorf("checking for updates: %w", err)
		}
		if !result.UpdateAvailable {
			fmt.Printf("auditpath %s is up to date.\n", version)
			return nil
		}
		fmt.Printf("Update available: %s -> %s\n", version, result.LatestVersion)
		fmt.Printf("Release notes: %s\n", result.ReleaseURL)
		fmt.Println("Run 'auditpath update' to install it.")
		return nil
	}

	target, _ := cmd.Flags().GetString("version")
	err := checker.Update(ctx, &selfupdate.UpdateInput{
		CurrentVersion: version,
		TargetVersion:  target,
	}, func(p selfupdate.UpdateProgress) {
		fmt.Println(p.Message)
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, selfupdate.ErrAlreadyLatest):
		fmt.Printf("auditpath %s is already the latest version.\n", version)
		return nil
	case errors.Is(err, selfupdate.ErrDevBuild):
		return fmt.Errorf("this is a development build; install a release from https://github.com/astiages123/auditpath/releases")
	case os.IsPermission(err) || errors.Is(err, os.ErrPermission):
		return fmt.Errorf("no permission to replace the binary; try: sudo auditpath update")
	default:
		return fmt.Errorf("update failed: %w", err)
	}
}
