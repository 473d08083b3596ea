// File: cmd/version.go
package cmd

import (
	"fmt"

	"foldersnap/pkg/version"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// newVersionCmd displays the current version of foldersnap.
// The --short flag prints the version number only; --yaml prints every field as YAML.
func newVersionCmd() *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Display the version of foldersnap",
		Long:  `Display the current version information of the foldersnap CLI tool.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			short, err := cmd.Flags().GetBool("short")
			if err != nil {
				return fmt.Errorf("error reading flags: %w", err)
			}
			asYAML, err := cmd.Flags().GetBool("yaml")
			if err != nil {
				return fmt.Errorf("error reading flags: %w", err)
			}

			v := version.Get()
			out := cmd.OutOrStdout()

			switch {
			case short:
				fmt.Fprintln(out, v.Version)
			case asYAML:
				data, err := yaml.Marshal(v)
				if err != nil {
					return fmt.Errorf("failed to encode version: %w", err)
				}
				_, err = out.Write(data)
				return err
			default:
				fmt.Fprintln(out, v.String())
			}
			return nil
		},
	}

	versionCmd.Flags().BoolP("short", "s", false, "Print the version number only")
	versionCmd.Flags().Bool("yaml", false, "Print the version information as YAML")
	return versionCmd
}
