/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gomsh/report"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Decode a mesh file and check its consistency",
	Long: `
Decodes a Gmsh mesh file and checks that every element references existing
nodes. With --expect, the counts of the mesh are also compared against a
summary written by "gomsh inspect -o yaml".

gomsh validate mesh.msh --expect summary.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fileName := args[0]
		m, err := readMesh(fileName)
		if err != nil {
			return err
		}
		if err = m.Validate(); err != nil {
			return fmt.Errorf("%s: %w", fileName, err)
		}

		expectFile, _ := cmd.Flags().GetString("expect")
		if expectFile != "" {
			data, err := os.ReadFile(expectFile)
			if err != nil {
				return err
			}
			expected, err := report.Parse(data)
			if err != nil {
				return fmt.Errorf("%s: %w", expectFile, err)
			}
			got := report.NewSummary(fileName, m)
			if diffs := got.Compare(expected); len(diffs) > 0 {
				for _, d := range diffs {
					fmt.Fprintln(cmd.ErrOrStderr(), d)
				}
				if viper.GetBool("verbose") {
					got.Print(cmd.ErrOrStderr())
				}
				return fmt.Errorf("%s: %d differences from %s", fileName, len(diffs), expectFile)
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", fileName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().String("expect", "", "summary file (yaml or json) the mesh must match")
}
