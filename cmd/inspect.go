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
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gomsh/mesh"
	"github.com/notargets/gomsh/readers"
	"github.com/notargets/gomsh/report"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect FILE...",
	Short: "Decode mesh files and print a summary of each",
	Long: `
Decodes each Gmsh mesh file and prints its node and element counts, element
types, bounding box, measure and connectivity statistics.

gomsh inspect -o yaml mesh.msh > summary.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output := viper.GetString("output")
		for _, fileName := range args {
			m, err := readMesh(fileName)
			if err != nil {
				return err
			}
			if err = writeSummary(cmd.OutOrStdout(), fileName, m, output); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func readMesh(fileName string) (*mesh.Mesh, error) {
	verbose := viper.GetBool("verbose")
	if verbose {
		log.Printf("Reading mesh from %s", fileName)
	}
	m, err := readers.ReadMeshFile(fileName)
	if err != nil {
		return nil, err
	}
	if verbose {
		format := "none"
		if f, ok := m.Format(); ok {
			format = f.String()
		}
		log.Printf("Decoded %s: format %s, %d nodes, %d elements",
			fileName, format, m.NumNodes(), m.NumElements())
	}
	return m, nil
}

func writeSummary(w io.Writer, fileName string, m *mesh.Mesh, output string) error {
	if output == "text" {
		fmt.Fprintf(w, "File: %s\n", fileName)
		m.PrintStatistics(w)
		return nil
	}
	b, err := report.NewSummary(fileName, m).Marshal(output)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	if err == nil && output == "json" {
		_, err = fmt.Fprintln(w)
	}
	return err
}
