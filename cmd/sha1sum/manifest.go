// Copyright 2023 Sneller, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/SnellerInc/sha1"
)

// Manifest maps file names to their hex SHA-1 digests.
type Manifest struct {
	Digests map[string]string `json:"digests"`
}

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Emit or verify YAML digest manifests",
}

var manifestEmitCmd = &cobra.Command{
	Use:   "emit <files...>",
	Short: "Write a YAML manifest of the given files to stdout",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runManifestEmit,
}

var manifestVerifyCmd = &cobra.Command{
	Use:   "verify <manifest.yaml>",
	Short: "Verify all files recorded in a YAML manifest",
	Args:  cobra.ExactArgs(1),
	RunE:  runManifestVerify,
}

func init() {
	manifestCmd.AddCommand(manifestEmitCmd, manifestVerifyCmd)
}

func runManifestEmit(cmd *cobra.Command, args []string) error {
	m := Manifest{Digests: make(map[string]string, len(args))}
	for _, name := range args {
		data, err := readInput(name)
		if err != nil {
			return err
		}
		digest, err := sha1.Sum(data)
		if err != nil {
			return fmt.Errorf("hashing %q: %w", name, err)
		}
		m.Digests[name] = fmt.Sprintf("%x", digest)
	}

	out, err := yaml.Marshal(&m)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}

func runManifestVerify(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("parsing manifest %q: %w", args[0], err)
	}

	names := make([]string, 0, len(m.Digests))
	for name := range m.Digests {
		names = append(names, name)
	}
	sort.Strings(names)

	var failed int
	for _, name := range names {
		data, err := readInput(name)
		if err != nil {
			failed++
			fmt.Printf("%s: %s (%v)\n", name, failColor("FAILED"), err)
			continue
		}
		digest, err := sha1.Sum(data)
		if err != nil {
			return fmt.Errorf("hashing %q: %w", name, err)
		}
		if fmt.Sprintf("%x", digest) == m.Digests[name] {
			fmt.Printf("%s: %s\n", name, okColor("OK"))
		} else {
			failed++
			fmt.Printf("%s: %s\n", name, failColor("FAILED"))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d manifest entries did NOT match", failed, len(names))
	}
	return nil
}
