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
	"runtime"

	"github.com/klauspost/cpuid/v2"
	"github.com/spf13/cobra"

	"github.com/SnellerInc/sha1"
)

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "Report the compiled back-end and host CPU capabilities",
	Args:  cobra.NoArgs,
	Run:   runFeatures,
}

func runFeatures(cmd *cobra.Command, args []string) {
	fmt.Printf("backend:     %s (%s)\n", sha1.Backend(), runtime.GOARCH)
	fmt.Printf("accelerated: %v\n", sha1.Accelerated())
	if name := cpuid.CPU.BrandName; name != "" {
		fmt.Printf("cpu:         %s\n", name)
	}
	for _, f := range []cpuid.FeatureID{cpuid.SSSE3, cpuid.SHA, cpuid.ASIMD, cpuid.SHA1} {
		fmt.Printf("%-12s %v\n", f.String()+":", cpuid.CPU.Supports(f))
	}
}
