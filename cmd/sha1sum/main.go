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

// Command sha1sum computes and verifies SHA-1 digests using the
// build-selected accelerated back-end. The engine is one-shot, so each
// input is buffered in full before hashing.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	progressbar "github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/SnellerInc/sha1"
)

var (
	sumVerbose    bool
	sumProgress   bool
	sumDecompress bool
	checkPath     string
)

var rootCmd = &cobra.Command{
	Use:   "sha1sum [files...]",
	Short: "Compute and verify SHA-1 message digests",
	Long: `sha1sum computes 160-bit SHA-1 digests with a SIMD-accelerated engine.

With no files, or when a file is -, standard input is hashed.`,
	RunE:          runSum,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().SortFlags = false
	rootCmd.Flags().BoolVarP(&sumVerbose, "verbose", "v", false, "report size and throughput per input")
	rootCmd.Flags().BoolVar(&sumProgress, "progress", false, "show a progress bar while reading large files")
	rootCmd.Flags().BoolVarP(&sumDecompress, "decompress", "d", false, "hash the decoded contents of .zst and .gz inputs")
	rootCmd.Flags().StringVarP(&checkPath, "check", "c", "", "read digests from `FILE` and verify them")
	rootCmd.AddCommand(manifestCmd, featuresCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sha1sum: %v\n", err)
		os.Exit(1)
	}
}

func runSum(cmd *cobra.Command, args []string) error {
	if checkPath != "" {
		return runCheck(checkPath)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}

	for _, name := range args {
		start := time.Now()
		data, err := readInput(name)
		if err != nil {
			return err
		}

		digest, err := sha1.Sum(data)
		if err != nil {
			return fmt.Errorf("hashing %q: %w", name, err)
		}

		fmt.Printf("%x  %s\n", digest, name)
		if sumVerbose {
			elapsed := time.Since(start)
			rate := float64(len(data)) / elapsed.Seconds()
			fmt.Fprintf(os.Stderr, "  %s in %s (%s/s)\n",
				humanize.IBytes(uint64(len(data))), elapsed.Round(time.Millisecond), humanize.IBytes(uint64(rate)))
		}
	}
	return nil
}

// readInput buffers one input in full, optionally decoding compressed
// containers and reporting read progress
func readInput(name string) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var src io.Reader = f
	if sumProgress {
		if fi, err := f.Stat(); err == nil {
			bar := progressbar.DefaultBytes(fi.Size(), "reading "+filepath.Base(name))
			src = io.TeeReader(f, bar)
			defer bar.Finish()
		}
	}

	if sumDecompress {
		switch {
		case strings.HasSuffix(name, ".zst"):
			dec, err := zstd.NewReader(src)
			if err != nil {
				return nil, fmt.Errorf("opening zstd stream %q: %w", name, err)
			}
			defer dec.Close()
			src = dec
		case strings.HasSuffix(name, ".gz"):
			dec, err := gzip.NewReader(src)
			if err != nil {
				return nil, fmt.Errorf("opening gzip stream %q: %w", name, err)
			}
			defer dec.Close()
			src = dec
		}
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", name, err)
	}
	return data, nil
}
