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
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/SnellerInc/sha1"
)

var (
	okColor   = color.New(color.FgGreen).SprintFunc()
	failColor = color.New(color.FgRed).SprintFunc()
)

type sumEntry struct {
	digest [20]byte
	name   string
}

// parseSumLine parses one "<hex>  <name>" line in the GNU coreutils
// format; a leading '*' on the name (binary marker) is accepted and
// ignored
func parseSumLine(line string) (sumEntry, error) {
	var e sumEntry
	if len(line) < 43 {
		return e, fmt.Errorf("malformed digest line %q", line)
	}
	raw, err := hex.DecodeString(line[:40])
	if err != nil || len(raw) != 20 {
		return e, fmt.Errorf("malformed digest in line %q", line)
	}
	rest := line[40:]
	if !strings.HasPrefix(rest, "  ") && !strings.HasPrefix(rest, " *") {
		return e, fmt.Errorf("malformed separator in line %q", line)
	}
	copy(e.digest[:], raw)
	e.name = rest[2:]
	return e, nil
}

func runCheck(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var checked, failed int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entry, err := parseSumLine(line)
		if err != nil {
			return err
		}

		checked++
		if verifyFile(entry) {
			fmt.Printf("%s: %s\n", entry.name, okColor("OK"))
		} else {
			failed++
			fmt.Printf("%s: %s\n", entry.name, failColor("FAILED"))
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %q: %w", path, err)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d computed checksums did NOT match", failed, checked)
	}
	return nil
}

func verifyFile(entry sumEntry) bool {
	data, err := readInput(entry.name)
	if err != nil {
		return false
	}
	digest, err := sha1.Sum(data)
	if err != nil {
		return false
	}
	return digest == entry.digest
}
