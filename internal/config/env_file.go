// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// defaultSection is the only section of the configuration file that is ever
// consulted. Lines before the first section header belong to it as well.
const defaultSection = "DEFAULT"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// dollarPlaceholder stands in for '$' while godotenv parses the file, so that
// "$NAME" and "$1" in values are not expanded. U+FFFF is a Unicode
// noncharacter and never appears in a text file.
const dollarPlaceholder = "\uFFFF"

// parseEnvFile reads the flat key=value configuration file at path.
//
// The file uses dotenv syntax (parsed by joho/godotenv): KEY=VALUE or
// KEY: VALUE pairs, '#' comments, optional quoting. A "[DEFAULT]" header is
// accepted; entries under any other "[section]" are skipped, as are ';'
// comment lines. Keys are upper-cased so that lookups are case-insensitive.
// Values are taken literally: '$' is never expanded.
//
// Returns a wrapped error if the file cannot be read or parsed; callers treat
// such a file as empty.
func parseEnvFile(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	values, err := godotenv.Parse(bytes.NewReader(defaultSectionOnly(raw)))
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	normalized := make(map[string]string, len(values))
	for key, value := range values {
		normalized[strings.ToUpper(strings.TrimSpace(key))] = strings.ReplaceAll(value, dollarPlaceholder, "$")
	}

	return normalized, nil
}

// defaultSectionOnly drops section headers, ';' comments and every line that
// belongs to a section other than [defaultSection]. '$' in the kept lines is
// replaced by dollarPlaceholder.
func defaultSectionOnly(raw []byte) []byte {
	var out bytes.Buffer

	section := defaultSection
	scanner := bufio.NewScanner(bytes.NewReader(bytes.TrimPrefix(raw, utf8BOM)))
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			section = strings.TrimSpace(trimmed[1 : len(trimmed)-1])
			continue
		}
		if strings.HasPrefix(trimmed, ";") || section != defaultSection {
			continue
		}

		out.WriteString(strings.ReplaceAll(line, "$", dollarPlaceholder))
		out.WriteByte('\n')
	}

	return out.Bytes()
}
