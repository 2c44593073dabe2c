package pets

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// LoadFile reads listings from path. Files ending in .yaml or .yml hold a
// YAML list; anything else is read as JSONL, one pet per line.
func LoadFile(path string) ([]Pet, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("no pet listings found at %s", path)
	}

	var (
		pets []Pet
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		pets, err = loadYAML(path)
	default:
		pets, err = loadJSONL(path)
	}
	if err != nil {
		return nil, err
	}

	assignIDs(pets)
	return pets, nil
}

// idNamespace scopes derived listing IDs.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://pawview.dev/pets"))

// assignIDs gives listings without an ID a name-based UUID derived from
// their identifying fields, so the same listing keeps its ID across loads
// and favorites stay attached. Identical listings are numbered in file
// order.
func assignIDs(pets []Pet) {
	seen := make(map[string]int)
	for i := range pets {
		if pets[i].ID != "" {
			continue
		}
		key := identityKey(pets[i])
		n := seen[key]
		seen[key]++
		if n > 0 {
			key = fmt.Sprintf("%s\x1f%d", key, n)
		}
		pets[i].ID = uuid.NewSHA1(idNamespace, []byte(key)).String()
	}
}

func identityKey(p Pet) string {
	fields := []string{p.Name, string(p.Species), p.Breed, p.Sex, p.Location}
	for i, f := range fields {
		fields[i] = strings.ToLower(strings.TrimSpace(f))
	}
	return strings.Join(fields, "\x1f")
}

func loadYAML(path string) ([]Pet, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read listings file: %w", err)
	}
	var pets []Pet
	if err := yaml.Unmarshal(data, &pets); err != nil {
		return nil, fmt.Errorf("failed to parse listings file: %w", err)
	}
	return pets, nil
}

func loadJSONL(path string) ([]Pet, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open listings file: %w", err)
	}
	defer file.Close()

	var pets []Pet
	scanner := bufio.NewScanner(file)
	// descriptions can be long
	const maxCapacity = 1024 * 1024
	scanner.Buffer(make([]byte, 64*1024), maxCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var pet Pet
		if err := json.Unmarshal(line, &pet); err != nil {
			log.Printf("Warning: skipping malformed listing at %s:%d: %v", path, lineNum, err)
			continue
		}
		pets = append(pets, pet)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading listings file: %w", err)
	}
	return pets, nil
}
