package catalogue

import (
	"encoding/csv"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

var numberInName = regexp.MustCompile(`_(\d+)_`)

// LoadFromDataDir loads the catalogue from dataDir. catalogue.csv is required,
// custom_images.csv is appended when present.
func LoadFromDataDir(dataDir string) ([]Image, error) {
	all, err := loadSingleCSV(filepath.Join(dataDir, "catalogue.csv"))
	if err != nil {
		return nil, err
	}
	custom := filepath.Join(dataDir, "custom_images.csv")
	if _, err := os.Stat(custom); err == nil {
		extra, err := loadSingleCSV(custom)
		if err != nil {
			return nil, err
		}
		all = append(all, extra...)
	}
	sortImages(all)
	return all, nil
}

func loadSingleCSV(p string) ([]Image, error) {
	fp, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	r := csv.NewReader(fp)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", p, err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("csv %s has no header", p)
	}
	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.TrimSpace(strings.ToLower(h))] = i
	}
	for _, need := range []string{"letter", "filename"} {
		if _, ok := cols[need]; !ok {
			return nil, fmt.Errorf("csv %s: missing column %q", p, need)
		}
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	out := []Image{}
	for n, row := range rows[1:] {
		letter := strings.ToUpper(get(row, "letter"))
		if !isLetter(letter) {
			return nil, fmt.Errorf("csv %s line %d: invalid letter %q", p, n+2, letter)
		}
		file := get(row, "filename")
		if file == "" {
			return nil, fmt.Errorf("csv %s line %d: empty filename", p, n+2)
		}
		out = append(out, NewImage(letter, file, get(row, "description")))
	}
	return out, nil
}

// NewImage derives ID, Name and Src for a catalogue file of the given letter.
// The image number is taken from the first "_NN_" in the filename, defaulting to 01.
func NewImage(letter, filename, description string) Image {
	num := "01"
	if m := numberInName.FindStringSubmatch(filename); m != nil {
		num = m[1]
	}
	return Image{
		ID:          strings.ToLower(letter) + "-" + num,
		Name:        letter + num,
		Src:         path.Join(ImageDir, letter, filename),
		Letter:      letter,
		Description: description,
	}
}

func sortImages(images []Image) {
	sort.SliceStable(images, func(i, j int) bool {
		if images[i].Letter != images[j].Letter {
			return images[i].Letter < images[j].Letter
		}
		return images[i].Name < images[j].Name
	})
}

func isLetter(s string) bool {
	return len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z'
}
