package catalogue

// Image is one catalogue entry: a picture that reads as a single letter.
type Image struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Src         string `json:"src"`
	Letter      string `json:"letter"`
	Description string `json:"description"`
}

// ImageDir is the locator prefix of catalogue images.
const ImageDir = "landsat_images"

// Letters returns A through Z.
func Letters() []string {
	out := make([]string, 0, 26)
	for c := 'A'; c <= 'Z'; c++ {
		out = append(out, string(c))
	}
	return out
}
