package catalogue

// AllLetters is the filter value that matches every image.
const AllLetters = "ALL"

// Filter returns the images of letter, or all images for "" and AllLetters.
func Filter(images []Image, letter string) []Image {
	if letter == "" || letter == AllLetters {
		return images
	}
	out := []Image{}
	for _, img := range images {
		if img.Letter == letter {
			out = append(out, img)
		}
	}
	return out
}

// FindByID returns the image with the given id.
func FindByID(images []Image, id string) (Image, bool) {
	for _, img := range images {
		if img.ID == id {
			return img, true
		}
	}
	return Image{}, false
}

// AvailableLetters returns, in catalogue order, every letter with at least one image.
func AvailableLetters(images []Image) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, img := range images {
		if !seen[img.Letter] {
			seen[img.Letter] = true
			out = append(out, img.Letter)
		}
	}
	return out
}
