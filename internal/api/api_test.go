package api_test

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/youruser/lettercat/internal/api"
	"github.com/youruser/lettercat/internal/catalogue"
	imagepkg "github.com/youruser/lettercat/internal/image"
	"github.com/youruser/lettercat/internal/selection"
)

type APISuite struct {
	suite.Suite
	root   string
	images []catalogue.Image
	srv    *api.Server
	engine *gin.Engine
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0x80
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func (s *APISuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.root = s.T().TempDir()
	s.images = []catalogue.Image{
		catalogue.NewImage("A", "A_01_Square.png", "Square"),
		catalogue.NewImage("A", "A_02_Tall.png", "Tall"),
		catalogue.NewImage("B", "B_01_Wide.png", "Wide"),
	}
	dims := [][2]int{{100, 100}, {50, 100}, {200, 100}}
	for i, img := range s.images {
		writePNG(s.T(), filepath.Join(s.root, filepath.FromSlash(img.Src)), dims[i][0], dims[i][1])
	}

	p := imagepkg.NewPipeline(imagepkg.NewRouter(s.root, nil), nil)
	s.srv = api.NewServer(s.images, p, 50, 100, nil)
	s.srv.Seed(42)
	s.engine = gin.New()
	s.srv.RegisterRoutes(s.engine, s.root)
}

func (s *APISuite) do(method, path string, body any, header ...string) *httptest.ResponseRecorder {
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.T(), err)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *APISuite) decode(w *httptest.ResponseRecorder, v any) {
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func (s *APISuite) TestHealth() {
	w := s.do(http.MethodGet, "/api/health", nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
	require.JSONEq(s.T(), `{"status":"ok","selections":0}`, w.Body.String())

	s.do(http.MethodPost, "/api/selections", nil)
	s.do(http.MethodPost, "/api/selections", nil)
	w = s.do(http.MethodGet, "/api/health", nil)
	require.JSONEq(s.T(), `{"status":"ok","selections":2}`, w.Body.String())
}

func (s *APISuite) TestImagesFilter() {
	var out struct {
		Count  int               `json:"count"`
		Images []catalogue.Image `json:"images"`
	}
	w := s.do(http.MethodGet, "/api/images?letter=a", nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
	s.decode(w, &out)
	require.Equal(s.T(), 2, out.Count)

	w = s.do(http.MethodGet, "/api/images", nil)
	s.decode(w, &out)
	require.Equal(s.T(), 3, out.Count)

	w = s.do(http.MethodGet, "/api/images?letter=7", nil)
	require.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *APISuite) TestLetters() {
	var out struct {
		Letters []struct {
			Letter string `json:"letter"`
			Count  int    `json:"count"`
		} `json:"letters"`
		Available []string `json:"available"`
	}
	w := s.do(http.MethodGet, "/api/letters", nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
	s.decode(w, &out)
	require.Len(s.T(), out.Letters, 26)
	require.Equal(s.T(), 2, out.Letters[0].Count)
	require.Equal(s.T(), []string{"A", "B"}, out.Available)
}

func (s *APISuite) TestTextStatus() {
	var out struct {
		Text   string                 `json:"text"`
		Status catalogue.LetterStatus `json:"status"`
		Ready  bool                   `json:"ready"`
	}
	w := s.do(http.MethodPost, "/api/text/status", gin.H{"text": "ab c!"})
	require.Equal(s.T(), http.StatusOK, w.Code)
	s.decode(w, &out)
	require.Equal(s.T(), "AB C", out.Text)
	require.Equal(s.T(), 3, out.Status.TotalLetters)
	require.Equal(s.T(), []string{"C"}, out.Status.Unavailable)
	require.False(s.T(), out.Ready)
}

func (s *APISuite) TestConcat() {
	w := s.do(http.MethodPost, "/api/concat", gin.H{
		"locators": []string{s.images[0].Src, s.images[2].Src},
		"height":   50,
	})
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
	require.Equal(s.T(), "image/jpeg", w.Header().Get("Content-Type"))
	require.Equal(s.T(), "150", w.Header().Get("X-Image-Width"))
	require.Equal(s.T(), "50", w.Header().Get("X-Image-Height"))
	require.Equal(s.T(), "preview", w.Header().Get("X-Image-Tier"))

	cfg, _, err := image.DecodeConfig(bytes.NewReader(w.Body.Bytes()))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 150, cfg.Width)
}

func (s *APISuite) TestConcatAsHTML() {
	w := s.do(http.MethodPost, "/api/concat", gin.H{"locators": []string{s.images[1].Src}},
		"Accept", "text/html")
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
	require.True(s.T(), strings.HasPrefix(w.Header().Get("Content-Type"), "text/html"))
	require.Contains(s.T(), w.Body.String(), `src="data:image/jpeg;base64,`)
	require.Contains(s.T(), w.Body.String(), `width="25px"`)
}

func (s *APISuite) TestConcatErrors() {
	w := s.do(http.MethodPost, "/api/concat", gin.H{"locators": []string{}})
	require.Equal(s.T(), http.StatusNoContent, w.Code)

	w = s.do(http.MethodPost, "/api/concat", gin.H{
		"locators": []string{s.images[0].Src, "landsat_images/Q/missing.png"},
	})
	require.Equal(s.T(), http.StatusUnprocessableEntity, w.Code)

	w = s.do(http.MethodPost, "/api/concat", gin.H{"locators": []string{s.images[0].Src}, "height": -1})
	require.Equal(s.T(), http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/concat", gin.H{"locators": []string{s.images[0].Src}, "height": 70000})
	require.Equal(s.T(), http.StatusRequestEntityTooLarge, w.Code)
}

func (s *APISuite) TestConcatNegotiation() {
	body := gin.H{"locators": []string{s.images[0].Src}}

	w := s.do(http.MethodPost, "/api/concat", body, "Accept", "application/json")
	require.Equal(s.T(), http.StatusNotAcceptable, w.Code)
	require.Contains(s.T(), w.Body.String(), "image/jpeg")

	w = s.do(http.MethodPost, "/api/concat", body, "Accept", "*/*")
	require.Equal(s.T(), http.StatusOK, w.Code)
	require.Equal(s.T(), "image/jpeg", w.Header().Get("Content-Type"))

	w = s.do(http.MethodPost, "/api/selections", nil)
	var sel selection.Selection
	s.decode(w, &sel)
	w = s.do(http.MethodGet, "/api/selections/"+sel.ID+"/preview", nil, "Accept", "application/json")
	require.Equal(s.T(), http.StatusNotAcceptable, w.Code)
}

func (s *APISuite) TestSelectionFlow() {
	w := s.do(http.MethodPost, "/api/selections", nil)
	require.Equal(s.T(), http.StatusCreated, w.Code)
	var sel selection.Selection
	s.decode(w, &sel)
	base := "/api/selections/" + sel.ID

	// empty selections preview as nothing
	require.Equal(s.T(), http.StatusNoContent, s.do(http.MethodGet, base+"/preview", nil).Code)

	var added struct {
		Entry     selection.Entry     `json:"entry"`
		Selection selection.Selection `json:"selection"`
	}
	for _, id := range []string{"b-01", "a-01", "a-01"} {
		w = s.do(http.MethodPost, base+"/images", gin.H{"image_id": id})
		require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())
	}
	s.decode(w, &added)
	require.Len(s.T(), added.Selection.Entries, 3)
	entries := added.Selection.Entries

	w = s.do(http.MethodPost, base+"/images", gin.H{"image_id": "z-09"})
	require.Equal(s.T(), http.StatusBadRequest, w.Code)

	// move B to the end
	var reordered struct {
		Moved     bool                `json:"moved"`
		Selection selection.Selection `json:"selection"`
	}
	w = s.do(http.MethodPost, base+"/reorder", gin.H{"dragged": entries[0].SelectionID, "target": entries[2].SelectionID})
	require.Equal(s.T(), http.StatusOK, w.Code)
	s.decode(w, &reordered)
	require.True(s.T(), reordered.Moved)
	require.Equal(s.T(), "b-01", reordered.Selection.Entries[2].Image.ID)

	// replace the second A with the tall A, then try to swap in a B
	w = s.do(http.MethodPut, base+"/images/"+entries[2].SelectionID, gin.H{"image_id": "a-02"})
	require.Equal(s.T(), http.StatusOK, w.Code)
	w = s.do(http.MethodPut, base+"/images/"+entries[2].SelectionID, gin.H{"image_id": "b-01"})
	require.Equal(s.T(), http.StatusBadRequest, w.Code)

	// 100x100 + 50x100 + 200x100 at height 50
	w = s.do(http.MethodGet, base+"/preview", nil)
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
	require.Equal(s.T(), "175", w.Header().Get("X-Image-Width"))
	require.Equal(s.T(), "preview", w.Header().Get("X-Image-Tier"))

	w = s.do(http.MethodGet, base+"/export", nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
	require.Equal(s.T(), "350", w.Header().Get("X-Image-Width"))
	require.Equal(s.T(), "export", w.Header().Get("X-Image-Tier"))
	require.Contains(s.T(), w.Header().Get("Content-Disposition"), `attachment; filename="landsat-concatenated-`)

	w = s.do(http.MethodGet, base+"/text", nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
	require.Equal(s.T(), "# 3 images\n1. A01 (Square)\n2. A02 (Tall)\n3. B01 (Wide)", w.Body.String())

	w = s.do(http.MethodGet, base+"/qr?size=128", nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
	require.Equal(s.T(), "image/png", w.Header().Get("Content-Type"))

	w = s.do(http.MethodDelete, base+"/images/"+entries[1].SelectionID, nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
	w = s.do(http.MethodDelete, base+"/images/"+entries[1].SelectionID, nil)
	require.Equal(s.T(), http.StatusNotFound, w.Code)

	w = s.do(http.MethodPost, base+"/clear", nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
	s.decode(w, &sel)
	require.Empty(s.T(), sel.Entries)

	require.Equal(s.T(), http.StatusNoContent, s.do(http.MethodDelete, base, nil).Code)
	require.Equal(s.T(), http.StatusNotFound, s.do(http.MethodGet, base, nil).Code)
	require.Equal(s.T(), http.StatusNotFound, s.do(http.MethodGet, base+"/preview", nil).Code)
}

func (s *APISuite) TestAddText() {
	w := s.do(http.MethodPost, "/api/selections", nil)
	var sel selection.Selection
	s.decode(w, &sel)
	base := "/api/selections/" + sel.ID

	var out struct {
		Added     []selection.Entry   `json:"added"`
		Selection selection.Selection `json:"selection"`
	}
	w = s.do(http.MethodPost, base+"/text", gin.H{"text": "ba b"})
	require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())
	s.decode(w, &out)
	require.Len(s.T(), out.Added, 3)
	require.Equal(s.T(), "B", out.Added[0].Image.Letter)
	require.Equal(s.T(), "A", out.Added[1].Image.Letter)

	w = s.do(http.MethodPost, base+"/text", gin.H{"text": "cab"})
	require.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *APISuite) TestAddTextConcurrently() {
	w := s.do(http.MethodPost, "/api/selections", nil)
	var sel selection.Selection
	s.decode(w, &sel)
	base := "/api/selections/" + sel.ID

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.do(http.MethodPost, base+"/text", gin.H{"text": "ab"})
		}()
	}
	wg.Wait()

	w = s.do(http.MethodGet, base, nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
	s.decode(w, &sel)
	require.Len(s.T(), sel.Entries, 16)
}

func (s *APISuite) TestStaticImages() {
	w := s.do(http.MethodGet, "/"+s.images[0].Src, nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func TestExportFilename(t *testing.T) {
	require.Equal(t, "landsat-concatenated-0.jpg", api.ExportFilename(time.UnixMilli(0)))
}
