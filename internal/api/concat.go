package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	contentnegotiation "gitlab.com/jamietanna/content-negotiation-go"

	imagepkg "github.com/youruser/lettercat/internal/image"
)

type concatRequest struct {
	Locators []string `json:"locators"`
	Height   int      `json:"height"`
}

// concatHandler joins arbitrary locators. A missing height means the preview height.
func (s *Server) concatHandler(c *gin.Context) {
	var req concatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	height := req.Height
	if height == 0 {
		height = s.PreviewHeight
	}
	wantHTML, err := negotiateHTML(c.GetHeader("Accept"))
	if err != nil {
		notAcceptable(c, err)
		return
	}
	res, err := s.Pipeline.Concatenate(c.Request.Context(), req.Locators, height)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.writeResult(c, res, "concatenation", wantHTML, "")
}

func (s *Server) concatSelection(ctx context.Context, id string, height int, tier imagepkg.Tier) (imagepkg.Result, string, error) {
	sel, err := s.Selections.Get(id)
	if err != nil {
		return imagepkg.Result{}, "", err
	}
	res, err := s.Pipeline.ConcatenateTier(ctx, sel.Locators(), height, tier)
	return res, sel.Word(), err
}

func (s *Server) previewHandler(c *gin.Context) {
	wantHTML, err := negotiateHTML(c.GetHeader("Accept"))
	if err != nil {
		notAcceptable(c, err)
		return
	}
	res, word, err := s.concatSelection(c.Request.Context(), c.Param("id"), s.PreviewHeight, imagepkg.TierPreview)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.writeResult(c, res, word, wantHTML, "")
}

func (s *Server) exportHandler(c *gin.Context) {
	res, word, err := s.concatSelection(c.Request.Context(), c.Param("id"), s.ExportHeight, imagepkg.TierExport)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.writeResult(c, res, word, false, ExportFilename(time.Now()))
}

// ExportFilename names a high resolution download.
func ExportFilename(t time.Time) string {
	return fmt.Sprintf("landsat-concatenated-%d.jpg", t.UnixMilli())
}

func negotiateHTML(accept string) (bool, error) {
	if accept == "" {
		return false, nil
	}
	negotiator := contentnegotiation.NewNegotiator("image/jpeg", "text/html")
	negotiated, _, err := negotiator.Negotiate(accept)
	if err != nil {
		return false, err
	}
	return negotiated.String() == "text/html", nil
}

func (s *Server) writeResult(c *gin.Context, res imagepkg.Result, alt string, asHTML bool, filename string) {
	const iframeStart = `<!DOCTYPE html><html><body><img alt="%s" src="data:image/jpeg;base64,`
	const iframeEnd = `" width="%dpx" height="%dpx"></body></html>`

	if res.Empty() {
		c.Status(http.StatusNoContent)
		return
	}
	c.Header("X-Image-Width", strconv.Itoa(res.Width))
	c.Header("X-Image-Height", strconv.Itoa(res.Height))
	c.Header("X-Image-Tier", res.Tier.String())
	if asHTML {
		var buf bytes.Buffer
		fmt.Fprintf(&buf, iframeStart, html.EscapeString(alt))
		wc := base64.NewEncoder(base64.StdEncoding, &buf)
		_, _ = wc.Write(res.Data)
		_ = wc.Close()
		fmt.Fprintf(&buf, iframeEnd, res.Width, res.Height)
		c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
		return
	}
	if filename != "" {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	}
	c.Data(http.StatusOK, res.ContentType, res.Data)
}
