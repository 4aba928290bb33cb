package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/youruser/lettercat/internal/catalogue"
	imagepkg "github.com/youruser/lettercat/internal/image"
	"github.com/youruser/lettercat/internal/selection"
)

var errUnknownImage = errors.New("unknown image id")

func (s *Server) createSelection(c *gin.Context) {
	c.JSON(http.StatusCreated, s.Selections.Create())
}

func (s *Server) getSelection(c *gin.Context) {
	sel, err := s.Selections.Get(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sel)
}

func (s *Server) deleteSelection(c *gin.Context) {
	if err := s.Selections.Delete(c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type imageRequest struct {
	ImageID string `json:"image_id" binding:"required"`
}

func (s *Server) bindImage(c *gin.Context) (catalogue.Image, bool) {
	var req imageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return catalogue.Image{}, false
	}
	img, ok := catalogue.FindByID(s.Images, req.ImageID)
	if !ok {
		badRequest(c, errUnknownImage)
		return catalogue.Image{}, false
	}
	return img, true
}

func (s *Server) addImage(c *gin.Context) {
	img, ok := s.bindImage(c)
	if !ok {
		return
	}
	var entry selection.Entry
	sel, err := s.Selections.Update(c.Param("id"), func(sel *selection.Selection) error {
		entry = sel.Add(img)
		return nil
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"entry": entry, "selection": sel})
}

func (s *Server) replaceImage(c *gin.Context) {
	img, ok := s.bindImage(c)
	if !ok {
		return
	}
	sel, err := s.Selections.Update(c.Param("id"), func(sel *selection.Selection) error {
		return sel.Replace(c.Param("sid"), img)
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sel)
}

func (s *Server) removeImage(c *gin.Context) {
	sel, err := s.Selections.Update(c.Param("id"), func(sel *selection.Selection) error {
		return sel.Remove(c.Param("sid"))
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sel)
}

func (s *Server) reorderImages(c *gin.Context) {
	var req struct {
		Dragged string `json:"dragged" binding:"required"`
		Target  string `json:"target" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	var moved bool
	sel, err := s.Selections.Update(c.Param("id"), func(sel *selection.Selection) error {
		moved = sel.Reorder(req.Dragged, req.Target)
		return nil
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"moved": moved, "selection": sel})
}

func (s *Server) clearSelection(c *gin.Context) {
	sel, err := s.Selections.Update(c.Param("id"), func(sel *selection.Selection) error {
		sel.Clear()
		return nil
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sel)
}

// addText appends one random image per letter of the posted text.
func (s *Server) addText(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	images, err := s.fromText(req.Text)
	if err != nil {
		s.fail(c, err)
		return
	}
	added := make([]selection.Entry, 0, len(images))
	sel, err := s.Selections.Update(c.Param("id"), func(sel *selection.Selection) error {
		for _, img := range images {
			added = append(added, sel.Add(img))
		}
		return nil
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"added": added, "selection": sel})
}

func (s *Server) exportTextHandler(c *gin.Context) {
	sel, err := s.Selections.Get(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.String(http.StatusOK, sel.ExportText())
}

// qrHandler returns a PNG QR code of the selection's text export.
func (s *Server) qrHandler(c *gin.Context) {
	sel, err := s.Selections.Get(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	size := imagepkg.DefaultQRSize
	if v := c.Query("size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			size = n
		}
	}
	b, err := imagepkg.QRPNG(sel.ExportText(), size)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}
