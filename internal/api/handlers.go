package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/youruser/lettercat/internal/catalogue"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "selections": s.Selections.Len()})
}

func (s *Server) lettersHandler(c *gin.Context) {
	counts := map[string]int{}
	for _, img := range s.Images {
		counts[img.Letter]++
	}
	type letter struct {
		Letter string `json:"letter"`
		Count  int    `json:"count"`
	}
	out := []letter{}
	for _, l := range catalogue.Letters() {
		out = append(out, letter{Letter: l, Count: counts[l]})
	}
	c.JSON(http.StatusOK, gin.H{
		"letters":   out,
		"available": catalogue.AvailableLetters(s.Images),
	})
}

// images?letter=A filters the catalogue; no letter or ALL lists everything.
func (s *Server) imagesHandler(c *gin.Context) {
	letter := strings.ToUpper(strings.TrimSpace(c.Query("letter")))
	if letter != "" && letter != catalogue.AllLetters && !isLetter(letter) {
		badRequest(c, errors.New("letter must be A-Z or ALL"))
		return
	}
	out := catalogue.Filter(s.Images, letter)
	c.JSON(http.StatusOK, gin.H{"count": len(out), "images": out})
}

func (s *Server) textStatusHandler(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	text := catalogue.Sanitize(req.Text)
	st := catalogue.Status(s.Images, text)
	c.JSON(http.StatusOK, gin.H{
		"text":   text,
		"status": st,
		"ready":  st.Ready() && len([]rune(strings.TrimSpace(text))) <= catalogue.MaxTextLength,
	})
}

func isLetter(s string) bool {
	return len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z'
}
