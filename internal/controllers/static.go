package controllers

import (
	"net/http"

	"github.com/vizierworks/game-vizier/internal/views"
)

// StaticController serves the embedded browser test page.
type StaticController struct {
	testPage *views.Template
}

// NewStaticController creates a new StaticController.
func NewStaticController(testPage *views.Template) *StaticController {
	return &StaticController{
		testPage: testPage,
	}
}

// GetTestPage handles GET /test.
func (c *StaticController) GetTestPage(w http.ResponseWriter, r *http.Request) {
	c.testPage.ExecuteHTTP(w, r, nil)
}
