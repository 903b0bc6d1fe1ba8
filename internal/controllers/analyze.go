package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/vizierworks/game-vizier/internal/models"
	"github.com/vizierworks/game-vizier/internal/services"
)

// AnalyzeController handles the game analysis endpoints.
type AnalyzeController struct {
	vizier    *services.Vizier
	formatter *services.ReportFormatter
}

// NewAnalyzeController creates a new AnalyzeController.
func NewAnalyzeController(vizier *services.Vizier, formatter *services.ReportFormatter) *AnalyzeController {
	return &AnalyzeController{
		vizier:    vizier,
		formatter: formatter,
	}
}

// Fixed sample payload used by the /api/test endpoint.
var (
	sampleBusinessName = "Sample Game Idea"
	sampleGameData     = `
        A visual novel about a detective who solves mysteries about a team of thieves using his unique psychic abilities. The game features a rich storyline, engaging puzzles, and a cast of memorable characters. The game is set in a Victorian-era city and explores themes of mystery, suspense, and the psychic powers that must be used and defeated. The game is designed to be played on PC and mobile devices.
        `
	sampleRequest = models.AnalysisRequest{
		BusinessName: &sampleBusinessName,
		GameData:     &sampleGameData,
	}
)

// PostAnalyze handles POST /api/analyze-game.
func (c *AnalyzeController) PostAnalyze(w http.ResponseWriter, r *http.Request) {
	var req models.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, models.ErrNoJSONData.Error())
		return
	}

	c.runAnalysis(w, r, &req)
}

// PostTest handles POST /api/test. It ignores any request body and runs the
// normal pipeline on the built-in sample payload.
func (c *AnalyzeController) PostTest(w http.ResponseWriter, r *http.Request) {
	log.Printf("Running test analysis with sample data")

	req := sampleRequest
	c.runAnalysis(w, r, &req)
}

// runAnalysis validates the request, invokes the completion client and
// assembles the response envelope. No state survives the request.
func (c *AnalyzeController) runAnalysis(w http.ResponseWriter, r *http.Request, req *models.AnalysisRequest) {
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	businessName := *req.BusinessName
	log.Printf("Generating analysis for %s...", businessName)

	analysis, err := c.vizier.AnalyzeGame(r.Context(), *req.GameData)
	if err != nil {
		log.Printf("Analysis failed for %s: %v", businessName, err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, &models.AnalysisResponse{
		Success:      true,
		Message:      "Game analysis completed successfully!",
		ReportID:     c.formatter.NewReportID(),
		BusinessName: businessName,
		Analysis:     analysis,
		GeneratedAt:  c.formatter.GeneratedAt(),
	})
}
