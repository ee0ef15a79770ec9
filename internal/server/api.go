// Package server exposes the answer pipeline over HTTP.
package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goanswer/internal/answer"
	"github.com/hyperifyio/goanswer/internal/app"
)

// Answerer is satisfied by *answer.Pipeline.
type Answerer interface {
	Answer(ctx context.Context, raw string) []answer.Record
}

// API provides handlers for the answer service.
type API struct {
	answerer Answerer
	build    app.BuildInfo
}

// NewAPI creates a new API handler.
func NewAPI(a Answerer, build app.BuildInfo) *API {
	return &API{answerer: a, build: build}
}

type askRequest struct {
	Question string `json:"question" form:"question"`
}

type askResponse struct {
	Answers []answer.Record `json:"answers"`
}

// AskHandler answers one question sent as JSON or as a form field. A blank
// question is not an error; it yields an empty answer list.
func (a *API) AskHandler(c *gin.Context) {
	var req askRequest
	var err error
	switch c.ContentType() {
	case gin.MIMEJSON:
		err = c.ShouldBindJSON(&req)
	case gin.MIMEPOSTForm, gin.MIMEMultipartPOSTForm:
		err = c.ShouldBind(&req)
	default:
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "expected JSON or form body"})
		return
	}
	if err != nil {
		log.Warn().Err(err).Str("request_id", requestID(c)).Msg("invalid ask payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	records := a.answerer.Answer(c.Request.Context(), req.Question)
	if records == nil {
		records = []answer.Record{}
	}
	c.JSON(http.StatusOK, askResponse{Answers: records})
}

// HealthHandler reports liveness and build information.
func (a *API) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "build": a.build})
}
