package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/abhisek/denguerisk/internal/features"
	"github.com/abhisek/denguerisk/internal/risk"
)

// predictRequest is the JSON body of POST /predict.
type predictRequest struct {
	Observation json.RawMessage `json:"observation"`
	Threshold   *float64        `json:"threshold"`
}

// predictResponse is the JSON result of POST /predict.
type predictResponse struct {
	PredictionID string             `json:"predictionId"`
	Probability  float64            `json:"probability"`
	Threshold    risk.Threshold     `json:"threshold"`
	Decision     risk.Decision      `json:"decision"`
	Message      string             `json:"message"`
	Features     map[string]float64 `json:"features"`
}

type classifyRequest struct {
	Probability *float64 `json:"probability"`
	Threshold   *float64 `json:"threshold"`
}

func (s *Server) handleIndex(c *gin.Context) {
	o := features.Observation{Pregnancy: features.Pregnant}
	c.HTML(http.StatusOK, "form.html", newPage(o, s.threshold))
}

func (s *Server) handlePredict(c *gin.Context) {
	wantJSON := strings.HasPrefix(c.ContentType(), gin.MIMEJSON)

	var (
		o   features.Observation
		t   risk.Threshold
		err error
	)
	if wantJSON {
		o, t, err = s.bindJSON(c)
	} else {
		wantJSON = c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
		o, t, err = s.bindForm(c)
	}
	if err != nil {
		s.badRequest(c, wantJSON, o, t, err)
		return
	}

	outcome, err := s.reducer.Predict(c.Request.Context(), o, t)
	if err != nil {
		log.Printf("prediction failed: model=%s: %v", s.predictor.ModelID(), err)
		if wantJSON {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "prediction failed"})
			return
		}
		p := newPage(o, t)
		p.Error = "Falha na previsão. Verifique o modelo e tente novamente."
		c.HTML(http.StatusInternalServerError, "form.html", p)
		return
	}

	id := uuid.NewString()
	log.Printf("prediction %s: probability=%.4f threshold=%s decision=%s", id, outcome.Probability, outcome.Threshold, outcome.Decision)

	if wantJSON {
		c.JSON(http.StatusOK, predictResponse{
			PredictionID: id,
			Probability:  outcome.Probability,
			Threshold:    outcome.Threshold,
			Decision:     outcome.Decision,
			Message:      outcome.Message(),
			Features:     features.Encode(o).Named(),
		})
		return
	}

	p := newPage(o, t)
	p.PredictionID = id
	p.Outcome = &outcome
	c.HTML(http.StatusOK, "form.html", p)
}

func (s *Server) badRequest(c *gin.Context, wantJSON bool, o features.Observation, t risk.Threshold, err error) {
	status := http.StatusBadRequest
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		status = http.StatusRequestEntityTooLarge
	}
	if wantJSON {
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	p := newPage(o, t)
	p.Error = err.Error()
	c.HTML(status, "form.html", p)
}

func (s *Server) bindJSON(c *gin.Context) (features.Observation, risk.Threshold, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return features.Observation{}, s.threshold, err
	}
	var req predictRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return features.Observation{}, s.threshold, errors.New("invalid payload")
	}
	if len(req.Observation) == 0 {
		return features.Observation{}, s.threshold, errors.New("observation is required")
	}

	t := s.threshold
	if req.Threshold != nil {
		if t, err = risk.NewThreshold(*req.Threshold); err != nil {
			return features.Observation{}, s.threshold, err
		}
	}

	o, err := features.DecodeInput(req.Observation)
	return o, t, err
}

// bindForm reads the HTML form. Checkboxes are named after the column they
// set and are absent when unchecked.
func (s *Server) bindForm(c *gin.Context) (features.Observation, risk.Threshold, error) {
	in := features.Input{
		Sex:             c.PostForm("sex"),
		AgeBracket:      c.PostForm("age_bracket"),
		PregnancyStatus: c.PostForm("pregnancy_status"),
		Symptoms:        make(map[string]bool, features.NumSymptoms),
		Comorbidities:   make(map[string]bool, features.NumComorbidities),
	}

	var errs []error
	if d := strings.TrimSpace(c.PostForm("days_since_onset")); d != "" {
		n, err := strconv.Atoi(d)
		if err != nil {
			errs = append(errs, errors.New("days_since_onset must be a whole number"))
		}
		in.DaysSinceOnset = n
	}

	for _, f := range features.SymptomFlags {
		on, err := features.ParseYesNo(c.PostForm(f.Key))
		if err != nil {
			errs = append(errs, err)
		}
		in.Symptoms[f.Key] = on
	}
	for _, f := range features.ComorbidityFlags {
		on, err := features.ParseYesNo(c.PostForm(f.Key))
		if err != nil {
			errs = append(errs, err)
		}
		in.Comorbidities[f.Key] = on
	}

	t := s.threshold
	if v := c.PostForm("threshold"); v != "" {
		parsed, err := risk.ParseThreshold(v)
		if err != nil {
			errs = append(errs, err)
		} else {
			t = parsed
		}
	}

	o, err := in.Observation()
	if err != nil {
		errs = append(errs, err)
	}
	return o, t, errors.Join(errs...)
}

// handleClassify re-applies a threshold to an already computed probability.
func (s *Server) handleClassify(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if req.Probability == nil || *req.Probability < 0 || *req.Probability > 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "probability must be between 0 and 1"})
		return
	}

	t := s.threshold
	if req.Threshold != nil {
		var err error
		if t, err = risk.NewThreshold(*req.Threshold); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	o := risk.Evaluate(*req.Probability, t)
	c.JSON(http.StatusOK, gin.H{
		"probability": o.Probability,
		"threshold":   o.Threshold,
		"decision":    o.Decision,
		"message":     o.Message(),
	})
}
