package roboflow

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"DentScanGolang/pkg/overlay"

	"golang.org/x/net/context"
)

// IRoboflow runs a hosted object-detection model over a base64-encoded
// image and returns the raw detections.
type IRoboflow interface {
	Detect(ctx context.Context, base64Image string) ([]overlay.Detection, error)
}

type roboflowClient struct {
	baseURL string
	model   string
	version string
	apiKey  string
	http    *http.Client
}

func New() IRoboflow {
	baseURL := os.Getenv("ROBOFLOW_BASE_URL")
	if baseURL == "" {
		baseURL = "https://detect.roboflow.com"
	}

	return &roboflowClient{
		baseURL: baseURL,
		model:   os.Getenv("ROBOFLOW_MODEL"),
		version: os.Getenv("ROBOFLOW_VERSION"),
		apiKey:  os.Getenv("ROBOFLOW_API_KEY"),
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

type inferenceResponse struct {
	Predictions []prediction `json:"predictions"`
	Image       struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"image"`
}

type prediction struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Confidence float64 `json:"confidence"`
	Class      string  `json:"class"`
	Points     []struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	} `json:"points,omitempty"`
}

func (r *roboflowClient) Detect(ctx context.Context, base64Image string) ([]overlay.Detection, error) {
	endpoint := fmt.Sprintf("%s/%s/%s?api_key=%s",
		r.baseURL, r.model, r.version, url.QueryEscape(r.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(base64Image))
	if err != nil {
		return nil, fmt.Errorf("failed to create inference request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := r.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read inference response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference service returned %d: %s", resp.StatusCode, string(body))
	}

	return ParseDetections(body)
}

// ParseDetections maps the inference service's prediction payload onto the
// overlay engine's detection type.
func ParseDetections(body []byte) ([]overlay.Detection, error) {
	var response inferenceResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse inference response: %w", err)
	}

	detections := make([]overlay.Detection, 0, len(response.Predictions))
	for _, p := range response.Predictions {
		det := overlay.Detection{
			Class:      p.Class,
			X:          p.X,
			Y:          p.Y,
			Width:      p.Width,
			Height:     p.Height,
			Confidence: p.Confidence,
		}
		for _, pt := range p.Points {
			det.Points = append(det.Points, overlay.Point{X: pt.X, Y: pt.Y})
		}
		detections = append(detections, det)
	}

	return detections, nil
}
