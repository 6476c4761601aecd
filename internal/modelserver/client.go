package modelserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/restevesd/arnes/internal/estimator"
	"github.com/restevesd/arnes/internal/models"
	log "github.com/sirupsen/logrus"
)

const predictPath = "/predict"

// Client is an HTTP client for a remote boot size model server.
// It satisfies the same estimator contract as the local model.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new model server client
func NewClient(baseURL string) *Client {
	return NewClientWithHTTPClient(baseURL, &http.Client{
		Timeout: 10 * time.Second,
	})
}

// NewClientWithHTTPClient creates a client with a custom HTTP client (for testing)
func NewClientWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// BaseURL returns the configured server address
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Predict asks the model server for the boot size matching a harness size
func (c *Client) Predict(ctx context.Context, harnessSize float64) (float64, error) {
	body, err := json.Marshal(PredictRequest{HarnessSize: harnessSize})
	if err != nil {
		return 0, c.fail(estimator.KindRejected, fmt.Errorf("failed to encode request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+predictPath, bytes.NewReader(body))
	if err != nil {
		return 0, c.fail(estimator.KindUnavailable, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, c.fail(estimator.KindUnavailable, fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, c.fail(estimator.KindUnavailable, fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode == http.StatusUnprocessableEntity {
		var eb ErrorBody
		_ = json.Unmarshal(respBody, &eb)
		return 0, c.fail(estimator.KindRejected, fmt.Errorf("model server rejected input %.2f: %s", harnessSize, eb.Error))
	}
	if resp.StatusCode != http.StatusOK {
		return 0, c.fail(estimator.KindUnavailable, fmt.Errorf("model server returned status %d", resp.StatusCode))
	}

	var pr PredictResponse
	if err := json.Unmarshal(respBody, &pr); err != nil {
		return 0, c.fail(estimator.KindUnavailable, fmt.Errorf("failed to unmarshal response: %w", err))
	}
	if pr.BootSize == nil {
		return 0, c.fail(estimator.KindUnavailable, fmt.Errorf("response has no boot_size"))
	}

	log.WithFields(log.Fields{
		"harness_size": harnessSize,
		"boot_size":    *pr.BootSize,
		"model":        pr.Model,
	}).Debug("Remote prediction")
	return *pr.BootSize, nil
}

// Info describes the remote model. Coefficients are not known to the client.
func (c *Client) Info(_ context.Context) (*models.ModelInfoResponse, error) {
	return &models.ModelInfoResponse{
		Source: "remote",
		Name:   c.BaseURL(),
	}, nil
}

func (c *Client) fail(kind estimator.Kind, err error) error {
	return &estimator.Error{
		Op:       "modelserver.predict",
		Kind:     kind,
		Resource: c.baseURL + predictPath,
		Err:      err,
	}
}
