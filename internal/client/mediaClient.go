package client

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"marketplace-backend/internal/config"
)

// UploadSignature authorizes one direct browser upload to the media host.
type UploadSignature struct {
	Signature string
	Timestamp int64
	APIKey    string
	CloudName string
}

// UploadResult is what the media host reports back for a stored file.
type UploadResult struct {
	URL      string
	PublicID string
}

// MediaClient wraps the image-hosting service: server-side uploads plus the
// signing scheme for direct client uploads.
type MediaClient interface {
	SignUploadRequest(folder string) *UploadSignature
	Upload(ctx context.Context, filename string, content io.Reader, folder string) (*UploadResult, error)
}

type mediaClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	cloudName  string
	apiKey     string
	apiSecret  string
	now        func() time.Time
}

func NewMediaClient(cfg *config.Media) MediaClient {
	return &mediaClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: cfg.BaseAPIURL,
		cloudName:  cfg.CloudName,
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		now:        time.Now,
	}
}

// SignUploadRequest produces the SHA-1 request signature the media host
// expects: hex(sha1("folder=<f>&timestamp=<t>" + secret)).
func (c *mediaClientImpl) SignUploadRequest(folder string) *UploadSignature {
	timestamp := c.now().Unix()

	toSign := fmt.Sprintf("folder=%s&timestamp=%d%s", folder, timestamp, c.apiSecret)
	sum := sha1.Sum([]byte(toSign))

	return &UploadSignature{
		Signature: hex.EncodeToString(sum[:]),
		Timestamp: timestamp,
		APIKey:    c.apiKey,
		CloudName: c.cloudName,
	}
}

func (c *mediaClientImpl) Upload(ctx context.Context, filename string, content io.Reader, folder string) (*UploadResult, error) {
	sig := c.SignUploadRequest(folder)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("copy file content: %w", err)
	}

	fields := map[string]string{
		"api_key":   c.apiKey,
		"timestamp": fmt.Sprintf("%d", sig.Timestamp),
		"signature": sig.Signature,
		"folder":    folder,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("write field %s: %w", name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/auto/upload", c.baseApiURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("media upload request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("media host error %d: %s", resp.StatusCode, string(b))
	}

	var result struct {
		SecureURL string `json:"secure_url"`
		PublicID  string `json:"public_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode upload response: %w", err)
	}

	return &UploadResult{
		URL:      result.SecureURL,
		PublicID: result.PublicID,
	}, nil
}
