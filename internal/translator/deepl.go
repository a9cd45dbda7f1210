package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

const DefaultEndpoint = "https://api.deepl.com/v2/translate"

// unknownError replaces a failed response body that could not be read.
const unknownError = "Unknown error"

type DeepLService struct {
	authKey  string
	endpoint string
	client   *http.Client
}

// NewDeepLService returns a client for the DeepL translate endpoint. An empty
// endpoint selects DefaultEndpoint. No client timeout is set.
func NewDeepLService(authKey, endpoint string) *DeepLService {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &DeepLService{
		authKey:  authKey,
		endpoint: endpoint,
		client:   &http.Client{},
	}
}

// WithClient replaces the HTTP client used for requests.
func (s *DeepLService) WithClient(client *http.Client) *DeepLService {
	if client != nil {
		s.client = client
	}
	return s
}

func (s *DeepLService) Name() string {
	return "deepl"
}

func (s *DeepLService) Endpoint() string {
	return s.endpoint
}

func (s *DeepLService) Translate(ctx context.Context, req TranslateRequest) (*TranslateResult, error) {
	body, contentType, err := buildForm(req)
	if err != nil {
		return nil, fmt.Errorf("failed to build request body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Authorization", "DeepL-Auth-Key "+s.authKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := unknownError
		if raw, readErr := io.ReadAll(resp.Body); readErr == nil {
			// Error pages are often multi-line; keep the message on one line.
			if line := strings.Join(strings.Fields(string(raw)), " "); line != "" {
				msg = line
			}
		}
		return nil, &RemoteError{StatusCode: resp.StatusCode, Body: msg}
	}

	var answer struct {
		Translations *[]struct {
			Text                   *string `json:"text"`
			DetectedSourceLanguage *string `json:"detected_source_language"`
		} `json:"translations"`
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ResponseParseError{Err: err}
	}
	// Unmarshal, unlike a streaming Decoder, rejects trailing data.
	if err := json.Unmarshal(raw, &answer); err != nil {
		return nil, &ResponseParseError{Err: err}
	}
	if answer.Translations == nil {
		return nil, &ResponseParseError{Err: fmt.Errorf("missing field translations")}
	}

	result := &TranslateResult{Translations: make([]Translation, 0, len(*answer.Translations))}
	for i, t := range *answer.Translations {
		if t.Text == nil || t.DetectedSourceLanguage == nil {
			return nil, &ResponseParseError{Err: fmt.Errorf("translation %d: missing text or detected_source_language", i)}
		}
		result.Translations = append(result.Translations, Translation{
			Text:                   *t.Text,
			DetectedSourceLanguage: *t.DetectedSourceLanguage,
		})
	}

	return result, nil
}

// buildForm encodes req as multipart/form-data. Optional fields are written
// only when set.
func buildForm(req TranslateRequest) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := []struct {
		name  string
		value *string
	}{
		{"text", &req.Text},
		{"target_lang", &req.TargetLang},
		{"source_lang", req.SourceLang},
		{"formality", req.Formality},
	}
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		if err := w.WriteField(f.name, *f.value); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
