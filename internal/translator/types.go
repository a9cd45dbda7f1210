package translator

import "fmt"

// TranslateRequest is one text to translate. SourceLang and Formality are
// optional: nil leaves the field out of the request, which the API treats
// differently from an empty value.
type TranslateRequest struct {
	Text       string  `json:"text"`
	TargetLang string  `json:"target_lang"`
	SourceLang *string `json:"source_lang,omitempty"`
	Formality  *string `json:"formality,omitempty"`
}

type Translation struct {
	Text                   string `json:"text"`
	DetectedSourceLanguage string `json:"detected_source_language"`
}

// TranslateResult holds the translations in the order the service returned them.
type TranslateResult struct {
	Translations []Translation `json:"translations"`
}

// RemoteError is returned when the service answers with a non-success status.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("API returned status %d: %s", e.StatusCode, e.Body)
}

// ResponseParseError is returned when a success response cannot be decoded.
type ResponseParseError struct {
	Err error
}

func (e *ResponseParseError) Error() string {
	return fmt.Sprintf("failed to decode response: %v", e.Err)
}

func (e *ResponseParseError) Unwrap() error {
	return e.Err
}
