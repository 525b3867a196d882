package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"you_translator/internal/config"
	"you_translator/internal/middleware"
	"you_translator/internal/model"
)

// GeminiEvaluator は Gemini の generateContent REST API を呼び出します
type GeminiEvaluator struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
	maxRetries int
	// リトライ間隔の初期値。テストでは短くする
	backoff time.Duration
}

func NewGeminiEvaluator(cfg *config.EvaluatorConfig) *GeminiEvaluator {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultEvaluatorTimeout
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultGeminiBaseURL
	}
	modelName := cfg.Model
	if modelName == "" {
		modelName = config.DefaultGeminiModel
	}
	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &GeminiEvaluator{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      modelName,
		apiKey:     cfg.APIKey,
		maxRetries: maxRetries,
		backoff:    time.Second,
	}
}

// --- リクエスト/レスポンス形式 ---

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// geminiEvaluation は score の有無を区別するためにポインタで受けます
type geminiEvaluation struct {
	Score       *float64 `json:"score"`
	Correction  string   `json:"correction"`
	Explanation string   `json:"explanation"`
	Tips        []string `json:"tips"`
}

type geminiHTTPError struct {
	StatusCode int
	Body       string
	RetryAfter time.Duration
}

func (e *geminiHTTPError) Error() string {
	return fmt.Sprintf("gemini http %d: %s", e.StatusCode, e.Body)
}

func (e *geminiHTTPError) retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// --- Evaluator 実装 ---

func (g *GeminiEvaluator) GeneratePhrase(ctx context.Context, language model.Language, level model.Proficiency) string {
	logger := middleware.GetLogger(ctx).With("language", language, "level", level)

	prompt := fmt.Sprintf(`Generate a short phrase in %s to be translated into English for a %s level student.
Focus on everyday usage.
Basic: simple present, common nouns.
Intermediate: past/future, common idioms.
Advanced: complex clauses, formal/business English, rare idioms.
Return ONLY the phrase, no other text.`, language, level)

	text, err := g.generate(ctx, prompt)
	if err != nil {
		logger.Error("Failed to generate phrase", "error", err)
		return FallbackPhrase
	}
	phrase := strings.Trim(strings.TrimSpace(text), `"`)
	if phrase == "" {
		logger.Warn("Gemini returned an empty phrase")
		return FallbackPhrase
	}
	return phrase
}

func (g *GeminiEvaluator) Evaluate(ctx context.Context, req model.EvaluationRequest) model.EvaluationResult {
	logger := middleware.GetLogger(ctx).With("language", req.Language, "level", req.Level)

	prompt := fmt.Sprintf(`You are an English teacher evaluating a translation. Evaluate the following English translation from %[1]s.

Original phrase in %[1]s: "%[2]s"
Student's English translation: "%[3]s"
Student's level: %[4]s

Respond with ONLY a valid JSON object (no markdown, no code blocks) with these exact keys:
{
  "score": <number from 0 to 10>,
  "correction": "<the perfect English translation>",
  "explanation": "<pedagogical explanation in %[1]s>",
  "tips": ["<tip 1 in %[1]s>", "<tip 2 in %[1]s>"]
}

Important: Return ONLY the JSON object, nothing else.`, req.Language, req.OriginalPhrase, req.UserTranslation, req.Level)

	text, err := g.generate(ctx, prompt)
	if err != nil {
		logger.Error("Failed to call Gemini for evaluation", "error", err)
		return FallbackEvaluation()
	}

	result, err := parseEvaluation(text)
	if err != nil {
		logger.Error("Failed to parse Gemini evaluation", "error", err, "raw", text)
		return FallbackEvaluation()
	}
	logger.Info("Translation evaluated", "score", result.Score)
	return result
}

// parseEvaluation はコードフェンスを除去し、全項目が揃っていることを確認します
func parseEvaluation(text string) (model.EvaluationResult, error) {
	cleaned := stripCodeFence(text)

	var raw geminiEvaluation
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return model.EvaluationResult{}, fmt.Errorf("invalid json: %w", err)
	}
	if raw.Score == nil || raw.Correction == "" || raw.Explanation == "" || raw.Tips == nil {
		return model.EvaluationResult{}, errors.New("incomplete evaluation")
	}
	score := *raw.Score
	if math.IsNaN(score) {
		return model.EvaluationResult{}, errors.New("score is NaN")
	}
	score = math.Max(0, math.Min(10, score))

	return model.EvaluationResult{
		Score:       score,
		Correction:  raw.Correction,
		Explanation: raw.Explanation,
		Tips:        raw.Tips,
	}, nil
}

func stripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// generate はプロンプトを送り、最初の候補のテキストを返します。429/5xx はバックオフ付きでリトライします。
func (g *GeminiEvaluator) generate(ctx context.Context, prompt string) (string, error) {
	body := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 1024,
		},
	}

	backoff := g.backoff
	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		raw, err := g.doOnce(ctx, body)
		if err == nil {
			var resp geminiResponse
			if err := json.Unmarshal(raw, &resp); err != nil {
				return "", fmt.Errorf("gemini decode error: %w", err)
			}
			if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
				return "", errors.New("no candidates in gemini response")
			}
			return resp.Candidates[0].Content.Parts[0].Text, nil
		}

		var httpErr *geminiHTTPError
		if !errors.As(err, &httpErr) || !httpErr.retryable() || attempt >= g.maxRetries {
			return "", err
		}

		sleepFor := backoff
		if httpErr.RetryAfter > 0 {
			sleepFor = httpErr.RetryAfter
		}
		middleware.GetLogger(ctx).Warn("Gemini request retrying",
			"attempt", attempt+1,
			"max_retries", g.maxRetries,
			"sleep", sleepFor.String(),
			"status", httpErr.StatusCode,
		)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(sleepFor):
		}
		backoff *= 2
	}
}

func (g *GeminiEvaluator) doOnce(ctx context.Context, body geminiRequest) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.baseURL, g.model, url.QueryEscape(g.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		// url.Error は API キーを含む URL を持つのでログに出さない
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return nil, fmt.Errorf("gemini request failed: %w", urlErr.Err)
		}
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		httpErr := &geminiHTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
		if secs, err := strconv.Atoi(strings.TrimSpace(resp.Header.Get("Retry-After"))); err == nil && secs > 0 {
			httpErr.RetryAfter = time.Duration(secs) * time.Second
		}
		return nil, httpErr
	}
	return raw, nil
}
