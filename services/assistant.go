package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"smartpark/models"
)

const (
	// DefaultAssistantEndpoint OpenAI Responses API 端點
	DefaultAssistantEndpoint = "https://api.openai.com/v1/responses"
	// DefaultAssistantModel 預設模型
	DefaultAssistantModel = "gpt-4o-mini"
)

// AssistantClient 呼叫生成式文字服務的客戶端。
// 不重試、不降級：服務失敗時包成 ErrAssistantUnavailable 原樣往上傳。
type AssistantClient struct {
	apiKey     string
	model      string
	endpoint   string
	ref        time.Time
	httpClient *http.Client
}

// NewAssistantClient 建立助理客戶端；model 與 endpoint 留空時使用預設值。
// ref 是整個程序共用的模擬時間點，會寫進提示詞讓助理知道事實的基準。
func NewAssistantClient(apiKey, model, endpoint string, ref time.Time) *AssistantClient {
	if model == "" {
		model = DefaultAssistantModel
	}
	if endpoint == "" {
		endpoint = DefaultAssistantEndpoint
	}
	return &AssistantClient{
		apiKey:   apiKey,
		model:    model,
		endpoint: endpoint,
		ref:      ref,
		httpClient: &http.Client{
			Timeout: 45 * time.Second,
		},
	}
}

// buildPrompt 組合角色設定、事實區塊、使用者問題與行為規則。
// 規則限制助理只能引用事實，不得自行運算。
func (c *AssistantClient) buildPrompt(question, envelope string) string {
	var b strings.Builder
	b.WriteString("You are the SmartPark assistant for the parking lot operator dashboard.\n\n")
	fmt.Fprintf(&b, "Here are the facts for the vehicle, all computed for the fixed instant %s:\n\n", c.ref.Format(models.TimeLayout))
	b.WriteString(envelope)
	b.WriteString("\nOperator question:\n")
	b.WriteString(question)
	b.WriteString("\n\nRules:\n")
	b.WriteString("- Use only the facts provided above (status, entry, exit if given, duration, price).\n")
	b.WriteString("- Do not compute or derive anything yourself.\n")
	b.WriteString("- When asked about the parking price, answer with the exact value from the \"Price:\" line.\n")
	b.WriteString("- The price MUST NOT be recalculated. Always quote the price string as given.\n")
	b.WriteString("- Mention the exit time only if the vehicle had already left at the fixed instant.\n")
	b.WriteString("- If the exit lies in the future, do NOT mention it.\n")
	b.WriteString("- Answer professionally and briefly, in at most 2-3 sentences.\n")
	return b.String()
}

type responsesAPIResult struct {
	OutputText []string              `json:"output_text"`
	Output     []responsesAPIMessage `json:"output"`
}

type responsesAPIMessage struct {
	Role    string                     `json:"role"`
	Content []responsesAPIContentBlock `json:"content"`
}

type responsesAPIContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Ask 送出問題與事實區塊，回傳助理的原始回答文字。
// 任何網路或服務錯誤都以 ErrAssistantUnavailable 回報，由呼叫端呈現。
func (c *AssistantClient) Ask(ctx context.Context, question, envelope string) (string, error) {
	payload := map[string]interface{}{
		"model": c.model,
		"input": c.buildPrompt(question, envelope),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrAssistantUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrAssistantUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrAssistantUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("%w: %s", models.ErrAssistantUnavailable, apiErrorMessage(resp))
	}

	var result responsesAPIResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrAssistantUnavailable, err)
	}

	text := strings.TrimSpace(strings.Join(result.OutputText, "\n"))
	if text == "" {
		text = firstOutputText(result)
	}
	if text == "" {
		return "", fmt.Errorf("%w: empty response", models.ErrAssistantUnavailable)
	}

	return text, nil
}

// apiErrorMessage 盡量抓出 API 回傳的錯誤訊息，抓不到就用 HTTP 狀態
func apiErrorMessage(resp *http.Response) string {
	data, err := io.ReadAll(resp.Body)
	if err != nil || len(data) == 0 {
		return resp.Status
	}

	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err != nil || payload.Error.Message == "" {
		return resp.Status
	}
	return payload.Error.Message
}

func firstOutputText(result responsesAPIResult) string {
	for _, message := range result.Output {
		for _, block := range message.Content {
			if block.Type == "output_text" && strings.TrimSpace(block.Text) != "" {
				return strings.TrimSpace(block.Text)
			}
		}
	}
	return ""
}
