package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/punam06/chatbot-inovatex/domain"
	"github.com/punam06/chatbot-inovatex/internal/utils"
	"github.com/punam06/chatbot-inovatex/pkg/inventory"
)

const statsLookbackDays = 30

type (
	ChatService interface {
		Chat(ctx context.Context, req domain.ChatRequest, userID string) (domain.ChatResponse, error)
	}

	chatService struct {
		inventoryService inventory.InventoryService
	}
)

func NewChatService(inventoryService inventory.InventoryService) ChatService {
	return &chatService{inventoryService: inventoryService}
}

func (s *chatService) Chat(ctx context.Context, req domain.ChatRequest, userID string) (domain.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return domain.ChatResponse{}, domain.ErrEmptyChatMessage
	}

	prompt := s.buildPrompt(ctx, message, userID)

	reply, err := callGemini(ctx, prompt)
	if err != nil {
		return domain.ChatResponse{}, err
	}

	return domain.ChatResponse{Reply: reply}, nil
}

// buildPrompt primes the model with the user's expiring stock and recent
// consumption figures. Lookups that fail just leave the context out; the
// assistant still answers from the question alone.
func (s *chatService) buildPrompt(ctx context.Context, message string, userID string) string {
	var sb strings.Builder
	sb.WriteString("You are FoodWise, a friendly assistant helping a household reduce food waste. ")
	sb.WriteString("Give short, practical answers about storing, using up and donating food.\n\n")

	if expiring, err := s.inventoryService.GetExpiringItems(ctx, userID, 0); err == nil && len(expiring) > 0 {
		sb.WriteString("Items expiring soon:\n")
		for _, item := range expiring {
			sb.WriteString(fmt.Sprintf("- %s %s of %s", item.Quantity, item.Unit, item.FoodName))
			if item.ExpirationDate != nil {
				sb.WriteString(fmt.Sprintf(" (expires %s)", item.ExpirationDate.Format("2006-01-02")))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	now := time.Now()
	if stats, err := s.inventoryService.GetConsumptionStats(ctx, userID, now.AddDate(0, 0, -statsLookbackDays), now); err == nil && stats.Total > 0 {
		sb.WriteString(fmt.Sprintf(
			"In the last %d days the user purchased %d items, consumed %d and wasted %d (%s wasted in total).\n\n",
			statsLookbackDays, stats.Purchased, stats.Consumed, stats.Wasted, stats.TotalQuantityWasted,
		))
	}

	sb.WriteString("User question: ")
	sb.WriteString(message)
	return sb.String()
}

func callGemini(ctx context.Context, prompt string) (string, error) {
	geminiAPIKey := utils.GetConfig("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	geminiModel := utils.GetConfig("GEMINI_MODEL")
	if geminiModel == "" {
		return "", fmt.Errorf("GEMINI_MODEL environment variable not set")
	}

	geminiURL := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		geminiModel, geminiAPIKey,
	)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.7,
			"topP":        0.9,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	req, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", domain.ErrGeminiProcessingFailed
	}

	return strings.TrimSpace(geminiResp.Candidates[0].Content.Parts[0].Text), nil
}
