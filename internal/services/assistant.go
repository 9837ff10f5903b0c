package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"healthmate/internal/apperr"
	"healthmate/internal/llm"
	"healthmate/internal/logger"
	"healthmate/internal/models"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	ChatSystemPrompt = "You are HealthMate AI, a helpful health assistant. Provide accurate, helpful, and professional health advice. " +
		"Always remind users to consult with healthcare professionals for serious medical concerns. Be friendly, informative, and supportive."

	ReportSystemPrompt = "You are a medical AI assistant. Analyze medical reports professionally and provide clear, helpful summaries. " +
		"Always remind users to consult healthcare professionals for medical decisions. Respond with a single JSON object and nothing else."

	PlaceholderReply = "I apologize, but I cannot process your request at the moment. Please try again later."

	maxReportTextChars = 12000
)

var tracer = otel.Tracer("healthmate/services")

var (
	chatOptions   = llm.Options{MaxTokens: 500, Temperature: 0.7}
	reportOptions = llm.Options{MaxTokens: 1000, Temperature: 0.3, JSON: true}
)

// UserCompleterFunc builds a completer from a user's own API key.
type UserCompleterFunc func(apiKey string) (llm.Completer, error)

// AssistantService picks a provider per user and shields callers from
// provider failures where the product allows it.
type AssistantService struct {
	server  llm.Completer
	forUser UserCompleterFunc
	log     *logger.Logger
}

// NewAssistantService takes the server-wide completer (nil when no key is
// configured) and a factory for user-keyed Gemini completers.
func NewAssistantService(server llm.Completer, forUser UserCompleterFunc, log *logger.Logger) *AssistantService {
	return &AssistantService{server: server, forUser: forUser, log: log}
}

func (s *AssistantService) completerFor(user *models.User) (llm.Completer, string, error) {
	if user != nil && user.HasGeminiKey() && s.forUser != nil {
		c, err := s.forUser(*user.GeminiAPIKey)
		return c, "gemini", err
	}
	if s.server == nil {
		return nil, "openai", llm.ErrMissingAPIKey
	}
	return s.server, "openai", nil
}

// Reply answers the last message in history. On any provider failure it
// returns PlaceholderReply and degraded=true; it never returns an error.
func (s *AssistantService) Reply(ctx context.Context, user *models.User, history []models.ChatMessage) (string, bool) {
	completer, provider, err := s.completerFor(user)
	ctx, span := tracer.Start(ctx, "assistant.reply", trace.WithAttributes(
		attribute.String("llm.provider", provider),
		attribute.Int("chat.history_len", len(history)),
	))
	defer span.End()

	if err == nil {
		msgs := make([]llm.Message, 0, len(history))
		for _, m := range history {
			msgs = append(msgs, llm.Message{Role: m.Role, Content: m.Content})
		}
		start := time.Now()
		var out string
		out, err = completer.Complete(ctx, ChatSystemPrompt, msgs, chatOptions)
		if err == nil {
			s.log.Debug("Chat completion", "provider", provider, "duration_ms", time.Since(start).Milliseconds())
			return out, false
		}
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, "completion failed")
	s.log.Warn("Chat completion failed, using placeholder", "provider", provider, "error", err)
	return PlaceholderReply, true
}

// AnalyzeReport asks the model for the ReportAnalysis JSON object.
func (s *AssistantService) AnalyzeReport(ctx context.Context, user *models.User, report *models.HealthReport) (*llm.ReportAnalysis, error) {
	completer, provider, err := s.completerFor(user)
	ctx, span := tracer.Start(ctx, "assistant.analyze_report", trace.WithAttributes(
		attribute.String("llm.provider", provider),
		attribute.String("report.id", report.ID.String()),
	))
	defer span.End()

	if err != nil {
		span.SetStatus(codes.Error, "no provider")
		return nil, apperr.Upstream("Report analysis is currently unavailable", err)
	}

	raw, err := completer.Complete(ctx, ReportSystemPrompt, []llm.Message{
		{Role: llm.RoleUser, Content: reportPrompt(report)},
	}, reportOptions)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "completion failed")
		s.log.Warn("Report analysis failed", "provider", provider, "report_id", report.ID, "error", err)
		return nil, apperr.Upstream("Report analysis is currently unavailable", err)
	}

	analysis, err := llm.ParseReportAnalysis(raw)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "unusable output")
		s.log.Warn("Report analysis returned unusable output", "provider", provider, "report_id", report.ID, "error", err)
		return nil, apperr.Upstream("Report analysis is currently unavailable", err)
	}
	return analysis, nil
}

func reportPrompt(r *models.HealthReport) string {
	text := "No text could be extracted from this report."
	if r.ExtractedText != nil && strings.TrimSpace(*r.ExtractedText) != "" {
		text = *r.ExtractedText
		if runes := []rune(text); len(runes) > maxReportTextChars {
			text = string(runes[:maxReportTextChars])
		}
	}

	var b strings.Builder
	b.WriteString("Analyze this medical report.\n\n")
	fmt.Fprintf(&b, "Title: %s\nReport Type: %s\nReport Date: %s\n\n", r.Title, r.ReportType, r.ReportDate.Format("2006-01-02"))
	b.WriteString("Extracted Text:\n")
	b.WriteString(text)
	b.WriteString("\n\nReturn a JSON object with exactly this shape:\n")
	b.WriteString(llm.ReportAnalysisSchema)
	b.WriteString("\nDo not wrap the JSON in markdown.")
	return b.String()
}
