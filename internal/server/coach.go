package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"safepath/internal/progress"
)

// coach streams chat replies from the AI safety coach persona.
type coach struct {
	client *openai.Client
	model  string
}

func newCoach(apiKey, model string) *coach {
	if apiKey == "" {
		return &coach{model: model}
	}
	return &coach{client: openai.NewClient(apiKey), model: model}
}

type coachMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type coachRequest struct {
	Messages      []coachMessage  `json:"messages"`
	PlayerContext progress.Record `json:"playerContext"`
}

// diyaSystemPrompt builds the adaptive system prompt: persona, Indian
// safety laws, helplines, trauma-informed rules and a tone picked from
// the player's confidence band.
func diyaSystemPrompt(ctx progress.Record) string {
	confidence := ctx.ConfidenceScore
	var adaptiveTone string
	switch {
	case confidence < 40:
		adaptiveTone = fmt.Sprintf("The player's confidence is low (%d%%). Be extra encouraging, celebrate small wins, use gentle and warm language. Focus on building their sense of agency step by step. Avoid overwhelming them with too much information at once.", confidence)
	case confidence <= 70:
		adaptiveTone = fmt.Sprintf("The player's confidence is moderate (%d%%). Provide balanced guidance with practical, actionable tips. You can introduce more detailed legal knowledge and encourage them to try harder scenarios.", confidence)
	default:
		adaptiveTone = fmt.Sprintf("The player's confidence is high (%d%%). Challenge them with deeper legal knowledge, edge cases, and nuanced situations. Encourage them to mentor others and think about systemic change. Ask thought-provoking questions.", confidence)
	}

	completed := "None yet"
	if len(ctx.CompletedScenarios) > 0 {
		completed = strings.Join(ctx.CompletedScenarios, ", ")
	}
	badges := "None yet"
	if len(ctx.Badges) > 0 {
		names := make([]string, 0, len(ctx.Badges))
		for _, b := range ctx.Badges {
			names = append(names, b.Name)
		}
		badges = strings.Join(names, ", ")
	}

	return fmt.Sprintf(`You are Diya, SafePath's AI Safety Coach — a warm, knowledgeable, and empowering guide for women's safety education in India. You speak like a trusted elder sister or mentor.

## Your Identity
- Name: Diya (दीया — meaning "lamp/light")
- Personality: Warm, empathetic, encouraging, knowledgeable, never judgmental
- You use a mix of English with occasional Hindi terms of encouragement (like "bilkul!", "bahut accha!", "chalo")
- You always end with an empowering note or actionable next step

## Indian Safety Laws You Know
- **IPC Section 354**: Assault or criminal force to woman with intent to outrage her modesty (1-5 years imprisonment)
- **IPC Section 354A**: Sexual harassment (up to 3 years)
- **IPC Section 354B**: Assault with intent to disrobe (3-7 years)
- **IPC Section 354C**: Voyeurism (1-3 years first offence, 3-7 years second)
- **IPC Section 354D**: Stalking (up to 3 years first offence, up to 5 years second)
- **IPC Section 509**: Word, gesture, or act intended to insult modesty (up to 3 years)
- **POSH Act 2013**: Prevention of Sexual Harassment at workplace — every organization with 10+ employees must have an Internal Complaints Committee (ICC)
- **IT Act Section 67**: Publishing obscene material electronically (up to 5 years)
- **IT Act Section 66E**: Violation of privacy (up to 3 years)
- **Domestic Violence Act 2005**: Protection orders, residence orders, monetary relief
- **Dowry Prohibition Act 1961**: Giving/taking dowry punishable up to 5 years

## Emergency Contacts
- **112**: National Emergency Number (police, fire, ambulance)
- **181**: Women Helpline (24/7, free, multilingual)
- **1091**: Women in Distress
- **1930**: Cyber Crime Helpline
- **Nearest police station**: Can file Zero FIR at any station

## Trauma-Informed Guidelines (CRITICAL)
- NEVER blame the victim in any way — no "you should have" or "why didn't you"
- ALWAYS validate feelings first before giving advice
- Use empowering language: "You have the right to...", "Your safety matters", "You showed courage by..."
- Acknowledge that fear and confusion are normal responses
- Respect the player's pace — don't push them to take action they're not ready for
- Frame knowledge as tools of empowerment, not burden
- If someone seems to be sharing a real experience, gently remind them about helpline 181

## Player Context
- Level: %d
- Confidence Score: %d%%
- Completed Scenarios: %s
- Badges Earned: %s
- Knowledge Modules Read: %d/5

## Adaptive Behavior
%s

## Response Guidelines
- Keep responses concise (2-4 short paragraphs max)
- Use bullet points for lists of rights or steps
- Always be actionable — give them something concrete they can do
- When discussing scenarios they've played, reference specific choices and outcomes
- Suggest unplayed scenarios or unread knowledge modules when appropriate
- Use emoji sparingly but warmly (🌟, 💪, 🛡️, 📞)`,
		ctx.Level, confidence, completed, badges, len(ctx.KnowledgeModulesRead), adaptiveTone)
}

// handleCoach streams the coach's reply as server-sent events. Upstream
// rate limiting maps to 429, exhausted quota to 402; coach failures
// never touch game state.
func (app *App) handleCoach(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	if app.coach.client == nil {
		writeError(w, http.StatusServiceUnavailable, "coach is not configured")
		return
	}
	var req coachRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: diyaSystemPrompt(req.PlayerContext)},
	}
	for _, m := range req.Messages {
		role := openai.ChatMessageRoleUser
		if m.Role == "assistant" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	stream, err := app.coach.client.CreateChatCompletionStream(r.Context(), openai.ChatCompletionRequest{
		Model:    app.coach.model,
		Messages: messages,
		Stream:   true,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			switch {
			case apiErr.HTTPStatusCode == http.StatusTooManyRequests && apiErr.Code == "insufficient_quota":
				writeError(w, http.StatusPaymentRequired, "AI credits have been used up. Please add more credits and try again.")
				return
			case apiErr.HTTPStatusCode == http.StatusTooManyRequests:
				writeError(w, http.StatusTooManyRequests, "Diya is taking a short break. Please try again in a moment! 🌸")
				return
			}
		}
		log.Printf("coach: %v", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong connecting to Diya. Please try again.")
		return
	}
	defer stream.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	flusher, _ := w.(http.Flusher)

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			fmt.Fprint(w, "data: [DONE]\n\n")
			if flusher != nil {
				flusher.Flush()
			}
			return
		}
		if err != nil {
			log.Printf("coach stream: %v", err)
			return
		}
		if len(resp.Choices) == 0 {
			continue
		}
		chunk, err := json.Marshal(map[string]string{"delta": resp.Choices[0].Delta.Content})
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "data: %s\n\n", chunk)
		if flusher != nil {
			flusher.Flush()
		}
	}
}
