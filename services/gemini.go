package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"resumekit/models"
	"resumekit/parsers"
	"resumekit/utils"
)

type GeminiRequest struct {
	Contents []Content `json:"contents"`
}

type Content struct {
	Parts []Part `json:"parts"`
	Role  string `json:"role"`
}

type Part struct {
	Text string `json:"text"`
}

type GeminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func CallGeminiWithAPIKey(prompt string) (string, error) {
	url := "https://generativelanguage.googleapis.com/v1/models/gemini-1.5-pro:generateContent?key=" + os.Getenv("GEMINI_API_KEY")

	requestBody := GeminiRequest{
		Contents: []Content{
			{
				Role: "user",
				Parts: []Part{
					{Text: prompt},
				},
			},
		},
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Gemini API error: %s", b)
	}

	var gemResp GeminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&gemResp); err != nil {
		return "", err
	}

	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no predictions returned")
	}

	return gemResp.Candidates[0].Content.Parts[0].Text, nil
}

func BuildTailorPrompt(resumeJSON, jobDescription string) string {
	return fmt.Sprintf(`You are an expert resume writer.

Rewrite the following resume so it targets the given job description.
Keep the same JSON structure (personalInfo plus a sections array) and
return ONLY the JSON document, no commentary.

Resume:
%s

Job description:
%s`, resumeJSON, jobDescription)
}

// TailorResume asks the model to rewrite the resume for a job description.
// Responses arrive as JSON of varying cleanliness or as free text; both
// land in the model through the appropriate parser, so a sloppy response
// degrades rather than fails.
func TailorResume(r *models.Resume, jobDescription string) (*models.Resume, error) {
	input, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize resume: %v", err)
	}

	raw, err := CallGeminiWithAPIKey(BuildTailorPrompt(string(input), jobDescription))
	if err != nil {
		return nil, err
	}

	text := stripCodeFence(raw)
	if looksLikeJSON(text) {
		return parsers.Sanitize(text), nil
	}

	utils.LogWarn("Model returned free text instead of JSON, running text parser")
	parsed, err := parsers.NewTextParser().Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse model response: %v", err)
	}
	// Keep the caller's contact block and presentation knobs; the text
	// parser only recovers section content reliably.
	parsed.PersonalInfo = r.PersonalInfo
	parsed.Template = r.Template
	parsed.Font = r.Font
	parsed.Color = r.Color
	return parsed, nil
}

// stripCodeFence removes a surrounding markdown fence if the model added
// one ("```json ... ```").
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func looksLikeJSON(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "{")
}
