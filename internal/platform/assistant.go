package platform

import "strings"

// buildAssistant assembles the transient assistant payload for one test
// call. The field set sticks to properties the call-creation API
// accepts; several dashboard-only knobs are rejected server-side.
func buildAssistant(req StartCallRequest) map[string]any {
	firstMessage := req.FirstMessage
	if firstMessage == "" {
		firstMessage = "Hello."
	}
	mode := req.FirstMessageMode
	if mode == "" {
		mode = "assistant-speaks-first"
	}

	assistant := map[string]any{
		"name":             "Sarah Martinez Test Caller",
		"firstMessage":     firstMessage,
		"firstMessageMode": mode,
		"model": map[string]any{
			"provider": "openai",
			"model":    "gpt-4o",
			"messages": []map[string]any{
				{"role": "system", "content": req.SystemPrompt},
			},
		},
		"voice": map[string]any{
			"provider":           "11labs",
			"voiceId":            "EXAVITQu4vr4xnSDxMaL",
			"model":              "eleven_turbo_v2_5",
			"inputMinCharacters": 30,
			"stability":          0.7,
			"similarityBoost":    0.75,
			"speed":              0.9,
			"style":              0,
			"useSpeakerBoost":    false,
			"autoMode":           false,
		},
		"transcriber": map[string]any{
			"provider":            "deepgram",
			"model":               "nova-2",
			"language":            "en",
			"confidenceThreshold": 0.5,
			"numerals":            false,
		},
		"startSpeakingPlan": map[string]any{
			"waitSeconds": 3,
		},
		"stopSpeakingPlan": map[string]any{
			"numWords":       3,
			"voiceSeconds":   0.4,
			"backoffSeconds": 3,
		},
		"maxDurationSeconds": 1500,
		"voicemailDetection": map[string]any{
			"provider": "vapi",
			"backoffPlan": map[string]any{
				"frequencySeconds": 5.0,
				"maxRetries":       6,
			},
		},
		"artifactPlan": map[string]any{
			"recordingEnabled":      true,
			"loggingEnabled":        true,
			"transcriptPlan":        map[string]any{"enabled": true},
			"recordingFormat":       "wav;l16",
			"videoRecordingEnabled": false,
		},
	}

	if req.WebhookBaseURL != "" {
		base := strings.TrimRight(req.WebhookBaseURL, "/")
		assistant["server"] = map[string]any{"url": base + "/webhook/vapi"}
	}

	return assistant
}
